package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// Global roles, attached to a user tenant-wide.
const (
	GlobalRoleAdmin  = "admin"
	GlobalRoleMember = "member"
)

// Project membership roles, attached to a (project, user) pair.
const (
	ProjectRoleOwner     = "owner"
	ProjectRoleDeveloper = "developer"
	ProjectRoleViewer    = "viewer"
)

func ValidProjectRole(role string) bool {
	switch role {
	case ProjectRoleOwner, ProjectRoleDeveloper, ProjectRoleViewer:
		return true
	}
	return false
}

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
