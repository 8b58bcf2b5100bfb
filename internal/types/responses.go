package types

import (
	"time"

	"github.com/crewdeck-dev/crewdeck/internal/models"
)

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	ClientID  uint      `json:"client_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientDetailResponse struct {
	ClientResponse

	Users    []UserResponse    `json:"users"`
	Projects []ProjectResponse `json:"projects"`
}

type ProjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ClientID    uint      `json:"client_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse

	Members []MembershipResponse `json:"members"`
}

type MembershipResponse struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"project_id"`
	UserID    uint      `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RosterEntry is a membership with the minimal user info exposed
// on the project roster endpoint.
type RosterEntry struct {
	MembershipResponse

	User UserResponse `json:"user"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		ClientID:  user.ClientID,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func NewClientResponse(client models.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

func NewProjectResponse(project models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		ClientID:    project.ClientID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func NewMembershipResponse(membership models.ProjectMembership) MembershipResponse {
	return MembershipResponse{
		ID:        membership.ID,
		ProjectID: membership.ProjectID,
		UserID:    membership.UserID,
		Role:      membership.Role,
		CreatedAt: membership.CreatedAt,
	}
}

func NewProjectDetailResponse(project models.Project) ProjectDetailResponse {
	members := make([]MembershipResponse, 0, len(project.ProjectMemberships))

	for _, membership := range project.ProjectMemberships {
		members = append(members, NewMembershipResponse(membership))
	}

	return ProjectDetailResponse{
		ProjectResponse: NewProjectResponse(project),
		Members:         members,
	}
}
