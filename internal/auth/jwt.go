package auth

import (
	"fmt"
	"time"

	"github.com/crewdeck-dev/crewdeck/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret string

// Claims is the typed session token payload. It carries the full
// identity triple so guarded requests never re-derive it.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	ClientID uint   `json:"client_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func InitJWTSecret() error {
	secret, err := config.JWTSecret()
	if err != nil {
		return err
	}

	jwtSecret = secret
	return nil
}

// SetJWTSecret overrides the signing secret. Used by tests.
func SetJWTSecret(secret string) {
	jwtSecret = secret
}

func GenerateJWT(userID uint, email string, clientID uint, role string) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:   userID,
		Email:    email,
		ClientID: clientID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.JWTExpireHours()) * time.Hour)),
			Issuer:    "crewdeck",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	return claims, nil
}
