package services

import (
	"errors"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller as carried by the access token.
type Identity struct {
	StudentID string
	Role      string
	Campus    string
}

// AuthService issues and validates access tokens. Accounts and logins live
// in a separate service; this one only understands the token format.
type AuthService struct {
	jwtSecret []byte
	ttl       time.Duration
}

func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{jwtSecret: []byte(jwtSecret), ttl: 24 * time.Hour}
}

func (s *AuthService) GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":    user.ID,
		"role":   user.Role,
		"campus": user.Campus,
		"exp":    time.Now().Add(s.ttl).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, errors.New("invalid uid in token")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		role = models.RoleStudent
	}
	campus, _ := claims["campus"].(string)

	return &Identity{StudentID: uid, Role: role, Campus: campus}, nil
}
