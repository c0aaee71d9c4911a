package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pulsesurvey/internal/model"
)

// AdminPolicy decides which identities may administer survey types and
// read analytics. Injected so the services stay testable without real
// identity infrastructure.
type AdminPolicy interface {
	IsAdmin(email string) bool
}

// EmailAllowlist is an AdminPolicy backed by a fixed set of admin emails
type EmailAllowlist map[string]bool

// NewEmailAllowlist builds a case-insensitive allowlist from email addresses
func NewEmailAllowlist(emails []string) EmailAllowlist {
	allow := EmailAllowlist{}
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allow[e] = true
		}
	}
	return allow
}

func (a EmailAllowlist) IsAdmin(email string) bool {
	return a[strings.ToLower(email)]
}

// AuthService handles admin authentication
type AuthService struct {
	password  string
	policy    AdminPolicy
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(password string, policy AdminPolicy, jwtSecret []byte) *AuthService {
	return &AuthService{
		password:  password,
		policy:    policy,
		jwtSecret: jwtSecret,
	}
}

// Login validates credentials against the admin policy and returns a token
func (s *AuthService) Login(email, password string) (*model.LoginResponse, error) {
	if password != s.password || !s.policy.IsAdmin(email) {
		return nil, ErrInvalidCredentials
	}

	adminID := "admin_" + uuid.New().String()[:8]

	claims := &model.AdminClaims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:   tokenString,
		AdminID: adminID,
	}, nil
}

// ValidateToken validates an admin JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
