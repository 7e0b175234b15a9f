package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cookeasy/backend/internal/domain"
)

const defaultAvatarURL = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=150&h=150"

// demoAccount is a built-in login
type demoAccount struct {
	password string
	name     string
	role     domain.Role
}

var demoAccounts = map[string]demoAccount{
	"admin@cookeasy.com": {password: "admin", name: "Admin User", role: domain.RoleAdmin},
	"user@cookeasy.com":  {password: "user", name: "Tester User", role: domain.RoleUser},
}

// Credentials is the login and registration form
type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name,omitempty"`
}

// AuthResult is returned after a successful login
type AuthResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      domain.User `json:"user"`
}

// UserClaims are the session token claims
type UserClaims struct {
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	AvatarURL string      `json:"avatarUrl,omitempty"`
	jwt.RegisteredClaims
}

// AuthConfig holds configuration for the auth service
type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
	Now      func() time.Time
}

// AuthService signs users in against the demo accounts and issues HS256 tokens
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger zerolog.Logger
}

// NewAuthService creates an auth service
func NewAuthService(config AuthConfig, logger zerolog.Logger) *AuthService {
	ttl := config.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		secret: []byte(config.Secret),
		ttl:    ttl,
		now:    now,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// Login checks the credentials against the demo accounts
func (s *AuthService) Login(creds Credentials) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	account, ok := demoAccounts[email]
	if !ok || account.password != creds.Password {
		s.logger.Warn().Str("email", email).Msg("login rejected")
		return nil, fmt.Errorf("%w. Try admin@cookeasy.com / admin", domain.ErrInvalidCredentials)
	}
	return s.issue(newUser(email, account.name, account.role))
}

// Register signs up any email as a regular user named after the email's local part.
// The demo accounts still log in with their own role.
func (s *AuthService) Register(creds Credentials) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: a valid email and password are required", domain.ErrInvalidRequest)
	}
	if account, ok := demoAccounts[email]; ok && account.password == creds.Password {
		return s.issue(newUser(email, account.name, account.role))
	}

	name := strings.TrimSpace(creds.Name)
	if name == "" {
		name = local
	}
	s.logger.Info().Str("email", email).Msg("user registered")
	return s.issue(newUser(email, name, domain.RoleUser))
}

// ParseToken validates a session token and returns its user
func (s *AuthService) ParseToken(token string) (domain.User, error) {
	claims := &UserClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.User{}, fmt.Errorf("%w: session expired", domain.ErrUnauthorized)
		}
		return domain.User{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.User{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	return domain.User{
		ID:        claims.Subject,
		Name:      claims.Name,
		Email:     claims.Email,
		AvatarURL: claims.AvatarURL,
		Role:      claims.Role,
	}, nil
}

func (s *AuthService) issue(user domain.User) (*AuthResult, error) {
	now := s.now()
	expires := now.Add(s.ttl)
	claims := &UserClaims{
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expires, User: user}, nil
}

// newUser derives a stable id from the email so sessions survive a new login
func newUser(email, name string, role domain.Role) domain.User {
	return domain.User{
		ID:        "u-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String(),
		Name:      name,
		Email:     email,
		AvatarURL: defaultAvatarURL,
		Role:      role,
	}
}
