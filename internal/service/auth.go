package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jpalmer/promoboost/internal/domain"
	"github.com/jpalmer/promoboost/internal/logger"
	"github.com/jpalmer/promoboost/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for unknown users and wrong passwords
// alike, so login failures are indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Claims is the JWT payload carried by authenticated requests.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthService handles credential verification and token issuance.
type AuthService struct {
	users  *repository.UserRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates an AuthService.
// Parameters:
//   - users: user repository.
//   - secret: HMAC signing secret.
//   - ttl: issued token lifetime.
// Returns:
//   - *AuthService: service instance.
func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Login verifies credentials and issues a signed token.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - username: account name.
//   - password: plaintext password.
// Returns:
//   - string: signed JWT.
//   - *domain.User: authenticated user.
//   - error: ErrInvalidCredentials on auth failure.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token string.
// Parameters:
//   - tokenString: raw JWT from the Authorization header.
// Returns:
//   - *Claims: validated claims.
//   - error: non-nil for invalid, expired, or wrongly signed tokens.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// EnsureAdmin creates a bootstrap admin account when no users exist yet.
// Called once at startup; a non-empty user table makes it a no-op.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - username: admin account name.
//   - password: plaintext admin password.
// Returns:
//   - error: non-nil if hashing or persistence fails.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}); err != nil {
		return err
	}

	logger.CtxInfo(ctx, "Created bootstrap admin user %q", username)
	return nil
}
