package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/config"
	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/dcamargo/restaurant-finder/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo  repository.UserRepository
	authority TokenAuthority
	cfg       *config.Config
}

func NewAuthService(userRepo repository.UserRepository, authority TokenAuthority, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		authority: authority,
		cfg:       cfg,
	}
}

// Login verifies the credentials and mints a signed token. Unknown users and
// wrong passwords both collapse to ErrInvalidCredentials so usernames cannot
// be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return "", err
	}

	if err := s.authority.OnIssue(ctx, user.ID, token); err != nil {
		return "", err
	}

	return token, nil
}

// Logout revokes the presented token. Revoking an already revoked token is
// not an error.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, token string) error {
	return s.authority.OnRevoke(ctx, userID, token)
}

func (s *AuthService) signToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": user.Username,
		"sub":      user.ID.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken checks the signature and registered claims. Expiry is not
// enforced in the development environment.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	}

	var opts []jwt.ParserOption
	if s.cfg.Environment == "development" {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	token, err := jwt.Parse(tokenString, keyFunc, opts...)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Authenticate is the per-request gate: signature and expiry first, then the
// token authority. A registry failure is fatal for the request, never an
// implicit accept.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (jwt.MapClaims, uuid.UUID, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, uuid.Nil, fmt.Errorf("%w: missing sub claim", domain.ErrUnauthenticated)
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: malformed sub claim", domain.ErrUnauthenticated)
	}

	acceptable, err := s.authority.IsAcceptable(ctx, userID, tokenString)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if !acceptable {
		return nil, uuid.Nil, fmt.Errorf("%w: token revoked", domain.ErrUnauthenticated)
	}

	return claims, userID, nil
}

// UnverifiedSubject decodes the sub claim without checking the signature or
// expiry. Best-effort identity resolution for auditing only, never a
// security check.
func UnverifiedSubject(tokenString string) (uuid.UUID, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return uuid.Nil, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}
