package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	name     string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		name:     "Test User",
		password: "Password123!",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		Name:         b.name,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BlacklistToken inserts a revoked token with the given revocation time
func BlacklistToken(t *testing.T, db *gorm.DB, token string, blacklistedAt time.Time) *domain.BlacklistedToken {
	t.Helper()

	entry := &domain.BlacklistedToken{
		ID:            uuid.New(),
		Token:         token,
		BlacklistedAt: blacklistedAt,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to blacklist token: %v", err)
	}
	return entry
}

// CreateTransaction inserts an audit entry with the given timestamp
func CreateTransaction(t *testing.T, db *gorm.DB, userID *uuid.UUID, endpoint string, createdAt time.Time) *domain.Transaction {
	t.Helper()

	entry := &domain.Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Endpoint:   endpoint,
		Method:     "GET",
		StatusCode: 200,
		CreatedAt:  createdAt,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return entry
}
