package postgres_test

import (
	"context"
	"testing"

	"github.com/dcamargo/restaurant-finder/internal/repository/postgres"
	"github.com/dcamargo/restaurant-finder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_GetByUsername(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	created, _ := testutil.NewUserBuilder().
		WithUsername("johndoe1").
		WithName("John Doe").
		Build(t, testDB.DB)

	user, err := repo.GetByUsername(ctx, "johndoe1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "John Doe", user.Name)

	_, err = repo.GetByUsername(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UsernameUnique(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	first, _ := testutil.NewUserBuilder().WithUsername("johndoe1").Build(t, testDB.DB)

	duplicate, _ := testutil.NewUserBuilder().WithUsername("otheruser").Build(t, testDB.DB)
	duplicate.Username = first.Username

	err := repo.Update(ctx, duplicate)
	assert.Error(t, err)
}

func TestUserRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().WithUsername("todelete").Build(t, testDB.DB)

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
