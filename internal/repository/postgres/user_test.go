package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/bookmarks-api/internal/model"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *UserRepository) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return mockPool, NewUserRepository(mockPool)
}

func userRows(user model.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
}

func TestUserRepository_Create(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	want := model.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hashed",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mockPool.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("user@example.com", "hashed").
		WillReturnRows(userRows(want))

	got, err := repo.Create(context.Background(), "user@example.com", "hashed")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	mockPool.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("user@example.com", "hashed").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), "user@example.com", "hashed")
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestUserRepository_Create_OtherError(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	mockPool.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("user@example.com", "hashed").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), "user@example.com", "hashed")
	require.Error(t, err)
	// Connection failures and the like must not masquerade as conflicts.
	assert.NotErrorIs(t, err, model.ErrEmailTaken)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	want := model.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hashed",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, created_at, updated_at")).
		WithArgs("user@example.com").
		WillReturnRows(userRows(want))

	got, err := repo.GetByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, created_at, updated_at")).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetByID(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	want := model.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: "hashed",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, created_at, updated_at")).
		WithArgs(want.ID).
		WillReturnRows(userRows(want))

	got, err := repo.GetByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mockPool, repo := newMockRepo(t)

	id := uuid.New()
	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, created_at, updated_at")).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	require.ErrorIs(t, err, model.ErrNotFound)
}
