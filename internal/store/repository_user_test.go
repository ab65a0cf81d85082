package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "username", "email", "password_hash", "first_name", "last_name", "role", "is_active", "created_at", "last_login",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "hash",
		FirstName:    strPtr("John"),
		Role:         models.RoleUser,
	}
	now := time.Now()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, user.Username, user.Email, user.PasswordHash, "John", nil, user.Role, true, now, nil)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role).
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john", created.Username)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.FirstName)
	assert.Equal(t, "John", *created.FirstName)
	assert.Nil(t, created.LastName)
	assert.Nil(t, created.LastLogin)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

// ── FindUserByLogin / FindUserByID ───────────────────────────────────────────

func TestFindUserByLogin_Found(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(7, "john", "john@example.com", "hash", nil, nil, models.RoleAdmin, false, time.Now(), time.Now())

	mock.ExpectQuery("FROM users").
		WithArgs("john@example.com").
		WillReturnRows(rows)

	user, err := repo.FindUserByLogin(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.False(t, user.IsActive)
	assert.NotNil(t, user.LastLogin)
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByID_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users").
		WithArgs(int64(3)).
		WillReturnError(errors.New("boom"))

	_, err := repo.FindUserByID(context.Background(), 3)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

// ── UserExists ───────────────────────────────────────────────────────────────

func TestUserExists(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{name: "taken", exists: true},
		{name: "free", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs("john", "john@example.com").
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			got, err := repo.UserExists(context.Background(), "john", "john@example.com")
			require.NoError(t, err)
			assert.Equal(t, tt.exists, got)
		})
	}
}

// ── UpdateLastLogin / DeactivateUser ─────────────────────────────────────────

func TestUpdateLastLogin(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateLastLogin(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateUser(t *testing.T) {
	t.Run("deactivated", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users SET is_active = FALSE").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeactivateUser(context.Background(), 5))
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users SET is_active = FALSE").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeactivateUser(context.Background(), 5), ErrUserNotFound)
	})
}
