package account

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountdomain "wedding-site-go/internal/domain/account"
	"wedding-site-go/internal/repository/postgres/testdb"
)

func TestCreateUserDuplicateUsername(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.CreateUser(context.Background(), &accountdomain.User{ID: "0f8fad5b-d9cb-469f-a165-70867728950e", Username: "admin"})
	assert.ErrorIs(t, err, accountdomain.ErrUsernameTaken)
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, accountdomain.ErrUserNotFound)
}

func TestGetSessionNotFound(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewSessionPostgres(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE token_hash = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"token_hash"}))

	_, err := repo.GetSession(context.Background(), "abc")
	assert.ErrorIs(t, err, accountdomain.ErrSessionNotFound)
}

func TestDeleteUserSessionsExcept(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewSessionPostgres(gormDB)

	mock.ExpectExec(`DELETE FROM "sessions" WHERE user_id = \$1 AND token_hash <> \$2`).
		WithArgs("user-1", "keep").
		WillReturnResult(sqlmock.NewResult(0, 2))

	removed, err := repo.DeleteUserSessionsExcept(context.Background(), "user-1", "keep")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestDeleteExpiredSessions(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewSessionPostgres(gormDB)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE FROM "sessions" WHERE expires_at <= \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpiredSessions(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
