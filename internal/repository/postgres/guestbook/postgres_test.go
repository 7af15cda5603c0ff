package guestbook

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	guestbookdomain "wedding-site-go/internal/domain/guestbook"
	"wedding-site-go/internal/repository/postgres/testdb"
)

func TestListApprovedMessages(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)
	now := time.Date(2026, 12, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "guest_name", "message", "approved", "created_at", "updated_at"}).
		AddRow("7b0c8a1e-4c55-4d7c-9a57-1b1f0c2d3e4f", "Linh", "Chúc mừng!", true, now, now)
	mock.ExpectQuery(`SELECT \* FROM "guest_messages" WHERE approved = \$1 ORDER BY created_at desc`).
		WithArgs(true).
		WillReturnRows(rows)

	approved := true
	messages, err := repo.ListMessages(context.Background(), guestbookdomain.ListFilter{Approved: &approved})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Linh", messages[0].GuestName)
	assert.True(t, messages[0].Approved)
}

func TestSetApprovalUnknownID(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectExec(`UPDATE "guest_messages" SET .* WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.SetApproval(context.Background(), "7b0c8a1e-4c55-4d7c-9a57-1b1f0c2d3e4f", true, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestDeleteMessage(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectExec(`DELETE FROM "guest_messages" WHERE id = \$1`).
		WithArgs("7b0c8a1e-4c55-4d7c-9a57-1b1f0c2d3e4f").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteMessage(context.Background(), "7b0c8a1e-4c55-4d7c-9a57-1b1f0c2d3e4f")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCountMessages(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectQuery(`COUNT\(\*\) FILTER \(WHERE NOT approved\)`).
		WillReturnRows(sqlmock.NewRows([]string{"pending", "approved"}).AddRow(2, 5))

	counts, err := repo.CountMessages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, guestbookdomain.Counts{Pending: 2, Approved: 5}, counts)
}
