package gallery

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gallerydomain "wedding-site-go/internal/domain/gallery"
	"wedding-site-go/internal/repository/postgres/testdb"
)

const photoID = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"

func TestListPhotosByCategory(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)
	now := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "url", "caption", "category", "display_order", "created_at", "updated_at"}).
		AddRow(photoID, "https://cdn.example/1.jpg", "Pre-wedding", "prewedding", 0, now, now).
		AddRow("6ba7b810-9dad-11d1-80b4-00c04fd430c8", "https://cdn.example/2.jpg", "", "prewedding", 1, now, now)
	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE category = \$1 ORDER BY display_order asc, created_at asc`).
		WithArgs("prewedding").
		WillReturnRows(rows)

	photos, err := repo.ListPhotos(context.Background(), gallerydomain.PhotoFilter{Category: "prewedding"})
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "https://cdn.example/1.jpg", photos[0].URL)
	assert.Equal(t, 1, photos[1].DisplayOrder)
}

func TestListPhotosWithoutFilter(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "photos" ORDER BY display_order asc, created_at asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	photos, err := repo.ListPhotos(context.Background(), gallerydomain.PhotoFilter{})
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestGetPhotoNotFound(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetPhotoByID(context.Background(), photoID)
	assert.ErrorIs(t, err, gallerydomain.ErrPhotoNotFound)
}

func TestUpdateMissingPhoto(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectExec(`UPDATE "photos" SET .* WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePhoto(context.Background(), &gallerydomain.Photo{ID: photoID, URL: "https://cdn.example/1.jpg"})
	assert.ErrorIs(t, err, gallerydomain.ErrPhotoNotFound)
}

func TestListPendingGuestPhotos(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)
	now := time.Date(2026, 12, 20, 21, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "url", "guest_name", "approved", "created_at"}).
		AddRow(photoID, "data:image/png;base64,AAAA", "Hoa", false, now)
	mock.ExpectQuery(`SELECT \* FROM "guest_photos" WHERE approved = \$1 ORDER BY created_at desc`).
		WithArgs(false).
		WillReturnRows(rows)

	pending := false
	photos, err := repo.ListGuestPhotos(context.Background(), gallerydomain.GuestPhotoFilter{Approved: &pending})
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "Hoa", photos[0].GuestName)
	assert.False(t, photos[0].Approved)
}

func TestGuestPhotoApprovalUnknownID(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectExec(`UPDATE "guest_photos" SET .* WHERE id = `).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.SetGuestPhotoApproval(context.Background(), photoID, true, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestCountGuestPhotos(t *testing.T) {
	gormDB, mock := testdb.New(t)
	repo := NewPostgres(gormDB)

	mock.ExpectQuery(`COUNT\(\*\) FILTER \(WHERE NOT approved\) AS pending, COUNT\(\*\) FILTER \(WHERE approved\) AS approved FROM guest_photos`).
		WillReturnRows(sqlmock.NewRows([]string{"pending", "approved"}).AddRow(3, 4))

	counts, err := repo.CountGuestPhotos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, gallerydomain.GuestPhotoCounts{Pending: 3, Approved: 4}, counts)
}
