package matching

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestGetProfileMapsNoRowsToNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT").WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(context.Background(), 7)
	assert.ErrorIs(t, err, ErrRequesterNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileScansNullableColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	cols := []string{
		"id", "username", "firstname", "lastname", "gender", "sex_preference",
		"bio", "latitude", "longitude", "popularity", "status", "last_seen",
		"avatar_url",
	}
	mock.ExpectQuery("SELECT").WithArgs(int64(1)).WillReturnRows(
		sqlmock.NewRows(cols).AddRow(
			int64(1), "alice", "Alice", "Martin", "female", "male",
			nil, nil, nil, int64(12), "active", nil,
			nil,
		),
	)

	p, err := repo.GetProfile(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, GenderFemale, p.Gender)
	assert.False(t, p.HasLocation())
	assert.Nil(t, p.AvatarURL)
	assert.Equal(t, int64(12), p.Popularity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsBlockedEitherDirection(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(1), int64(2)).WillReturnRows(
		sqlmock.NewRows([]string{"exists"}).AddRow(true),
	)

	blocked, err := repo.IsBlockedEitherDirection(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, blocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTagSetBuildsSet(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT tag_id FROM users_preferences").WithArgs(int64(3)).WillReturnRows(
		sqlmock.NewRows([]string{"tag_id"}).AddRow(int64(10)).AddRow(int64(11)),
	)

	set, err := repo.GetTagSet(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, set, 2)
	assert.True(t, set.Contains(10))
	assert.True(t, set.Contains(11))
	assert.False(t, set.Contains(12))
	assert.NoError(t, mock.ExpectationsWereMet())
}
