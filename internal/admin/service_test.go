package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	tables []string
	rows   map[string][]map[string]interface{}
}

func (f *fakeRepo) ListTables(_ context.Context) ([]string, error) {
	return f.tables, nil
}

func (f *fakeRepo) FetchRows(_ context.Context, table string, limit, offset int) ([]map[string]interface{}, error) {
	rows := f.rows[table]
	if offset >= len(rows) {
		return []map[string]interface{}{}, nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end], nil
}

func (f *fakeRepo) CountRows(_ context.Context, table string) (int64, error) {
	return int64(len(f.rows[table])), nil
}

func TestListTablesFiltersAllowList(t *testing.T) {
	repo := &fakeRepo{tables: []string{"likes", "profiles", "pg_stat_activity", "tags"}}
	svc := NewService(repo)

	tables, err := svc.ListTables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"likes", "tags"}, tables)
}

func TestInspectTableRejectsUnknown(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.InspectTable(context.Background(), "profiles", 1, 10)
	assert.ErrorIs(t, err, ErrTableNotAllowed)
}

func TestInspectTablePages(t *testing.T) {
	rows := make([]map[string]interface{}, 30)
	for i := range rows {
		rows[i] = map[string]interface{}{"id": i + 1}
	}
	repo := &fakeRepo{rows: map[string][]map[string]interface{}{"likes": rows}}
	svc := NewService(repo)

	page, err := svc.InspectTable(context.Background(), "likes", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(30), page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Rows, 10)
	assert.Equal(t, 11, page.Rows[0]["id"])
}

func TestInspectTableClampsPageSize(t *testing.T) {
	repo := &fakeRepo{rows: map[string][]map[string]interface{}{"likes": {}}}
	svc := NewService(repo)

	page, err := svc.InspectTable(context.Background(), "likes", 0, 10000)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Empty(t, page.Rows)
}
