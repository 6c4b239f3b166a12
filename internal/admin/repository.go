package admin

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	ListTables(ctx context.Context) ([]string, error)
	FetchRows(ctx context.Context, table string, limit, offset int) ([]map[string]interface{}, error)
	CountRows(ctx context.Context, table string) (int64, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListTables(ctx context.Context) ([]string, error) {
	var tables []string
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`

	if err := r.db.SelectContext(ctx, &tables, query); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

// FetchRows pages through an allow-listed table. The table name is
// interpolated, never bound, so the caller must validate it first.
func (r *postgresRepository) FetchRows(ctx context.Context, table string, limit, offset int) ([]map[string]interface{}, error) {
	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY 1 LIMIT $1 OFFSET $2`, table)

	rows, err := r.db.QueryxContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch rows from %s: %w", table, err)
	}
	defer rows.Close()

	out := []map[string]interface{}{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan row from %s: %w", table, err)
		}
		for key, value := range row {
			if raw, ok := value.([]byte); ok {
				row[key] = string(raw)
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *postgresRepository) CountRows(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)

	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count rows of %s: %w", table, err)
	}
	return count, nil
}
