package admin

import (
	"context"
	"errors"
)

var ErrTableNotAllowed = errors.New("table not inspectable")

// allowedTables restricts the inspector to application tables. The
// password column never leaves the database: profiles is exposed
// through a reduced column set elsewhere, so it stays off this list.
var allowedTables = map[string]bool{
	"photos":            true,
	"tags":              true,
	"users_preferences": true,
	"blocks":            true,
	"reports":           true,
	"likes":             true,
	"profile_views":     true,
	"conversations":     true,
	"messages":          true,
	"notifications":     true,
}

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

type TablePage struct {
	Table string                   `json:"table"`
	Total int64                    `json:"total"`
	Page  int                      `json:"page"`
	Rows  []map[string]interface{} `json:"rows"`
}

type Service interface {
	ListTables(ctx context.Context) ([]string, error)
	InspectTable(ctx context.Context, table string, page, pageSize int) (*TablePage, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListTables returns the subset of public tables the inspector may
// open.
func (s *service) ListTables(ctx context.Context) ([]string, error) {
	tables, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	out := []string{}
	for _, table := range tables {
		if allowedTables[table] {
			out = append(out, table)
		}
	}
	return out, nil
}

func (s *service) InspectTable(ctx context.Context, table string, page, pageSize int) (*TablePage, error) {
	if !allowedTables[table] {
		return nil, ErrTableNotAllowed
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	total, err := s.repo.CountRows(ctx, table)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FetchRows(ctx, table, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	return &TablePage{
		Table: table,
		Total: total,
		Page:  page,
		Rows:  rows,
	}, nil
}
