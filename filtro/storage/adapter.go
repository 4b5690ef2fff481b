package storage

import (
	"context"
	"database/sql"

	"github.com/filtro/filtro/filtro/storage/sqlbuilder"
)

type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// Adapter abstracts database-specific operations for the value catalog
type Adapter interface {
	Backend() Backend
	PlaceholderStyle() sqlbuilder.PlaceholderStyle
	CatalogID() string

	Connect(ctx context.Context) (*sql.DB, error)
	Close() error

	CreateCatalog(ctx context.Context, db *sql.DB) error
	OpenCatalog(ctx context.Context, db *sql.DB) error

	SQL() SQL
}

// SQL holds prepared SQL templates for common operations
type SQL struct {
	GetMeta string
	SetMeta string

	InsertValue   string
	DeleteValue   string
	HasValue      string
	ListValues    string
	CountValues   string
	DeleteByField string
}
