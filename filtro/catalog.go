package filtro

import (
	"context"
	"database/sql"

	"github.com/filtro/filtro/filtro/storage"
)

// Catalog is an open store of the values that may legally appear in a query:
// known product codes, known category ids and the configured price bounds.
// It backs the built-in field matchers' validators.
type Catalog struct {
	adapter storage.Adapter
	db      *sql.DB
	opts    CatalogOptions
}

var knownFields = map[string]bool{
	FieldProduto:   true,
	FieldCategoria: true,
	FieldPreco:     true,
}

// Create creates a new catalog
func Create(ctx context.Context, adapter storage.Adapter, opts CatalogOptions) (*Catalog, error) {
	db, err := adapter.Connect(ctx)
	if err != nil {
		return nil, Wrap(ErrIO, "connect to database", err)
	}

	if err := adapter.CreateCatalog(ctx, db); err != nil {
		db.Close()
		return nil, Wrap(ErrSQL, "create catalog", err)
	}

	return newCatalog(adapter, db, opts), nil
}

// Open opens an existing catalog
func Open(ctx context.Context, adapter storage.Adapter, opts CatalogOptions) (*Catalog, error) {
	db, err := adapter.Connect(ctx)
	if err != nil {
		return nil, Wrap(ErrIO, "connect to database", err)
	}

	if err := adapter.OpenCatalog(ctx, db); err != nil {
		db.Close()
		return nil, Wrap(ErrCatalog, "open catalog", err)
	}

	return newCatalog(adapter, db, opts), nil
}

func newCatalog(adapter storage.Adapter, db *sql.DB, opts CatalogOptions) *Catalog {
	if opts.ValueBatchSize <= 0 {
		opts.ValueBatchSize = DefaultValueBatchSize
	}
	return &Catalog{adapter: adapter, db: db, opts: opts}
}

// Close closes the catalog
func (c *Catalog) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return Wrap(ErrIO, "close database", err)
		}
	}
	return c.adapter.Close()
}

// CatalogID identifies the underlying store (file path or connection schema).
func (c *Catalog) CatalogID() string {
	return c.adapter.CatalogID()
}

func (c *Catalog) getMeta(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := c.db.QueryRowContext(ctx, c.adapter.SQL().GetMeta, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, Wrap(ErrSQL, "get meta", err)
	}
	return value, true, nil
}

func (c *Catalog) setMeta(ctx context.Context, key, value string) error {
	if _, err := c.db.ExecContext(ctx, c.adapter.SQL().SetMeta, key, value); err != nil {
		return Wrap(ErrSQL, "set meta", err)
	}
	return nil
}

func checkField(field string) error {
	if !knownFields[field] {
		return UnknownFieldError(field)
	}
	return nil
}
