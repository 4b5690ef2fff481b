package filtro

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/filtro/filtro/filtro/storage/sqlbuilder"
)

// AddValue inserts or updates one catalog value for a field.
func (c *Catalog) AddValue(ctx context.Context, field string, v Value) error {
	if err := checkField(field); err != nil {
		return err
	}
	if _, err := c.db.ExecContext(ctx, c.adapter.SQL().InsertValue, field, v.Value, v.Label); err != nil {
		return Wrap(ErrSQL, "add value", err)
	}
	return nil
}

// AddValues inserts values without labels, all in one transaction.
func (c *Catalog) AddValues(ctx context.Context, field string, values ...string) error {
	if err := checkField(field); err != nil {
		return err
	}
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return Wrap(ErrSQL, "begin transaction", err)
	}
	defer tx.Rollback()

	insert := c.adapter.SQL().InsertValue
	for _, v := range values {
		if _, err := tx.ExecContext(ctx, insert, field, v, ""); err != nil {
			return Wrap(ErrSQL, "add value", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return Wrap(ErrSQL, "commit", err)
	}
	return nil
}

// RemoveValue deletes one catalog value.
func (c *Catalog) RemoveValue(ctx context.Context, field, value string) error {
	if err := checkField(field); err != nil {
		return err
	}
	if _, err := c.db.ExecContext(ctx, c.adapter.SQL().DeleteValue, field, value); err != nil {
		return Wrap(ErrSQL, "remove value", err)
	}
	return nil
}

// HasValue reports whether a field value is known to the catalog.
func (c *Catalog) HasValue(ctx context.Context, field, value string) (bool, error) {
	if err := checkField(field); err != nil {
		return false, err
	}
	rows, err := c.db.QueryContext(ctx, c.adapter.SQL().HasValue, field, value)
	if err != nil {
		return false, Wrap(ErrSQL, "has value", err)
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}

// ListValues returns all values for a field, ordered by value.
func (c *Catalog) ListValues(ctx context.Context, field string) ([]Value, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}
	rows, err := c.db.QueryContext(ctx, c.adapter.SQL().ListValues, field)
	if err != nil {
		return nil, Wrap(ErrSQL, "list values", err)
	}
	defer rows.Close()

	var out []Value
	for rows.Next() {
		var v Value
		if err := rows.Scan(&v.Value, &v.Label); err != nil {
			return nil, Wrap(ErrSQL, "scan value", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// CountValues returns the number of values stored for a field.
func (c *Catalog) CountValues(ctx context.Context, field string) (uint64, error) {
	if err := checkField(field); err != nil {
		return 0, err
	}
	var n uint64
	if err := c.db.QueryRowContext(ctx, c.adapter.SQL().CountValues, field).Scan(&n); err != nil {
		return 0, Wrap(ErrSQL, "count values", err)
	}
	return n, nil
}

// MissingValues returns, in input order, the values not present in the
// catalog for a field. Lookups are batched IN queries capped at the
// configured batch size.
func (c *Catalog) MissingValues(ctx context.Context, field string, values []string) ([]string, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	found := make(map[string]bool, len(values))
	for start := 0; start < len(values); start += c.opts.ValueBatchSize {
		end := start + c.opts.ValueBatchSize
		if end > len(values) {
			end = len(values)
		}
		if err := c.markFound(ctx, field, values[start:end], found); err != nil {
			return nil, err
		}
	}

	var missing []string
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if found[v] || seen[v] {
			continue
		}
		seen[v] = true
		missing = append(missing, v)
	}
	return missing, nil
}

func (c *Catalog) markFound(ctx context.Context, field string, batch []string, found map[string]bool) error {
	b := sqlbuilder.New(c.adapter.PlaceholderStyle())
	var sb strings.Builder
	sb.WriteString("SELECT value FROM catalog_values WHERE field = ")
	sb.WriteString(b.Arg(field))
	sb.WriteString(" AND value IN (")
	for i, v := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.Arg(v))
	}
	sb.WriteString(")")

	rows, err := c.db.QueryContext(ctx, sb.String(), b.Args()...)
	if err != nil {
		return Wrap(ErrSQL, "membership query", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return Wrap(ErrSQL, "scan membership", err)
		}
		found[v] = true
	}
	return rows.Err()
}

// SetPriceBounds stores the inclusive price range accepted by the preço
// validator.
func (c *Catalog) SetPriceBounds(ctx context.Context, bounds PriceBounds) error {
	if bounds.Min > bounds.Max {
		return CatalogError(fmt.Sprintf("invalid price bounds: min %v > max %v", bounds.Min, bounds.Max))
	}
	if err := c.setMeta(ctx, metaPriceMin, strconv.FormatFloat(bounds.Min, 'f', -1, 64)); err != nil {
		return err
	}
	return c.setMeta(ctx, metaPriceMax, strconv.FormatFloat(bounds.Max, 'f', -1, 64))
}

// PriceBounds returns the configured bounds; ok is false when none are set.
func (c *Catalog) PriceBounds(ctx context.Context) (PriceBounds, bool, error) {
	minStr, okMin, err := c.getMeta(ctx, metaPriceMin)
	if err != nil {
		return PriceBounds{}, false, err
	}
	maxStr, okMax, err := c.getMeta(ctx, metaPriceMax)
	if err != nil {
		return PriceBounds{}, false, err
	}
	if !okMin || !okMax {
		return PriceBounds{}, false, nil
	}
	minV, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return PriceBounds{}, false, Wrap(ErrCatalog, "corrupt price bounds", err)
	}
	maxV, err := strconv.ParseFloat(maxStr, 64)
	if err != nil {
		return PriceBounds{}, false, Wrap(ErrCatalog, "corrupt price bounds", err)
	}
	return PriceBounds{Min: minV, Max: maxV}, true, nil
}
