package filtro

// Value is one catalog entry for a field: the code a query may reference and
// an optional human-readable label.
type Value struct {
	Value string
	Label string
}

// PriceBounds is the inclusive range of prices the preço validator accepts.
// Unset bounds (ok=false from Catalog.PriceBounds) accept any decimal.
type PriceBounds struct {
	Min float64
	Max float64
}

// CatalogOptions configures catalog behavior
type CatalogOptions struct {
	// ValueBatchSize caps the size of IN-lists in batched membership checks.
	ValueBatchSize int
}

// DefaultCatalogOptions returns sensible defaults
func DefaultCatalogOptions() CatalogOptions {
	return CatalogOptions{
		ValueBatchSize: DefaultValueBatchSize,
	}
}
