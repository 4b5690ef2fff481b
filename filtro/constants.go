package filtro

// Built-in field names of the query language.
const (
	FieldProduto   = "produto"
	FieldCategoria = "categoria"
	FieldPreco     = "preço"
)

const (
	DefaultValueBatchSize = 500

	metaPriceMin = "preco_min"
	metaPriceMax = "preco_max"
)
