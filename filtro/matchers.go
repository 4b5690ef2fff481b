package filtro

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/filtro/filtro/filtro/query"
)

// Matchers returns the built-in field matchers in registration order:
// produto, categoria, preço. The order is precedence when rune classes
// overlap, so it must stay fixed. Validators look values up in this catalog;
// the lexer never calls them.
func (c *Catalog) Matchers() []query.FieldMatcher {
	return []query.FieldMatcher{
		query.NewFieldMatcher(FieldProduto, c.membershipValidator(FieldProduto)),
		query.NewFieldMatcher(FieldCategoria, c.membershipValidator(FieldCategoria)),
		query.NewFieldMatcher(FieldPreco, c.priceValidator()),
	}
}

// StaticMatchers returns the same three matchers with self-contained
// validators (numeric shape only), for callers without a catalog.
func StaticMatchers() []query.FieldMatcher {
	return []query.FieldMatcher{
		query.NewFieldMatcher(FieldProduto, numericValidator(FieldProduto)),
		query.NewFieldMatcher(FieldCategoria, numericValidator(FieldCategoria)),
		query.NewFieldMatcher(FieldPreco, decimalValidator(FieldPreco)),
	}
}

// LexQuery tokenizes input against the catalog's matchers, wrapping lexical
// failures in a query_lex Error. Tokenization is fail-fast: on error no
// tokens are returned.
func (c *Catalog) LexQuery(input string) ([]query.Token, error) {
	tokens, err := query.Lex(input, c.Matchers())
	if err != nil {
		return nil, QueryLexError(err)
	}
	return tokens, nil
}

// MatcherFor finds the matcher registered under a field name.
func MatcherFor(matchers []query.FieldMatcher, field string) (query.FieldMatcher, error) {
	for _, m := range matchers {
		if m.Name == field {
			return m, nil
		}
	}
	return query.FieldMatcher{}, UnknownFieldError(field)
}

func (c *Catalog) membershipValidator(field string) query.ValidateFunc {
	return func(ctx context.Context, values []string) (query.Validation, error) {
		missing, err := c.MissingValues(ctx, field, values)
		if err != nil {
			return query.Validation{}, err
		}
		if len(missing) > 0 {
			return query.Validation{
				Message: fmt.Sprintf("valores desconhecidos para %s: %s", field, strings.Join(missing, ", ")),
			}, nil
		}
		return query.Validation{Accepted: true}, nil
	}
}

func (c *Catalog) priceValidator() query.ValidateFunc {
	return func(ctx context.Context, values []string) (query.Validation, error) {
		bounds, haveBounds, err := c.PriceBounds(ctx)
		if err != nil {
			return query.Validation{}, err
		}
		for _, v := range values {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return query.Validation{
					Message: fmt.Sprintf("preço inválido: %s", v),
				}, nil
			}
			if haveBounds && (price < bounds.Min || price > bounds.Max) {
				return query.Validation{
					Message: fmt.Sprintf("preço fora do intervalo [%v, %v]: %s", bounds.Min, bounds.Max, v),
				}, nil
			}
		}
		return query.Validation{Accepted: true}, nil
	}
}

func numericValidator(field string) query.ValidateFunc {
	return func(ctx context.Context, values []string) (query.Validation, error) {
		for _, v := range values {
			if _, err := strconv.ParseUint(v, 10, 64); err != nil {
				return query.Validation{
					Message: fmt.Sprintf("código inválido para %s: %s", field, v),
				}, nil
			}
		}
		return query.Validation{Accepted: true}, nil
	}
}

func decimalValidator(field string) query.ValidateFunc {
	return func(ctx context.Context, values []string) (query.Validation, error) {
		for _, v := range values {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return query.Validation{
					Message: fmt.Sprintf("valor inválido para %s: %s", field, v),
				}, nil
			}
		}
		return query.Validation{Accepted: true}, nil
	}
}
