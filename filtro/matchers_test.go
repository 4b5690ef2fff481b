package filtro

import (
	"context"
	"testing"

	"github.com/filtro/filtro/filtro/query"
)

func TestStaticMatchersOrder(t *testing.T) {
	matchers := StaticMatchers()
	want := []string{FieldProduto, FieldCategoria, FieldPreco}
	if len(matchers) != len(want) {
		t.Fatalf("expected %d matchers, got %d", len(want), len(matchers))
	}
	for i, name := range want {
		if matchers[i].Name != name {
			t.Errorf("matcher %d: expected %s, got %s", i, name, matchers[i].Name)
		}
		if matchers[i].Kind != query.TokIdent {
			t.Errorf("matcher %s: expected Ident kind, got %v", name, matchers[i].Kind)
		}
	}
}

func TestMatcherFor(t *testing.T) {
	matchers := StaticMatchers()
	m, err := MatcherFor(matchers, FieldCategoria)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != FieldCategoria {
		t.Errorf("expected categoria, got %s", m.Name)
	}

	_, err = MatcherFor(matchers, "desconto")
	if !IsKind(err, ErrUnknownField) {
		t.Errorf("expected unknown_field error, got %v", err)
	}
}

func TestStaticProdutoValidator(t *testing.T) {
	ctx := context.Background()
	m, err := MatcherFor(StaticMatchers(), FieldProduto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := m.Validate(ctx, []string{"102234", "99"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Accepted {
		t.Errorf("expected numeric codes to be accepted, got %q", v.Message)
	}

	v, err = m.Validate(ctx, []string{"102234", "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Accepted {
		t.Errorf("expected non-numeric code to be rejected")
	}
	if v.Message == "" {
		t.Errorf("expected a rejection message")
	}
}

func TestStaticPrecoValidator(t *testing.T) {
	ctx := context.Background()
	m, err := MatcherFor(StaticMatchers(), FieldPreco)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := m.Validate(ctx, []string{"1000", "12.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Accepted {
		t.Errorf("expected decimals to be accepted, got %q", v.Message)
	}

	v, err = m.Validate(ctx, []string{"caro"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Accepted {
		t.Errorf("expected non-decimal price to be rejected")
	}
}

func TestStaticMatchersLexHeadlineQuery(t *testing.T) {
	// Operator words lex as identifiers via whichever rune class covers them;
	// there is no dedicated operator tokenization at this layer.
	tokens, err := query.Lex("produto 102234 e categoria 12345", StaticMatchers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []query.Token{
		{Kind: query.TokIdent, Text: "produto"},
		{Kind: query.TokNumber, Text: "102234"},
		{Kind: query.TokIdent, Text: "e"},
		{Kind: query.TokIdent, Text: "categoria"},
		{Kind: query.TokNumber, Text: "12345"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], tokens[i])
		}
	}
}
