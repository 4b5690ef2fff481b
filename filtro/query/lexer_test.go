package query

import (
	"errors"
	"strings"
	"testing"
)

func testMatchers() []FieldMatcher {
	return []FieldMatcher{
		NewFieldMatcher("produto", nil),
		NewFieldMatcher("categoria", nil),
		NewFieldMatcher("preço", nil),
	}
}

func TestLexSpacesOnly(t *testing.T) {
	tokens, err := Lex("     ", testMatchers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestLexEmpty(t *testing.T) {
	tokens, err := Lex("", testMatchers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestLexInteger(t *testing.T) {
	tokens, err := Lex("102234", testMatchers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != TokNumber || tokens[0].Text != "102234" {
		t.Errorf("expected Number(102234), got %v", tokens[0])
	}
}

func TestLexDecimal(t *testing.T) {
	tokens, err := Lex("102.5", testMatchers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != TokNumber || tokens[0].Text != "102.5" {
		t.Errorf("expected Number(102.5), got %v", tokens[0])
	}
}

func TestLexString(t *testing.T) {
	tokens, err := Lex(`"abc"`, testMatchers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != TokString || tokens[0].Text != "abc" {
		t.Errorf("expected String(abc) without quotes, got %v", tokens[0])
	}
}

func TestLexUnterminatedString(t *testing.T) {
	// No closing quote: the literal runs to end-of-input without error.
	tokens, err := Lex(`"abc`, testMatchers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != TokString || tokens[0].Text != "abc" {
		t.Errorf("expected String(abc), got %v", tokens)
	}
}

func TestLexIdent(t *testing.T) {
	tokens, err := Lex("produto", testMatchers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].Kind != TokIdent || tokens[0].Text != "produto" {
		t.Errorf("expected Ident(produto), got %v", tokens[0])
	}
}

func TestLexFieldThenValue(t *testing.T) {
	tokens, err := Lex(`produto 102234 "norte"`, testMatchers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{
		{Kind: TokIdent, Text: "produto"},
		{Kind: TokNumber, Text: "102234"},
		{Kind: TokString, Text: "norte"},
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

func TestLexInvalidToken(t *testing.T) {
	tokens, err := Lex("@", testMatchers())
	if err == nil {
		t.Fatalf("expected error, got tokens %v", tokens)
	}
	if tokens != nil {
		t.Errorf("expected no tokens alongside the error, got %v", tokens)
	}
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTokenError, got %T: %v", err, err)
	}
	if invalid.Pos != 0 || invalid.Char != '@' {
		t.Errorf("expected pos=0 char=@, got pos=%d char=%q", invalid.Pos, invalid.Char)
	}
}

func TestLexFailFast(t *testing.T) {
	// Tokens produced before the offending character are discarded.
	tokens, err := Lex("produto @", testMatchers())
	if err == nil {
		t.Fatalf("expected error, got tokens %v", tokens)
	}
	if tokens != nil {
		t.Errorf("expected partial tokens to be discarded, got %v", tokens)
	}
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTokenError, got %T: %v", err, err)
	}
	if invalid.Pos != 8 {
		t.Errorf("expected pos=8, got %d", invalid.Pos)
	}
}

func TestLexCursorDoesNotAdvanceOnError(t *testing.T) {
	l := NewLexer(testMatchers())
	l.Reset("@")
	if _, err := l.Next(); err == nil {
		t.Fatalf("expected error")
	}
	// Same failure again: the cursor stayed put.
	_, err := l.Next()
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) || invalid.Pos != 0 {
		t.Errorf("expected repeated InvalidTokenError at pos 0, got %v", err)
	}
}

func TestLexTabNotSkipped(t *testing.T) {
	// Only plain spaces are whitespace; a tab reaches the matcher loop and
	// nothing consumes it.
	_, err := Lex("\t", testMatchers())
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTokenError for tab, got %v", err)
	}
	if invalid.Char != '\t' {
		t.Errorf("expected char=tab, got %q", invalid.Char)
	}
}

func TestTokenizeIdempotentAtEnd(t *testing.T) {
	l := NewLexer(testMatchers())
	l.Reset("produto 102234")
	first, err := l.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 tokens, got %v", first)
	}
	second, err := l.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("expected empty second pass without Reset, got %v", second)
	}
}

func TestNextIdempotentAtEOF(t *testing.T) {
	l := NewLexer(testMatchers())
	l.Reset("")
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind != TokEOF {
			t.Fatalf("call %d: expected EOF, got %v", i, tok)
		}
	}
}

func TestResetRewinds(t *testing.T) {
	l := NewLexer(testMatchers())
	l.Reset("102234")
	if _, err := l.Tokenize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Reset("produto")
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Text != "produto" {
		t.Errorf("expected Ident(produto) after Reset, got %v", tokens)
	}
}

func TestLexTokensAtIncreasingPositions(t *testing.T) {
	// Every token text occurs in the input as a contiguous substring at a
	// strictly increasing position.
	inputs := []string{
		"produto 102234",
		`categoria 12345 "eletrônicos" 99`,
		"  preço 1000.50  ",
	}
	for _, input := range inputs {
		tokens, err := Lex(input, testMatchers())
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", input, err)
		}
		at := 0
		for _, tok := range tokens {
			if tok.Text == "" {
				continue
			}
			idx := strings.Index(input[at:], tok.Text)
			if idx < 0 {
				t.Fatalf("%q: token %v not found at or after offset %d", input, tok, at)
			}
			at += idx + len(tok.Text)
		}
	}
}
