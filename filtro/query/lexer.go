package query

import (
	"fmt"
	"unicode"
)

// InvalidTokenError reports the first position where no rule could consume a
// character. The cursor does not advance past it.
type InvalidTokenError struct {
	Pos  int
	Char rune
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token at position %d: %q", e.Pos, e.Char)
}

// Lexer tokenizes a query string against an ordered list of field matchers.
// It is mutable shared state (input and cursor) and must not be used from
// multiple goroutines without external locking; Reset is the only supported
// way to reuse an instance across inputs.
type Lexer struct {
	matchers []FieldMatcher
	input    []rune
	pos      int
}

// NewLexer creates a lexer with the given matchers. Matcher order is
// precedence order and is fixed for the lifetime of the lexer.
func NewLexer(matchers []FieldMatcher) *Lexer {
	return &Lexer{matchers: matchers}
}

// Reset replaces the current input and rewinds the cursor to the start.
func (l *Lexer) Reset(input string) {
	l.input = []rune(input)
	l.pos = 0
}

// Lex tokenizes input with the given matchers, excluding the terminal EOF
// token. On error no tokens are returned.
func Lex(input string, matchers []FieldMatcher) ([]Token, error) {
	l := NewLexer(matchers)
	l.Reset(input)
	return l.Tokenize()
}

// Tokenize collects tokens up to, but not including, the terminal EOF token.
// It fails fast: the first invalid token aborts the whole call and any tokens
// already produced are discarded.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, or a TokEOF token when no input remains.
// Repeated calls at end-of-input keep returning TokEOF.
func (l *Lexer) Next() (Token, error) {
	l.skipSpaces()

	if l.pos >= len(l.input) {
		return Token{Kind: TokEOF}, nil
	}

	ch := l.input[l.pos]

	if ch == '"' {
		return l.scanString(), nil
	}

	if unicode.IsDigit(ch) {
		return l.scanNumber(), nil
	}

	for _, m := range l.matchers {
		text, ok := l.scanField(m)
		if ok {
			return Token{Kind: m.Kind, Text: text}, nil
		}
	}

	return Token{}, &InvalidTokenError{Pos: l.pos, Char: ch}
}

// skipSpaces skips plain ' ' runs only. Tabs and newlines are not whitespace
// here: they fall through to the matcher loop and surface as invalid tokens
// unless some matcher's rune class happens to cover them.
func (l *Lexer) skipSpaces() {
	for l.pos < len(l.input) && l.input[l.pos] == ' ' {
		l.pos++
	}
}

// scanString consumes a double-quoted literal, excluding the quotes from the
// token text. An unterminated literal consumes to end-of-input without error;
// the caller can detect the truncation from the missing closing quote.
func (l *Lexer) scanString() Token {
	l.pos++ // opening quote
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		l.pos++
	}
	text := string(l.input[start:l.pos])
	if l.pos < len(l.input) {
		l.pos++ // closing quote
	}
	return Token{Kind: TokString, Text: text}
}

// scanNumber consumes a maximal digit run, plus a fractional part when a '.'
// immediately follows. The token text is the exact substring, e.g. "12.5".
func (l *Lexer) scanNumber() Token {
	start := l.pos
	for l.pos < len(l.input) && unicode.IsDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.input) && unicode.IsDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	return Token{Kind: TokNumber, Text: string(l.input[start:l.pos])}
}

// scanField greedily consumes runes admitted by the matcher's rune class.
// It reports false, leaving the cursor untouched, when no rune matches.
func (l *Lexer) scanField(m FieldMatcher) (string, bool) {
	start := l.pos
	for l.pos < len(l.input) && m.Runes(l.input[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		return "", false
	}
	return string(l.input[start:l.pos]), true
}
