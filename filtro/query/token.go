package query

// Token represents a lexical token: its kind and the exact input text consumed.
// Tokens are plain values; two tokens are equal when kind and text both match.
type Token struct {
	Kind TokenKind
	Text string
}

// TokenKind is the type of token
type TokenKind int

const (
	TokEOF TokenKind = iota
	TokIdent
	TokNumber
	TokString
	TokComma
	TokEquals
	TokAnd
	TokOr
	TokNot
	TokNotEquals
	TokGt
	TokLt
	TokGte
	TokLte
	TokLParen
	TokRParen
	TokIllegal
)

func (k TokenKind) String() string {
	switch k {
	case TokEOF:
		return "EOF"
	case TokIdent:
		return "Ident"
	case TokNumber:
		return "Number"
	case TokString:
		return "String"
	case TokComma:
		return "Comma"
	case TokEquals:
		return "Equals"
	case TokAnd:
		return "And"
	case TokOr:
		return "Or"
	case TokNot:
		return "Not"
	case TokNotEquals:
		return "NotEquals"
	case TokGt:
		return "Gt"
	case TokLt:
		return "Lt"
	case TokGte:
		return "Gte"
	case TokLte:
		return "Lte"
	case TokLParen:
		return "LParen"
	case TokRParen:
		return "RParen"
	case TokIllegal:
		return "Illegal"
	default:
		return "Unknown"
	}
}
