package directive

import "fmt"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokComma
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of directive"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string literal"
	case tokComma:
		return "','"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return fmt.Sprintf("token(%d)", int(k))
	}
}

// token is one lexeme of a directive payload. Offset is the byte position
// of the token's first character within the payload.
type token struct {
	kind   tokenKind
	text   string
	offset int
}

func (t token) String() string {
	if t.kind == tokIdent || t.kind == tokString {
		return fmt.Sprintf("%s %q", t.kind, t.text)
	}

	return t.kind.String()
}
