package directive

import (
	"partial-generator/internal/diagnostic"
)

// scanner tokenizes one directive payload. It recognizes identifiers
// (dot-qualification allowed, for package-qualified capabilities), string
// literals, commas and parentheses.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) next() (token, *diagnostic.Error) {
	s.skipSpaces()

	if s.pos >= len(s.src) {
		return token{kind: tokEOF, offset: s.pos}, nil
	}

	start := s.pos
	ch := s.src[s.pos]

	switch {
	case ch == ',':
		s.pos++
		return token{kind: tokComma, text: ",", offset: start}, nil

	case ch == '(':
		s.pos++
		return token{kind: tokLParen, text: "(", offset: start}, nil

	case ch == ')':
		s.pos++
		return token{kind: tokRParen, text: ")", offset: start}, nil

	case ch == '"':
		return s.scanString()

	case isIdentStart(ch):
		return s.scanIdent(), nil

	default:
		return token{}, diagnostic.Errorf(diagnostic.KindDirectiveSyntax,
			diagnostic.Pos{Offset: start}, "unexpected character %q", ch)
	}
}

func (s *scanner) skipSpaces() {
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
}

func (s *scanner) scanString() (token, *diagnostic.Error) {
	start := s.pos
	s.pos++ // opening quote

	for s.pos < len(s.src) {
		if s.src[s.pos] == '"' {
			text := s.src[start+1 : s.pos]
			s.pos++

			return token{kind: tokString, text: text, offset: start}, nil
		}

		s.pos++
	}

	return token{}, diagnostic.Errorf(diagnostic.KindDirectiveSyntax,
		diagnostic.Pos{Offset: start}, "unterminated string literal")
}

func (s *scanner) scanIdent() token {
	start := s.pos

	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++

		// Allow one-level-or-deeper qualification: fmt.Stringer, a.b.C.
		if s.pos+1 < len(s.src) && s.src[s.pos] == '.' && isIdentStart(s.src[s.pos+1]) {
			s.pos++
		}
	}

	return token{kind: tokIdent, text: s.src[start:s.pos], offset: start}
}

func isIdentStart(ch byte) bool {
	return ch == '_' ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || ('0' <= ch && ch <= '9')
}
