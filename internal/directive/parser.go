package directive

import (
	"partial-generator/internal/diagnostic"
)

// Directive is one parsed projection request.
//
// Omit and Optional are written as ordered lists but carry set semantics;
// validation treats duplicates as a single membership.
type Directive struct {
	// TargetName is the requested projection type name; empty means
	// "Partial" + record name.
	TargetName string
	// Capabilities are opaque capability identifiers from derive(...),
	// forwarded to generated output unverified.
	Capabilities []string
	// Omit lists field names excluded from the projection.
	Omit []string
	// Optional lists field names wrapped in a presence container.
	Optional []string
	// Pos is where the directive payload begins in the source, when known.
	Pos diagnostic.Pos
}

// TargetFor resolves the projection type name for the given record.
func (d Directive) TargetFor(recordName string) string {
	if d.TargetName != "" {
		return d.TargetName
	}

	return "Partial" + recordName
}

// Parse parses one directive payload, e.g.
//
//	"UserInfo", derive(fmt.Stringer), omit(ID, Secret), optional(Email)
//
// Items may appear in any order, each at most once; commas between items
// are optional. Errors carry the offending token's byte offset.
func Parse(raw string) (Directive, *diagnostic.Error) {
	p := &parser{sc: newScanner(raw)}
	return p.parse()
}

type parser struct {
	sc *scanner

	d          Directive
	haveTarget bool
	seenClause map[string]bool
}

func (p *parser) parse() (Directive, *diagnostic.Error) {
	p.seenClause = map[string]bool{}

	for {
		tok, err := p.sc.next()
		if err != nil {
			return Directive{}, err
		}

		switch tok.kind {
		case tokEOF:
			return p.d, nil

		case tokString:
			if p.haveTarget {
				return Directive{}, p.errAt(tok, "second target name literal %q", tok.text)
			}

			p.d.TargetName = tok.text
			p.haveTarget = true

		case tokIdent:
			if err := p.parseClause(tok); err != nil {
				return Directive{}, err
			}

		default:
			return Directive{}, p.errAt(tok, "expected string literal or clause keyword, got %s", tok)
		}

		if err := p.skipComma(); err != nil {
			return Directive{}, err
		}
	}
}

// parseClause handles derive(...), omit(...) and optional(...).
func (p *parser) parseClause(keyword token) *diagnostic.Error {
	switch keyword.text {
	case "derive", "omit", "optional":
	default:
		return p.errAt(keyword, "unknown keyword %q; expected derive, omit or optional", keyword.text)
	}

	if p.seenClause[keyword.text] {
		return p.errAt(keyword, "duplicate %s(...) clause", keyword.text)
	}

	p.seenClause[keyword.text] = true

	items, err := p.parseIdentList(keyword)
	if err != nil {
		return err
	}

	switch keyword.text {
	case "derive":
		p.d.Capabilities = items
	case "omit":
		p.d.Omit = items
	case "optional":
		p.d.Optional = items
	}

	return nil
}

// parseIdentList consumes "( ident [,] ident ... )" after a clause keyword.
func (p *parser) parseIdentList(keyword token) ([]string, *diagnostic.Error) {
	tok, err := p.sc.next()
	if err != nil {
		return nil, err
	}

	if tok.kind != tokLParen {
		return nil, p.errAt(tok, "expected '(' after %q, got %s", keyword.text, tok)
	}

	var items []string

	for {
		tok, err := p.sc.next()
		if err != nil {
			return nil, err
		}

		switch tok.kind {
		case tokRParen:
			return items, nil

		case tokIdent:
			items = append(items, tok.text)

			next, err := p.sc.next()
			if err != nil {
				return nil, err
			}

			switch next.kind {
			case tokComma:
			case tokRParen:
				return items, nil
			default:
				return nil, p.errAt(next, "expected ',' or ')' in %s(...), got %s", keyword.text, next)
			}

		default:
			return nil, p.errAt(tok, "expected identifier in %s(...), got %s", keyword.text, tok)
		}
	}
}

// skipComma consumes a single item separator if present.
func (p *parser) skipComma() *diagnostic.Error {
	save := p.sc.pos

	tok, err := p.sc.next()
	if err != nil {
		return err
	}

	if tok.kind != tokComma {
		p.sc.pos = save
	}

	return nil
}

func (p *parser) errAt(tok token, format string, args ...any) *diagnostic.Error {
	return diagnostic.Errorf(diagnostic.KindDirectiveSyntax,
		diagnostic.Pos{Offset: tok.offset}, format, args...)
}
