package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []token {
	t.Helper()

	sc := newScanner(src)

	var toks []token

	for {
		tok, err := sc.next()
		require.Nil(t, err)

		if tok.kind == tokEOF {
			return toks
		}

		toks = append(toks, tok)
	}
}

func TestScanner_Tokens(t *testing.T) {
	toks := scanAll(t, ` "UserInfo", omit(ID)`)

	require.Len(t, toks, 6)
	assert.Equal(t, token{kind: tokString, text: "UserInfo", offset: 1}, toks[0])
	assert.Equal(t, token{kind: tokComma, text: ",", offset: 11}, toks[1])
	assert.Equal(t, token{kind: tokIdent, text: "omit", offset: 13}, toks[2])
	assert.Equal(t, token{kind: tokLParen, text: "(", offset: 17}, toks[3])
	assert.Equal(t, token{kind: tokIdent, text: "ID", offset: 18}, toks[4])
	assert.Equal(t, token{kind: tokRParen, text: ")", offset: 20}, toks[5])
}

func TestScanner_QualifiedIdent(t *testing.T) {
	toks := scanAll(t, "fmt.Stringer")

	require.Len(t, toks, 1)
	assert.Equal(t, "fmt.Stringer", toks[0].text)
}

func TestScanner_TrailingDotStopsIdent(t *testing.T) {
	sc := newScanner("fmt.")

	tok, err := sc.next()
	require.Nil(t, err)
	assert.Equal(t, "fmt", tok.text)

	_, err = sc.next()
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "unexpected character")
}

func TestScanner_UnexpectedCharacter(t *testing.T) {
	sc := newScanner("omit=x")

	tok, err := sc.next()
	require.Nil(t, err)
	assert.Equal(t, "omit", tok.text)

	_, err = sc.next()
	require.NotNil(t, err)
	assert.Equal(t, 4, err.Pos.Offset)
}
