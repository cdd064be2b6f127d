package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partial-generator/internal/diagnostic"
	"partial-generator/internal/directive"
	"partial-generator/internal/schema"
)

func TestResolve_ConcreteUserScenario(t *testing.T) {
	rec := recordUser()

	resolved, err := Resolve(rec, []directive.Raw{
		{Text: `omit(ID), optional(Email)`},
	})
	require.Nil(t, err)
	require.Len(t, resolved, 1)

	r := resolved[0]
	assert.Equal(t, "PartialUser", r.Projection.Name)

	require.Len(t, r.Projection.Fields, 2)
	assert.Equal(t, "Name", r.Projection.Fields[0].Name)
	assert.Equal(t, "string", r.Projection.Fields[0].Type)
	assert.Equal(t, "Email", r.Projection.Fields[1].Name)
	assert.Equal(t, "optional.Opt[string]", r.Projection.Fields[1].Type)
	assert.True(t, r.Projection.Fields[1].Optional)

	require.NotNil(t, r.Remainder)
	assert.Equal(t, "PartialUserOmitted", r.Remainder.Name)
	require.Len(t, r.Remainder.Fields, 1)
	assert.Equal(t, "ID", r.Remainder.Fields[0].Name)
	assert.Equal(t, "int64", r.Remainder.Fields[0].Type)

	assert.Equal(t, Operations{
		ToFull:       "ToUser",
		ToFullCloned: "ToUserCloned",
		FromFull:     "PartialUserFromUser",
		Split:        "PartialUserFromUserWithOmitted",
		Mirror:       "IntoPartialUserWithOmitted",
	}, r.Ops)
}

func TestResolve_NoDirectiveDefaultsToFullProjection(t *testing.T) {
	rec := &schema.SourceRecord{
		Name:  "Point",
		Shape: schema.ShapeNamedFields,
		Fields: []schema.Field{
			{Name: "X", Type: "int"},
			{Name: "Y", Type: "int"},
		},
	}

	resolved, err := Resolve(rec, nil)
	require.Nil(t, err)
	require.Len(t, resolved, 1)

	r := resolved[0]
	assert.Equal(t, "PartialPoint", r.Projection.Name)
	assert.Len(t, r.Projection.Fields, 2)
	assert.Nil(t, r.Remainder, "remainder is the unit value when nothing is omitted")
	assert.Contains(t, r.Projection.Doc, "including all fields")
}

func TestResolve_MultiDirectiveIndependence(t *testing.T) {
	rec := &schema.SourceRecord{
		Name:  "Pair",
		Shape: schema.ShapeNamedFields,
		Fields: []schema.Field{
			{Name: "X", Type: "int"},
			{Name: "Y", Type: "int"},
		},
	}

	resolved, err := Resolve(rec, []directive.Raw{
		{Text: `"A", omit(X)`},
		{Text: `"B", omit(Y)`},
	})
	require.Nil(t, err)
	require.Len(t, resolved, 2)

	a, b := resolved[0], resolved[1]

	assert.Equal(t, "A", a.Projection.Name)
	require.Len(t, a.Projection.Fields, 1)
	assert.Equal(t, "Y", a.Projection.Fields[0].Name)
	require.NotNil(t, a.Remainder)
	assert.Equal(t, "X", a.Remainder.Fields[0].Name)

	assert.Equal(t, "B", b.Projection.Name)
	require.Len(t, b.Projection.Fields, 1)
	assert.Equal(t, "X", b.Projection.Fields[0].Name)
	require.NotNil(t, b.Remainder)
	assert.Equal(t, "Y", b.Remainder.Fields[0].Name)
}

func TestResolve_SwappedDirectivesSwapOutputOrder(t *testing.T) {
	rec := recordUser()

	forward, err := Resolve(rec, []directive.Raw{
		{Text: `"A", omit(ID)`},
		{Text: `"B", omit(Email)`},
	})
	require.Nil(t, err)

	backward, err := Resolve(rec, []directive.Raw{
		{Text: `"B", omit(Email)`},
		{Text: `"A", omit(ID)`},
	})
	require.Nil(t, err)

	require.Len(t, forward, 2)
	require.Len(t, backward, 2)
	assert.Empty(t, cmp.Diff(forward[0], backward[1]))
	assert.Empty(t, cmp.Diff(forward[1], backward[0]))
}

func TestResolve_Deterministic(t *testing.T) {
	raws := []directive.Raw{
		{Text: `"UserInfo", derive(fmt.Stringer), omit(ID), optional(Email)`},
	}

	first, err := Resolve(recordUser(), raws)
	require.Nil(t, err)

	second, err := Resolve(recordUser(), raws)
	require.Nil(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

func TestResolve_ShapeErrorBeforeDirectiveErrors(t *testing.T) {
	rec := &schema.SourceRecord{Name: "Reader", Shape: schema.ShapeNotStruct}

	// The directive is also malformed; the shape error must win because the
	// eligibility check runs once per record, before any parsing.
	_, err := Resolve(rec, []directive.Raw{{Text: `bogus(`}})
	require.NotNil(t, err)
	assert.Equal(t, diagnostic.KindUnsupportedShape, err.Kind)
}

func TestResolve_FirstDirectiveErrorWins(t *testing.T) {
	_, err := Resolve(recordUser(), []directive.Raw{
		{Text: `nonsense(x)`, Pos: diagnostic.Pos{File: "user.go", Line: 3, Column: 11}},
		{Text: `omit(NoSuchField)`},
	})
	require.NotNil(t, err)

	assert.Equal(t, diagnostic.KindDirectiveSyntax, err.Kind)
	assert.Equal(t, 3, err.Pos.Line)
}

func TestResolve_ConflictAborts(t *testing.T) {
	_, err := Resolve(recordUser(), []directive.Raw{
		{Text: `omit(Email), optional(Email)`},
	})
	require.NotNil(t, err)

	assert.Equal(t, diagnostic.KindConflictingClassification, err.Kind)
	assert.Contains(t, err.Message, "Email")
}

func TestResolve_NoPartialOutputOnLateFailure(t *testing.T) {
	// First directive is fine, second references an unknown field: the
	// whole pass fails and nothing is returned.
	resolved, err := Resolve(recordUser(), []directive.Raw{
		{Text: `"A", omit(ID)`},
		{Text: `"B", omit(Ghost)`},
	})
	require.NotNil(t, err)
	assert.Equal(t, diagnostic.KindUnknownField, err.Kind)
	assert.Nil(t, resolved)
}
