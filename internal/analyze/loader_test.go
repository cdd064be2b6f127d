package analyze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partial-generator/internal/analyze"
	"partial-generator/internal/schema"
)

func TestLoadAnnotatedUser(t *testing.T) {
	records, err := analyze.NewLoader(nil).Load("partial-generator/examples/user")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]

	assert.Equal(t, "User", rec.Record.Name)
	assert.Equal(t, schema.ShapeNamedFields, rec.Record.Shape)
	assert.Equal(t, "user", rec.PkgName)
	assert.Equal(t, "partial-generator/examples/user", rec.PkgPath)
	assert.True(t, strings.HasSuffix(rec.Dir, "examples/user"), "Dir = %q", rec.Dir)

	assert.Equal(t,
		[]string{"ID", "Name", "Email", "Secret", "CreatedAt"},
		rec.Record.FieldNames())

	require.Len(t, rec.Directives, 2)
	assert.Equal(t, `"UserInfo", derive(fmt.Stringer), omit(ID, Secret), optional(Email)`, rec.Directives[0].Text)
	assert.Equal(t, `"UserSeed", omit(ID)`, rec.Directives[1].Text)

	for _, raw := range rec.Directives {
		assert.True(t, strings.HasSuffix(raw.Pos.File, "source.go"))
		assert.Positive(t, raw.Pos.Line)
	}
}

func TestLoadRecordsFieldDetails(t *testing.T) {
	records, err := analyze.NewLoader(nil).Load("partial-generator/examples/user")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	require.True(t, rec.Record.HasField("CreatedAt"))

	var created schema.Field

	for _, f := range rec.Record.Fields {
		if f.Name == "CreatedAt" {
			created = f
		}
	}

	assert.Equal(t, "time.Time", created.Type)
	assert.Equal(t, []string{"time"}, created.PkgRefs)
	assert.Equal(t, []string{"`json:\"createdAt\"`"}, created.Annotations)

	assert.Equal(t, "time", rec.Imports["time"])
	assert.Equal(t, "fmt", rec.Imports["fmt"])
}

func TestLoadBareDirective(t *testing.T) {
	records, err := analyze.NewLoader(nil).Load("partial-generator/examples/point")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]

	assert.Equal(t, "Point", rec.Record.Name)
	require.Len(t, rec.Directives, 1)
	assert.Empty(t, rec.Directives[0].Text)
}

func TestLoadNoAnnotations(t *testing.T) {
	records, err := analyze.NewLoader(nil).Load("partial-generator/internal/common")
	require.NoError(t, err)
	assert.Empty(t, records)
}
