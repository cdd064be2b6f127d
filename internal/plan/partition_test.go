package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partial-generator/internal/directive"
	"partial-generator/internal/schema"
)

func recordUser() *schema.SourceRecord {
	return &schema.SourceRecord{
		Name:  "User",
		Shape: schema.ShapeNamedFields,
		Fields: []schema.Field{
			{Name: "ID", Type: "int64"},
			{Name: "Name", Type: "string"},
			{Name: "Email", Type: "string"},
		},
	}
}

func TestPartition_Total(t *testing.T) {
	fields := Partition(recordUser(), directive.Directive{
		Omit:     []string{"ID"},
		Optional: []string{"Email"},
	})

	require.Len(t, fields, 3)
	assert.Equal(t, Omitted, fields[0].Class)
	assert.Equal(t, Included, fields[1].Class)
	assert.Equal(t, Optional, fields[2].Class)
}

func TestPartition_KeepsDeclarationOrder(t *testing.T) {
	// Directive lists names in a scrambled order; classification output
	// must still follow the record's declared order.
	fields := Partition(recordUser(), directive.Directive{
		Omit: []string{"Email", "ID"},
	})

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"ID", "Name", "Email"}, names)
}

func TestPartition_DefaultDirectiveIncludesEverything(t *testing.T) {
	fields := Partition(recordUser(), directive.Directive{})

	for _, f := range fields {
		assert.Equal(t, Included, f.Class, "field %s", f.Name)
	}
}

func TestClassification_String(t *testing.T) {
	assert.Equal(t, "Included", Included.String())
	assert.Equal(t, "Omitted", Omitted.String())
	assert.Equal(t, "Optional", Optional.String())
	assert.Equal(t, "Classification(9)", Classification(9).String())
}
