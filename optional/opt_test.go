package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpt_ZeroValueIsNone(t *testing.T) {
	var o Opt[int]
	assert.True(t, o.IsNone())
	assert.False(t, o.IsSome())

	_, ok := o.Get()
	assert.False(t, ok)
}

func TestOpt_SomeHoldsValue(t *testing.T) {
	o := Some("ada")
	require.True(t, o.IsSome())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, "ada", v)
}

func TestOpt_OrPrefersSelf(t *testing.T) {
	// Self-value wins; the fallback only fills an empty Opt.
	assert.Equal(t, Some(1), Some(1).Or(Some(2)))
	assert.Equal(t, Some(2), None[int]().Or(Some(2)))
	assert.Equal(t, None[int](), None[int]().Or(None[int]()))
}

func TestOpt_OrElse(t *testing.T) {
	assert.Equal(t, 7, Some(7).OrElse(9))
	assert.Equal(t, 9, None[int]().OrElse(9))
}

func TestOpt_MustGet(t *testing.T) {
	assert.Equal(t, 42, Some(42).MustGet())

	assert.PanicsWithValue(t, "optional: no value present", func() {
		None[int]().MustGet()
	})
}

func TestOpt_String(t *testing.T) {
	assert.Equal(t, "Some(3)", Some(3).String())
	assert.Equal(t, "None", None[int]().String())
}
