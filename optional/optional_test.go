package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	o := Some(42)

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, o.NonEmpty())
	assert.False(t, o.Empty())
	assert.Equal(t, "Some(42)", o.String())
}

func TestNone(t *testing.T) {
	t.Parallel()

	o := None[int]()

	_, ok := o.Get()
	assert.False(t, ok)
	assert.True(t, o.Empty())
	assert.Equal(t, 7, o.GetOrElse(7))
	assert.Equal(t, "None", o.String())
}

func TestForEach(t *testing.T) {
	t.Parallel()

	calls := 0

	Some("x").ForEach(func(string) { calls++ })
	None[string]().ForEach(func(string) { calls++ })

	assert.Equal(t, 1, calls)
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := Map(Some(3), func(v int) int { return v * 2 })
	v, ok := doubled.Get()
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	absent := Map(None[int](), func(v int) int { return v * 2 })
	assert.True(t, absent.Empty())
}
