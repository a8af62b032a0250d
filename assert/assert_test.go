package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_Success(t *testing.T) {
	t.Parallel()

	got, err := Type[string](any("hello"))

	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestType_Mismatch(t *testing.T) {
	t.Parallel()

	_, err := Type[int](any("hello"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestTrue_PassesSilently(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		True(true, "should not fire")
	})
}

func TestTrue_PanicsWithFormattedMessage(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "bad state: connecting", func() {
		True(false, "bad state: %s", "connecting")
	})
}

func TestTrue_PanicsWithDefaultMessage(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "assertion failed", func() {
		True(false)
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { False(false) })
	assert.Panics(t, func() { False(true) })
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { NotNil(struct{}{}) })
	assert.Panics(t, func() { NotNil(nil) })
}
