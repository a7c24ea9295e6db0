package envvar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Setenv("TEST_STRING_VAR", "hello")

	v, ok := String("TEST_STRING_VAR")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	v, ok = String("TEST_STRING_MISSING", "fallback")
	assert.False(t, ok)
	assert.Equal(t, "fallback", v)
}

func TestBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "true")

	v, ok := Bool("TEST_BOOL_VAR")
	assert.True(t, ok)
	assert.True(t, v)

	t.Setenv("TEST_BOOL_INVALID", "not-a-bool")
	v, ok = Bool("TEST_BOOL_INVALID", true)
	assert.False(t, ok)
	assert.True(t, v)
}

func TestSetBool(t *testing.T) {
	enabled := false
	assert.False(t, SetBool("TEST_SET_BOOL_MISSING", &enabled))
	assert.False(t, enabled)

	t.Setenv("TEST_SET_BOOL_VAR", "1")
	assert.True(t, SetBool("TEST_SET_BOOL_VAR", &enabled))
	assert.True(t, enabled)
}

func TestDuration(t *testing.T) {
	t.Setenv("TEST_DURATION_VAR", "1m30s")

	v, ok := Duration("TEST_DURATION_VAR")
	assert.True(t, ok)
	assert.Equal(t, 90*time.Second, v)

	v, ok = Duration("TEST_DURATION_MISSING", 5*time.Second)
	assert.False(t, ok)
	assert.Equal(t, 5*time.Second, v)
}
