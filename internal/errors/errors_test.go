package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return "code " + e.code }

func TestAsType(t *testing.T) {
	base := &codeError{code: "23505"}

	got, ok := AsType[*codeError](Wrap(fmt.Errorf("insert: %w", base), "create shop"))
	require.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}
