package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	base := &codedError{code: "E1"}
	wrapped := Wrap(Wrap(base, "inner"), "outer")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)

	_, ok = AsType[*codedError](nil)
	assert.False(t, ok)
}

func TestWrapKeepsIdentity(t *testing.T) {
	sentinel := New("sentinel")

	assert.True(t, Is(Wrapf(sentinel, "while %s", "testing"), sentinel))
	assert.Equal(t, sentinel, Cause(Wrap(sentinel, "context")))
	assert.Nil(t, Wrap(nil, "nothing"))
}
