package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	base := New("listing not found")

	assert.Equal(t, "listing not found", Message(Wrap(Wrap(base, "load listing"), "update")))
	assert.Equal(t, "listing not found", Message(base))
	assert.Empty(t, Message(nil))
}

func TestWrapKeepsIdentity(t *testing.T) {
	base := New("boom")

	assert.True(t, Is(Wrapf(base, "step %d", 2), base))
	assert.Nil(t, Wrap(nil, "ignored"))
}
