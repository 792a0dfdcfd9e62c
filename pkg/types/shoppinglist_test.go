package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemUpdateEmpty(t *testing.T) {
	checked := true
	quantity := 2.0
	notes := ""

	assert.True(t, ItemUpdate{}.Empty())
	assert.False(t, ItemUpdate{Checked: &checked}.Empty())
	assert.False(t, ItemUpdate{Quantity: &quantity}.Empty())
	// A pointer to the zero value still counts as supplied.
	assert.False(t, ItemUpdate{Notes: &notes}.Empty())
}
