package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSetTieBreak(t *testing.T) {
	set := newOpenSet[string]()
	set.push("a", 3, 2) // f=5 h=2
	set.push("b", 4, 1) // f=5 h=1
	set.push("c", 4, 1) // f=5 h=1, inserted after b
	set.push("d", 0, 4) // f=4

	var order []string
	for set.Len() > 0 {
		order = append(order, set.popMin().Node)
	}
	assert.Equal(t, []string{"d", "b", "c", "a"}, order)
}

func TestOpenSetDecreaseKey(t *testing.T) {
	set := newOpenSet[string]()
	set.push("a", 2, 1)
	set.push("b", 5, 1)
	set.push("c", 3, 1)

	item, ok := set.lookup("b")
	require.True(t, ok)
	set.decrease(item, 0)
	assert.Equal(t, 1.0, item.FCost)

	first := set.popMin()
	assert.Equal(t, "b", first.Node)
	_, stillOpen := set.lookup("b")
	assert.False(t, stillOpen)
	assert.Equal(t, map[string]bool{"a": true, "c": true}, set.nodes())
}

func TestOpenSetDecreaseKeepsInsertionOrder(t *testing.T) {
	set := newOpenSet[string]()
	set.push("early", 4, 1)
	set.push("late", 2, 1)

	// lowering "early" to tie with "late" puts it first again
	item, _ := set.lookup("early")
	set.decrease(item, 2)
	assert.Equal(t, "early", set.popMin().Node)
	assert.Equal(t, "late", set.popMin().Node)
}
