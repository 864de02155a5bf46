package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinHeapOrder(t *testing.T) {
	weights := []uint64{5, 1, 9, 1, 0, 7, 5, 0}
	tree := &Tree{}
	h := newMinHeap(tree, len(weights))
	for i, w := range weights {
		tree.nodes = append(tree.nodes, node{weight: w, left: None, right: None, parent: None})
		h.push(NodeID(i))
	}

	var got []NodeID
	for h.size() > 0 {
		got = append(got, h.pop())
	}
	// 동률은 id 오름차순
	require.Equal(t, []NodeID{4, 7, 1, 3, 0, 6, 5, 2}, got)
	require.Equal(t, None, h.pop())
}

func TestMinHeapInterleaved(t *testing.T) {
	tree := &Tree{}
	h := newMinHeap(tree, 4)
	add := func(w uint64) {
		tree.nodes = append(tree.nodes, node{weight: w})
		h.push(NodeID(len(tree.nodes) - 1))
	}
	add(3)
	add(2)
	require.Equal(t, NodeID(1), h.pop())
	add(1)
	add(3)
	require.Equal(t, NodeID(2), h.pop())
	require.Equal(t, NodeID(0), h.pop())
	require.Equal(t, NodeID(3), h.pop())
	require.Zero(t, h.size())
}
