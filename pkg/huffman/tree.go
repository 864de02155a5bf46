package huffman

import (
	"fmt"
	"io"
	"strings"
)

/*** ---------- 트리 (arena) ---------- ***/

// NodeID indexes a node inside its Tree. Leaves occupy ids 0..255, equal to
// their symbol index; merged nodes follow in creation order.
type NodeID int32

// None marks a missing child or parent.
const None NodeID = -1

type node struct {
	weight      uint64
	symbol      int8
	left, right NodeID
	parent      NodeID // 코드 생성 전용 역참조
}

// Tree is a Huffman tree over the full 256-symbol alphabet. All nodes live
// in one slice owned by the tree; Release drops them together.
type Tree struct {
	nodes []node
	root  NodeID
}

// BuildTree merges the two lightest nodes until one root remains. Ties on
// weight go to the node created first.
func BuildTree(a *Alphabet) *Tree {
	t := &Tree{
		nodes: make([]node, AlphabetSize, 2*AlphabetSize-1),
		root:  None,
	}
	h := newMinHeap(t, AlphabetSize)
	for i := range t.nodes {
		l := a.Leaf(i)
		t.nodes[i] = node{weight: l.Weight, symbol: l.Symbol, left: None, right: None, parent: None}
		h.push(NodeID(i))
	}
	for h.size() > 1 {
		l := h.pop()
		r := h.pop()
		h.push(t.merge(l, r)) // l=left, r=right
	}
	t.root = h.pop()
	return t
}

func (t *Tree) merge(l, r NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		weight: t.nodes[l].weight + t.nodes[r].weight,
		left:   l,
		right:  r,
		parent: None,
	})
	t.nodes[l].parent = id
	t.nodes[r].parent = id
	return id
}

func (t *Tree) check() error {
	if t == nil {
		return ErrNilTree
	}
	if t.nodes == nil {
		return ErrReleased
	}
	return nil
}

// Release drops every node at once. The tree is unusable afterwards. It must
// not race with readers of the same tree; Session serialises the two.
func (t *Tree) Release() {
	if t == nil {
		return
	}
	t.nodes = nil
	t.root = None
}

// Released reports whether Release has been called.
func (t *Tree) Released() bool { return t == nil || t.nodes == nil }

func (t *Tree) Root() NodeID {
	if t == nil {
		return None
	}
	return t.root
}

// Len is the number of nodes, 511 for a built tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Leaf returns the id of the leaf for symbol index i.
func (t *Tree) Leaf(i int) NodeID { return NodeID(i) }

// has reports whether id names a node of t. Every id fails on a released
// tree.
func (t *Tree) has(id NodeID) bool {
	return t != nil && id >= 0 && int(id) < len(t.nodes)
}

// The accessors below return zero values (None for ids) when id is not in
// the tree, which includes every id once the tree is released.

func (t *Tree) Weight(id NodeID) uint64 {
	if !t.has(id) {
		return 0
	}
	return t.nodes[id].weight
}

func (t *Tree) Left(id NodeID) NodeID {
	if !t.has(id) {
		return None
	}
	return t.nodes[id].left
}

func (t *Tree) Right(id NodeID) NodeID {
	if !t.has(id) {
		return None
	}
	return t.nodes[id].right
}

func (t *Tree) Parent(id NodeID) NodeID {
	if !t.has(id) {
		return None
	}
	return t.nodes[id].parent
}

func (t *Tree) IsLeaf(id NodeID) bool {
	if !t.has(id) {
		return false
	}
	n := &t.nodes[id]
	return n.left == None && n.right == None
}

// Symbol is only meaningful on leaves.
func (t *Tree) Symbol(id NodeID) int8 {
	if !t.has(id) {
		return 0
	}
	return t.nodes[id].symbol
}

// Depth counts edges from id up to the root, -1 for an unknown id.
func (t *Tree) Depth(id NodeID) int {
	if !t.has(id) {
		return -1
	}
	d := 0
	for p := t.nodes[id].parent; p != None; p = t.nodes[p].parent {
		d++
	}
	return d
}

// Dump writes the tree in pre-order, one node per line, with one '|' per
// level of depth.
func (t *Tree) Dump(w io.Writer) error {
	if err := t.check(); err != nil {
		return err
	}
	return t.dump(w, t.root, "")
}

func (t *Tree) dump(w io.Writer, id NodeID, prefix string) error {
	n := &t.nodes[id]
	if t.IsLeaf(id) {
		_, err := fmt.Fprintf(w, "%s<freq: %d> <char: %d>\n", prefix, n.weight, n.symbol)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s<freq: %d>\n", prefix, n.weight); err != nil {
		return err
	}
	if err := t.dump(w, n.left, prefix+"|"); err != nil {
		return err
	}
	return t.dump(w, n.right, prefix+"|")
}

func (t *Tree) String() string {
	var sb strings.Builder
	if err := t.Dump(&sb); err != nil {
		return err.Error()
	}
	return sb.String()
}
