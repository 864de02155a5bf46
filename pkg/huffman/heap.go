package huffman

/*** ---------- MinHeap (가중치 → 생성 순서) ---------- ***/

// minHeap orders node ids by (weight, id). Leaves have ids 0..255 and merged
// nodes are numbered in creation order, so equal weights pop oldest first.
type minHeap struct {
	tree *Tree
	arr  []NodeID
}

func newMinHeap(t *Tree, capacity int) *minHeap {
	return &minHeap{tree: t, arr: make([]NodeID, 0, capacity)}
}

func (h *minHeap) size() int { return len(h.arr) }

func (h *minHeap) lt(a, b NodeID) bool {
	wa, wb := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

func (h *minHeap) push(id NodeID) {
	h.arr = append(h.arr, id)
	i := len(h.arr) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.lt(h.arr[i], h.arr[parent]) { // parent <= child 이면 stop
			return
		}
		h.arr[parent], h.arr[i] = h.arr[i], h.arr[parent]
		i = parent
	}
}

func (h *minHeap) pop() NodeID {
	if h.size() == 0 {
		return None
	}
	out := h.arr[0]
	last := h.arr[h.size()-1]
	h.arr = h.arr[:h.size()-1]
	if h.size() == 0 {
		return out
	}
	h.arr[0] = last

	parent := 0
	child := 2*parent + 1
	for child < h.size() {
		if child+1 < h.size() && h.lt(h.arr[child+1], h.arr[child]) { // 더 작은 자식
			child++
		}
		if !h.lt(h.arr[child], h.arr[parent]) {
			return out
		}
		h.arr[parent], h.arr[child] = h.arr[child], h.arr[parent]
		parent = child
		child = 2*child + 1
	}
	return out
}
