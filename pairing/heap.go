package pairing

import (
	"cmp"
	"fmt"
)

// Heap is a min pairing heap over T.
type Heap[T any] struct {
	less  func(a, b T) bool
	nodes []node[T]
	free  []int
	root  int
	size  int

	// scratch holds detached children during ExtractMin.
	scratch []int
}

// NewOrdered returns a heap ordered by the intrinsic ordering of T.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New(cmp.Less[T])
}

// New returns a heap ordered by less. A nil less is accepted here and
// reported as ErrNoOrdering by the first Insert.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less, root: none}
}

// NewWithCapacity is New with a preallocated arena.
func NewWithCapacity[T any](less func(a, b T) bool, capacity int) *Heap[T] {
	h := New(less)
	if capacity > 0 {
		h.nodes = make([]node[T], 0, capacity)
	}
	return h
}

// Len returns the number of queued elements.
func (h *Heap[T]) Len() int { return h.size }

// IsEmpty reports whether no element is queued.
func (h *Heap[T]) IsEmpty() bool { return h.size == 0 }

// Insert queues v and returns its handle.
func (h *Heap[T]) Insert(v T) (Handle, error) {
	if h.less == nil {
		return Handle(none), ErrNoOrdering
	}

	idx := h.alloc(v)
	if h.root == none {
		h.root = idx
	} else {
		h.root = h.link(h.root, idx)
	}
	h.size++

	return Handle(idx), nil
}

// FindMin returns the minimum element without removing it.
func (h *Heap[T]) FindMin() (T, error) {
	if h.root == none {
		var zero T
		return zero, ErrEmpty
	}
	return h.nodes[h.root].value, nil
}

// ExtractMin removes and returns the minimum element. The root's children are
// recombined by pairing them left to right and folding the pairs right to left.
func (h *Heap[T]) ExtractMin() (T, error) {
	if h.root == none {
		var zero T
		return zero, ErrEmpty
	}

	old := h.root
	v := h.nodes[old].value

	// 1) Detach every child of the old root into scratch.
	h.scratch = h.scratch[:0]
	for c := h.nodes[old].child; c != none; {
		next := h.nodes[c].next
		h.nodes[c].next = none
		h.nodes[c].prev = none
		h.scratch = append(h.scratch, c)
		c = next
	}

	// 2) First pass: link consecutive pairs, left to right, in place.
	n := 0
	for i := 0; i < len(h.scratch); i += 2 {
		if i+1 < len(h.scratch) {
			h.scratch[n] = h.link(h.scratch[i], h.scratch[i+1])
		} else {
			h.scratch[n] = h.scratch[i]
		}
		n++
	}

	// 3) Second pass: fold right to left into a single tree.
	newRoot := none
	if n > 0 {
		newRoot = h.scratch[n-1]
		for j := n - 2; j >= 0; j-- {
			newRoot = h.link(h.scratch[j], newRoot)
		}
	}

	h.root = newRoot
	h.release(old)
	h.size--

	return v, nil
}

// DecreaseKey lowers the element behind hd to v. It reports false, and leaves
// the heap untouched, when v does not compare strictly less than the current
// value: keys are never increased.
func (h *Heap[T]) DecreaseKey(hd Handle, v T) (bool, error) {
	idx := int(hd)
	if !h.isLive(idx) {
		return false, fmt.Errorf("%w: %d", ErrUnknownHandle, idx)
	}
	if !h.less(v, h.nodes[idx].value) {
		return false, nil
	}

	h.nodes[idx].value = v
	if idx == h.root {
		return true, nil
	}

	// Cut idx (with its subtree) out of its sibling list.
	p, nx := h.nodes[idx].prev, h.nodes[idx].next
	if h.nodes[p].child == idx {
		h.nodes[p].child = nx
	} else {
		h.nodes[p].next = nx
	}
	if nx != none {
		h.nodes[nx].prev = p
	}
	h.nodes[idx].next = none
	h.nodes[idx].prev = none

	h.root = h.link(h.root, idx)

	return true, nil
}

// Value returns the element behind hd.
func (h *Heap[T]) Value(hd Handle) (T, bool) {
	idx := int(hd)
	if !h.isLive(idx) {
		var zero T
		return zero, false
	}
	return h.nodes[idx].value, true
}

// link merges two detached trees and returns the surviving root. The
// smaller root wins; on ties a stays root. The loser becomes the winner's
// leftmost child.
func (h *Heap[T]) link(a, b int) int {
	if b == none {
		return a
	}
	if a == none {
		return b
	}
	if h.less(h.nodes[b].value, h.nodes[a].value) {
		h.adopt(b, a)
		return b
	}
	h.adopt(a, b)
	return a
}

// adopt makes c the leftmost child of p.
func (h *Heap[T]) adopt(p, c int) {
	first := h.nodes[p].child
	h.nodes[c].prev = p
	h.nodes[c].next = first
	if first != none {
		h.nodes[first].prev = c
	}
	h.nodes[p].child = c
}

func (h *Heap[T]) alloc(v T) int {
	n := node[T]{value: v, child: none, next: none, prev: none, live: true}
	if k := len(h.free); k > 0 {
		idx := h.free[k-1]
		h.free = h.free[:k-1]
		h.nodes[idx] = n
		return idx
	}
	h.nodes = append(h.nodes, n)
	return len(h.nodes) - 1
}

func (h *Heap[T]) release(idx int) {
	var zero T
	h.nodes[idx] = node[T]{value: zero, child: none, next: none, prev: none}
	h.free = append(h.free, idx)
}

func (h *Heap[T]) isLive(idx int) bool {
	return idx >= 0 && idx < len(h.nodes) && h.nodes[idx].live
}
