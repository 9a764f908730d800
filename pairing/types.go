// SPDX-License-Identifier: MIT
//
// Package pairing implements a decrease-key priority queue built on a pairing
// heap, plus an identity-keyed priority index layered on top of it.
//
// The heap is a forest of multiway trees encoded as leftmost-child /
// next-sibling links. Nodes live in an arena slice and are addressed by
// Handle, so every link is an integer index rather than a pointer:
//
//	child - leftmost child of the node, or none.
//	next  - next sibling to the right, or none.
//	prev  - parent when the node is a leftmost child, previous sibling otherwise.
//
// Operations:
//
//	Insert       O(1)       link the new node against the root.
//	FindMin      O(1)
//	ExtractMin   O(log n)   amortized; two-pass pairing of the root's children.
//	DecreaseKey  O(1)       amortized; cut the subtree and relink it at the root.
//
// Errors:
//
//	ErrEmpty          FindMin/ExtractMin on an empty heap.
//	ErrUnknownHandle  DecreaseKey/Update with a handle or key that is not queued.
//	ErrNoOrdering     heap built with neither a comparator nor ordered elements.
//
// A heap instance is not safe for concurrent use.
package pairing

import "errors"

// Sentinel errors returned by Heap and Index.
var (
	// ErrEmpty indicates FindMin or ExtractMin was called on an empty structure.
	ErrEmpty = errors.New("pairing: empty structure")

	// ErrUnknownHandle indicates a handle (or index key) that is not currently queued.
	ErrUnknownHandle = errors.New("pairing: unknown handle")

	// ErrNoOrdering indicates the heap has no comparator for its element type.
	ErrNoOrdering = errors.New("pairing: no ordering for element type")
)

// Handle addresses one live element of a Heap. Handles are recycled after
// the element is extracted, so a stale handle must not be reused.
type Handle int

// none marks an absent link.
const none = -1

// node is one arena slot.
type node[T any] struct {
	value T
	child int
	next  int
	prev  int
	live  bool
}
