package pairing

import "fmt"

// Item is one entry of an Index: an identity and its priority.
type Item[K comparable] struct {
	Key      K
	Priority float64
}

// Index is a priority queue addressed by identity. It keeps exactly one live
// heap handle per queued key; an entry exists iff the key is in the heap.
type Index[K comparable] struct {
	heap    *Heap[Item[K]]
	handles map[K]Handle
}

func lessItem[K comparable](a, b Item[K]) bool { return a.Priority < b.Priority }

// NewIndex returns an empty Index sized for about capacity keys.
func NewIndex[K comparable](capacity int) *Index[K] {
	if capacity < 0 {
		capacity = 0
	}
	return &Index[K]{
		heap:    NewWithCapacity(lessItem[K], capacity),
		handles: make(map[K]Handle, capacity),
	}
}

// Len returns the number of queued keys.
func (ix *Index[K]) Len() int { return ix.heap.Len() }

// IsEmpty reports whether no key is queued.
func (ix *Index[K]) IsEmpty() bool { return ix.heap.IsEmpty() }

// Contains reports whether k is queued.
func (ix *Index[K]) Contains(k K) bool {
	_, ok := ix.handles[k]
	return ok
}

// Get returns the current priority of k.
func (ix *Index[K]) Get(k K) (float64, bool) {
	hd, ok := ix.handles[k]
	if !ok {
		return 0, false
	}
	it, _ := ix.heap.Value(hd)
	return it.Priority, true
}

// Add queues k with priority p. A key that is already queued is updated
// instead, which only ever lowers its priority.
func (ix *Index[K]) Add(k K, p float64) error {
	if _, ok := ix.handles[k]; ok {
		_, err := ix.Update(k, p)
		return err
	}
	hd, err := ix.heap.Insert(Item[K]{Key: k, Priority: p})
	if err != nil {
		return err
	}
	ix.handles[k] = hd
	return nil
}

// Update lowers the priority of k to p. It reports whether the priority
// changed; a p that is not strictly lower is ignored.
func (ix *Index[K]) Update(k K, p float64) (bool, error) {
	hd, ok := ix.handles[k]
	if !ok {
		return false, fmt.Errorf("%w: key %v", ErrUnknownHandle, k)
	}
	return ix.heap.DecreaseKey(hd, Item[K]{Key: k, Priority: p})
}

// FindMin returns the lowest-priority item without removing it.
func (ix *Index[K]) FindMin() (Item[K], error) {
	return ix.heap.FindMin()
}

// ExtractMin removes the lowest-priority item and its index entry.
func (ix *Index[K]) ExtractMin() (Item[K], error) {
	it, err := ix.heap.ExtractMin()
	if err != nil {
		return it, err
	}
	delete(ix.handles, it.Key)
	return it, nil
}
