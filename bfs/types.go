package bfs

import (
	"errors"

	"github.com/katalvlaran/geograph/core"
)

// Sentinel errors for bounded BFS.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrNodeNotFound is returned when the origin is not a node of the graph.
	ErrNodeNotFound = errors.New("bfs: origin not found")

	// ErrBadMaxDistance is returned for a negative or NaN bound.
	ErrBadMaxDistance = errors.New("bfs: max distance must be non-negative")

	// ErrBadMode is returned for a negative weight mode.
	ErrBadMode = errors.New("bfs: weight mode must be non-negative")

	// ErrNegativeWeight is returned when a negative or NaN arc weight is met.
	ErrNegativeWeight = errors.New("bfs: negative edge weight encountered")

	// ErrAlreadyExecuted is returned by a second call to Execute.
	ErrAlreadyExecuted = errors.New("bfs: traversal already executed")

	// ErrNotReached is returned by PathTo for a node that was not finalized.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures a Walker via functional arguments.
type Option func(*Options)

// Options holds the callbacks of one traversal.
type Options struct {
	// OnEnqueue is called when a node turns grey, with its discovered distance.
	OnEnqueue func(id core.NodeID, dist float64)

	// OnVisit is called when a node turns black. Returning an error aborts
	// the traversal and Execute returns it wrapped.
	OnVisit func(id core.NodeID, dist float64) error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(core.NodeID, float64) {},
		OnVisit:   func(core.NodeID, float64) error { return nil },
	}
}

// WithOnEnqueue registers a callback run when a node is queued.
func WithOnEnqueue(fn func(id core.NodeID, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run when a node is finalized.
func WithOnVisit(fn func(id core.NodeID, dist float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
