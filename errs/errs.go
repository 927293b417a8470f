// Package errs defines the failure categories shared by every container in ironds.
//
// Each container package declares its own sentinels (for example queues.ErrQueueEmpty)
// that wrap one of the categories below, so callers can match either the precise
// failure or the whole category with errors.Is:
//
//	if errors.Is(err, errs.ErrEmptyContainer) {
//	    // queue, stack, list or graph had nothing to give
//	}
package errs

import "fmt"

var (
	// ErrIndexOutOfRange reports an index or position outside the valid bounds.
	ErrIndexOutOfRange = fmt.Errorf("index out of range")

	// ErrEmptyContainer reports an operation that needs at least one element.
	ErrEmptyContainer = fmt.Errorf("container is empty")

	// ErrFullContainer reports that a fixed capacity would be exceeded.
	ErrFullContainer = fmt.Errorf("container is full")

	// ErrNotFound reports that a looked-up value or edge does not exist.
	ErrNotFound = fmt.Errorf("not found")

	// ErrDuplicateEdge reports an edge that is already present.
	ErrDuplicateEdge = fmt.Errorf("duplicate edge")

	// ErrInvalidArgument reports an argument no call could succeed with.
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// ErrInternalConsistency reports a broken invariant the container should have kept.
	ErrInternalConsistency = fmt.Errorf("internal consistency violated")
)
