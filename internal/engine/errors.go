package engine

import "errors"

var (
	// ErrUnknownReference indicates an edit list line citing a clip index
	// that the original selection never assigned.
	ErrUnknownReference = errors.New("unknown clip reference")
	// ErrEmptyPlan indicates there is nothing to render. Callers should treat
	// this as a user-facing condition, not a crash.
	ErrEmptyPlan = errors.New("empty clip plan")
)
