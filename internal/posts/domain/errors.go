package domain

import (
	"errors"
	"fmt"
)

// ErrShapeViolation matches every ShapeError through errors.Is.
var ErrShapeViolation = errors.New("post collection shape violation")

// ShapeError reports a collection that is not an ordered sequence of posts,
// or an element that lacks its identity.
type ShapeError struct {
	Index  int // element position, -1 when the collection itself is wrong
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrShapeViolation, e.Reason)
	}
	return fmt.Sprintf("%s: element %d: %s", ErrShapeViolation, e.Index, e.Reason)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeViolation
}

func shapeErr(index int, format string, args ...any) error {
	return &ShapeError{Index: index, Reason: fmt.Sprintf(format, args...)}
}
