package scorekeep

import "errors"

// ErrScoreExceeded signals a threshold crossing for callers who prefer the
// error form over inspecting the Outcome. It marks expected behavior of a
// failing counter, not a storage fault.
var ErrScoreExceeded = errors.New("score threshold exceeded")

// Outcome reports what one Apply call did. When no crossing occurred,
// Exceeded is false and Value is nil. When a crossing occurred, Value holds
// the callback's return (nil when no callback was configured).
type Outcome struct {
	Exceeded bool
	Value    any
}

// Err returns ErrScoreExceeded when the outcome is a crossing, nil
// otherwise. It lets callers who want a raised condition write
//
//	if err := out.Err(); err != nil { ... }
//
// while callers who treat crossings as plain signals check Exceeded.
func (o Outcome) Err() error {
	if o.Exceeded {
		return ErrScoreExceeded
	}
	return nil
}
