package review

import (
	"errors"
	"fmt"
)

var (
	ErrNoChanges = errors.New("no decisions changed")
	ErrNotFound  = errors.New("not found")
)

// FetchError wraps a failed load of the pending list.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch pending requests: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PartialCommitError reports a commit where at least one item update failed.
// Applied lists the items the server accepted.
type PartialCommitError struct {
	RequestID int
	Failed    []int
	Applied   []int
	Err       error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("commit request %d: %d of %d updates failed: %v",
		e.RequestID, len(e.Failed), len(e.Failed)+len(e.Applied), e.Err)
}

func (e *PartialCommitError) Unwrap() error { return e.Err }
