package models

import "fmt"

// Status is the decision recorded on a single request item.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"

	// StatusPartiallyApproved only ever appears on a whole TransferRequest,
	// never on an item.
	StatusPartiallyApproved Status = "partially_approved"
)

// ItemStatuses lists the values an item status may take, in display order.
var ItemStatuses = []Status{StatusPending, StatusApproved, StatusRejected}

// ParseItemStatus validates s as an item status.
func ParseItemStatus(s string) (Status, error) {
	st := Status(s)
	if !st.ValidForItem() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// ValidForItem reports whether s is one of pending, approved, rejected.
func (s Status) ValidForItem() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Label is the short human-readable form used by the CLI views.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "pending review"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusPartiallyApproved:
		return "partially approved"
	default:
		return string(s)
	}
}
