package order

import (
	"strings"

	"ordering/internal/pkg/errs"
)

// Status is the customer-facing lifecycle state of an order.
//
//	Pending ──> Preparing ──> Ready ──> Completed
//
// The zero value Unknown is never a valid status.
type Status int

const (
	Unknown Status = iota
	Pending
	Preparing
	Ready
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
	}
}

// ParseStatus converts the wire name of a status. Anything outside
// pending, preparing, ready, completed fails with InvalidStatusError.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewInvalidStatusError(s)
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, Ready, Completed}
}

func (s Status) Validate() error {
	switch s {
	case Pending, Preparing, Ready, Completed:
		return nil
	default:
		return errs.NewInvalidStatusError(s.String())
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Advances reports whether next is strictly later in the lifecycle than s.
func (s Status) Advances(next Status) bool {
	if next.Validate() != nil {
		return false
	}
	return next > s
}

// IsFinal reports whether no further transition exists.
func (s Status) IsFinal() bool {
	return s == Completed
}
