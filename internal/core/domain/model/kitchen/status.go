package kitchen

import (
	"strings"

	"ordering/internal/pkg/errs"
)

// Status is the kitchen-side progress of a ticket.
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

// ParseStatus converts a wire status name, failing with InvalidStatusError.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewInvalidStatusError(s)
}

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
