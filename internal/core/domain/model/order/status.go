package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the delivery state of an order. The workflow has exactly
// two live states that a status toggle alternates between:
//
//	Pending <──> OutForDelivery
//
// Toggling twice always restores the original value. The status is persisted
// as a boolean (false = pending, true = out for delivery).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order.
	Pending

	// OutForDelivery indicates the assigned crew member is delivering the order.
	OutForDelivery
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		OutForDelivery: "OutForDelivery",
	}
}

// Validate checks if the Status value is one of the two live states.
func (s Status) Validate() error {
	if s != Pending && s != OutForDelivery {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Toggle returns the other live state. Applying Toggle twice yields the
// original status.
func (s Status) Toggle() (Status, error) {
	switch s {
	case Pending:
		return OutForDelivery, nil
	case OutForDelivery:
		return Pending, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to toggle", s.String()),
		)
	}
}

// StatusFromDelivered maps the persisted boolean onto a Status.
func StatusFromDelivered(outForDelivery bool) Status {
	if outForDelivery {
		return OutForDelivery
	}
	return Pending
}

// IsOutForDelivery reports whether the status maps to the true boolean state.
func (s Status) IsOutForDelivery() bool {
	return s == OutForDelivery
}
