package order

import (
	"fmt"

	"instore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a linear state machine with defined transitions to ensure
// orders follow the correct in-store purchase workflow.
//
// State transitions:
//
//	Draft ──> Pending ──┬──> Confirmed ──> Paid ──> Ready ──> Delivered
//	                    └────────────────> Paid
//
// Closing an order (shopper action) moves it from Draft to Pending. The
// cashier desk drives every later transition; Paid is reachable directly
// from Pending because verification is an optional gate. Status values
// cross the wire as lowercase strings, so String and StatusFromString are
// the canonical serialization pair.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a shopping session. The order is
	// owned exclusively by the shopper's device until it is closed.
	Draft

	// Pending indicates the shopper closed the order and handed it to the
	// checkout workflow. The remote order service is authoritative from
	// this point on.
	Pending

	// Confirmed indicates a cashier verified the order contents.
	// Verification is optional; payment may skip this state.
	Confirmed

	// Paid indicates payment has been recorded at the cash desk.
	Paid

	// Ready indicates fulfillment is complete and the order awaits pickup.
	Ready

	// Delivered indicates the order was handed to the shopper.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Pending:   "pending",
		Confirmed: "confirmed",
		Paid:      "paid",
		Ready:     "ready",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Pending:   "pending",
		Confirmed: "confirmed",
		Paid:      "paid",
		Ready:     "ready",
		Delivered: "delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Pending, Confirmed, Paid, Ready, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("draft", "pending", ...).
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones, which render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name into a Status.
// The remote order service reports statuses as lowercase strings; this is
// the inverse of String for all valid statuses.
//
// Returns:
//   - (Status, nil) for a recognized wire name
//   - (Unknown, error) otherwise
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Close transitions the status to Pending. This is the only transition the
// shopper side may initiate; everything after Pending belongs to the cash
// desk and is only ever adopted from the remote service's responses.
//
// Valid transitions:
//   - Draft -> Pending
//
// Returns:
//   - (Pending, nil) on valid transition
//   - (0, error) if the order is not in Draft status
func (s Status) Close() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to close", s.String()),
		)
	}

	return Pending, nil
}

// Verify transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed (cashier verified the order contents)
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Verify() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to verify", s.String()),
		)
	}

	return Confirmed, nil
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid (fast checkout, verification skipped)
//   - Confirmed -> Paid (payment after verification)
//
// Verification is an optional gate, not a mandatory one, so Paid is
// reachable directly from Pending.
//
// Returns:
//   - (Paid, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Pay() (Status, error) {
	if s != Pending && s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}

	return Paid, nil
}

// Fulfill transitions the status to Ready.
//
// Valid transitions:
//   - Paid -> Ready (fulfillment complete, order awaits pickup)
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Fulfill() (Status, error) {
	if s != Paid {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fulfill", s.String()),
		)
	}

	return Ready, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Ready -> Delivered (order handed to the shopper)
//
// Delivered is a final state with no further transitions possible.
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Deliver() (Status, error) {
	if s != Ready {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
