package playable

import "fmt"

// ValidationError is an error when a caller provides invalid input, i.e., too few players or a non-positive bet
type ValidationError string

func (v ValidationError) Error() string {
	return string(v)
}

// NewValidationError returns a formatted ValidationError
func NewValidationError(format string, a ...interface{}) ValidationError {
	return ValidationError(fmt.Sprintf(format, a...))
}

// StateError is an error when an operation is attempted out of order, i.e., the turn before the flop
type StateError string

func (s StateError) Error() string {
	return string(s)
}

// NewStateError returns a formatted StateError
func NewStateError(format string, a ...interface{}) StateError {
	return StateError(fmt.Sprintf(format, a...))
}

// SettlementError is an error when the pot cannot be settled, i.e., the contributions don't add up
type SettlementError string

func (s SettlementError) Error() string {
	return string(s)
}

// NewSettlementError returns a formatted SettlementError
func NewSettlementError(format string, a ...interface{}) SettlementError {
	return SettlementError(fmt.Sprintf(format, a...))
}
