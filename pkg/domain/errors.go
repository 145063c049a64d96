// Package domain defines the error taxonomy shared by all ledger operations.
//
// Every mutation failure is one of the types below; none is fatal and every
// failure leaves the ledger exactly as it was before the call.
package domain

import (
	"errors"
	"fmt"

	"github.com/securebank/securebank/pkg/money"
)

// Common sentinel errors.
var (
	// ErrAlreadyExists is returned when trying to create a resource that already exists.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrUnauthorized is returned when a caller is not authorized to perform an action.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports malformed or missing input. Always recoverable;
// the message is surfaced verbatim to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports an unknown account number.
type NotFoundError struct {
	AccountNumber string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account %s not found", e.AccountNumber)
}

// InsufficientFundsError reports a withdrawal exceeding the balance,
// including the shortfall amount.
type InsufficientFundsError struct {
	Requested money.Money
	Available money.Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: requested %s, available %s (short by %s)",
		e.Requested, e.Available, e.Shortfall())
}

// Shortfall is the amount by which the request exceeds the balance.
func (e *InsufficientFundsError) Shortfall() money.Money {
	short, err := e.Requested.Sub(e.Available)
	if err != nil {
		return money.Zero
	}
	return short
}

// Policy names for PolicyError.
const (
	PolicyDailyWithdrawalLimit = "daily_withdrawal_limit"
	PolicyCashDepositCeiling   = "cash_deposit_ceiling"
)

// PolicyError reports a limit or threshold breach: which limit, and by how
// much it was exceeded.
type PolicyError struct {
	Policy string
	Limit  money.Money
	Excess money.Money
	Reason string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("%s: limit %s exceeded by %s: %s", e.Policy, e.Limit, e.Excess, e.Reason)
}
