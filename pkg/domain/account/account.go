// Package account defines the Account and Transaction entities and their
// invariant checks. Balance rules are enforced here and at the service
// boundary, never inside storage.
package account

import (
	"strings"
	"time"

	"github.com/securebank/securebank/pkg/domain"
	"github.com/securebank/securebank/pkg/money"
)

// Type classifies an account.
type Type string

const (
	TypeSavings Type = "Savings"
	TypeCurrent Type = "Current"
)

// ParseType normalizes a user-supplied account type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "savings":
		return TypeSavings, nil
	case "current":
		return TypeCurrent, nil
	default:
		return "", domain.NewValidation("accountType", "must be Savings or Current")
	}
}

// PhoneNotProvided is the sentinel stored when no phone number is given.
const PhoneNotProvided = "Not provided"

// Account is a customer account. The balance can never be negative; every
// balance change is paired with exactly one Transaction.
type Account struct {
	Number     string      `json:"accountNumber"`
	HolderName string      `json:"name"`
	Age        int         `json:"age"`
	Gender     string      `json:"gender"`
	Type       Type        `json:"accountType"`
	Phone      string      `json:"phone"`
	Balance    money.Money `json:"balance"`
	CreatedAt  time.Time   `json:"createdDate"`
}

// ValidateWithdraw checks that amount can leave the account without driving
// the balance negative. Computed before any mutation; there is no partial
// withdrawal.
func (a *Account) ValidateWithdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return domain.NewValidation("amount", "must be greater than zero")
	}
	if amount.GreaterThan(a.Balance) {
		return &domain.InsufficientFundsError{Requested: amount, Available: a.Balance}
	}
	return nil
}

// ValidateDeposit checks that amount may enter the account.
func (a *Account) ValidateDeposit(amount money.Money) error {
	if !amount.IsPositive() {
		return domain.NewValidation("amount", "must be greater than zero")
	}
	if _, err := a.Balance.Add(amount); err != nil {
		return domain.NewValidation("amount", "would overflow account balance")
	}
	return nil
}
