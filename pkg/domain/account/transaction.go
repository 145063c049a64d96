package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/securebank/securebank/pkg/money"
)

// Kind classifies a transaction.
type Kind string

const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

// OpeningDepositDescription is recorded on the mandatory transaction that
// accompanies account creation.
const OpeningDepositDescription = "Initial deposit - Account opening"

// Transaction is an immutable ledger entry. Once appended it is never
// updated; it is removed only when its owning account is deleted.
type Transaction struct {
	ID            uuid.UUID   `json:"transactionId"`
	AccountNumber string      `json:"accountNumber"`
	Kind          Kind        `json:"type"`
	Amount        money.Money `json:"amount"`
	Channel       string      `json:"transactionType,omitempty"`
	Description   string      `json:"description"`
	Timestamp     time.Time   `json:"date"`
	BalanceAfter  money.Money `json:"balanceAfter"`
}

// NewTransaction stamps a fresh ledger entry with a generated ID.
func NewTransaction(number string, kind Kind, amount money.Money, channel, description string, balanceAfter money.Money, at time.Time) Transaction {
	return Transaction{
		ID:            uuid.New(),
		AccountNumber: number,
		Kind:          kind,
		Amount:        amount,
		Channel:       channel,
		Description:   description,
		Timestamp:     at,
		BalanceAfter:  balanceAfter,
	}
}

// SignedPaise is the transaction's effect on the balance: positive for
// deposits, negative for withdrawals.
func (t Transaction) SignedPaise() int64 {
	if t.Kind == KindWithdrawal {
		return -t.Amount.Paise()
	}
	return t.Amount.Paise()
}
