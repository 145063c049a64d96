package account

import (
	"github.com/securebank/securebank/pkg/domain/account"
	"github.com/securebank/securebank/pkg/money"
)

// Event types published by the service.
const (
	EventTransactionRecorded = "ledger.transaction.recorded"
	EventLowBalanceDetected  = "ledger.balance.low"
	EventAccountDeleted      = "ledger.account.deleted"
)

// TransactionRecorded is published after every successful mutation that
// appended a transaction.
type TransactionRecorded struct {
	Transaction account.Transaction
}

func (TransactionRecorded) Type() string { return EventTransactionRecorded }

// LowBalanceDetected is published when a withdrawal leaves the balance
// below the configured threshold. Advisory only, never an error.
type LowBalanceDetected struct {
	AccountNumber string
	Balance       money.Money
	Threshold     money.Money
}

func (LowBalanceDetected) Type() string { return EventLowBalanceDetected }

// AccountDeleted is published after a confirmed delete, once the cascade
// has removed the account's transactions.
type AccountDeleted struct {
	AccountNumber string
	RemovedTxs    int
}

func (AccountDeleted) Type() string { return EventAccountDeleted }
