// Package account implements the ledger mutation operations: create,
// deposit, withdraw, update profile and two-phase delete.
//
// Every operation validates against current state, mutates, appends exactly
// one transaction record and returns the result. A failed operation leaves
// the ledger exactly as it was before the call. Operations are not
// idempotent by construction; callers dedupe at the UI boundary.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/domain"
	"github.com/securebank/securebank/pkg/domain/account"
	"github.com/securebank/securebank/pkg/eventbus"
	"github.com/securebank/securebank/pkg/ledger"
	"github.com/securebank/securebank/pkg/money"
)

// Service provides the mutation operations over the ledger store.
type Service struct {
	store  *ledger.Store
	cfg    config.Banking
	bus    eventbus.Bus
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service clock. Used by tests exercising
// calendar-day policies.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service over the given store.
func New(store *ledger.Store, cfg config.Banking, bus eventbus.Bus, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:  store,
		cfg:    cfg,
		bus:    bus,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInput carries the fields for account creation.
type CreateInput struct {
	HolderName     string
	Age            int
	Gender         string
	Type           string
	InitialDeposit money.Money
	Phone          string
}

// CreateAccount validates the input, allocates the next account number,
// inserts the account and records the mandatory opening-deposit
// transaction.
func (s *Service) CreateAccount(ctx context.Context, in CreateInput) (account.Account, error) {
	logger := s.logger.With("op", "CreateAccount", "holder", in.HolderName)
	if strings.TrimSpace(in.HolderName) == "" {
		return account.Account{}, domain.NewValidation("name", "is required")
	}
	if in.Age < s.cfg.MinAge {
		return account.Account{}, domain.NewValidation("age",
			fmt.Sprintf("customer must be at least %d years old", s.cfg.MinAge))
	}
	if strings.TrimSpace(in.Gender) == "" {
		return account.Account{}, domain.NewValidation("gender", "is required")
	}
	accType, err := account.ParseType(in.Type)
	if err != nil {
		return account.Account{}, err
	}
	minDeposit := money.FromRupees(s.cfg.MinDeposit)
	if in.InitialDeposit.LessThan(minDeposit) {
		return account.Account{}, domain.NewValidation("initialDeposit",
			fmt.Sprintf("minimum initial deposit is %s", minDeposit))
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		phone = account.PhoneNotProvided
	}
	now := s.now()
	a := account.Account{
		Number:     s.store.NextNumber(),
		HolderName: strings.TrimSpace(in.HolderName),
		Age:        in.Age,
		Gender:     in.Gender,
		Type:       accType,
		Phone:      phone,
		Balance:    in.InitialDeposit,
		CreatedAt:  now,
	}
	tx := account.NewTransaction(a.Number, account.KindDeposit, in.InitialDeposit,
		"", account.OpeningDepositDescription, in.InitialDeposit, now)

	s.store.Insert(a)
	s.store.AppendTransaction(tx)
	s.bus.Publish(ctx, TransactionRecorded{Transaction: tx})

	logger.Info("account created", "number", a.Number, "balance", a.Balance.String())
	return a, nil
}

// Advisory is a non-error signal attached to a successful result.
type Advisory struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Balance money.Money `json:"balance"`
}

// AdvisoryLowBalance flags a balance below the configured threshold.
const AdvisoryLowBalance = "low_balance"

// MutationResult is returned by Deposit and Withdraw.
type MutationResult struct {
	Account     account.Account     `json:"account"`
	Transaction account.Transaction `json:"transaction"`
	Advisory    *Advisory           `json:"advisory,omitempty"`
}

// ChannelCash is the deposit channel subject to the documentation ceiling.
const ChannelCash = "Cash"

// Deposit adds amount to the account and records the transaction.
func (s *Service) Deposit(ctx context.Context, number string, amount money.Money, channel, description string) (MutationResult, error) {
	logger := s.logger.With("op", "Deposit", "account", number)
	a, ok := s.store.FindByNumber(number)
	if !ok {
		return MutationResult{}, &domain.NotFoundError{AccountNumber: number}
	}
	if err := a.ValidateDeposit(amount); err != nil {
		return MutationResult{}, err
	}
	ceiling := money.FromRupees(s.cfg.MaxCashDeposit)
	if strings.EqualFold(channel, ChannelCash) && amount.GreaterThan(ceiling) {
		excess, _ := amount.Sub(ceiling)
		return MutationResult{}, &domain.PolicyError{
			Policy: domain.PolicyCashDepositCeiling,
			Limit:  ceiling,
			Excess: excess,
			Reason: fmt.Sprintf("cash deposits over %s require additional documentation", ceiling),
		}
	}

	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return MutationResult{}, domain.NewValidation("amount", "would overflow account balance")
	}
	if description == "" {
		description = fmt.Sprintf("%s deposit", channel)
	}
	tx := account.NewTransaction(number, account.KindDeposit, amount, channel, description, newBalance, s.now())

	a.Balance = newBalance
	s.store.Update(a)
	s.store.AppendTransaction(tx)
	s.bus.Publish(ctx, TransactionRecorded{Transaction: tx})

	logger.Info("deposit recorded", "amount", amount.String(), "balance", newBalance.String())
	return MutationResult{Account: a, Transaction: tx}, nil
}

// Withdraw removes amount from the account and records the transaction.
// The daily withdrawal limit is computed over the account's
// same-calendar-day withdrawals before anything is mutated.
func (s *Service) Withdraw(ctx context.Context, number string, amount money.Money, channel, description string) (MutationResult, error) {
	logger := s.logger.With("op", "Withdraw", "account", number)
	a, ok := s.store.FindByNumber(number)
	if !ok {
		return MutationResult{}, &domain.NotFoundError{AccountNumber: number}
	}
	if err := a.ValidateWithdraw(amount); err != nil {
		return MutationResult{}, err
	}

	now := s.now()
	limit := money.FromRupees(s.cfg.DailyWithdrawalLimit)
	var todayPaise int64
	for _, tx := range s.store.TransactionsFor(number) {
		if tx.Kind == account.KindWithdrawal && sameDay(tx.Timestamp, now) {
			todayPaise += tx.Amount.Paise()
		}
	}
	total, err := money.FromPaise(todayPaise).Add(amount)
	if err != nil || total.GreaterThan(limit) {
		excess, _ := total.Sub(limit)
		return MutationResult{}, &domain.PolicyError{
			Policy: domain.PolicyDailyWithdrawalLimit,
			Limit:  limit,
			Excess: excess,
			Reason: fmt.Sprintf("daily withdrawal limit of %s exceeded", limit),
		}
	}

	newBalance, err := a.Balance.Sub(amount)
	if err != nil {
		return MutationResult{}, domain.NewValidation("amount", "invalid withdrawal amount")
	}
	if description == "" {
		description = fmt.Sprintf("%s withdrawal", channel)
	}
	tx := account.NewTransaction(number, account.KindWithdrawal, amount, channel, description, newBalance, now)

	a.Balance = newBalance
	s.store.Update(a)
	s.store.AppendTransaction(tx)
	s.bus.Publish(ctx, TransactionRecorded{Transaction: tx})

	result := MutationResult{Account: a, Transaction: tx}
	threshold := money.FromRupees(s.cfg.LowBalanceThreshold)
	if newBalance.LessThan(threshold) {
		result.Advisory = &Advisory{
			Code:    AdvisoryLowBalance,
			Message: fmt.Sprintf("balance after withdrawal is %s, below the %s minimum", newBalance, threshold),
			Balance: newBalance,
		}
		s.bus.Publish(ctx, LowBalanceDetected{AccountNumber: number, Balance: newBalance, Threshold: threshold})
	}
	logger.Info("withdrawal recorded", "amount", amount.String(), "balance", newBalance.String())
	return result, nil
}

// UpdateInput carries the identity fields that may change after creation.
type UpdateInput struct {
	HolderName string
	Age        int
	Gender     string
	Phone      string
}

// UpdateProfile mutates identity fields only. Balance and history are
// untouched and no transaction is recorded.
func (s *Service) UpdateProfile(ctx context.Context, number string, in UpdateInput) (account.Account, error) {
	a, ok := s.store.FindByNumber(number)
	if !ok {
		return account.Account{}, &domain.NotFoundError{AccountNumber: number}
	}
	if strings.TrimSpace(in.HolderName) == "" {
		return account.Account{}, domain.NewValidation("name", "is required")
	}
	if in.Age < s.cfg.MinAge {
		return account.Account{}, domain.NewValidation("age",
			fmt.Sprintf("customer must be at least %d years old", s.cfg.MinAge))
	}
	if strings.TrimSpace(in.Gender) == "" {
		return account.Account{}, domain.NewValidation("gender", "is required")
	}

	a.HolderName = strings.TrimSpace(in.HolderName)
	a.Age = in.Age
	a.Gender = in.Gender
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		a.Phone = phone
	} else {
		a.Phone = account.PhoneNotProvided
	}
	s.store.Update(a)
	s.logger.Info("profile updated", "op", "UpdateProfile", "account", number)
	return a, nil
}

// DeletePreview is the first phase of deletion: a pure query showing what
// a confirmed delete would destroy.
type DeletePreview struct {
	Account          account.Account `json:"account"`
	TransactionCount int             `json:"transactionCount"`
	HasBalance       bool            `json:"hasBalance"`
}

// PreviewDelete returns the account plus a non-zero-balance flag. It
// mutates nothing.
func (s *Service) PreviewDelete(_ context.Context, number string) (DeletePreview, error) {
	a, ok := s.store.FindByNumber(number)
	if !ok {
		return DeletePreview{}, &domain.NotFoundError{AccountNumber: number}
	}
	return DeletePreview{
		Account:          a,
		TransactionCount: len(s.store.TransactionsFor(number)),
		HasBalance:       !a.Balance.IsZero(),
	}, nil
}

// DeleteAccount is the second, destructive phase: it removes the account
// and cascades to every transaction referencing it. Irreversible.
func (s *Service) DeleteAccount(ctx context.Context, number string) error {
	removed := len(s.store.TransactionsFor(number))
	if !s.store.Remove(number) {
		return &domain.NotFoundError{AccountNumber: number}
	}
	s.bus.Publish(ctx, AccountDeleted{AccountNumber: number, RemovedTxs: removed})
	s.logger.Info("account deleted", "op", "DeleteAccount", "account", number, "transactions_removed", removed)
	return nil
}

// NextAccountNumber reports the number the next created account will
// receive, for display next to the creation form.
func (s *Service) NextAccountNumber() string {
	return s.store.PeekNextNumber()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
