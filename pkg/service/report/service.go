// Package report implements the pure query side of the ledger: lookups,
// filtered history, summaries and exports. Nothing here mutates state.
package report

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/securebank/securebank/pkg/domain"
	"github.com/securebank/securebank/pkg/domain/account"
	"github.com/securebank/securebank/pkg/ledger"
	"github.com/securebank/securebank/pkg/money"
)

// Service answers queries against the ledger store.
type Service struct {
	store  *ledger.Store
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// Config carries the thresholds the reports are computed against.
type Config struct {
	LowBalanceThreshold int64
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service clock for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a query service over the given store.
func New(store *ledger.Store, cfg Config, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: store, cfg: cfg, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAccount returns the account by number.
func (s *Service) GetAccount(_ context.Context, number string) (account.Account, error) {
	a, ok := s.store.FindByNumber(number)
	if !ok {
		return account.Account{}, &domain.NotFoundError{AccountNumber: number}
	}
	return a, nil
}

// SearchByName returns every account whose holder name contains the query,
// case-insensitively. An empty result is a valid answer, not an error.
func (s *Service) SearchByName(_ context.Context, query string) []account.Account {
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []account.Account
	for _, a := range s.store.ListAll() {
		if strings.Contains(strings.ToLower(a.HolderName), needle) {
			out = append(out, a)
		}
	}
	return out
}

// ListAccounts returns every account in creation order.
func (s *Service) ListAccounts(_ context.Context) []account.Account {
	return s.store.ListAll()
}

// HistoryFilter narrows TransactionHistory and Export. Zero values mean
// "no constraint". To is inclusive through the end of its calendar day.
type HistoryFilter struct {
	AccountNumber string
	Kind          account.Kind
	From          time.Time
	To            time.Time
}

func (f HistoryFilter) matches(tx account.Transaction) bool {
	if f.AccountNumber != "" && tx.AccountNumber != f.AccountNumber {
		return false
	}
	if f.Kind != "" && tx.Kind != f.Kind {
		return false
	}
	if !f.From.IsZero() && tx.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() {
		end := time.Date(f.To.Year(), f.To.Month(), f.To.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), f.To.Location())
		if tx.Timestamp.After(end) {
			return false
		}
	}
	return true
}

// TransactionHistory returns matching transactions, newest first. When the
// filter names an account, that account must exist.
func (s *Service) TransactionHistory(_ context.Context, f HistoryFilter) ([]account.Transaction, error) {
	if f.AccountNumber != "" {
		if _, ok := s.store.FindByNumber(f.AccountNumber); !ok {
			return nil, &domain.NotFoundError{AccountNumber: f.AccountNumber}
		}
	}
	var out []account.Transaction
	for _, tx := range s.store.AllTransactions() {
		if f.matches(tx) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Summary aggregates the whole bank at a point in time.
type Summary struct {
	TotalAccounts     int         `json:"totalAccounts"`
	TotalBalance      money.Money `json:"totalBalance"`
	AverageBalance    money.Money `json:"averageBalance"`
	SavingsAccounts   int         `json:"savingsAccounts"`
	CurrentAccounts   int         `json:"currentAccounts"`
	TodayTransactions int         `json:"todayTransactions"`
	TotalTransactions int         `json:"totalTransactions"`
}

// Summarize computes bank-wide totals. The average over zero accounts is
// zero, not a division error.
func (s *Service) Summarize(_ context.Context) Summary {
	accounts := s.store.ListAll()
	sum := Summary{TotalAccounts: len(accounts)}
	var totalPaise int64
	for _, a := range accounts {
		totalPaise += a.Balance.Paise()
		switch a.Type {
		case account.TypeSavings:
			sum.SavingsAccounts++
		case account.TypeCurrent:
			sum.CurrentAccounts++
		}
	}
	sum.TotalBalance = money.FromPaise(totalPaise)
	if len(accounts) > 0 {
		sum.AverageBalance = money.FromPaise(totalPaise / int64(len(accounts)))
	}

	today := s.now()
	for _, tx := range s.store.AllTransactions() {
		sum.TotalTransactions++
		if sameDay(tx.Timestamp, today) {
			sum.TodayTransactions++
		}
	}
	return sum
}

// Low-balance severities and the operator actions attached to them.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"

	ActionDepositRequired = "Immediate deposit required"
	ActionMayBeClosed     = "Critical - Account may be closed"
)

// LowBalanceEntry is one row of the low-balance report.
type LowBalanceEntry struct {
	Account  account.Account `json:"account"`
	Severity string          `json:"severity"`
	Action   string          `json:"action"`
}

// LowBalanceAccounts lists accounts below the threshold, flagging those
// below half of it as critical.
func (s *Service) LowBalanceAccounts(_ context.Context) []LowBalanceEntry {
	threshold := money.FromRupees(s.cfg.LowBalanceThreshold)
	critical := money.FromPaise(threshold.Paise() / 2)
	var out []LowBalanceEntry
	for _, a := range s.store.ListAll() {
		if !a.Balance.LessThan(threshold) {
			continue
		}
		entry := LowBalanceEntry{Account: a, Severity: SeverityWarning, Action: ActionDepositRequired}
		if a.Balance.LessThan(critical) {
			entry.Severity = SeverityCritical
			entry.Action = ActionMayBeClosed
		}
		out = append(out, entry)
	}
	return out
}

// HolderUnknown stands in for the name of a deleted or missing account on
// export rows.
const HolderUnknown = "Unknown"

// ExportRow is one statement line with the holder name resolved.
type ExportRow struct {
	Transaction account.Transaction `json:"transaction"`
	HolderName  string              `json:"holderName"`
}

// ExportTotals aggregates the exported window.
type ExportTotals struct {
	Count       int         `json:"count"`
	Deposits    money.Money `json:"totalDeposits"`
	Withdrawals money.Money `json:"totalWithdrawals"`
	Net         money.Money `json:"netAmount"`
}

// ExportResult is a filtered statement ready for CSV or JSON rendering.
type ExportResult struct {
	Rows   []ExportRow  `json:"rows"`
	Totals ExportTotals `json:"totals"`
}

// Export applies the same filter as TransactionHistory and resolves each
// row's holder name, falling back to "Unknown".
func (s *Service) Export(ctx context.Context, f HistoryFilter) (ExportResult, error) {
	txs, err := s.TransactionHistory(ctx, f)
	if err != nil {
		return ExportResult{}, err
	}
	res := ExportResult{Totals: ExportTotals{Count: len(txs)}}
	var deposits, withdrawals int64
	for _, tx := range txs {
		name := HolderUnknown
		if a, ok := s.store.FindByNumber(tx.AccountNumber); ok {
			name = a.HolderName
		}
		res.Rows = append(res.Rows, ExportRow{Transaction: tx, HolderName: name})
		switch tx.Kind {
		case account.KindDeposit:
			deposits += tx.Amount.Paise()
		case account.KindWithdrawal:
			withdrawals += tx.Amount.Paise()
		}
	}
	res.Totals.Deposits = money.FromPaise(deposits)
	res.Totals.Withdrawals = money.FromPaise(withdrawals)
	res.Totals.Net = money.FromPaise(deposits - withdrawals)
	s.logger.Debug("export built", "rows", len(res.Rows))
	return res, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
