package ledger_test

import (
	"testing"
	"time"

	"github.com/securebank/securebank/pkg/domain/account"
	"github.com/securebank/securebank/pkg/ledger"
	"github.com/securebank/securebank/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(number string) account.Account {
	return account.Account{
		Number:     number,
		HolderName: "Asha",
		Age:        30,
		Gender:     "F",
		Type:       account.TypeSavings,
		Phone:      account.PhoneNotProvided,
		Balance:    money.FromRupees(1000),
		CreatedAt:  time.Now(),
	}
}

func TestNextNumberMonotonic(t *testing.T) {
	s := ledger.New(10001)

	assert.Equal(t, "10001", s.PeekNextNumber())
	assert.Equal(t, "10001", s.NextNumber())
	assert.Equal(t, "10002", s.NextNumber())

	// deletion must not free numbers
	s.Insert(newAccount("10002"))
	s.Remove("10002")
	assert.Equal(t, "10003", s.NextNumber())
}

func TestInsertFindUpdate(t *testing.T) {
	s := ledger.New(10001)
	a := newAccount(s.NextNumber())
	s.Insert(a)

	got, ok := s.FindByNumber(a.Number)
	require.True(t, ok)
	assert.Equal(t, a.HolderName, got.HolderName)

	// the returned value is a copy; mutating it must not touch the store
	got.HolderName = "changed"
	again, _ := s.FindByNumber(a.Number)
	assert.Equal(t, "Asha", again.HolderName)

	got.HolderName = "Asha Rao"
	require.True(t, s.Update(got))
	updated, _ := s.FindByNumber(a.Number)
	assert.Equal(t, "Asha Rao", updated.HolderName)

	assert.False(t, s.Update(newAccount("99999")))
	_, ok = s.FindByNumber("99999")
	assert.False(t, ok)
}

func TestRemoveCascadesTransactions(t *testing.T) {
	s := ledger.New(10001)
	a := newAccount(s.NextNumber())
	b := newAccount(s.NextNumber())
	s.Insert(a)
	s.Insert(b)

	now := time.Now()
	s.AppendTransaction(account.NewTransaction(a.Number, account.KindDeposit, money.FromRupees(1000), "Cash", "opening", money.FromRupees(1000), now))
	s.AppendTransaction(account.NewTransaction(b.Number, account.KindDeposit, money.FromRupees(1000), "Cash", "opening", money.FromRupees(1000), now))
	s.AppendTransaction(account.NewTransaction(a.Number, account.KindWithdrawal, money.FromRupees(100), "ATM", "", money.FromRupees(900), now))

	require.True(t, s.Remove(a.Number))
	assert.False(t, s.Remove(a.Number))

	assert.Empty(t, s.TransactionsFor(a.Number))
	assert.Len(t, s.TransactionsFor(b.Number), 1)
	assert.Len(t, s.AllTransactions(), 1)
	assert.Len(t, s.ListAll(), 1)
}

func TestSnapshotRestore(t *testing.T) {
	s := ledger.New(10001)
	a := newAccount(s.NextNumber())
	s.Insert(a)
	s.AppendTransaction(account.NewTransaction(a.Number, account.KindDeposit, money.FromRupees(1000), "Cash", "opening", money.FromRupees(1000), time.Now()))

	snap := s.Snapshot()

	restored := ledger.New(10001)
	restored.Restore(snap)

	got, ok := restored.FindByNumber(a.Number)
	require.True(t, ok)
	assert.True(t, got.Balance.Equals(a.Balance))
	assert.Len(t, restored.TransactionsFor(a.Number), 1)
	assert.Equal(t, "10002", restored.PeekNextNumber())

	// restoring an older snapshot never rewinds the counter
	fresh := ledger.New(20000)
	fresh.Restore(snap)
	assert.Equal(t, "20000", fresh.PeekNextNumber())
}
