// Package ledger holds the authoritative in-memory state: the Accounts
// table and the append-only Transactions log.
//
// The store is a dumb, consistent container. It validates no business
// rules; "not found" is communicated by an ok flag, never an error. All
// accessors return copies so no caller ever holds a mutable reference to
// stored state.
package ledger

import (
	"strconv"
	"sync"

	"github.com/securebank/securebank/pkg/domain/account"
)

// Store owns the two ledger tables. A single mutex serializes access;
// the model above it is single-threaded, the lock keeps the container
// consistent even if it is not.
type Store struct {
	mu           sync.RWMutex
	next         int64
	accounts     map[string]account.Account
	order        []string
	transactions []account.Transaction
}

// New creates an empty store whose account counter starts at start.
func New(start int64) *Store {
	return &Store{
		next:     start,
		accounts: make(map[string]account.Account),
	}
}

// NextNumber allocates the next account number. Strictly increasing, never
// reused within a session, even after deletions.
func (s *Store) NextNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return strconv.FormatInt(n, 10)
}

// PeekNextNumber reports the number the next created account will get.
func (s *Store) PeekNextNumber() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strconv.FormatInt(s.next, 10)
}

// FindByNumber returns a copy of the account, or ok=false.
func (s *Store) FindByNumber(number string) (account.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[number]
	return a, ok
}

// ListAll returns copies of all accounts in insertion order.
func (s *Store) ListAll() []account.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]account.Account, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.accounts[n])
	}
	return out
}

// Insert stores a new account.
func (s *Store) Insert(a account.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[a.Number]; !exists {
		s.order = append(s.order, a.Number)
	}
	s.accounts[a.Number] = a
}

// Update replaces a stored account. Returns false if it does not exist.
func (s *Store) Update(a account.Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.Number]; !ok {
		return false
	}
	s.accounts[a.Number] = a
	return true
}

// Remove deletes the account and cascades to every transaction referencing
// it, in the same critical section, so nothing can observe the account gone
// while its history remains.
func (s *Store) Remove(number string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[number]; !ok {
		return false
	}
	delete(s.accounts, number)
	for i, n := range s.order {
		if n == number {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	kept := s.transactions[:0]
	for _, tx := range s.transactions {
		if tx.AccountNumber != number {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
	return true
}

// AppendTransaction appends to the log. The log is append-only; entries are
// removed only by the cascade in Remove.
func (s *Store) AppendTransaction(tx account.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
}

// TransactionsFor returns the account's transactions in insertion order.
func (s *Store) TransactionsFor(number string) []account.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []account.Transaction
	for _, tx := range s.transactions {
		if tx.AccountNumber == number {
			out = append(out, tx)
		}
	}
	return out
}

// AllTransactions returns a copy of the full log in insertion order.
func (s *Store) AllTransactions() []account.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]account.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
