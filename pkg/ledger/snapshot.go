package ledger

import (
	"time"

	"github.com/securebank/securebank/pkg/domain/account"
)

// Snapshot is the serializable image of the store, round-tripped through
// the persistence port.
type Snapshot struct {
	NextNumber   int64                 `json:"nextAccountNumber"`
	Accounts     []account.Account     `json:"accounts"`
	Transactions []account.Transaction `json:"transactions"`
	SavedAt      time.Time             `json:"savedAt"`
}

// Snapshot captures the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		NextNumber:   s.next,
		Accounts:     make([]account.Account, 0, len(s.order)),
		Transactions: make([]account.Transaction, len(s.transactions)),
		SavedAt:      time.Now(),
	}
	for _, n := range s.order {
		snap.Accounts = append(snap.Accounts, s.accounts[n])
	}
	copy(snap.Transactions, s.transactions)
	return snap
}

// Restore replaces the store's state with the snapshot. The counter never
// moves backwards so numbers stay unique across restores.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.NextNumber > s.next {
		s.next = snap.NextNumber
	}
	s.accounts = make(map[string]account.Account, len(snap.Accounts))
	s.order = s.order[:0]
	for _, a := range snap.Accounts {
		s.accounts[a.Number] = a
		s.order = append(s.order, a.Number)
	}
	s.transactions = make([]account.Transaction, len(snap.Transactions))
	copy(s.transactions, snap.Transactions)
}
