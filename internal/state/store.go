// Package state holds the application's single mutable record: the last
// known account list, the active view, the selected account and the
// connectivity flag. All mutations are whole-value replacements.
package state

import (
	"sync"

	"ledger-console/internal/domain"
)

type View string

const (
	ViewDashboard View = "dashboard"
	ViewDeposit   View = "deposit"
	ViewWithdraw  View = "withdraw"
	ViewTransfer  View = "transfer"
)

// Store is safe for concurrent use. Refresh results are applied through a
// generation token so a slow response cannot overwrite a newer account list.
type Store struct {
	mu              sync.RWMutex
	accounts        []domain.Account
	currentView     View
	selectedAccount string
	online          bool

	issued  uint64 // refresh tokens handed out
	applied uint64 // generation of the currently applied account list

	onChange func()
}

func NewStore() *Store {
	return &Store{currentView: ViewDashboard}
}

// OnChange registers the presentation layer's re-render callback. It is
// invoked after every applied mutation, outside the store's lock.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// Accounts returns a copy of the account list in server order.
func (s *Store) Accounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Account looks up one account by id in the cached list.
func (s *Store) Account(id string) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.AccountID == id {
			return a, true
		}
	}
	return domain.Account{}, false
}

// BeginRefresh issues a token for an account-list fetch that is about to
// start. The token orders the fetch against all other in-flight refreshes.
func (s *Store) BeginRefresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// ApplyAccounts atomically replaces the account list with the result of the
// fetch identified by token. Results that lost the race to a newer fetch are
// dropped; the return value reports whether the list was applied.
func (s *Store) ApplyAccounts(token uint64, accounts []domain.Account) bool {
	s.mu.Lock()
	if token <= s.applied {
		s.mu.Unlock()
		return false
	}
	s.accounts = make([]domain.Account, len(accounts))
	copy(s.accounts, accounts)
	s.applied = token
	s.mu.Unlock()

	s.notify()
	return true
}

func (s *Store) CurrentView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentView
}

func (s *Store) SelectView(v View) {
	s.mu.Lock()
	changed := s.currentView != v
	s.currentView = v
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *Store) SelectedAccount() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedAccount
}

func (s *Store) SelectAccount(id string) {
	s.mu.Lock()
	changed := s.selectedAccount != id
	s.selectedAccount = id
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *Store) Online() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online
}

func (s *Store) SetOnline(online bool) {
	s.mu.Lock()
	changed := s.online != online
	s.online = online
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}
