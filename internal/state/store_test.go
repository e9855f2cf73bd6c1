package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledger-console/internal/domain"
)

func accountsNamed(ids ...string) []domain.Account {
	out := make([]domain.Account, len(ids))
	for i, id := range ids {
		out[i] = domain.Account{AccountID: id, Status: domain.AccountActive}
	}
	return out
}

func TestDefaults(t *testing.T) {
	s := NewStore()
	assert.Equal(t, ViewDashboard, s.CurrentView())
	assert.Empty(t, s.Accounts())
	assert.Empty(t, s.SelectedAccount())
	assert.False(t, s.Online())
}

func TestApplyAccountsReplacesWholeList(t *testing.T) {
	s := NewStore()

	token := s.BeginRefresh()
	assert.True(t, s.ApplyAccounts(token, accountsNamed("a", "b", "c")))
	assert.Len(t, s.Accounts(), 3)

	token = s.BeginRefresh()
	assert.True(t, s.ApplyAccounts(token, accountsNamed("d")))

	got := s.Accounts()
	assert.Len(t, got, 1)
	assert.Equal(t, "d", got[0].AccountID)
}

func TestStaleRefreshIsDropped(t *testing.T) {
	s := NewStore()

	older := s.BeginRefresh()
	newer := s.BeginRefresh()

	assert.True(t, s.ApplyAccounts(newer, accountsNamed("new")))
	assert.False(t, s.ApplyAccounts(older, accountsNamed("old")), "stale result must not overwrite a newer list")

	got := s.Accounts()
	assert.Len(t, got, 1)
	assert.Equal(t, "new", got[0].AccountID)
}

func TestAccountsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.ApplyAccounts(s.BeginRefresh(), accountsNamed("a"))

	got := s.Accounts()
	got[0].AccountID = "mutated"

	assert.Equal(t, "a", s.Accounts()[0].AccountID)
}

func TestAccountLookup(t *testing.T) {
	s := NewStore()
	s.ApplyAccounts(s.BeginRefresh(), accountsNamed("a", "b"))

	account, ok := s.Account("b")
	assert.True(t, ok)
	assert.Equal(t, "b", account.AccountID)

	_, ok = s.Account("missing")
	assert.False(t, ok)
}

func TestOnChangeFiresOnActualChanges(t *testing.T) {
	s := NewStore()

	var calls int
	s.OnChange(func() { calls++ })

	s.SetOnline(true)
	s.SetOnline(true) // no change, no callback
	s.SelectView(ViewDeposit)
	s.SelectView(ViewDeposit)
	s.SelectAccount("a")
	s.ApplyAccounts(s.BeginRefresh(), accountsNamed("a"))

	assert.Equal(t, 4, calls)
}
