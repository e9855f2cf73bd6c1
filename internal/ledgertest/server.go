// Package ledgertest provides an in-process stand-in for the remote ledger
// service, so the orchestration layer can be exercised end to end in tests.
// It honors idempotency keys, rejects overdrafts and closed accounts, and
// uses the same error payload shape as the real service.
package ledgertest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"ledger-console/internal/domain"
)

type Server struct {
	mu           sync.Mutex
	order        []string
	accounts     map[string]*domain.Account
	balances     map[string]int64
	transactions map[string][]domain.Transaction
	usedKeys     map[string]bool
	requests     map[string]int

	httpSrv *httptest.Server
}

func New() *Server {
	s := &Server{
		accounts:     make(map[string]*domain.Account),
		balances:     make(map[string]int64),
		transactions: make(map[string][]domain.Transaction),
		usedKeys:     make(map[string]bool),
		requests:     make(map[string]int),
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/accounts", s.listAccounts).Methods("GET")
	api.HandleFunc("/accounts", s.createAccount).Methods("POST")
	api.HandleFunc("/accounts/{account_id}/balance", s.getBalance).Methods("GET")
	api.HandleFunc("/accounts/{account_id}/transactions", s.listTransactions).Methods("GET")
	api.HandleFunc("/transactions/deposit", s.deposit).Methods("POST")
	api.HandleFunc("/transactions/withdraw", s.withdraw).Methods("POST")
	api.HandleFunc("/transactions/transfer", s.transfer).Methods("POST")

	s.httpSrv = httptest.NewServer(router)
	return s
}

// BaseURL returns the address to hand to api.NewClient, prefix included.
func (s *Server) BaseURL() string {
	return s.httpSrv.URL + "/api"
}

func (s *Server) Close() {
	s.httpSrv.Close()
}

// SeedAccount creates an account with the given starting balance, bypassing
// the HTTP surface.
func (s *Server) SeedAccount(balance int64) domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := &domain.Account{
		AccountID: uuid.NewString(),
		Status:    domain.AccountActive,
		CreatedAt: time.Now().UTC(),
	}
	s.order = append(s.order, account.AccountID)
	s.accounts[account.AccountID] = account
	s.balances[account.AccountID] = balance
	return *account
}

// CloseAccount flips an account's status to CLOSED; subsequent movements on
// it are rejected.
func (s *Server) CloseAccount(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[accountID]; ok {
		a.Status = domain.AccountClosed
	}
}

// AccountBalance reads an account's balance directly for assertions.
func (s *Server) AccountBalance(accountID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[accountID]
}

// Requests reports how many calls hit the given path, e.g. "/accounts".
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

func (s *Server) count(r *http.Request) {
	s.requests[r.URL.Path[len("/api"):]]++
}

type movementRequest struct {
	AccountID      string `json:"accountId"`
	FromAccountID  string `json:"fromAccountId"`
	ToAccountID    string `json:"toAccountId"`
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotencyKey"`
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.count(r)
	accounts := make([]domain.Account, 0, len(s.order))
	for _, id := range s.order {
		accounts = append(accounts, *s.accounts[id])
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, accounts)
}

func (s *Server) createAccount(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.count(r)
	account := &domain.Account{
		AccountID: uuid.NewString(),
		Status:    domain.AccountActive,
		CreatedAt: time.Now().UTC(),
	}
	s.order = append(s.order, account.AccountID)
	s.accounts[account.AccountID] = account
	s.balances[account.AccountID] = 0
	created := *account
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["account_id"]

	s.mu.Lock()
	s.count(r)
	_, ok := s.accounts[id]
	balance := s.balances[id]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "account not found")
		return
	}
	writeJSON(w, http.StatusOK, domain.Balance{AccountID: id, Balance: balance})
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["account_id"]

	s.mu.Lock()
	s.count(r)
	_, ok := s.accounts[id]
	transactions := append([]domain.Transaction(nil), s.transactions[id]...)
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "account not found")
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	writeJSON(w, http.StatusOK, transactions)
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeMovement(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usedKeys[req.IdempotencyKey] {
		writeJSON(w, http.StatusOK, map[string]string{"status": "duplicate"})
		return
	}
	if !s.checkAccount(w, req.AccountID) {
		return
	}

	s.usedKeys[req.IdempotencyKey] = true
	s.balances[req.AccountID] += req.Amount
	s.record(req.AccountID, req.Amount)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "completed"})
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeMovement(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usedKeys[req.IdempotencyKey] {
		writeJSON(w, http.StatusOK, map[string]string{"status": "duplicate"})
		return
	}
	if !s.checkAccount(w, req.AccountID) {
		return
	}
	if s.balances[req.AccountID] < req.Amount {
		writeError(w, http.StatusBadRequest, "INSUFFICIENT_FUNDS", "insufficient funds")
		return
	}

	s.usedKeys[req.IdempotencyKey] = true
	s.balances[req.AccountID] -= req.Amount
	s.record(req.AccountID, -req.Amount)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "completed"})
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeMovement(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.usedKeys[req.IdempotencyKey] {
		writeJSON(w, http.StatusOK, map[string]string{"status": "duplicate"})
		return
	}
	if req.FromAccountID == req.ToAccountID {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "cannot transfer to the same account")
		return
	}
	if !s.checkAccount(w, req.FromAccountID) || !s.checkAccount(w, req.ToAccountID) {
		return
	}
	if s.balances[req.FromAccountID] < req.Amount {
		writeError(w, http.StatusBadRequest, "INSUFFICIENT_FUNDS", "insufficient funds")
		return
	}

	s.usedKeys[req.IdempotencyKey] = true
	s.balances[req.FromAccountID] -= req.Amount
	s.balances[req.ToAccountID] += req.Amount
	s.record(req.FromAccountID, -req.Amount)
	s.record(req.ToAccountID, req.Amount)
	writeJSON(w, http.StatusCreated, map[string]string{"status": "completed"})
}

func (s *Server) decodeMovement(w http.ResponseWriter, r *http.Request) (*movementRequest, bool) {
	s.mu.Lock()
	s.count(r)
	s.mu.Unlock()

	var req movementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return nil, false
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "amount must be positive")
		return nil, false
	}
	if req.IdempotencyKey == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "idempotencyKey is required")
		return nil, false
	}
	return &req, true
}

// checkAccount must be called with s.mu held.
func (s *Server) checkAccount(w http.ResponseWriter, id string) bool {
	account, ok := s.accounts[id]
	if !ok {
		writeError(w, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "account not found")
		return false
	}
	if account.Status == domain.AccountClosed {
		writeError(w, http.StatusUnprocessableEntity, "ACCOUNT_CLOSED", "account is closed")
		return false
	}
	return true
}

// record must be called with s.mu held.
func (s *Server) record(accountID string, amount int64) {
	s.transactions[accountID] = append(s.transactions[accountID], domain.Transaction{
		LedgerEntryID: uuid.NewString(),
		TransactionID: uuid.NewString(),
		Amount:        amount,
		CreatedAt:     time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, map[string]string{
		"code":    code,
		"message": message,
	})
}
