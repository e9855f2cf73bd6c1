// Package api is the request codec for the remote ledger service: it builds
// JSON requests against a fixed base endpoint and folds every failure mode
// into an AppError the rest of the client can surface to the user.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ledger-console/internal/domain"
	"ledger-console/internal/errors"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a codec against baseURL (including the service's path
// prefix, e.g. "http://localhost:8080/api").
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// errorBody is the error payload shape the remote service uses.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// send issues one call and returns the raw response body on success.
// Transport failures, non-success statuses and undecodable error payloads
// all come back as *errors.AppError; nothing is swallowed here.
func (c *Client) send(ctx context.Context, method, path string, body interface{}, headers map[string]string) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewAppError(errors.DecodeError, "failed to encode request body").WithDetails(err.Error())
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.NewAppError(errors.TransportError, "invalid request").WithDetails(err.Error())
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", method, "path", path, "error", err)
		return nil, errors.NewAppError(errors.TransportError, "service unreachable").WithDetails(err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewAppError(errors.TransportError, "failed to read response").WithDetails(err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorBody
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Message == "" {
			return nil, errors.NewAppErrorf(errors.DecodeError, "Request failed (status %d)", resp.StatusCode)
		}
		c.logger.Warn("request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"code", errResp.Code,
		)
		return nil, errors.NewAppError(errors.RemoteError, errResp.Message).WithDetails(errResp.Code)
	}

	return respBody, nil
}

func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	body, err := c.send(ctx, http.MethodGet, "/accounts", nil, nil)
	if err != nil {
		return nil, err
	}

	var accounts []domain.Account
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, errors.NewAppError(errors.DecodeError, "malformed account list").WithDetails(err.Error())
	}
	return accounts, nil
}

func (c *Client) CreateAccount(ctx context.Context) (*domain.Account, error) {
	body, err := c.send(ctx, http.MethodPost, "/accounts", nil, nil)
	if err != nil {
		return nil, err
	}

	var account domain.Account
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, errors.NewAppError(errors.DecodeError, "malformed account response").WithDetails(err.Error())
	}
	return &account, nil
}

func (c *Client) Balance(ctx context.Context, accountID string) (int64, error) {
	body, err := c.send(ctx, http.MethodGet, "/accounts/"+accountID+"/balance", nil, nil)
	if err != nil {
		return 0, err
	}

	var balance domain.Balance
	if err := json.Unmarshal(body, &balance); err != nil {
		return 0, errors.NewAppError(errors.DecodeError, "malformed balance response").WithDetails(err.Error())
	}
	return balance.Balance, nil
}

func (c *Client) Transactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	body, err := c.send(ctx, http.MethodGet, "/accounts/"+accountID+"/transactions", nil, nil)
	if err != nil {
		return nil, err
	}

	var transactions []domain.Transaction
	if err := json.Unmarshal(body, &transactions); err != nil {
		return nil, errors.NewAppError(errors.DecodeError, "malformed transaction list").WithDetails(err.Error())
	}
	return transactions, nil
}

func (c *Client) Deposit(ctx context.Context, req domain.DepositRequest) error {
	_, err := c.send(ctx, http.MethodPost, "/transactions/deposit", req, nil)
	return err
}

func (c *Client) Withdraw(ctx context.Context, req domain.WithdrawRequest) error {
	_, err := c.send(ctx, http.MethodPost, "/transactions/withdraw", req, nil)
	return err
}

func (c *Client) Transfer(ctx context.Context, req domain.TransferRequest) error {
	_, err := c.send(ctx, http.MethodPost, "/transactions/transfer", req, nil)
	return err
}
