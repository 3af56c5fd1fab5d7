// Package api queries the Onyx off-chain indexing service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.onyx.org"
	DefaultTimeout = 30 * time.Second
)

// Names the service reports errors with.
const (
	AccountService       = "account"
	OTokenService        = "oToken"
	MarketHistoryService = "Market History"
	GovernanceService    = "GovernanceService"
)

// Governance endpoints.
const (
	Proposals    = "proposals"
	VoteReceipts = "voteReceipts"
	Accounts     = "accounts"
)

const (
	invalidRequestMsg = "Invalid request made to the Onyx API."
	unparsableMsg     = "Unable to parse response body."
)

// Response is the decoded JSON body of a successful request.
type Response map[string]interface{}

// Error is returned for every failed request. StatusCode and Status are
// zero when no response was received.
type Error struct {
	Service    string
	Msg        string
	StatusCode int
	Status     string
	RequestID  string
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("Onyx [api] [%s] | %s", e.Service, e.Msg)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (%s)", e.Status)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

type AccountRequest struct {
	Addresses           []string `json:"addresses,omitempty"`
	MinBorrowValueInEth string   `json:"min_borrow_value_in_eth,omitempty"`
	MaxHealth           string   `json:"max_health,omitempty"`
	BlockNumber         uint64   `json:"block_number,omitempty"`
	BlockTimestamp      uint64   `json:"block_timestamp,omitempty"`
	PageSize            uint64   `json:"page_size,omitempty"`
	PageNumber          uint64   `json:"page_number,omitempty"`
	Network             string   `json:"network,omitempty"`
}

type OTokenRequest struct {
	Addresses      []string `json:"addresses,omitempty"`
	BlockNumber    uint64   `json:"block_number,omitempty"`
	BlockTimestamp uint64   `json:"block_timestamp,omitempty"`
	Meta           bool     `json:"meta,omitempty"`
	Network        string   `json:"network,omitempty"`
}

type MarketHistoryRequest struct {
	Asset             string `json:"asset"`
	MinBlockTimestamp uint64 `json:"min_block_timestamp,omitempty"`
	MaxBlockTimestamp uint64 `json:"max_block_timestamp,omitempty"`
	NumBuckets        uint64 `json:"num_buckets,omitempty"`
	Network           string `json:"network,omitempty"`
}

type GovernanceRequest struct {
	ProposalIDs []uint64 `json:"proposal_ids,omitempty"`
	State       string   `json:"state,omitempty"`
	WithDetail  bool     `json:"with_detail,omitempty"`
	Addresses   []string `json:"addresses,omitempty"`
	Account     string   `json:"account,omitempty"`
	Support     *bool    `json:"support,omitempty"`
	OrderBy     string   `json:"order_by,omitempty"`
	PageSize    uint64   `json:"page_size,omitempty"`
	PageNumber  uint64   `json:"page_number,omitempty"`
	Network     string   `json:"network,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient returns a client for baseURL, DefaultBaseURL when empty. A nil
// httpClient gets DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}
}

func (c *Client) Account(ctx context.Context, req AccountRequest) (Response, error) {
	return c.query(ctx, AccountService, "/api/v2/account", req)
}

func (c *Client) OToken(ctx context.Context, req OTokenRequest) (Response, error) {
	return c.query(ctx, OTokenService, "/api/v2/otoken", req)
}

func (c *Client) MarketHistory(ctx context.Context, req MarketHistoryRequest) (Response, error) {
	return c.query(ctx, MarketHistoryService, "/api/v2/market_history/graph", req)
}

// Governance queries proposals, vote receipts or, for any other endpoint,
// governance accounts.
func (c *Client) Governance(ctx context.Context, req GovernanceRequest, endpoint string) (Response, error) {
	path := "/api/v2/governance/accounts"
	switch endpoint {
	case Proposals:
		path = "/api/v2/governance/proposals"
	case VoteReceipts:
		path = "/api/v2/governance/proposal_vote_receipts"
	}
	return c.query(ctx, GovernanceService, path, req)
}

func (c *Client) query(ctx context.Context, service, path string, body interface{}) (Response, error) {
	requestID := uuid.NewString()
	fail := func(msg string, resp *http.Response, err error) *Error {
		e := &Error{Service: service, Msg: msg, RequestID: requestID, Err: err}
		if resp != nil {
			e.StatusCode = resp.StatusCode
			e.Status = resp.Status
		}
		c.logger.Warn("onyx api request failed",
			zap.String("service", service),
			zap.String("request_id", requestID),
			zap.Int("status", e.StatusCode),
			zap.Error(err),
		)
		return e
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fail(invalidRequestMsg, nil, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fail(invalidRequestMsg, nil, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	c.logger.Debug("onyx api request", zap.String("service", service), zap.String("path", path), zap.String("request_id", requestID))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fail(err.Error(), nil, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(unparsableMsg, resp, err)
	}
	res := Response{}
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fail(unparsableMsg, resp, fmt.Errorf("couldn't unmarshal %q: %w", string(raw), err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fail(invalidRequestMsg, resp, nil)
	}
	return res, nil
}
