// Package oneclick implements a strongly-typed HTTP client for the 1Click
// cross-chain swap API.
//
// Coverage: quote requests, execution status lookups by deposit address, and
// deposit transaction submission.
//
// Notes:
//   - Error responses may carry a JSON body with `detail`, `message`, or
//     `error`; both string and object values are tolerated. Non-2xx responses
//     surface as *StatusError so callers can classify by HTTP status.
//   - Authentication is a Bearer JWT when configured.
//   - This file is intentionally self-contained for rapid adoption in
//     services/CLI/tests.
package oneclick

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Default HTTP timeouts tuned for server-side usage.
var (
	DefaultHTTPClient = &http.Client{Timeout: 30 * time.Second}
)

// NewClient constructs a new API client. base should be like "https://1click.chaindefuser.com".
func NewClient(base string, opts ...Option) (*Client, error) {
	if base == "" {
		return nil, errors.New("base url is required")
	}
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c := &Client{
		BaseURL:   u,
		HTTP:      DefaultHTTPClient,
		UserAgent: "oneclick-go/1.0",
		Logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Option functional options.
type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTP = h } }
func WithJWT(token string) Option          { return func(c *Client) { c.JWT = token } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithLogger(l zerolog.Logger) Option   { return func(c *Client) { c.Logger = l } }

type Client struct {
	BaseURL   *url.URL
	HTTP      *http.Client
	JWT       string
	UserAgent string
	Logger    zerolog.Logger
}

// StatusError is returned for non-2xx responses. Detail holds the most
// specific upstream message the body yielded.
type StatusError struct {
	StatusCode int
	Detail     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("oneclick api error %d: %s", e.StatusCode, e.Detail)
}

// Quote is the priced half of a successful quote response.
type Quote struct {
	DepositAddress     string `json:"depositAddress"`
	AmountIn           string `json:"amountIn"`
	AmountInFormatted  string `json:"amountInFormatted"`
	AmountInUsd        string `json:"amountInUsd"`
	AmountOut          string `json:"amountOut"`
	AmountOutFormatted string `json:"amountOutFormatted"`
	AmountOutUsd       string `json:"amountOutUsd"`
	MinAmountOut       string `json:"minAmountOut"`
	Deadline           string `json:"deadline"`
	TimeEstimate       int    `json:"timeEstimate"` // seconds
}

// QuoteRequestEcho is the service's echo of the request it priced.
type QuoteRequestEcho struct {
	Dry               bool   `json:"dry"`
	SwapType          string `json:"swapType"`
	SlippageTolerance int    `json:"slippageTolerance"`
	OriginAsset       string `json:"originAsset"`
	DestinationAsset  string `json:"destinationAsset"`
	Amount            string `json:"amount"`
	RefundTo          string `json:"refundTo"`
	Recipient         string `json:"recipient"`
	Deadline          string `json:"deadline"`
}

// QuoteResponse is the full success payload: nested quote + request echo.
type QuoteResponse struct {
	Timestamp     string           `json:"timestamp"`
	Signature     string           `json:"signature"`
	CorrelationID string           `json:"correlationId"`
	Quote         Quote            `json:"quote"`
	QuoteRequest  QuoteRequestEcho `json:"quoteRequest"`
}

// ExecutionStatus is the status endpoint payload for one deposit address.
type ExecutionStatus struct {
	Status        string `json:"status"`
	UpdatedAt     string `json:"updatedAt"`
	CorrelationID string `json:"correlationId"`
}

// RequestQuote prices a swap. The payload is the pre-stripped quote request
// map so that absent optionals are omitted while false/empty values survive.
func (c *Client) RequestQuote(ctx context.Context, payload map[string]any) (*QuoteResponse, error) {
	var out QuoteResponse
	if err := c.do(ctx, http.MethodPost, "/v0/quote", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetExecutionStatus fetches the current execution status for a deposit address.
func (c *Client) GetExecutionStatus(ctx context.Context, depositAddress string) (*ExecutionStatus, error) {
	q := url.Values{}
	q.Set("depositAddress", depositAddress)
	var out ExecutionStatus
	if err := c.do(ctx, http.MethodGet, "/v0/status", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitDepositTx notifies the service that the deposit transaction was sent,
// which speeds up execution pickup.
func (c *Client) SubmitDepositTx(ctx context.Context, depositAddress, txHash string) (*ExecutionStatus, error) {
	body := map[string]any{
		"depositAddress": depositAddress,
		"txHash":         txHash,
	}
	var out ExecutionStatus
	if err := c.do(ctx, http.MethodPost, "/v0/deposit/submit", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Core HTTP execution with logging ---
func (c *Client) do(ctx context.Context, method, p string, q url.Values, body, out any) error {
	u := *c.BaseURL
	u.Path = path.Join(u.Path, p)
	u.RawQuery = q.Encode()

	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.JWT != "" {
		req.Header.Set("Authorization", "Bearer "+c.JWT)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	c.Logger.Info().
		Str("method", method).
		Str("url", u.String()).
		Int("status", resp.StatusCode).
		Str("duration", time.Since(start).String()).
		Msg("oneclick http response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(b, resp.StatusCode),
			Body:       truncateString(string(b), 512),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// errorDetail digs the most specific message out of an error body. Bodies are
// not under our control: detail/message/error may be strings or objects, or
// the body may not be JSON at all.
func errorDetail(body []byte, statusCode int) string {
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			raw, ok := parsed[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && s != "" {
				return s
			}
			// Object-valued detail: surface it compacted rather than dropping it.
			var buf bytes.Buffer
			if err := json.Compact(&buf, raw); err == nil && buf.Len() > 0 {
				return truncateString(buf.String(), 512)
			}
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return truncateString(s, 512)
	}
	return http.StatusText(statusCode)
}

func truncateString(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
