// Package loopring implements a strongly-typed HTTP client for the Loopring v3 REST API.
//
// Coverage: the endpoints an NFT mint needs:
// - Exchange info and account lookup
// - API key issuance (EdDSA request signature)
// - Storage id allocation
// - Off-chain NFT fee quote
// - NFT mint submission
//
// Notes:
// - Failures are reported in a {"resultInfo":{"code","message"}} envelope, with
//   or without a non-2xx status; both become *APIError
// - Authenticated calls carry X-API-KEY; the key request itself carries X-API-SIG
// - Network-level failures wrap ErrTransport
package loopring

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

const (
	headerAPIKey = "X-API-KEY"
	headerAPISig = "X-API-SIG"
)

// Default HTTP timeouts tuned for a CLI run
var (
	DefaultHTTPClient = &http.Client{Timeout: 30 * time.Second}
)

var ErrTransport = errors.New("loopring transport failure")

// APIError is an exchange-side rejection.
type APIError struct {
	HTTPStatus int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("loopring api error: http=%d code=%d message=%s", e.HTTPStatus, e.Code, e.Message)
}

// NewClient constructs a new API client. base should be like "https://api3.loopring.io".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{
		BaseURL:   u,
		HTTP:      DefaultHTTPClient,
		UserAgent: "loopmint/1.0",
		Logger:    log.Logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Option functional options
type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTP = h } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithLogger(l zerolog.Logger) Option   { return func(c *Client) { c.Logger = l } }

type Client struct {
	BaseURL   *url.URL
	HTTP      *http.Client
	UserAgent string
	Logger    zerolog.Logger
}

// ResultInfo is the error envelope.
type ResultInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	ResultInfo *ResultInfo `json:"resultInfo"`
}

// endpoint is the absolute URL for p, which is also what request signatures cover.
func (c *Client) endpoint(p string) *url.URL {
	u := *c.BaseURL
	u.Path = path.Join(u.Path, p)
	return &u
}

func (c *Client) do(
	ctx context.Context,
	method, p string,
	q url.Values,
	headers map[string]string,
	body any,
	out any,
) error {
	u := c.endpoint(p)
	u.RawQuery = q.Encode()

	// --- Build request body ---
	var r io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		r = bytes.NewReader(buf)
		contentType = "application/json"
	}

	// --- Build request ---
	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	// --- Execute request ---
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: http do: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	// --- Logging response ---
	c.Logger.Info().
		Str("method", method).
		Str("url", u.Path).
		Int("status", resp.StatusCode).
		Str("duration", time.Since(start).String()).
		RawJSON("response", safeJSON(b, 2048)).
		Msg("http response")

	// --- Envelope check ---
	var env errorEnvelope
	_ = json.Unmarshal(b, &env)
	if env.ResultInfo != nil && env.ResultInfo.Code != 0 {
		return &APIError{HTTPStatus: resp.StatusCode, Code: env.ResultInfo.Code, Message: env.ResultInfo.Message}
	}

	// --- Status check ---
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{HTTPStatus: resp.StatusCode, Message: truncateString(string(b), 512)}
	}

	// --- Decode output ---
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// doJSON decodes the response body into T
func doJSON[T any](
	c *Client,
	ctx context.Context,
	method, p string,
	q url.Values,
	headers map[string]string,
	body any,
) (T, error) {
	var out T
	err := c.do(ctx, method, p, q, headers, body, &out)
	return out, err
}

// --- Helpers ---

// safeJSON truncates b for logging; RawJSON needs valid JSON, so anything
// else is logged as a quoted string.
func safeJSON(b []byte, max int) []byte {
	if len(b) <= max && json.Valid(b) {
		return b
	}
	quoted, _ := json.Marshal(truncateString(string(b), max))
	return quoted
}

func truncateString(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
