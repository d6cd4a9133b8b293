package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leadbothq/leadbot-widget/internal/leads"
	"github.com/leadbothq/leadbot-widget/internal/observability/metrics"
	"github.com/leadbothq/leadbot-widget/pkg/logging"
)

const (
	// DefaultBaseURL is the deploy-time backend location. Host pages cannot
	// change it; local development overrides it through Config.
	DefaultBaseURL = "https://api.leadbot.example.com"

	defaultUserAgent = "leadbot-widget/0.1"
	defaultTimeout   = 10 * time.Second
)

// Error is a typed failure from a single backend round trip: network
// failure, non-2xx status, or a body that did not parse. It never escapes
// as a panic; callers branch on it as a value.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Config controls how the widget client behaves.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
	UserAgent  string
	Metrics    *metrics.WidgetMetrics
}

// Client issues the widget's three backend calls. Each operation is a
// single request/response round trip with no retry, no caching and no
// queuing.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.Logger
	userAgent  string
	metrics    *metrics.WidgetMetrics
}

// New creates a configured Client with sane defaults.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("transport: invalid base url: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		userAgent:  userAgent,
		metrics:    cfg.Metrics,
	}, nil
}

// FetchStatus performs the one-shot activation check.
func (c *Client) FetchStatus(ctx context.Context, tenantID string) (*StatusResponse, error) {
	q := url.Values{}
	q.Set("tenant_id", tenantID)
	var out StatusResponse
	if err := c.invoke(ctx, "bot_status", http.MethodGet, "/bot_status", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendChatMessage delivers one user message and returns the bot's turn.
func (c *Client) SendChatMessage(ctx context.Context, tenantID, text string) (*ChatTurnResponse, error) {
	body, err := json.Marshal(ChatMessageRequest{TenantID: tenantID, Message: text})
	if err != nil {
		return nil, &Error{Op: "chat_message", Err: fmt.Errorf("marshal request: %w", err)}
	}
	var out ChatTurnResponse
	if err := c.invoke(ctx, "chat_message", http.MethodPost, "/chat_message", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitLead posts the visitor's contact details along with the fixed
// descriptive note.
func (c *Client) SubmitLead(ctx context.Context, tenantID string, info leads.UserInfo) (*LeadSubmitResponse, error) {
	body, err := json.Marshal(LeadCaptureRequest{
		TenantID: tenantID,
		Name:     info.Name,
		Email:    info.Email,
		Phone:    info.Phone,
		Message:  LeadCaptureNote,
	})
	if err != nil {
		return nil, &Error{Op: "capture_lead", Err: fmt.Errorf("marshal request: %w", err)}
	}
	var out LeadSubmitResponse
	if err := c.invoke(ctx, "capture_lead", http.MethodPost, "/capture_lead", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) invoke(ctx context.Context, op, method, path string, query url.Values, body []byte, out any) error {
	start := time.Now()
	err := c.doJSON(ctx, method, path, query, body, out)
	status := "ok"
	if err != nil {
		status = "error"
		c.logger.Warn("backend request failed", "op", op, "error", err)
	}
	c.metrics.ObserveRequest(op, status, time.Since(start).Seconds())
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body []byte, out any) error {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("http status %d: %s", resp.StatusCode, truncate(data, 200))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	full := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		full = full + "?" + query.Encode()
	}
	return full
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// AsError reports whether err is a transport Error and returns it.
func AsError(err error) (*Error, bool) {
	var te *Error
	ok := errors.As(err, &te)
	return te, ok
}
