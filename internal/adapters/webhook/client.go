package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ports"
)

// DefaultTimeout bounds a single webhook call
const DefaultTimeout = 60 * time.Second

// maxResponseBytes caps how much of the webhook response is decoded
const maxResponseBytes = 10 << 20

// isoMillis matches the timestamp format expected by the workflow
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// repurposeRequest is the body POSTed to the webhook
type repurposeRequest struct {
	APIKey    string `json:"apiKey"`
	Content   string `json:"content"`
	IsURL     bool   `json:"isUrl"`
	Timestamp string `json:"timestamp"`
}

// Client implements ports.Repurposer against an automation webhook.
// The endpoint is read on every call; an unconfigured endpoint selects the mock generator.
type Client struct {
	endpoints  ports.EndpointSource
	httpClient *http.Client
	identity   ports.IdentitySource
	mock       *MockGenerator
	now        func() time.Time
}

// Verify interface compliance at compile time
var _ ports.Repurposer = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithClock overrides the clock used for request timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// NewClient creates a webhook client
func NewClient(
	endpoints ports.EndpointSource,
	identity ports.IdentitySource,
	mock *MockGenerator,
	timeout time.Duration,
	opts ...Option,
) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		endpoints:  endpoints,
		httpClient: &http.Client{Timeout: timeout},
		identity:   identity,
		mock:       mock,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Repurpose sends content to the webhook, or to the mock generator when no
// webhook is configured. Every failure is returned as *domain.RepurposeError.
func (c *Client) Repurpose(ctx context.Context, content string, isURL bool) (*domain.RepurposeResult, error) {
	endpoint, err := c.endpoints.WebhookURL(ctx)
	if err != nil {
		return nil, c.fail(fmt.Errorf("failed to read webhook URL: %w", err))
	}

	if config.IsPlaceholderWebhook(endpoint) {
		result, err := c.mock.Generate(ctx, content)
		if err != nil {
			return nil, c.fail(err)
		}
		return result, nil
	}

	token, err := c.identity.IdentityToken(ctx)
	if err != nil {
		return nil, c.fail(fmt.Errorf("failed to read identity token: %w", err))
	}

	directKey, err := c.endpoints.DirectAPIKey(ctx)
	if err != nil {
		return nil, c.fail(fmt.Errorf("failed to read API key: %w", err))
	}

	body, err := json.Marshal(repurposeRequest{
		APIKey:    token,
		Content:   content,
		IsURL:     isURL,
		Timestamp: c.now().UTC().Format(isoMillis),
	})
	if err != nil {
		return nil, c.fail(fmt.Errorf("failed to encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, c.fail(fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if directKey != "" {
		req.Header.Set("Authorization", "Bearer "+directKey)
	}

	logging.Logger.Info("Calling repurpose webhook", "endpoint", endpoint, "is_url", isURL, "content_length", len(content))
	start := c.now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(fmt.Errorf("failed to call webhook: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes)); err != nil {
			logging.Logger.Debug("Failed to drain webhook error response", "error", err)
		}
		return nil, c.fail(fmt.Errorf("HTTP error! status: %d", resp.StatusCode))
	}

	var result domain.RepurposeResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return nil, c.fail(fmt.Errorf("failed to decode webhook response: %w", err))
	}

	logging.Logger.Info("Webhook call completed",
		"duration", c.now().Sub(start),
		"success", result.Success,
		"platforms", len(result.Results),
		"variants", result.VariantCount())

	return &result, nil
}

func (c *Client) fail(cause error) error {
	logging.Logger.Error("Repurpose request failed", "error", cause)
	return domain.NewRepurposeError(cause)
}
