// ABOUTME: HTTP client for the mind13 chat backend with uniform result classification.
// ABOUTME: Failures become Result values with a detail string, never panics or raw errors.

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
)

// chatPath is the backend route all chat messages are posted to.
const chatPath = "/public/chatbot/chat"

// apiKeyHeader carries the credential. A header rather than a query
// parameter, so the key does not leak into access logs and URLs.
const apiKeyHeader = "mind13-chatbot-api-key"

// NoResponseFallback is the reply substituted when the backend returns a
// success with no recognizable payload.
const NoResponseFallback = "No response from server"

// replyKeys are the accepted response fields, in priority order. Tolerates
// minor backend response-shape variation without a hard schema dependency.
var replyKeys = []string{"answer", "message", "response"}

// Options configures a Client. HTTPClient and Logger are optional.
type Options struct {
	Endpoint    string
	APIKey      string
	ChatbotUUID string
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Result is the uniform outcome of one exchange. OK distinguishes a usable
// reply (Text) from a failure (ErrorDetail); exactly one of the two is set.
type Result struct {
	Text        string
	OK          bool
	ErrorDetail string
}

// Client performs the network exchange with the chat backend. It owns no
// state beyond per-call configuration and is safe for concurrent use,
// although the widget controller never has more than one call in flight.
type Client struct {
	mu          sync.Mutex
	endpoint    string
	apiKey      string
	chatbotUUID string
	httpClient  *http.Client
	logger      *slog.Logger
}

// chatRequest is the JSON body posted to the backend.
type chatRequest struct {
	ChatbotUUID string `json:"chatbot_uuid"`
	SessionUUID string `json:"session_uuid"`
	Message     string `json:"message"`
}

// New creates a Client from the given options.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint:    strings.TrimRight(opts.Endpoint, "/"),
		apiKey:      opts.APIKey,
		chatbotUUID: opts.ChatbotUUID,
		httpClient:  httpClient,
		logger:      logger.With("component", "transport"),
	}
}

// Update merges non-empty endpoint, API key, and chatbot UUID fields into the
// client configuration. Last writer wins; an in-flight Send keeps the
// configuration it was built with.
func (c *Client) Update(opts Options) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if opts.Endpoint != "" {
		c.endpoint = strings.TrimRight(opts.Endpoint, "/")
	}
	if opts.APIKey != "" {
		c.apiKey = opts.APIKey
	}
	if opts.ChatbotUUID != "" {
		c.chatbotUUID = opts.ChatbotUUID
	}
}

// Send posts one already-trimmed, non-empty user message under the given
// session token. The caller is responsible for rejecting empty input.
func (c *Client) Send(ctx context.Context, sessionUUID, message string) Result {
	c.mu.Lock()
	endpoint := c.endpoint
	apiKey := c.apiKey
	chatbotUUID := c.chatbotUUID
	c.mu.Unlock()

	body, err := json.Marshal(chatRequest{
		ChatbotUUID: chatbotUUID,
		SessionUUID: sessionUUID,
		Message:     message,
	})
	if err != nil {
		return c.failure(fmt.Sprintf("encoding request: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+chatPath, bytes.NewReader(body))
	if err != nil {
		return c.failure(fmt.Sprintf("building request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failure(err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.failure(fmt.Sprintf("reading response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if trimmed := strings.TrimSpace(string(respBody)); trimmed != "" {
			detail += ": " + trimmed
		}
		return c.failure(detail)
	}

	return c.extractReply(respBody)
}

// extractReply pulls the reply text out of a success response body.
func (c *Client) extractReply(body []byte) Result {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return c.failure(fmt.Sprintf("parsing response: %v", err))
	}

	for _, key := range replyKeys {
		if text, ok := payload[key].(string); ok && text != "" {
			return Result{Text: text, OK: true}
		}
	}

	// The call succeeded; the payload was merely empty
	c.logger.Debug("backend response had no reply field, using fallback")
	return Result{Text: NoResponseFallback, OK: true}
}

func (c *Client) failure(detail string) Result {
	c.logger.Debug("send failed", "detail", detail)
	return Result{OK: false, ErrorDetail: detail}
}
