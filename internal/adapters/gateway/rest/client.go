package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fharpR4/roomie-app/internal/ports"
)

const maxResponseBytes = 4 << 20

// Client talks to the hosted data service following its REST conventions:
// auth under /auth/v1, row queries under /rest/v1, blob storage under
// /storage/v1. Every call is attempt-once; the only timeout is the
// per-request default applied when the caller's context carries no deadline.
type Client struct {
	BaseURL        string
	AnonKey        string
	HTTPClient     *http.Client
	Logger         *slog.Logger
	RequestTimeout time.Duration

	// TokenSource supplies the current session token; requests fall back to
	// the anon key when it returns empty.
	TokenSource func() string
}

var _ ports.Gateway = (*Client)(nil)

func NewClient(baseURL, anonKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		AnonKey: anonKey,
		Logger:  logger,
	}
}

type request struct {
	op      string
	method  string
	path    string
	query   url.Values
	headers map[string]string
	body    any
	raw     io.Reader
	rawSize int64
}

// doJSON performs one request and decodes the JSON response into out (when
// non-nil). Failures are logged locally and reduced to *Error before being
// surfaced.
func (c *Client) doJSON(ctx context.Context, req request, out any) error {
	err := c.attempt(ctx, req, out)
	if err != nil {
		c.Logger.Error(req.op+" failed", "error", err)
	}
	return err
}

func (c *Client) attempt(ctx context.Context, req request, out any) error {
	endpoint := c.BaseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.raw != nil {
		body = req.raw
	} else if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return &Error{Kind: KindValidation, Message: fmt.Sprintf("encode request: %v", err)}
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("create request: %v", err)}
	}

	httpReq.Header.Set("apikey", c.AnonKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.bearerToken())
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.rawSize > 0 {
		httpReq.ContentLength = req.rawSize
	}
	for key, value := range req.headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return &Error{Kind: KindServer, Message: fmt.Sprintf("decode response: %v", err)}
	}

	return nil
}

func (c *Client) bearerToken() string {
	if c.TokenSource != nil {
		if token := c.TokenSource(); token != "" {
			return token
		}
	}
	return c.AnonKey
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, timeout)
}

type errorResponse struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Details          string `json:"details"`
}

func decodeError(resp *http.Response) *Error {
	kind := kindForStatus(resp.StatusCode)

	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return &Error{Kind: kind, Message: fmt.Sprintf("status %d", resp.StatusCode)}
	}

	message := payload.Message
	if message == "" {
		message = payload.Msg
	}
	if message == "" && payload.ErrorDescription != "" {
		message = payload.ErrorDescription
	}
	if message == "" && payload.ErrorCode != "" {
		message = payload.ErrorCode
	}
	if message == "" {
		message = fmt.Sprintf("status %d", resp.StatusCode)
	}
	if payload.Details != "" {
		message += ": " + payload.Details
	}

	return &Error{Kind: kind, Message: message}
}
