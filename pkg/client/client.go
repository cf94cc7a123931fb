// Package client calls the procedure API over HTTP with typed inputs and
// outputs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/c00p75/fitness-league-sub000/internal/rpc"
)

const rpcPrefix = "/api/trpc/"

// TokenSource returns the bearer token for the next call. An empty token
// sends the call anonymously.
type TokenSource func(ctx context.Context) (string, error)

type Client struct {
	baseURL     string
	httpClient  *http.Client
	tokenSource TokenSource

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTokenSource takes precedence over a stored token.
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) { c.tokenSource = source }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the stored token, for example after sign-in.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) bearer(ctx context.Context) (string, error) {
	if c.tokenSource != nil {
		token, err := c.tokenSource(ctx)
		if err != nil {
			return "", fmt.Errorf("token source: %w", err)
		}
		return token, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, nil
}

// Query calls a query procedure with GET.
func Query[Out any](ctx context.Context, c *Client, path string, in any) (Out, error) {
	var out Out
	raw, err := encodeInput(in)
	if err != nil {
		return out, err
	}
	endpoint := c.baseURL + rpcPrefix + url.PathEscape(path)
	if raw != nil {
		endpoint += "?input=" + url.QueryEscape(string(raw))
	}
	data, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return out, err
	}
	return decodeData[Out](data)
}

// Mutate calls a mutation procedure with POST.
func Mutate[Out any](ctx context.Context, c *Client, path string, in any) (Out, error) {
	var out Out
	raw, err := encodeInput(in)
	if err != nil {
		return out, err
	}
	data, err := c.do(ctx, http.MethodPost, c.baseURL+rpcPrefix+url.PathEscape(path), raw)
	if err != nil {
		return out, err
	}
	return decodeData[Out](data)
}

// Call is one entry of a batch.
type Call struct {
	Path  string
	Input any
}

// BatchResult holds either the encoded data or the typed error of one call.
type BatchResult struct {
	Data json.RawMessage
	Err  *Error
}

// Decode unpacks a batch entry into Out.
func Decode[Out any](r BatchResult) (Out, error) {
	if r.Err != nil {
		var zero Out
		return zero, r.Err
	}
	return decodeData[Out](r.Data)
}

// Batch sends several queries in one GET. Each entry succeeds or fails on
// its own; the returned error covers transport failures only.
func (c *Client) Batch(ctx context.Context, calls ...Call) ([]BatchResult, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	paths := make([]string, len(calls))
	inputs := make(map[string]json.RawMessage, len(calls))
	for i, call := range calls {
		paths[i] = url.PathEscape(call.Path)
		raw, err := encodeInput(call.Input)
		if err != nil {
			return nil, err
		}
		if raw != nil {
			inputs[strconv.Itoa(i)] = raw
		}
	}
	encoded, err := json.Marshal(inputs)
	if err != nil {
		return nil, fmt.Errorf("encode batch input: %w", err)
	}
	endpoint := c.baseURL + rpcPrefix + strings.Join(paths, ",") + "?batch=1&input=" + url.QueryEscape(string(encoded))

	status, body, err := c.send(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var responses []rpc.RawResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return nil, statusError(status, body)
	}
	if len(responses) != len(calls) {
		return nil, fmt.Errorf("batch: expected %d responses, got %d", len(calls), len(responses))
	}
	results := make([]BatchResult, len(responses))
	for i, response := range responses {
		switch {
		case response.Error != nil:
			results[i].Err = response.Error.Err()
		case response.Result != nil:
			results[i].Data = response.Result.Data
		default:
			results[i].Err = rpc.NewError(rpc.CodeInternal, "empty response")
		}
	}
	return results, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) (json.RawMessage, error) {
	status, raw, err := c.send(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	var response rpc.RawResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, statusError(status, raw)
	}
	if response.Error != nil {
		return nil, response.Error.Err()
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices || response.Result == nil {
		return nil, statusError(status, raw)
	}
	return response.Result.Data, nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.bearer(ctx)
	if err != nil {
		return 0, nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

func encodeInput(in any) ([]byte, error) {
	if in == nil {
		return nil, nil
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode input: %w", err)
	}
	return raw, nil
}

func decodeData[Out any](data json.RawMessage) (Out, error) {
	var out Out
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode result: %w", err)
	}
	return out, nil
}

// statusError maps a response without a usable envelope to a typed error.
func statusError(status int, body []byte) error {
	message := strings.TrimSpace(string(body))
	if len(message) > 200 {
		message = message[:200]
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return rpc.NewError(rpc.CodeFromHTTPStatus(status), message)
}
