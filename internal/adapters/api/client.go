package api

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

	"github.com/hugokent/staffctl/internal/domain"
	"github.com/hugokent/staffctl/internal/ports"
)

// Request is one outbound API call. It never carries an auth header; the
// client injects the bearer token from the credential store.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (r *Response) DecodeJSON(v any) error {
	if len(r.Body) == 0 {
		return errors.New("empty response body")
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// Client issues authenticated calls against the staff API. A 401 tears the
// session down; a 403 gets exactly one refresh-and-retry before surfacing
// domain.ErrForbidden. Refresh attempts never chain: the retried call is
// classified without a second refresh, whatever its status.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration

	store     ports.CredentialStore
	exchanger ports.TokenExchanger
}

func NewClient(baseURL string, httpClient *http.Client, store ports.CredentialStore, exchanger ports.TokenExchanger) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: httpClient,
		store:      store,
		exchanger:  exchanger,
	}
}

func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	cred, err := c.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoCredential) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("load credential: %w", err)
	}

	resp, err := c.attempt(ctx, req, cred.Token)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return resp, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, c.expireSession(ctx)
	case resp.StatusCode == http.StatusForbidden:
		return c.refreshAndRetry(ctx, req, cred)
	default:
		return nil, serverError(resp)
	}
}

// refreshAndRetry runs the single permitted refresh cycle for a call that hit
// a 403 on its first attempt.
func (c *Client) refreshAndRetry(ctx context.Context, req Request, cred domain.Credential) (*Response, error) {
	if cred.RefreshToken == "" {
		return nil, domain.ErrForbidden
	}

	refreshed, err := c.exchanger.Refresh(ctx, cred.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: refresh failed: %w", domain.ErrForbidden, err)
	}

	// The refresh endpoint answers with identity claims only when they
	// changed; carry the known ones forward otherwise.
	if refreshed.SubjectID == "" {
		refreshed.SubjectID = cred.SubjectID
	}
	if refreshed.DisplayName == "" {
		refreshed.DisplayName = cred.DisplayName
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = cred.RefreshToken
	}

	if err := c.store.Save(ctx, refreshed); err != nil {
		return nil, fmt.Errorf("save refreshed credential: %w", err)
	}

	resp, err := c.attempt(ctx, req, refreshed.Token)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return resp, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, c.expireSession(ctx)
	case resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrForbidden
	default:
		return nil, serverError(resp)
	}
}

func (c *Client) attempt(ctx context.Context, req Request, token string) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	endpoint, err := buildAPIURL(c.BaseURL, req.Path)
	if err != nil {
		return nil, err
	}
	if len(req.Query) > 0 {
		endpoint = endpoint + "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(requestCtx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnreachable, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{StatusCode: httpResp.StatusCode, Body: data}, nil
}

// expireSession clears the store as part of propagating ErrSessionExpired, so
// callers need no separate cleanup step.
func (c *Client) expireSession(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("%w: clear credential: %w", domain.ErrSessionExpired, err)
	}
	return domain.ErrSessionExpired
}

func serverError(resp *Response) error {
	message := decodeErrorMessage(bytes.NewReader(resp.Body))
	if message == "" {
		message = strings.TrimSpace(string(resp.Body))
		if len(message) > 200 {
			message = message[:200]
		}
	}
	return &domain.ServerError{Status: resp.StatusCode, Message: message}
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

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}
