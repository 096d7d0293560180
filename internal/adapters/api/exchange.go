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

const maxResponseBytes = 1 << 20

const (
	employeeLoginPath = "/auth/employee/login"
	hrLoginPath       = "/auth/hr/login"
	adminLoginPath    = "/auth/admin/login"
	refreshPath       = "/auth/refresh"
)

// Exchanger trades credentials for tokens against the role-specific login
// endpoints and the refresh endpoint.
type Exchanger struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.TokenExchanger = (*Exchanger)(nil)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Role         string `json:"role"`
	SubjectID    string `json:"subjectId"`
	DisplayName  string `json:"displayName"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func loginPathForRole(role domain.Role) (string, error) {
	switch role {
	case domain.RoleEmployee:
		return employeeLoginPath, nil
	case domain.RoleHR:
		return hrLoginPath, nil
	case domain.RoleAdmin:
		return adminLoginPath, nil
	}
	return "", fmt.Errorf("no login endpoint for role %q", role)
}

func (e *Exchanger) Login(ctx context.Context, role domain.Role, username string, password string) (domain.Credential, error) {
	if strings.TrimSpace(username) == "" {
		return domain.Credential{}, errors.New("username is required")
	}

	path, err := loginPathForRole(role)
	if err != nil {
		return domain.Credential{}, err
	}

	return e.exchange(ctx, path, loginRequest{Username: username, Password: password})
}

func (e *Exchanger) Refresh(ctx context.Context, refreshToken string) (domain.Credential, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return domain.Credential{}, errors.New("refresh token is required")
	}

	return e.exchange(ctx, refreshPath, refreshRequest{RefreshToken: refreshToken})
}

func (e *Exchanger) exchange(ctx context.Context, path string, payload any) (domain.Credential, error) {
	endpoint, err := buildAPIURL(e.BaseURL, path)
	if err != nil {
		return domain.Credential{}, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("encode exchange request: %w", err)
	}

	requestCtx, cancel := e.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Credential{}, fmt.Errorf("create exchange request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient().Do(req)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%w: %w", domain.ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := decodeErrorMessage(resp.Body)
		if message == "" {
			return domain.Credential{}, fmt.Errorf("%w: status %d", domain.ErrInvalidCredentials, resp.StatusCode)
		}
		return domain.Credential{}, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, message)
	}

	var token tokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&token); err != nil {
		return domain.Credential{}, fmt.Errorf("%w: decode token response: %w", domain.ErrMalformedResponse, err)
	}

	cred := domain.Credential{
		Token:        token.Token,
		RefreshToken: token.RefreshToken,
		Role:         domain.Role(token.Role),
		SubjectID:    token.SubjectID,
		DisplayName:  token.DisplayName,
	}
	if !cred.Complete() {
		return domain.Credential{}, fmt.Errorf("%w: token response missing token or role", domain.ErrMalformedResponse)
	}
	if !cred.Role.Valid() {
		return domain.Credential{}, fmt.Errorf("%w: unknown role %q", domain.ErrMalformedResponse, token.Role)
	}

	return cred, nil
}

func (e *Exchanger) httpClient() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	return http.DefaultClient
}

func (e *Exchanger) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := e.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func decodeErrorMessage(body io.Reader) string {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxResponseBytes)).Decode(&payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	// JoinPath keeps any path prefix on the base url, so a base of
	// "https://host/api" plus "/staff" yields "https://host/api/staff".
	return parsed.JoinPath(path).String(), nil
}
