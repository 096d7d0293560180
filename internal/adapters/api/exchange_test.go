package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hugokent/staffctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangerLoginSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/hr/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "grace", payload["username"])
		assert.Equal(t, "hunter2", payload["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","refreshToken":"ref-1","role":"HR","subjectId":"12","displayName":"Grace"}`))
	}))
	defer server.Close()

	exchanger := &Exchanger{BaseURL: server.URL}

	cred, err := exchanger.Login(context.Background(), domain.RoleHR, "grace", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, domain.Credential{
		Token:        "tok-1",
		RefreshToken: "ref-1",
		Role:         domain.RoleHR,
		SubjectID:    "12",
		DisplayName:  "Grace",
	}, cred)
}

func TestExchangerLoginSelectsEndpointByRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role     domain.Role
		wantPath string
	}{
		{role: domain.RoleEmployee, wantPath: "/auth/employee/login"},
		{role: domain.RoleHR, wantPath: "/auth/hr/login"},
		{role: domain.RoleAdmin, wantPath: "/auth/admin/login"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.role), func(t *testing.T) {
			t.Parallel()

			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				_, _ = w.Write([]byte(`{"token":"tok","role":"` + string(tt.role) + `"}`))
			}))
			defer server.Close()

			_, err := (&Exchanger{BaseURL: server.URL}).Login(context.Background(), tt.role, "u", "p")
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, gotPath)
		})
	}
}

func TestExchangerLoginRejectedCredentialsSurfaceServerMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer server.Close()

	_, err := (&Exchanger{BaseURL: server.URL}).Login(context.Background(), domain.RoleEmployee, "bob", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.ErrorContains(t, err, "Bad credentials")
	assert.NotErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestExchangerLoginWithoutServerMessageUsesStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := (&Exchanger{BaseURL: server.URL}).Login(context.Background(), domain.RoleEmployee, "bob", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.ErrorContains(t, err, "status 401")
}

func TestExchangerLoginMalformedBodyIsNotInvalidCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "<html>gateway error</html>"},
		{name: "missing token", body: `{"role":"HR"}`},
		{name: "missing role", body: `{"token":"tok-1"}`},
		{name: "unknown role", body: `{"token":"tok-1","role":"SUPERUSER"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := (&Exchanger{BaseURL: server.URL}).Login(context.Background(), domain.RoleHR, "grace", "pw")
			require.ErrorIs(t, err, domain.ErrMalformedResponse)
			assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestExchangerLoginUnreachableServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := (&Exchanger{BaseURL: server.URL}).Login(context.Background(), domain.RoleHR, "grace", "pw")
	require.ErrorIs(t, err, domain.ErrUnreachable)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestExchangerRefreshPostsRefreshToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/refresh", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ref-1", payload["refreshToken"])

		_, _ = w.Write([]byte(`{"token":"tok-2","refreshToken":"ref-2","role":"HR"}`))
	}))
	defer server.Close()

	cred, err := (&Exchanger{BaseURL: server.URL}).Refresh(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", cred.Token)
	assert.Equal(t, "ref-2", cred.RefreshToken)
	assert.Equal(t, domain.RoleHR, cred.Role)
}

func TestExchangerRefreshRequiresToken(t *testing.T) {
	t.Parallel()

	_, err := (&Exchanger{BaseURL: "http://localhost"}).Refresh(context.Background(), "  ")
	require.Error(t, err)
	assert.ErrorContains(t, err, "refresh token is required")
}

func TestBuildAPIURLKeepsBasePathPrefix(t *testing.T) {
	t.Parallel()

	endpoint, err := buildAPIURL("http://host:8080/api", "/staff")
	require.NoError(t, err)
	assert.Equal(t, "http://host:8080/api/staff", endpoint)
}

func TestBuildAPIURLValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		path    string
		wantErr string
	}{
		{name: "empty base", baseURL: "", path: "/x", wantErr: "api base url is required"},
		{name: "empty path", baseURL: "http://host", path: "", wantErr: "api path is required"},
		{name: "bad scheme", baseURL: "ftp://host", path: "/x", wantErr: "must use http or https"},
		{name: "missing host", baseURL: "http://", path: "/x", wantErr: "host is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildAPIURL(tt.baseURL, tt.path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
