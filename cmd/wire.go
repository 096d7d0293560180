package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hugokent/staffctl/internal/adapters/api"
	chainstore "github.com/hugokent/staffctl/internal/adapters/credstore/chain"
	filestore "github.com/hugokent/staffctl/internal/adapters/credstore/file"
	passstore "github.com/hugokent/staffctl/internal/adapters/credstore/pass"
	sessionrender "github.com/hugokent/staffctl/internal/adapters/render/session"
	"github.com/hugokent/staffctl/internal/application"
	"github.com/hugokent/staffctl/internal/ports"
	"github.com/spf13/viper"
)

const (
	apiBaseURLKey     = "api.base_url"
	defaultAPIBaseURL = "http://localhost:8080/api"
)

type app struct {
	sessions        *application.SessionService
	guard           *application.Guard
	client          *api.Client
	store           ports.CredentialStore
	sessionRenderer func(application.SessionStatus, sessionrender.RenderOptions) (string, error)
	baseURL         string
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault(apiBaseURLKey, defaultAPIBaseURL)

	fileStore, err := filestore.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire file credential store: %w", err)
	}

	// STAFFCTL_CREDENTIAL_STORE=file bypasses pass(1) entirely, for machines
	// and test runs that must not touch a password store.
	var store ports.CredentialStore
	if envOrDefault("STAFFCTL_CREDENTIAL_STORE", "chain") == "file" {
		store = fileStore
	} else {
		store, err = chainstore.NewStoreChecked(passstore.NewStore(), fileStore)
		if err != nil {
			return nil, fmt.Errorf("wire credential store chain: %w", err)
		}
	}

	baseURL := envOrDefault("STAFFCTL_API_URL", cfg.GetString(apiBaseURLKey))

	exchanger := &api.Exchanger{
		BaseURL:        baseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: 30 * time.Second,
	}
	sessions := application.NewSessionService(store, exchanger, ports.SystemClock{})

	return &app{
		sessions:        sessions,
		guard:           application.NewGuard(sessions),
		client:          api.NewClient(baseURL, http.DefaultClient, store, exchanger),
		store:           store,
		sessionRenderer: sessionrender.Render,
		baseURL:         baseURL,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
