package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hugokent/staffctl/internal/domain"
	"github.com/hugokent/staffctl/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName          = "config"
	configType          = "toml"
	credentialsPathKey  = "credentials.path"
	credentialsFileMode = 0o600
	credentialsDirMode  = 0o700
	configDir           = ".staffctl"
	credentialsFile     = "credentials.toml"
	tempFilePattern     = ".credentials-*.toml.tmp"
)

// Store persists the credential as one TOML document. Writes go through a
// temp file and rename so a reader never observes a partial document.
type Store struct {
	credentialsPath string
	mu              *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CredentialStore = (*Store)(nil)

// NewStore resolves the credentials path from the staffctl config file,
// falling back to ~/.staffctl/credentials.toml.
func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDir, credentialsFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(credentialsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	credentialsPath := cfg.GetString(credentialsPathKey)
	if credentialsPath == "" {
		return nil, errors.New("credentials path is empty")
	}
	credentialsPath, err = normalizeCredentialsPath(credentialsPath)
	if err != nil {
		return nil, err
	}

	return NewStoreAtPath(credentialsPath), nil
}

func NewStoreAtPath(path string) *Store {
	path = filepath.Clean(path)
	return &Store{credentialsPath: path, mu: lockForPath(path)}
}

func (s *Store) Save(ctx context.Context, cred domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeSchema(toSchema(cred))
}

func (s *Store) Load(ctx context.Context) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.credentialsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Credential{}, domain.ErrNoCredential
		}
		return domain.Credential{}, fmt.Errorf("read credentials file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		// Malformed documents count as no session, never as a hard failure.
		return domain.Credential{}, domain.ErrNoCredential
	}
	if err := file.validateVersion(); err != nil {
		return domain.Credential{}, domain.ErrNoCredential
	}

	cred := fromSchema(file)
	if !cred.Complete() {
		return domain.Credential{}, domain.ErrNoCredential
	}

	return cred, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.credentialsPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials file: %w", err)
	}

	return nil
}

func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.credentialsPath), credentialsDirMode); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode credentials file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.credentialsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp credentials file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp credentials file: %w", err)
	}

	if err := tempFile.Chmod(credentialsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp credentials file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp credentials file: %w", err)
	}

	if err := os.Rename(tempName, s.credentialsPath); err != nil {
		return fmt.Errorf("replace credentials file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(s.credentialsPath, credentialsFileMode); err != nil {
		return fmt.Errorf("chmod credentials file: %w", err)
	}

	return nil
}

func normalizeCredentialsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve credentials path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
