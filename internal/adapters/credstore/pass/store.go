package pass

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hugokent/staffctl/internal/domain"
	"github.com/hugokent/staffctl/internal/ports"
)

const defaultEntry = "staffctl/credential"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps the credential as a JSON document under one pass(1) entry.
type Store struct {
	entry string
	run   runFunc
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{entry: defaultEntry, run: runPassCommand}
}

type credentialDocument struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Role         string `json:"role"`
	SubjectID    string `json:"subject_id,omitempty"`
	DisplayName  string `json:"display_name,omitempty"`
}

func (s *Store) Save(ctx context.Context, cred domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(credentialDocument{
		Token:        cred.Token,
		RefreshToken: cred.RefreshToken,
		Role:         string(cred.Role),
		SubjectID:    cred.SubjectID,
		DisplayName:  cred.DisplayName,
	})
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	_, stderr, err := s.run(ctx, string(payload)+"\n", "insert", "-m", "-f", s.entry)
	if err != nil {
		return formatError("save", s.entry, err, stderr)
	}

	return nil
}

func (s *Store) Load(ctx context.Context) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	stdout, stderr, err := s.run(ctx, "", "show", s.entry)
	if err != nil {
		if isMissingEntry(stderr) {
			return domain.Credential{}, domain.ErrNoCredential
		}
		return domain.Credential{}, formatError("load", s.entry, err, stderr)
	}

	stdout = strings.TrimSuffix(stdout, "\n")
	stdout = strings.TrimSuffix(stdout, "\r")

	var doc credentialDocument
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		return domain.Credential{}, domain.ErrNoCredential
	}

	cred := domain.Credential{
		Token:        doc.Token,
		RefreshToken: doc.RefreshToken,
		Role:         domain.Role(doc.Role),
		SubjectID:    doc.SubjectID,
		DisplayName:  doc.DisplayName,
	}
	if !cred.Complete() {
		return domain.Credential{}, domain.ErrNoCredential
	}

	return cred, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", s.entry)
	if err != nil {
		if isMissingEntry(stderr) {
			return nil
		}
		return formatError("clear", s.entry, err, stderr)
	}

	return nil
}

func isMissingEntry(stderr string) bool {
	return strings.Contains(stderr, "is not in the password store")
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
