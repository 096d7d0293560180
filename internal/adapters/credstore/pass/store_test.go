package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/hugokent/staffctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		entry: defaultEntry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, []string{"insert", "-m", "-f", "staffctl/credential"}, args)
			assert.Contains(t, input, "\"token\":\"tok-1\"")
			assert.Contains(t, input, "\"role\":\"HR\"")
			return "", "", nil
		},
	}

	err := store.Save(context.Background(), domain.Credential{Token: "tok-1", Role: domain.RoleHR})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreLoadDecodesCredentialDocument(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: defaultEntry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "staffctl/credential"}, args)
			assert.Empty(t, input)
			return `{"token":"tok-1","refresh_token":"ref-1","role":"ADMIN","subject_id":"8","display_name":"Root"}` + "\n", "", nil
		},
	}

	cred, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Credential{
		Token:        "tok-1",
		RefreshToken: "ref-1",
		Role:         domain.RoleAdmin,
		SubjectID:    "8",
		DisplayName:  "Root",
	}, cred)
}

func TestStoreLoadMissingEntryIsAbsent(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: defaultEntry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "Error: staffctl/credential is not in the password store.", errors.New("exit status 1")
		},
	}

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoCredential)
}

func TestStoreLoadMalformedDocumentIsAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stdout string
	}{
		{name: "not json", stdout: "hunter2\n"},
		{name: "token without role", stdout: `{"token":"tok-1"}`},
		{name: "role without token", stdout: `{"role":"HR","display_name":"Eve"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &Store{
				entry: defaultEntry,
				run: func(ctx context.Context, input string, args ...string) (string, string, error) {
					return tt.stdout, "", nil
				},
			}

			_, err := store.Load(context.Background())
			assert.ErrorIs(t, err, domain.ErrNoCredential)
		})
	}
}

func TestStoreClearIsIdempotentWhenEntryMissing(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: defaultEntry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "staffctl/credential"}, args)
			return "", "Error: staffctl/credential is not in the password store.", errors.New("exit status 1")
		},
	}

	require.NoError(t, store.Clear(context.Background()))
}

func TestStoreLoadSurfacesOtherPassFailures(t *testing.T) {
	t.Parallel()

	store := &Store{
		entry: defaultEntry,
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "gpg: decryption failed", errors.New("exit status 2")
		},
	}

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoCredential)
	assert.ErrorContains(t, err, "pass load")
	assert.ErrorContains(t, err, "gpg: decryption failed")
}
