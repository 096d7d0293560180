package chain

import (
	"context"
	"errors"
	"testing"

	passstore "github.com/hugokent/staffctl/internal/adapters/credstore/pass"
	"github.com/hugokent/staffctl/internal/domain"
	portmocks "github.com/hugokent/staffctl/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCred = domain.Credential{Token: "tok", Role: domain.RoleHR, SubjectID: "4"}

func TestStoreLoadUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return(testCred, nil).Once()

	cred, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCred, cred)
}

func TestStoreLoadFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return(domain.Credential{}, passstore.ErrUnavailable).Once()
	fallback.EXPECT().Load(mock.Anything).Return(testCred, nil).Once()

	cred, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testCred, cred)
}

func TestStoreLoadAbsentEverywhereIsAbsent(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return(domain.Credential{}, domain.ErrNoCredential).Once()
	fallback.EXPECT().Load(mock.Anything).Return(domain.Credential{}, domain.ErrNoCredential).Once()

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoCredential)
}

func TestStoreLoadReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return(domain.Credential{}, errors.New("pass failed")).Once()
	fallback.EXPECT().Load(mock.Anything).Return(domain.Credential{}, errors.New("file failed")).Once()

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStoreLoadDoesNotFallBackOnContextError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Load(mock.Anything).Return(domain.Credential{}, context.Canceled).Once()

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreSavePrimarySuccessClearsFallback(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Save(mock.Anything, testCred).Return(nil).Once()
	fallback.EXPECT().Clear(mock.Anything).Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), testCred))
}

func TestStoreSaveFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Save(mock.Anything, testCred).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Save(mock.Anything, testCred).Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), testCred))
}

func TestStoreClearReachesBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Clear(mock.Anything).Return(nil).Once()
	fallback.EXPECT().Clear(mock.Anything).Return(nil).Once()

	require.NoError(t, store.Clear(context.Background()))
}

func TestStoreClearToleratesUnavailablePrimary(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCredentialStore(t)
	fallback := portmocks.NewMockCredentialStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Clear(mock.Anything).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Clear(mock.Anything).Return(nil).Once()

	require.NoError(t, store.Clear(context.Background()))
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	fallback := portmocks.NewMockCredentialStore(t)

	_, err := NewStoreChecked(nil, fallback)
	require.Error(t, err)

	_, err = NewStoreChecked(fallback, nil)
	require.Error(t, err)
}
