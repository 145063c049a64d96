package persistence_test

import (
	"context"
	"testing"

	"github.com/securebank/securebank/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := persistence.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Load(ctx, "bank_ledger")
	require.NoError(t, err)
	assert.False(t, ok, "unsaved key must report absent")

	type payload struct {
		Accounts int `json:"accounts"`
	}
	require.NoError(t, persistence.SaveJSON(ctx, store, "bank_ledger", payload{Accounts: 3}))

	var back payload
	ok, err = persistence.LoadJSON(ctx, store, "bank_ledger", &back)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, back.Accounts)

	// keys are independent
	_, ok, err = store.Load(ctx, "bank_users")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store, err := persistence.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "k", []byte(`{"v":1}`)))
	require.NoError(t, store.Save(ctx, "k", []byte(`{"v":2}`)))

	rec, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"v":2}`, string(rec))
}
