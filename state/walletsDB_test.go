package state_test

import (
	"errors"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-core-go/marshal"
	"github.com/multiversx/mx-chain-storage-go/memorydb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valence-network/ledger-go/state"
)

func getDefaultArgsWalletsDB() state.ArgsNewWalletsDB {
	return state.ArgsNewWalletsDB{
		Storer:      memorydb.New(),
		Hasher:      blake2b.NewBlake2b(),
		Marshalizer: &marshal.JsonMarshalizer{},
	}
}

func createWalletsDB(t *testing.T, args state.ArgsNewWalletsDB) state.WalletsAdapter {
	adb, err := state.NewWalletsDB(args)
	require.Nil(t, err)

	return adb
}

func TestNewWalletsDB(t *testing.T) {
	t.Parallel()

	t.Run("nil storer", func(t *testing.T) {
		t.Parallel()

		args := getDefaultArgsWalletsDB()
		args.Storer = nil
		adb, err := state.NewWalletsDB(args)
		assert.True(t, check.IfNil(adb))
		assert.Equal(t, state.ErrNilStorer, err)
	})

	t.Run("nil hasher", func(t *testing.T) {
		t.Parallel()

		args := getDefaultArgsWalletsDB()
		args.Hasher = nil
		adb, err := state.NewWalletsDB(args)
		assert.True(t, check.IfNil(adb))
		assert.Equal(t, state.ErrNilHasher, err)
	})

	t.Run("nil marshalizer", func(t *testing.T) {
		t.Parallel()

		args := getDefaultArgsWalletsDB()
		args.Marshalizer = nil
		adb, err := state.NewWalletsDB(args)
		assert.True(t, check.IfNil(adb))
		assert.Equal(t, state.ErrNilMarshalizer, err)
	})

	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		adb, err := state.NewWalletsDB(getDefaultArgsWalletsDB())
		assert.Nil(t, err)
		assert.False(t, check.IfNil(adb))
		assert.Equal(t, 0, adb.JournalLen())
	})
}

func TestWalletsDB_GetExistingWallet(t *testing.T) {
	t.Parallel()

	t.Run("empty address", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		wallet, err := adb.GetExistingWallet(nil)
		assert.Nil(t, wallet)
		assert.Equal(t, state.ErrNilAddress, err)
	})

	t.Run("missing wallet", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		wallet, err := adb.GetExistingWallet([]byte("missing"))
		assert.Nil(t, wallet)
		assert.True(t, errors.Is(err, state.ErrWalletNotFound))
	})

	t.Run("read your writes before commit", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		_, err := adb.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		require.Nil(t, err)

		wallet, err := adb.GetExistingWallet([]byte("alice"))
		require.Nil(t, err)
		assert.Equal(t, "alice", wallet.Name)
	})

	t.Run("returned instance is a working copy", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		_, err := adb.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		require.Nil(t, err)

		wallet, _ := adb.GetExistingWallet([]byte("alice"))
		_ = wallet.AddToBalance(100, []byte("h2"))

		reloadedWallet, _ := adb.GetExistingWallet([]byte("alice"))
		assert.Equal(t, uint64(0), reloadedWallet.Balance)
	})
}

func TestWalletsDB_CreateWallet(t *testing.T) {
	t.Parallel()

	t.Run("double create should err", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		_, err := adb.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		require.Nil(t, err)

		wallet, err := adb.CreateWallet([]byte("alice"), "alice again", []byte("h2"))
		assert.Nil(t, wallet)
		assert.Equal(t, state.ErrWalletAlreadyExists, err)
	})

	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		wallet, err := adb.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		require.Nil(t, err)
		assert.Equal(t, []byte("alice"), wallet.Address)
		assert.Equal(t, "alice", wallet.Name)
		assert.Equal(t, uint64(0), wallet.Balance)
		assert.Equal(t, uint64(0), wallet.HistoryLength)
		assert.NotEmpty(t, wallet.HistoryHash)
		assert.Equal(t, 1, adb.JournalLen())
	})
}

func TestWalletsDB_RevertToSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("snapshot out of bounds", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		assert.Equal(t, state.ErrSnapshotValueOutOfBounds, adb.RevertToSnapshot(-1))
		assert.Equal(t, state.ErrSnapshotValueOutOfBounds, adb.RevertToSnapshot(1))
	})

	t.Run("revert removes created wallet", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		snapshot := adb.JournalLen()
		_, err := adb.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		require.Nil(t, err)

		err = adb.RevertToSnapshot(snapshot)
		require.Nil(t, err)

		_, err = adb.GetExistingWallet([]byte("alice"))
		assert.True(t, errors.Is(err, state.ErrWalletNotFound))
	})

	t.Run("revert restores previous record", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		wallet, err := adb.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		require.Nil(t, err)

		snapshot := adb.JournalLen()
		_ = wallet.AddToBalance(100, []byte("h2"))
		require.Nil(t, adb.SaveWallet(wallet))

		err = adb.RevertToSnapshot(snapshot)
		require.Nil(t, err)

		reloadedWallet, err := adb.GetExistingWallet([]byte("alice"))
		require.Nil(t, err)
		assert.Equal(t, uint64(0), reloadedWallet.Balance)
		assert.Equal(t, uint64(0), reloadedWallet.HistoryLength)
	})
}

func TestWalletsDB_Commit(t *testing.T) {
	t.Parallel()

	t.Run("committed state is visible to a fresh adapter", func(t *testing.T) {
		t.Parallel()

		args := getDefaultArgsWalletsDB()
		adb := createWalletsDB(t, args)

		wallet, err := adb.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		require.Nil(t, err)
		_ = wallet.AddToBalance(100, []byte("h2"))
		require.Nil(t, adb.SaveWallet(wallet))

		_, err = adb.Commit()
		require.Nil(t, err)
		assert.Equal(t, 0, adb.JournalLen())

		freshAdb := createWalletsDB(t, args)
		reloadedWallet, err := freshAdb.GetExistingWallet([]byte("alice"))
		require.Nil(t, err)
		assert.Equal(t, "alice", reloadedWallet.Name)
		assert.Equal(t, uint64(100), reloadedWallet.Balance)
		assert.Equal(t, uint64(1), reloadedWallet.HistoryLength)
	})

	t.Run("reloaded wallet can mutate further", func(t *testing.T) {
		t.Parallel()

		args := getDefaultArgsWalletsDB()
		adb := createWalletsDB(t, args)
		wallet, err := adb.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		require.Nil(t, err)
		_ = wallet.AddToBalance(100, []byte("h2"))
		require.Nil(t, adb.SaveWallet(wallet))
		_, err = adb.Commit()
		require.Nil(t, err)

		freshAdb := createWalletsDB(t, args)
		reloadedWallet, err := freshAdb.GetExistingWallet([]byte("alice"))
		require.Nil(t, err)

		err = reloadedWallet.SubFromBalance(30, []byte("h3"))
		require.Nil(t, err)
		assert.Equal(t, uint64(70), reloadedWallet.Balance)
	})
}

func TestWalletsDB_RootHash(t *testing.T) {
	t.Parallel()

	t.Run("independent of save order", func(t *testing.T) {
		t.Parallel()

		adb1 := createWalletsDB(t, getDefaultArgsWalletsDB())
		_, _ = adb1.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		_, _ = adb1.CreateWallet([]byte("bob"), "bob", []byte("h2"))

		adb2 := createWalletsDB(t, getDefaultArgsWalletsDB())
		_, _ = adb2.CreateWallet([]byte("bob"), "bob", []byte("h2"))
		_, _ = adb2.CreateWallet([]byte("alice"), "alice", []byte("h1"))

		rootHash1, err := adb1.RootHash()
		require.Nil(t, err)
		rootHash2, err := adb2.RootHash()
		require.Nil(t, err)
		assert.Equal(t, rootHash1, rootHash2)
	})

	t.Run("changes when state changes", func(t *testing.T) {
		t.Parallel()

		adb := createWalletsDB(t, getDefaultArgsWalletsDB())
		wallet, err := adb.CreateWallet([]byte("alice"), "alice", []byte("h1"))
		require.Nil(t, err)

		rootHashBefore, err := adb.RootHash()
		require.Nil(t, err)

		_ = wallet.AddToBalance(100, []byte("h2"))
		require.Nil(t, adb.SaveWallet(wallet))

		rootHashAfter, err := adb.RootHash()
		require.Nil(t, err)
		assert.NotEqual(t, rootHashBefore, rootHashAfter)
	})
}
