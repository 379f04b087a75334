package state

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("state")

var _ WalletsAdapter = (*walletsDB)(nil)

// journalEntry remembers the wallet record that was in the working set before
// a save, so the save can be undone. A nil prev means the address had no
// record in the working set.
type journalEntry struct {
	key  string
	prev *Wallet
}

// walletsDB is the journaled access point to the wallet records. Lookups
// return working copies; a mutation becomes visible only through SaveWallet
// and durable only through Commit. The journal allows reverting every save
// made since a snapshot, which gives one transaction all-or-nothing
// semantics.
type walletsDB struct {
	storer      Storer
	hasher      hashing.Hasher
	marshalizer marshal.Marshalizer

	workingSet map[string]*Wallet
	journal    []*journalEntry
}

// ArgsNewWalletsDB defines the arguments needed for a new wallets database
type ArgsNewWalletsDB struct {
	Storer      Storer
	Hasher      hashing.Hasher
	Marshalizer marshal.Marshalizer
}

// NewWalletsDB creates a new wallets database instance
func NewWalletsDB(args ArgsNewWalletsDB) (*walletsDB, error) {
	if check.IfNil(args.Storer) {
		return nil, ErrNilStorer
	}
	if check.IfNil(args.Hasher) {
		return nil, ErrNilHasher
	}
	if check.IfNil(args.Marshalizer) {
		return nil, ErrNilMarshalizer
	}

	return &walletsDB{
		storer:      args.Storer,
		hasher:      args.Hasher,
		marshalizer: args.Marshalizer,
		workingSet:  make(map[string]*Wallet),
		journal:     make([]*journalEntry, 0),
	}, nil
}

// GetExistingWallet returns a working copy of the wallet stored for the given
// address or ErrWalletNotFound if no such wallet exists
func (adb *walletsDB) GetExistingWallet(address []byte) (*Wallet, error) {
	if len(address) == 0 {
		return nil, ErrNilAddress
	}

	key := string(address)
	wallet, ok := adb.workingSet[key]
	if ok {
		return wallet.Clone(), nil
	}

	wallet, err := adb.loadWallet(address)
	if err != nil {
		return nil, err
	}

	adb.workingSet[key] = wallet

	return wallet.Clone(), nil
}

func (adb *walletsDB) loadWallet(address []byte) (*Wallet, error) {
	buff, err := adb.storer.Get(address)
	if err != nil {
		return nil, fmt.Errorf("%w for address %s", ErrWalletNotFound, hex.EncodeToString(address))
	}

	wallet := &Wallet{}
	err = adb.marshalizer.Unmarshal(wallet, buff)
	if err != nil {
		return nil, err
	}

	wallet.setHasher(adb.hasher)

	return wallet, nil
}

// CreateWallet creates and journals an empty wallet record for the given
// address. The business-level presence check belongs to the caller; the
// double-create guard here is a consistency check only.
func (adb *walletsDB) CreateWallet(address []byte, name string, causeHash []byte) (*Wallet, error) {
	_, err := adb.GetExistingWallet(address)
	if err == nil {
		return nil, ErrWalletAlreadyExists
	}

	wallet, err := NewWallet(address, ArgsWalletCreation{Hasher: adb.hasher})
	if err != nil {
		return nil, err
	}

	wallet.Name = name
	wallet.SeedHistory(causeHash)

	err = adb.SaveWallet(wallet)
	if err != nil {
		return nil, err
	}

	return wallet.Clone(), nil
}

// SaveWallet journals the previous record for the wallet's address and
// installs the given record in the working set
func (adb *walletsDB) SaveWallet(wallet *Wallet) error {
	if check.IfNil(wallet) {
		return ErrNilWallet
	}

	key := string(wallet.Address)
	adb.journal = append(adb.journal, &journalEntry{
		key:  key,
		prev: adb.workingSet[key],
	})
	adb.workingSet[key] = wallet.Clone()

	return nil
}

// JournalLen returns the number of journal entries accumulated since the last commit
func (adb *walletsDB) JournalLen() int {
	return len(adb.journal)
}

// RevertToSnapshot undoes every save made after the given journal snapshot
func (adb *walletsDB) RevertToSnapshot(snapshot int) error {
	if snapshot < 0 || snapshot > len(adb.journal) {
		return ErrSnapshotValueOutOfBounds
	}

	for i := len(adb.journal) - 1; i >= snapshot; i-- {
		entry := adb.journal[i]
		if entry.prev == nil {
			delete(adb.workingSet, entry.key)
			continue
		}

		adb.workingSet[entry.key] = entry.prev
	}

	log.Trace("reverted wallet saves", "from", len(adb.journal), "to", snapshot)
	adb.journal = adb.journal[:snapshot]

	return nil
}

// Commit persists every wallet touched since the last commit and clears the
// journal. It returns the root hash of the resulting state.
func (adb *walletsDB) Commit() ([]byte, error) {
	dirtyKeys := make(map[string]struct{}, len(adb.journal))
	for _, entry := range adb.journal {
		dirtyKeys[entry.key] = struct{}{}
	}

	sortedKeys := make([]string, 0, len(dirtyKeys))
	for key := range dirtyKeys {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Strings(sortedKeys)

	for _, key := range sortedKeys {
		wallet := adb.workingSet[key]
		buff, err := adb.marshalizer.Marshal(wallet)
		if err != nil {
			return nil, err
		}

		err = adb.storer.Put([]byte(key), buff)
		if err != nil {
			return nil, err
		}
	}

	adb.journal = adb.journal[:0]

	rootHash, err := adb.RootHash()
	if err != nil {
		return nil, err
	}

	log.Trace("committed wallet state", "wallets", len(sortedKeys), "rootHash", rootHash)

	return rootHash, nil
}

// RootHash computes a deterministic digest of the whole wallet state: the
// committed records overlaid with the current working set, folded in address
// order
func (adb *walletsDB) RootHash() ([]byte, error) {
	records := make(map[string][]byte)
	adb.storer.RangeKeys(func(key []byte, val []byte) bool {
		records[string(key)] = val
		return true
	})

	for key, wallet := range adb.workingSet {
		buff, err := adb.marshalizer.Marshal(wallet)
		if err != nil {
			return nil, err
		}

		records[key] = buff
	}

	sortedKeys := make([]string, 0, len(records))
	for key := range records {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Strings(sortedKeys)

	digest := make([]byte, 0)
	for _, key := range sortedKeys {
		recordHash := adb.hasher.Compute(string(records[key]))
		digest = adb.hasher.Compute(string(digest) + key + string(recordHash))
	}

	if len(digest) == 0 {
		digest = adb.hasher.Compute("")
	}

	return digest, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (adb *walletsDB) IsInterfaceNil() bool {
	return adb == nil
}
