package testscommon

import (
	"github.com/valence-network/ledger-go/state"
)

// WalletsAdapterStub -
type WalletsAdapterStub struct {
	GetExistingWalletCalled func(address []byte) (*state.Wallet, error)
	CreateWalletCalled      func(address []byte, name string, causeHash []byte) (*state.Wallet, error)
	SaveWalletCalled        func(wallet *state.Wallet) error
	JournalLenCalled        func() int
	RevertToSnapshotCalled  func(snapshot int) error
	CommitCalled            func() ([]byte, error)
	RootHashCalled          func() ([]byte, error)
}

// GetExistingWallet -
func (stub *WalletsAdapterStub) GetExistingWallet(address []byte) (*state.Wallet, error) {
	if stub.GetExistingWalletCalled != nil {
		return stub.GetExistingWalletCalled(address)
	}

	return nil, state.ErrWalletNotFound
}

// CreateWallet -
func (stub *WalletsAdapterStub) CreateWallet(address []byte, name string, causeHash []byte) (*state.Wallet, error) {
	if stub.CreateWalletCalled != nil {
		return stub.CreateWalletCalled(address, name, causeHash)
	}

	return nil, nil
}

// SaveWallet -
func (stub *WalletsAdapterStub) SaveWallet(wallet *state.Wallet) error {
	if stub.SaveWalletCalled != nil {
		return stub.SaveWalletCalled(wallet)
	}

	return nil
}

// JournalLen -
func (stub *WalletsAdapterStub) JournalLen() int {
	if stub.JournalLenCalled != nil {
		return stub.JournalLenCalled()
	}

	return 0
}

// RevertToSnapshot -
func (stub *WalletsAdapterStub) RevertToSnapshot(snapshot int) error {
	if stub.RevertToSnapshotCalled != nil {
		return stub.RevertToSnapshotCalled(snapshot)
	}

	return nil
}

// Commit -
func (stub *WalletsAdapterStub) Commit() ([]byte, error) {
	if stub.CommitCalled != nil {
		return stub.CommitCalled()
	}

	return nil, nil
}

// RootHash -
func (stub *WalletsAdapterStub) RootHash() ([]byte, error) {
	if stub.RootHashCalled != nil {
		return stub.RootHashCalled()
	}

	return nil, nil
}

// IsInterfaceNil -
func (stub *WalletsAdapterStub) IsInterfaceNil() bool {
	return stub == nil
}
