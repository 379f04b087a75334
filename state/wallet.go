package state

import (
	"bytes"
	"math"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
)

// PendingTransfer holds one outstanding transfer proposal reservation made
// against a wallet. The Amount is earmarked inside the wallet's pending
// balance until the proposal is accepted.
type PendingTransfer struct {
	Hash   []byte
	Amount uint64
}

// Wallet is the ledger record kept for one public identity. The address and
// the name are immutable after creation; the balances change only through the
// mutation methods below, each of which also updates the wallet's history.
type Wallet struct {
	Address          []byte
	Name             string
	Balance          uint64
	PendingBalance   uint64
	PendingTransfers []*PendingTransfer
	HistoryLength    uint64
	HistoryHash      []byte

	hasher hashing.Hasher
}

// ArgsWalletCreation holds the components needed to create a new wallet
type ArgsWalletCreation struct {
	Hasher hashing.Hasher
}

// NewWallet creates a new empty wallet instance for the given address
func NewWallet(address []byte, args ArgsWalletCreation) (*Wallet, error) {
	if len(address) == 0 {
		return nil, ErrNilAddress
	}
	if check.IfNil(args.Hasher) {
		return nil, ErrNilHasher
	}

	addressCopy := make([]byte, len(address))
	copy(addressCopy, address)

	return &Wallet{
		Address:          addressCopy,
		PendingTransfers: make([]*PendingTransfer, 0),
		hasher:           args.Hasher,
	}, nil
}

// AvailableBalance returns the part of the balance not earmarked by
// outstanding transfer proposals
func (wallet *Wallet) AvailableBalance() uint64 {
	return wallet.Balance - wallet.PendingBalance
}

// AddToBalance credits the wallet with the given amount
func (wallet *Wallet) AddToBalance(amount uint64, causeHash []byte) error {
	if amount > math.MaxUint64-wallet.Balance {
		return ErrBalanceOverflow
	}

	wallet.Balance += amount
	wallet.updateHistory(causeHash)

	return nil
}

// SubFromBalance debits the wallet with the given amount. Only funds not
// earmarked by pending transfers can be debited, keeping the pending balance
// always covered by the balance.
func (wallet *Wallet) SubFromBalance(amount uint64, causeHash []byte) error {
	if amount > wallet.AvailableBalance() {
		return ErrInsufficientFunds
	}

	wallet.Balance -= amount
	wallet.updateHistory(causeHash)

	return nil
}

// ReservePending earmarks the given amount for the proposal identified by
// proposalHash, raising the pending balance without moving any funds
func (wallet *Wallet) ReservePending(amount uint64, proposalHash []byte) error {
	if amount > wallet.AvailableBalance() {
		return ErrInsufficientFunds
	}

	hashCopy := make([]byte, len(proposalHash))
	copy(hashCopy, proposalHash)

	wallet.PendingTransfers = append(wallet.PendingTransfers, &PendingTransfer{
		Hash:   hashCopy,
		Amount: amount,
	})
	wallet.PendingBalance += amount
	wallet.updateHistory(proposalHash)

	return nil
}

// ReleasePending removes the pending transfer identified by proposalHash and
// lowers the pending balance by the amount it had reserved. It returns the
// released amount.
func (wallet *Wallet) ReleasePending(proposalHash []byte, causeHash []byte) (uint64, error) {
	for index, pendingTransfer := range wallet.PendingTransfers {
		if !bytes.Equal(pendingTransfer.Hash, proposalHash) {
			continue
		}

		wallet.PendingTransfers = append(wallet.PendingTransfers[:index], wallet.PendingTransfers[index+1:]...)
		wallet.PendingBalance -= pendingTransfer.Amount
		wallet.updateHistory(causeHash)

		return pendingTransfer.Amount, nil
	}

	return 0, ErrPendingTransferNotFound
}

// GetPendingTransfer returns the outstanding pending transfer for the given
// proposal hash or nil if none exists
func (wallet *Wallet) GetPendingTransfer(proposalHash []byte) *PendingTransfer {
	for _, pendingTransfer := range wallet.PendingTransfers {
		if bytes.Equal(pendingTransfer.Hash, proposalHash) {
			return pendingTransfer
		}
	}

	return nil
}

func (wallet *Wallet) updateHistory(causeHash []byte) {
	wallet.HistoryLength++
	wallet.HistoryHash = wallet.hasher.Compute(string(wallet.HistoryHash) + string(causeHash))
}

// SeedHistory initializes the history digest from the hash of the transaction
// that created the wallet, without counting it as a mutation
func (wallet *Wallet) SeedHistory(causeHash []byte) {
	wallet.HistoryHash = wallet.hasher.Compute(string(causeHash))
}

// Clone returns a deep copy of the wallet
func (wallet *Wallet) Clone() *Wallet {
	addressCopy := make([]byte, len(wallet.Address))
	copy(addressCopy, wallet.Address)

	historyHashCopy := make([]byte, len(wallet.HistoryHash))
	copy(historyHashCopy, wallet.HistoryHash)

	pendingTransfersCopy := make([]*PendingTransfer, 0, len(wallet.PendingTransfers))
	for _, pendingTransfer := range wallet.PendingTransfers {
		hashCopy := make([]byte, len(pendingTransfer.Hash))
		copy(hashCopy, pendingTransfer.Hash)
		pendingTransfersCopy = append(pendingTransfersCopy, &PendingTransfer{
			Hash:   hashCopy,
			Amount: pendingTransfer.Amount,
		})
	}

	return &Wallet{
		Address:          addressCopy,
		Name:             wallet.Name,
		Balance:          wallet.Balance,
		PendingBalance:   wallet.PendingBalance,
		PendingTransfers: pendingTransfersCopy,
		HistoryLength:    wallet.HistoryLength,
		HistoryHash:      historyHashCopy,
		hasher:           wallet.hasher,
	}
}

func (wallet *Wallet) setHasher(hasher hashing.Hasher) {
	wallet.hasher = hasher
}

// IsInterfaceNil returns true if there is no value under the interface
func (wallet *Wallet) IsInterfaceNil() bool {
	return wallet == nil
}
