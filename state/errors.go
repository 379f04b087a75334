package state

import "errors"

// ErrNilAddress defines the error when trying to work with a nil or empty address
var ErrNilAddress = errors.New("nil address")

// ErrNilHasher signals that an operation has been attempted to or with a nil hasher implementation
var ErrNilHasher = errors.New("nil hasher")

// ErrNilMarshalizer signals that an operation has been attempted to or with a nil marshalizer implementation
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrNilStorer signals that a nil storer has been provided
var ErrNilStorer = errors.New("nil storer")

// ErrNilWallet signals that a nil wallet has been provided
var ErrNilWallet = errors.New("nil wallet")

// ErrWalletNotFound signals that the wallet was not found in the ledger state
var ErrWalletNotFound = errors.New("wallet was not found")

// ErrWalletAlreadyExists signals that a wallet already exists for the given address
var ErrWalletAlreadyExists = errors.New("wallet already exists")

// ErrInsufficientFunds signals that the available balance does not cover the requested amount
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrBalanceOverflow signals that a credit operation would overflow the balance
var ErrBalanceOverflow = errors.New("balance overflow")

// ErrPendingTransferNotFound signals that no pending transfer exists for the given proposal hash
var ErrPendingTransferNotFound = errors.New("pending transfer was not found")

// ErrSnapshotValueOutOfBounds signals that the snapshot value is out of bounds
var ErrSnapshotValueOutOfBounds = errors.New("snapshot value out of bounds")
