package node

import "errors"

// ErrNilWalletsAdapter signals that a nil wallets adapter has been provided
var ErrNilWalletsAdapter = errors.New("nil wallets adapter")

// ErrNilTransactionProcessor signals that a nil transaction processor has been provided
var ErrNilTransactionProcessor = errors.New("nil transaction processor")

// ErrNilHasher signals that a nil hasher has been provided
var ErrNilHasher = errors.New("nil hasher")

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrInvalidGenesisAddress signals that a genesis wallet address cannot be decoded
var ErrInvalidGenesisAddress = errors.New("invalid genesis address")
