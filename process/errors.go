package process

import "errors"

// ErrWalletAlreadyExists signals that a wallet is already registered for the author identity
var ErrWalletAlreadyExists = errors.New("wallet already exists")

// ErrSenderNotFound signals that the sender or author side of the transaction
// cannot be resolved: the wallet does not exist, the author is not an
// authorized approver, or the referenced proposal is unknown
var ErrSenderNotFound = errors.New("sender doesn't exist")

// ErrReceiverNotFound signals that the receiver wallet does not exist
var ErrReceiverNotFound = errors.New("receiver doesn't exist")

// ErrInsufficientFunds signals that the sender's available balance does not cover the requested amount
var ErrInsufficientFunds = errors.New("insufficient currency amount")

// ErrSameSenderAndReceiver signals a structurally invalid transaction where
// sender and receiver are the same identity
var ErrSameSenderAndReceiver = errors.New("sender same as receiver")

// ErrNilWalletsAdapter signals that a nil wallets adapter has been provided
var ErrNilWalletsAdapter = errors.New("nil wallets adapter")

// ErrNilHasher signals that a nil hasher has been provided
var ErrNilHasher = errors.New("nil hasher")

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrNilTransaction signals that a nil transaction has been provided
var ErrNilTransaction = errors.New("nil transaction")

// ErrNilTransactionProcessor signals that a nil transaction processor has been provided
var ErrNilTransactionProcessor = errors.New("nil transaction processor")

// ErrWrongTransaction signals that the transaction type is not part of the ledger's transaction family
var ErrWrongTransaction = errors.New("invalid transaction type")
