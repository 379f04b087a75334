package transaction

import (
	"bytes"
	"errors"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/valence-network/ledger-go/data/transaction"
	"github.com/valence-network/ledger-go/process"
	"github.com/valence-network/ledger-go/state"
)

var log = logger.GetOrCreate("process/transaction")

var _ process.TransactionProcessor = (*txProcessor)(nil)

// txProcessor implements TransactionProcessor and modifies the wallets state
// according to the delivered transactions
type txProcessor struct {
	wallets     state.WalletsAdapter
	hasher      hashing.Hasher
	marshalizer marshal.Marshalizer
}

// ArgsNewTxProcessor defines the arguments needed for a new tx processor
type ArgsNewTxProcessor struct {
	Wallets     state.WalletsAdapter
	Hasher      hashing.Hasher
	Marshalizer marshal.Marshalizer
}

// NewTxProcessor creates a new txProcessor engine
func NewTxProcessor(args ArgsNewTxProcessor) (*txProcessor, error) {
	if check.IfNil(args.Wallets) {
		return nil, process.ErrNilWalletsAdapter
	}
	if check.IfNil(args.Hasher) {
		return nil, process.ErrNilHasher
	}
	if check.IfNil(args.Marshalizer) {
		return nil, process.ErrNilMarshalizer
	}

	return &txProcessor{
		wallets:     args.Wallets,
		hasher:      args.Hasher,
		marshalizer: args.Marshalizer,
	}, nil
}

// ProcessTransaction validates and applies one transaction against the
// wallets state. On any error, every save made for this transaction is
// reverted, so the caller observes zero mutation.
func (txProc *txProcessor) ProcessTransaction(tx *transaction.Transaction) error {
	if check.IfNil(tx) {
		return process.ErrNilTransaction
	}

	txHash, err := core.CalculateHash(txProc.marshalizer, txProc.hasher, tx)
	if err != nil {
		return err
	}

	snapshot := txProc.wallets.JournalLen()
	err = txProc.dispatch(tx, txHash)
	if err != nil {
		log.Debug("transaction rejected",
			"type", tx.Type.String(),
			"hash", txHash,
			"error", err,
		)

		errRevert := txProc.wallets.RevertToSnapshot(snapshot)
		if errRevert != nil {
			log.Error("cannot revert wallet state", "error", errRevert)
			return errRevert
		}
	}

	return err
}

func (txProc *txProcessor) dispatch(tx *transaction.Transaction, txHash []byte) error {
	switch tx.Type {
	case transaction.TxCreateWallet:
		return txProc.processCreateWallet(tx, txHash)
	case transaction.TxIssue:
		return txProc.processIssue(tx, txHash)
	case transaction.TxTransfer:
		return txProc.processTransfer(tx, txHash)
	case transaction.TxProposeTransfer:
		return txProc.processProposeTransfer(tx, txHash)
	case transaction.TxAcceptTransfer:
		return txProc.processAcceptTransfer(tx, txHash)
	}

	return process.ErrWrongTransaction
}

func (txProc *txProcessor) getWallet(address []byte, notFoundErr error) (*state.Wallet, error) {
	wallet, err := txProc.wallets.GetExistingWallet(address)
	if errors.Is(err, state.ErrWalletNotFound) {
		return nil, notFoundErr
	}
	if err != nil {
		return nil, err
	}

	return wallet, nil
}

func (txProc *txProcessor) processCreateWallet(tx *transaction.Transaction, txHash []byte) error {
	_, err := txProc.wallets.GetExistingWallet(tx.SndAddr)
	if err == nil {
		return process.ErrWalletAlreadyExists
	}
	if !errors.Is(err, state.ErrWalletNotFound) {
		return err
	}

	_, err = txProc.wallets.CreateWallet(tx.SndAddr, tx.Name, txHash)

	return err
}

func (txProc *txProcessor) processIssue(tx *transaction.Transaction, txHash []byte) error {
	wallet, err := txProc.getWallet(tx.SndAddr, process.ErrSenderNotFound)
	if err != nil {
		return err
	}

	err = wallet.AddToBalance(tx.Amount, txHash)
	if err != nil {
		return err
	}

	return txProc.wallets.SaveWallet(wallet)
}

func (txProc *txProcessor) processTransfer(tx *transaction.Transaction, txHash []byte) error {
	if bytes.Equal(tx.SndAddr, tx.RcvAddr) {
		return process.ErrSameSenderAndReceiver
	}

	sender, err := txProc.getWallet(tx.SndAddr, process.ErrSenderNotFound)
	if err != nil {
		return err
	}

	receiver, err := txProc.getWallet(tx.RcvAddr, process.ErrReceiverNotFound)
	if err != nil {
		return err
	}

	if tx.Amount > sender.AvailableBalance() {
		return process.ErrInsufficientFunds
	}

	err = sender.SubFromBalance(tx.Amount, txHash)
	if err != nil {
		return err
	}

	err = txProc.wallets.SaveWallet(sender)
	if err != nil {
		return err
	}

	err = receiver.AddToBalance(tx.Amount, txHash)
	if err != nil {
		return err
	}

	return txProc.wallets.SaveWallet(receiver)
}

func (txProc *txProcessor) processProposeTransfer(tx *transaction.Transaction, txHash []byte) error {
	if bytes.Equal(tx.From, tx.RcvAddr) {
		return process.ErrSameSenderAndReceiver
	}

	sender, err := txProc.getWallet(tx.From, process.ErrSenderNotFound)
	if err != nil {
		return err
	}

	_, err = txProc.getWallet(tx.RcvAddr, process.ErrReceiverNotFound)
	if err != nil {
		return err
	}

	if !tx.HasApprover(tx.SndAddr) {
		return process.ErrSenderNotFound
	}

	if tx.Amount > sender.AvailableBalance() {
		return process.ErrInsufficientFunds
	}

	err = sender.ReservePending(tx.Amount, txHash)
	if err != nil {
		return err
	}

	return txProc.wallets.SaveWallet(sender)
}

func (txProc *txProcessor) processAcceptTransfer(tx *transaction.Transaction, txHash []byte) error {
	if bytes.Equal(tx.From, tx.RcvAddr) {
		return process.ErrSameSenderAndReceiver
	}

	sender, err := txProc.getWallet(tx.From, process.ErrSenderNotFound)
	if err != nil {
		return err
	}

	receiver, err := txProc.getWallet(tx.RcvAddr, process.ErrReceiverNotFound)
	if err != nil {
		return err
	}

	if sender.GetPendingTransfer(tx.ProposalHash) == nil {
		return process.ErrSenderNotFound
	}

	if !tx.HasApprover(tx.SndAddr) {
		return process.ErrSenderNotFound
	}

	settled, err := sender.ReleasePending(tx.ProposalHash, txHash)
	if err != nil {
		return err
	}

	err = sender.SubFromBalance(settled, txHash)
	if err != nil {
		return err
	}

	err = txProc.wallets.SaveWallet(sender)
	if err != nil {
		return err
	}

	err = receiver.AddToBalance(settled, txHash)
	if err != nil {
		return err
	}

	return txProc.wallets.SaveWallet(receiver)
}

// IsInterfaceNil returns true if there is no value under the interface
func (txProc *txProcessor) IsInterfaceNil() bool {
	return txProc == nil
}
