package node

import (
	"encoding/hex"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"

	"github.com/valence-network/ledger-go/config"
	"github.com/valence-network/ledger-go/data/receipt"
	"github.com/valence-network/ledger-go/data/transaction"
	"github.com/valence-network/ledger-go/process"
	"github.com/valence-network/ledger-go/state"
)

var log = logger.GetOrCreate("node")

const genesisCause = "genesis"

// Node drives the ledger core the way the replication layer would: it feeds
// ordered transactions to the processor one at a time, commits the wallet
// state after each executed transaction and collects a receipt per
// transaction, executed or rejected.
type Node struct {
	wallets     state.WalletsAdapter
	processor   process.TransactionProcessor
	hasher      hashing.Hasher
	marshalizer marshal.Marshalizer
}

// ArgsNewNode defines the arguments needed for a new node
type ArgsNewNode struct {
	Wallets     state.WalletsAdapter
	Processor   process.TransactionProcessor
	Hasher      hashing.Hasher
	Marshalizer marshal.Marshalizer
}

// NewNode creates a new node instance
func NewNode(args ArgsNewNode) (*Node, error) {
	if check.IfNil(args.Wallets) {
		return nil, ErrNilWalletsAdapter
	}
	if check.IfNil(args.Processor) {
		return nil, ErrNilTransactionProcessor
	}
	if check.IfNil(args.Hasher) {
		return nil, ErrNilHasher
	}
	if check.IfNil(args.Marshalizer) {
		return nil, ErrNilMarshalizer
	}

	return &Node{
		wallets:     args.Wallets,
		processor:   args.Processor,
		hasher:      args.Hasher,
		marshalizer: args.Marshalizer,
	}, nil
}

// ApplyGenesis creates and funds the configured genesis wallets, committing
// the resulting state. It returns the genesis root hash.
func (n *Node) ApplyGenesis(genesisWallets []config.GenesisWallet) ([]byte, error) {
	causeHash := n.hasher.Compute(genesisCause)

	for _, genesisWallet := range genesisWallets {
		address, err := hex.DecodeString(genesisWallet.AddressHex)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidGenesisAddress, "%s", genesisWallet.AddressHex)
		}

		wallet, err := n.wallets.CreateWallet(address, genesisWallet.Name, causeHash)
		if err != nil {
			return nil, err
		}

		if genesisWallet.Balance == 0 {
			continue
		}

		err = wallet.AddToBalance(genesisWallet.Balance, causeHash)
		if err != nil {
			return nil, err
		}

		err = n.wallets.SaveWallet(wallet)
		if err != nil {
			return nil, err
		}
	}

	rootHash, err := n.wallets.Commit()
	if err != nil {
		return nil, err
	}

	log.Debug("genesis state applied", "wallets", len(genesisWallets), "rootHash", rootHash)

	return rootHash, nil
}

// Execute runs an ordered transaction batch, one transaction at a time.
// Executed transactions are committed individually; rejected ones leave the
// state untouched and surface their error in the receipt.
func (n *Node) Execute(txs []*transaction.Transaction) ([]*receipt.Receipt, error) {
	receipts := make([]*receipt.Receipt, 0, len(txs))

	for _, tx := range txs {
		txHash, err := core.CalculateHash(n.marshalizer, n.hasher, tx)
		if err != nil {
			return nil, err
		}

		errProcess := n.processor.ProcessTransaction(tx)
		if errProcess != nil {
			receipts = append(receipts, &receipt.Receipt{
				TxHash: txHash,
				Status: receipt.Rejected,
				ErrMsg: errProcess.Error(),
			})
			continue
		}

		_, err = n.wallets.Commit()
		if err != nil {
			return nil, err
		}

		receipts = append(receipts, &receipt.Receipt{
			TxHash: txHash,
			Status: receipt.Executed,
		})
	}

	return receipts, nil
}

// GetWallet returns the current committed record for the given address
func (n *Node) GetWallet(address []byte) (*state.Wallet, error) {
	return n.wallets.GetExistingWallet(address)
}

// IsInterfaceNil returns true if there is no value under the interface
func (n *Node) IsInterfaceNil() bool {
	return n == nil
}
