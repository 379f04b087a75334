package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"sort"

	"github.com/multiversx/mx-chain-core-go/hashing/blake2b"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-storage-go/lrucache"
	"github.com/multiversx/mx-chain-storage-go/memorydb"
	"github.com/multiversx/mx-chain-storage-go/storageUnit"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/valence-network/ledger-go/config"
	"github.com/valence-network/ledger-go/data/transaction"
	"github.com/valence-network/ledger-go/node"
	"github.com/valence-network/ledger-go/process"
	txProcess "github.com/valence-network/ledger-go/process/transaction"
	"github.com/valence-network/ledger-go/state"
)

var (
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "Path of the toml configuration file holding the genesis wallets",
		Value: "./config.toml",
	}
	transactionsFile = cli.StringFlag{
		Name:  "transactions",
		Usage: "Path of the json file holding the ordered transaction batch to replay",
		Value: "./transactions.json",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level patterns, e.g. *:DEBUG",
		Value: "*:INFO",
	}
)

var log = logger.GetOrCreate("cmd/ledger")

func main() {
	app := cli.NewApp()
	app.Name = "Ledger replay tool"
	app.Usage = "Replays an ordered transaction batch over a genesis wallet state and prints the outcome"
	app.Flags = []cli.Flag{configFile, transactionsFile, logLevel}
	app.Action = replayBatch

	err := app.Run(os.Args)
	if err != nil {
		log.Error("replay failed", "error", err)
		os.Exit(1)
	}
}

func replayBatch(ctx *cli.Context) error {
	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(ctx.GlobalString(configFile.Name))
	if err != nil {
		return err
	}

	marshalizer := &marshal.JsonMarshalizer{}
	txs, err := loadTransactions(ctx.GlobalString(transactionsFile.Name), marshalizer)
	if err != nil {
		return err
	}

	ledgerNode, err := createNode(cfg, marshalizer)
	if err != nil {
		return err
	}

	rootHash, err := ledgerNode.ApplyGenesis(cfg.Genesis)
	if err != nil {
		return err
	}
	log.Info("genesis applied", "chainID", cfg.ChainID, "rootHash", rootHash)

	receipts, err := ledgerNode.Execute(txs)
	if err != nil {
		return err
	}

	for index, rcpt := range receipts {
		log.Info("transaction result",
			"index", index,
			"hash", rcpt.TxHash,
			"status", rcpt.Status.String(),
			"error", rcpt.ErrMsg,
		)
	}

	printWallets(ledgerNode, cfg, txs)

	return nil
}

func createNode(cfg *config.Config, marshalizer marshal.Marshalizer) (*node.Node, error) {
	cache, err := lrucache.NewCache(int(cfg.Cache.Capacity))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create wallets cache")
	}

	storer, err := storageUnit.NewStorageUnit(cache, memorydb.New())
	if err != nil {
		return nil, errors.Wrap(err, "cannot create wallets storage unit")
	}

	hasher := blake2b.NewBlake2b()
	wallets, err := state.NewWalletsDB(state.ArgsNewWalletsDB{
		Storer:      storer,
		Hasher:      hasher,
		Marshalizer: marshalizer,
	})
	if err != nil {
		return nil, err
	}

	var processor process.TransactionProcessor
	processor, err = txProcess.NewTxProcessor(txProcess.ArgsNewTxProcessor{
		Wallets:     wallets,
		Hasher:      hasher,
		Marshalizer: marshalizer,
	})
	if err != nil {
		return nil, err
	}

	return node.NewNode(node.ArgsNewNode{
		Wallets:     wallets,
		Processor:   processor,
		Hasher:      hasher,
		Marshalizer: marshalizer,
	})
}

func loadTransactions(filePath string, marshalizer marshal.Marshalizer) ([]*transaction.Transaction, error) {
	buff, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read transactions file")
	}

	txs := make([]*transaction.Transaction, 0)
	err = marshalizer.Unmarshal(&txs, buff)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode transactions file")
	}

	return txs, nil
}

func printWallets(ledgerNode *node.Node, cfg *config.Config, txs []*transaction.Transaction) {
	addresses := make(map[string]struct{})
	for _, genesisWallet := range cfg.Genesis {
		address, err := hex.DecodeString(genesisWallet.AddressHex)
		if err != nil {
			continue
		}
		addresses[string(address)] = struct{}{}
	}
	for _, tx := range txs {
		addresses[string(tx.SndAddr)] = struct{}{}
	}

	sortedAddresses := make([]string, 0, len(addresses))
	for address := range addresses {
		sortedAddresses = append(sortedAddresses, address)
	}
	sort.Strings(sortedAddresses)

	for _, address := range sortedAddresses {
		wallet, err := ledgerNode.GetWallet([]byte(address))
		if err != nil {
			continue
		}

		fmt.Printf("%s (%s): balance=%d pending=%d proposals=%d history=%d\n",
			wallet.Name,
			hex.EncodeToString(wallet.Address),
			wallet.Balance,
			wallet.PendingBalance,
			len(wallet.PendingTransfers),
			wallet.HistoryLength,
		)
	}
}
