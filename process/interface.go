package process

import (
	"github.com/valence-network/ledger-go/data/transaction"
)

// TransactionProcessor is the main interface for the transaction execution engine.
// It applies one ordered, authenticated transaction against the wallets state,
// either in full or, on a typed validation error, not at all.
type TransactionProcessor interface {
	ProcessTransaction(tx *transaction.Transaction) error
	IsInterfaceNil() bool
}
