package testscommon

import (
	"github.com/valence-network/ledger-go/data/transaction"
)

// TxProcessorStub -
type TxProcessorStub struct {
	ProcessTransactionCalled func(tx *transaction.Transaction) error
}

// ProcessTransaction -
func (stub *TxProcessorStub) ProcessTransaction(tx *transaction.Transaction) error {
	if stub.ProcessTransactionCalled != nil {
		return stub.ProcessTransactionCalled(tx)
	}

	return nil
}

// IsInterfaceNil -
func (stub *TxProcessorStub) IsInterfaceNil() bool {
	return stub == nil
}
