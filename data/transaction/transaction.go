package transaction

import (
	"bytes"
)

// ServiceID namespaces this family of transaction kinds for outer routing
// layers; execution never reads it
const ServiceID uint16 = 128

// TxType identifies one of the transaction kinds understood by the ledger
type TxType int32

const (
	// TxCreateWallet registers a new wallet for the author identity
	TxCreateWallet TxType = iota
	// TxIssue credits the author's wallet with newly issued currency
	TxIssue
	// TxTransfer moves an amount from the author's wallet to a receiver
	TxTransfer
	// TxProposeTransfer opens a multi-party transfer proposal, earmarking sender funds
	TxProposeTransfer
	// TxAcceptTransfer approves an outstanding proposal and settles the reserved amount
	TxAcceptTransfer
)

// String returns the transaction type's printable name
func (txType TxType) String() string {
	switch txType {
	case TxCreateWallet:
		return "createWallet"
	case TxIssue:
		return "issue"
	case TxTransfer:
		return "transfer"
	case TxProposeTransfer:
		return "proposeTransfer"
	case TxAcceptTransfer:
		return "acceptTransfer"
	}

	return "unknown"
}

// Transaction holds one author-attributed ledger transaction. SndAddr is the
// authenticated author identity; which of the remaining fields are read
// depends on the Type. Seed only makes otherwise-identical transactions
// distinct at the hashing layer.
type Transaction struct {
	Type         TxType   `json:"type"`
	Service      uint16   `json:"service"`
	SndAddr      []byte   `json:"sender"`
	RcvAddr      []byte   `json:"receiver,omitempty"`
	From         []byte   `json:"from,omitempty"`
	Approvers    [][]byte `json:"approvers,omitempty"`
	Amount       uint64   `json:"amount,omitempty"`
	Seed         uint64   `json:"seed,omitempty"`
	Name         string   `json:"name,omitempty"`
	ProposalHash []byte   `json:"proposalHash,omitempty"`
	Signature    []byte   `json:"signature,omitempty"`
}

// HasApprover returns true if the given address is a member of the
// transaction's approvers list. The scan is in list order.
func (tx *Transaction) HasApprover(address []byte) bool {
	for _, approver := range tx.Approvers {
		if bytes.Equal(approver, address) {
			return true
		}
	}

	return false
}

// IsInterfaceNil returns true if there is no value under the interface
func (tx *Transaction) IsInterfaceNil() bool {
	return tx == nil
}
