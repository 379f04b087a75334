package transaction

// NewCreateWallet returns a create-wallet transaction for the given display name
func NewCreateWallet(name string) *Transaction {
	return &Transaction{
		Type:    TxCreateWallet,
		Service: ServiceID,
		Name:    name,
	}
}

// NewIssue returns an issue transaction crediting the author's wallet
func NewIssue(amount uint64, seed uint64) *Transaction {
	return &Transaction{
		Type:    TxIssue,
		Service: ServiceID,
		Amount:  amount,
		Seed:    seed,
	}
}

// NewTransfer returns a transfer transaction from the author to the given receiver
func NewTransfer(to []byte, amount uint64, seed uint64) *Transaction {
	return &Transaction{
		Type:    TxTransfer,
		Service: ServiceID,
		RcvAddr: to,
		Amount:  amount,
		Seed:    seed,
	}
}

// NewProposeTransfer returns a multi-party transfer proposal. The author must
// be one of the approvers for the proposal to execute.
func NewProposeTransfer(from []byte, to []byte, approvers [][]byte, amount uint64, seed uint64) *Transaction {
	return &Transaction{
		Type:      TxProposeTransfer,
		Service:   ServiceID,
		From:      from,
		RcvAddr:   to,
		Approvers: approvers,
		Amount:    amount,
		Seed:      seed,
	}
}

// NewAcceptTransfer returns an acceptance for the proposal identified by
// proposalHash, settling its reserved amount
func NewAcceptTransfer(proposalHash []byte, from []byte, to []byte, approvers [][]byte, seed uint64) *Transaction {
	return &Transaction{
		Type:         TxAcceptTransfer,
		Service:      ServiceID,
		From:         from,
		RcvAddr:      to,
		Approvers:    approvers,
		Seed:         seed,
		ProposalHash: proposalHash,
	}
}
