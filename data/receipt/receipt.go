package receipt

// Status is the terminal outcome of one executed transaction
type Status int32

const (
	// Executed marks a transaction whose effects were applied and committed
	Executed Status = iota
	// Rejected marks a transaction that failed a precondition and left the state untouched
	Rejected
)

// String returns the status' printable name
func (status Status) String() string {
	if status == Executed {
		return "executed"
	}

	return "rejected"
}

// Receipt is the per-transaction execution outcome reported back to the
// ordering layer. Consensus proceeds regardless of the status; only the
// ledger state differs.
type Receipt struct {
	TxHash []byte `json:"txHash"`
	Status Status `json:"status"`
	ErrMsg string `json:"error,omitempty"`
}

// IsInterfaceNil returns true if there is no value under the interface
func (receipt *Receipt) IsInterfaceNil() bool {
	return receipt == nil
}
