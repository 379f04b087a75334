package state

// Storer provides the persistence abstraction needed by the wallets database
type Storer interface {
	Put(key, data []byte) error
	Get(key []byte) ([]byte, error)
	Has(key []byte) error
	RangeKeys(handler func(key []byte, val []byte) bool)
	IsInterfaceNil() bool
}

// WalletsAdapter is used for the structure that manages the wallet records
// with journaling capabilities, so that one transaction's effects can be
// reverted as a whole
type WalletsAdapter interface {
	GetExistingWallet(address []byte) (*Wallet, error)
	CreateWallet(address []byte, name string, causeHash []byte) (*Wallet, error)
	SaveWallet(wallet *Wallet) error
	JournalLen() int
	RevertToSnapshot(snapshot int) error
	Commit() ([]byte, error)
	RootHash() ([]byte, error)
	IsInterfaceNil() bool
}
