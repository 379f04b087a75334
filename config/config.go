package config

// CacheConfig holds the configurable elements of the wallets storage cache
type CacheConfig struct {
	Capacity uint32 `validate:"min=1"`
}

// GenesisWallet describes one wallet created and funded at genesis
type GenesisWallet struct {
	AddressHex string `validate:"required"`
	Name       string `validate:"required"`
	Balance    uint64
}

// Config holds the full ledger configuration
type Config struct {
	ChainID string `validate:"required"`
	Cache   CacheConfig
	Genesis []GenesisWallet `validate:"dive"`
}
