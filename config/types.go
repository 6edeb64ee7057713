package config

// GenesisAccount is one initial allocation: an account to create in the
// genesis block and the supply minted to it.
type GenesisAccount struct {
	ID     string `yaml:"id"`
	PubKey string `yaml:"pubkey"`
	Amount uint64 `yaml:"amount"`
}

// GenesisConfig holds the configuration from genesis.yml
type GenesisConfig struct {
	Nonce    uint64           `yaml:"nonce"`
	Accounts []GenesisAccount `yaml:"accounts"`
}

// ConfigFile is the top-level structure for genesis.yml
type ConfigFile struct {
	Config GenesisConfig `yaml:"config"`
}
