package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ledgerchain/config"
	"ledgerchain/ledger"
)

var (
	genesisConfigPath string
	genesisPoolConfig string
)

var genesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Bootstrap a chain from a genesis.yml allocation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGenesisConfig(genesisConfigPath)
		if err != nil {
			return err
		}
		bc, err := newBlockchain(genesisPoolConfig)
		if err != nil {
			return err
		}

		genesis, err := ledger.GenesisBlockFromConfig(cfg)
		if err != nil {
			return err
		}
		if err := bc.AppendBlock(genesis); err != nil {
			return err
		}
		if err := bc.Validate(); err != nil {
			return err
		}

		fmt.Println("Genesis block appended, hash:", bc.LastBlockHash())
		for _, id := range bc.AccountIDs() {
			account, _ := bc.GetAccount(id)
			fmt.Printf("%s (%s): %s\n", id, account.Type, account.Balance.Dec())
		}
		return nil
	},
}

func init() {
	genesisCmd.Flags().StringVarP(&genesisConfigPath, "genesis", "g", "config/genesis.yml", "genesis.yml file")
	genesisCmd.Flags().StringVar(&genesisPoolConfig, "pool-config", "", "mempool .ini config file")
	rootCmd.AddCommand(genesisCmd)
}
