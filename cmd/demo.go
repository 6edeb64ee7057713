package cmd

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"

	"ledgerchain/block"
	"ledgerchain/config"
	"ledgerchain/ledger"
	"ledgerchain/mempool"
	"ledgerchain/pkg/wallet"
	"ledgerchain/transaction"
)

var demoPoolConfig string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an end-to-end ledger demo",
	Long:  "Build a two-block chain: a genesis block minting the initial supply, then a signed transfer. Validates the chain and prints the resulting balances.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bc, err := newBlockchain(demoPoolConfig)
		if err != nil {
			return err
		}

		satoshi, err := wallet.NewWallet()
		if err != nil {
			return err
		}
		alice, err := wallet.NewWallet()
		if err != nil {
			return err
		}

		genesis := block.New("")
		genesis.AddTransaction(transaction.NewCreateAccount("satoshi", satoshi.PublicKey))
		genesis.AddTransaction(transaction.NewMintInitialSupply("satoshi", uint256.NewInt(100_000_000)))
		genesis.SetNonce(1)
		if err := bc.AppendBlock(genesis); err != nil {
			return err
		}

		transfer := transaction.NewTransfer("satoshi", "alice", uint256.NewInt(10))
		satoshi.SignTransaction(transfer)

		second := block.New(bc.LastBlockHash())
		second.AddTransaction(transaction.NewCreateAccount("alice", alice.PublicKey))
		second.AddTransaction(transfer)
		second.SetNonce(2)
		if err := bc.AppendBlock(second); err != nil {
			return err
		}

		if err := bc.Validate(); err != nil {
			return err
		}

		fmt.Println("Chain valid, length:", bc.Len())
		for _, id := range bc.AccountIDs() {
			account, _ := bc.GetAccount(id)
			fmt.Printf("%s (%s): %s\n", id, account.Type, account.Balance.Dec())
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoPoolConfig, "pool-config", "", "mempool .ini config file")
	rootCmd.AddCommand(demoCmd)
}

func newBlockchain(poolConfigPath string) (*ledger.Blockchain, error) {
	if poolConfigPath == "" {
		return ledger.NewBlockchain(), nil
	}
	poolCfg, err := config.LoadPoolConfig(poolConfigPath)
	if err != nil {
		return nil, err
	}
	return ledger.NewBlockchainWithPool(mempool.NewMempool(poolCfg.MaxTxs)), nil
}
