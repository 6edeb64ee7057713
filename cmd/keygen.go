package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ledgerchain/common"
	"ledgerchain/crypto"
)

var keygenOut string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an ed25519 keypair",
	Long:  "Generate an ed25519 keypair, print the base58 public key and optionally write the hex private key to a file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		pubKey, privKey, err := crypto.GenerateKeyPair()
		if err != nil {
			return err
		}
		fmt.Println("Public key:", common.EncodeBytesToBase58(pubKey))
		if keygenOut != "" {
			if err := os.WriteFile(keygenOut, []byte(hex.EncodeToString(privKey)), 0o600); err != nil {
				return err
			}
			fmt.Println("Private key written to", keygenOut)
		} else {
			fmt.Println("Private key:", hex.EncodeToString(privKey))
		}
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVarP(&keygenOut, "out", "o", "", "file to write the hex private key to")
	rootCmd.AddCommand(keygenCmd)
}
