package cmd

import (
	"crypto/ed25519"
	"fmt"

	"github.com/spf13/cobra"

	"ledgerchain/common"
	"ledgerchain/config"
	"ledgerchain/crypto"
)

var signDemoKeyPath string

var signDemoCmd = &cobra.Command{
	Use:   "sign-demo",
	Short: "Exercise the signing primitive",
	Long:  "Generate (or load) a keypair, sign a fixed message and check that verification succeeds for it and fails for a different message.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var privKey ed25519.PrivateKey
		var err error
		if signDemoKeyPath != "" {
			privKey, err = config.LoadEd25519PrivKey(signDemoKeyPath)
		} else {
			_, privKey, err = crypto.GenerateKeyPair()
		}
		if err != nil {
			return err
		}
		pubKey := privKey.Public().(ed25519.PublicKey)

		message := []byte("hello world")
		signature := crypto.Sign(privKey, message)

		fmt.Println("Public key:", common.EncodeBytesToBase58(pubKey))
		fmt.Println("Signature:", common.EncodeBytesToBase58(signature))

		if !crypto.Verify(pubKey, message, signature) {
			return fmt.Errorf("verification of the signed message failed")
		}
		if crypto.Verify(pubKey, []byte("another message"), signature) {
			return fmt.Errorf("verification unexpectedly passed for a different message")
		}
		fmt.Println("Verification OK: valid for the signed message, rejected for a different one")
		return nil
	},
}

func init() {
	signDemoCmd.Flags().StringVarP(&signDemoKeyPath, "key", "k", "", "hex private key file (generated if omitted)")
	rootCmd.AddCommand(signDemoCmd)
}
