package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"ledgerchain/logx"
)

var rootCmd = &cobra.Command{
	Use:   "ledgerchain",
	Short: "Single-node ledger engine CLI",
	Long:  "Command line interface for the in-memory single-node ledger engine.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
