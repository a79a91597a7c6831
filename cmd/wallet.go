package cmd

import (
	"github.com/spf13/cobra"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Send XCH to Namesdao names and look names up",
	Long:  ``,
}

func init() {
	rootCmd.AddCommand(walletCmd)
}
