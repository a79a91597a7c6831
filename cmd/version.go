package cmd

import (
	"github.com/spf13/cobra"
)

const (
	VERSION string = "0.1.0"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show namesdao version",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		appUI.Info("Version: %s", VERSION)
		appUI.Info("Namesdao, the Name Service for the Chia Blockchain")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
