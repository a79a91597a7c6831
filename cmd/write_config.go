package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/namesdao/namesdao-cli/config"
)

var writeConfigCmd = &cobra.Command{
	Use:   "write-config",
	Short: "Write the default settings to the config file",
	Long: `Write the default settings to ~/.namesdao/config.yaml, or to the file given
with --config or $NAMESDAO_CONFIG, so they can be edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeConfig(configPath(), config.Force)
	},
}

func writeConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		if !appUI.Confirm(path+" already exists. Overwrite it?", false) {
			appUI.Info("Left %s unchanged.", path)
			return nil
		}
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := config.Default().Write(path); err != nil {
		return err
	}
	appUI.Success("Wrote default settings to %s", path)
	return nil
}

func init() {
	writeConfigCmd.Flags().BoolVarP(&config.Force, "force", "f", false, "overwrite an existing file without asking")
	rootCmd.AddCommand(writeConfigCmd)
}
