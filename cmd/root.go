// Copyright © 2022 Namesdao
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/namesdao/namesdao-cli/config"
	"github.com/namesdao/namesdao-cli/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "namesdao",
	Short: "Send XCH to Namesdao names",
	Long: fmt.Sprintf(`namesdao resolves Namesdao names such as hello.xch to Chia addresses and
sends XCH to them through your local chia wallet.

Names are looked up in the Namesdao lookup cache, tried in this order:
	%s

When a lookup record is signed, the signature is checked against the
Namesdao public key and an invalid signature aborts the command. The
transaction itself is sent by running "chia wallet send", so a synced
chia wallet has to be available on this machine.

Settings can be kept in %s (or the file named by $%s).
Run "namesdao write-config" to create one with the defaults.`,
		strings.Join(config.DefaultEndpoints, "\n\t"),
		"~/.namesdao/config.yaml",
		config.EnvConfigPath,
	),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&config.ConfigPath, "config", "", "config file (default $NAMESDAO_CONFIG or ~/.namesdao/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "", "diagnostic log level written to stderr: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&config.MetricsFile, "metrics-file", "", "write prometheus metrics of this run to the given file")
	rootCmd.PersistentFlags().StringSliceVar(&config.Endpoints, "endpoint", nil, "lookup endpoint to use instead of the configured ones, can be repeated")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		appUI.Error("%s", describe(err))
		os.Exit(1)
	}
}
