package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/namesdao/namesdao-cli/config"
	"github.com/namesdao/namesdao-cli/intent"
	"github.com/namesdao/namesdao-cli/ui"
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Register Namesdao names",
	Long:  ``,
}

// RegistrationMemo is the memo a registration payment carries.
func RegistrationMemo(name, owner string) string {
	return fmt.Sprintf("%s:%s", name, owner)
}

// runRegister pays the registration address configured in a with the
// registration memo. owner is written into the memo as given.
func runRegister(ctx context.Context, a *app, u ui.UI, req intent.Request, name, owner string) (intent.Outcome, error) {
	req.Name = config.RegistrationName
	req.Address = a.file.RecipientAddress
	req.Memo = RegistrationMemo(name, owner)
	return a.builder(u, config.Yes).Submit(ctx, req)
}

func init() {
	registerCmd := &cobra.Command{
		Use:   "register <name> <address|name>",
		Short: "Register a Namesdao name for an XCH address",
		Long: `Register a Namesdao name by paying the Namesdao registration address with a
memo of the form <name>:<address>. With --cloak the memo is encrypted to the
Namesdao key so the pair is not visible on chain.

Examples:
	namesdao name register ___nameToRegister.xch xchaddresstoregister -a 0.000000000001 -m 0.0000000001
	namesdao name register ___nameToRegister.xch xchaddresstoregister --cloak -a 0.000000000001 -m 0.0000000001`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			req := sendRequest(cmd, "", "", "")
			_, err = runRegister(cmd.Context(), a, appUI, req, args[0], args[1])
			return err
		},
	}
	AddCommonFlagsToSendCmds(registerCmd)
	nameCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(nameCmd)
}
