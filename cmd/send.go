package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/namesdao/namesdao-cli/config"
	"github.com/namesdao/namesdao-cli/intent"
	"github.com/namesdao/namesdao-cli/ui"
)

// runSend resolves the destination when needed and submits req to it.
func runSend(ctx context.Context, a *app, u ui.UI, target string, req intent.Request) (intent.Outcome, error) {
	address, err := a.destination(ctx, u, target)
	if err != nil {
		return intent.OutcomeDeclined, err
	}
	req.Address = address
	return a.builder(u, config.Yes).Submit(ctx, req)
}

func init() {
	sendCmd := &cobra.Command{
		Use:   "send <name|address>",
		Short: "Send XCH to the address a Namesdao name maps to",
		Long: `Send XCH to the address that corresponds to a Namesdao name, such as
hello.xch, or directly to an XCH address.

Examples:
	namesdao wallet send hellobilly.xch -a 0.000000000001 -m 0.000000000002
	namesdao wallet send hellobilly.xch -a 1 -M 5000 -e "thank you"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			req := sendRequest(cmd, args[0], "", config.Memo)
			_, err = runSend(cmd.Context(), a, appUI, args[0], req)
			return err
		},
	}
	AddCommonFlagsToSendCmds(sendCmd)
	sendCmd.Flags().StringVarP(&config.Memo, "memo", "e", "", "Additional memo for the transaction")
	walletCmd.AddCommand(sendCmd)
}
