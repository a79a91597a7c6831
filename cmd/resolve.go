package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/namesdao/namesdao-cli/resolver"
	"github.com/namesdao/namesdao-cli/ui"
)

// resolveNames prints the address of a single name on its own line, or a
// table when several names are given. It fails on the first name that does
// not resolve.
func resolveNames(ctx context.Context, a *app, u ui.UI, names []string) error {
	if len(names) == 1 {
		res, err := a.resolver.Resolve(ctx, names[0])
		if err != nil {
			return err
		}
		reportSignature(u, res)
		u.Info("%s", res.Address)
		return nil
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		res, err := a.resolver.Resolve(ctx, name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{name, res.Address, signatureStatus(u, res)})
	}
	u.Table([]string{"Name", "Address", "Signature"}, rows)
	return nil
}

func signatureStatus(u ui.UI, res *resolver.Resolution) string {
	switch {
	case res.Signed:
		return u.Style(ui.StyledText{Text: "verified", Severity: ui.SeveritySuccess})
	case res.SignatureFetchErr != nil:
		return u.Style(ui.Warning("unavailable"))
	}
	return "unsigned"
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Show the XCH address for Namesdao names",
	Long:  ``,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()
		return resolveNames(cmd.Context(), a, appUI, args)
	},
}

func init() {
	walletCmd.AddCommand(resolveCmd)
}
