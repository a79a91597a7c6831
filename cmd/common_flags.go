package cmd

import (
	"github.com/spf13/cobra"

	"github.com/namesdao/namesdao-cli/config"
	"github.com/namesdao/namesdao-cli/intent"
)

// AddCommonFlagsToSendCmds registers the flags shared by every command that
// ends in a chia wallet send.
func AddCommonFlagsToSendCmds(c *cobra.Command) {
	c.Flags().StringVarP(&config.Amount, "amount", "a", "", "How much chia to send, in XCH (default 0.000000000001)")
	c.Flags().BoolVarP(&config.Cloak, "cloak", "k", false, "Encrypt the memo to the Namesdao key")
	c.Flags().StringVarP(&config.Fee, "fee", "m", "", "Set the fees for the transaction, in XCH")
	c.Flags().StringVarP(&config.FeeMojos, "Fee", "M", "", "Set the fees for the transaction, in mojos [takes precedence over --fee]")
	c.Flags().BoolVarP(&config.Yes, "yes", "y", false, "Execute without asking for confirmation")
}

// sendRequest collects the common flags of c into a request to name.
func sendRequest(c *cobra.Command, name, address, memo string) intent.Request {
	return intent.Request{
		Name:     name,
		Address:  address,
		Amount:   optional(c, "amount", config.Amount),
		FeeXCH:   optional(c, "fee", config.Fee),
		FeeMojos: optional(c, "Fee", config.FeeMojos),
		Memo:     memo,
		Cloak:    config.Cloak,
	}
}
