package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hacspec/pkg/seq"
)

func hexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex <hex>...",
		Short: "Validate hex strings and print them in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, s := range args {
				b, err := seq.FromHex(s)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", seq.ToHex(b), b.Len())
			}
			return nil
		},
	}
}
