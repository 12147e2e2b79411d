package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"hacspec/pkg/entropy"
	"hacspec/pkg/seq"
)

func randomCmd() *cobra.Command {
	var (
		n     int
		seed  string
		label string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print random bytes as hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("byte count must not be negative, got %d", n)
			}
			if seed == "" && cmd.Flags().Changed("label") {
				return errors.New("--label requires --seed")
			}

			var src io.Reader = entropy.System()
			if seed != "" {
				r, err := entropy.Deterministic([]byte(seed), label)
				if err != nil {
					return err
				}
				src = r
				slog.Debug("using deterministic source", "label", label)
			}

			b, err := seq.Random(src, n)
			if err != nil {
				return fmt.Errorf("read random bytes: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), seq.ToHex(b))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "bytes", "n", 32, "number of bytes")
	cmd.Flags().StringVar(&seed, "seed", "", "seed for a reproducible stream (testing only)")
	cmd.Flags().StringVar(&label, "label", "", "stream label used with --seed")
	return cmd
}
