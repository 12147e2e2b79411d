package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"hacspec/internal/gen"
)

func genCmd() *cobra.Command {
	var manifest, out string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate named fixed-array types from a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" {
				return gen.Generate(manifest, out)
			}
			m, err := gen.LoadManifest(manifest)
			if err != nil {
				return err
			}
			src, err := gen.Render(m)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(src); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifest, "manifest", "m", "", "YAML manifest describing the arrays")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
