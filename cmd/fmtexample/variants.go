package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/fmtexample/internal/output"
	"github.com/inodb/fmtexample/internal/variants"
)

func newVariantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants <vcf-file>",
		Short: "Run variant processing on a VCF file",
		Long: `Run variant processing on a VCF file and print the result as YAML.

Quality filtering is not implemented; the variants list is always empty.`,
		Example: `  fmtexample variants input.vcf
  fmtexample variants --min-quality 30 input.vcf`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := variants.Process(args[0], viper.GetInt("min_quality"))
			if err != nil {
				return err
			}
			return output.WriteVariantResult(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().Int("min-quality", variants.DefaultMinQuality, "Minimum quality score for filtering")
	viper.BindPFlag("min_quality", cmd.Flags().Lookup("min-quality"))

	return cmd
}
