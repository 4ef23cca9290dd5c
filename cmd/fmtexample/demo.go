package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/fmtexample/internal/demo"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the formatting demonstration",
		Long: `Print the formatting demonstration. If the configured data file exists
its statistics are computed and echoed first.`,
		Example: `  fmtexample demo
  fmtexample demo --data measurements.tsv --verbose`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}

	cmd.Flags().String("data", demo.DefaultDataPath, "Tab-separated data file")
	cmd.Flags().Bool("verbose", true, "Echo computed statistics")

	return cmd
}

func runDemo(cmd *cobra.Command) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := demo.Options{
		DataPath: viper.GetString("data_path"),
		Verbose:  true,
		Logger:   logger,
	}
	if f := cmd.Flags().Lookup("data"); f != nil && f.Changed {
		opts.DataPath = f.Value.String()
	}
	if v, err := cmd.Flags().GetBool("verbose"); err == nil {
		opts.Verbose = v
	}

	return demo.Run(cmd.OutOrStdout(), opts)
}
