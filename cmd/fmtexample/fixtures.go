package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/fmtexample/internal/fixtures"
)

func newFixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Print the fixture values",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "sum: %d\n", fixtures.SumAll(1, 2, []int{3, 4, 5}))
			fmt.Fprintf(w, "combine: %d\n", fixtures.Combine(1, 2, 3, 4, 5, 6))
			fmt.Fprintf(w, "message: %s\n", fixtures.DocstringMessage())
			fmt.Fprintf(w, "list: %v\n", fixtures.NumberList())
			fmt.Fprintf(w, "dict: %v\n", fixtures.KeyValues())
			fmt.Fprintf(w, "long line: %s\n", fixtures.LongLine)
			fixtures.WarnMissingDoc(cmd.ErrOrStderr())
			return nil
		},
	}
}
