package main

import (
	"fmt"

	"github.com/bcanseco/rank-generator/internal/cli"
	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/spf13/cobra"
)

func mergeCmd() *cobra.Command {
	var (
		count   int
		random  bool
		asTable bool
	)

	cmd := &cobra.Command{
		Use:   "merge <vocabulary> <vocabulary>...",
		Short: "Combine vocabularies and generate from the result",
		Long: `Build a generator for each vocabulary and merge them, in argument order, into
the first one. Word lists are appended without removing duplicates.`,
		Example: `  ranks merge sample:military sample:politics --count 20
  ranks merge navy.json army.yaml --random`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			gen, err := mergedGenerator(cmd.Context(), args)
			if err != nil {
				return err
			}

			var ranks model.Ranks
			if random {
				if ranks, err = randomRanks(gen, count); err != nil {
					return err
				}
			} else {
				ranks = nextRanks(gen, count, postfixEnabled(cmd))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Merged %d vocabularies: %d prefixes, %d titles, %d postfixes",
				len(args), len(gen.Prefixes()), len(gen.Titles()), len(gen.Postfixes()))))

			if asTable {
				return cli.WriteRankTable(out, ranks)
			}
			return cli.WriteRanks(out, ranks)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of ranks to generate")
	cmd.Flags().BoolVar(&random, "random", false, "generate random ranks instead of walking in order")
	cmd.Flags().Bool("postfix", false, "attach a random eligible postfix to each ordered rank")
	cmd.Flags().BoolVar(&asTable, "table", false, "show tier and format columns")

	return cmd
}
