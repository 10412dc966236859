package main

import (
	"fmt"

	"github.com/bcanseco/rank-generator/internal/cli"
	"github.com/bcanseco/rank-generator/internal/generator"
	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/spf13/cobra"
)

func randomCmd() *cobra.Command {
	var (
		count   int
		asTable bool
	)

	cmd := &cobra.Command{
		Use:   "random <vocabulary>",
		Short: "Generate random ranks",
		Long: `Pick a random title and randomly decide whether to add a prefix, a postfix,
both or neither. Random ranks may repeat and are never exhausted.`,
		Example: `  ranks random sample:fable --count 3
  ranks random navy.yaml --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			gen, err := newGenerator(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			ranks, err := randomRanks(gen, count)
			if err != nil {
				return err
			}

			if asTable {
				return cli.WriteRankTable(cmd.OutOrStdout(), ranks)
			}
			return cli.WriteRanks(cmd.OutOrStdout(), ranks)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of ranks to generate")
	cmd.Flags().BoolVar(&asTable, "table", false, "show tier and format columns")

	return cmd
}

func randomRanks(gen *generator.RankGenerator, count int) (model.Ranks, error) {
	ranks := make(model.Ranks, 0, count)
	for range count {
		r, err := gen.RandomRank()
		if err != nil {
			return nil, fmt.Errorf("failed to generate random rank: %w", err)
		}
		ranks = append(ranks, r)
	}
	return ranks, nil
}
