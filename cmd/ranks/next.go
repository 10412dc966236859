package main

import (
	"errors"
	"fmt"

	"github.com/bcanseco/rank-generator/internal/cli"
	"github.com/bcanseco/rank-generator/internal/generator"
	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/spf13/cobra"
)

func nextCmd() *cobra.Command {
	var (
		count   int
		all     bool
		step    bool
		asTable bool
	)

	cmd := &cobra.Command{
		Use:   "next <vocabulary>",
		Short: "Generate ranks in order, lowest tier first",
		Long: `Walk the vocabulary from the lowest-tier rank upwards. Every rank is produced
at most once; generation stops when the vocabulary is exhausted.

Use --step to reveal one rank per Enter key press.`,
		Example: `  ranks next sample:military --count 5
  ranks next navy.json --all --postfix
  ranks next db:navy --step`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 && !all {
				return fmt.Errorf("--count must be at least 1")
			}

			ctx := cmd.Context()
			gen, err := newGenerator(ctx, args[0])
			if err != nil {
				return err
			}

			postfix := postfixEnabled(cmd)
			out := cmd.OutOrStdout()

			if step {
				handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
				ctx = handler.HandleInterrupts(ctx, "")
				reader := cli.NewNonBlockingReader(cmd.InOrStdin())

				shown, err := cli.Step(ctx, reader, out, func() (string, bool) {
					r, ok := gen.NextRank(postfix)
					if !ok {
						return "", false
					}
					return cli.RenderRank(r), true
				})
				if err != nil && !errors.Is(err, cli.ErrInputCancelled) {
					return err
				}
				fmt.Fprintln(out)
				reportSequence(cmd, gen, shown)
				return nil
			}

			limit := count
			if all {
				limit = -1
			}
			ranks := nextRanks(gen, limit, postfix)

			if asTable {
				if err := cli.WriteRankTable(out, ranks); err != nil {
					return err
				}
			} else if err := cli.WriteRanks(out, ranks); err != nil {
				return err
			}

			reportSequence(cmd, gen, len(ranks))
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of ranks to generate")
	cmd.Flags().BoolVar(&all, "all", false, "generate until the vocabulary is exhausted")
	cmd.Flags().Bool("postfix", false, "attach a random eligible postfix to each rank")
	cmd.Flags().BoolVar(&step, "step", false, "show one rank per Enter key press")
	cmd.Flags().BoolVar(&asTable, "table", false, "show tier and format columns")

	return cmd
}

// nextRanks collects up to limit ranks; a negative limit means until
// exhaustion.
func nextRanks(gen *generator.RankGenerator, limit int, postfix bool) model.Ranks {
	var ranks model.Ranks
	for limit < 0 || len(ranks) < limit {
		r, ok := gen.NextRank(postfix)
		if !ok {
			break
		}
		ranks = append(ranks, r)
	}
	return ranks
}

func reportSequence(cmd *cobra.Command, gen *generator.RankGenerator, generated int) {
	if gen.IsExhausted() {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatInfo(fmt.Sprintf("Vocabulary exhausted after %d ranks.", generated)))
	}
}
