package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bcanseco/rank-generator/internal/cli"
	"github.com/bcanseco/rank-generator/internal/common"
	"github.com/bcanseco/rank-generator/internal/generator"
	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// rankRecord is the structured export form of a rank.
type rankRecord struct {
	Rank    string `json:"rank" yaml:"rank"`
	Prefix  string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Title   string `json:"title" yaml:"title"`
	Postfix string `json:"postfix,omitempty" yaml:"postfix,omitempty"`
	Format  string `json:"format" yaml:"format"`
	Tier    int    `json:"tier" yaml:"tier"`
}

func exportCmd() *cobra.Command {
	var (
		output string
		format string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "export <vocabulary>",
		Short: "Write the full ordered sequence of ranks",
		Long: `Generate ranks in order until the vocabulary is exhausted and write them as
plain text (one per line), JSON or YAML.`,
		Example: `  ranks export sample:military -o military.txt
  ranks export db:navy --format json -o navy.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" && format != "yaml" {
				return fmt.Errorf("invalid format: %s (want text, json or yaml)", format)
			}

			ctx := cmd.Context()
			gen, err := newGenerator(ctx, args[0])
			if err != nil {
				return err
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx = handler.HandleInterrupts(ctx, "Nothing was written.")

			var progress io.Writer = cmd.ErrOrStderr()
			if quiet {
				progress = io.Discard
			}
			bar := cli.NewProgressBar(progress, max(estimateSequence(gen), 1), "Generating ranks...")

			postfix := postfixEnabled(cmd)
			var ranks model.Ranks
			for {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("export canceled: %w", err)
				}
				r, ok := gen.NextRank(postfix)
				if !ok {
					break
				}
				ranks = append(ranks, r)
				if err := bar.Add(1); err != nil {
					slog.Debug("progress bar update failed", "error", err)
				}
			}
			_ = bar.Finish()

			if err := writeExport(cmd, output, format, ranks); err != nil {
				return err
			}

			common.LogInfo("Exported ranks", common.Fields{"count": len(ranks), "format": format, "output": output})
			if output != "" && output != "-" {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Wrote %d ranks to %s", len(ranks), output)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml)")
	cmd.Flags().Bool("postfix", false, "attach a random eligible postfix to each rank")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")

	return cmd
}

func writeExport(cmd *cobra.Command, output, format string, ranks model.Ranks) error {
	w := cmd.OutOrStdout()
	if output != "" && output != "-" {
		file, err := os.Create(output) // #nosec G304 -- output path is chosen by the user
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		w = file
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(ranks))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toRecords(ranks)); err != nil {
			return fmt.Errorf("failed to encode ranks: %w", err)
		}
		return enc.Close()
	default:
		for _, r := range ranks {
			if _, err := fmt.Fprintln(w, r.String()); err != nil {
				return err
			}
		}
		return nil
	}
}

func toRecords(ranks model.Ranks) []rankRecord {
	records := make([]rankRecord, 0, len(ranks))
	for _, r := range ranks {
		rec := rankRecord{
			Rank:   r.String(),
			Title:  r.Title().Phrase,
			Format: r.Format().String(),
			Tier:   r.Tier(),
		}
		if r.Prefix() != nil {
			rec.Prefix = r.Prefix().Phrase
		}
		if r.Postfix() != nil {
			rec.Postfix = r.Postfix().Phrase
		}
		records = append(records, rec)
	}
	return records
}

// estimateSequence counts, per distinct title, the bare title plus every
// distinct eligible prefix with a non-zero tier. It sizes the progress bar.
func estimateSequence(gen *generator.RankGenerator) int {
	prefixes := gen.Prefixes()
	seenTitles := make(map[string]bool)
	total := 0

	for _, title := range gen.Titles() {
		if seenTitles[title.Phrase] {
			continue
		}
		seenTitles[title.Phrase] = true
		total++

		seenPrefixes := make(map[string]bool)
		for _, prefix := range generator.EligibleAffixes(title, prefixes) {
			if prefix.Tier != 0 && !seenPrefixes[prefix.Phrase] {
				seenPrefixes[prefix.Phrase] = true
				total++
			}
		}
	}
	return total
}
