package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bcanseco/rank-generator/internal/cli"
	"github.com/bcanseco/rank-generator/internal/common"
	"github.com/bcanseco/rank-generator/internal/config"
	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/bcanseco/rank-generator/internal/samples"
	"github.com/bcanseco/rank-generator/internal/storage"
	"github.com/bcanseco/rank-generator/internal/vocabulary"
	"github.com/spf13/cobra"
)

func vocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vocab",
		Aliases: []string{"vocabulary"},
		Short:   "Manage the vocabulary library",
		Long:    `Import, list, inspect and delete vocabularies stored in the local library.`,
	}

	cmd.AddCommand(importVocabCmd())
	cmd.AddCommand(listVocabCmd())
	cmd.AddCommand(showVocabCmd())
	cmd.AddCommand(deleteVocabCmd())

	return cmd
}

func importVocabCmd() *cobra.Command {
	var (
		name        string
		description string
		replace     bool
	)

	cmd := &cobra.Command{
		Use:   "import <file|sample:name>",
		Short: "Store a vocabulary in the library",
		Long: `Read a JSON or YAML vocabulary (or a bundled sample) and store it in the
library. Stored vocabularies can then be used anywhere as db:<name>.`,
		Example: `  ranks vocab import navy.yaml
  ranks vocab import sample:politics --name senate --description "Upper house"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			src, err := config.ParseSource(args[0])
			if err != nil {
				return common.NewUserError("Invalid vocabulary reference", err)
			}
			if src.Kind == config.SourceLibrary {
				return fmt.Errorf("%s is already in the library", src)
			}

			vocab, _, err := loadVocabulary(ctx, args[0])
			if err != nil {
				return err
			}

			if name == "" {
				name = defaultVocabularyName(src)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			saved, err := store.SaveVocabulary(ctx, storage.VocabularyInfo{
				Name:        name,
				Source:      src.String(),
				Description: description,
			}, vocab, replace)
			if errors.Is(err, storage.ErrDuplicateVocabulary) {
				return common.NewUserError(fmt.Sprintf("A vocabulary named %q already exists. Use --replace to overwrite it", name), err)
			}
			if errors.Is(err, storage.ErrInvalidName) {
				return common.NewUserError(fmt.Sprintf("%q cannot be used as a library name. Pass one with --name", name), err)
			}
			if err != nil {
				return fmt.Errorf("failed to save vocabulary: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf(
				"Imported %q (%d prefixes, %d titles, %d postfixes). Use it as db:%s",
				saved.Name, saved.Prefixes, saved.Titles, saved.Postfixes, saved.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "library name (default: file name without extension)")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	cmd.Flags().BoolVar(&replace, "replace", false, "overwrite an existing vocabulary with the same name")

	return cmd
}

func listVocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored vocabularies and bundled samples",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			infos, err := store.ListVocabularies(ctx)
			if err != nil {
				return fmt.Errorf("failed to list vocabularies: %w", err)
			}

			if len(infos) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No vocabularies stored. Use 'ranks vocab import' to add one."))
			} else if err := cli.WriteVocabularyTable(out, infos); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.SubtleStyle.Render("Bundled samples: "+strings.Join(prefixed("sample:", samples.Names()), ", ")))
			return nil
		},
	}
}

func showVocabCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <vocabulary>",
		Short: "Print the words of a vocabulary",
		Long: `Print the words of a vocabulary with their tiers and restrictions. With
--format json or --format yaml the vocabulary document itself is written,
which is a convenient way to copy a stored vocabulary back out to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			vocab, src, err := loadVocabulary(ctx, args[0])
			if err != nil {
				return err
			}

			switch format {
			case "":
			case string(vocabulary.FormatJSON), string(vocabulary.FormatYAML):
				return vocabulary.Encode(out, vocab, vocabulary.Format(format))
			default:
				return fmt.Errorf("invalid format: %s (want json or yaml)", format)
			}

			fmt.Fprintln(out, cli.FormatTitle(src.String()))
			if src.Kind == config.SourceLibrary {
				if err := printLibraryDetails(cmd, src.Value); err != nil {
					return err
				}
			}

			sections := []struct {
				heading string
				words   []*model.Word
			}{
				{"Prefixes", vocab.Prefixes},
				{"Titles", vocab.Titles},
				{"Postfixes", vocab.Postfixes},
			}
			for _, section := range sections {
				if err := cli.WriteWords(out, section.heading, section.words); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "write the vocabulary document instead (json, yaml)")

	return cmd
}

func printLibraryDetails(cmd *cobra.Command, name string) error {
	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	info, err := store.GetVocabulary(ctx, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("source: %s  imported: %s",
		info.Source, info.CreatedAt.Local().Format("2006-01-02 15:04"))))
	if info.Description != "" {
		fmt.Fprintln(out, info.Description)
	}
	fmt.Fprintln(out)
	return nil
}

func deleteVocabCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a vocabulary from the library",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimPrefix(args[0], "db:")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteVocabulary(ctx, name); err != nil {
				if errors.Is(err, storage.ErrVocabularyNotFound) {
					return common.NewUserError(fmt.Sprintf("No vocabulary named %q in the library", name), err)
				}
				return fmt.Errorf("failed to delete vocabulary: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Deleted %q", name)))
			return nil
		},
	}
}

func prefixed(prefix string, values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = prefix + v
	}
	return out
}
