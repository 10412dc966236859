package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bcanseco/rank-generator/internal/common"
	"github.com/bcanseco/rank-generator/internal/config"
	"github.com/bcanseco/rank-generator/internal/generator"
	"github.com/bcanseco/rank-generator/internal/samples"
	"github.com/bcanseco/rank-generator/internal/storage"
	"github.com/bcanseco/rank-generator/internal/vocabulary"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initStorage opens the vocabulary library with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	return storage.Open(ctx, config.DatabasePath(viper.GetString("database.path")))
}

// generatorOptions reads generator settings from configuration.
func generatorOptions() []generator.Option {
	if seed := viper.GetUint64("generator.seed"); seed != 0 {
		return []generator.Option{generator.WithSeed(seed)}
	}
	return nil
}

// postfixEnabled honors --postfix when given and generator.postfix otherwise.
func postfixEnabled(cmd *cobra.Command) bool {
	if flag := cmd.Flags().Lookup("postfix"); flag != nil && flag.Changed {
		enabled, _ := cmd.Flags().GetBool("postfix")
		return enabled
	}
	return viper.GetBool("generator.postfix")
}

// loadVocabulary resolves a file path, sample:<name> or db:<name> reference.
func loadVocabulary(ctx context.Context, ref string) (*vocabulary.Vocabulary, config.Source, error) {
	src, err := config.ParseSource(ref)
	if err != nil {
		return nil, src, common.NewUserError("Invalid vocabulary reference", err)
	}

	var vocab *vocabulary.Vocabulary
	switch src.Kind {
	case config.SourceSample:
		vocab, err = samples.Load(src.Value)
	case config.SourceLibrary:
		vocab, err = loadFromLibrary(ctx, src.Value)
	default:
		vocab, err = vocabulary.Load(src.Value)
	}
	if err != nil {
		return nil, src, describeLoadError(src, err)
	}

	common.LogDebug("Resolved vocabulary", common.Fields{
		"source":    src.String(),
		"prefixes":  len(vocab.Prefixes),
		"titles":    len(vocab.Titles),
		"postfixes": len(vocab.Postfixes),
	})
	return vocab, src, nil
}

func loadFromLibrary(ctx context.Context, name string) (*vocabulary.Vocabulary, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.LoadVocabulary(ctx, name)
}

// newGenerator builds a generator for one reference. Files go through
// generator.Initialize so load errors keep their kind.
func newGenerator(ctx context.Context, ref string) (*generator.RankGenerator, error) {
	src, err := config.ParseSource(ref)
	if err != nil {
		return nil, common.NewUserError("Invalid vocabulary reference", err)
	}

	if src.Kind == config.SourceFile {
		gen, err := generator.Initialize(src.Value, generatorOptions()...)
		if err != nil {
			return nil, describeLoadError(src, err)
		}
		return gen, nil
	}

	vocab, _, err := loadVocabulary(ctx, ref)
	if err != nil {
		return nil, err
	}
	return generator.New(vocab, generatorOptions()...), nil
}

// mergedGenerator builds one generator per reference and merges them into
// the first, in argument order.
func mergedGenerator(ctx context.Context, refs []string) (*generator.RankGenerator, error) {
	if len(refs) == 0 {
		return nil, common.NewUserError("At least one vocabulary is required", common.ErrInvalidArgument)
	}

	var merged *generator.RankGenerator
	for _, ref := range refs {
		gen, err := newGenerator(ctx, ref)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = gen
			continue
		}
		if err := merged.Merge(gen); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", ref, err)
		}
	}
	return merged, nil
}

// describeLoadError attaches a user-facing message that tells the load
// failure kinds apart.
func describeLoadError(src config.Source, err error) error {
	switch {
	case errors.Is(err, vocabulary.ErrDirectoryNotFound) && src.Kind == config.SourceFile:
		return common.NewUserError(fmt.Sprintf("The folder %s does not exist", filepath.Dir(src.Value)), err)
	case errors.Is(err, vocabulary.ErrResourceNotFound) && src.Kind == config.SourceSample:
		return common.NewUserError(fmt.Sprintf("There is no bundled sample named %q (available: %s)",
			src.Value, strings.Join(samples.Names(), ", ")), err)
	case errors.Is(err, vocabulary.ErrResourceNotFound):
		return common.NewUserError(fmt.Sprintf("No vocabulary file at %s", src.Value), err)
	case errors.Is(err, vocabulary.ErrMalformedVocabulary):
		return common.NewUserError(fmt.Sprintf("%s is not a valid vocabulary", src), err)
	case errors.Is(err, storage.ErrVocabularyNotFound):
		return common.NewUserError(fmt.Sprintf("No vocabulary named %q in the library. Add one with 'ranks vocab import'", src.Value), err)
	default:
		return err
	}
}

// defaultVocabularyName derives a library name from a reference:
// "navy.yaml" becomes "navy" and "sample:politics" becomes "politics".
func defaultVocabularyName(src config.Source) string {
	if src.Kind != config.SourceFile {
		return src.Value
	}
	base := filepath.Base(src.Value)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
