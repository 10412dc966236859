// Package vocabulary loads the prefix, title and postfix word lists a rank
// generator is built from.
package vocabulary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bcanseco/rank-generator/internal/common"
	"github.com/bcanseco/rank-generator/internal/model"
	"gopkg.in/yaml.v3"
)

// Load errors. Callers branch on the two not-found kinds.
var (
	ErrDirectoryNotFound   = errors.New("vocabulary directory not found")
	ErrResourceNotFound    = errors.New("vocabulary file not found")
	ErrMalformedVocabulary = errors.New("malformed vocabulary")
)

// Format is the encoding of a vocabulary document.
type Format string

const (
	// FormatJSON is the default encoding.
	FormatJSON Format = "json"
	// FormatYAML is selected by a .yaml or .yml extension.
	FormatYAML Format = "yaml"
)

// FormatFor picks the document format from a file extension.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Vocabulary holds the three word lists. List order is preserved so that
// "first lowest tier" choices are reproducible.
type Vocabulary struct {
	Prefixes  []*model.Word `json:"prefixes" yaml:"prefixes"`
	Titles    []*model.Word `json:"titles" yaml:"titles"`
	Postfixes []*model.Word `json:"postfixes" yaml:"postfixes"`
}

// Size returns the total number of words across all lists.
func (v *Vocabulary) Size() int {
	return len(v.Prefixes) + len(v.Titles) + len(v.Postfixes)
}

// Validate checks every word and replaces nil lists with empty ones.
func (v *Vocabulary) Validate() error {
	lists := []struct {
		words *[]*model.Word
		name  string
	}{
		{name: "prefixes", words: &v.Prefixes},
		{name: "titles", words: &v.Titles},
		{name: "postfixes", words: &v.Postfixes},
	}

	for _, list := range lists {
		if *list.words == nil {
			*list.words = []*model.Word{}
		}
		for i, word := range *list.words {
			if word == nil {
				return fmt.Errorf("%w: %s[%d] is empty", ErrMalformedVocabulary, list.name, i)
			}
			if err := word.Validate(); err != nil {
				return fmt.Errorf("%w: %s[%d]: %v", ErrMalformedVocabulary, list.name, i, err)
			}
		}
	}

	return nil
}

// Decode reads a vocabulary document in the given format.
func Decode(r io.Reader, format Format) (*Vocabulary, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}

	var vocab Vocabulary
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(content, &vocab)
	case FormatJSON:
		if len(bytes.TrimSpace(content)) == 0 {
			return nil, fmt.Errorf("%w: document is empty", ErrMalformedVocabulary)
		}
		err = json.Unmarshal(content, &vocab)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrMalformedVocabulary, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVocabulary, err)
	}

	if err := vocab.Validate(); err != nil {
		return nil, err
	}

	return &vocab, nil
}

// Load reads a vocabulary file from disk. A missing parent directory yields
// ErrDirectoryNotFound; a missing file in an existing directory yields
// ErrResourceNotFound.
func Load(filePath string) (*Vocabulary, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("%w: vocabulary path is empty", common.ErrInvalidArgument)
	}

	dir := filepath.Dir(filePath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, filePath)
		}
		return nil, fmt.Errorf("failed to stat vocabulary: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrResourceNotFound, filePath)
	}

	file, err := os.Open(filePath) // #nosec G304 -- path is supplied by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary: %w", err)
	}
	defer file.Close()

	vocab, err := Decode(file, FormatFor(filePath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	logLoaded(filePath, vocab)
	return vocab, nil
}

// LoadFS reads a vocabulary document from fsys, applying the same
// directory and file not-found distinction as Load.
func LoadFS(fsys fs.FS, name string) (*Vocabulary, error) {
	dir := path.Dir(name)
	if info, err := fs.Stat(fsys, dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}

	file, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return nil, fmt.Errorf("failed to open vocabulary: %w", err)
	}
	defer file.Close()

	vocab, err := Decode(file, FormatFor(name))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	logLoaded(name, vocab)
	return vocab, nil
}

// Encode writes the vocabulary in the given format.
func Encode(w io.Writer, vocab *Vocabulary, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(vocab); err != nil {
			return fmt.Errorf("failed to encode vocabulary: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(vocab); err != nil {
			return fmt.Errorf("failed to encode vocabulary: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func logLoaded(source string, vocab *Vocabulary) {
	slog.Debug("loaded vocabulary",
		"source", source,
		"prefixes", len(vocab.Prefixes),
		"titles", len(vocab.Titles),
		"postfixes", len(vocab.Postfixes))
}
