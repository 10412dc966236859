// Package samples bundles the example vocabularies shipped with the binary.
package samples

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bcanseco/rank-generator/internal/vocabulary"
)

//go:embed vocabularies/*.json
var files embed.FS

const dir = "vocabularies"

// Names lists the bundled vocabularies without extension, sorted.
func Names() []string {
	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Load returns the bundled vocabulary with the given name.
func Load(name string) (*vocabulary.Vocabulary, error) {
	vocab, err := vocabulary.LoadFS(files, path.Join(dir, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("sample %q: %w", name, err)
	}
	return vocab, nil
}
