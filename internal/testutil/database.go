// Package testutil provides helpers for tests that need a vocabulary library.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bcanseco/rank-generator/internal/storage"
	"github.com/bcanseco/rank-generator/internal/vocabulary"
)

// TestLibrary is a migrated, file-backed library that lives for one test.
type TestLibrary struct {
	Storage *storage.SQLiteStorage
	t       testing.TB
	Path    string
}

// Seed is a vocabulary stored under Name before the test starts.
type Seed struct {
	Vocabulary  *vocabulary.Vocabulary
	Name        string
	Description string
}

// SetupTestLibrary creates a library in a temporary directory and stores
// seeds in it. The file path is exposed so other processes or commands can
// open the same library.
//
// Example:
//
//	lib := testutil.SetupTestLibrary(t, testutil.Seed{Name: "navy", Vocabulary: words.Navy(t)})
//	viper.Set("database.path", lib.Path)
func SetupTestLibrary(t testing.TB, seeds ...Seed) *TestLibrary {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ranks.db")
	ctx := context.Background()

	store, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("failed to create test library: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	for _, seed := range seeds {
		info := storage.VocabularyInfo{
			Name:        seed.Name,
			Source:      "testutil",
			Description: seed.Description,
		}
		if _, err := store.SaveVocabulary(ctx, info, seed.Vocabulary, false); err != nil {
			t.Fatalf("failed to seed vocabulary %q: %v", seed.Name, err)
		}
	}

	return &TestLibrary{
		Storage: store,
		Path:    path,
		t:       t,
	}
}

// MustLoad returns the stored vocabulary or fails the test.
func (l *TestLibrary) MustLoad(name string) *vocabulary.Vocabulary {
	l.t.Helper()
	vocab, err := l.Storage.LoadVocabulary(context.Background(), name)
	if err != nil {
		l.t.Fatalf("failed to load vocabulary %q: %v", name, err)
	}
	return vocab
}

// Names lists the stored vocabulary names.
func (l *TestLibrary) Names() []string {
	l.t.Helper()
	infos, err := l.Storage.ListVocabularies(context.Background())
	if err != nil {
		l.t.Fatalf("failed to list vocabularies: %v", err)
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}
