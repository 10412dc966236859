package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("RANKS_TEST_DIR", "/srv/ranks")

	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "~", want: home},
		{input: "~/vocab/navy.json", want: filepath.Join(home, "vocab/navy.json")},
		{input: "$RANKS_TEST_DIR/navy.json", want: "/srv/ranks/navy.json"},
		{input: "relative/navy.json", want: "relative/navy.json"},
		{input: "~other/navy.json", want: "~other/navy.json"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestDatabasePath(t *testing.T) {
	t.Setenv("HOME", "/home/ranker")

	assert.Equal(t, "/home/ranker/.local/share/ranks/ranks.db", DatabasePath(""))
	assert.Equal(t, "/tmp/ranks.db", DatabasePath("/tmp/ranks.db"))
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		ref     string
		want    Source
		wantErr bool
	}{
		{ref: "ranks.json", want: Source{Kind: SourceFile, Value: "ranks.json"}},
		{ref: " sample:politics ", want: Source{Kind: SourceSample, Value: "politics"}},
		{ref: "db:navy", want: Source{Kind: SourceLibrary, Value: "navy"}},
		{ref: "", wantErr: true},
		{ref: "sample:", wantErr: true},
		{ref: "db:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ParseSource(tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}
