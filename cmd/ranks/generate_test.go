package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bcanseco/rank-generator/internal/samples"
	"github.com/bcanseco/rank-generator/internal/testutil/words"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const navyFile = "testdata/navy.json"

var navySequence = words.NavySequence

func TestNextCmd(t *testing.T) {
	tests := []struct {
		name          string
		errorContains string
		args          []string
		want          []string
		wantErr       bool
	}{
		{
			name: "count",
			args: []string{navyFile, "--count", "3"},
			want: navySequence[:3],
		},
		{
			name: "all",
			args: []string{navyFile, "--all"},
			want: navySequence,
		},
		{
			name: "count beyond exhaustion",
			args: []string{navyFile, "-n", "50"},
			want: navySequence,
		},
		{
			name: "bundled sample",
			args: []string{"sample:politics", "--count", "1"},
			want: []string{"Acting Delegate"},
		},
		{
			name:          "invalid count",
			args:          []string{navyFile, "--count", "0"},
			wantErr:       true,
			errorContains: "--count must be at least 1",
		},
		{
			name:    "missing argument",
			args:    []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTempLibrary(t)

			stdout, _, err := execute(t, nextCmd(), tt.args...)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, outputLines(stdout))
		})
	}
}

func TestNextCmd_ReportsExhaustion(t *testing.T) {
	useTempLibrary(t)

	_, stderr, err := execute(t, nextCmd(), navyFile, "--all")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Vocabulary exhausted after 6 ranks.")

	_, stderr, err = execute(t, nextCmd(), navyFile, "--count", "2")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestNextCmd_Table(t *testing.T) {
	useTempLibrary(t)

	stdout, _, err := execute(t, nextCmd(), navyFile, "--count", "2", "--table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Format")
	assert.Contains(t, stdout, "prefix-and-title")
	assert.Contains(t, stdout, "title-only")
}

func TestNextCmd_Postfix(t *testing.T) {
	useTempLibrary(t)

	stdout, _, err := execute(t, nextCmd(), navyFile, "--all", "--postfix")
	require.NoError(t, err)

	lines := outputLines(stdout)
	require.Len(t, lines, 6)
	assert.Equal(t, "Rear Captain", lines[0])
	assert.Equal(t, "Vice Admiral of the Fleet", lines[2])
	assert.Equal(t, "Grand Admiral of the Fleet", lines[5])
}

func TestNextCmd_Step(t *testing.T) {
	useTempLibrary(t)

	cmd := nextCmd()
	cmd.SetIn(strings.NewReader("\n\nq\n"))

	stdout, _, err := execute(t, cmd, navyFile, "--step")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stdout, "enter for more"))
	assert.Contains(t, stdout, "Vice Admiral")
	assert.NotContains(t, stdout, "Rear Admiral")
}

func TestNextCmd_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		ref     string
		message string
	}{
		{
			name:    "missing directory",
			ref:     filepath.Join(dir, "nowhere", "navy.json"),
			message: "does not exist",
		},
		{
			name:    "missing file",
			ref:     filepath.Join(dir, "navy.json"),
			message: "No vocabulary file at",
		},
		{
			name:    "unknown sample",
			ref:     "sample:pirates",
			message: "no bundled sample named \"pirates\"",
		},
		{
			name:    "unknown library entry",
			ref:     "db:pirates",
			message: "No vocabulary named \"pirates\" in the library",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTempLibrary(t)

			_, _, err := execute(t, nextCmd(), tt.ref)
			require.Error(t, err)
			assert.Contains(t, errorMessage(err), tt.message)
		})
	}
}

func TestRandomCmd(t *testing.T) {
	useTempLibrary(t)
	viper.Set("generator.seed", 42)

	stdout, _, err := execute(t, randomCmd(), navyFile, "--count", "5")
	require.NoError(t, err)

	lines := outputLines(stdout)
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.True(t, strings.Contains(line, "Captain") || strings.Contains(line, "Admiral"), line)
	}

	again, _, err := execute(t, randomCmd(), navyFile, "--count", "5")
	require.NoError(t, err)
	assert.Equal(t, stdout, again)
}

func TestRandomCmd_InvalidCount(t *testing.T) {
	useTempLibrary(t)

	_, _, err := execute(t, randomCmd(), navyFile, "--count", "-1")
	require.Error(t, err)
}

func TestMergeCmd(t *testing.T) {
	useTempLibrary(t)

	stdout, _, err := execute(t, mergeCmd(), navyFile, "sample:politics", "--count", "8")
	require.NoError(t, err)

	lines := outputLines(stdout)
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "Merged 2 vocabularies: 10 prefixes, 10 titles, 6 postfixes")
	assert.Equal(t, "Acting Delegate", lines[1])
}

func TestMergeCmd_DuplicatesDoNotRepeatRanks(t *testing.T) {
	useTempLibrary(t)

	stdout, _, err := execute(t, mergeCmd(), navyFile, navyFile, "--count", "20")
	require.NoError(t, err)

	lines := outputLines(stdout)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "6 prefixes, 4 titles, 2 postfixes")
	assert.Equal(t, navySequence, lines[1:])
}

func TestMergeCmd_Random(t *testing.T) {
	useTempLibrary(t)

	stdout, _, err := execute(t, mergeCmd(), "sample:fable", "sample:military", "--random", "-n", "4")
	require.NoError(t, err)
	assert.Len(t, outputLines(stdout), 5)
}

func TestMergeCmd_NeedsTwoVocabularies(t *testing.T) {
	useTempLibrary(t)

	_, _, err := execute(t, mergeCmd(), navyFile)
	require.Error(t, err)
}

func TestInteractiveCmd_Flags(t *testing.T) {
	t.Cleanup(viper.Reset)
	cmd := interactiveCmd()

	mode := cmd.Flag("mode")
	require.NotNil(t, mode)
	assert.Equal(t, "next", mode.DefValue)

	theme := cmd.Flag("theme")
	require.NotNil(t, theme)
	assert.Contains(t, theme.Usage, "catppuccin-mocha")
}

func TestInteractiveCmd_InvalidMode(t *testing.T) {
	useTempLibrary(t)

	_, _, err := execute(t, interactiveCmd(), navyFile, "--mode", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode: sideways")
}

func TestExportCmd_Formats(t *testing.T) {
	tests := []struct {
		check  func(t *testing.T, content []byte)
		name   string
		format string
	}{
		{
			name:   "text",
			format: "text",
			check: func(t *testing.T, content []byte) {
				t.Helper()
				assert.Equal(t, navySequence, outputLines(string(content)))
			},
		},
		{
			name:   "json",
			format: "json",
			check: func(t *testing.T, content []byte) {
				t.Helper()
				var records []rankRecord
				require.NoError(t, json.Unmarshal(content, &records))
				require.Len(t, records, 6)
				assert.Equal(t, "Rear", records[0].Prefix)
				assert.Equal(t, "Captain", records[0].Title)
				assert.Equal(t, 2, records[0].Tier)
				assert.Equal(t, "title-only", records[1].Format)
			},
		},
		{
			name:   "yaml",
			format: "yaml",
			check: func(t *testing.T, content []byte) {
				t.Helper()
				var records []rankRecord
				require.NoError(t, yaml.Unmarshal(content, &records))
				require.Len(t, records, 6)
				assert.Equal(t, "Grand Admiral", records[5].Rank)
				assert.Equal(t, 7, records[5].Tier)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTempLibrary(t)
			output := filepath.Join(t.TempDir(), "ranks."+tt.format)

			_, stderr, err := execute(t, exportCmd(), navyFile, "-o", output, "--format", tt.format)
			require.NoError(t, err)
			assert.Contains(t, stderr, "Wrote 6 ranks")

			content, err := os.ReadFile(output)
			require.NoError(t, err)
			tt.check(t, content)
		})
	}
}

func TestExportCmd_Stdout(t *testing.T) {
	useTempLibrary(t)

	stdout, stderr, err := execute(t, exportCmd(), navyFile, "--quiet")
	require.NoError(t, err)
	assert.Equal(t, navySequence, outputLines(stdout))
	assert.NotContains(t, stderr, "Generating ranks")
}

func TestExportCmd_InvalidFormat(t *testing.T) {
	useTempLibrary(t)

	_, _, err := execute(t, exportCmd(), navyFile, "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format: csv")
}

func TestEstimateSequence_MatchesFullRun(t *testing.T) {
	refs := []string{navyFile}
	for _, name := range samples.Names() {
		refs = append(refs, "sample:"+name)
	}

	for _, ref := range refs {
		t.Run(ref, func(t *testing.T) {
			useTempLibrary(t)

			gen, err := newGenerator(context.Background(), ref)
			require.NoError(t, err)

			estimate := estimateSequence(gen)
			assert.Len(t, nextRanks(gen, -1, false), estimate)
		})
	}
}
