package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/bcanseco/rank-generator/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRank(t *testing.T, title, prefix, postfix *model.Word) *model.Rank {
	t.Helper()
	r, err := model.NewRank(title, prefix, postfix)
	require.NoError(t, err)
	return r
}

func TestRenderRank(t *testing.T) {
	captain := &model.Word{Phrase: "Captain", Tier: 3}
	vice := &model.Word{Phrase: "Vice", Tier: -2}

	assert.Contains(t, RenderRank(mustRank(t, captain, vice, nil)), "Vice Captain")
	assert.Contains(t, RenderRank(mustRank(t, captain, nil, nil)), "Captain")
	assert.Empty(t, RenderRank(nil))
}

func TestWriteRanks(t *testing.T) {
	admiral := &model.Word{Phrase: "Admiral", Tier: 5}
	fleet := &model.Word{Phrase: "of the Fleet"}
	ranks := model.Ranks{
		mustRank(t, admiral, nil, nil),
		mustRank(t, admiral, nil, fleet),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRanks(&buf, ranks))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Admiral")
	assert.Contains(t, lines[1], "Admiral of the Fleet")
}

func TestWriteRankTable(t *testing.T) {
	admiral := &model.Word{Phrase: "Admiral", Tier: 5}
	rear := &model.Word{Phrase: "Rear", Tier: -1}
	fleet := &model.Word{Phrase: "of the Fleet"}

	var buf bytes.Buffer
	require.NoError(t, WriteRankTable(&buf, model.Ranks{
		mustRank(t, admiral, rear, nil),
		mustRank(t, admiral, rear, fleet),
	}))

	out := buf.String()
	assert.Contains(t, out, "Rank")
	assert.Contains(t, out, "Rear Admiral")
	assert.Contains(t, out, "prefix-and-title")
	assert.Contains(t, out, "full")
	assert.Contains(t, out, "4")
}

func TestWriteVocabularyTable(t *testing.T) {
	infos := []storage.VocabularyInfo{
		{
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			Name:      "navy",
			Source:    "navy.json",
			Prefixes:  3,
			Titles:    2,
			Postfixes: 1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteVocabularyTable(&buf, infos))

	out := buf.String()
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "navy")
	assert.Contains(t, out, "navy.json")
	assert.Contains(t, out, "2024-03-01")
}

func TestWriteWords(t *testing.T) {
	words := []*model.Word{
		{Phrase: "Vice", Tier: -2},
		{Phrase: "of the Fleet", Blacklist: []string{"Captain"}},
		{Phrase: "Grand", Tier: 2, MinimumTier: intPtr(4), Whitelist: []string{"Admiral"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWords(&buf, "Prefixes", words))

	out := buf.String()
	assert.Contains(t, out, "Prefixes (3)")
	assert.Contains(t, out, "-2")
	assert.Contains(t, out, "+2")
	assert.Contains(t, out, "not Captain")
	assert.Contains(t, out, "min 4; only Admiral")
}

func intPtr(v int) *int {
	return &v
}

func TestDescribeRestrictions(t *testing.T) {
	tests := []struct {
		word *model.Word
		name string
		want string
	}{
		{name: "none", word: &model.Word{Phrase: "Acting"}, want: ""},
		{name: "tier bounds", word: &model.Word{MinimumTier: intPtr(1), MaximumTier: intPtr(3)}, want: "min 1; max 3"},
		{name: "empty whitelist", word: &model.Word{Whitelist: []string{}}, want: "only "},
		{name: "categories", word: &model.Word{RestrictCategories: true, Categories: []string{"Naval"}}, want: "categories Naval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeRestrictions(tt.word))
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("saved"), "saved")
	assert.Contains(t, FormatError("failed"), "failed")
	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatInfo("note"), "note")
	assert.Contains(t, FormatTitle("Ranks"), "Ranks")
	assert.Contains(t, FormatPrompt("Next"), "Next")
	assert.Contains(t, RenderBox("Vocabulary", "body"), "body")
}
