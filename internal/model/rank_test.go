package model

import (
	"testing"

	"github.com/bcanseco/rank-generator/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRank(t *testing.T, title, prefix, postfix *Word) *Rank {
	t.Helper()
	r, err := NewRank(title, prefix, postfix)
	require.NoError(t, err)
	return r
}

func TestNewRank_RequiresTitle(t *testing.T) {
	r, err := NewRank(nil, &Word{Phrase: "Acting"}, nil)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestRank_Tier(t *testing.T) {
	title := &Word{Phrase: "General", Tier: 10}

	tests := []struct {
		prefix  *Word
		postfix *Word
		name    string
		want    int
	}{
		{name: "title only", want: 10},
		{name: "negative prefix", prefix: &Word{Phrase: "Vice", Tier: -2}, want: 8},
		{name: "positive prefix", prefix: &Word{Phrase: "Grand", Tier: 3}, want: 13},
		{name: "postfix ignored", postfix: &Word{Phrase: "of the Army", Tier: 50}, want: 10},
		{name: "full", prefix: &Word{Phrase: "Vice", Tier: -2}, postfix: &Word{Phrase: "of the Army", Tier: 50}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRank(t, title, tt.prefix, tt.postfix)
			assert.Equal(t, tt.want, r.Tier())
		})
	}
}

func TestRank_FormatAndString(t *testing.T) {
	title := &Word{Phrase: "Admiral", Tier: 5}
	prefix := &Word{Phrase: "Rear", Tier: -1}
	postfix := &Word{Phrase: "of the Fleet"}

	tests := []struct {
		prefix     *Word
		postfix    *Word
		name       string
		wantString string
		wantFormat RankFormat
	}{
		{name: "title only", wantFormat: FormatTitleOnly, wantString: "Admiral"},
		{name: "prefix and title", prefix: prefix, wantFormat: FormatPrefixAndTitle, wantString: "Rear Admiral"},
		{name: "title and postfix", postfix: postfix, wantFormat: FormatTitleAndPostfix, wantString: "Admiral of the Fleet"},
		{name: "full", prefix: prefix, postfix: postfix, wantFormat: FormatFull, wantString: "Rear Admiral of the Fleet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRank(t, title, tt.prefix, tt.postfix)
			assert.Equal(t, tt.wantFormat, r.Format())
			assert.Equal(t, tt.wantString, r.String())
		})
	}
}

func TestRank_AttachPostfixChangesFormatNotTier(t *testing.T) {
	r := mustRank(t, &Word{Phrase: "Admiral", Tier: 5}, &Word{Phrase: "Rear", Tier: -1}, nil)
	require.Equal(t, FormatPrefixAndTitle, r.Format())

	r.AttachPostfix(&Word{Phrase: "of the Fleet", Tier: 9})

	assert.Equal(t, FormatFull, r.Format())
	assert.Equal(t, 4, r.Tier())
	assert.Equal(t, "Rear Admiral of the Fleet", r.String())
}

func TestRank_Equal(t *testing.T) {
	admiral := &Word{Phrase: "Admiral", Tier: 5}
	general := &Word{Phrase: "General", Tier: 5}
	rear := &Word{Phrase: "Rear", Tier: -1}
	fleet := &Word{Phrase: "of the Fleet"}

	tests := []struct {
		a    *Rank
		b    *Rank
		name string
		want bool
	}{
		{name: "same title", a: mustRank(t, admiral, nil, nil), b: mustRank(t, &Word{Phrase: "Admiral"}, nil, nil), want: true},
		{name: "different title", a: mustRank(t, admiral, nil, nil), b: mustRank(t, general, nil, nil), want: false},
		{name: "same prefix and title", a: mustRank(t, admiral, rear, nil), b: mustRank(t, admiral, rear, nil), want: true},
		{name: "full vs prefix and title", a: mustRank(t, admiral, rear, fleet), b: mustRank(t, admiral, rear, nil), want: false},
		{name: "title only vs title and postfix", a: mustRank(t, admiral, nil, nil), b: mustRank(t, admiral, nil, fleet), want: false},
		{name: "full", a: mustRank(t, admiral, rear, fleet), b: mustRank(t, admiral, rear, fleet), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Equal(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := tests[0].a.Equal(nil)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestRank_CompareIgnoresIdentity(t *testing.T) {
	low := mustRank(t, &Word{Phrase: "Captain", Tier: 3}, nil, nil)
	high := mustRank(t, &Word{Phrase: "Admiral", Tier: 5}, nil, nil)
	alsoHigh := mustRank(t, &Word{Phrase: "General", Tier: 6}, &Word{Phrase: "Vice", Tier: -1}, nil)

	cmp, err := low.Compare(high)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = high.Compare(low)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	cmp, err = high.Compare(alsoHigh)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)

	equal, err := high.Equal(alsoHigh)
	require.NoError(t, err)
	assert.False(t, equal, "equal tiers must not imply equal ranks")

	_, err = low.Compare(nil)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestRanks_SortByTierIsStable(t *testing.T) {
	ranks := Ranks{
		mustRank(t, &Word{Phrase: "General", Tier: 6}, &Word{Phrase: "Vice", Tier: -1}, nil),
		mustRank(t, &Word{Phrase: "Captain", Tier: 3}, nil, nil),
		mustRank(t, &Word{Phrase: "Admiral", Tier: 5}, nil, nil),
	}

	ranks.SortByTier()

	assert.Equal(t, []string{"Captain", "Vice General", "Admiral"}, ranks.Strings())
}

func TestRank_Clone(t *testing.T) {
	original := mustRank(t, &Word{Phrase: "Admiral", Tier: 5}, nil, nil)
	clone := original.Clone()

	clone.AttachPostfix(&Word{Phrase: "of the Fleet"})

	assert.Equal(t, FormatTitleOnly, original.Format())
	assert.Equal(t, FormatTitleAndPostfix, clone.Format())
}
