package words

import (
	"testing"

	"github.com/bcanseco/rank-generator/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	vocab := NewBuilder(t).
		Prefix("Acting", -1).MaxTier(3).
		Prefix("Senior", 1).MinTier(1).Except("Delegate").
		Title("Delegate", 0, "Legislative").
		Postfix("Emeritus", 0).Only().
		Build()

	require.Len(t, vocab.Prefixes, 2)
	require.Len(t, vocab.Titles, 1)
	require.Len(t, vocab.Postfixes, 1)

	acting := vocab.Prefixes[0]
	require.NotNil(t, acting.MaximumTier)
	assert.Equal(t, 3, *acting.MaximumTier)
	assert.Nil(t, acting.MinimumTier)

	senior := vocab.Prefixes[1]
	assert.Equal(t, []string{"Delegate"}, senior.Blacklist)
	assert.Nil(t, senior.Whitelist)

	assert.Equal(t, []string{"Legislative"}, vocab.Titles[0].Categories)
	assert.NotNil(t, vocab.Postfixes[0].Whitelist)
	assert.Empty(t, vocab.Postfixes[0].Whitelist)
}

func TestFixtures_Walk(t *testing.T) {
	tests := []struct {
		name string
		gen  *generator.RankGenerator
		want []string
	}{
		{name: "navy", gen: generator.New(Navy(t)), want: NavySequence},
		{name: "fleet", gen: generator.New(Fleet(t)), want: []string{"Vice Captain", "Captain", "Vice Admiral", "Admiral"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for {
				r, ok := tt.gen.NextRank(false)
				if !ok {
					break
				}
				got = append(got, r.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
