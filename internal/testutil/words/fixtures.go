package words

import (
	"testing"

	"github.com/bcanseco/rank-generator/internal/vocabulary"
)

// NavySequence is the complete ordered walk of Navy.
var NavySequence = []string{
	"Rear Captain",
	"Captain",
	"Vice Admiral",
	"Rear Admiral",
	"Admiral",
	"Grand Admiral",
}

// Navy mirrors the navy.json test documents.
func Navy(t testing.TB) *vocabulary.Vocabulary {
	t.Helper()
	return NewBuilder(t).
		Prefix("Rear", -1).InCategories("Naval").
		Prefix("Vice", -2).MinTier(4).
		Prefix("Grand", 2).Only("Admiral").
		Title("Captain", 3, "Naval").
		Title("Admiral", 5, "Naval", "Command").
		Postfix("of the Fleet", 0).Except("Captain").
		Build()
}

// Fleet is a small vocabulary with a single negative prefix.
func Fleet(t testing.TB) *vocabulary.Vocabulary {
	t.Helper()
	return NewBuilder(t).
		Prefix("Vice", -2).
		Title("Admiral", 5).
		Title("Captain", 3).
		Postfix("of the Fleet", 0).Only("Admiral").
		Build()
}
