// Package words provides a fluent builder for test vocabularies.
//
// Example usage:
//
//	vocab := words.NewBuilder(t).
//		Prefix("Vice", -2).MinTier(4).
//		Title("Admiral", 5, "Naval").
//		Postfix("of the Fleet", 0).Only("Admiral").
//		Build()
package words

import (
	"testing"

	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/bcanseco/rank-generator/internal/vocabulary"
)

// Builder accumulates words. Restriction methods apply to the word added last.
type Builder struct {
	t     testing.TB
	vocab *vocabulary.Vocabulary
	last  *model.Word
}

// NewBuilder returns an empty builder bound to t.
func NewBuilder(t testing.TB) *Builder {
	t.Helper()
	return &Builder{
		t: t,
		vocab: &vocabulary.Vocabulary{
			Prefixes:  []*model.Word{},
			Titles:    []*model.Word{},
			Postfixes: []*model.Word{},
		},
	}
}

// Prefix adds a prefix.
func (b *Builder) Prefix(phrase string, tier int) *Builder {
	b.last = &model.Word{Phrase: phrase, Tier: tier}
	b.vocab.Prefixes = append(b.vocab.Prefixes, b.last)
	return b
}

// Title adds a title carrying the given categories.
func (b *Builder) Title(phrase string, tier int, categories ...string) *Builder {
	b.last = &model.Word{Phrase: phrase, Tier: tier, Categories: categories}
	b.vocab.Titles = append(b.vocab.Titles, b.last)
	return b
}

// Postfix adds a postfix.
func (b *Builder) Postfix(phrase string, tier int) *Builder {
	b.last = &model.Word{Phrase: phrase, Tier: tier}
	b.vocab.Postfixes = append(b.vocab.Postfixes, b.last)
	return b
}

// MinTier sets the minimum title tier.
func (b *Builder) MinTier(tier int) *Builder {
	b.current().MinimumTier = &tier
	return b
}

// MaxTier sets the maximum title tier.
func (b *Builder) MaxTier(tier int) *Builder {
	b.current().MaximumTier = &tier
	return b
}

// Only sets the whitelist. Only() with no phrases admits no title.
func (b *Builder) Only(phrases ...string) *Builder {
	b.current().Whitelist = append([]string{}, phrases...)
	return b
}

// Except sets the blacklist.
func (b *Builder) Except(phrases ...string) *Builder {
	b.current().Blacklist = phrases
	return b
}

// InCategories restricts the word to titles sharing one of categories.
func (b *Builder) InCategories(categories ...string) *Builder {
	w := b.current()
	w.Categories = categories
	w.RestrictCategories = true
	return b
}

// Build validates and returns the vocabulary, failing the test if it is malformed.
func (b *Builder) Build() *vocabulary.Vocabulary {
	b.t.Helper()
	if err := b.vocab.Validate(); err != nil {
		b.t.Fatalf("invalid test vocabulary: %v", err)
	}
	return b.vocab
}

func (b *Builder) current() *model.Word {
	b.t.Helper()
	if b.last == nil {
		b.t.Fatalf("restriction applied before any word was added")
	}
	return b.last
}
