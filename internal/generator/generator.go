// Package generator implements the rank generation engine.
package generator

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/bcanseco/rank-generator/internal/common"
	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/bcanseco/rank-generator/internal/vocabulary"
)

// RankGenerator produces ranks from a vocabulary and remembers every rank
// produced by NextRank. It is not safe for concurrent use.
type RankGenerator struct {
	rng       *rand.Rand
	prefixes  []*model.Word
	titles    []*model.Word
	postfixes []*model.Word
	history   []*model.Rank
	exhausted bool
}

type options struct {
	source rand.Source
}

// Option configures a RankGenerator.
type Option func(*options)

// WithSeed makes random choices reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.source = rand.NewPCG(seed, seed)
	}
}

// WithSource uses src for all random choices.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// New creates a generator with an empty history. The word lists are copied.
func New(vocab *vocabulary.Vocabulary, opts ...Option) *RankGenerator {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	g := &RankGenerator{rng: rand.New(o.source)}
	if vocab != nil {
		g.prefixes = slices.Clone(vocab.Prefixes)
		g.titles = slices.Clone(vocab.Titles)
		g.postfixes = slices.Clone(vocab.Postfixes)
	}
	return g
}

// Initialize loads the vocabulary file at path and creates a generator
// from it. Load errors are returned unmodified.
func Initialize(path string, opts ...Option) (*RankGenerator, error) {
	vocab, err := vocabulary.Load(path)
	if err != nil {
		return nil, err
	}
	return New(vocab, opts...), nil
}

// Merge appends other's history and word lists to g. Nothing is
// deduplicated, other is not modified, and the exhausted flag is left as is.
func (g *RankGenerator) Merge(other *RankGenerator) error {
	if other == nil {
		return fmt.Errorf("%w: generator to merge is nil", common.ErrInvalidArgument)
	}

	incoming := make([]*model.Rank, len(other.history))
	for i, r := range other.history {
		incoming[i] = r.Clone()
	}

	prefixes := slices.Clone(other.prefixes)
	titles := slices.Clone(other.titles)
	postfixes := slices.Clone(other.postfixes)

	g.history = append(g.history, incoming...)
	g.prefixes = append(g.prefixes, prefixes...)
	g.titles = append(g.titles, titles...)
	g.postfixes = append(g.postfixes, postfixes...)

	slog.Debug("merged generators",
		"history", len(g.history),
		"prefixes", len(g.prefixes),
		"titles", len(g.titles),
		"postfixes", len(g.postfixes))

	return nil
}

// IsExhausted reports whether NextRank has run out of ranks.
func (g *RankGenerator) IsExhausted() bool {
	return g.exhausted
}

// NextRank returns the lowest-tier rank not yet generated. For the most
// recent title it walks unused negative prefixes (most negative first), then
// the bare title, then unused positive prefixes, before moving on to the
// lowest unused title. When nothing is left it marks the generator
// exhausted and returns false.
//
// withPostfix attaches a random eligible postfix, if there is one.
func (g *RankGenerator) NextRank(withPostfix bool) (*model.Rank, bool) {
	if g.exhausted {
		return nil, false
	}

	next := g.nextFromHistory()
	if next == nil {
		g.exhausted = true
		slog.Debug("rank generator exhausted", "generated", len(g.history))
		return nil, false
	}

	if withPostfix {
		next.AttachPostfix(g.randomAffix(next.Title(), g.postfixes))
	}

	g.history = append(g.history, next)
	return next, true
}

func (g *RankGenerator) nextFromHistory() *model.Rank {
	if len(g.history) == 0 {
		return g.lowestRankFrom(g.unusedTitles())
	}

	latest := g.history[len(g.history)-1]
	title := latest.Title()
	negative, positive := partitionBySign(g.unusedPrefixesFor(title))

	switch {
	case len(negative) > 0:
		return newRank(title, lowestTier(negative))
	case latest.Prefix() != nil && latest.Prefix().Tier < 0:
		return newRank(title, nil)
	case len(positive) > 0:
		return newRank(title, lowestTier(positive))
	default:
		return g.lowestRankFrom(g.unusedTitles())
	}
}

// lowestRankFrom pairs the lowest-tier title with its most negative unused
// prefix. Positive prefixes are skipped since the bare title ranks lower.
func (g *RankGenerator) lowestRankFrom(titles []*model.Word) *model.Rank {
	title := lowestTier(titles)
	if title == nil {
		return nil
	}

	slog.Debug("starting new title", "title", title.Phrase, "tier", title.Tier)

	negative, _ := partitionBySign(g.unusedPrefixesFor(title))
	return newRank(title, lowestTier(negative))
}

// RandomRank builds a rank from a random title and one of four random
// shapes: bare, with prefix, with postfix, or both. History is neither
// consulted nor updated.
func (g *RankGenerator) RandomRank() (*model.Rank, error) {
	if len(g.titles) == 0 {
		return nil, common.ErrEmptyVocabulary
	}

	title := g.titles[g.rng.IntN(len(g.titles))]

	switch g.rng.IntN(4) {
	case 0:
		return model.NewRank(title, nil, nil)
	case 1:
		return model.NewRank(title, g.randomAffix(title, g.prefixes), nil)
	case 2:
		return model.NewRank(title, nil, g.randomAffix(title, g.postfixes))
	default:
		prefix := g.randomAffix(title, g.prefixes)
		return model.NewRank(title, prefix, g.randomAffix(title, g.postfixes))
	}
}

// History returns copies of the generated ranks in generation order.
func (g *RankGenerator) History() model.Ranks {
	out := make(model.Ranks, len(g.history))
	for i, r := range g.history {
		out[i] = r.Clone()
	}
	return out
}

// Prefixes returns a copy of the prefix list.
func (g *RankGenerator) Prefixes() []*model.Word {
	return slices.Clone(g.prefixes)
}

// Titles returns a copy of the title list.
func (g *RankGenerator) Titles() []*model.Word {
	return slices.Clone(g.titles)
}

// Postfixes returns a copy of the postfix list.
func (g *RankGenerator) Postfixes() []*model.Word {
	return slices.Clone(g.postfixes)
}

// Vocabulary returns a snapshot of the current word lists.
func (g *RankGenerator) Vocabulary() *vocabulary.Vocabulary {
	return &vocabulary.Vocabulary{
		Prefixes:  g.Prefixes(),
		Titles:    g.Titles(),
		Postfixes: g.Postfixes(),
	}
}

func (g *RankGenerator) randomAffix(title *model.Word, glossary []*model.Word) *model.Word {
	eligible := EligibleAffixes(title, glossary)
	if len(eligible) == 0 {
		return nil
	}
	return eligible[g.rng.IntN(len(eligible))]
}

func (g *RankGenerator) unusedTitles() []*model.Word {
	var unused []*model.Word
	for _, title := range g.titles {
		used := slices.ContainsFunc(g.history, func(r *model.Rank) bool {
			return model.SameWord(r.Title(), title)
		})
		if !used {
			unused = append(unused, title)
		}
	}
	return unused
}

func (g *RankGenerator) unusedPrefixesFor(title *model.Word) []*model.Word {
	var unused []*model.Word
	for _, prefix := range EligibleAffixes(title, g.prefixes) {
		paired := slices.ContainsFunc(g.history, func(r *model.Rank) bool {
			return model.SameWord(r.Prefix(), prefix) && model.SameWord(r.Title(), title)
		})
		if !paired {
			unused = append(unused, prefix)
		}
	}
	return unused
}

// newRank wraps model.NewRank; title is never nil on the paths that call it.
func newRank(title, prefix *model.Word) *model.Rank {
	r, err := model.NewRank(title, prefix, nil)
	if err != nil {
		panic(err)
	}
	return r
}
