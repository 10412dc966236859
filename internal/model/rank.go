package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bcanseco/rank-generator/internal/common"
)

// RankFormat classifies a rank by which of its words are present.
type RankFormat int

const (
	// FormatTitleOnly is a bare title.
	FormatTitleOnly RankFormat = iota + 1
	// FormatPrefixAndTitle is a prefix followed by a title.
	FormatPrefixAndTitle
	// FormatTitleAndPostfix is a title followed by a postfix.
	FormatTitleAndPostfix
	// FormatFull has a prefix, a title, and a postfix.
	FormatFull
)

func (f RankFormat) String() string {
	switch f {
	case FormatTitleOnly:
		return "title-only"
	case FormatPrefixAndTitle:
		return "prefix-and-title"
	case FormatTitleAndPostfix:
		return "title-and-postfix"
	case FormatFull:
		return "full"
	default:
		return fmt.Sprintf("RankFormat(%d)", int(f))
	}
}

// Rank is a generated title with an optional prefix and postfix.
//
// The tier is fixed at construction from the title and prefix; postfixes
// never contribute to it.
type Rank struct {
	title   *Word
	prefix  *Word
	postfix *Word
	tier    int
}

// NewRank builds a rank. The prefix and postfix may be nil.
func NewRank(title, prefix, postfix *Word) (*Rank, error) {
	if title == nil {
		return nil, fmt.Errorf("%w: rank title is required", common.ErrInvalidArgument)
	}

	tier := title.Tier
	if prefix != nil {
		tier += prefix.Tier
	}

	return &Rank{
		title:   title,
		prefix:  prefix,
		postfix: postfix,
		tier:    tier,
	}, nil
}

// Title returns the title word.
func (r *Rank) Title() *Word { return r.title }

// Prefix returns the prefix word, or nil.
func (r *Rank) Prefix() *Word { return r.prefix }

// Postfix returns the postfix word, or nil.
func (r *Rank) Postfix() *Word { return r.postfix }

// Tier returns title.Tier plus prefix.Tier.
func (r *Rank) Tier() int { return r.tier }

// AttachPostfix sets the postfix. A nil postfix clears it.
func (r *Rank) AttachPostfix(postfix *Word) {
	r.postfix = postfix
}

// Format derives the rank's format from the words currently present.
func (r *Rank) Format() RankFormat {
	switch {
	case r.prefix != nil && r.postfix != nil:
		return FormatFull
	case r.prefix != nil:
		return FormatPrefixAndTitle
	case r.postfix != nil:
		return FormatTitleAndPostfix
	default:
		return FormatTitleOnly
	}
}

// String renders "prefix title postfix", omitting absent words.
func (r *Rank) String() string {
	parts := make([]string, 0, 3)
	if r.prefix != nil {
		parts = append(parts, r.prefix.String())
	}
	parts = append(parts, r.title.String())
	if r.postfix != nil {
		parts = append(parts, r.postfix.String())
	}
	return strings.Join(parts, " ")
}

// Equal reports whether both ranks have the same format and the same words
// in every present position.
func (r *Rank) Equal(other *Rank) (bool, error) {
	if other == nil {
		return false, fmt.Errorf("%w: rank to compare is nil", common.ErrInvalidArgument)
	}

	if r.Format() != other.Format() {
		return false, nil
	}

	return SameWord(r.title, other.title) &&
		SameWord(r.prefix, other.prefix) &&
		SameWord(r.postfix, other.postfix), nil
}

// Compare orders ranks by tier alone. It returns 0 for ranks of equal tier
// even when Equal reports them as different.
func (r *Rank) Compare(other *Rank) (int, error) {
	if other == nil {
		return 0, fmt.Errorf("%w: rank to compare is nil", common.ErrInvalidArgument)
	}

	switch {
	case r.tier > other.tier:
		return 1, nil
	case r.tier < other.tier:
		return -1, nil
	default:
		return 0, nil
	}
}

// Clone returns a copy that shares the (immutable) words but not the rank.
func (r *Rank) Clone() *Rank {
	c := *r
	return &c
}

// Ranks is a slice of ranks with ordering helpers.
type Ranks []*Rank

// Len implements sort.Interface.
func (rs Ranks) Len() int {
	return len(rs)
}

// Less implements sort.Interface by ascending tier.
func (rs Ranks) Less(i, j int) bool {
	return rs[i].tier < rs[j].tier
}

// Swap implements sort.Interface.
func (rs Ranks) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
}

// SortByTier sorts ascending by tier. Distinct ranks with the same tier keep
// their relative order; nothing is deduplicated.
func (rs Ranks) SortByTier() {
	sort.Stable(rs)
}

// Strings renders every rank.
func (rs Ranks) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}
