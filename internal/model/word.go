// Package model defines the vocabulary and rank types shared by the generator.
package model

import (
	"fmt"
	"slices"

	"github.com/bcanseco/rank-generator/internal/common"
)

// Word is a vocabulary entry usable as a title, prefix, or postfix.
//
// Nil Whitelist, Blacklist, MinimumTier and MaximumTier mean "unset". An
// empty but non-nil Whitelist is set and admits no title.
type Word struct {
	MinimumTier        *int     `json:"minimumTier,omitempty" yaml:"minimumTier,omitempty"`
	MaximumTier        *int     `json:"maximumTier,omitempty" yaml:"maximumTier,omitempty"`
	Phrase             string   `json:"phrase" yaml:"phrase"`
	Categories         []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	Whitelist          []string `json:"whitelist,omitempty" yaml:"whitelist,omitempty"`
	Blacklist          []string `json:"blacklist,omitempty" yaml:"blacklist,omitempty"`
	Tier               int      `json:"tier" yaml:"tier"`
	RestrictCategories bool     `json:"restrictCategories,omitempty" yaml:"restrictCategories,omitempty"`
}

// String returns the phrase.
func (w *Word) String() string {
	return w.Phrase
}

// Equal reports whether both words carry the same phrase. Comparison is
// case-sensitive.
func (w *Word) Equal(other *Word) (bool, error) {
	if other == nil {
		return false, fmt.Errorf("%w: word to compare is nil", common.ErrInvalidArgument)
	}
	return w.Phrase == other.Phrase, nil
}

// SameWord is the nil-tolerant form of Equal: two nil words are the same,
// a nil and a non-nil word are not.
func SameWord(a, b *Word) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Phrase == b.Phrase
}

// Validate ensures the word has the data the generator relies on.
func (w *Word) Validate() error {
	if w.Phrase == "" {
		return fmt.Errorf("phrase is required")
	}

	if w.MinimumTier != nil && w.MaximumTier != nil && *w.MinimumTier > *w.MaximumTier {
		return fmt.Errorf("minimum tier %d exceeds maximum tier %d", *w.MinimumTier, *w.MaximumTier)
	}

	return nil
}

// SharesCategory reports whether the two words have at least one category in common.
func (w *Word) SharesCategory(other *Word) bool {
	for _, category := range w.Categories {
		if slices.Contains(other.Categories, category) {
			return true
		}
	}
	return false
}
