package generator

import (
	"slices"

	"github.com/bcanseco/rank-generator/internal/model"
)

// Eligible reports whether affix may be attached to title. Every rule must
// hold:
//   - title tier is within the affix's optional minimum and maximum
//   - title phrase is on the affix whitelist, when one is set
//   - title phrase is not on the affix blacklist, when one is set
//   - the words share a category, when the affix restricts categories
func Eligible(affix, title *model.Word) bool {
	if affix.MinimumTier != nil && title.Tier < *affix.MinimumTier {
		return false
	}
	if affix.MaximumTier != nil && title.Tier > *affix.MaximumTier {
		return false
	}
	if affix.Whitelist != nil && !slices.Contains(affix.Whitelist, title.Phrase) {
		return false
	}
	if affix.Blacklist != nil && slices.Contains(affix.Blacklist, title.Phrase) {
		return false
	}
	if affix.RestrictCategories && !affix.SharesCategory(title) {
		return false
	}
	return true
}

// EligibleAffixes returns the words from glossary that may be attached to
// title, in glossary order.
func EligibleAffixes(title *model.Word, glossary []*model.Word) []*model.Word {
	var eligible []*model.Word
	for _, affix := range glossary {
		if Eligible(affix, title) {
			eligible = append(eligible, affix)
		}
	}
	return eligible
}

// lowestTier returns the first word with the smallest tier, or nil.
func lowestTier(words []*model.Word) *model.Word {
	var lowest *model.Word
	for _, w := range words {
		if lowest == nil || w.Tier < lowest.Tier {
			lowest = w
		}
	}
	return lowest
}

// partitionBySign splits words into negative and positive tiers. Zero-tier
// words belong to neither.
func partitionBySign(words []*model.Word) (negative, positive []*model.Word) {
	for _, w := range words {
		switch {
		case w.Tier < 0:
			negative = append(negative, w)
		case w.Tier > 0:
			positive = append(positive, w)
		}
	}
	return negative, positive
}
