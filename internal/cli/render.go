package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bcanseco/rank-generator/internal/model"
	"github.com/bcanseco/rank-generator/internal/storage"
)

// RenderRank styles a rank name by the sign of its tier.
func RenderRank(r *model.Rank) string {
	if r == nil {
		return ""
	}
	return TierStyle(r.Tier()).Inherit(RankStyle).Render(r.String())
}

// WriteRanks prints one styled rank per line.
func WriteRanks(w io.Writer, ranks model.Ranks) error {
	for _, r := range ranks {
		if _, err := fmt.Fprintln(w, RenderRank(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteRankTable prints ranks with their tier and format.
func WriteRankTable(w io.Writer, ranks model.Ranks) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("#"),
		TableHeaderStyle.Render("Rank"),
		TableHeaderStyle.Render("Tier"),
		TableHeaderStyle.Render("Format"))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 3),
		strings.Repeat("-", 30),
		strings.Repeat("-", 4),
		strings.Repeat("-", 17))

	for i, r := range ranks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", i+1, r.String(), r.Tier(), r.Format())
	}

	return tw.Flush()
}

// WriteVocabularyTable prints the library listing.
func WriteVocabularyTable(w io.Writer, infos []storage.VocabularyInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("Name"),
		TableHeaderStyle.Render("Prefixes"),
		TableHeaderStyle.Render("Titles"),
		TableHeaderStyle.Render("Postfixes"),
		TableHeaderStyle.Render("Imported"),
		TableHeaderStyle.Render("Source"))

	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n",
			info.Name,
			info.Prefixes,
			info.Titles,
			info.Postfixes,
			info.CreatedAt.Local().Format("2006-01-02 15:04"),
			SubtleStyle.Render(info.Source))
	}

	return tw.Flush()
}

// WriteWords prints a titled word list with tiers and restrictions.
func WriteWords(w io.Writer, heading string, words []*model.Word) error {
	if _, err := fmt.Fprintln(w, TitleStyle.UnsetMargins().Render(fmt.Sprintf("%s (%d)", heading, len(words)))); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, word := range words {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n",
			word.Phrase,
			TierStyle(word.Tier).Render(fmt.Sprintf("%+d", word.Tier)),
			SubtleStyle.Render(describeRestrictions(word)))
	}
	return tw.Flush()
}

func describeRestrictions(word *model.Word) string {
	var parts []string
	if word.MinimumTier != nil {
		parts = append(parts, fmt.Sprintf("min %d", *word.MinimumTier))
	}
	if word.MaximumTier != nil {
		parts = append(parts, fmt.Sprintf("max %d", *word.MaximumTier))
	}
	if word.Whitelist != nil {
		parts = append(parts, "only "+strings.Join(word.Whitelist, ", "))
	}
	if len(word.Blacklist) > 0 {
		parts = append(parts, "not "+strings.Join(word.Blacklist, ", "))
	}
	if word.RestrictCategories {
		parts = append(parts, "categories "+strings.Join(word.Categories, ", "))
	}
	return strings.Join(parts, "; ")
}
