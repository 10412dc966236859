package main

import (
	"fmt"
	"strings"

	"github.com/bcanseco/rank-generator/internal/cli"
	"github.com/bcanseco/rank-generator/internal/tui"
	"github.com/bcanseco/rank-generator/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func interactiveCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:     "interactive <vocabulary>",
		Aliases: []string{"i"},
		Short:   "Generate ranks one key press at a time",
		Long: `Open a full-screen session. Press Enter to generate the next rank, Tab to
switch between ordered and random generation, p to toggle postfixes and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startMode, ok := tui.ParseMode(mode)
			if !ok {
				return fmt.Errorf("invalid mode: %s (want next or random)", mode)
			}

			ctx := cmd.Context()
			gen, err := newGenerator(ctx, args[0])
			if err != nil {
				return err
			}

			ranks, err := tui.Run(ctx, gen,
				tui.WithTitle(args[0]),
				tui.WithMode(startMode),
				tui.WithPostfix(postfixEnabled(cmd)),
				tui.WithTheme(themes.GetTheme(viper.GetString("tui.theme"))),
			)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Generated %d ranks.", len(ranks))))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "next", "starting mode (next, random)")
	cmd.Flags().Bool("postfix", false, "start with postfixes enabled")
	cmd.Flags().String("theme", "default", "color theme ("+strings.Join(themes.Names(), ", ")+")")
	_ = viper.BindPFlag("tui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}
