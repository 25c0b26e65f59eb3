package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/party/internal/cli"
	"github.com/jacksmith/party/internal/model"
	"github.com/jacksmith/party/internal/planner"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes [theme]",
	Short: "List themes or show decoration ideas",
	Long: `Without an argument, list the predefined party themes.
With a theme name or prefix, show decoration ideas for it.`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runThemes,
	ValidArgsFunction: completeThemes,
}

var themeCmd = &cobra.Command{
	Use:   "theme <name-or-prefix>",
	Short: "Set the party theme",
	Long: `Set the party theme.

A unique prefix of a predefined theme selects it ("dino" is Dinosaurs).
Anything that matches no predefined theme is used as a custom theme.

Examples:
  party theme dino
  party theme "Pirates"
  party theme --clear`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runTheme,
	ValidArgsFunction: completeThemes,
}

var themeClear bool

func init() {
	themeCmd.Flags().BoolVar(&themeClear, "clear", false, "remove the theme")
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(themeCmd)
}

// matchTheme resolves user input to a predefined theme, or returns the
// trimmed input as a custom theme.
func matchTheme(input string) (string, error) {
	theme, err := cli.MatchOption("theme", input, model.ThemeOptions)
	if err != nil {
		return "", err
	}
	if theme == model.CustomTheme {
		return "", &cli.ValidationError{
			Field:   "theme",
			Message: `type the custom theme itself, e.g. party theme "Pirates"`,
		}
	}
	if theme == "" {
		theme = strings.TrimSpace(input)
	}
	if theme == "" {
		return "", &cli.ValidationError{Field: "theme", Message: "must not be empty"}
	}
	return theme, nil
}

func runThemes(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		table := cli.NewTable()
		for _, theme := range model.ThemeOptions {
			if theme == model.CustomTheme {
				table.AddRow(theme, cli.Gray("any theme you type"))
				continue
			}
			table.AddRow(theme, cli.Gray(fmt.Sprintf("%d decoration ideas", len(model.DecorationIdeas(theme)))))
		}
		table.Render(os.Stdout)
		return nil
	}

	theme, err := matchTheme(args[0])
	if err != nil {
		return err
	}
	printDecorationIdeas(theme)
	return nil
}

func runTheme(cmd *cobra.Command, args []string) error {
	if themeClear == (len(args) == 1) {
		return fmt.Errorf("specify a theme or --clear")
	}

	theme := ""
	if !themeClear {
		var err error
		theme, err = matchTheme(args[0])
		if err != nil {
			return err
		}
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	err = store.EditParty(planner.PartyChanges{Theme: &theme})
	if theme == "" {
		fmt.Println("Theme cleared.")
		return err
	}

	fmt.Printf("Theme set to %s.\n", cli.Bold(theme))
	printDecorationIdeas(theme)
	return err
}

func printDecorationIdeas(theme string) {
	ideas := model.DecorationIdeas(theme)
	if len(ideas) == 0 {
		fmt.Println(cli.Gray("No decoration ideas for custom themes."))
		return
	}
	fmt.Printf("\nDecoration ideas for %s:\n", theme)
	for _, idea := range ideas {
		fmt.Printf("  - %s\n", idea)
	}
}
