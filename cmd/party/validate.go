package main

import (
	"fmt"

	"github.com/jacksmith/party/internal/cli"
	"github.com/jacksmith/party/internal/planner"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check data integrity",
	Long: `Check the saved party for integrity issues that hand edits of
.party/party.yaml can introduce.

Checks for:
- Missing or duplicate IDs
- Missing names
- Item quantities below 1
- Negative prices

Exits non-zero when the party file cannot be read or issues are found.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	p, err := openProvider()
	if err != nil {
		return err
	}

	// Read the provider directly so a broken file is reported, not replaced
	parties, err := p.FindParties()
	if err != nil {
		return err
	}
	if len(parties) == 0 {
		fmt.Println("No party saved yet.")
		return nil
	}

	var issues []planner.Issue
	for _, party := range parties {
		issues = append(issues, planner.Validate(party)...)
	}

	if len(parties) > 1 {
		fmt.Println(cli.Yellow(fmt.Sprintf("%d parties stored; only the first is used.", len(parties))))
	}

	if len(issues) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	fmt.Printf("Found %d issue(s):\n\n", len(issues))
	for _, issue := range issues {
		fmt.Printf("%s %s: %s\n", issue.ItemID, cli.Red(string(issue.Type)), issue.Message)
	}
	return fmt.Errorf("%d integrity issue(s) found", len(issues))
}
