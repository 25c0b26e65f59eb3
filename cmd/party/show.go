package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/party/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the party summary",
	Long: `Show the party details together with the guest count, the goody bag
progress and the budget.

The budget is the sum of all priced items; unpriced items count as nothing.
The per-guest figure spreads it over every invited guest.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	p := store.Party()

	fmt.Println(cli.Bold(p.Name))

	details := cli.NewTable()
	details.AddRow("  Date:", p.Date.Format(cfg.DateFormat))
	details.AddRow("  Location:", p.Location)
	theme := p.Theme
	if theme == "" {
		theme = cli.Gray("(none)")
	}
	details.AddRow("  Theme:", theme)
	if p.Notes != "" {
		details.AddRow("  Notes:", p.Notes)
	}
	details.Render(os.Stdout)
	fmt.Println()

	summary := cli.NewTable()
	summary.AddRow("Guests:", fmt.Sprintf("%s invited, %d confirmed", plural(len(p.Guests), "guest"), p.ConfirmedGuestCount()))
	summary.AddRow("Goody bags:", fmt.Sprintf("%s, %d purchased", plural(len(p.GoodyBagItems), "item"), p.PurchasedItemCount()))
	summary.AddRow("Budget:", fmt.Sprintf("%s (%s per guest)", cli.Money(p.TotalBudget()), cli.Money(p.BudgetPerGuest())))
	summary.Render(os.Stdout)

	return nil
}
