package main

import (
	"fmt"

	"github.com/jacksmith/party/internal/cli"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start over with the default party",
	Long: `Delete the party with all its guests and goody bag items, and start
again from the default party.

This cannot be undone, so --force is required.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

var resetForce bool

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "really delete everything")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		return &cli.ValidationError{Message: "reset deletes all guests and items; re-run with --force"}
	}

	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	err = store.Reset()
	p := store.Party()
	fmt.Printf("Party reset. Planning %q on %s at %s\n", p.Name, p.Date.Format(cfg.DateFormat), p.Location)
	return err
}
