package main

import (
	"fmt"

	"github.com/jacksmith/party/internal/planner"
	"github.com/jacksmith/party/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Start planning a party",
	Long: `Create a .party/ directory holding a default party.

The default party is "Emmy's Birthday" at "Our Home" on November 23 at
2:00 PM of the current year. Change it with 'party edit'.

Fails if .party/ already exists.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if flagMemory {
		return fmt.Errorf("init cannot be used with --memory")
	}

	s, err := storage.Init(workDir())
	if err != nil {
		return err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return err
	}

	store := planner.Open(s, planner.WithLogger(appLog))
	if !store.Durable() {
		return fmt.Errorf("failed to save the default party in %s", s.PartyDir())
	}

	p := store.Party()
	fmt.Printf("Initialized party in .party/\n")
	fmt.Printf("Planning %q on %s at %s\n", p.Name, p.Date.Format(cfg.DateFormat), p.Location)
	return nil
}
