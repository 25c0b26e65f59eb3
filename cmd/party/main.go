// Package main is the entry point for the party CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jacksmith/party/internal/cli"
	"github.com/jacksmith/party/internal/config"
	"github.com/jacksmith/party/internal/logger"
	"github.com/jacksmith/party/internal/model"
	"github.com/jacksmith/party/internal/planner"
	"github.com/jacksmith/party/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	flagDir    string
	flagMemory bool

	appLog = logger.New(os.Stderr, slog.LevelWarn, config.LogFormatText)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "party",
	Short: "party - a birthday party planner",
	Long: `party keeps track of one birthday party: its details, the guest list
with confirmations, and the goody bag shopping list with its budget.

Everything is stored in a .party/ directory. Run 'party init' to start.`,
	Version:           Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("party version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "directory containing .party/ (default $PARTY_DIR or .)")
	rootCmd.PersistentFlags().BoolVar(&flagMemory, "memory", false, "keep the party in memory only; nothing is saved")
}

// setup loads process configuration and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	appLog = logger.New(os.Stderr, level, cfg.Log.Format)

	if flagDir == "" {
		flagDir = cfg.Dir
	}
	return nil
}

// workDir returns the directory holding .party/.
func workDir() string {
	if flagDir == "" {
		return "."
	}
	return flagDir
}

// openProvider returns the storage backend selected by --memory.
func openProvider() (planner.Provider, error) {
	if flagMemory {
		return storage.NewMemory(), nil
	}
	return storage.Open(workDir())
}

// openStore opens the party along with the user's preferences. A party that
// could not be loaded is still returned so the command can run; the user is
// warned that changes are kept in memory only.
func openStore() (*planner.Store, *storage.Config, error) {
	cfg, err := storage.LoadConfig(workDir())
	if err != nil {
		return nil, nil, err
	}

	p, err := openProvider()
	if err != nil {
		return nil, nil, err
	}

	store := planner.Open(p, planner.WithLogger(appLog))
	if !flagMemory && !store.Durable() {
		fmt.Fprintln(os.Stderr, cli.Yellow("warning: the saved party could not be loaded; changes will not be saved"))
	}
	return store, cfg, nil
}

// resolveGuest resolves a guest ID or prefix typed by the user.
func resolveGuest(p *model.Party, s string) (uuid.UUID, error) {
	id, err := model.ResolveGuestID(p, s)
	if errors.Is(err, model.ErrNotFound) {
		return uuid.Nil, &cli.NotFoundError{Type: "guest", ID: s}
	}
	return id, err
}

// resolveItem resolves a goody bag item ID or prefix typed by the user.
func resolveItem(p *model.Party, s string) (uuid.UUID, error) {
	id, err := model.ResolveItemID(p, s)
	if errors.Is(err, model.ErrNotFound) {
		return uuid.Nil, &cli.NotFoundError{Type: "item", ID: s}
	}
	return id, err
}

// toPositions converts 1-based list positions to 0-based ones.
func toPositions(at []int) []int {
	out := make([]int, len(at))
	for i, n := range at {
		out[i] = n - 1
	}
	return out
}

// dateLayouts are the accepted formats for --date, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 3:04PM",
	"2006-01-02 3:04pm",
}

// parsePartyDate parses a date typed by the user in local time. A date
// without a time of day keeps the clock time of current.
func parsePartyDate(s string, current time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, &cli.ValidationError{
			Field:   "date",
			Message: fmt.Sprintf("%q (expected YYYY-MM-DD or YYYY-MM-DD HH:MM)", s),
		}
	}
	c := current.In(time.Local)
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.Local), nil
}

// distinct returns the number of different values in vs.
func distinct[T comparable](vs []T) int {
	seen := make(map[T]bool, len(vs))
	for _, v := range vs {
		seen[v] = true
	}
	return len(seen)
}

// plural returns word with an "s" unless n is 1.
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
