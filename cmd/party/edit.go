package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/party/internal/cli"
	"github.com/jacksmith/party/internal/model"
	"github.com/jacksmith/party/internal/planner"
	"github.com/jacksmith/party/internal/storage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the party details",
	Long: `Edit the party's name, date, location, theme or notes.

Use flags to change specific fields, or -i to edit in $EDITOR.

Examples:
  party edit --name="Leo's 7th Birthday"
  party edit --date=2026-06-06            # keeps the time of day
  party edit --date="2026-06-06 15:30"
  party edit --location="Community Hall"
  party edit --notes="Bring sunscreen"
  party edit -i                           # open in $EDITOR`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

var (
	editName        string
	editDate        string
	editLocation    string
	editTheme       string
	editNotes       string
	editInteractive bool
)

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "set party name")
	editCmd.Flags().StringVar(&editDate, "date", "", "set party date (YYYY-MM-DD [HH:MM])")
	editCmd.Flags().StringVar(&editLocation, "location", "", "set party location")
	editCmd.Flags().StringVar(&editTheme, "theme", "", "set party theme (see 'party theme' for prefix matching)")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "set party notes")
	editCmd.Flags().BoolVarP(&editInteractive, "interactive", "i", false, "edit in $EDITOR")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	if editInteractive {
		return runEditInteractive(store, cfg)
	}

	current := store.Party()
	changes := planner.PartyChanges{}
	hasChanges := false

	if cmd.Flags().Changed("name") {
		name := strings.TrimSpace(editName)
		if name == "" {
			return &cli.ValidationError{Field: "name", Message: "must not be empty"}
		}
		changes.Name = &name
		hasChanges = true
	}
	if cmd.Flags().Changed("date") {
		date, err := parsePartyDate(editDate, current.Date)
		if err != nil {
			return err
		}
		changes.Date = &date
		hasChanges = true
	}
	if cmd.Flags().Changed("location") {
		changes.Location = &editLocation
		hasChanges = true
	}
	if cmd.Flags().Changed("theme") {
		changes.Theme = &editTheme
		hasChanges = true
	}
	if cmd.Flags().Changed("notes") {
		changes.Notes = &editNotes
		hasChanges = true
	}

	if !hasChanges {
		return fmt.Errorf("no changes specified")
	}

	err = store.EditParty(changes)
	fmt.Printf("%s updated.\n", store.Party().Name)
	return err
}

// editableParty is the party representation shown in the editor.
type editableParty struct {
	Name     string `yaml:"name"`
	Date     string `yaml:"date"`
	Location string `yaml:"location"`
	Theme    string `yaml:"theme"`
	Notes    string `yaml:"notes"`
}

const editDateLayout = "2006-01-02 15:04"

func runEditInteractive(store *planner.Store, cfg *storage.Config) error {
	p := store.Party()

	editable := editableParty{
		Name:     p.Name,
		Date:     p.Date.Local().Format(editDateLayout),
		Location: p.Location,
		Theme:    p.Theme,
		Notes:    p.Notes,
	}

	content, err := yaml.Marshal(&editable)
	if err != nil {
		return fmt.Errorf("failed to marshal party: %w", err)
	}

	header := "# Editing " + p.Name + "\n" +
		"# Date format: YYYY-MM-DD HH:MM. Themes: " + strings.Join(model.ThemeOptions[:len(model.ThemeOptions)-1], ", ") + ", or anything else.\n" +
		"# Save and close editor to apply changes. Exit without saving to cancel.\n\n"
	content = append([]byte(header), content...)

	edited, err := cli.EditInEditor(content, ".yaml", cfg.Editor)
	if err != nil {
		return err
	}

	var updated editableParty
	if err := yaml.Unmarshal(edited, &updated); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	changes, err := diffParty(p, editable, updated)
	if err != nil {
		return err
	}
	if changes == nil {
		fmt.Println("No changes made.")
		return nil
	}

	err = store.EditParty(*changes)
	fmt.Printf("%s updated.\n", store.Party().Name)
	return err
}

// diffParty builds the changes between the original and edited forms, or nil
// when nothing changed.
func diffParty(p *model.Party, before, after editableParty) (*planner.PartyChanges, error) {
	changes := planner.PartyChanges{}
	hasChanges := false

	if after.Name != before.Name {
		name := strings.TrimSpace(after.Name)
		if name == "" {
			return nil, &cli.ValidationError{Field: "name", Message: "must not be empty"}
		}
		changes.Name = &name
		hasChanges = true
	}
	if after.Date != before.Date {
		date, err := parsePartyDate(after.Date, p.Date)
		if err != nil {
			return nil, err
		}
		changes.Date = &date
		hasChanges = true
	}
	if after.Location != before.Location {
		changes.Location = &after.Location
		hasChanges = true
	}
	if after.Theme != before.Theme {
		changes.Theme = &after.Theme
		hasChanges = true
	}
	if after.Notes != before.Notes {
		changes.Notes = &after.Notes
		hasChanges = true
	}

	if !hasChanges {
		return nil, nil
	}
	return &changes, nil
}
