package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/jacksmith/party/internal/cli"
	"github.com/jacksmith/party/internal/model"
	"github.com/jacksmith/party/internal/planner"
	"github.com/spf13/cobra"
)

var guestCmd = &cobra.Command{
	Use:     "guest",
	Aliases: []string{"guests"},
	Short:   "Manage the guest list",
	Long: `Add, list, remove and confirm guests.

Guests are addressed by the ID shown in 'party guest list'. Any unique
prefix of at least 4 characters works.`,
	RunE: runGuestList,
}

var guestAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Invite a guest",
	Long: `Add a guest to the list. New guests start unconfirmed.

Examples:
  party guest add "Ann Lee"
  party guest add "Bo" --contact="555-0134"`,
	Args: cobra.ExactArgs(1),
	RunE: runGuestAdd,
}

var guestListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List guests",
	Args:    cobra.NoArgs,
	RunE:    runGuestList,
}

var guestRmCmd = &cobra.Command{
	Use:     "rm [id...]",
	Aliases: []string{"remove"},
	Short:   "Remove guests",
	Long: `Remove guests by ID, or by their position in 'party guest list'.

Nothing is removed if any ID or position is unknown.

Examples:
  party guest rm 3f2a
  party guest rm 3f2a 9c1e
  party guest rm --at 2 --at 5`,
	RunE:              runGuestRm,
	ValidArgsFunction: completeGuestIDs,
}

var guestConfirmCmd = &cobra.Command{
	Use:               "confirm <id>",
	Short:             "Toggle a guest's confirmation",
	Args:              cobra.ExactArgs(1),
	RunE:              runGuestConfirm,
	ValidArgsFunction: completeGuestIDs,
}

var (
	guestContact string
	guestRmAt    []int
)

func init() {
	guestAddCmd.Flags().StringVar(&guestContact, "contact", "", "phone number or email")
	guestRmCmd.Flags().IntSliceVar(&guestRmAt, "at", nil, "list position to remove (1-based, repeatable)")

	guestCmd.AddCommand(guestAddCmd)
	guestCmd.AddCommand(guestListCmd)
	guestCmd.AddCommand(guestRmCmd)
	guestCmd.AddCommand(guestConfirmCmd)
	rootCmd.AddCommand(guestCmd)
}

func runGuestAdd(cmd *cobra.Command, args []string) error {
	input := planner.GuestInput{Name: args[0], Contact: guestContact}
	if err := planner.ValidateInput(input); err != nil {
		return err
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	g, err := store.AddGuest(input.Name, input.Contact)
	fmt.Printf("Invited %s (%s)\n", g.Name, model.ShortID(g.ID))
	return err
}

func runGuestList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	p := store.Party()

	if len(p.Guests) == 0 {
		fmt.Println("No guests yet. Invite one with 'party guest add <name>'.")
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(3, cli.DefaultMaxNameWidth)
	for i, g := range p.Guests {
		table.AddRow(
			cli.Gray(strconv.Itoa(i+1)),
			model.ShortID(g.ID),
			cli.Checkbox(g.Confirmed),
			g.Name,
			cli.Gray(g.Contact),
		)
	}
	table.Render(os.Stdout)

	fmt.Printf("\n%s invited, %d confirmed\n", plural(len(p.Guests), "guest"), p.ConfirmedGuestCount())
	return nil
}

func runGuestRm(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(guestRmAt) == 0 {
		return fmt.Errorf("specify guest IDs or --at positions")
	}
	if len(args) > 0 && len(guestRmAt) > 0 {
		return fmt.Errorf("use either guest IDs or --at, not both")
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	var count int
	if len(guestRmAt) > 0 {
		count = distinct(guestRmAt)
		err = store.RemoveGuestsAt(toPositions(guestRmAt)...)
	} else {
		p := store.Party()
		ids := make([]uuid.UUID, 0, len(args))
		for _, arg := range args {
			id, err := resolveGuest(p, arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		count = distinct(ids)
		err = store.RemoveGuests(ids...)
	}

	var perr *planner.PersistError
	if err != nil && !errors.As(err, &perr) {
		return err
	}

	fmt.Printf("Removed %s.\n", plural(count, "guest"))
	return err
}

func runGuestConfirm(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveGuest(store.Party(), args[0])
	if err != nil {
		return err
	}

	err = store.ToggleGuestConfirmation(id)
	g := store.Party().FindGuest(id)
	if g.Confirmed {
		fmt.Printf("%s is %s.\n", g.Name, cli.Green("confirmed"))
	} else {
		fmt.Printf("%s is no longer confirmed.\n", g.Name)
	}
	return err
}
