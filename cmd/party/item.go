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

var itemCmd = &cobra.Command{
	Use:     "item",
	Aliases: []string{"items"},
	Short:   "Manage the goody bag shopping list",
	Long: `Add, list, remove, buy and price goody bag items.

Items are addressed by the ID shown in 'party item list'. Any unique prefix
of at least 4 characters works. The party budget is the sum of all item
prices; items without a price count as nothing.`,
	RunE: runItemList,
}

var itemAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an item",
	Long: `Add an item to the goody bag list. New items start unpurchased and unpriced.

Examples:
  party item add "Stickers"
  party item add "Bubble wands" --qty=12
  party item add "Cake" --price=25`,
	Args: cobra.ExactArgs(1),
	RunE: runItemAdd,
}

var itemListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List items with the budget",
	Args:    cobra.NoArgs,
	RunE:    runItemList,
}

var itemRmCmd = &cobra.Command{
	Use:     "rm [id...]",
	Aliases: []string{"remove"},
	Short:   "Remove items",
	Long: `Remove items by ID, or by their position in 'party item list --all'.

Nothing is removed if any ID or position is unknown.`,
	RunE:              runItemRm,
	ValidArgsFunction: completeItemIDs,
}

var itemBuyCmd = &cobra.Command{
	Use:               "buy <id>",
	Short:             "Toggle an item's purchased flag",
	Args:              cobra.ExactArgs(1),
	RunE:              runItemBuy,
	ValidArgsFunction: completeItemIDs,
}

var itemPriceCmd = &cobra.Command{
	Use:   "price <id> [amount]",
	Short: "Set or clear an item's price",
	Long: `Set the price of an item, or clear it with --clear.

Examples:
  party item price 9c1e 25
  party item price 9c1e $3.50
  party item price 9c1e --clear`,
	Args:              cobra.RangeArgs(1, 2),
	RunE:              runItemPrice,
	ValidArgsFunction: completeItemIDs,
}

var (
	itemQty        int
	itemPrice      string
	itemListAll    bool
	itemRmAt       []int
	itemPriceClear bool
)

func init() {
	itemAddCmd.Flags().IntVar(&itemQty, "qty", 0, "quantity (default from .partyconfig.yaml, else 1)")
	itemAddCmd.Flags().StringVar(&itemPrice, "price", "", "price, e.g. 25 or 3.50")
	itemListCmd.Flags().BoolVarP(&itemListAll, "all", "a", false, "include purchased items when hide_purchased is set")
	itemRmCmd.Flags().IntSliceVar(&itemRmAt, "at", nil, "list position to remove (1-based, repeatable)")
	itemPriceCmd.Flags().BoolVar(&itemPriceClear, "clear", false, "mark the item as not yet priced")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemRmCmd)
	itemCmd.AddCommand(itemBuyCmd)
	itemCmd.AddCommand(itemPriceCmd)
	rootCmd.AddCommand(itemCmd)
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}

	qty := cfg.DefaultQuantity
	if cmd.Flags().Changed("qty") {
		qty = itemQty
	}

	input := planner.ItemInput{Name: args[0], Quantity: qty}
	if err := planner.ValidateInput(input); err != nil {
		return err
	}

	price, err := model.ParsePrice(itemPrice)
	if err != nil {
		return &cli.ValidationError{Field: "price", Message: err.Error()}
	}

	it, err := store.AddGoodyBagItem(input.Name, input.Quantity)
	if err == nil {
		if amount, ok := price.Value(); ok {
			err = store.UpdateItemPrice(it.ID, amount)
		}
	}

	fmt.Printf("Added %s x%d (%s)\n", it.Name, it.Quantity, model.ShortID(it.ID))
	return err
}

func runItemList(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	p := store.Party()

	if len(p.GoodyBagItems) == 0 {
		fmt.Println("No goody bag items yet. Add one with 'party item add <name>'.")
		return nil
	}

	hidePurchased := cfg.HidePurchased && !itemListAll

	table := cli.NewTable()
	table.SetMaxWidth(3, cli.DefaultMaxNameWidth)
	table.AlignRight(4)
	table.AlignRight(5)
	hidden := 0
	for i, it := range p.GoodyBagItems {
		if hidePurchased && it.Purchased {
			hidden++
			continue
		}
		table.AddRow(
			cli.Gray(strconv.Itoa(i+1)),
			model.ShortID(it.ID),
			cli.Checkbox(it.Purchased),
			it.Name,
			fmt.Sprintf("x%d", it.Quantity),
			cli.PriceCell(it.Price),
		)
	}
	table.Render(os.Stdout)

	fmt.Printf("\n%d of %s purchased. Budget: %s\n",
		p.PurchasedItemCount(), plural(len(p.GoodyBagItems), "item"), cli.Bold(cli.Money(p.TotalBudget())))
	if hidden > 0 {
		fmt.Println(cli.Gray(fmt.Sprintf("%d purchased hidden (use --all to show)", hidden)))
	}
	return nil
}

func runItemRm(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && len(itemRmAt) == 0 {
		return fmt.Errorf("specify item IDs or --at positions")
	}
	if len(args) > 0 && len(itemRmAt) > 0 {
		return fmt.Errorf("use either item IDs or --at, not both")
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	var count int
	if len(itemRmAt) > 0 {
		count = distinct(itemRmAt)
		err = store.RemoveGoodyBagItemsAt(toPositions(itemRmAt)...)
	} else {
		p := store.Party()
		ids := make([]uuid.UUID, 0, len(args))
		for _, arg := range args {
			id, err := resolveItem(p, arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		count = distinct(ids)
		err = store.RemoveGoodyBagItems(ids...)
	}

	var perr *planner.PersistError
	if err != nil && !errors.As(err, &perr) {
		return err
	}

	fmt.Printf("Removed %s.\n", plural(count, "item"))
	return err
}

func runItemBuy(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveItem(store.Party(), args[0])
	if err != nil {
		return err
	}

	err = store.ToggleItemPurchased(id)
	it := store.Party().FindItem(id)
	if it.Purchased {
		fmt.Printf("%s is %s.\n", it.Name, cli.Green("purchased"))
	} else {
		fmt.Printf("%s is back on the shopping list.\n", it.Name)
	}
	return err
}

func runItemPrice(cmd *cobra.Command, args []string) error {
	if itemPriceClear && len(args) == 2 {
		return fmt.Errorf("use either an amount or --clear, not both")
	}
	if !itemPriceClear && len(args) < 2 {
		return fmt.Errorf("specify an amount or --clear")
	}

	var price model.Price
	if !itemPriceClear {
		var err error
		price, err = model.ParsePrice(args[1])
		if err != nil {
			return &cli.ValidationError{Field: "price", Message: err.Error()}
		}
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	id, err := resolveItem(store.Party(), args[0])
	if err != nil {
		return err
	}

	if amount, ok := price.Value(); ok {
		err = store.UpdateItemPrice(id, amount)
	} else {
		err = store.ClearItemPrice(id)
	}

	it := store.Party().FindItem(id)
	if it.Price.IsSet() {
		fmt.Printf("%s costs %s. Budget: %s\n", it.Name, cli.PriceCell(it.Price), cli.Money(store.Party().TotalBudget()))
	} else {
		fmt.Printf("%s is not priced yet. Budget: %s\n", it.Name, cli.Money(store.Party().TotalBudget()))
	}
	return err
}
