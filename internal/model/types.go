// Package model defines the core data structures for party.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Guest represents an invitee and whether they have confirmed.
type Guest struct {
	ID        uuid.UUID `yaml:"id"`
	Name      string    `yaml:"name"`
	Contact   string    `yaml:"contact,omitempty"`
	Confirmed bool      `yaml:"confirmed"`
	Notes     string    `yaml:"notes,omitempty"`
}

// GoodyBagItem represents a planned party favor line item.
type GoodyBagItem struct {
	ID        uuid.UUID `yaml:"id"`
	Name      string    `yaml:"name"`
	Quantity  int       `yaml:"quantity"`
	Purchased bool      `yaml:"purchased"`
	Price     Price     `yaml:"price,omitempty"`
}

// Party is the root aggregate: the event being planned plus the guests and
// goody bag items it owns.
type Party struct {
	ID            uuid.UUID      `yaml:"id"`
	Name          string         `yaml:"name"`
	Date          time.Time      `yaml:"date"`
	Location      string         `yaml:"location"`
	Theme         string         `yaml:"theme,omitempty"`
	Notes         string         `yaml:"notes,omitempty"`
	Guests        []Guest        `yaml:"guests,omitempty"`
	GoodyBagItems []GoodyBagItem `yaml:"goody_bag_items,omitempty"`
}

// Document is the on-disk representation of the party file.
// Only the first party is used; any others are carried along untouched.
type Document struct {
	Version int      `yaml:"version"`
	Parties []*Party `yaml:"parties,omitempty"`
}

// NewGuest returns an unconfirmed guest with a fresh ID.
func NewGuest(name, contact string) Guest {
	return Guest{
		ID:      uuid.New(),
		Name:    name,
		Contact: contact,
	}
}

// NewGoodyBagItem returns an unpurchased, unpriced item with a fresh ID.
func NewGoodyBagItem(name string, quantity int) GoodyBagItem {
	return GoodyBagItem{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
		Price:    NoPrice(),
	}
}

// ConfirmedGuestCount returns the number of guests who have confirmed.
func (p *Party) ConfirmedGuestCount() int {
	n := 0
	for _, g := range p.Guests {
		if g.Confirmed {
			n++
		}
	}
	return n
}

// TotalBudget returns the sum of all item prices that are set.
// Unpriced items contribute nothing.
func (p *Party) TotalBudget() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.GoodyBagItems {
		if v, ok := it.Price.Value(); ok {
			total = total.Add(v)
		}
	}
	return total
}

// PurchasedItemCount returns the number of goody bag items marked purchased.
func (p *Party) PurchasedItemCount() int {
	n := 0
	for _, it := range p.GoodyBagItems {
		if it.Purchased {
			n++
		}
	}
	return n
}

// BudgetPerGuest spreads the total budget over the guest list, rounded to
// cents. A party with no guests is treated as having one.
func (p *Party) BudgetPerGuest() decimal.Decimal {
	guests := len(p.Guests)
	if guests < 1 {
		guests = 1
	}
	return p.TotalBudget().Div(decimal.NewFromInt(int64(guests))).Round(2)
}

// FindGuest returns a pointer to the guest with the given ID, or nil.
func (p *Party) FindGuest(id uuid.UUID) *Guest {
	for i := range p.Guests {
		if p.Guests[i].ID == id {
			return &p.Guests[i]
		}
	}
	return nil
}

// FindItem returns a pointer to the goody bag item with the given ID, or nil.
func (p *Party) FindItem(id uuid.UUID) *GoodyBagItem {
	for i := range p.GoodyBagItems {
		if p.GoodyBagItems[i].ID == id {
			return &p.GoodyBagItems[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the party.
func (p *Party) Clone() *Party {
	c := *p
	if p.Guests != nil {
		c.Guests = make([]Guest, len(p.Guests))
		copy(c.Guests, p.Guests)
	}
	if p.GoodyBagItems != nil {
		c.GoodyBagItems = make([]GoodyBagItem, len(p.GoodyBagItems))
		copy(c.GoodyBagItems, p.GoodyBagItems)
	}
	return &c
}
