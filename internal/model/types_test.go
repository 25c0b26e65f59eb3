package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmedGuestCount(t *testing.T) {
	tests := []struct {
		name   string
		guests []Guest
		want   int
	}{
		{name: "no guests", guests: nil, want: 0},
		{name: "none confirmed", guests: []Guest{NewGuest("Ann", ""), NewGuest("Bo", "")}, want: 0},
		{
			name: "some confirmed",
			guests: []Guest{
				{Name: "Ann", Confirmed: true},
				{Name: "Bo"},
				{Name: "Cy", Confirmed: true},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Party{Guests: tt.guests}
			got := p.ConfirmedGuestCount()
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got, len(p.Guests))
		})
	}
}

func TestTotalBudget(t *testing.T) {
	t.Run("empty party has zero budget", func(t *testing.T) {
		p := &Party{}
		assert.True(t, p.TotalBudget().IsZero())
	})

	t.Run("unpriced items contribute nothing", func(t *testing.T) {
		p := &Party{GoodyBagItems: []GoodyBagItem{NewGoodyBagItem("Balloons", 10)}}
		assert.True(t, p.TotalBudget().IsZero())
	})

	t.Run("sums present prices only", func(t *testing.T) {
		p := &Party{GoodyBagItems: []GoodyBagItem{
			{Name: "Balloons", Quantity: 10},
			{Name: "Cake", Quantity: 1, Price: PriceOf(decimal.RequireFromString("25.00"))},
			{Name: "Stickers", Quantity: 3, Price: PriceOf(decimal.RequireFromString("2.50"))},
			{Name: "Free sample", Quantity: 1, Price: PriceOf(decimal.Zero)},
		}}
		assert.Equal(t, "27.50", p.TotalBudget().StringFixed(2))
	})
}

func TestPurchasedItemCount(t *testing.T) {
	p := &Party{GoodyBagItems: []GoodyBagItem{
		{Name: "A", Purchased: true},
		{Name: "B"},
	}}
	assert.Equal(t, 1, p.PurchasedItemCount())
}

func TestBudgetPerGuest(t *testing.T) {
	cake := GoodyBagItem{Name: "Cake", Quantity: 1, Price: PriceOf(decimal.NewFromInt(10))}

	t.Run("no guests divides by one", func(t *testing.T) {
		p := &Party{GoodyBagItems: []GoodyBagItem{cake}}
		assert.Equal(t, "10.00", p.BudgetPerGuest().StringFixed(2))
	})

	t.Run("rounds to cents", func(t *testing.T) {
		p := &Party{
			Guests:        []Guest{{Name: "A"}, {Name: "B"}, {Name: "C"}},
			GoodyBagItems: []GoodyBagItem{cake},
		}
		assert.Equal(t, "3.33", p.BudgetPerGuest().StringFixed(2))
	})
}

func TestNewGuestAndItemDefaults(t *testing.T) {
	g := NewGuest("Ann", "a@x.com")
	assert.NotEqual(t, g.ID, NewGuest("Ann", "a@x.com").ID)
	assert.False(t, g.Confirmed)
	assert.Empty(t, g.Notes)

	it := NewGoodyBagItem("Cake", 1)
	assert.False(t, it.Purchased)
	assert.False(t, it.Price.IsSet())
	assert.Equal(t, 1, it.Quantity)
}

func TestFindAndClone(t *testing.T) {
	g := NewGuest("Ann", "")
	it := NewGoodyBagItem("Cake", 1)
	p := &Party{Name: "Test", Guests: []Guest{g}, GoodyBagItems: []GoodyBagItem{it}}

	require.NotNil(t, p.FindGuest(g.ID))
	require.NotNil(t, p.FindItem(it.ID))
	assert.Nil(t, p.FindGuest(it.ID))
	assert.Nil(t, p.FindItem(g.ID))

	// Mutating the clone must not touch the original
	c := p.Clone()
	c.Guests[0].Confirmed = true
	c.GoodyBagItems[0].Purchased = true
	c.Name = "Changed"

	assert.False(t, p.Guests[0].Confirmed)
	assert.False(t, p.GoodyBagItems[0].Purchased)
	assert.Equal(t, "Test", p.Name)
}
