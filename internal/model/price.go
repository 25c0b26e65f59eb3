package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPrice is returned when a price string cannot be used.
var ErrInvalidPrice = errors.New("invalid price")

// Price is an optional amount. The zero value is "not yet priced", which is
// distinct from a price of 0.00.
type Price struct {
	amount decimal.Decimal
	set    bool
}

// NoPrice returns an absent price.
func NoPrice() Price {
	return Price{}
}

// PriceOf returns a present price holding d.
func PriceOf(d decimal.Decimal) Price {
	return Price{amount: d, set: true}
}

// ParsePrice parses an amount such as "25", "25.00" or "$3.50".
// An empty string yields an absent price. Negative amounts are rejected.
func ParsePrice(s string) (Price, error) {
	p, err := parseAmount(s)
	if err != nil {
		return Price{}, err
	}
	if amount, ok := p.Value(); ok && amount.IsNegative() {
		return Price{}, fmt.Errorf("%w: %q is negative", ErrInvalidPrice, strings.TrimSpace(s))
	}
	return p, nil
}

// parseAmount parses an amount of any sign. An empty string yields an absent
// price.
func parseAmount(s string) (Price, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" {
		return NoPrice(), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q is not a number", ErrInvalidPrice, s)
	}
	return PriceOf(d), nil
}

// Value returns the amount and whether it is set.
func (p Price) Value() (decimal.Decimal, bool) {
	return p.amount, p.set
}

// IsSet reports whether the price is present.
func (p Price) IsSet() bool {
	return p.set
}

// IsZero reports whether the price is absent. It lets yaml omitempty skip
// unpriced items.
func (p Price) IsZero() bool {
	return !p.set
}

// Equal reports whether two prices are both absent or hold equal amounts.
func (p Price) Equal(o Price) bool {
	if p.set != o.set {
		return false
	}
	return !p.set || p.amount.Equal(o.amount)
}

// String returns the amount with two decimals, or "" when absent.
func (p Price) String() string {
	if !p.set {
		return ""
	}
	return p.amount.StringFixed(2)
}

// Exact returns the amount with every stored digit, or "" when absent.
func (p Price) Exact() string {
	if !p.set {
		return ""
	}
	return p.amount.String()
}

// UnmarshalYAML accepts a number or a quoted amount of any sign. A null node
// leaves the price absent. Negative amounts load so that validation can
// report them.
func (p *Price) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*p = NoPrice()
		return nil
	}
	parsed, err := parseAmount(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = parsed
	return nil
}
