package planner

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jacksmith/party/internal/model"
)

// IssueType represents the kind of integrity problem found in a party.
type IssueType string

const (
	IssueMissingID       IssueType = "missing_id"
	IssueDuplicateID     IssueType = "duplicate_id"
	IssueMissingRequired IssueType = "missing_required"
	IssueInvalidQuantity IssueType = "invalid_quantity"
	IssueNegativePrice   IssueType = "negative_price"
)

// Issue represents a data integrity problem in a loaded party.
type Issue struct {
	Type    IssueType
	ItemID  string
	Message string
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s: %s - %s", i.ItemID, i.Type, i.Message)
}

// Validate checks a party for data integrity issues. Hand-edited documents
// can contain problems the store itself never produces.
func Validate(p *model.Party) []Issue {
	var issues []Issue

	// Check for nil and duplicate IDs across all record kinds
	seen := make(map[uuid.UUID]bool)
	checkID := func(id uuid.UUID, kind, label string) {
		if id == uuid.Nil {
			issues = append(issues, Issue{
				Type:    IssueMissingID,
				ItemID:  label,
				Message: kind + " has no ID",
			})
			return
		}
		if seen[id] {
			issues = append(issues, Issue{
				Type:    IssueDuplicateID,
				ItemID:  model.ShortID(id),
				Message: "duplicate " + kind + " ID",
			})
		}
		seen[id] = true
	}

	checkID(p.ID, "party", p.Name)
	for _, g := range p.Guests {
		checkID(g.ID, "guest", g.Name)
	}
	for _, it := range p.GoodyBagItems {
		checkID(it.ID, "item", it.Name)
	}

	// Check for missing required fields
	if p.Name == "" {
		issues = append(issues, Issue{
			Type:    IssueMissingRequired,
			ItemID:  model.ShortID(p.ID),
			Message: "party missing required field: name",
		})
	}
	for _, g := range p.Guests {
		if g.Name == "" {
			issues = append(issues, Issue{
				Type:    IssueMissingRequired,
				ItemID:  model.ShortID(g.ID),
				Message: "guest missing required field: name",
			})
		}
	}
	for _, it := range p.GoodyBagItems {
		if it.Name == "" {
			issues = append(issues, Issue{
				Type:    IssueMissingRequired,
				ItemID:  model.ShortID(it.ID),
				Message: "item missing required field: name",
			})
		}
		if it.Quantity < 1 {
			issues = append(issues, Issue{
				Type:    IssueInvalidQuantity,
				ItemID:  model.ShortID(it.ID),
				Message: fmt.Sprintf("item quantity must be at least 1, got %d", it.Quantity),
			})
		}
		if amount, ok := it.Price.Value(); ok && amount.IsNegative() {
			issues = append(issues, Issue{
				Type:    IssueNegativePrice,
				ItemID:  model.ShortID(it.ID),
				Message: fmt.Sprintf("item price is negative: %s", it.Price),
			})
		}
	}

	return issues
}
