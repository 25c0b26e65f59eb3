package storage

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jacksmith/party/internal/model"
)

var (
	// ErrNotFound is returned when a record addressed by ID does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned when creating a record whose ID is taken.
	ErrDuplicateID = errors.New("duplicate record ID")
)

// records is a staged set of party records. Guests and items live nested
// inside their party, so deleting a party deletes its children with it.
type records struct {
	parties []*model.Party
	dirty   bool
}

// snapshot returns deep copies of every party.
func (r *records) snapshot() []*model.Party {
	out := make([]*model.Party, len(r.parties))
	for i, p := range r.parties {
		out[i] = p.Clone()
	}
	return out
}

func (r *records) findParty(id uuid.UUID) (*model.Party, int, error) {
	for i, p := range r.parties {
		if p.ID == id {
			return p, i, nil
		}
	}
	return nil, -1, fmt.Errorf("party %s: %w", id, ErrNotFound)
}

// idTaken reports whether any record of any kind already uses id. The party
// at index skip is ignored; pass -1 to check every party.
func (r *records) idTaken(id uuid.UUID, skip int) bool {
	for i, p := range r.parties {
		if i == skip {
			continue
		}
		if p.ID == id || p.FindGuest(id) != nil || p.FindItem(id) != nil {
			return true
		}
	}
	return false
}

// checkNewParty rejects a party whose own IDs or child IDs clash with each
// other or with the stored records outside index skip.
func (r *records) checkNewParty(p *model.Party, skip int) error {
	if r.idTaken(p.ID, skip) {
		return fmt.Errorf("party %s: %w", p.ID, ErrDuplicateID)
	}
	seen := map[uuid.UUID]bool{p.ID: true}
	for _, g := range p.Guests {
		if seen[g.ID] || r.idTaken(g.ID, skip) {
			return fmt.Errorf("guest %s: %w", g.ID, ErrDuplicateID)
		}
		seen[g.ID] = true
	}
	for _, it := range p.GoodyBagItems {
		if seen[it.ID] || r.idTaken(it.ID, skip) {
			return fmt.Errorf("item %s: %w", it.ID, ErrDuplicateID)
		}
		seen[it.ID] = true
	}
	return nil
}

func (r *records) createParty(p *model.Party) error {
	if err := r.checkNewParty(p, -1); err != nil {
		return err
	}
	r.parties = append(r.parties, p.Clone())
	r.dirty = true
	return nil
}

// replaceParty swaps the party oldID and everything it owns for p, keeping its
// position in the list.
func (r *records) replaceParty(oldID uuid.UUID, p *model.Party) error {
	_, i, err := r.findParty(oldID)
	if err != nil {
		return err
	}
	if err := r.checkNewParty(p, i); err != nil {
		return err
	}
	r.parties[i] = p.Clone()
	r.dirty = true
	return nil
}

// updateParty overwrites the scalar fields of a stored party. Children are
// left alone.
func (r *records) updateParty(p *model.Party) error {
	stored, _, err := r.findParty(p.ID)
	if err != nil {
		return err
	}
	stored.Name = p.Name
	stored.Date = p.Date
	stored.Location = p.Location
	stored.Theme = p.Theme
	stored.Notes = p.Notes
	r.dirty = true
	return nil
}

func (r *records) deleteParty(id uuid.UUID) error {
	_, i, err := r.findParty(id)
	if err != nil {
		return err
	}
	r.parties = append(r.parties[:i], r.parties[i+1:]...)
	r.dirty = true
	return nil
}

func (r *records) createGuest(partyID uuid.UUID, g *model.Guest) error {
	p, _, err := r.findParty(partyID)
	if err != nil {
		return err
	}
	if r.idTaken(g.ID, -1) {
		return fmt.Errorf("guest %s: %w", g.ID, ErrDuplicateID)
	}
	p.Guests = append(p.Guests, *g)
	r.dirty = true
	return nil
}

func (r *records) updateGuest(partyID uuid.UUID, g *model.Guest) error {
	p, _, err := r.findParty(partyID)
	if err != nil {
		return err
	}
	stored := p.FindGuest(g.ID)
	if stored == nil {
		return fmt.Errorf("guest %s: %w", g.ID, ErrNotFound)
	}
	*stored = *g
	r.dirty = true
	return nil
}

func (r *records) deleteGuest(partyID, guestID uuid.UUID) error {
	p, _, err := r.findParty(partyID)
	if err != nil {
		return err
	}
	for i := range p.Guests {
		if p.Guests[i].ID == guestID {
			p.Guests = append(p.Guests[:i], p.Guests[i+1:]...)
			r.dirty = true
			return nil
		}
	}
	return fmt.Errorf("guest %s: %w", guestID, ErrNotFound)
}

func (r *records) createItem(partyID uuid.UUID, it *model.GoodyBagItem) error {
	p, _, err := r.findParty(partyID)
	if err != nil {
		return err
	}
	if r.idTaken(it.ID, -1) {
		return fmt.Errorf("item %s: %w", it.ID, ErrDuplicateID)
	}
	p.GoodyBagItems = append(p.GoodyBagItems, *it)
	r.dirty = true
	return nil
}

func (r *records) updateItem(partyID uuid.UUID, it *model.GoodyBagItem) error {
	p, _, err := r.findParty(partyID)
	if err != nil {
		return err
	}
	stored := p.FindItem(it.ID)
	if stored == nil {
		return fmt.Errorf("item %s: %w", it.ID, ErrNotFound)
	}
	*stored = *it
	r.dirty = true
	return nil
}

func (r *records) deleteItem(partyID, itemID uuid.UUID) error {
	p, _, err := r.findParty(partyID)
	if err != nil {
		return err
	}
	for i := range p.GoodyBagItems {
		if p.GoodyBagItems[i].ID == itemID {
			p.GoodyBagItems = append(p.GoodyBagItems[:i], p.GoodyBagItems[i+1:]...)
			r.dirty = true
			return nil
		}
	}
	return fmt.Errorf("item %s: %w", itemID, ErrNotFound)
}
