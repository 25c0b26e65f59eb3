// Package planner owns the active party and keeps its durable copy in sync.
package planner

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jacksmith/party/internal/model"
	"github.com/shopspring/decimal"
)

// Store is the single owner of the active party for the process lifetime.
// Every mutation is applied in memory first, then the touched entity is
// written to the provider and committed. A failed write is logged and
// returned as a *PersistError; the in-memory change is never rolled back.
//
// Store is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	provider Provider
	log      *slog.Logger
	now      func() time.Time

	party   *model.Party
	durable bool // the provider holds a record for party
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and persistence diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock sets the time source used to date a freshly seeded party.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// PartyChanges represents party fields that can be updated.
type PartyChanges struct {
	Name     *string
	Date     *time.Time
	Location *string
	Theme    *string
	Notes    *string
}

// Open loads the first stored party from the provider, or seeds and persists
// the default party when none exists. If the provider cannot be read the
// default party is kept in memory only and nothing is written until a later
// SaveParty succeeds. Open never leaves the store without a party.
func Open(p Provider, opts ...Option) *Store {
	s := &Store{
		provider: p,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	parties, err := p.FindParties()
	if err != nil {
		s.log.Error("failed to load party, continuing in memory", "error", err)
		s.party = model.DefaultParty(s.now())
		return s
	}

	if len(parties) > 0 {
		if len(parties) > 1 {
			s.log.Warn("multiple parties stored, using the first", "count", len(parties))
		}
		s.party = parties[0]
		s.durable = true
		s.log.Debug("loaded party",
			"party", s.party.ID,
			"guests", len(s.party.Guests),
			"items", len(s.party.GoodyBagItems),
		)
		return s
	}

	s.party = model.DefaultParty(s.now())
	if err := s.createLocked("seed party"); err == nil {
		s.log.Info("created default party", "party", s.party.ID)
	}
	return s
}

// Party returns a copy of the active party.
func (s *Store) Party() *model.Party {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.party.Clone()
}

// Durable reports whether the active party has a record in the provider.
// It is false after a failed startup load until SaveParty succeeds.
func (s *Store) Durable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.durable
}

// fail logs a persistence failure and wraps it for the caller.
func (s *Store) fail(op string, err error) error {
	s.log.Error("failed to persist change", "op", op, "party", s.party.ID, "error", err)
	return &PersistError{Op: op, Err: err}
}

// persist stages a write and commits it. It does nothing while the party has
// no durable record.
func (s *Store) persist(op string, write func() error) error {
	if !s.durable {
		return nil
	}
	if err := write(); err != nil {
		return s.fail(op, err)
	}
	if err := s.provider.Commit(); err != nil {
		return s.fail(op, err)
	}
	return nil
}

// createLocked writes the whole party as a new record. The record handle is
// remembered as soon as the create is staged so a failed commit can be
// retried with SaveParty.
func (s *Store) createLocked(op string) error {
	if err := s.provider.CreateParty(s.party); err != nil {
		return s.fail(op, err)
	}
	s.durable = true
	if err := s.provider.Commit(); err != nil {
		return s.fail(op, err)
	}
	return nil
}

func (s *Store) saveLocked(op string) error {
	if !s.durable {
		return s.createLocked(op)
	}
	return s.persist(op, func() error {
		return s.provider.UpdateParty(s.party)
	})
}

// SaveParty persists the party's scalar fields (name, date, location, theme,
// notes). If the party has no durable record yet, the whole party including
// its guests and items is created.
func (s *Store) SaveParty() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked("save party")
}

// EditParty applies the given changes and saves the party.
func (s *Store) EditParty(changes PartyChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if changes.Name != nil {
		s.party.Name = *changes.Name
	}
	if changes.Date != nil {
		s.party.Date = *changes.Date
	}
	if changes.Location != nil {
		s.party.Location = *changes.Location
	}
	if changes.Theme != nil {
		s.party.Theme = *changes.Theme
	}
	if changes.Notes != nil {
		s.party.Notes = *changes.Notes
	}

	return s.saveLocked("edit party")
}

// Reset replaces the stored party with all its guests and items by a fresh
// default party. The new party takes the old record's place, so it is the
// one loaded next even when other parties are stored.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.party
	wasDurable := s.durable

	s.party = model.DefaultParty(s.now())
	s.durable = false

	if !wasDurable {
		return s.createLocked("reset party")
	}
	if err := s.provider.ReplaceParty(old.ID, s.party); err != nil {
		return s.fail("reset party", err)
	}
	s.durable = true
	if err := s.provider.Commit(); err != nil {
		return s.fail("reset party", err)
	}
	return nil
}

// AddGuest appends an unconfirmed guest and persists it.
func (s *Store) AddGuest(name, contact string) (model.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := model.NewGuest(name, contact)
	s.party.Guests = append(s.party.Guests, g)

	err := s.persist("add guest", func() error {
		return s.provider.CreateGuest(s.party.ID, &g)
	})
	return g, err
}

// RemoveGuests removes the guests with the given IDs. If any ID is unknown
// nothing is removed and ErrGuestNotFound is returned.
func (s *Store) RemoveGuests(ids ...uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if s.party.FindGuest(id) == nil {
			return fmt.Errorf("%w: %s", ErrGuestNotFound, id)
		}
	}
	return s.removeGuestsLocked(ids)
}

// RemoveGuestsAt removes the guests at the given zero-based positions of the
// current guest list. If any position is out of range nothing is removed and
// ErrInvalidPosition is returned.
func (s *Store) RemoveGuestsAt(positions ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(s.party.Guests) {
			return fmt.Errorf("%w: guest position %d (have %d guests)", ErrInvalidPosition, pos, len(s.party.Guests))
		}
		ids = append(ids, s.party.Guests[pos].ID)
	}
	return s.removeGuestsLocked(ids)
}

func (s *Store) removeGuestsLocked(ids []uuid.UUID) error {
	remove := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	kept := s.party.Guests[:0]
	for _, g := range s.party.Guests {
		if !remove[g.ID] {
			kept = append(kept, g)
		}
	}
	s.party.Guests = kept

	return s.persist("remove guests", func() error {
		for id := range remove {
			if err := s.provider.DeleteGuest(s.party.ID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// ToggleGuestConfirmation flips the confirmation flag of a guest.
// An unknown ID is ignored.
func (s *Store) ToggleGuestConfirmation(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.party.FindGuest(id)
	if g == nil {
		return nil
	}
	g.Confirmed = !g.Confirmed

	updated := *g
	return s.persist("toggle guest confirmation", func() error {
		return s.provider.UpdateGuest(s.party.ID, &updated)
	})
}

// AddGoodyBagItem appends an unpurchased, unpriced item and persists it.
func (s *Store) AddGoodyBagItem(name string, quantity int) (model.GoodyBagItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := model.NewGoodyBagItem(name, quantity)
	s.party.GoodyBagItems = append(s.party.GoodyBagItems, it)

	err := s.persist("add goody bag item", func() error {
		return s.provider.CreateItem(s.party.ID, &it)
	})
	return it, err
}

// RemoveGoodyBagItems removes the items with the given IDs. If any ID is
// unknown nothing is removed and ErrItemNotFound is returned.
func (s *Store) RemoveGoodyBagItems(ids ...uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if s.party.FindItem(id) == nil {
			return fmt.Errorf("%w: %s", ErrItemNotFound, id)
		}
	}
	return s.removeItemsLocked(ids)
}

// RemoveGoodyBagItemsAt removes the items at the given zero-based positions.
// If any position is out of range nothing is removed and ErrInvalidPosition
// is returned.
func (s *Store) RemoveGoodyBagItemsAt(positions ...int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(s.party.GoodyBagItems) {
			return fmt.Errorf("%w: item position %d (have %d items)", ErrInvalidPosition, pos, len(s.party.GoodyBagItems))
		}
		ids = append(ids, s.party.GoodyBagItems[pos].ID)
	}
	return s.removeItemsLocked(ids)
}

func (s *Store) removeItemsLocked(ids []uuid.UUID) error {
	remove := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	kept := s.party.GoodyBagItems[:0]
	for _, it := range s.party.GoodyBagItems {
		if !remove[it.ID] {
			kept = append(kept, it)
		}
	}
	s.party.GoodyBagItems = kept

	return s.persist("remove goody bag items", func() error {
		for id := range remove {
			if err := s.provider.DeleteItem(s.party.ID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// ToggleItemPurchased flips the purchased flag of an item.
// An unknown ID is ignored.
func (s *Store) ToggleItemPurchased(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.party.FindItem(id)
	if it == nil {
		return nil
	}
	it.Purchased = !it.Purchased

	updated := *it
	return s.persist("toggle item purchased", func() error {
		return s.provider.UpdateItem(s.party.ID, &updated)
	})
}

// UpdateItemPrice sets the price of an item. The amount is stored as given.
// An unknown ID is ignored.
func (s *Store) UpdateItemPrice(id uuid.UUID, price decimal.Decimal) error {
	return s.setItemPrice("update item price", id, model.PriceOf(price))
}

// ClearItemPrice marks an item as not yet priced. An unknown ID is ignored.
func (s *Store) ClearItemPrice(id uuid.UUID) error {
	return s.setItemPrice("clear item price", id, model.NoPrice())
}

func (s *Store) setItemPrice(op string, id uuid.UUID, price model.Price) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.party.FindItem(id)
	if it == nil {
		return nil
	}
	it.Price = price

	updated := *it
	return s.persist(op, func() error {
		return s.provider.UpdateItem(s.party.ID, &updated)
	})
}
