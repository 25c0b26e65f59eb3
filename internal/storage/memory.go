package storage

import (
	"github.com/google/uuid"
	"github.com/jacksmith/party/internal/model"
)

// Memory is a provider that keeps everything in process memory. It stages
// changes exactly like Storage; Commit publishes them to the committed set.
type Memory struct {
	staged    records
	committed records
}

// NewMemory returns an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{}
}

// Committed returns copies of the parties as of the last Commit.
func (m *Memory) Committed() []*model.Party {
	return m.committed.snapshot()
}

// Discard drops staged changes, as if the process had restarted.
func (m *Memory) Discard() {
	m.staged = records{parties: m.committed.snapshot()}
}

// FindParties returns every stored party, staged changes included.
func (m *Memory) FindParties() ([]*model.Party, error) {
	return m.staged.snapshot(), nil
}

// CreateParty stages a new party record along with its children.
func (m *Memory) CreateParty(p *model.Party) error {
	return m.staged.createParty(p)
}

// UpdateParty stages new scalar fields for an existing party.
func (m *Memory) UpdateParty(p *model.Party) error {
	return m.staged.updateParty(p)
}

// ReplaceParty stages p in place of the party oldID, keeping its position.
func (m *Memory) ReplaceParty(oldID uuid.UUID, p *model.Party) error {
	return m.staged.replaceParty(oldID, p)
}

// DeleteParty stages removal of a party and everything it owns.
func (m *Memory) DeleteParty(id uuid.UUID) error {
	return m.staged.deleteParty(id)
}

func (m *Memory) CreateGuest(partyID uuid.UUID, g *model.Guest) error {
	return m.staged.createGuest(partyID, g)
}

func (m *Memory) UpdateGuest(partyID uuid.UUID, g *model.Guest) error {
	return m.staged.updateGuest(partyID, g)
}

func (m *Memory) DeleteGuest(partyID, guestID uuid.UUID) error {
	return m.staged.deleteGuest(partyID, guestID)
}

func (m *Memory) CreateItem(partyID uuid.UUID, it *model.GoodyBagItem) error {
	return m.staged.createItem(partyID, it)
}

func (m *Memory) UpdateItem(partyID uuid.UUID, it *model.GoodyBagItem) error {
	return m.staged.updateItem(partyID, it)
}

func (m *Memory) DeleteItem(partyID, itemID uuid.UUID) error {
	return m.staged.deleteItem(partyID, itemID)
}

// Commit publishes staged changes.
func (m *Memory) Commit() error {
	m.committed = records{parties: m.staged.snapshot()}
	m.staged.dirty = false
	return nil
}
