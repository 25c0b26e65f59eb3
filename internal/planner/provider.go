package planner

import (
	"github.com/google/uuid"
	"github.com/jacksmith/party/internal/model"
)

//go:generate mockgen -source=provider.go -destination=provider_mock_test.go -package=planner

// Provider defines the persistence interface required by the Store.
// Create, update and delete calls stage changes; Commit makes them durable.
// The concrete implementations are storage.Storage and storage.Memory.
type Provider interface {
	FindParties() ([]*model.Party, error)
	CreateParty(p *model.Party) error
	UpdateParty(p *model.Party) error
	ReplaceParty(oldID uuid.UUID, p *model.Party) error
	DeleteParty(id uuid.UUID) error

	CreateGuest(partyID uuid.UUID, g *model.Guest) error
	UpdateGuest(partyID uuid.UUID, g *model.Guest) error
	DeleteGuest(partyID, guestID uuid.UUID) error

	CreateItem(partyID uuid.UUID, it *model.GoodyBagItem) error
	UpdateItem(partyID uuid.UUID, it *model.GoodyBagItem) error
	DeleteItem(partyID, itemID uuid.UUID) error

	Commit() error
}
