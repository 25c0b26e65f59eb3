// Package storage provides persistence for the party planner: a .party/
// directory on disk and an in-memory equivalent.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jacksmith/party/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// partyDir is the name of the party directory.
	partyDir = ".party"
	// configFile is the name of the storage config file within .party/.
	configFile = "config.yaml"
	// dataFile is the name of the party document within .party/.
	dataFile = "party.yaml"
)

// StorageConfig contains settings stored in .party/config.yaml.
type StorageConfig struct {
	Version int `yaml:"version"`
}

// Storage provides access to a .party/ directory.
//
// Create, update and delete calls are staged in memory; Commit writes the
// whole document to .party/party.yaml.
type Storage struct {
	root   string // path to directory containing .party/
	staged *records
}

// Open returns a Storage for the given directory.
// Returns error if .party/ does not exist.
func Open(dir string) (*Storage, error) {
	path := filepath.Join(dir, partyDir)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".party/ directory not found in %s (run 'party init')", dir)
		}
		return nil, fmt.Errorf("failed to access .party/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".party is not a directory")
	}

	return &Storage{root: dir}, nil
}

// Init creates the .party/ directory. The party itself is seeded by the
// planner on first open.
// Returns error if .party/ already exists.
func Init(dir string) (*Storage, error) {
	path := filepath.Join(dir, partyDir)

	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf(".party/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .party/: %w", err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .party/: %w", err)
	}

	cfg := StorageConfig{Version: model.DocumentVersion}
	cfgData, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(path, configFile), cfgData, 0644); err != nil {
		os.RemoveAll(path)
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	return &Storage{root: dir}, nil
}

// Root returns the root directory containing .party/.
func (s *Storage) Root() string {
	return s.root
}

// PartyDir returns the path to the .party/ directory.
func (s *Storage) PartyDir() string {
	return filepath.Join(s.root, partyDir)
}

// DataPath returns the path to the party document.
func (s *Storage) DataPath() string {
	return filepath.Join(s.root, partyDir, dataFile)
}

// load reads the party document on first use. A missing document is an
// empty record set.
func (s *Storage) load() (*records, error) {
	if s.staged != nil {
		return s.staged, nil
	}

	doc, err := model.LoadDocument(s.DataPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.staged = &records{}
			return s.staged, nil
		}
		return nil, err
	}

	s.staged = &records{parties: doc.Parties}
	return s.staged, nil
}

// FindParties returns every stored party, staged changes included.
func (s *Storage) FindParties() ([]*model.Party, error) {
	r, err := s.load()
	if err != nil {
		return nil, err
	}
	return r.snapshot(), nil
}

// CreateParty stages a new party record along with its children.
func (s *Storage) CreateParty(p *model.Party) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.createParty(p)
}

// UpdateParty stages new scalar fields for an existing party.
func (s *Storage) UpdateParty(p *model.Party) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.updateParty(p)
}

// ReplaceParty stages p in place of the party oldID and everything it owns.
// The new party keeps the old one's position.
func (s *Storage) ReplaceParty(oldID uuid.UUID, p *model.Party) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.replaceParty(oldID, p)
}

// DeleteParty stages removal of a party and everything it owns.
func (s *Storage) DeleteParty(id uuid.UUID) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.deleteParty(id)
}

// CreateGuest stages a new guest under the given party.
func (s *Storage) CreateGuest(partyID uuid.UUID, g *model.Guest) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.createGuest(partyID, g)
}

// UpdateGuest stages new field values for an existing guest.
func (s *Storage) UpdateGuest(partyID uuid.UUID, g *model.Guest) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.updateGuest(partyID, g)
}

// DeleteGuest stages removal of a guest.
func (s *Storage) DeleteGuest(partyID, guestID uuid.UUID) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.deleteGuest(partyID, guestID)
}

// CreateItem stages a new goody bag item under the given party.
func (s *Storage) CreateItem(partyID uuid.UUID, it *model.GoodyBagItem) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.createItem(partyID, it)
}

// UpdateItem stages new field values for an existing goody bag item.
func (s *Storage) UpdateItem(partyID uuid.UUID, it *model.GoodyBagItem) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.updateItem(partyID, it)
}

// DeleteItem stages removal of a goody bag item.
func (s *Storage) DeleteItem(partyID, itemID uuid.UUID) error {
	r, err := s.load()
	if err != nil {
		return err
	}
	return r.deleteItem(partyID, itemID)
}

// Commit writes staged changes to disk. With nothing staged it is a no-op.
// A failed commit keeps the staged changes so a later Commit can retry.
func (s *Storage) Commit() error {
	if s.staged == nil || !s.staged.dirty {
		return nil
	}
	doc := &model.Document{Version: model.DocumentVersion, Parties: s.staged.parties}
	if err := model.SaveDocument(s.DataPath(), doc); err != nil {
		return err
	}
	s.staged.dirty = false
	return nil
}
