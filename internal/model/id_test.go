package model

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortID(t *testing.T) {
	id := uuid.MustParse("3f0c1a2b-9d4e-4f60-8a1b-2c3d4e5f6a7b")
	assert.Equal(t, "3f0c1a2b", ShortID(id))
}

func TestResolveGuestID(t *testing.T) {
	ann := Guest{ID: uuid.MustParse("3f0c1a2b-9d4e-4f60-8a1b-2c3d4e5f6a7b"), Name: "Ann"}
	bo := Guest{ID: uuid.MustParse("3f0c9999-0000-4000-8000-000000000000"), Name: "Bo"}
	cy := Guest{ID: uuid.MustParse("aa11bb22-0000-4000-8000-000000000000"), Name: "Cy"}
	p := &Party{Guests: []Guest{ann, bo, cy}}

	tests := []struct {
		name    string
		input   string
		want    uuid.UUID
		wantErr error
	}{
		{name: "full UUID", input: ann.ID.String(), want: ann.ID},
		{name: "short ID", input: "3f0c1a2b", want: ann.ID},
		{name: "uppercase prefix", input: "AA11", want: cy.ID},
		{name: "prefix with dash", input: "3f0c1a2b-9d", want: ann.ID},
		{name: "ambiguous prefix", input: "3f0c", wantErr: ErrAmbiguousID},
		{name: "unknown prefix", input: "ffff", wantErr: ErrNotFound},
		{name: "unknown full UUID", input: uuid.NewString(), wantErr: ErrNotFound},
		{name: "too short", input: "3f0", wantErr: ErrInvalidID},
		{name: "not hex", input: "zzzz", wantErr: ErrInvalidID},
		{name: "empty", input: "", wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveGuestID(p, tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveItemID(t *testing.T) {
	it := NewGoodyBagItem("Cake", 1)
	p := &Party{
		Guests:        []Guest{NewGuest("Ann", "")},
		GoodyBagItems: []GoodyBagItem{it},
	}

	got, err := ResolveItemID(p, ShortID(it.ID))
	require.NoError(t, err)
	assert.Equal(t, it.ID, got)

	// Guest IDs are not item IDs
	_, err = ResolveItemID(p, ShortID(p.Guests[0].ID))
	assert.True(t, errors.Is(err, ErrNotFound))
}
