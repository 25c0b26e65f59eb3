package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ShortIDLength is the number of hex characters shown for an ID in listings.
const ShortIDLength = 8

// MinIDPrefixLength is the shortest prefix accepted when resolving an ID.
const MinIDPrefixLength = 4

var (
	// ErrInvalidID is returned when an ID cannot be parsed.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrNotFound is returned when no entity matches an ID.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguousID is returned when an ID prefix matches more than one entity.
	ErrAmbiguousID = errors.New("ambiguous ID")

	// idPrefixRegex matches a hex prefix with optional UUID dashes.
	idPrefixRegex = regexp.MustCompile(`^[0-9A-Fa-f-]+$`)
)

// ShortID returns the display form of an ID: its first eight hex characters.
func ShortID(id uuid.UUID) string {
	return id.String()[:ShortIDLength]
}

// normalizeIDPrefix lowercases s and validates it as a hex prefix.
func normalizeIDPrefix(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !idPrefixRegex.MatchString(s) {
		return "", fmt.Errorf("%w: %q is not a hex ID", ErrInvalidID, s)
	}
	if len(strings.ReplaceAll(s, "-", "")) < MinIDPrefixLength {
		return "", fmt.Errorf("%w: %q is shorter than %d characters", ErrInvalidID, s, MinIDPrefixLength)
	}
	return s, nil
}

// resolveID finds the single candidate matching s, which may be a full UUID
// or a unique prefix of one.
func resolveID(kind, s string, candidates []uuid.UUID) (uuid.UUID, error) {
	if full, err := uuid.Parse(s); err == nil {
		for _, c := range candidates {
			if c == full {
				return c, nil
			}
		}
		return uuid.Nil, fmt.Errorf("%s %s: %w", kind, s, ErrNotFound)
	}

	prefix, err := normalizeIDPrefix(s)
	if err != nil {
		return uuid.Nil, err
	}

	var matches []uuid.UUID
	for _, c := range candidates {
		if strings.HasPrefix(c.String(), prefix) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("%s %s: %w", kind, s, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		short := make([]string, len(matches))
		for i, m := range matches {
			short[i] = ShortID(m)
		}
		return uuid.Nil, fmt.Errorf("%w: %s %q matches %s", ErrAmbiguousID, kind, s, strings.Join(short, ", "))
	}
}

// ResolveGuestID resolves a full guest ID or unique prefix against the party.
func ResolveGuestID(p *Party, s string) (uuid.UUID, error) {
	ids := make([]uuid.UUID, len(p.Guests))
	for i, g := range p.Guests {
		ids[i] = g.ID
	}
	return resolveID("guest", s, ids)
}

// ResolveItemID resolves a full goody bag item ID or unique prefix against
// the party.
func ResolveItemID(p *Party, s string) (uuid.UUID, error) {
	ids := make([]uuid.UUID, len(p.GoodyBagItems))
	for i, it := range p.GoodyBagItems {
		ids[i] = it.ID
	}
	return resolveID("item", s, ids)
}
