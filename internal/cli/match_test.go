package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOption(t *testing.T) {
	options := []string{"Princess", "Superheroes", "Space", "Dinosaurs", "Unicorns"}

	tests := []struct {
		name      string
		input     string
		want      string
		wantError bool
	}{
		{
			name:  "exact match",
			input: "Space",
			want:  "Space",
		},
		{
			name:  "exact match case insensitive",
			input: "dinosaurs",
			want:  "Dinosaurs",
		},
		{
			name:  "unique prefix",
			input: "uni",
			want:  "Unicorns",
		},
		{
			name:  "unique prefix after ambiguous letter",
			input: "sup",
			want:  "Superheroes",
		},
		{
			name:      "ambiguous prefix",
			input:     "s",
			wantError: true,
		},
		{
			name:  "no match is free text",
			input: "Pirates",
			want:  "",
		},
		{
			name:  "empty input matches nothing",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchOption("theme", tt.input, options)

			if tt.wantError {
				var amb *AmbiguousError
				require.True(t, errors.As(err, &amb))
				assert.Equal(t, []string{"Superheroes", "Space"}, amb.Matches)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchOptionNoOptions(t *testing.T) {
	got, err := MatchOption("theme", "space", nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
