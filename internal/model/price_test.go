package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantSet bool
		wantErr bool
	}{
		{name: "integer", input: "25", want: "25.00", wantSet: true},
		{name: "two decimals", input: "25.00", want: "25.00", wantSet: true},
		{name: "dollar sign", input: "$3.5", want: "3.50", wantSet: true},
		{name: "surrounding spaces", input: "  4.99 ", want: "4.99", wantSet: true},
		{name: "zero is a real price", input: "0", want: "0.00", wantSet: true},
		{name: "empty is absent", input: "", want: "", wantSet: false},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not a number", input: "cheap", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPrice))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSet, got.IsSet())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestPriceAbsentVersusZero(t *testing.T) {
	absent := NoPrice()
	zero := PriceOf(decimal.Zero)

	assert.False(t, absent.IsSet())
	assert.True(t, absent.IsZero())
	assert.True(t, zero.IsSet())
	assert.False(t, zero.IsZero())
	assert.False(t, absent.Equal(zero))
	assert.True(t, zero.Equal(PriceOf(decimal.RequireFromString("0.00"))))
	assert.True(t, absent.Equal(Price{}))

	_, ok := absent.Value()
	assert.False(t, ok)
	v, ok := zero.Value()
	assert.True(t, ok)
	assert.True(t, v.IsZero())
}

func TestPriceExact(t *testing.T) {
	assert.Equal(t, "", NoPrice().Exact())
	assert.Equal(t, "3.333", PriceOf(decimal.RequireFromString("3.333")).Exact())
	assert.Equal(t, "-5", PriceOf(decimal.NewFromInt(-5)).Exact())
	assert.Equal(t, "3.33", PriceOf(decimal.RequireFromString("3.333")).String())
}
