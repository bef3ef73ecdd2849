// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package houses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-ashtakavarga/internal/bhinna"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

var sample = types.BinduVector{30, 25, 28, 33, 22, 31, 27, 24, 29, 26, 35, 21}

func TestToHouses_Rotation(t *testing.T) {
	h, err := ToHouses(sample, types.Leo)
	require.NoError(t, err)

	assert.Equal(t, sample[types.Leo], h[0], "house 1 is the ascendant's sign")
	assert.Equal(t, sample[types.Virgo], h[1])
	assert.Equal(t, sample[types.Cancer], h[11], "house 12 is the sign before the ascendant")
}

func TestToHouses_AriesIsIdentity(t *testing.T) {
	h, err := ToHouses(sample, types.Aries)
	require.NoError(t, err)
	assert.Equal(t, [12]int(sample), [12]int(h))
}

func TestToHouses_PermutationForEveryAscendant(t *testing.T) {
	for _, asc := range types.Signs {
		t.Run(asc.String(), func(t *testing.T) {
			h, err := ToHouses(sample, asc)
			require.NoError(t, err)
			assert.Equal(t, sample.Total(), h.Total())
			assert.ElementsMatch(t, sample[:], h[:])
		})
	}
}

func TestToHouses_InvalidAscendant(t *testing.T) {
	for _, asc := range []types.Sign{-1, 12} {
		_, err := ToHouses(sample, asc)
		assert.ErrorIs(t, err, types.ErrInvalidHouse)
	}
}

func TestSignOfHouse(t *testing.T) {
	tests := []struct {
		house int
		asc   types.Sign
		want  types.Sign
	}{
		{1, types.Aries, types.Aries},
		{12, types.Aries, types.Pisces},
		{1, types.Scorpio, types.Scorpio},
		{6, types.Scorpio, types.Aries},
		{10, types.Capricorn, types.Libra},
	}

	for _, tt := range tests {
		got, err := SignOfHouse(tt.house, tt.asc)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)

		back, err := HouseOfSign(got, tt.asc)
		require.NoError(t, err)
		assert.Equal(t, tt.house, back)
	}

	for _, house := range []int{0, 13, -2} {
		_, err := SignOfHouse(house, types.Aries)
		assert.ErrorIs(t, err, types.ErrInvalidHouse)
	}
}

func TestStrengthInHouse_FirstHouseAries(t *testing.T) {
	b := bhinna.NewBuilder(nil)
	chart := types.SameSign(types.Aries)
	chart[types.Jupiter] = types.Sagittarius
	chart[types.Saturn] = types.Aquarius

	got, err := StrengthInHouse(b, 1, chart, types.Aries)
	require.NoError(t, err)

	want := 0
	for _, planet := range types.Planets {
		points, err := b.Points(planet, chart)
		require.NoError(t, err)
		want += points.At(types.Aries)
		assert.Equal(t, points.At(types.Aries), got.Planets[planet])
	}
	assert.Equal(t, types.Aries, got.Sign)
	assert.Equal(t, want, got.TotalBindus)
	assert.InDelta(t, float64(want)/56*100, got.Percentage, 1e-9)
}

func TestStrengthInHouse_MatchesHouseVector(t *testing.T) {
	b := bhinna.NewBuilder(nil)
	chart := types.SameSign(types.Gemini)
	chart[types.Moon] = types.Pisces

	var sav types.BinduVector
	for _, planet := range types.Planets {
		points, err := b.Points(planet, chart)
		require.NoError(t, err)
		sav = sav.Add(points)
	}
	hv, err := ToHouses(sav, types.Gemini)
	require.NoError(t, err)

	for house := 1; house <= types.NumHouses; house++ {
		hs, err := StrengthInHouse(b, house, chart, types.Gemini)
		require.NoError(t, err)
		want, err := hv.At(house)
		require.NoError(t, err)
		assert.Equal(t, want, hs.TotalBindus, "house %d", house)
	}
}

func TestStrengthInHouse_Errors(t *testing.T) {
	b := bhinna.NewBuilder(nil)
	_, err := StrengthInHouse(b, 13, types.SameSign(types.Aries), types.Aries)
	assert.ErrorIs(t, err, types.ErrInvalidHouse)

	chart := types.SameSign(types.Aries)
	delete(chart, types.Venus)
	_, err = StrengthInHouse(b, 2, chart, types.Aries)
	assert.ErrorIs(t, err, types.ErrMissingPosition)
}
