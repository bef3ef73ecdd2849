// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package houses re-indexes sign vectors by house, counted from the
// Ascendant's sign (whole-sign houses).
package houses

import (
	"fmt"

	"github.com/petar-djukic/go-ashtakavarga/internal/bhinna"
	"github.com/petar-djukic/go-ashtakavarga/internal/sarva"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// ToHouses rotates v so that index 0 holds the ascendant's sign. The
// result is a permutation of v.
func ToHouses(v types.BinduVector, ascendant types.Sign) (types.HouseVector, error) {
	var h types.HouseVector
	if !ascendant.Valid() {
		return h, fmt.Errorf("%w: ascendant sign %d outside 0-11", types.ErrInvalidHouse, int(ascendant))
	}
	for s := range v {
		h[types.Mod12(s-int(ascendant))] = v[s]
	}
	return h, nil
}

// SignOfHouse returns the sign occupying house (1-12).
func SignOfHouse(house int, ascendant types.Sign) (types.Sign, error) {
	if house < 1 || house > types.NumHouses {
		return 0, fmt.Errorf("%w: %d (want 1-%d)", types.ErrInvalidHouse, house, types.NumHouses)
	}
	if !ascendant.Valid() {
		return 0, fmt.Errorf("%w: ascendant sign %d outside 0-11", types.ErrInvalidHouse, int(ascendant))
	}
	return ascendant.Add(house - 1), nil
}

// HouseOfSign returns the house (1-12) that s occupies.
func HouseOfSign(s, ascendant types.Sign) (int, error) {
	if !ascendant.Valid() {
		return 0, fmt.Errorf("%w: ascendant sign %d outside 0-11", types.ErrInvalidHouse, int(ascendant))
	}
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", types.ErrInvalidSign, int(s))
	}
	return types.Mod12(int(s)-int(ascendant)) + 1, nil
}

// StrengthInHouse sums the seven planets' tables at the sign of house.
func StrengthInHouse(b *bhinna.Builder, house int, chart types.Chart, ascendant types.Sign) (*types.HouseStrength, error) {
	sign, err := SignOfHouse(house, ascendant)
	if err != nil {
		return nil, err
	}

	hs := &types.HouseStrength{
		House:   house,
		Sign:    sign,
		Planets: make(map[types.CelestialPoint]int, types.NumPlanets),
	}
	for _, planet := range types.Planets {
		points, err := b.Points(planet, chart)
		if err != nil {
			return nil, fmt.Errorf("house %d strength: %w", house, err)
		}
		n := points.At(sign)
		hs.Planets[planet] = n
		hs.TotalBindus += n
	}
	hs.Percentage = sarva.Percentage(hs.TotalBindus, sarva.MaxBindus)
	return hs, nil
}
