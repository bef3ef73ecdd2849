// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package kaksha computes Kaksha Bala, the zonal strength a planet draws
// from the other planets' Bhinnashtakavarga tables at its own sign.
package kaksha

import (
	"fmt"

	"github.com/petar-djukic/go-ashtakavarga/internal/bhinna"
	"github.com/petar-djukic/go-ashtakavarga/internal/sarva"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// NominalMaximum is the denominator of the reported percentage. It is kept
// at 42 to match published results even though six tables can supply more
// than that at one sign.
const NominalMaximum = 42

// Calculate returns planet's Kaksha Bala: the sum, over the six other
// planets, of their table value at planet's sign.
func Calculate(b *bhinna.Builder, planet types.CelestialPoint, chart types.Chart) (*types.KakshaBala, error) {
	if err := types.ValidatePlanet(planet); err != nil {
		return nil, err
	}
	sign, err := chart.SignOf(planet)
	if err != nil {
		return nil, fmt.Errorf("kaksha bala of %s: %w", planet, err)
	}

	tables := make(map[types.CelestialPoint]types.BinduVector, types.NumPlanets-1)
	for _, other := range types.Planets {
		if other == planet {
			continue
		}
		if tables[other], err = b.Points(other, chart); err != nil {
			return nil, fmt.Errorf("kaksha bala of %s: %w", planet, err)
		}
	}
	return fromTables(planet, sign, tables), nil
}

// All returns Calculate for every planet.
func All(b *bhinna.Builder, chart types.Chart) (map[types.CelestialPoint]*types.KakshaBala, error) {
	p, err := sarva.BuildPrastara(b, chart)
	if err != nil {
		return nil, fmt.Errorf("kaksha bala: %w", err)
	}
	return FromPrastara(p, chart)
}

// FromPrastara computes every planet's Kaksha Bala from already-built
// tables. chart supplies the planets' signs.
func FromPrastara(p *types.Prastara, chart types.Chart) (map[types.CelestialPoint]*types.KakshaBala, error) {
	tables := make(map[types.CelestialPoint]types.BinduVector, types.NumPlanets)
	for _, planet := range types.Planets {
		r, ok := p.Tables[planet]
		if !ok {
			return nil, fmt.Errorf("kaksha bala: %w for %s table", types.ErrMissingPosition, planet)
		}
		tables[planet] = r.Points
	}

	out := make(map[types.CelestialPoint]*types.KakshaBala, types.NumPlanets)
	for _, planet := range types.Planets {
		sign, err := chart.SignOf(planet)
		if err != nil {
			return nil, fmt.Errorf("kaksha bala of %s: %w", planet, err)
		}
		out[planet] = fromTables(planet, sign, tables)
	}
	return out, nil
}

// fromTables sums the tables of every planet but planet at sign.
func fromTables(planet types.CelestialPoint, sign types.Sign, tables map[types.CelestialPoint]types.BinduVector) *types.KakshaBala {
	kb := &types.KakshaBala{
		Planet:        planet,
		Sign:          sign,
		Contributions: make(map[types.CelestialPoint]int, types.NumPlanets-1),
	}
	for _, other := range types.Planets {
		if other == planet {
			continue
		}
		n := tables[other].At(sign)
		kb.Contributions[other] = n
		kb.Value += n
	}
	kb.Percentage = sarva.Percentage(kb.Value, NominalMaximum)
	return kb
}

// AtSign sums all seven planets' tables at sign, reported against 56.
func AtSign(b *bhinna.Builder, sign types.Sign, chart types.Chart) (*types.SignKakshaBala, error) {
	if !sign.Valid() {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidSign, int(sign))
	}

	kb := &types.SignKakshaBala{
		Sign:          sign,
		Contributions: make(map[types.CelestialPoint]int, types.NumPlanets),
	}
	for _, planet := range types.Planets {
		points, err := b.Points(planet, chart)
		if err != nil {
			return nil, fmt.Errorf("kaksha bala at %s: %w", sign, err)
		}
		n := points.At(sign)
		kb.Contributions[planet] = n
		kb.Value += n
	}
	kb.Percentage = sarva.Percentage(kb.Value, sarva.MaxBindus)
	return kb, nil
}
