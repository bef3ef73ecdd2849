// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package transit scores current planetary positions against a natal
// chart's Bhinnashtakavarga and Sarvashtakavarga tables.
package transit

import (
	"fmt"
	"sort"

	"github.com/petar-djukic/go-ashtakavarga/internal/bhinna"
	"github.com/petar-djukic/go-ashtakavarga/internal/houses"
	"github.com/petar-djukic/go-ashtakavarga/internal/sarva"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// Strength scores a transit through sign against a planet's natal table.
func Strength(points types.BinduVector, sign types.Sign) (types.TransitStrength, error) {
	if !sign.Valid() {
		return types.TransitStrength{}, fmt.Errorf("%w: %d", types.ErrInvalidSign, int(sign))
	}
	n := points.At(sign)
	return types.TransitStrength{
		Sign:       sign,
		Bindus:     n,
		Percentage: sarva.Percentage(n, bhinna.MaxBindus),
	}, nil
}

// BestPositions orders the signs by bindus, most first. Equal counts keep
// zodiacal order.
func BestPositions(points types.BinduVector) []types.Sign {
	signs := make([]types.Sign, types.NumSigns)
	copy(signs, types.Signs[:])
	sort.SliceStable(signs, func(i, j int) bool {
		return points[signs[i]] > points[signs[j]]
	})
	return signs
}

// Analyze scores every planet's transit sign in current against its table
// and the Sarvashtakavarga in natal, and places the sign in natal's houses.
func Analyze(b *bhinna.Builder, natal, current types.Chart) (map[types.CelestialPoint]*types.PlanetTransit, error) {
	prastara, err := sarva.BuildPrastara(b, natal)
	if err != nil {
		return nil, fmt.Errorf("natal chart: %w", err)
	}
	asc, err := types.AscendantOf(natal)
	if err != nil {
		return nil, fmt.Errorf("natal chart: %w", err)
	}
	total := sarva.FromPrastara(prastara).Points

	out := make(map[types.CelestialPoint]*types.PlanetTransit, types.NumPlanets)
	for _, planet := range types.Planets {
		points := prastara.Tables[planet].Points
		sign, err := current.SignOf(planet)
		if err != nil {
			return nil, fmt.Errorf("transit chart: %w", err)
		}
		strength, err := Strength(points, sign)
		if err != nil {
			return nil, fmt.Errorf("transit chart: %w", err)
		}
		house, err := houses.HouseOfSign(sign, asc)
		if err != nil {
			return nil, fmt.Errorf("natal chart: %w", err)
		}
		sav := total.At(sign)
		out[planet] = &types.PlanetTransit{
			Planet:          planet,
			Strength:        strength,
			House:           house,
			SarvaBindus:     sav,
			SarvaPercentage: sarva.Percentage(sav, sarva.MaxBindus),
			BestPositions:   BestPositions(points),
		}
	}
	return out, nil
}

// DashaLord scores a period lord by the bindus of its own table at its
// natal sign.
func DashaLord(b *bhinna.Builder, lord types.CelestialPoint, natal types.Chart) (types.TransitStrength, error) {
	if err := types.ValidatePlanet(lord); err != nil {
		return types.TransitStrength{}, err
	}
	sign, err := natal.SignOf(lord)
	if err != nil {
		return types.TransitStrength{}, err
	}
	points, err := b.Points(lord, natal)
	if err != nil {
		return types.TransitStrength{}, err
	}
	return Strength(points, sign)
}

// Vedhas reports, for every planet, the sign opposite its transit sign and
// the planets transiting there.
func Vedhas(current types.Chart) (map[types.CelestialPoint]types.Vedha, error) {
	signs := make(map[types.CelestialPoint]types.Sign, types.NumPlanets)
	for _, planet := range types.Planets {
		s, err := current.SignOf(planet)
		if err != nil {
			return nil, fmt.Errorf("transit chart: %w", err)
		}
		signs[planet] = s
	}

	out := make(map[types.CelestialPoint]types.Vedha, types.NumPlanets)
	for _, planet := range types.Planets {
		v := types.Vedha{
			Planet:      planet,
			TransitSign: signs[planet],
			VedhaSign:   signs[planet].Opposite(),
			Obstructors: []types.CelestialPoint{},
		}
		for _, other := range types.Planets {
			if signs[other] == v.VedhaSign {
				v.Obstructors = append(v.Obstructors, other)
			}
		}
		out[planet] = v
	}
	return out, nil
}
