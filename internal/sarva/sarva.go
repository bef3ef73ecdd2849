// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sarva combines the seven Bhinnashtakavarga tables into the
// Sarvashtakavarga and derives the chart-wide summaries.
package sarva

import (
	"fmt"

	"github.com/petar-djukic/go-ashtakavarga/internal/bhinna"
	"github.com/petar-djukic/go-ashtakavarga/internal/sodhana"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// MaxBindus is the nominal ceiling of a sign in the combined table and of a
// planet's table total.
const MaxBindus = types.NumPlanets * types.NumContributors

// Aggregate builds every planet's table for chart and sums them.
func Aggregate(b *bhinna.Builder, chart types.Chart) (*types.SarvaResult, error) {
	prastara, err := BuildPrastara(b, chart)
	if err != nil {
		return nil, err
	}
	return FromPrastara(prastara), nil
}

// FromPrastara sums already-built tables into the combined result.
func FromPrastara(p *types.Prastara) *types.SarvaResult {
	result := &types.SarvaResult{
		Planets: make(map[types.CelestialPoint]types.BinduVector, types.NumPlanets),
	}
	for _, planet := range types.Planets {
		points := p.Tables[planet].Points
		result.Planets[planet] = points
		result.Points = result.Points.Add(points)
	}
	result.Total = result.Points.Total()
	result.Trikona = sodhana.Trikona(result.Points)
	result.Ekadhi = sodhana.Ekadhi(result.Points)
	result.Sodhita = sodhana.Sodhita(result.Points)
	return result
}

// BuildPrastara builds the detailed table: all seven planets with their
// per-contributor breakdowns.
func BuildPrastara(b *bhinna.Builder, chart types.Chart) (*types.Prastara, error) {
	p := &types.Prastara{
		Tables: make(map[types.CelestialPoint]*types.BhinnaResult, types.NumPlanets),
	}
	for _, planet := range types.Planets {
		r, err := b.Build(planet, chart)
		if err != nil {
			return nil, fmt.Errorf("sarvashtakavarga: %w", err)
		}
		p.Tables[planet] = r
	}
	return p, nil
}

// Summarize condenses per-planet totals. Ties for strongest or weakest go
// to the planet listed first in canonical order.
func Summarize(p *types.Prastara) *types.Summary {
	s := &types.Summary{
		PlanetTotals: make(map[types.CelestialPoint]int, types.NumPlanets),
		Strengths:    make(map[types.CelestialPoint]types.PlanetStrength, types.NumPlanets),
	}

	maxTotal, minTotal := -1, MaxBindus+1
	for _, planet := range types.Planets {
		total := p.Tables[planet].Total
		s.PlanetTotals[planet] = total
		s.TotalBindus += total
		s.Strengths[planet] = types.PlanetStrength{
			TotalBindus: total,
			Percentage:  Percentage(total, MaxBindus),
		}

		if total > maxTotal {
			maxTotal = total
			s.StrongestPlanet = planet
		}
		if total < minTotal {
			minTotal = total
			s.WeakestPlanet = planet
		}
	}
	s.AverageBindus = float64(s.TotalBindus) / float64(types.NumPlanets)
	return s
}

// Percentage returns value as a percentage of max.
func Percentage(value, max int) float64 {
	return float64(value) / float64(max) * 100.0
}
