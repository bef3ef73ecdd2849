// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package bhinna builds Bhinnashtakavarga tables: the bindus one planet
// receives in each sign from the eight contributors.
package bhinna

import (
	"fmt"

	"github.com/petar-djukic/go-ashtakavarga/internal/ruleset"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// MaxBindus is the most bindus a sign can hold in one planet's table.
const MaxBindus = types.NumContributors

// Builder computes Bhinnashtakavarga tables against a fixed ruleset. A
// Builder holds no per-chart state and may be shared between goroutines.
type Builder struct {
	rules *ruleset.Ruleset
}

// NewBuilder returns a Builder over rules. A nil rules selects the
// classical table.
func NewBuilder(rules *ruleset.Ruleset) *Builder {
	if rules == nil {
		rules = ruleset.Classical()
	}
	return &Builder{rules: rules}
}

// Rules returns the ruleset the Builder scores with.
func (b *Builder) Rules() *ruleset.Ruleset {
	return b.rules
}

// Build computes receiver's Bhinnashtakavarga for chart. Every contributor,
// the Ascendant included, must have a position.
func (b *Builder) Build(receiver types.CelestialPoint, chart types.Chart) (*types.BhinnaResult, error) {
	if err := types.ValidatePlanet(receiver); err != nil {
		return nil, err
	}

	result := &types.BhinnaResult{
		Receiver:     receiver,
		Contributors: make(map[types.CelestialPoint]types.BinduVector, types.NumContributors),
	}
	for _, c := range types.Contributors {
		sign, err := chart.SignOf(c)
		if err != nil {
			return nil, fmt.Errorf("building %s table: %w", receiver, err)
		}
		v, err := Generate(b.rules, receiver, c, sign)
		if err != nil {
			return nil, fmt.Errorf("building %s table: %w", receiver, err)
		}
		result.Contributors[c] = v
		result.Points = result.Points.Add(v)
	}
	result.Total = result.Points.Total()
	return result, nil
}

// Points returns only the combined vector of receiver's table.
func (b *Builder) Points(receiver types.CelestialPoint, chart types.Chart) (types.BinduVector, error) {
	r, err := b.Build(receiver, chart)
	if err != nil {
		return types.BinduVector{}, err
	}
	return r.Points, nil
}

// Rekha returns the malefic counterpart of receiver's table: 8 minus the
// bindus in each sign.
func (b *Builder) Rekha(receiver types.CelestialPoint, chart types.Chart) (types.BinduVector, error) {
	points, err := b.Points(receiver, chart)
	if err != nil {
		return types.BinduVector{}, err
	}
	return points.Complement(MaxBindus), nil
}

// OwnContribution returns 1 if planet awards itself a bindu in the sign it
// occupies, 0 otherwise.
func (b *Builder) OwnContribution(planet types.CelestialPoint, chart types.Chart) (int, error) {
	if err := types.ValidatePlanet(planet); err != nil {
		return 0, err
	}
	sign, err := chart.SignOf(planet)
	if err != nil {
		return 0, err
	}
	v, err := Generate(b.rules, planet, planet, sign)
	if err != nil {
		return 0, err
	}
	return v.At(sign), nil
}

// BindusAt returns the value of receiver's table at the sign target
// occupies.
func (b *Builder) BindusAt(receiver, target types.CelestialPoint, chart types.Chart) (int, error) {
	if err := types.ValidateContributor(target); err != nil {
		return 0, err
	}
	sign, err := chart.SignOf(target)
	if err != nil {
		return 0, err
	}
	points, err := b.Points(receiver, chart)
	if err != nil {
		return 0, err
	}
	return points.At(sign), nil
}
