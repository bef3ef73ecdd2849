// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package engine wires the Ashtakavarga packages together behind one
// type. Every method is a pure computation over its arguments; an Engine
// may be shared freely between goroutines.
package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/petar-djukic/go-ashtakavarga/internal/bhinna"
	"github.com/petar-djukic/go-ashtakavarga/internal/houses"
	"github.com/petar-djukic/go-ashtakavarga/internal/kaksha"
	"github.com/petar-djukic/go-ashtakavarga/internal/ruleset"
	"github.com/petar-djukic/go-ashtakavarga/internal/sarva"
	"github.com/petar-djukic/go-ashtakavarga/internal/sodhana"
	"github.com/petar-djukic/go-ashtakavarga/internal/transit"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// Deps holds injected dependencies for the engine.
type Deps struct {
	Rules  *ruleset.Ruleset // nil selects the classical table
	Logger *zap.Logger      // nil disables logging
}

// Engine computes Ashtakavarga results.
type Engine struct {
	builder *bhinna.Builder
	log     *zap.Logger
}

// New creates an Engine with the given dependencies.
func New(deps Deps) *Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		builder: bhinna.NewBuilder(deps.Rules),
		log:     log.Named("ashtakavarga"),
	}
}

// Offsets exposes the contribution table.
func (e *Engine) Offsets(receiver, contributor types.CelestialPoint) ([]int, error) {
	return e.builder.Rules().Offsets(receiver, contributor)
}

// Contribution returns one contributor's binary vector in receiver's table.
func (e *Engine) Contribution(receiver, contributor types.CelestialPoint, sign types.Sign) (types.BinduVector, error) {
	return bhinna.Generate(e.builder.Rules(), receiver, contributor, sign)
}

// Bhinnashtakavarga builds planet's table.
func (e *Engine) Bhinnashtakavarga(planet types.CelestialPoint, chart types.Chart) (*types.BhinnaResult, error) {
	r, err := e.builder.Build(planet, chart)
	if err != nil {
		e.log.Debug("bhinnashtakavarga failed", zap.String("planet", string(planet)), zap.Error(err))
		return nil, err
	}
	e.log.Debug("bhinnashtakavarga", zap.String("planet", string(planet)), zap.Int("total", r.Total))
	return r, nil
}

// Rekha returns planet's malefic table.
func (e *Engine) Rekha(planet types.CelestialPoint, chart types.Chart) (types.BinduVector, error) {
	return e.builder.Rekha(planet, chart)
}

// OwnContribution reports whether planet gives itself a bindu where it stands.
func (e *Engine) OwnContribution(planet types.CelestialPoint, chart types.Chart) (int, error) {
	return e.builder.OwnContribution(planet, chart)
}

// BindusAt reads receiver's table at target's sign.
func (e *Engine) BindusAt(receiver, target types.CelestialPoint, chart types.Chart) (int, error) {
	return e.builder.BindusAt(receiver, target, chart)
}

// Sarvashtakavarga builds the combined table and its reductions.
func (e *Engine) Sarvashtakavarga(chart types.Chart) (*types.SarvaResult, error) {
	r, err := sarva.Aggregate(e.builder, chart)
	if err != nil {
		e.log.Debug("sarvashtakavarga failed", zap.Error(err))
		return nil, err
	}
	e.log.Debug("sarvashtakavarga", zap.Int("total", r.Total), zap.Int("sodhitaTotal", r.Sodhita.Total()))
	return r, nil
}

// Prastara builds all seven tables with their breakdowns.
func (e *Engine) Prastara(chart types.Chart) (*types.Prastara, error) {
	return sarva.BuildPrastara(e.builder, chart)
}

// Trikona applies the triangular reduction.
func (e *Engine) Trikona(v types.BinduVector) types.BinduVector {
	return sodhana.Trikona(v)
}

// Ekadhi applies the oppositional reduction.
func (e *Engine) Ekadhi(v types.BinduVector) types.BinduVector {
	return sodhana.Ekadhi(v)
}

// Sodhita applies Trikona then Ekadhi.
func (e *Engine) Sodhita(v types.BinduVector) types.BinduVector {
	return sodhana.Sodhita(v)
}

// ToHouses re-indexes v by house from ascendant.
func (e *Engine) ToHouses(v types.BinduVector, ascendant types.Sign) (types.HouseVector, error) {
	return houses.ToHouses(v, ascendant)
}

// StrengthInHouse sums the seven tables at house's sign.
func (e *Engine) StrengthInHouse(house int, chart types.Chart, ascendant types.Sign) (*types.HouseStrength, error) {
	hs, err := houses.StrengthInHouse(e.builder, house, chart, ascendant)
	if err != nil {
		return nil, err
	}
	e.log.Debug("house strength",
		zap.Int("house", house),
		zap.Stringer("sign", hs.Sign),
		zap.Int("bindus", hs.TotalBindus))
	return hs, nil
}

// KakshaBala returns planet's zonal strength.
func (e *Engine) KakshaBala(planet types.CelestialPoint, chart types.Chart) (*types.KakshaBala, error) {
	kb, err := kaksha.Calculate(e.builder, planet, chart)
	if err != nil {
		return nil, err
	}
	e.log.Debug("kaksha bala", zap.String("planet", string(planet)), zap.Int("value", kb.Value))
	return kb, nil
}

// KakshaBalaAtSign sums all seven tables at sign.
func (e *Engine) KakshaBalaAtSign(sign types.Sign, chart types.Chart) (*types.SignKakshaBala, error) {
	return kaksha.AtSign(e.builder, sign, chart)
}

// Transits scores current positions against natal tables.
func (e *Engine) Transits(natal, current types.Chart) (map[types.CelestialPoint]*types.PlanetTransit, error) {
	return transit.Analyze(e.builder, natal, current)
}

// Vedhas reports transit obstructions in current.
func (e *Engine) Vedhas(current types.Chart) (map[types.CelestialPoint]types.Vedha, error) {
	return transit.Vedhas(current)
}

// DashaLord scores a period lord in its own natal table.
func (e *Engine) DashaLord(lord types.CelestialPoint, natal types.Chart) (types.TransitStrength, error) {
	return transit.DashaLord(e.builder, lord, natal)
}

// Analyze computes every table, reduction, house mapping, Kaksha Bala and
// the summary for chart.
func (e *Engine) Analyze(chart types.Chart) (*types.Analysis, error) {
	asc, err := types.AscendantOf(chart)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}

	prastara, err := sarva.BuildPrastara(e.builder, chart)
	if err != nil {
		return nil, err
	}

	a := &types.Analysis{
		Ascendant:    asc,
		Bhinna:       prastara.Tables,
		BhinnaHouses: make(map[types.CelestialPoint]types.HouseVector, types.NumPlanets),
		Sarva:        sarva.FromPrastara(prastara),
		Summary:      sarva.Summarize(prastara),
	}
	for planet, r := range prastara.Tables {
		if a.BhinnaHouses[planet], err = houses.ToHouses(r.Points, asc); err != nil {
			return nil, err
		}
	}
	if a.SarvaHouses, err = houses.ToHouses(a.Sarva.Points, asc); err != nil {
		return nil, err
	}
	if a.Kaksha, err = kaksha.FromPrastara(prastara, chart); err != nil {
		return nil, err
	}

	e.log.Debug("analysis complete",
		zap.Stringer("ascendant", asc),
		zap.Int("total", a.Sarva.Total),
		zap.String("strongest", string(a.Summary.StrongestPlanet)))
	return a, nil
}
