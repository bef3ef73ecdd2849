// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ashtakavarga defines the public interface for go-ashtakavarga,
// a library computing the Ashtakavarga strength tables of Vedic astrology.
//
// Chart positions come from the caller; the library computes the per-planet
// (Bhinnashtakavarga) and combined (Sarvashtakavarga) bindu tables, their
// Trikona and Ekadhi reductions, house mappings, Kaksha Bala, and transit
// scores. All results are plain numbers.
package ashtakavarga

import (
	"go.uber.org/zap"

	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// Error types for the Ashtakavarga API.
var (
	ErrInvalidCelestialPoint = types.ErrInvalidCelestialPoint
	ErrInvalidHouse          = types.ErrInvalidHouse
	ErrMissingPosition       = types.ErrMissingPosition
	ErrInvalidSign           = types.ErrInvalidSign
)

// Config configures an Engine.
type Config struct {
	Logger *zap.Logger // Debug-level computation log (nil = silent)
}

// Engine computes Ashtakavarga results. Implementations are safe for
// concurrent use.
type Engine interface {
	// Offsets returns the benefic sign offsets contributor grants in
	// receiver's table.
	Offsets(receiver, contributor types.CelestialPoint) ([]int, error)

	// Contribution returns contributor's binary vector in receiver's table
	// when the contributor occupies sign.
	Contribution(receiver, contributor types.CelestialPoint, sign types.Sign) (types.BinduVector, error)

	// Bhinnashtakavarga builds one planet's table.
	Bhinnashtakavarga(planet types.CelestialPoint, chart types.Chart) (*types.BhinnaResult, error)

	// Rekha returns 8 minus the planet's bindus in each sign.
	Rekha(planet types.CelestialPoint, chart types.Chart) (types.BinduVector, error)

	// OwnContribution returns the bindu (0 or 1) planet gives itself in
	// its own sign.
	OwnContribution(planet types.CelestialPoint, chart types.Chart) (int, error)

	// BindusAt reads receiver's table at the sign target occupies.
	BindusAt(receiver, target types.CelestialPoint, chart types.Chart) (int, error)

	// Sarvashtakavarga sums the seven tables and applies the reductions.
	Sarvashtakavarga(chart types.Chart) (*types.SarvaResult, error)

	// Prastara returns every planet's table with its contributor breakdown.
	Prastara(chart types.Chart) (*types.Prastara, error)

	// Trikona subtracts each trine group's minimum from its three signs.
	Trikona(v types.BinduVector) types.BinduVector

	// Ekadhi subtracts each opposite pair's minimum from both signs.
	Ekadhi(v types.BinduVector) types.BinduVector

	// Sodhita applies Trikona first, then Ekadhi to its output.
	Sodhita(v types.BinduVector) types.BinduVector

	// ToHouses re-indexes a sign vector by house from ascendant.
	ToHouses(v types.BinduVector, ascendant types.Sign) (types.HouseVector, error)

	// StrengthInHouse sums the seven tables at the sign of house (1-12).
	StrengthInHouse(house int, chart types.Chart, ascendant types.Sign) (*types.HouseStrength, error)

	// KakshaBala sums the other six planets' tables at planet's sign.
	KakshaBala(planet types.CelestialPoint, chart types.Chart) (*types.KakshaBala, error)

	// KakshaBalaAtSign sums all seven tables at sign.
	KakshaBalaAtSign(sign types.Sign, chart types.Chart) (*types.SignKakshaBala, error)

	// Transits scores each planet's position in current against its
	// table and the Sarvashtakavarga in natal. natal needs the Ascendant.
	Transits(natal, current types.Chart) (map[types.CelestialPoint]*types.PlanetTransit, error)

	// Vedhas lists planets transiting the sign opposite each planet.
	Vedhas(current types.Chart) (map[types.CelestialPoint]types.Vedha, error)

	// DashaLord scores a period lord by its own table at its natal sign.
	DashaLord(lord types.CelestialPoint, natal types.Chart) (types.TransitStrength, error)

	// Analyze computes everything above for one chart.
	Analyze(chart types.Chart) (*types.Analysis, error)
}
