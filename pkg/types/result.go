// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// BhinnaResult is one planet's Bhinnashtakavarga: the bindus it receives
// in each sign, summed over the eight contributors.
type BhinnaResult struct {
	Receiver     CelestialPoint                 `json:"receiver"`
	Points       BinduVector                    `json:"points"`       // 0-8 per sign
	Contributors map[CelestialPoint]BinduVector `json:"contributors"` // 0-1 per sign, one vector per contributor
	Total        int                            `json:"total"`
}

// SarvaResult is the Sarvashtakavarga: the seven planets' tables summed,
// with the classical reductions applied.
type SarvaResult struct {
	Points  BinduVector                    `json:"points"`  // 0-56 per sign
	Planets map[CelestialPoint]BinduVector `json:"planets"` // each planet's Bhinnashtakavarga points
	Total   int                            `json:"total"`
	Trikona BinduVector                    `json:"trikona"` // Trikona sodhana of Points
	Ekadhi  BinduVector                    `json:"ekadhi"`  // Ekadhi sodhana of Points
	Sodhita BinduVector                    `json:"sodhita"` // Ekadhi sodhana of Trikona
}

// Prastara is the detailed table: every planet's Bhinnashtakavarga with its
// per-contributor breakdown.
type Prastara struct {
	Tables map[CelestialPoint]*BhinnaResult `json:"tables"`
}

// HouseStrength is the Sarvashtakavarga value of one house.
type HouseStrength struct {
	House       int                    `json:"house"`
	Sign        Sign                   `json:"sign"`
	TotalBindus int                    `json:"totalBindus"` // 0-56
	Planets     map[CelestialPoint]int `json:"planets"`
	Percentage  float64                `json:"percentage"` // of 56
}

// KakshaBala is the zonal strength of a planet, taken from the other
// planets' Bhinnashtakavarga tables at its sign.
type KakshaBala struct {
	Planet        CelestialPoint         `json:"planet"`
	Sign          Sign                   `json:"sign"`
	Value         int                    `json:"value"`
	Contributions map[CelestialPoint]int `json:"contributions"`
	Percentage    float64                `json:"percentage"`
}

// SignKakshaBala sums all seven planets' tables at one sign.
type SignKakshaBala struct {
	Sign          Sign                   `json:"sign"`
	Value         int                    `json:"value"`
	Contributions map[CelestialPoint]int `json:"contributions"`
	Percentage    float64                `json:"percentage"` // of 56
}

// PlanetStrength is a planet's Bhinnashtakavarga total as a share of 56.
type PlanetStrength struct {
	TotalBindus int     `json:"totalBindus"`
	Percentage  float64 `json:"percentage"`
}

// Summary condenses the seven Bhinnashtakavarga totals.
type Summary struct {
	TotalBindus     int                               `json:"totalBindus"`
	PlanetTotals    map[CelestialPoint]int            `json:"planetTotals"`
	AverageBindus   float64                           `json:"averageBindus"`
	StrongestPlanet CelestialPoint                    `json:"strongestPlanet"`
	WeakestPlanet   CelestialPoint                    `json:"weakestPlanet"`
	Strengths       map[CelestialPoint]PlanetStrength `json:"strengths"`
}

// TransitStrength scores a planet's transit sign against its natal table.
type TransitStrength struct {
	Sign       Sign    `json:"sign"`
	Bindus     int     `json:"bindus"`     // 0-8
	Percentage float64 `json:"percentage"` // of 8
}

// PlanetTransit is the transit picture of one planet.
type PlanetTransit struct {
	Planet          CelestialPoint  `json:"planet"`
	Strength        TransitStrength `json:"strength"`
	House           int             `json:"house"`           // natal house of the transit sign, 1-12
	SarvaBindus     int             `json:"sarvaBindus"`     // natal Sarvashtakavarga at the transit sign, 0-56
	SarvaPercentage float64         `json:"sarvaPercentage"` // of 56
	BestPositions   []Sign          `json:"bestPositions"`   // most bindus first
}

// Vedha records the obstruction of a transit by planets in the opposite sign.
type Vedha struct {
	Planet      CelestialPoint   `json:"planet"`
	TransitSign Sign             `json:"transitSign"`
	VedhaSign   Sign             `json:"vedhaSign"`
	Obstructors []CelestialPoint `json:"obstructors"`
}

// HasVedha reports whether any planet obstructs the transit.
func (v Vedha) HasVedha() bool {
	return len(v.Obstructors) > 0
}

// Analysis gathers every Ashtakavarga result for one chart.
type Analysis struct {
	Ascendant    Sign                             `json:"ascendant"`
	Bhinna       map[CelestialPoint]*BhinnaResult `json:"bhinnashtakavarga"`
	BhinnaHouses map[CelestialPoint]HouseVector   `json:"bhinnashtakavargaHouses"`
	Sarva        *SarvaResult                     `json:"sarvashtakavarga"`
	SarvaHouses  HouseVector                      `json:"sarvashtakavargaHouses"`
	Kaksha       map[CelestialPoint]*KakshaBala   `json:"kakshaBala"`
	Summary      *Summary                         `json:"summary"`
}
