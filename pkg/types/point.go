// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"strings"
)

// CelestialPoint identifies a body that takes part in Ashtakavarga scoring.
// The seven classical planets receive and contribute bindus; the Ascendant
// only contributes.
type CelestialPoint string

const (
	Sun       CelestialPoint = "Sun"
	Moon      CelestialPoint = "Moon"
	Mars      CelestialPoint = "Mars"
	Mercury   CelestialPoint = "Mercury"
	Jupiter   CelestialPoint = "Jupiter"
	Venus     CelestialPoint = "Venus"
	Saturn    CelestialPoint = "Saturn"
	Ascendant CelestialPoint = "Ascendant"
)

const (
	NumPlanets      = 7 // Receivers
	NumContributors = 8 // Planets plus the Ascendant
)

// Planets lists the receivers in canonical order.
var Planets = [NumPlanets]CelestialPoint{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// Contributors lists every contributing point in canonical order.
var Contributors = [NumContributors]CelestialPoint{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Ascendant}

// IsPlanet reports whether p is one of the seven receivers.
func (p CelestialPoint) IsPlanet() bool {
	for _, planet := range Planets {
		if p == planet {
			return true
		}
	}
	return false
}

// IsContributor reports whether p is one of the eight contributors.
func (p CelestialPoint) IsContributor() bool {
	return p == Ascendant || p.IsPlanet()
}

// ValidatePlanet returns ErrInvalidCelestialPoint unless p is a receiver.
func ValidatePlanet(p CelestialPoint) error {
	if !p.IsPlanet() {
		return fmt.Errorf("%w: %q is not an Ashtakavarga planet", ErrInvalidCelestialPoint, string(p))
	}
	return nil
}

// ValidateContributor returns ErrInvalidCelestialPoint unless p is a
// contributor.
func ValidateContributor(p CelestialPoint) error {
	if !p.IsContributor() {
		return fmt.Errorf("%w: %q is not an Ashtakavarga contributor", ErrInvalidCelestialPoint, string(p))
	}
	return nil
}

// ParsePoint resolves a point name case-insensitively. "Asc" and "Lagna"
// are accepted for the Ascendant.
func ParsePoint(name string) (CelestialPoint, error) {
	trimmed := strings.TrimSpace(name)
	switch strings.ToLower(trimmed) {
	case "asc", "lagna":
		return Ascendant, nil
	}
	for _, p := range Contributors {
		if strings.EqualFold(string(p), trimmed) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCelestialPoint, name)
}
