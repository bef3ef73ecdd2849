// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Chart supplies the zodiac sign of each point at the chart's reference
// instant. It is implemented by the ephemeris or chart collaborator; the
// engine only reads it.
type Chart interface {
	SignOf(p CelestialPoint) (Sign, error)
}

// ChartPositions is the plain in-memory Chart: a sign per point, with the
// Ascendant stored under the Ascendant key.
type ChartPositions map[CelestialPoint]Sign

// SignOf returns the sign of p, or ErrMissingPosition.
func (c ChartPositions) SignOf(p CelestialPoint) (Sign, error) {
	s, ok := c[p]
	if !ok {
		return 0, fmt.Errorf("%w for %s", ErrMissingPosition, p)
	}
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %s placed in %d", ErrInvalidSign, p, int(s))
	}
	return s, nil
}

// AscendantSign returns the sign rising at the chart's reference instant.
func (c ChartPositions) AscendantSign() (Sign, error) {
	return c.SignOf(Ascendant)
}

// SameSign places every contributor in sign s. Useful as a reference chart.
func SameSign(s Sign) ChartPositions {
	c := make(ChartPositions, NumContributors)
	for _, p := range Contributors {
		c[p] = s
	}
	return c
}

// AscendantOf resolves the Ascendant's sign from any Chart.
func AscendantOf(c Chart) (Sign, error) {
	return c.SignOf(Ascendant)
}
