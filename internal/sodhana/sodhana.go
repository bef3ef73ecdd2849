// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sodhana implements the classical reductions of a
// Sarvashtakavarga table. Vectors are arrays, so every function works on
// its own copy and returns a new vector.
package sodhana

import "github.com/petar-djukic/go-ashtakavarga/pkg/types"

const (
	numTrines    = 4 // {i, i+4, i+8}
	numOpposites = 6 // {i, i+6}
)

// Trikona removes the common minimum of each trine group
// (Aries-Leo-Sagittarius, Taurus-Virgo-Capricorn, Gemini-Libra-Aquarius,
// Cancer-Scorpio-Pisces). One pass, not iterated.
func Trikona(v types.BinduVector) types.BinduVector {
	for i := 0; i < numTrines; i++ {
		a, b, c := i, i+4, i+8
		m := min(v[a], v[b], v[c])
		v[a] -= m
		v[b] -= m
		v[c] -= m
	}
	return v
}

// Ekadhi removes the common minimum of each pair of opposite signs.
func Ekadhi(v types.BinduVector) types.BinduVector {
	for i := 0; i < numOpposites; i++ {
		a, b := i, i+6
		m := min(v[a], v[b])
		v[a] -= m
		v[b] -= m
	}
	return v
}

// Sodhita applies Trikona and then Ekadhi to its output. The order matters;
// the reverse composition gives a different table.
func Sodhita(v types.BinduVector) types.BinduVector {
	return Ekadhi(Trikona(v))
}

// TrineGroups returns the four trine groups as sign triples.
func TrineGroups() [numTrines][3]types.Sign {
	var g [numTrines][3]types.Sign
	for i := range g {
		g[i] = [3]types.Sign{types.Sign(i), types.Sign(i + 4), types.Sign(i + 8)}
	}
	return g
}

// OppositePairs returns the six opposition pairs.
func OppositePairs() [numOpposites][2]types.Sign {
	var p [numOpposites][2]types.Sign
	for i := range p {
		p[i] = [2]types.Sign{types.Sign(i), types.Sign(i + 6)}
	}
	return p
}
