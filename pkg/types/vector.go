// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "fmt"

// NumHouses is the number of houses in a chart.
const NumHouses = 12

// BinduVector holds one score per sign, indexed by sign. It is an array,
// so assignment and function arguments copy it.
type BinduVector [NumSigns]int

// At returns the score of sign s. s must be valid.
func (v BinduVector) At(s Sign) int {
	return v[s]
}

// Total returns the sum of all twelve slots.
func (v BinduVector) Total() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// Add returns the elementwise sum of v and other.
func (v BinduVector) Add(other BinduVector) BinduVector {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

// Complement returns max - v per slot. With max 8 this turns a
// Bhinnashtakavarga bindu table into its rekha table.
func (v BinduVector) Complement(max int) BinduVector {
	for i := range v {
		v[i] = max - v[i]
	}
	return v
}

// BySign returns the scores keyed by sign name.
func (v BinduVector) BySign() map[string]int {
	out := make(map[string]int, NumSigns)
	for _, s := range Signs {
		out[s.String()] = v[s]
	}
	return out
}

// HouseVector holds one score per house. Index 0 is house 1.
type HouseVector [NumHouses]int

// At returns the score of house (1-12).
func (h HouseVector) At(house int) (int, error) {
	if house < 1 || house > NumHouses {
		return 0, fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidHouse, house, NumHouses)
	}
	return h[house-1], nil
}

// Total returns the sum of all twelve houses.
func (h HouseVector) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}
