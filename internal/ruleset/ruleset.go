// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ruleset holds the Ashtakavarga contribution table: for every
// (receiver, contributor) pair, the sign offsets at which the contributor
// awards a bindu.
package ruleset

import (
	"fmt"
	"sort"

	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// Ruleset is an immutable contribution table. It is safe for concurrent
// use; nothing mutates it after construction.
type Ruleset struct {
	offsets map[Pair][]int
	counts  map[types.CelestialPoint]int
	total   int
}

var classical = mustNew(classicalOffsets)

// Classical returns the process-wide classical table.
func Classical() *Ruleset {
	return classical
}

// New builds a Ruleset from entries. It requires exactly one entry per
// (planet, contributor) pair, offsets in [0,11], and no duplicate offsets
// within an entry. The input is copied.
func New(entries map[Pair][]int) (*Ruleset, error) {
	want := types.NumPlanets * types.NumContributors
	if len(entries) != want {
		return nil, fmt.Errorf("ruleset has %d entries, want %d", len(entries), want)
	}

	rs := &Ruleset{
		offsets: make(map[Pair][]int, want),
		counts:  make(map[types.CelestialPoint]int, types.NumPlanets),
	}
	for pair, offs := range entries {
		if err := types.ValidatePlanet(pair.Receiver); err != nil {
			return nil, fmt.Errorf("ruleset entry %s<-%s: %w", pair.Receiver, pair.Contributor, err)
		}
		if err := types.ValidateContributor(pair.Contributor); err != nil {
			return nil, fmt.Errorf("ruleset entry %s<-%s: %w", pair.Receiver, pair.Contributor, err)
		}

		seen := make(map[int]bool, len(offs))
		cp := make([]int, 0, len(offs))
		for _, o := range offs {
			if o < 0 || o >= types.NumSigns {
				return nil, fmt.Errorf("ruleset entry %s<-%s: offset %d outside 0-11", pair.Receiver, pair.Contributor, o)
			}
			if seen[o] {
				return nil, fmt.Errorf("ruleset entry %s<-%s: duplicate offset %d", pair.Receiver, pair.Contributor, o)
			}
			seen[o] = true
			cp = append(cp, o)
		}
		sort.Ints(cp)

		rs.offsets[pair] = cp
		rs.counts[pair.Receiver] += len(cp)
		rs.total += len(cp)
	}
	return rs, nil
}

func mustNew(entries map[Pair][]int) *Ruleset {
	rs, err := New(entries)
	if err != nil {
		panic(err)
	}
	return rs
}

// Offsets returns the benefic offsets of contributor in receiver's table,
// in ascending order. The returned slice is a copy.
func (r *Ruleset) Offsets(receiver, contributor types.CelestialPoint) ([]int, error) {
	offs, err := r.lookup(receiver, contributor)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), offs...), nil
}

// Count returns the number of bindus receiver collects in any chart: the
// size of all its offset sets combined.
func (r *Ruleset) Count(receiver types.CelestialPoint) (int, error) {
	if err := types.ValidatePlanet(receiver); err != nil {
		return 0, err
	}
	return r.counts[receiver], nil
}

// Total returns the Sarvashtakavarga total every chart produces under this
// table.
func (r *Ruleset) Total() int {
	return r.total
}

func (r *Ruleset) lookup(receiver, contributor types.CelestialPoint) ([]int, error) {
	if err := types.ValidatePlanet(receiver); err != nil {
		return nil, err
	}
	if err := types.ValidateContributor(contributor); err != nil {
		return nil, err
	}
	return r.offsets[Pair{Receiver: receiver, Contributor: contributor}], nil
}

// Entries returns a deep copy of the table, suitable for building a
// variant with New.
func (r *Ruleset) Entries() map[Pair][]int {
	out := make(map[Pair][]int, len(r.offsets))
	for pair, offs := range r.offsets {
		out[pair] = append([]int(nil), offs...)
	}
	return out
}
