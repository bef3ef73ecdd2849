// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package bhinna

import (
	"fmt"

	"github.com/petar-djukic/go-ashtakavarga/internal/ruleset"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// Generate returns the binary contribution vector of contributor, placed in
// contributorSign, to receiver's table: slot (contributorSign + o) mod 12 is
// 1 for every benefic offset o, all other slots are 0.
func Generate(rules *ruleset.Ruleset, receiver, contributor types.CelestialPoint, contributorSign types.Sign) (types.BinduVector, error) {
	var v types.BinduVector
	if !contributorSign.Valid() {
		return v, fmt.Errorf("%w: %s placed in %d", types.ErrInvalidSign, contributor, int(contributorSign))
	}

	offsets, err := rules.Offsets(receiver, contributor)
	if err != nil {
		return v, err
	}
	for _, o := range offsets {
		v[contributorSign.Add(o)] = 1
	}
	return v, nil
}
