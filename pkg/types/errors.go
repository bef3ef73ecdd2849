// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import "errors"

// Input errors. All of them are local to a single call and never transient.
var (
	ErrInvalidCelestialPoint = errors.New("invalid celestial point")
	ErrInvalidHouse          = errors.New("invalid house")
	ErrMissingPosition       = errors.New("missing position")
	ErrInvalidSign           = errors.New("invalid sign")
)
