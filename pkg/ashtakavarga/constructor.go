// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ashtakavarga

import (
	"github.com/petar-djukic/go-ashtakavarga/internal/engine"
	"github.com/petar-djukic/go-ashtakavarga/internal/ruleset"
)

// New returns an Engine over the classical contribution table.
func New(cfg Config) Engine {
	return engine.New(engine.Deps{
		Rules:  ruleset.Classical(),
		Logger: cfg.Logger,
	})
}
