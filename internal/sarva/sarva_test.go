// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sarva

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-ashtakavarga/internal/bhinna"
	"github.com/petar-djukic/go-ashtakavarga/internal/sodhana"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

func TestAggregate_Invariants(t *testing.T) {
	b := bhinna.NewBuilder(nil)
	r := rand.New(rand.NewPCG(29, 31))

	for i := 0; i < 100; i++ {
		chart := make(types.ChartPositions)
		for _, p := range types.Contributors {
			chart[p] = types.Sign(r.IntN(types.NumSigns))
		}

		res, err := Aggregate(b, chart)
		require.NoError(t, err)
		require.Len(t, res.Planets, types.NumPlanets)

		var sum types.BinduVector
		for _, planet := range types.Planets {
			sum = sum.Add(res.Planets[planet])
		}
		assert.Equal(t, sum, res.Points)

		for _, n := range res.Points {
			assert.GreaterOrEqual(t, n, 0)
			assert.LessOrEqual(t, n, MaxBindus)
		}
		assert.Equal(t, res.Points.Total(), res.Total)
		assert.Equal(t, b.Rules().Total(), res.Total)

		assert.Equal(t, sodhana.Trikona(res.Points), res.Trikona)
		assert.Equal(t, sodhana.Ekadhi(res.Points), res.Ekadhi)
		assert.Equal(t, sodhana.Ekadhi(res.Trikona), res.Sodhita)
	}
}

func TestAggregate_MissingPosition(t *testing.T) {
	chart := types.SameSign(types.Virgo)
	delete(chart, types.Mercury)

	_, err := Aggregate(bhinna.NewBuilder(nil), chart)
	require.ErrorIs(t, err, types.ErrMissingPosition)
	assert.Contains(t, err.Error(), "Mercury")
}

func TestSummarize(t *testing.T) {
	p, err := BuildPrastara(bhinna.NewBuilder(nil), types.SameSign(types.Aries))
	require.NoError(t, err)

	s := Summarize(p)
	assert.Equal(t, 336, s.TotalBindus)
	assert.Equal(t, types.Jupiter, s.StrongestPlanet)
	assert.Equal(t, types.Mars, s.WeakestPlanet, "Mars and Saturn tie at 39; Mars comes first")
	assert.InDelta(t, 48.0, s.AverageBindus, 1e-9)
	assert.InDelta(t, 100.0, s.Strengths[types.Jupiter].Percentage, 1e-9)
	assert.Equal(t, 48, s.PlanetTotals[types.Sun])
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 50.0, Percentage(28, 56), 1e-9)
	assert.InDelta(t, 0.0, Percentage(0, 8), 1e-9)
}
