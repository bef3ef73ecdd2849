// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// sampleChart is an arbitrary but fixed natal chart.
func sampleChart() types.ChartPositions {
	return types.ChartPositions{
		types.Sun:       types.Capricorn,
		types.Moon:      types.Taurus,
		types.Mars:      types.Scorpio,
		types.Mercury:   types.Sagittarius,
		types.Jupiter:   types.Pisces,
		types.Venus:     types.Aquarius,
		types.Saturn:    types.Libra,
		types.Ascendant: types.Leo,
	}
}

func TestAnalyze_Consistency(t *testing.T) {
	e := New(Deps{})
	chart := sampleChart()

	a, err := e.Analyze(chart)
	require.NoError(t, err)

	assert.Equal(t, types.Leo, a.Ascendant)
	require.Len(t, a.Bhinna, types.NumPlanets)
	require.Len(t, a.Kaksha, types.NumPlanets)
	assert.Equal(t, 336, a.Sarva.Total)
	assert.Equal(t, a.Sarva.Total, a.SarvaHouses.Total())
	assert.Equal(t, a.Sarva.Points[types.Leo], a.SarvaHouses[0])

	for planet, r := range a.Bhinna {
		assert.Equal(t, r.Points, a.Sarva.Planets[planet])
		assert.Equal(t, r.Total, a.BhinnaHouses[planet].Total())
		assert.Equal(t, r.Total, a.Summary.PlanetTotals[planet])

		kb, err := e.KakshaBala(planet, chart)
		require.NoError(t, err)
		assert.Equal(t, kb, a.Kaksha[planet])
	}

	for house := 1; house <= types.NumHouses; house++ {
		hs, err := e.StrengthInHouse(house, chart, a.Ascendant)
		require.NoError(t, err)
		want, err := a.SarvaHouses.At(house)
		require.NoError(t, err)
		assert.Equal(t, want, hs.TotalBindus)
	}
}

func TestAnalyze_MissingAscendant(t *testing.T) {
	chart := sampleChart()
	delete(chart, types.Ascendant)

	_, err := New(Deps{}).Analyze(chart)
	assert.ErrorIs(t, err, types.ErrMissingPosition)
}

func TestEngine_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := New(Deps{Logger: zap.New(core)})

	_, err := e.Bhinnashtakavarga(types.Sun, types.SameSign(types.Aries))
	require.NoError(t, err)

	entries := logs.FilterMessage("bhinnashtakavarga").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ashtakavarga", entries[0].LoggerName)
	assert.Equal(t, int64(48), entries[0].ContextMap()["total"])
}

func TestEngine_ReductionsAndHouses(t *testing.T) {
	e := New(Deps{})
	sav, err := e.Sarvashtakavarga(sampleChart())
	require.NoError(t, err)

	assert.Equal(t, sav.Trikona, e.Trikona(sav.Points))
	assert.Equal(t, sav.Ekadhi, e.Ekadhi(sav.Points))
	assert.Equal(t, e.Ekadhi(e.Trikona(sav.Points)), e.Sodhita(sav.Points))

	_, err = e.ToHouses(sav.Points, types.Sign(12))
	assert.ErrorIs(t, err, types.ErrInvalidHouse)
}

func TestEngine_ConcurrentCallers(t *testing.T) {
	e := New(Deps{})
	want, err := e.Analyze(sampleChart())
	require.NoError(t, err)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(8)
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			got, err := e.Analyze(sampleChart())
			if err != nil {
				return err
			}
			if got.Sarva.Points != want.Sarva.Points {
				t.Errorf("concurrent analysis diverged: %v != %v", got.Sarva.Points, want.Sarva.Points)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
