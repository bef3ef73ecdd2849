// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package bhinna

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-ashtakavarga/internal/ruleset"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// randomChart places every contributor in a pseudo-random sign.
func randomChart(r *rand.Rand) types.ChartPositions {
	c := make(types.ChartPositions, types.NumContributors)
	for _, p := range types.Contributors {
		c[p] = types.Sign(r.IntN(types.NumSigns))
	}
	return c
}

func TestGenerate_RotatesFromContributorSign(t *testing.T) {
	// Sun<-Moon offsets are {2, 5, 9, 10}; from Leo (4) they land on
	// Libra, Aquarius, Taurus and Gemini.
	v, err := Generate(ruleset.Classical(), types.Sun, types.Moon, types.Leo)
	require.NoError(t, err)

	want := types.BinduVector{}
	want[types.Libra] = 1
	want[types.Aquarius] = 1
	want[types.Taurus] = 1
	want[types.Gemini] = 1
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("Generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_IsDeterministic(t *testing.T) {
	a, err := Generate(ruleset.Classical(), types.Venus, types.Saturn, types.Pisces)
	require.NoError(t, err)
	b, err := Generate(ruleset.Classical(), types.Venus, types.Saturn, types.Pisces)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(ruleset.Classical(), types.Ascendant, types.Sun, types.Aries)
	assert.ErrorIs(t, err, types.ErrInvalidCelestialPoint)

	_, err = Generate(ruleset.Classical(), types.Sun, types.Sun, types.Sign(12))
	assert.ErrorIs(t, err, types.ErrInvalidSign)
}

func TestBuild_SunAllInAries(t *testing.T) {
	b := NewBuilder(nil)
	got, err := b.Build(types.Sun, types.SameSign(types.Aries))
	require.NoError(t, err)

	want := types.BinduVector{3, 3, 3, 4, 2, 5, 4, 3, 5, 6, 7, 3}
	if diff := cmp.Diff(want, got.Points); diff != "" {
		t.Errorf("Sun table mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.Sun, got.Receiver)
	assert.Equal(t, 48, got.Total)
	assert.Len(t, got.Contributors, types.NumContributors)
}

func TestBuild_Invariants(t *testing.T) {
	b := NewBuilder(nil)
	r := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 200; i++ {
		chart := randomChart(r)
		for _, planet := range types.Planets {
			res, err := b.Build(planet, chart)
			require.NoError(t, err)

			var sum types.BinduVector
			for _, c := range types.Contributors {
				v := res.Contributors[c]
				for _, n := range v {
					require.Contains(t, []int{0, 1}, n)
				}
				sum = sum.Add(v)
			}
			assert.Equal(t, sum, res.Points)

			for _, n := range res.Points {
				assert.GreaterOrEqual(t, n, 0)
				assert.LessOrEqual(t, n, MaxBindus)
			}
			assert.Equal(t, res.Points.Total(), res.Total)

			count, err := b.Rules().Count(planet)
			require.NoError(t, err)
			assert.Equal(t, count, res.Total, "every offset lands on exactly one sign")
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	b := NewBuilder(nil)

	_, err := b.Build(types.Ascendant, types.SameSign(types.Aries))
	assert.ErrorIs(t, err, types.ErrInvalidCelestialPoint)

	chart := types.SameSign(types.Aries)
	delete(chart, types.Saturn)
	_, err = b.Build(types.Sun, chart)
	require.ErrorIs(t, err, types.ErrMissingPosition)
	assert.Contains(t, err.Error(), "Saturn")

	chart = types.SameSign(types.Aries)
	delete(chart, types.Ascendant)
	_, err = b.Build(types.Moon, chart)
	assert.ErrorIs(t, err, types.ErrMissingPosition)
}

func TestRekha_ComplementsPoints(t *testing.T) {
	b := NewBuilder(nil)
	chart := types.SameSign(types.Aries)

	points, err := b.Points(types.Sun, chart)
	require.NoError(t, err)
	rekha, err := b.Rekha(types.Sun, chart)
	require.NoError(t, err)

	for i := range points {
		assert.Equal(t, MaxBindus, points[i]+rekha[i])
	}
}

func TestOwnContribution(t *testing.T) {
	tests := []struct {
		planet types.CelestialPoint
		want   int
	}{
		{types.Sun, 1},    // offset 0 present
		{types.Moon, 1},   // offset 0 present
		{types.Saturn, 0}, // {2, 4, 5, 10}
		{types.Venus, 1},
	}

	b := NewBuilder(nil)
	for _, tt := range tests {
		t.Run(string(tt.planet), func(t *testing.T) {
			got, err := b.OwnContribution(tt.planet, types.SameSign(types.Cancer))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBindusAt(t *testing.T) {
	b := NewBuilder(nil)
	chart := types.SameSign(types.Aries)
	chart[types.Moon] = types.Capricorn

	points, err := b.Points(types.Jupiter, chart)
	require.NoError(t, err)

	got, err := b.BindusAt(types.Jupiter, types.Moon, chart)
	require.NoError(t, err)
	assert.Equal(t, points.At(types.Capricorn), got)

	_, err = b.BindusAt(types.Jupiter, types.CelestialPoint("Rahu"), chart)
	assert.ErrorIs(t, err, types.ErrInvalidCelestialPoint)
}
