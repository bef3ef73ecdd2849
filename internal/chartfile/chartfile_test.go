// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package chartfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

const sampleYAML = `name: Sample
ascendant: Leo
positions:
  sun: Capricorn
  moon: taurus
  mars: Scorpio
  mercury: Sagittarius
  jupiter: Pisces
  venus: Aquarius
  saturn: Libra
`

func TestParse_YAML(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Sample", c.Name)
	require.Len(t, c.Positions, types.NumContributors)
	assert.Equal(t, types.Leo, c.Positions[types.Ascendant])
	assert.Equal(t, types.Taurus, c.Positions[types.Moon], "sign names are case-insensitive")
	assert.Equal(t, types.Libra, c.Positions[types.Saturn])
}

func TestParse_JSON(t *testing.T) {
	doc := `{"name": "J", "ascendant": "Aries", "positions": {"sun": "Aries", "moon": "Cancer"}}`
	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, types.Cancer, c.Positions[types.Moon])
	assert.Len(t, c.Positions, 3)
}

func TestParse_InvalidSign(t *testing.T) {
	doc := "ascendant: Leo\npositions:\n  sun: Aris\n  moon: Ophiuchus\n"
	_, err := Parse([]byte(doc))
	require.ErrorIs(t, err, types.ErrInvalidSign)
	assert.Contains(t, err.Error(), `sun="Aris"`)
	assert.Contains(t, err.Error(), `moon="Ophiuchus"`)
}

func TestParse_MissingLeftToEngine(t *testing.T) {
	c, err := Parse([]byte("ascendant: Leo\npositions:\n  sun: Aries\n"))
	require.NoError(t, err)

	_, err = c.Positions.SignOf(types.Saturn)
	assert.ErrorIs(t, err, types.ErrMissingPosition)
}

func TestParse_UnknownKeys(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		key  string
	}{
		{"capitalised point", "ascendant: Leo\npositions:\n  sun: Aries\n  Moon: Cancer\n", "Moon"},
		{"capitalised ascendant", "Ascendant: Leo\npositions:\n  sun: Aries\n", "Ascendant"},
		{"misspelled point", "ascendant: Leo\npositions:\n  sun: Aries\n  satrun: Libra\n", "satrun"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, c.Positions)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("positions: [not, a, map"))
	assert.Error(t, err)
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := types.SameSign(types.Gemini)
	want[types.Sun] = types.Virgo

	data, err := Encode("Round", want)
	require.NoError(t, err)
	path := filepath.Join(dir, "chart.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Round", c.Name)
	assert.Equal(t, path, c.Path)
	assert.Equal(t, want, c.Positions)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
