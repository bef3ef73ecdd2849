// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ruleset

import "github.com/petar-djukic/go-ashtakavarga/pkg/types"

// Pair keys a ruleset entry.
type Pair struct {
	Receiver    types.CelestialPoint
	Contributor types.CelestialPoint
}

// classicalOffsets holds the benefic offsets counted from the contributor's
// sign, 0-based (offset 0 is the contributor's own sign, 11 the twelfth).
// Moon<-Ascendant, Jupiter<-Sun and Venus<-Venus carry the corrected
// reference values.
var classicalOffsets = map[Pair][]int{
	{types.Sun, types.Sun}:       {0, 1, 3, 6, 7, 8, 9, 10},
	{types.Sun, types.Moon}:      {2, 5, 9, 10},
	{types.Sun, types.Mars}:      {0, 1, 3, 6, 7, 8, 9, 10},
	{types.Sun, types.Mercury}:   {2, 4, 5, 8, 9, 10, 11},
	{types.Sun, types.Jupiter}:   {4, 5, 8, 10},
	{types.Sun, types.Venus}:     {5, 6, 11},
	{types.Sun, types.Saturn}:    {0, 1, 3, 6, 7, 8, 9, 10},
	{types.Sun, types.Ascendant}: {2, 3, 5, 9, 10, 11},

	{types.Moon, types.Sun}:       {2, 5, 6, 7, 9, 10},
	{types.Moon, types.Moon}:      {0, 2, 5, 6, 9, 10},
	{types.Moon, types.Mars}:      {1, 2, 4, 5, 8, 9, 10},
	{types.Moon, types.Mercury}:   {0, 2, 3, 4, 6, 7, 9, 10},
	{types.Moon, types.Jupiter}:   {0, 3, 6, 7, 9, 10},
	{types.Moon, types.Venus}:     {2, 3, 4, 6, 8, 9, 10},
	{types.Moon, types.Saturn}:    {2, 4, 5, 10},
	{types.Moon, types.Ascendant}: {2, 5, 9, 10, 11},

	{types.Mars, types.Sun}:       {2, 4, 5, 9, 10},
	{types.Mars, types.Moon}:      {2, 5, 10},
	{types.Mars, types.Mars}:      {0, 1, 3, 6, 7, 9, 10},
	{types.Mars, types.Mercury}:   {2, 4, 5, 10},
	{types.Mars, types.Jupiter}:   {5, 9, 10, 11},
	{types.Mars, types.Venus}:     {5, 7, 10, 11},
	{types.Mars, types.Saturn}:    {0, 3, 6, 7, 8, 9, 10},
	{types.Mars, types.Ascendant}: {0, 2, 5, 9, 10},

	{types.Mercury, types.Sun}:       {4, 5, 8, 10, 11},
	{types.Mercury, types.Moon}:      {1, 3, 5, 7, 9, 10},
	{types.Mercury, types.Mars}:      {0, 1, 3, 6, 7, 8, 9, 10},
	{types.Mercury, types.Mercury}:   {0, 2, 4, 5, 8, 9, 10, 11},
	{types.Mercury, types.Jupiter}:   {5, 7, 10, 11},
	{types.Mercury, types.Venus}:     {0, 1, 2, 3, 4, 7, 8, 10},
	{types.Mercury, types.Saturn}:    {0, 1, 3, 6, 7, 8, 9, 10},
	{types.Mercury, types.Ascendant}: {0, 1, 3, 5, 7, 9, 10},

	{types.Jupiter, types.Sun}:       {0, 1, 2, 3, 6, 7, 8, 10},
	{types.Jupiter, types.Moon}:      {1, 4, 6, 8, 10},
	{types.Jupiter, types.Mars}:      {0, 1, 3, 6, 7, 9, 10},
	{types.Jupiter, types.Mercury}:   {0, 1, 3, 4, 5, 8, 9, 10},
	{types.Jupiter, types.Jupiter}:   {0, 1, 2, 3, 6, 7, 8, 9, 10},
	{types.Jupiter, types.Venus}:     {1, 4, 5, 8, 9, 10},
	{types.Jupiter, types.Saturn}:    {2, 4, 5, 11},
	{types.Jupiter, types.Ascendant}: {0, 1, 3, 4, 5, 6, 8, 9, 10},

	{types.Venus, types.Sun}:       {7, 10, 11},
	{types.Venus, types.Moon}:      {0, 1, 2, 3, 4, 7, 8, 10, 11},
	{types.Venus, types.Mars}:      {2, 3, 5, 8, 10, 11},
	{types.Venus, types.Mercury}:   {2, 4, 5, 8, 10},
	{types.Venus, types.Jupiter}:   {4, 7, 8, 9, 10},
	{types.Venus, types.Venus}:     {0, 1, 2, 3, 4, 7, 9, 10},
	{types.Venus, types.Saturn}:    {2, 3, 4, 7, 8, 9, 10},
	{types.Venus, types.Ascendant}: {0, 1, 2, 3, 4, 7, 8, 10},

	{types.Saturn, types.Sun}:       {0, 1, 3, 6, 7, 9, 10},
	{types.Saturn, types.Moon}:      {2, 5, 10},
	{types.Saturn, types.Mars}:      {2, 4, 5, 9, 10, 11},
	{types.Saturn, types.Mercury}:   {5, 7, 8, 9, 10, 11},
	{types.Saturn, types.Jupiter}:   {4, 5, 10, 11},
	{types.Saturn, types.Venus}:     {5, 10, 11},
	{types.Saturn, types.Saturn}:    {2, 4, 5, 10},
	{types.Saturn, types.Ascendant}: {0, 2, 3, 5, 9, 10},
}
