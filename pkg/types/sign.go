// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across go-ashtakavarga packages.
package types

import (
	"fmt"
	"strings"
)

// NumSigns is the number of zodiac signs, and the length of every bindu
// and house vector.
const NumSigns = 12

// Sign is a zodiac sign identified by its index, 0 (Aries) through
// 11 (Pisces).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [NumSigns]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Signs lists all signs in zodiacal order.
var Signs = [NumSigns]Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// String returns the sign name, or "Sign(n)" for an out-of-range value.
func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Add returns the sign n places after s, wrapping around the zodiac.
// Negative n counts backwards.
func (s Sign) Add(n int) Sign {
	return Sign(Mod12(int(s) + n))
}

// Opposite returns the sign seven places from s (six steps away).
func (s Sign) Opposite() Sign {
	return s.Add(6)
}

// ParseSign resolves a sign name case-insensitively.
func ParseSign(name string) (Sign, error) {
	trimmed := strings.TrimSpace(name)
	for i, n := range signNames {
		if strings.EqualFold(n, trimmed) {
			return Sign(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSign, name)
}

// MarshalText encodes the sign by name.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSign, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a sign name.
func (s *Sign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Mod12 reduces n into [0,11], also for negative n.
func Mod12(n int) int {
	m := n % NumSigns
	if m < 0 {
		m += NumSigns
	}
	return m
}
