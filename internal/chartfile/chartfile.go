// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package chartfile reads chart positions from YAML (or JSON) files. It
// stands in for an ephemeris when charts are computed elsewhere.
package chartfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

// File is the on-disk chart layout:
//
//	name: Example
//	ascendant: Leo
//	positions:
//	  sun: Capricorn
//	  moon: Taurus
//	  ...
type File struct {
	Name      string    `yaml:"name"`
	Ascendant string    `yaml:"ascendant" validate:"omitempty,zodiacsign"`
	Positions Positions `yaml:"positions"`
}

// Positions names the sign of each planet. Empty fields are left out of
// the chart so that the engine reports them as missing.
type Positions struct {
	Sun     string `yaml:"sun" validate:"omitempty,zodiacsign"`
	Moon    string `yaml:"moon" validate:"omitempty,zodiacsign"`
	Mars    string `yaml:"mars" validate:"omitempty,zodiacsign"`
	Mercury string `yaml:"mercury" validate:"omitempty,zodiacsign"`
	Jupiter string `yaml:"jupiter" validate:"omitempty,zodiacsign"`
	Venus   string `yaml:"venus" validate:"omitempty,zodiacsign"`
	Saturn  string `yaml:"saturn" validate:"omitempty,zodiacsign"`
}

// Chart is a decoded chart file.
type Chart struct {
	Name      string
	Path      string
	Positions types.ChartPositions
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("zodiacsign", validateZodiacSign); err != nil {
		panic(fmt.Sprintf("chartfile: registering zodiacsign rule: %v", err))
	}
}

func validateZodiacSign(fl validator.FieldLevel) bool {
	_, err := types.ParseSign(fl.Field().String())
	return err == nil
}

// Load reads and decodes the chart file at path.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// Parse decodes a chart document. Keys outside the File layout are
// rejected by name, so a misspelled point fails here rather than as a
// missing position later.
func Parse(data []byte) (*Chart, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding chart: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, describe(err)
	}
	return f.toChart(), nil
}

func (f File) toChart() *Chart {
	c := &Chart{
		Name:      f.Name,
		Positions: make(types.ChartPositions, types.NumContributors),
	}
	named := map[types.CelestialPoint]string{
		types.Sun:       f.Positions.Sun,
		types.Moon:      f.Positions.Moon,
		types.Mars:      f.Positions.Mars,
		types.Mercury:   f.Positions.Mercury,
		types.Jupiter:   f.Positions.Jupiter,
		types.Venus:     f.Positions.Venus,
		types.Saturn:    f.Positions.Saturn,
		types.Ascendant: f.Ascendant,
	}
	for p, name := range named {
		if name == "" {
			continue
		}
		// Already validated.
		s, _ := types.ParseSign(name)
		c.Positions[p] = s
	}
	return c
}

// describe turns validator output into an ErrInvalidSign listing every
// offending field.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s=%q", strings.ToLower(fe.Field()), fe.Value()))
	}
	return fmt.Errorf("%w: %s", types.ErrInvalidSign, strings.Join(fields, ", "))
}

// Encode renders positions in the chart file layout.
func Encode(name string, positions types.ChartPositions) ([]byte, error) {
	sign := func(p types.CelestialPoint) string {
		s, ok := positions[p]
		if !ok {
			return ""
		}
		return s.String()
	}
	f := File{
		Name:      name,
		Ascendant: sign(types.Ascendant),
		Positions: Positions{
			Sun:     sign(types.Sun),
			Moon:    sign(types.Moon),
			Mars:    sign(types.Mars),
			Mercury: sign(types.Mercury),
			Jupiter: sign(types.Jupiter),
			Venus:   sign(types.Venus),
			Saturn:  sign(types.Saturn),
		},
	}
	return yaml.Marshal(f)
}
