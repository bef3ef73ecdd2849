// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/go-ashtakavarga/internal/chartfile"
	"github.com/petar-djukic/go-ashtakavarga/internal/report"
	"github.com/petar-djukic/go-ashtakavarga/pkg/ashtakavarga"
	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

func newEngine() ashtakavarga.Engine {
	return ashtakavarga.New(ashtakavarga.Config{Logger: logger})
}

// loadChart reads the file named by --chart.
func loadChart() (*chartfile.Chart, error) {
	path := viper.GetString("chart")
	if path == "" {
		return nil, fmt.Errorf("--chart is required")
	}
	c, err := chartfile.Load(path)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debug("chart loaded", zap.String("path", path), zap.Int("positions", len(c.Positions)))
	}
	return c, nil
}

// emit writes v as indented JSON, or the table produced by render.
func emit(w io.Writer, v any, render func() string) error {
	switch format := viper.GetString("format"); format {
	case "json", "":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(w, string(out))
	case "table":
		fmt.Fprint(w, render())
		fmt.Fprintln(w)
	default:
		return fmt.Errorf("unknown format %q (want json or table)", format)
	}
	return nil
}

func parsePlanetFlag(cmd *cobra.Command) (types.CelestialPoint, error) {
	name, _ := cmd.Flags().GetString("planet")
	p, err := types.ParsePoint(name)
	if err != nil {
		return "", err
	}
	return p, types.ValidatePlanet(p)
}

// newBhinnaCmd creates the "bhinna" command.
func newBhinnaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bhinna",
		Short: "Print one planet's Bhinnashtakavarga",
		RunE: func(cmd *cobra.Command, args []string) error {
			planet, err := parsePlanetFlag(cmd)
			if err != nil {
				return err
			}
			c, err := loadChart()
			if err != nil {
				return err
			}
			r, err := newEngine().Bhinnashtakavarga(planet, c.Positions)
			if err != nil {
				return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
			}
			return emit(cmd.OutOrStdout(), r, func() string { return report.Bhinna(r) })
		},
	}
	cmd.Flags().StringP("planet", "p", "", "Receiving planet (required)")
	cmd.MarkFlagRequired("planet")
	return cmd
}

// newSarvaCmd creates the "sarva" command.
func newSarvaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sarva",
		Short: "Print the Sarvashtakavarga with Trikona, Ekadhi and Sodhita reductions",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChart()
			if err != nil {
				return err
			}
			r, err := newEngine().Sarvashtakavarga(c.Positions)
			if err != nil {
				return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
			}
			return emit(cmd.OutOrStdout(), r, func() string { return report.Sarva(r) })
		},
	}
}

// newHousesCmd creates the "houses" command.
func newHousesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "houses",
		Short: "Print every table re-indexed by house",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChart()
			if err != nil {
				return err
			}
			a, err := newEngine().Analyze(c.Positions)
			if err != nil {
				return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
			}
			out := struct {
				Ascendant types.Sign                                 `json:"ascendant"`
				Planets   map[types.CelestialPoint]types.HouseVector `json:"planets"`
				Sarva     types.HouseVector                          `json:"sarva"`
			}{a.Ascendant, a.BhinnaHouses, a.SarvaHouses}

			return emit(cmd.OutOrStdout(), out, func() string {
				labels := make([]string, 0, types.NumPlanets+1)
				vectors := make([]types.HouseVector, 0, types.NumPlanets+1)
				for _, p := range types.Planets {
					labels = append(labels, string(p))
					vectors = append(vectors, a.BhinnaHouses[p])
				}
				labels = append(labels, "Sarva")
				vectors = append(vectors, a.SarvaHouses)
				return report.Houses(labels, vectors)
			})
		},
	}
}

// newHouseStrengthCmd creates the "house-strength" command.
func newHouseStrengthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "house-strength",
		Short: "Print the Sarvashtakavarga bindus of one house",
		RunE: func(cmd *cobra.Command, args []string) error {
			house, _ := cmd.Flags().GetInt("house")
			c, err := loadChart()
			if err != nil {
				return err
			}
			asc, err := types.AscendantOf(c.Positions)
			if err != nil {
				return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
			}
			hs, err := newEngine().StrengthInHouse(house, c.Positions, asc)
			if err != nil {
				return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
			}
			return emit(cmd.OutOrStdout(), hs, func() string { return report.HouseStrength(hs) })
		},
	}
	cmd.Flags().Int("house", 1, "House number (1-12)")
	return cmd
}

// newKakshaCmd creates the "kaksha" command.
func newKakshaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kaksha",
		Short: "Print Kaksha Bala for one planet, one sign, or all planets",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChart()
			if err != nil {
				return err
			}
			e := newEngine()

			if signName, _ := cmd.Flags().GetString("sign"); signName != "" {
				sign, err := types.ParseSign(signName)
				if err != nil {
					return err
				}
				kb, err := e.KakshaBalaAtSign(sign, c.Positions)
				if err != nil {
					return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
				}
				return emit(cmd.OutOrStdout(), kb, func() string {
					return fmt.Sprintf("%s: %d (%.1f%%)", kb.Sign, kb.Value, kb.Percentage)
				})
			}

			planets := types.Planets[:]
			if cmd.Flags().Changed("planet") {
				p, err := parsePlanetFlag(cmd)
				if err != nil {
					return err
				}
				planets = []types.CelestialPoint{p}
			}
			out := make(map[types.CelestialPoint]*types.KakshaBala, len(planets))
			for _, p := range planets {
				kb, err := e.KakshaBala(p, c.Positions)
				if err != nil {
					return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
				}
				out[p] = kb
			}
			return emit(cmd.OutOrStdout(), out, func() string { return report.Kaksha(out) })
		},
	}
	cmd.Flags().StringP("planet", "p", "", "Planet (default: all)")
	cmd.Flags().String("sign", "", "Sum all seven tables at this sign instead")
	return cmd
}

// newTransitCmd creates the "transit" command.
func newTransitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transit",
		Short: "Score current positions against the natal chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			natal, err := loadChart()
			if err != nil {
				return err
			}
			path, _ := cmd.Flags().GetString("transit-chart")
			current, err := chartfile.Load(path)
			if err != nil {
				return err
			}

			e := newEngine()
			tr, err := e.Transits(natal.Positions, current.Positions)
			if err != nil {
				return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
			}
			vedhas, err := e.Vedhas(current.Positions)
			if err != nil {
				return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
			}
			out := struct {
				Transits map[types.CelestialPoint]*types.PlanetTransit `json:"transits"`
				Vedhas   map[types.CelestialPoint]types.Vedha          `json:"vedhas"`
			}{tr, vedhas}
			return emit(cmd.OutOrStdout(), out, func() string { return report.Transits(tr, vedhas) })
		},
	}
	cmd.Flags().String("transit-chart", "", "Chart file with current positions (required)")
	cmd.MarkFlagRequired("transit-chart")
	return cmd
}

// newAnalyzeCmd creates the "analyze" command.
func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Print every table for the chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadChart()
			if err != nil {
				return err
			}
			a, err := newEngine().Analyze(c.Positions)
			if err != nil {
				return fmt.Errorf("cannot compute Ashtakavarga: %w", err)
			}
			return emit(cmd.OutOrStdout(), a, func() string { return report.Analysis(c.Name, a) })
		},
	}
}

// batchResult is one chart's entry in batch output.
type batchResult struct {
	Path     string          `json:"path"`
	Name     string          `json:"name,omitempty"`
	Analysis *types.Analysis `json:"analysis"`
}

// newBatchCmd creates the "batch" command.
func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE...",
		Short: "Analyze many chart files in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := analyzeAll(cmd.Context(), newEngine(), args, viper.GetInt("concurrency"))
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), results, func() string {
				var out string
				for _, r := range results {
					name := r.Name
					if name == "" {
						name = r.Path
					}
					out += report.Analysis(name, r.Analysis)
				}
				return out
			})
		},
	}
}

// analyzeAll loads and analyzes paths with at most limit in flight. Results
// keep the order of paths; the first failure cancels the rest.
func analyzeAll(ctx context.Context, e ashtakavarga.Engine, paths []string, limit int) ([]batchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if limit < 1 {
		limit = 1
	}

	results := make([]batchResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := chartfile.Load(path)
			if err != nil {
				return err
			}
			a, err := e.Analyze(c.Positions)
			if err != nil {
				return fmt.Errorf("%s: cannot compute Ashtakavarga: %w", path, err)
			}
			results[i] = batchResult{Path: path, Name: c.Name, Analysis: a}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
