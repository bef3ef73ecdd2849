// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders Ashtakavarga results as terminal tables. It only
// lays out numbers; interpretation is left to the reader.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/petar-djukic/go-ashtakavarga/pkg/types"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// signHeaders returns "", Ari, Tau, ... Pis, Total.
func signHeaders(first string) []string {
	h := make([]string, 0, types.NumSigns+2)
	h = append(h, first)
	for _, s := range types.Signs {
		h = append(h, s.String()[:3])
	}
	return append(h, "Total")
}

func houseHeaders(first string) []string {
	h := make([]string, 0, types.NumHouses+2)
	h = append(h, first)
	for i := 1; i <= types.NumHouses; i++ {
		h = append(h, strconv.Itoa(i))
	}
	return append(h, "Total")
}

func vectorRow(label string, v types.BinduVector) []string {
	row := make([]string, 0, types.NumSigns+2)
	row = append(row, label)
	for _, n := range v {
		row = append(row, strconv.Itoa(n))
	}
	return append(row, strconv.Itoa(v.Total()))
}

func houseRow(label string, h types.HouseVector) []string {
	row := make([]string, 0, types.NumHouses+2)
	row = append(row, label)
	for _, n := range h {
		row = append(row, strconv.Itoa(n))
	}
	return append(row, strconv.Itoa(h.Total()))
}

func newTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

func section(buf *strings.Builder, title, body string) {
	buf.WriteString(titleStyle.Render(title))
	buf.WriteString("\n")
	buf.WriteString(body)
	buf.WriteString("\n\n")
}

// Bhinna renders one planet's table with its per-contributor rows.
func Bhinna(r *types.BhinnaResult) string {
	rows := make([][]string, 0, types.NumContributors+1)
	for _, c := range types.Contributors {
		rows = append(rows, vectorRow(string(c), r.Contributors[c]))
	}
	rows = append(rows, vectorRow("Bindus", r.Points))
	return newTable(signHeaders(string(r.Receiver)), rows)
}

// Sarva renders the combined table, its per-planet rows and reductions.
func Sarva(r *types.SarvaResult) string {
	rows := make([][]string, 0, types.NumPlanets+4)
	for _, p := range types.Planets {
		rows = append(rows, vectorRow(string(p), r.Planets[p]))
	}
	rows = append(rows,
		vectorRow("Sarva", r.Points),
		vectorRow("Trikona", r.Trikona),
		vectorRow("Ekadhi", r.Ekadhi),
		vectorRow("Sodhita", r.Sodhita),
	)
	return newTable(signHeaders("Planet"), rows)
}

// Houses renders labelled house vectors, one row each, in label order.
func Houses(labels []string, vectors []types.HouseVector) string {
	rows := make([][]string, 0, len(labels))
	for i, label := range labels {
		rows = append(rows, houseRow(label, vectors[i]))
	}
	return newTable(houseHeaders("House"), rows)
}

// HouseStrength renders one house's per-planet bindus.
func HouseStrength(hs *types.HouseStrength) string {
	rows := make([][]string, 0, types.NumPlanets+1)
	for _, p := range types.Planets {
		rows = append(rows, []string{string(p), strconv.Itoa(hs.Planets[p])})
	}
	rows = append(rows, []string{"Total", fmt.Sprintf("%d (%.1f%%)", hs.TotalBindus, hs.Percentage)})
	return newTable([]string{fmt.Sprintf("House %d (%s)", hs.House, hs.Sign), "Bindus"}, rows)
}

// Kaksha renders Kaksha Bala for the given planets.
func Kaksha(kb map[types.CelestialPoint]*types.KakshaBala) string {
	headers := []string{"Planet", "Sign"}
	for _, p := range types.Planets {
		headers = append(headers, string(p)[:3])
	}
	headers = append(headers, "Value", "%")

	rows := make([][]string, 0, len(kb))
	for _, planet := range types.Planets {
		k, ok := kb[planet]
		if !ok {
			continue
		}
		row := []string{string(planet), k.Sign.String()}
		for _, other := range types.Planets {
			if n, ok := k.Contributions[other]; ok {
				row = append(row, strconv.Itoa(n))
			} else {
				row = append(row, "-")
			}
		}
		row = append(row, strconv.Itoa(k.Value), fmt.Sprintf("%.1f", k.Percentage))
		rows = append(rows, row)
	}
	return newTable(headers, rows)
}

// Transits renders per-planet transit scores.
func Transits(tr map[types.CelestialPoint]*types.PlanetTransit, vedhas map[types.CelestialPoint]types.Vedha) string {
	rows := make([][]string, 0, types.NumPlanets)
	for _, planet := range types.Planets {
		t, ok := tr[planet]
		if !ok {
			continue
		}
		best := make([]string, 0, 3)
		for _, s := range t.BestPositions[:3] {
			best = append(best, s.String())
		}
		obstructors := "-"
		if v, ok := vedhas[planet]; ok && v.HasVedha() {
			names := make([]string, 0, len(v.Obstructors))
			for _, o := range v.Obstructors {
				names = append(names, string(o))
			}
			obstructors = strings.Join(names, ", ")
		}
		rows = append(rows, []string{
			string(planet),
			t.Strength.Sign.String(),
			strconv.Itoa(t.Strength.Bindus),
			fmt.Sprintf("%.1f", t.Strength.Percentage),
			strconv.Itoa(t.House),
			fmt.Sprintf("%d (%.1f%%)", t.SarvaBindus, t.SarvaPercentage),
			strings.Join(best, ", "),
			obstructors,
		})
	}
	return newTable([]string{"Planet", "Transit", "Bindus", "%", "House", "Sarva", "Best", "Vedha"}, rows)
}

// Analysis renders the full report for one chart.
func Analysis(name string, a *types.Analysis) string {
	var buf strings.Builder
	if name != "" {
		buf.WriteString(titleStyle.Render(name))
		buf.WriteString("\n\n")
	}

	for _, p := range types.Planets {
		section(&buf, fmt.Sprintf("Bhinnashtakavarga: %s", p), Bhinna(a.Bhinna[p]))
	}
	section(&buf, "Sarvashtakavarga", Sarva(a.Sarva))

	labels := make([]string, 0, types.NumPlanets+1)
	vectors := make([]types.HouseVector, 0, types.NumPlanets+1)
	for _, p := range types.Planets {
		labels = append(labels, string(p))
		vectors = append(vectors, a.BhinnaHouses[p])
	}
	labels = append(labels, "Sarva")
	vectors = append(vectors, a.SarvaHouses)
	section(&buf, fmt.Sprintf("Houses (ascendant %s)", a.Ascendant), Houses(labels, vectors))

	section(&buf, "Kaksha Bala", Kaksha(a.Kaksha))
	section(&buf, "Summary", summary(a.Summary))
	return buf.String()
}

func summary(s *types.Summary) string {
	rows := make([][]string, 0, types.NumPlanets+1)
	for _, p := range types.Planets {
		st := s.Strengths[p]
		rows = append(rows, []string{string(p), strconv.Itoa(st.TotalBindus), fmt.Sprintf("%.1f", st.Percentage)})
	}
	rows = append(rows, []string{"Total", strconv.Itoa(s.TotalBindus), fmt.Sprintf("avg %.1f", s.AverageBindus)})
	body := newTable([]string{"Planet", "Bindus", "%"}, rows)
	return fmt.Sprintf("%s\nStrongest: %s  Weakest: %s", body, s.StrongestPlanet, s.WeakestPlanet)
}
