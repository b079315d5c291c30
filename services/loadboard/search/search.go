// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package search filters and ranks the load catalog for the voice agent.
//
// Every step is a pure filter over the prior result set: origin substring,
// equipment exact match, optional destination substring, optional pickup
// calendar date, then a sort by rate (highest first). Matches are returned
// with a generated pitch attached.
package search

import (
	"sort"
	"strings"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
)

// Params are the search inputs after boundary validation. Origin and
// EquipmentType are required; empty optionals disable their filter.
type Params struct {
	Origin        string
	EquipmentType string
	Destination   string
	PickupDate    string // YYYY-MM-DD
}

// Result is a matched load augmented with its pitch.
type Result struct {
	datatypes.Load
	Pitch string `json:"pitch"`
}

// Engine searches an immutable slice of loads. Safe for concurrent use:
// it holds no mutable state.
type Engine struct {
	loads []datatypes.Load
}

// NewEngine builds a search engine over the given catalog snapshot.
func NewEngine(loads []datatypes.Load) *Engine {
	return &Engine{loads: loads}
}

// Search applies the filters in order and returns matches sorted by
// loadboard rate descending, each with a generated pitch. An invalid
// PickupDate yields an empty result set, never an error.
func (e *Engine) Search(p Params) []Result {
	results := e.loads

	origin := strings.ToLower(strings.TrimSpace(p.Origin))
	results = filter(results, func(l datatypes.Load) bool {
		return strings.Contains(strings.ToLower(l.Origin), origin)
	})

	equipment := strings.ToLower(strings.TrimSpace(p.EquipmentType))
	results = filter(results, func(l datatypes.Load) bool {
		return strings.ToLower(l.EquipmentType) == equipment
	})

	if p.Destination != "" {
		destination := strings.ToLower(strings.TrimSpace(p.Destination))
		results = filter(results, func(l datatypes.Load) bool {
			return strings.Contains(strings.ToLower(l.Destination), destination)
		})
	}

	if p.PickupDate != "" {
		results = filterByPickupDate(results, p.PickupDate)
	}

	// Highest-paying loads first; unparsable rates sort as 0.
	sorted := make([]datatypes.Load, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortRate() > sorted[j].SortRate()
	})

	out := make([]Result, 0, len(sorted))
	for _, l := range sorted {
		out = append(out, Result{Load: l, Pitch: Pitch(l)})
	}
	return out
}

// filterByPickupDate keeps loads whose pickup calendar date equals the
// target date. A malformed target date means no matches; loads with
// missing or unparsable pickup times are excluded silently.
func filterByPickupDate(loads []datatypes.Load, targetDate string) []datatypes.Load {
	target, ok := datatypes.ParseDate(targetDate)
	if !ok {
		return nil
	}
	ty, tm, td := target.Date()
	return filter(loads, func(l datatypes.Load) bool {
		pickup, ok := l.PickupTime()
		if !ok {
			return false
		}
		y, m, d := pickup.Date()
		return y == ty && m == tm && d == td
	})
}

func filter(loads []datatypes.Load, keep func(datatypes.Load) bool) []datatypes.Load {
	out := make([]datatypes.Load, 0, len(loads))
	for _, l := range loads {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
