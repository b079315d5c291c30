// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package search

import (
	"fmt"
	"strings"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// enUS renders dollar amounts and weights with thousands separators the
// way the voice agent should read them.
var enUS = message.NewPrinter(language.AmericanEnglish)

// noteCue maps a keyword test over the notes field to the phrase the
// agent appends to the pitch.
type noteCue struct {
	match  func(notes string) bool
	phrase string
}

var noteCues = []noteCue{
	{func(n string) bool { return strings.Contains(n, "drop") && strings.Contains(n, "hook") }, "it's drop and hook"},
	{func(n string) bool { return strings.Contains(n, "live load") }, "it's a live load"},
	{func(n string) bool { return strings.Contains(n, "fcfs") || strings.Contains(n, "first come") }, "first come first served"},
	{func(n string) bool { return strings.Contains(n, "tarp") }, "tarping required"},
	{func(n string) bool { return strings.Contains(n, "frozen") || strings.Contains(n, "reefer") }, "temperature controlled"},
}

// Pitch generates the natural-language summary of a load for the voice
// agent to read aloud. It is pure and never fails: absent or malformed
// fields simply drop their clause.
func Pitch(load datatypes.Load) string {
	var parts []string

	if load.LoadboardRate != "" {
		if rate, ok := load.Rate(); ok {
			parts = append(parts, enUS.Sprintf("I have a great load paying $%.0f", rate))
		} else {
			parts = append(parts, fmt.Sprintf("I have a great load paying $%s", load.LoadboardRate))
		}
	} else {
		parts = append(parts, "I have a load available")
	}

	origin := load.Origin
	if origin == "" {
		origin = "Unknown"
	}
	destination := load.Destination
	if destination == "" {
		destination = "Unknown"
	}
	route := fmt.Sprintf("from %s to %s", origin, destination)
	if miles, ok := load.MilesCount(); ok {
		route += fmt.Sprintf(", that's %d miles", miles)
	}
	parts = append(parts, route)

	if load.EquipmentType != "" {
		parts = append(parts, fmt.Sprintf("You'll need a %s", load.EquipmentType))
	}

	if pickup, ok := load.PickupTime(); ok {
		if strings.Contains(load.PickupDatetime, "T") {
			parts = append(parts, fmt.Sprintf("Pickup is %s at %s",
				pickup.Format("Monday, January 02"), pickup.Format("3:04 PM")))
		} else {
			parts = append(parts, fmt.Sprintf("Pickup is %s", pickup.Format("Monday, January 02")))
		}
	}

	var cargo []string
	if load.CommodityType != "" {
		cargo = append(cargo, load.CommodityType)
	}
	if load.Weight != "" {
		if pounds, ok := load.WeightPounds(); ok {
			cargo = append(cargo, enUS.Sprintf("%d pounds", pounds))
		} else {
			cargo = append(cargo, fmt.Sprintf("%s pounds", load.Weight))
		}
	}
	if len(cargo) > 0 {
		parts = append(parts, fmt.Sprintf("You'll be hauling %s", strings.Join(cargo, ", ")))
	}

	if load.Notes != "" {
		notes := strings.ToLower(load.Notes)
		var features []string
		for _, cue := range noteCues {
			if cue.match(notes) {
				features = append(features, cue.phrase)
			}
		}
		if len(features) > 0 {
			parts = append(parts, fmt.Sprintf("Please note, %s", strings.Join(features, " and ")))
		}
	}

	return strings.Join(parts, ". ") + "."
}
