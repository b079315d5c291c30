// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes provides data structures for the loadboard service.
//
// Load records come from a CSV load board where every column is free text
// and any column may be missing. The raw strings are preserved for the
// dashboard, and the numeric/date columns are parsed exactly once at
// ingestion (NewLoad) so the search and pitch code never re-parses them.
package datatypes

import (
	"strconv"
	"strings"
	"time"
)

// Load is a single load board record. The exported fields hold the raw
// CSV values; the unexported fields hold the parsed forms populated by
// NewLoad. A Load is immutable once the catalog is built.
type Load struct {
	LoadID           string `json:"load_id"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	PickupDatetime   string `json:"pickup_datetime"`
	DeliveryDatetime string `json:"delivery_datetime"`
	EquipmentType    string `json:"equipment_type"`
	LoadboardRate    string `json:"loadboard_rate"`
	Notes            string `json:"notes"`
	Weight           string `json:"weight"`
	CommodityType    string `json:"commodity_type"`
	NumOfPieces      string `json:"num_of_pieces"`
	Miles            string `json:"miles"`
	Dimensions       string `json:"dimensions"`

	rate       float64
	rateOK     bool
	pickup     time.Time
	pickupOK   bool
	milesVal   int
	milesOK    bool
	weightVal  int
	weightOK   bool
}

// NewLoad builds a Load from a CSV row keyed by column name. Missing
// columns yield empty strings. Numeric and date fields are parsed here,
// once, with the documented fallbacks (rate 0, others absent).
func NewLoad(row map[string]string) Load {
	l := Load{
		LoadID:           row["load_id"],
		Origin:           row["origin"],
		Destination:      row["destination"],
		PickupDatetime:   row["pickup_datetime"],
		DeliveryDatetime: row["delivery_datetime"],
		EquipmentType:    row["equipment_type"],
		LoadboardRate:    row["loadboard_rate"],
		Notes:            row["notes"],
		Weight:           row["weight"],
		CommodityType:    row["commodity_type"],
		NumOfPieces:      row["num_of_pieces"],
		Miles:            row["miles"],
		Dimensions:       row["dimensions"],
	}
	l.rate, l.rateOK = ParseRate(l.LoadboardRate)
	l.pickup, l.pickupOK = ParseDatetime(l.PickupDatetime)
	l.milesVal, l.milesOK = ParseWholeNumber(l.Miles)
	l.weightVal, l.weightOK = ParseWholeNumber(l.Weight)
	return l
}

// Rate returns the loadboard rate parsed as a float, and whether the raw
// value was parsable. Unparsable or missing rates report (0, false) and
// sort lowest.
func (l Load) Rate() (float64, bool) { return l.rate, l.rateOK }

// SortRate is the rate used for ordering: the parsed rate, or 0 when the
// raw value was missing or unparsable.
func (l Load) SortRate() float64 {
	if !l.rateOK {
		return 0
	}
	return l.rate
}

// PickupTime returns the parsed pickup timestamp, if the raw value was a
// valid date or date-time.
func (l Load) PickupTime() (time.Time, bool) { return l.pickup, l.pickupOK }

// MilesCount returns the mileage as a whole number, if parsable.
func (l Load) MilesCount() (int, bool) { return l.milesVal, l.milesOK }

// WeightPounds returns the weight as a whole number of pounds, if parsable.
func (l Load) WeightPounds() (int, bool) { return l.weightVal, l.weightOK }

// ParseRate parses a currency amount from loose text. Returns false for
// empty or non-numeric input; callers treat that as rate 0.
func ParseRate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseWholeNumber parses an integer quantity that may be written with a
// decimal point ("1200.0"). Returns false for empty or non-numeric input.
func ParseWholeNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// ParseDatetime parses a pickup timestamp. Values containing a 'T' are
// treated as combined date-times (seconds optional, offset optional);
// anything else must be a bare YYYY-MM-DD date. Returns false for empty
// or malformed input.
func ParseDatetime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if strings.Contains(s, "T") {
		for _, layout := range []string{
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02T15:04",
		} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDate parses a bare YYYY-MM-DD calendar date, as used by the
// pickup_datetime search filter.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
