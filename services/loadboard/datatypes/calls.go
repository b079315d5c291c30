// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"strconv"
	"strings"
	"time"
)

// Outcome classifies how a carrier call ended.
type Outcome string

const (
	OutcomeBooked     Outcome = "booked"
	OutcomeLostPrice  Outcome = "lost_price"
	OutcomeNoLoads    Outcome = "no_loads"
	OutcomeIneligible Outcome = "ineligible"
	OutcomeOther      Outcome = "other"
)

// Sentiment is the agent's read of the carrier's mood on the call.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// CallLogEntry records the outcome of one carrier call. Entries are
// created once via the call store's Append and never mutated; ID and
// CreatedAt are assigned at insert time.
//
// Rates and round counts arrive from the voice platform as strings and
// are kept that way on the wire; the metrics aggregator applies the
// documented parse fallbacks.
type CallLogEntry struct {
	ID                  string    `json:"id,omitempty"`
	CarrierMC           string    `json:"carrier_mc" binding:"required"`
	LoadID              string    `json:"load_id,omitempty"`
	InitialRate         string    `json:"initial_rate,omitempty"`
	FinalRate           string    `json:"final_rate,omitempty"`
	NumRounds           string    `json:"num_rounds"`
	Outcome             Outcome   `json:"outcome" binding:"required,oneof=booked lost_price no_loads ineligible other"`
	Sentiment           Sentiment `json:"sentiment" binding:"required,oneof=positive neutral negative"`
	CallDurationSeconds *int      `json:"call_duration_seconds,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// RoundCount parses NumRounds, treating missing or non-numeric values as 0.
func (e CallLogEntry) RoundCount() int {
	s := strings.TrimSpace(e.NumRounds)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// FinalRateValue parses FinalRate as a dollar amount. Returns false when
// the rate is missing or unparsable; such entries contribute no revenue.
func (e CallLogEntry) FinalRateValue() (float64, bool) {
	return ParseRate(e.FinalRate)
}

// CallSummary is the aggregate view over the call log returned by the
// metrics summary endpoint. All rates are 0 for an empty log.
type CallSummary struct {
	TotalCalls         int               `json:"total_calls"`
	Booked             int               `json:"booked"`
	BookingRate        float64           `json:"booking_rate"`
	AvgRounds          float64           `json:"avg_rounds"`
	SentimentBreakdown map[Sentiment]int `json:"sentiment_breakdown"`
	TotalRevenue       float64           `json:"total_revenue"`
	RevenuePerCall     float64           `json:"revenue_per_call"`
	AvgCallDuration    float64           `json:"avg_call_duration"`
}
