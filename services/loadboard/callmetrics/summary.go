// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package callmetrics reduces the call log into the summary served to the
// reporting dashboard.
package callmetrics

import "github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"

// Summarize computes aggregate statistics over call log entries. An empty
// input yields a zeroed summary with an empty sentiment breakdown, never a
// division by zero. Revenue counts only parsable final rates on booked
// calls; missing round counts contribute 0; the duration average is over
// calls that reported one.
func Summarize(calls []datatypes.CallLogEntry) datatypes.CallSummary {
	summary := datatypes.CallSummary{
		SentimentBreakdown: make(map[datatypes.Sentiment]int),
	}
	total := len(calls)
	if total == 0 {
		return summary
	}

	totalRounds := 0
	durationSum := 0
	durationCount := 0
	for _, c := range calls {
		if c.Outcome == datatypes.OutcomeBooked {
			summary.Booked++
			if rate, ok := c.FinalRateValue(); ok {
				summary.TotalRevenue += rate
			}
		}
		totalRounds += c.RoundCount()
		summary.SentimentBreakdown[c.Sentiment]++
		if c.CallDurationSeconds != nil {
			durationSum += *c.CallDurationSeconds
			durationCount++
		}
	}

	summary.TotalCalls = total
	summary.BookingRate = float64(summary.Booked) / float64(total)
	summary.AvgRounds = float64(totalRounds) / float64(total)
	summary.RevenuePerCall = summary.TotalRevenue / float64(total)
	if durationCount > 0 {
		summary.AvgCallDuration = float64(durationSum) / float64(durationCount)
	}
	return summary
}
