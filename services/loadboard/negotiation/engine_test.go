// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package negotiation

import (
	"testing"

	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name            string
		loadboardRate   float64
		carrierOffer    float64
		roundNumber     int
		wantDecision    datatypes.Decision
		wantCounterRate *float64
		wantReason      string
	}{
		{
			name:            "offer below rate accepts and echoes offer",
			loadboardRate:   1000,
			carrierOffer:    950,
			roundNumber:     1,
			wantDecision:    datatypes.DecisionAccept,
			wantCounterRate: f64(950),
			wantReason:      "Offer within acceptable range",
		},
		{
			name:            "offer exactly at rate accepts",
			loadboardRate:   1000,
			carrierOffer:    1000,
			roundNumber:     2,
			wantDecision:    datatypes.DecisionAccept,
			wantCounterRate: f64(1000),
			wantReason:      "Offer within acceptable range",
		},
		{
			name:            "offer at the 5 percent boundary accepts",
			loadboardRate:   1000,
			carrierOffer:    1050,
			roundNumber:     1,
			wantDecision:    datatypes.DecisionAccept,
			wantCounterRate: f64(1050),
			wantReason:      "Offer within acceptable range",
		},
		{
			name:            "moderate overshoot counters at midpoint capped",
			loadboardRate:   100,
			carrierOffer:    110,
			roundNumber:     1,
			wantDecision:    datatypes.DecisionCounter,
			wantCounterRate: f64(105), // min((110+100)/2, 105)
			wantReason:      "Countering within allowed margin",
		},
		{
			name:            "counter uses midpoint when below cap",
			loadboardRate:   1000,
			carrierOffer:    1080,
			roundNumber:     2,
			wantDecision:    datatypes.DecisionCounter,
			wantCounterRate: f64(1040), // midpoint 1040 < cap 1050
			wantReason:      "Countering within allowed margin",
		},
		{
			name:          "large overshoot rejects on first round",
			loadboardRate: 100,
			carrierOffer:  120,
			roundNumber:   1,
			wantDecision:  datatypes.DecisionReject,
			wantReason:    "Offer exceeds allowed margin",
		},
		{
			name:          "moderate overshoot at max rounds rejects as exhausted",
			loadboardRate: 100,
			carrierOffer:  110,
			roundNumber:   3,
			wantDecision:  datatypes.DecisionReject,
			wantReason:    "Max negotiation rounds reached",
		},
		{
			name:          "large overshoot past max rounds rejects as exhausted",
			loadboardRate: 100,
			carrierOffer:  140,
			roundNumber:   4,
			wantDecision:  datatypes.DecisionReject,
			wantReason:    "Max negotiation rounds reached",
		},
		{
			name:          "zero loadboard rate rejects as invalid",
			loadboardRate: 0,
			carrierOffer:  500,
			roundNumber:   1,
			wantDecision:  datatypes.DecisionReject,
			wantReason:    "Invalid loadboard rate",
		},
		{
			name:          "negative loadboard rate rejects as invalid",
			loadboardRate: -5,
			carrierOffer:  500,
			roundNumber:   3,
			wantDecision:  datatypes.DecisionReject,
			wantReason:    "Invalid loadboard rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.loadboardRate, tt.carrierOffer, tt.roundNumber)

			assert.Equal(t, tt.wantDecision, got.Decision)
			assert.Equal(t, tt.wantReason, got.Reason)
			if tt.wantCounterRate == nil {
				assert.Nil(t, got.CounterRate)
			} else {
				require.NotNil(t, got.CounterRate)
				assert.InDelta(t, *tt.wantCounterRate, *got.CounterRate, 1e-9)
			}
		})
	}
}

func TestEvaluate_AcceptsEverythingWithinMargin(t *testing.T) {
	// Offers inside the margin accept and echo the offer. Fractions stop
	// short of 1.05: rate*1.05 is not exactly representable for most rates
	// and its computed delta can land a hair above 0.05, which counters.
	// The exact boundary is covered separately with pairs whose delta
	// divides out to precisely 0.05.
	for _, rate := range []float64{1, 99.5, 1000, 25000} {
		for _, frac := range []float64{0.5, 0.9, 1.0, 1.04} {
			offer := rate * frac
			got := Evaluate(rate, offer, 1)
			require.Equal(t, datatypes.DecisionAccept, got.Decision,
				"rate=%v offer=%v", rate, offer)
			require.NotNil(t, got.CounterRate)
			assert.InDelta(t, offer, *got.CounterRate, 1e-9)
		}
	}
}

func TestEvaluate_AcceptsAtExactBoundary(t *testing.T) {
	// (offer-rate)/rate computes to exactly 0.05 for each of these pairs.
	pairs := []struct{ rate, offer float64 }{
		{1000, 1050},
		{200, 210},
		{40, 42},
		{25000, 26250},
	}
	for _, p := range pairs {
		got := Evaluate(p.rate, p.offer, 1)
		require.Equal(t, datatypes.DecisionAccept, got.Decision,
			"rate=%v offer=%v", p.rate, p.offer)
		require.NotNil(t, got.CounterRate)
		assert.Equal(t, p.offer, *got.CounterRate)
	}
}

func TestEvaluate_CounterNeverExceedsCap(t *testing.T) {
	for offer := 1051.0; offer <= 1150; offer += 7 {
		got := Evaluate(1000, offer, 1)
		require.Equal(t, datatypes.DecisionCounter, got.Decision, "offer=%v", offer)
		require.NotNil(t, got.CounterRate)
		assert.LessOrEqual(t, *got.CounterRate, 1050.0+1e-9, "offer=%v", offer)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	first := Evaluate(1450, 1575, 2)
	second := Evaluate(1450, 1575, 2)
	assert.Equal(t, first.Decision, second.Decision)
	assert.Equal(t, first.Reason, second.Reason)
	require.NotNil(t, first.CounterRate)
	require.NotNil(t, second.CounterRate)
	assert.Equal(t, *first.CounterRate, *second.CounterRate)
}

func f64(v float64) *float64 { return &v }
