// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package negotiation decides whether to accept, counter, or reject a
// carrier's rate offer.
//
// The policy is a pure function of three numbers and deterministic, so
// every decision the voice agent makes can be replayed:
//
//   - Accept when the offer is at or below loadboard_rate * 1.05.
//   - Counter when the offer is up to +15% and rounds remain, never above
//     loadboard_rate * 1.05.
//   - Reject otherwise. Max 3 rounds.
package negotiation

import "github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"

const (
	// AcceptMargin is the fraction above the loadboard rate we will pay
	// without countering.
	AcceptMargin = 0.05
	// CounterThreshold is the largest fractional overshoot worth a counter.
	CounterThreshold = 0.15
	// MaxRounds is the number of offer/counter exchanges before we walk.
	MaxRounds = 3
)

// Evaluate decides one negotiation round. The branches are order-sensitive;
// in particular a round at or past MaxRounds with a moderate overshoot
// (0.05 < delta <= 0.15) reports "Max negotiation rounds reached", not
// "Offer exceeds allowed margin".
func Evaluate(loadboardRate, carrierOffer float64, roundNumber int) datatypes.NegotiationResponse {
	if loadboardRate <= 0 {
		return datatypes.NegotiationResponse{
			Decision: datatypes.DecisionReject,
			Reason:   "Invalid loadboard rate",
		}
	}

	delta := (carrierOffer - loadboardRate) / loadboardRate

	if delta <= AcceptMargin {
		rate := carrierOffer
		return datatypes.NegotiationResponse{
			Decision:    datatypes.DecisionAccept,
			CounterRate: &rate,
			Reason:      "Offer within acceptable range",
		}
	}

	if delta <= CounterThreshold && roundNumber < MaxRounds {
		// Counter between the loadboard rate and the offer, capped at the
		// maximum acceptable price.
		cap := loadboardRate * (1 + AcceptMargin)
		counter := (carrierOffer + loadboardRate) / 2
		if counter > cap {
			counter = cap
		}
		return datatypes.NegotiationResponse{
			Decision:    datatypes.DecisionCounter,
			CounterRate: &counter,
			Reason:      "Countering within allowed margin",
		}
	}

	if roundNumber >= MaxRounds && delta > AcceptMargin {
		return datatypes.NegotiationResponse{
			Decision: datatypes.DecisionReject,
			Reason:   "Max negotiation rounds reached",
		}
	}

	return datatypes.NegotiationResponse{
		Decision: datatypes.DecisionReject,
		Reason:   "Offer exceeds allowed margin",
	}
}
