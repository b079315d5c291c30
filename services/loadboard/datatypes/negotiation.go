// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// Decision is the outcome of a negotiation round evaluation.
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionCounter Decision = "counter"
	DecisionReject  Decision = "reject"
)

// NegotiationRequest is the request body for the negotiation endpoint.
//
// The numeric fields deliberately carry no binding constraints: a zero or
// negative loadboard_rate is a valid input that the engine answers with a
// deterministic reject, not a 400.
type NegotiationRequest struct {
	// LoadboardRate is our target rate for the load.
	LoadboardRate float64 `json:"loadboard_rate"`
	// CarrierOffer is what the carrier is asking.
	CarrierOffer float64 `json:"carrier_offer"`
	// RoundNumber is the current negotiation round (1, 2, 3...).
	RoundNumber int `json:"round_number"`
}

// NegotiationResponse is the decision returned for one negotiation round.
// CounterRate is present for counter decisions and echoes the accepted
// offer on accepts.
type NegotiationResponse struct {
	Decision    Decision `json:"decision"`
	CounterRate *float64 `json:"counter_rate,omitempty"`
	Reason      string   `json:"reason"`
}
