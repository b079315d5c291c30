// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	apiKey    string

	// search flags
	searchOrigin      string
	searchEquipment   string
	searchDestination string
	searchPickupDate  string

	// negotiate flags
	negLoadboardRate float64
	negCarrierOffer  float64
	negRound         int

	// log-call flags
	callMC        string
	callLoadID    string
	callOutcome   string
	callSentiment string
	callFinalRate string
	callRounds    string

	rootCmd = &cobra.Command{
		Use:   "loadctl",
		Short: "A cli to exercise the Acme loadboard API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if apiKey == "" {
				apiKey = os.Getenv("INTERNAL_API_KEY")
			}
		},
	}

	searchCmd = &cobra.Command{
		Use:   "search",
		Short: "Search the load board by origin and equipment type",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("origin", searchOrigin)
			q.Set("equipment_type", searchEquipment)
			if searchDestination != "" {
				q.Set("destination", searchDestination)
			}
			if searchPickupDate != "" {
				q.Set("pickup_datetime", searchPickupDate)
			}
			return getJSON("/loads/search?" + q.Encode())
		},
	}

	negotiateCmd = &cobra.Command{
		Use:   "negotiate",
		Short: "Evaluate one negotiation round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/negotiation/evaluate", map[string]any{
				"loadboard_rate": negLoadboardRate,
				"carrier_offer":  negCarrierOffer,
				"round_number":   negRound,
			})
		},
	}

	logCallCmd = &cobra.Command{
		Use:   "log-call",
		Short: "Append a call outcome to the call log",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"carrier_mc": callMC,
				"outcome":    callOutcome,
				"sentiment":  callSentiment,
				"num_rounds": callRounds,
			}
			if callLoadID != "" {
				body["load_id"] = callLoadID
			}
			if callFinalRate != "" {
				body["final_rate"] = callFinalRate
			}
			return postJSON("/calls/log", body)
		},
	}

	validateCmd = &cobra.Command{
		Use:   "validate [mc-number]",
		Short: "Check a carrier's FMCSA operating authority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/carrier/validate", map[string]any{
				"mc_number": args[0],
			})
		},
	}

	summaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate call metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/metrics/summary")
		},
	}

	healthCmd = &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/health")
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server",
		envOr("LOADBOARD_URL", "http://localhost:8000"), "loadboard API base URL")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "",
		"API key (defaults to INTERNAL_API_KEY)")

	searchCmd.Flags().StringVar(&searchOrigin, "origin", "", "origin city (required)")
	searchCmd.Flags().StringVar(&searchEquipment, "equipment", "", "equipment type (required)")
	searchCmd.Flags().StringVar(&searchDestination, "destination", "", "destination city filter")
	searchCmd.Flags().StringVar(&searchPickupDate, "pickup-date", "", "pickup date filter (YYYY-MM-DD)")
	_ = searchCmd.MarkFlagRequired("origin")
	_ = searchCmd.MarkFlagRequired("equipment")

	negotiateCmd.Flags().Float64Var(&negLoadboardRate, "rate", 0, "our loadboard rate (required)")
	negotiateCmd.Flags().Float64Var(&negCarrierOffer, "offer", 0, "the carrier's offer (required)")
	negotiateCmd.Flags().IntVar(&negRound, "round", 1, "negotiation round number")
	_ = negotiateCmd.MarkFlagRequired("rate")
	_ = negotiateCmd.MarkFlagRequired("offer")

	logCallCmd.Flags().StringVar(&callMC, "mc", "", "carrier MC number (required)")
	logCallCmd.Flags().StringVar(&callLoadID, "load", "", "load id")
	logCallCmd.Flags().StringVar(&callOutcome, "outcome", "", "booked|lost_price|no_loads|ineligible|other (required)")
	logCallCmd.Flags().StringVar(&callSentiment, "sentiment", "neutral", "positive|neutral|negative")
	logCallCmd.Flags().StringVar(&callFinalRate, "final-rate", "", "agreed rate")
	logCallCmd.Flags().StringVar(&callRounds, "rounds", "0", "negotiation rounds used")
	_ = logCallCmd.MarkFlagRequired("mc")
	_ = logCallCmd.MarkFlagRequired("outcome")

	rootCmd.AddCommand(searchCmd, negotiateCmd, logCallCmd, validateCmd, summaryCmd, healthCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
