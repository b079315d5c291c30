// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package fmcsa queries the FMCSA mobile carrier registry and normalizes
// its responses.
//
// The registry's schema is loose: numeric fields arrive as numbers or
// strings depending on the carrier record, and BASICs data may be absent
// entirely. Lookup outcomes ("not_found", "error") are represented as
// data in the returned CarrierInfo, never as Go errors; only the HTTP
// boundary decides what an "error" status maps to.
package fmcsa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/AcmeLogistics/loadboard/pkg/validation"
	"github.com/AcmeLogistics/loadboard/services/loadboard/datatypes"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://mobile.fmcsa.dot.gov/qc/services/carriers"
	defaultTimeout = 10 * time.Second

	// The mobile API is shared infrastructure; keep our lookup rate polite.
	defaultLookupsPerSecond = 5
	defaultLookupBurst      = 10
)

// HTTPClient allows injecting mock HTTP clients for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client looks up carrier authority records by MC number.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(c HTTPClient) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithBaseURL points the client at a different registry endpoint.
func WithBaseURL(u string) Option {
	return func(cl *Client) { cl.baseURL = u }
}

// NewClient builds an FMCSA client with the given web key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(defaultLookupsPerSecond), defaultLookupBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiResponse mirrors the registry payload shape. Carrier and BASICs
// records are kept as loose maps because field types vary per record.
type apiResponse struct {
	Content []struct {
		Carrier map[string]any   `json:"carrier"`
		Basics  []map[string]any `json:"basics"`
	} `json:"content"`
}

// GetCarrierInfo fetches and normalizes the authority record for an MC
// number. Transport, decoding, and not-found conditions all come back as
// a CarrierInfo with the corresponding status.
func (c *Client) GetCarrierInfo(ctx context.Context, mcNumber string) datatypes.CarrierInfo {
	mc, err := validation.SanitizeMCNumber(mcNumber)
	if err != nil {
		return errorResult(fmt.Sprintf("invalid MC number: %v", err))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return errorResult("Request timed out")
	}

	url := fmt.Sprintf("%s/docket-number/%s?webKey=%s", c.baseURL, mc, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errorResult(fmt.Sprintf("failed to build request: %v", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errorResult(fmt.Sprintf("Network error: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return notFoundResult(mc)
	}
	if resp.StatusCode != http.StatusOK {
		return errorResult(fmt.Sprintf("API returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorResult(fmt.Sprintf("Network error: %v", err))
	}
	var data apiResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return errorResult("Invalid JSON response")
	}

	return c.parseCarrierData(mc, data)
}

func (c *Client) parseCarrierData(mc string, data apiResponse) datatypes.CarrierInfo {
	if len(data.Content) == 0 || len(data.Content[0].Carrier) == 0 {
		return notFoundResult(mc)
	}
	carrier := data.Content[0].Carrier
	basics := data.Content[0].Basics

	legalName := stringField(carrier, "legalName", "Unknown")
	allowed := stringField(carrier, "allowedToOperate", "N")
	outOfService := stringField(carrier, "outOfService", "N")

	// Eligible means authorized AND not out of service.
	isEligible := allowed == "Y" && outOfService != "Y"

	var reason string
	if isEligible {
		reason = fmt.Sprintf("✓ %s is authorized to operate", legalName)
	} else {
		var causes string
		switch {
		case allowed != "Y" && outOfService == "Y":
			causes = "not authorized, out of service"
		case allowed != "Y":
			causes = "not authorized"
		default:
			causes = "out of service"
		}
		reason = fmt.Sprintf("✗ %s: %s", legalName, causes)
	}

	status := "inactive"
	isValid := "false"
	if isEligible {
		status = "active"
		isValid = "true"
	}

	info := datatypes.CarrierInfo{
		MCNumber:          mc,
		IsValid:           isValid,
		Status:            status,
		CarrierName:       legalName,
		AllowedToOperate:  allowed,
		OutOfService:      outOfService,
		ComplaintCount:    strconv.Itoa(intField(carrier, "complaintCount")),
		Percentile:        extractPercentile(basics),
		TotalViolations:   strconv.Itoa(sumViolations(basics)),
		Address:           stringField(carrier, "phyStreet", ""),
		City:              stringField(carrier, "phyCity", ""),
		State:             stringField(carrier, "phyState", ""),
		ZipCode:           stringField(carrier, "phyZip", ""),
		Phone:             stringField(carrier, "telephone", ""),
		InsuranceOnFile:   strconv.Itoa(intField(carrier, "bipdInsuranceOnFile")),
		InsuranceRequired: strconv.Itoa(intField(carrier, "bipdRequiredAmount")),
		CarrierOperation:  operationDesc(carrier),
		Reason:            reason,
	}
	slog.Info("FMCSA lookup completed", "mc_number", mc, "status", info.Status)
	return info
}

// extractPercentile pulls the first BASIC percentile, mapping the
// registry's non-values (inconclusive, no violations, insufficient data)
// to "N/A".
func extractPercentile(basics []map[string]any) string {
	if len(basics) == 0 {
		return "N/A"
	}
	v, ok := basics[0]["percentile"]
	if !ok || v == nil {
		return "N/A"
	}
	s := anyToString(v)
	switch s {
	case "", "inconclusive", "no violations", "insufficient data":
		return "N/A"
	}
	return s
}

// sumViolations totals violations across all BASICs categories.
func sumViolations(basics []map[string]any) int {
	total := 0
	for _, b := range basics {
		total += intField(b, "totalViolation")
	}
	return total
}

func operationDesc(carrier map[string]any) string {
	op, ok := carrier["carrierOperation"].(map[string]any)
	if !ok {
		return ""
	}
	return stringField(op, "carrierOperationDesc", "")
}

// stringField reads a field that may be a string or a number, with a
// fallback for absent or null values.
func stringField(m map[string]any, key, fallback string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return fallback
	}
	s := anyToString(v)
	if s == "" {
		return fallback
	}
	return s
}

// intField reads a count that may be a JSON number or a numeric string;
// anything else is 0.
func intField(m map[string]any, key string) int {
	v, ok := m[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func anyToString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func notFoundResult(mc string) datatypes.CarrierInfo {
	info := emptyResult()
	info.MCNumber = mc
	info.Status = "not_found"
	info.Reason = fmt.Sprintf("MC %s not found in FMCSA database", mc)
	return info
}

func errorResult(message string) datatypes.CarrierInfo {
	info := emptyResult()
	info.Status = "error"
	info.Reason = fmt.Sprintf("FMCSA API error: %s", message)
	return info
}

func emptyResult() datatypes.CarrierInfo {
	return datatypes.CarrierInfo{
		IsValid:           "false",
		CarrierName:       "Unknown",
		AllowedToOperate:  "N",
		OutOfService:      "N",
		ComplaintCount:    "0",
		Percentile:        "N/A",
		TotalViolations:   "0",
		InsuranceOnFile:   "0",
		InsuranceRequired: "0",
	}
}
