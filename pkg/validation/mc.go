// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package validation provides input validation utilities for values that
// end up in outbound API paths.
//
// MC numbers arrive from the voice agent as free text ("MC-123456",
// "mc 123456", " 123456 ") and are interpolated into the FMCSA request
// URL, so they are normalized and validated here before any lookup.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// mcPattern matches a normalized Motor Carrier docket number: digits only,
// up to 8 characters (FMCSA docket numbers are at most 8 digits today).
var mcPattern = regexp.MustCompile(`^[0-9]{1,8}$`)

// ValidateMCNumber validates an already-normalized MC number.
// Returns an error for anything other than 1-8 digits.
func ValidateMCNumber(mc string) error {
	if mc == "" {
		return fmt.Errorf("mc number cannot be empty")
	}
	if !mcPattern.MatchString(mc) {
		return fmt.Errorf("invalid mc number format: %q (must be 1-8 digits)", mc)
	}
	return nil
}

// SanitizeMCNumber normalizes and validates an MC number. It trims
// whitespace and strips a leading "MC" prefix (with optional dash or
// space), then validates the remaining digits.
//
//	mc, err := validation.SanitizeMCNumber(" MC-123456 ")
//	// mc == "123456"
func SanitizeMCNumber(mc string) (string, error) {
	normalized := strings.TrimSpace(mc)
	upper := strings.ToUpper(normalized)
	if strings.HasPrefix(upper, "MC") {
		normalized = strings.TrimSpace(normalized[2:])
		normalized = strings.TrimLeft(normalized, "-")
		normalized = strings.TrimSpace(normalized)
	}
	if err := ValidateMCNumber(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
