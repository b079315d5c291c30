// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"github.com/AcmeLogistics/loadboard/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// carrierValidate is the validator instance for carrier datatypes.
// Initialized in init() with the custom MC-number validator.
var carrierValidate *validator.Validate

func init() {
	carrierValidate = validator.New()
	_ = carrierValidate.RegisterValidation("mcnumber", validateMCNumber)
}

// validateMCNumber accepts docket numbers as digits with an optional
// "MC"/"MC-" prefix, matching what carriers read out on calls.
func validateMCNumber(fl validator.FieldLevel) bool {
	_, err := validation.SanitizeMCNumber(fl.Field().String())
	return err == nil
}

// CarrierValidationRequest asks for an FMCSA authority check by MC number.
type CarrierValidationRequest struct {
	MCNumber string `json:"mc_number" binding:"required" validate:"required,mcnumber"`
}

// Validate applies the mcnumber format check after body binding.
func (r *CarrierValidationRequest) Validate() error {
	return carrierValidate.Struct(r)
}

// CarrierInfo is the normalized FMCSA authority record. Every field is a
// string for voice-platform compatibility; "not_found" and "error" are
// represented here as data, not as Go errors.
type CarrierInfo struct {
	MCNumber          string `json:"mc_number"`
	IsValid           string `json:"is_valid"`           // "true" or "false"
	Status            string `json:"status"`             // active, inactive, not_found, error
	CarrierName       string `json:"carrier_name"`
	AllowedToOperate  string `json:"allowed_to_operate"` // "Y" or "N"
	OutOfService      string `json:"out_of_service"`     // "Y" or "N"
	ComplaintCount    string `json:"complaint_count"`
	Percentile        string `json:"percentile"` // BASICs percentile or "N/A"
	TotalViolations   string `json:"total_violations"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	ZipCode           string `json:"zip_code"`
	Phone             string `json:"phone"`
	InsuranceOnFile   string `json:"insurance_on_file"`
	InsuranceRequired string `json:"insurance_required"`
	CarrierOperation  string `json:"carrier_operation"`
	Reason            string `json:"reason"`
}
