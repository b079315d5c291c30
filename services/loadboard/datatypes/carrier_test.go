// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// Tests for carrier request validation

package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarrierValidationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mc      string
		wantErr bool
	}{
		{"digits", "123456", false},
		{"mc prefix", "MC-123456", false},
		{"spoken form", "mc 123456", false},
		{"empty", "", true},
		{"letters", "ABCDEF", true},
		{"too long", "123456789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CarrierValidationRequest{MCNumber: tt.mc}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCallLogEntry_RoundCount(t *testing.T) {
	assert.Equal(t, 0, CallLogEntry{}.RoundCount())
	assert.Equal(t, 0, CallLogEntry{NumRounds: "a few"}.RoundCount())
	assert.Equal(t, 3, CallLogEntry{NumRounds: " 3 "}.RoundCount())
}

func TestCallLogEntry_FinalRateValue(t *testing.T) {
	_, ok := CallLogEntry{}.FinalRateValue()
	assert.False(t, ok)

	rate, ok := CallLogEntry{FinalRate: "1500.25"}.FinalRateValue()
	assert.True(t, ok)
	assert.InDelta(t, 1500.25, rate, 1e-9)
}
