// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// Tests for MC number validation

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMCNumber(t *testing.T) {
	tests := []struct {
		name    string
		mc      string
		wantErr bool
	}{
		{"plain digits", "123456", false},
		{"single digit", "7", false},
		{"max length", "12345678", false},
		{"empty", "", true},
		{"too long", "123456789", true},
		{"letters", "12AB56", true},
		{"prefix not stripped here", "MC-123456", true},
		{"negative", "-123456", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMCNumber(tt.mc)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeMCNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain digits", "123456", "123456", false},
		{"whitespace", "  123456  ", "123456", false},
		{"mc prefix", "MC123456", "123456", false},
		{"mc dash prefix", "MC-123456", "123456", false},
		{"lowercase prefix", "mc-123456", "123456", false},
		{"prefix with space", "MC 123456", "123456", false},
		{"empty", "", "", true},
		{"prefix only", "MC-", "", true},
		{"injection attempt", "123456/../admin", "", true},
		{"words", "one two three", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeMCNumber(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
