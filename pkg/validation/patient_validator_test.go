package validation

import (
	"strings"
	"testing"
)

func TestValidatePatientInfo(t *testing.T) {
	tests := []struct {
		name          string
		patientName   string
		birthDate     string
		expectError   bool
		errorContains string
	}{
		{
			name:        "Both fields empty pass",
			patientName: "",
			birthDate:   "",
			expectError: false,
		},
		{
			name:          "One-character name fails",
			patientName:   "A",
			birthDate:     "",
			expectError:   true,
			errorContains: "au moins 2 caractères",
		},
		{
			name:        "Two-character name passes",
			patientName: "Li",
			birthDate:   "",
			expectError: false,
		},
		{
			name:        "Pattern-valid but calendar-invalid date passes",
			patientName: "",
			birthDate:   "31/13/2024",
			expectError: false,
		},
		{
			name:          "ISO date fails the pattern",
			patientName:   "",
			birthDate:     "2024-01-01",
			expectError:   true,
			errorContains: "JJ/MM/AAAA",
		},
		{
			name:          "Single-digit day fails the pattern",
			patientName:   "",
			birthDate:     "1/02/2024",
			expectError:   true,
			errorContains: "Format de date invalide",
		},
		{
			name:        "Well-formed date passes",
			patientName: "Dupont Jean",
			birthDate:   "12/04/1981",
			expectError: false,
		},
	}

	v := NewPatientInfoValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.patientName, tt.birthDate)
			if tt.expectError {
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error containing %q, got %q", tt.errorContains, err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}
