package validation

import (
	"strings"
	"testing"

	apperrors "go-radiology-assistant/internal/errors"
)

func TestValidateClinicalInfo(t *testing.T) {
	tests := []struct {
		name          string
		clinicalInfo  string
		expectError   bool
		errorContains string
	}{
		{
			name:          "Empty text fails",
			clinicalInfo:  "",
			expectError:   true,
			errorContains: "obligatoires",
		},
		{
			name:          "Whitespace-only text fails",
			clinicalInfo:  "   \t\n",
			expectError:   true,
			errorContains: "obligatoires",
		},
		{
			name:          "Two characters fail as too short",
			clinicalInfo:  "ok",
			expectError:   true,
			errorContains: "trop courts",
		},
		{
			name:          "Over 2000 characters fails as too long",
			clinicalInfo:  strings.Repeat("a", 2001),
			expectError:   true,
			errorContains: "trop longs",
		},
		{
			name:         "Fifty-character sentence passes",
			clinicalInfo: "Patient de 45 ans avec toux persistante et fièvre.",
			expectError:  false,
		},
		{
			name:         "Exactly 2000 characters passes",
			clinicalInfo: strings.Repeat("a", 2000),
			expectError:  false,
		},
	}

	v := NewClinicalInfoValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.clinicalInfo)
			if tt.expectError {
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}
				appErr, ok := err.(*apperrors.AppError)
				if !ok {
					t.Fatalf("Expected AppError, got %T", err)
				}
				if !strings.Contains(appErr.Message, tt.errorContains) {
					t.Errorf("Expected message containing %q, got %q", tt.errorContains, appErr.Message)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}
