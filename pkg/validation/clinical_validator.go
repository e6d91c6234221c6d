package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "go-radiology-assistant/internal/errors"
)

// ClinicalInfoValidator enforces length bounds on the mandatory
// clinical-context text.
type ClinicalInfoValidator struct {
	minLength int
	maxLength int
}

// NewClinicalInfoValidator creates a validator with the default bounds
// (10–2000 characters).
func NewClinicalInfoValidator() *ClinicalInfoValidator {
	return &ClinicalInfoValidator{
		minLength: 10,
		maxLength: 2000,
	}
}

// Validate checks the clinical information text. The minimum applies to
// the trimmed text, the maximum to the raw text.
func (v *ClinicalInfoValidator) Validate(clinicalInfo string) error {
	if strings.TrimSpace(clinicalInfo) == "" {
		return apperrors.NewValidationError("Les renseignements cliniques sont obligatoires", nil)
	}

	if utf8.RuneCountInString(strings.TrimSpace(clinicalInfo)) < v.minLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("Les renseignements cliniques sont trop courts (minimum %d caractères)", v.minLength), nil)
	}

	if utf8.RuneCountInString(clinicalInfo) > v.maxLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("Les renseignements cliniques sont trop longs (maximum %d caractères)", v.maxLength), nil)
	}

	return nil
}
