package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "go-radiology-assistant/internal/errors"
)

// birthDatePattern matches JJ/MM/AAAA. It is a purely syntactic check:
// calendrically invalid dates such as 31/02/2024 pass, matching the
// behavior the demo has always had.
var birthDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// PatientInfoValidator checks the optional patient fields.
type PatientInfoValidator struct {
	minNameLength int
}

// NewPatientInfoValidator creates a validator with the default minimum
// name length (2 characters).
func NewPatientInfoValidator() *PatientInfoValidator {
	return &PatientInfoValidator{minNameLength: 2}
}

// Validate checks the patient name and birth date. Both fields are
// optional; empty values always pass.
func (v *PatientInfoValidator) Validate(name, birthDate string) error {
	if name != "" && utf8.RuneCountInString(strings.TrimSpace(name)) < v.minNameLength {
		return apperrors.NewValidationError("Le nom du patient doit contenir au moins 2 caractères", nil)
	}

	if birthDate != "" && !birthDatePattern.MatchString(birthDate) {
		return apperrors.NewValidationError("Format de date invalide. Utilisez JJ/MM/AAAA", nil)
	}

	return nil
}
