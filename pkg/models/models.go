package models

import "image"

// ClinicalRequest carries everything a single analysis request needs.
// All fields are request-scoped; nothing is retained after the report
// is produced.
type ClinicalRequest struct {
	// Image is the decoded radiology image. May be nil when the caller
	// supplied no image; validation rejects that case.
	Image image.Image

	// Format is the decoder format tag ("jpeg", "png", ...). Empty when
	// the origin did not carry one (pasted or raw-byte images), which is
	// not an error.
	Format string

	// ClinicalInfo is the mandatory free-text clinical context.
	ClinicalInfo string

	// Optional patient metadata.
	PatientName string
	BirthDate   string
	DoctorName  string
}

// ReportStatus categorizes the produced report for logging and clients.
type ReportStatus string

const (
	StatusSuccess            ReportStatus = "success"
	StatusConfigurationError ReportStatus = "configuration_error"
	StatusValidationError    ReportStatus = "validation_error"
	StatusBlocked            ReportStatus = "blocked"
	StatusTruncated          ReportStatus = "truncated"
	StatusEmpty              ReportStatus = "empty"
	StatusMalformed          ReportStatus = "malformed"
	StatusTransportError     ReportStatus = "transport_error"
)

// Report is the sole value the pipeline hands back to the presentation
// layer: displayable markdown-flavored text, never a fault.
type Report struct {
	Text   string       `json:"report"`
	Status ReportStatus `json:"status"`
}

// IsSuccess reports whether the text is a generated medical report rather
// than a user-facing error message.
func (r Report) IsSuccess() bool {
	return r.Status == StatusSuccess
}
