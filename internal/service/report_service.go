package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"go-radiology-assistant/internal/cleaner"
	"go-radiology-assistant/internal/config"
	apperrors "go-radiology-assistant/internal/errors"
	"go-radiology-assistant/internal/llm"
	"go-radiology-assistant/internal/logger"
	"go-radiology-assistant/internal/preprocess"
	"go-radiology-assistant/internal/prompt"
	"go-radiology-assistant/pkg/models"
	"go-radiology-assistant/pkg/validation"
)

// ReportService is the single boundary the presentation layer calls.
type ReportService interface {
	// AnalyzeRequest runs the full pipeline and always returns a
	// displayable report, never a fault.
	AnalyzeRequest(ctx context.Context, req models.ClinicalRequest) models.Report

	// TestConnection checks provider reachability. Advisory only.
	TestConnection(ctx context.Context) (bool, string)

	// ProviderName returns the configured generator label.
	ProviderName() string

	// ModelConfigured reports whether the generator has a usable
	// credential. Used by the health endpoint; no network call.
	ModelConfigured() bool
}

type reportService struct {
	client            llm.Client
	preprocessor      *preprocess.Preprocessor
	prompts           *prompt.Builder
	cleaner           *cleaner.Cleaner
	imageValidator    *validation.ImageValidator
	clinicalValidator *validation.ClinicalInfoValidator
	patientValidator  *validation.PatientInfoValidator
	formatOptions     cleaner.FormatOptions
	modelTimeout      time.Duration
	now               func() time.Time
}

// NewReportService wires the pipeline components around the given
// generator client. client may be nil or disabled; analysis then
// short-circuits with a configuration-error report.
func NewReportService(client llm.Client, cfg *config.Config) ReportService {
	return &reportService{
		client:            client,
		preprocessor:      preprocess.NewPreprocessor(),
		prompts:           prompt.NewBuilder(),
		cleaner:           cleaner.NewCleaner(),
		imageValidator:    validation.NewImageValidator(),
		clinicalValidator: validation.NewClinicalInfoValidator(),
		patientValidator:  validation.NewPatientInfoValidator(),
		formatOptions: cleaner.FormatOptions{
			RewriteSectionHeadings: false,
			AppendDisclaimer:       cfg.AppendDisclaimer,
		},
		modelTimeout: cfg.ModelTimeout,
		now:          time.Now,
	}
}

func (s *reportService) ProviderName() string {
	if s.client == nil {
		return "none"
	}
	return s.client.SourceName()
}

func (s *reportService) ModelConfigured() bool {
	return s.client != nil && s.client.Enabled()
}

func (s *reportService) TestConnection(ctx context.Context) (bool, string) {
	if s.client == nil {
		return false, "Aucun fournisseur de modèle configuré"
	}
	return s.client.TestConnection(ctx)
}

func (s *reportService) AnalyzeRequest(ctx context.Context, req models.ClinicalRequest) models.Report {
	start := time.Now()

	// Configuration check comes first: without a credential nothing
	// else runs, not even validation.
	if s.client == nil || !s.client.Enabled() {
		return models.Report{Text: configurationErrorMessage, Status: models.StatusConfigurationError}
	}

	if err := s.imageValidator.Validate(req.Image, req.Format); err != nil {
		return validationReport("Image invalide", err)
	}
	if err := s.clinicalValidator.Validate(req.ClinicalInfo); err != nil {
		return validationReport("Renseignements cliniques invalides", err)
	}
	if err := s.patientValidator.Validate(req.PatientName, req.BirthDate); err != nil {
		return validationReport("Informations patient invalides", err)
	}

	prepared := s.preprocessor.Prepare(req.Image)
	analysisPrompt := s.prompts.Build(req.ClinicalInfo, req.PatientName, req.BirthDate, req.DoctorName, s.now())

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, prepared, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		logger.WithError(err).Error("Failed to encode prepared image")
		return models.Report{
			Text:   "❌ **Erreur interne :** l'image n'a pas pu être préparée pour l'analyse. Veuillez réessayer.",
			Status: models.StatusMalformed,
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.modelTimeout)
	defer cancel()

	outcome := s.client.Analyze(callCtx, analysisPrompt, buf.Bytes())

	logger.WithFields(logrus.Fields{
		"provider":           s.client.SourceName(),
		"outcome":            string(outcome.Kind),
		"processing_time_ms": time.Since(start).Milliseconds(),
	}).Info("Analysis request completed")

	return s.outcomeToReport(outcome)
}

func (s *reportService) outcomeToReport(outcome llm.Outcome) models.Report {
	switch outcome.Kind {
	case llm.OutcomeSuccess:
		text := s.cleaner.Clean(outcome.Text)
		text = cleaner.Format(text, s.formatOptions)
		return models.Report{Text: text, Status: models.StatusSuccess}

	case llm.OutcomeBlockedSafety:
		return models.Report{Text: blockedSafetyMessage, Status: models.StatusBlocked}

	case llm.OutcomeBlockedRecitation:
		return models.Report{Text: blockedRecitationMessage, Status: models.StatusBlocked}

	case llm.OutcomeTruncated:
		return models.Report{Text: truncatedMessage, Status: models.StatusTruncated}

	case llm.OutcomeEmpty:
		return models.Report{Text: emptyMessage, Status: models.StatusEmpty}

	case llm.OutcomeMalformed:
		return models.Report{
			Text:   fmt.Sprintf(malformedMessageFmt, outcome.FinishReason),
			Status: models.StatusMalformed,
		}

	case llm.OutcomeTransportError:
		return models.Report{
			Text:   transportErrorMessage(outcome),
			Status: models.StatusTransportError,
		}

	default:
		return models.Report{Text: emptyMessage, Status: models.StatusMalformed}
	}
}

func validationReport(label string, err error) models.Report {
	message := err.Error()
	if appErr, ok := err.(*apperrors.AppError); ok {
		message = appErr.Message
	}
	return models.Report{
		Text:   fmt.Sprintf("❌ **%s :** %s", label, message),
		Status: models.StatusValidationError,
	}
}
