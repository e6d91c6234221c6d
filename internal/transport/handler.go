package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-radiology-assistant/internal/config"
	apperrors "go-radiology-assistant/internal/errors"
	"go-radiology-assistant/internal/logger"
	"go-radiology-assistant/internal/repository"
	"go-radiology-assistant/internal/service"
	"go-radiology-assistant/pkg/models"
)

// AnalysisRequest is the JSON body accepted by POST /analyze. Multipart
// submissions carry the same fields as form values plus an "image" file.
type AnalysisRequest struct {
	ImageURL     string `json:"image_url,omitempty"`
	ImageBase64  string `json:"image_base64,omitempty"`
	ClinicalInfo string `json:"clinical_info"`
	PatientName  string `json:"patient_name,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	DoctorName   string `json:"doctor_name,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func NewHandler(svc service.ReportService, images repository.ImageSource, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(requestSizeLimiter(cfg.MaxUploadSize + 1024*1024))

	r.GET("/health", healthCheck(svc))
	r.GET("/examples", listExamples)
	r.GET("/formats", listFormats(cfg))
	r.POST("/analyze", analyzeReport(svc, images, cfg))

	return r
}

func analyzeReport(svc service.ReportService, images repository.ImageSource, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Processing report request")

		req, payload, err := bindRequest(c)
		if err != nil {
			logger.WithError(err).WithField("ip", c.ClientIP()).Error("Invalid request format")
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				respondError(c, http.StatusRequestEntityTooLarge, "request exceeds the upload size limit", err)
				return
			}
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		clinical := models.ClinicalRequest{
			ClinicalInfo: req.ClinicalInfo,
			PatientName:  req.PatientName,
			BirthDate:    req.BirthDate,
			DoctorName:   req.DoctorName,
		}

		// A missing image flows through: the pipeline's validator turns
		// it into a displayable report. Unreadable payloads are
		// transport concerns and fail here.
		if !payload.IsEmpty() {
			img, format, resolveErr := images.Resolve(ctx, payload)
			if resolveErr != nil {
				logger.WithError(resolveErr).WithField("ip", c.ClientIP()).Error("Failed to resolve image")
				respondError(c, apperrors.GetStatusCode(resolveErr), "failed to resolve image", resolveErr)
				return
			}
			clinical.Image = img
			clinical.Format = format
		}

		report := svc.AnalyzeRequest(ctx, clinical)

		logger.WithFields(logrus.Fields{
			"status":             string(report.Status),
			"processing_time_ms": time.Since(startTime).Milliseconds(),
		}).Info("Report request completed")

		c.JSON(http.StatusOK, report)
	}
}

// bindRequest accepts either a multipart form (demo UI upload) or a
// JSON body (API clients).
func bindRequest(c *gin.Context) (AnalysisRequest, repository.ImagePayload, error) {
	var req AnalysisRequest
	var payload repository.ImagePayload

	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") {
		// Parse explicitly: PostForm/FormFile swallow parse errors, and an
		// over-limit body must surface instead of reading as empty fields.
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			return req, payload, err
		}
		req.ClinicalInfo = c.PostForm("clinical_info")
		req.PatientName = c.PostForm("patient_name")
		req.BirthDate = c.PostForm("birth_date")
		req.DoctorName = c.PostForm("doctor_name")
		req.ImageURL = c.PostForm("image_url")

		if file, err := c.FormFile("image"); err == nil {
			f, openErr := file.Open()
			if openErr != nil {
				return req, payload, openErr
			}
			defer f.Close()
			data, readErr := io.ReadAll(f)
			if readErr != nil {
				return req, payload, readErr
			}
			payload.Data = data
		}
		payload.URL = req.ImageURL
		return req, payload, nil
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, payload, err
	}
	payload.Base64 = req.ImageBase64
	payload.URL = req.ImageURL
	return req, payload, nil
}

func healthCheck(svc service.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":           "available",
			"version":          "1.0.0",
			"provider":         svc.ProviderName(),
			"model_configured": svc.ModelConfigured(),
			"time":             time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func listExamples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"examples": models.ExampleClinicalCases(),
	})
}

func listFormats(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"supported_extensions": models.SupportedExtensions(),
			"max_upload_size":      cfg.MaxUploadSize,
		})
	}
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
	})
}
