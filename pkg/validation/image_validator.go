package validation

import (
	"image"
	"image/color"
	"strings"

	apperrors "go-radiology-assistant/internal/errors"
	"go-radiology-assistant/pkg/models"
)

// ImageValidator checks that an uploaded image is suitable for
// radiological analysis before any network call is made.
type ImageValidator struct {
	minDimension     int
	supportedFormats []string
}

// NewImageValidator creates an image validator with the default minimum
// dimension (100px) and supported format set.
func NewImageValidator() *ImageValidator {
	return &ImageValidator{
		minDimension:     100,
		supportedFormats: models.SupportedFormatTags(),
	}
}

// NewImageValidatorWithOptions creates an image validator with a custom
// minimum dimension and format set.
func NewImageValidatorWithOptions(minDimension int, formats []string) *ImageValidator {
	return &ImageValidator{
		minDimension:     minDimension,
		supportedFormats: formats,
	}
}

// Validate checks the image dimensions, format tag and color mode.
// formatTag is the decoder's format name and may be empty: pasted or
// raw-byte images carry no tag and are treated as acceptable.
func (v *ImageValidator) Validate(img image.Image, formatTag string) error {
	if img == nil {
		return apperrors.NewValidationError("Aucune image fournie", nil)
	}

	bounds := img.Bounds()
	if min(bounds.Dx(), bounds.Dy()) < v.minDimension {
		return apperrors.NewValidationError("Image trop petite pour l'analyse", nil)
	}

	if formatTag != "" && !v.isSupportedFormat(formatTag) {
		return apperrors.NewValidationError("Format d'image non supporté", nil)
	}

	if !isSupportedColorMode(img) {
		return apperrors.NewValidationError("Mode colorimétrique non supporté", nil)
	}

	return nil
}

func (v *ImageValidator) isSupportedFormat(tag string) bool {
	for _, f := range v.supportedFormats {
		if strings.EqualFold(f, tag) {
			return true
		}
	}
	return false
}

// isSupportedColorMode accepts RGB-like, grayscale and paletted images.
// JPEG decodes to YCbCr, which is an RGB representation for our purposes.
func isSupportedColorMode(img image.Image) bool {
	switch img.ColorModel() {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model,
		color.YCbCrModel, color.NYCbCrAModel, color.GrayModel, color.Gray16Model:
		return true
	}
	if _, ok := img.ColorModel().(color.Palette); ok {
		return true
	}
	return false
}
