package validation

import (
	"image"
	"strings"
	"testing"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name          string
		img           image.Image
		formatTag     string
		expectError   bool
		errorContains string
	}{
		{
			name:          "Nil image fails",
			img:           nil,
			formatTag:     "",
			expectError:   true,
			errorContains: "Aucune image fournie",
		},
		{
			name:          "Short side under 100px fails",
			img:           image.NewNRGBA(image.Rect(0, 0, 400, 80)),
			formatTag:     "jpeg",
			expectError:   true,
			errorContains: "trop petite",
		},
		{
			name:        "Valid RGB image with jpeg tag passes",
			img:         image.NewNRGBA(image.Rect(0, 0, 400, 300)),
			formatTag:   "jpeg",
			expectError: false,
		},
		{
			name:        "Missing format tag is acceptable",
			img:         image.NewNRGBA(image.Rect(0, 0, 400, 300)),
			formatTag:   "",
			expectError: false,
		},
		{
			name:          "Unsupported format tag fails",
			img:           image.NewNRGBA(image.Rect(0, 0, 400, 300)),
			formatTag:     "gif",
			expectError:   true,
			errorContains: "Format d'image non supporté",
		},
		{
			name:        "Format tag comparison is case-insensitive",
			img:         image.NewNRGBA(image.Rect(0, 0, 400, 300)),
			formatTag:   "PNG",
			expectError: false,
		},
		{
			name:        "Grayscale image passes",
			img:         image.NewGray(image.Rect(0, 0, 400, 300)),
			formatTag:   "png",
			expectError: false,
		},
		{
			name:        "YCbCr image passes",
			img:         image.NewYCbCr(image.Rect(0, 0, 400, 300), image.YCbCrSubsampleRatio420),
			formatTag:   "jpeg",
			expectError: false,
		},
		{
			name:          "CMYK image fails the color-mode check",
			img:           image.NewCMYK(image.Rect(0, 0, 400, 300)),
			formatTag:     "jpeg",
			expectError:   true,
			errorContains: "Mode colorimétrique",
		},
	}

	v := NewImageValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.img, tt.formatTag)
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

func TestValidateImage_PalettedPasses(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 400, 300), nil)
	v := NewImageValidator()

	if err := v.Validate(img, ""); err != nil {
		t.Errorf("Expected paletted image to pass, got: %v", err)
	}
}
