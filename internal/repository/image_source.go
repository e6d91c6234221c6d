package repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"

	apperrors "go-radiology-assistant/internal/errors"
	"go-radiology-assistant/internal/storage"
)

// ImagePayload is the raw image input a caller may supply: direct bytes
// (file upload), a base64 string (JSON body) or a URL. At most one is
// expected; precedence is bytes, then base64, then URL.
type ImagePayload struct {
	Data   []byte
	Base64 string
	URL    string
}

// IsEmpty reports whether no image was supplied at all.
func (p ImagePayload) IsEmpty() bool {
	return len(p.Data) == 0 && p.Base64 == "" && p.URL == ""
}

// ImageSource resolves an incoming payload to a decoded image plus its
// decoder format tag. The tag is empty for inputs whose format could
// not be determined; validation treats that as acceptable.
type ImageSource interface {
	Resolve(ctx context.Context, payload ImagePayload) (image.Image, string, error)
}

type imageSource struct {
	fetcher storage.ImageFetcher
}

// NewImageSource creates an image source backed by the given fetcher
// for URL payloads.
func NewImageSource(fetcher storage.ImageFetcher) ImageSource {
	return &imageSource{fetcher: fetcher}
}

func (s *imageSource) Resolve(ctx context.Context, payload ImagePayload) (image.Image, string, error) {
	switch {
	case len(payload.Data) > 0:
		return decodeBytes(payload.Data)
	case payload.Base64 != "":
		data, err := base64.StdEncoding.DecodeString(payload.Base64)
		if err != nil {
			return nil, "", apperrors.NewValidationError("Image base64 illisible", err)
		}
		return decodeBytes(data)
	case payload.URL != "":
		img, format, err := s.fetcher.FetchImage(ctx, payload.URL)
		if err != nil {
			return nil, "", apperrors.NewNetworkError("Impossible de récupérer l'image", err)
		}
		return img, format, nil
	default:
		return nil, "", apperrors.NewValidationError("Aucune image fournie", nil)
	}
}

func decodeBytes(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", apperrors.NewValidationError("Impossible de lire l'image",
			fmt.Errorf("decode: %w", err))
	}
	return img, format, nil
}
