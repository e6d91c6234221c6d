package storage

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ImageFetcher retrieves a radiology image from a URL. The returned
// format tag is the decoder name ("jpeg", "png", ...).
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageURL string) (image.Image, string, error)
}

// HTTPImageFetcher fetches images over HTTP with bounded retries.
type HTTPImageFetcher struct {
	client *http.Client
}

// NewHTTPImageFetcher creates an HTTP image fetcher. The timeout bounds
// each individual attempt.
func NewHTTPImageFetcher(timeout time.Duration) ImageFetcher {
	return &HTTPImageFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
	}
}

// FetchImage downloads and decodes the image. 5xx responses are retried
// up to three attempts with linear backoff; 4xx responses fail
// immediately since retrying cannot help.
func (h *HTTPImageFetcher) FetchImage(ctx context.Context, imageURL string) (image.Image, string, error) {
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, "", ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
		if err != nil {
			return nil, "", fmt.Errorf("invalid URL: %w", err)
		}
		req.Header.Set("Accept", "image/jpeg, image/png, image/tiff, image/bmp, */*")
		req.Header.Set("User-Agent", "Go-Radiology-Assistant/1.0")

		resp, err := h.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusOK {
			img, format, decodeErr := image.Decode(resp.Body)
			resp.Body.Close()
			if decodeErr != nil {
				return nil, "", fmt.Errorf("failed to decode image: %w", decodeErr)
			}
			return img, format, nil
		}

		resp.Body.Close()
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, "", fmt.Errorf("client error: status code %d", resp.StatusCode)
		}
		lastErr = fmt.Errorf("server error: status code %d", resp.StatusCode)
	}

	return nil, "", fmt.Errorf("failed to fetch image after 3 attempts: %w", lastErr)
}
