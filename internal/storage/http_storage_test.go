package storage

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 120, 120))); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestFetchImage_Success(t *testing.T) {
	payload := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	img, format, err := fetcher.FetchImage(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if format != "png" {
		t.Errorf("Expected png format tag, got %q", format)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 120 {
		t.Errorf("Expected 120x120 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestFetchImage_RetriesOnServerError(t *testing.T) {
	payload := pngBytes(t)
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	_, format, err := fetcher.FetchImage(context.Background(), server.URL)

	if err != nil {
		t.Fatalf("Expected success after retries, got: %v", err)
	}
	if format != "png" {
		t.Errorf("Expected png format tag, got %q", format)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestFetchImage_NoRetryOnClientError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	_, _, err := fetcher.FetchImage(context.Background(), server.URL)

	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if !strings.Contains(err.Error(), "status code 404") {
		t.Errorf("Expected status in error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected a single attempt for a 4xx response, got %d", attempts)
	}
}

func TestFetchImage_ExhaustsRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	_, _, err := fetcher.FetchImage(context.Background(), server.URL)

	if err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("Expected attempt count in error, got: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}

func TestFetchImage_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	_, _, err := fetcher.FetchImage(context.Background(), server.URL)

	if err == nil {
		t.Fatal("Expected decode error")
	}
	if !strings.Contains(err.Error(), "failed to decode image") {
		t.Errorf("Expected decode failure, got: %v", err)
	}
}

func TestFetchImage_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	_, _, err := fetcher.FetchImage(ctx, server.URL)

	if err == nil {
		t.Fatal("Expected error with a cancelled context")
	}
}
