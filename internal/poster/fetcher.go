// Package poster downloads poster images and fits them into the poster area.
package poster

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/disintegration/imaging"

	"github.com/lepinkainen/movieinfo/internal/errors"
)

const (
	// DefaultWidth and DefaultHeight are the poster area size in pixels.
	DefaultWidth  = 32
	DefaultHeight = 48

	defaultTimeout = 10 * time.Second
	maxImageBytes  = 10 << 20
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Result is the outcome of a poster fetch. Bitmap is nil when the poster is
// unavailable; Err then says why.
type Result struct {
	URL    string
	Bitmap image.Image
	Err    error
}

// Available reports whether a decoded bitmap is present.
func (r Result) Available() bool {
	return r.Bitmap != nil
}

// Fetcher downloads and decodes poster images.
type Fetcher struct {
	httpClient HTTPDoer
	width      int
	height     int
}

// Option is a functional option for configuring the Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.httpClient = c
		}
	}
}

// WithBox sets the pixel area the poster is fitted into.
func WithBox(width, height int) Option {
	return func(f *Fetcher) {
		if width > 0 && height > 0 {
			f.width = width
			f.height = height
		}
	}
}

// NewFetcher creates a Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: defaultTimeout},
		width:      DefaultWidth,
		height:     DefaultHeight,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Box returns the pixel area posters are fitted into.
func (f *Fetcher) Box() (width, height int) {
	return f.width, f.height
}

// Fetch downloads the image at url and fits it into the poster area.
// Failures never escape as errors: they yield an unavailable Result.
func (f *Fetcher) Fetch(ctx context.Context, url string) Result {
	img, err := f.fetch(ctx, url)
	if err != nil {
		slog.Debug("Poster unavailable", "url", url, "error", err)
		return Result{URL: url, Err: errors.NewPosterUnavailableError(url, err)}
	}
	return Result{URL: url, Bitmap: img}
}

func (f *Fetcher) fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d downloading poster", resp.StatusCode)
	}

	img, err := imaging.Decode(io.LimitReader(resp.Body, maxImageBytes), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode poster: %w", err)
	}

	width, height := FitSize(img.Bounds().Dx(), img.Bounds().Dy(), f.width, f.height)
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("poster has no pixels")
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

// FitSize scales srcW x srcH to the largest size inside boxW x boxH that keeps
// the aspect ratio. It returns zeros when either rectangle is empty.
func FitSize(srcW, srcH, boxW, boxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || boxW <= 0 || boxH <= 0 {
		return 0, 0
	}

	scale := math.Min(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))
	width := int(math.Round(float64(srcW) * scale))
	height := int(math.Round(float64(srcH) * scale))

	return clamp(width, 1, boxW), clamp(height, 1, boxH)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
