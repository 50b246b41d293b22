// Package testutil provides common test utilities for the movieinfo project.
package testutil

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// PNG encodes a solid w x h image filled with c.
func PNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

// MoviePayload returns an OMDb success body holding fields.
func MoviePayload(t *testing.T, fields map[string]string) []byte {
	t.Helper()

	body := map[string]string{"Response": "True"}
	for k, v := range fields {
		body[k] = v
	}
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	return data
}

// NotFoundPayload is the body OMDb sends when a title has no match.
const NotFoundPayload = `{"Response":"False","Error":"Movie not found!"}`

// Server is an httptest server that counts requests.
type Server struct {
	*httptest.Server
	hits atomic.Int64
}

// Hits returns the number of requests served so far.
func (s *Server) Hits() int {
	return int(s.hits.Load())
}

// NewServer starts a server answering every request with handler. It is
// closed when the test completes.
func NewServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()

	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// StaticHandler answers with status and body.
func StaticHandler(status int, contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}
}
