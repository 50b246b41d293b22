package cmd

import (
	"bytes"
	"encoding/json"
	"image/color"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/movieinfo/internal/errors"
	"github.com/lepinkainen/movieinfo/internal/omdb"
	"github.com/lepinkainen/movieinfo/internal/testutil"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	origOut, origErr := stdout, stderr
	stdout, stderr = &buf, io.Discard
	t.Cleanup(func() { stdout, stderr = origOut, origErr })
	return &buf
}

func TestSearchCommandText(t *testing.T) {
	srv := testutil.NewServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Dune", r.URL.Query().Get("t"))
		_, _ = w.Write(testutil.MoviePayload(t, map[string]string{"Title": "Dune", "Year": "2021", "Type": "movie"}))
	})
	testutil.SetTestConfig(t, srv.URL)
	out := captureOutput(t)

	err := (&SearchCmd{Title: "Dune", Format: "text"}).Run(&CLI{})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, 9, len(lines))
	assert.Equal(t, "Dune (2021)", lines[0])
	assert.Equal(t, "Director: N/A", lines[3])
	assert.Equal(t, "Type: movie", lines[8])
}

func TestSearchCommandTextWithPoster(t *testing.T) {
	posterSrv := testutil.NewServer(t, testutil.StaticHandler(http.StatusOK, "image/png", testutil.PNG(t, 10, 20, color.White)))
	omdbSrv := testutil.NewServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(testutil.MoviePayload(t, map[string]string{"Title": "Dune", "Poster": posterSrv.URL + "/p.png"}))
	})
	testutil.SetTestConfig(t, omdbSrv.URL)
	out := captureOutput(t)

	assert.NoError(t, (&SearchCmd{Title: "Dune", Format: "text", Poster: true}).Run(&CLI{}))
	assert.Equal(t, 1, posterSrv.Hits())
	assert.Contains(t, out.String(), "▀")
}

func TestSearchCommandMissingPosterIsSilent(t *testing.T) {
	omdbSrv := testutil.NewServer(t, testutil.StaticHandler(http.StatusOK, "application/json",
		testutil.MoviePayload(t, map[string]string{"Title": "Dune"})))
	testutil.SetTestConfig(t, omdbSrv.URL)
	out := captureOutput(t)

	assert.NoError(t, (&SearchCmd{Title: "Dune", Format: "text", Poster: true}).Run(&CLI{}))
	assert.NotContains(t, out.String(), "▀")
	assert.Contains(t, out.String(), "Dune (N/A)")
}

func TestSearchCommandJSON(t *testing.T) {
	srv := testutil.NewServer(t, testutil.StaticHandler(http.StatusOK, "application/json",
		testutil.MoviePayload(t, map[string]string{"Title": "Dune", "Year": "2021"})))
	testutil.SetTestConfig(t, srv.URL)
	out := captureOutput(t)

	assert.NoError(t, (&SearchCmd{Title: "Dune", Format: "json"}).Run(&CLI{}))

	var decoded searchOutput
	assert.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "Dune", decoded.Fields[omdb.KeyTitle])
	assert.Equal(t, omdb.NotAvailable, decoded.Fields[omdb.KeyDirector])
	assert.Equal(t, "Dune (2021)", decoded.Labels[0])
}

func TestSearchCommandYAML(t *testing.T) {
	srv := testutil.NewServer(t, testutil.StaticHandler(http.StatusOK, "application/json",
		testutil.MoviePayload(t, map[string]string{"Title": "Dune", "Year": "2021"})))
	testutil.SetTestConfig(t, srv.URL)
	out := captureOutput(t)

	assert.NoError(t, (&SearchCmd{Title: "Dune", Format: "yaml"}).Run(&CLI{}))

	var decoded searchOutput
	assert.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "2021", decoded.Fields[omdb.KeyYear])
	assert.Equal(t, 9, len(decoded.Labels))
}

func TestSearchCommandNotFound(t *testing.T) {
	srv := testutil.NewServer(t, testutil.StaticHandler(http.StatusOK, "application/json", []byte(testutil.NotFoundPayload)))
	testutil.SetTestConfig(t, srv.URL)
	out := captureOutput(t)

	err := (&SearchCmd{Title: "Qwertyuiop", Format: "text"}).Run(&CLI{})
	assert.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "", out.String())
}

func TestSearchCommandTransportError(t *testing.T) {
	srv := testutil.NewServer(t, testutil.StaticHandler(http.StatusBadGateway, "text/plain", []byte("bad gateway")))
	testutil.SetTestConfig(t, srv.URL)
	captureOutput(t)

	err := (&SearchCmd{Title: "Dune", Format: "text"}).Run(&CLI{})
	assert.Error(t, err)
	assert.True(t, errors.IsTransportError(err))
}

func TestSearchCommandEmptyTitle(t *testing.T) {
	srv := testutil.NewServer(t, testutil.StaticHandler(http.StatusOK, "application/json", nil))
	testutil.SetTestConfig(t, srv.URL)
	captureOutput(t)

	err := (&SearchCmd{Title: " ", Format: "text"}).Run(&CLI{})
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 0, srv.Hits())
}

func TestWriteResultUnknownFormat(t *testing.T) {
	err := writeResult(io.Discard, "xml", omdb.Fields{}, "")
	assert.EqualError(t, err, `unknown output format "xml"`)
}
