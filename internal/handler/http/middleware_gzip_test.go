// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

func TestGZip_CompressesResponseWhenAccepted(t *testing.T) {
	const payload = `{"files":{"chunk_0.json":{"content":"[]"}}}`

	for _, accept := range []string{"gzip", "deflate, gzip, br", "gzip;q=1.0, identity;q=0.5"} {
		t.Run(accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/containers", strings.NewReader(payload))
			req.Header.Set("Accept-Encoding", accept)
			rec := httptest.NewRecorder()

			withGZip(echoHandler()).ServeHTTP(rec, req)

			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			assert.Equal(t, payload, gunzip(t, rec.Body.Bytes()))
		})
	}
}

func TestGZip_PlainWhenNotAccepted(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/containers", strings.NewReader("plain"))
	rec := httptest.NewRecorder()

	withGZip(echoHandler()).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rec.Body.String())
}

func TestGZip_InflatesRequestBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/containers/1", bytes.NewReader(gzipBytes(t, "inflated")))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "inflated", rec.Body.String())
}

func TestGZip_RejectsInvalidGzipBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/containers/1", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	called := false
	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestGZip_RoundTripBothWays(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/containers", bytes.NewReader(gzipBytes(t, "both ways")))
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "both ways", gunzip(t, rec.Body.Bytes()))
}

func TestGZip_ImplicitStatusStillSetsEncoding(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("no explicit header"))
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "no explicit header", gunzip(t, rec.Body.Bytes()))
}
