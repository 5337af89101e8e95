// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without Handler.Init so no services
// are needed.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/containers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/containers", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Patch("/containers/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/containers", http.StatusOK},
		{http.MethodPost, "/containers", http.StatusCreated},
		{http.MethodPatch, "/containers/abc", http.StatusOK},
		{http.MethodDelete, "/containers", http.StatusNotFound},
		{http.MethodPut, "/containers", http.StatusNotFound},
		{http.MethodGet, "/containers/abc", http.StatusNotFound},
		{http.MethodGet, "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
