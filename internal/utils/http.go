package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// HTML characters are not escaped: container files carry tab URLs whose
// query strings are full of '&'. When marshaling fails the response is a
// 500 and the wrapped error is returned.
//
// Example usage:
//
//	WriteJSON(w, container, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	// Encode terminates the value with a newline
	return w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
