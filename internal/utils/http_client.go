package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies OneTabCloud in outbound requests.
const UserAgent = "onetabcloud"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.example.com", 30*time.Second)
//	resp, err := client.R().Get("/containers")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A positive timeout
// bounds each request including reading the body.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. The client never retries.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
