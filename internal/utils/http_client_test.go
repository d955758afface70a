package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{})

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient(HTTPClientOptions{})
	client2 := NewHTTPClient(HTTPClientOptions{})

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_Options(t *testing.T) {
	client := NewHTTPClient(HTTPClientOptions{
		BaseURL:   " https://api.example.com/v1/ ",
		Timeout:   5 * time.Second,
		UserAgent: "api-caller-test",
	})

	if client.BaseURL != "https://api.example.com/v1" {
		t.Errorf("expected trimmed base URL, got %q", client.BaseURL)
	}
	if got := client.GetClient().Timeout; got != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", got)
	}
	if got := client.Header.Get("User-Agent"); got != "api-caller-test" {
		t.Errorf("expected user agent header, got %q", got)
	}
	if client.RetryCount != 0 {
		t.Errorf("expected retries disabled, got %d", client.RetryCount)
	}
}

func TestHTTPClient_ResolvesRelativeURLs(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(HTTPClientOptions{BaseURL: srv.URL + "/api/"})

	resp, err := client.R().Get("/items")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode())
	}
	if gotPath != "/api/items" {
		t.Errorf("expected /api/items, got %s", gotPath)
	}
}
