package fastly

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	c, err := New("test-api-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.endpoint != DefaultEndpoint {
		t.Fatalf("unexpected endpoint %q", c.endpoint)
	}
	if c.http.Timeout != 30*time.Second {
		t.Fatalf("default timeout not set, got %v", c.http.Timeout)
	}
}

func TestNew_MissingAPIKey(t *testing.T) {
	_, err := New("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("missing key must be an argument error")
	}
}

func TestNew_OptionErrorPropagates(t *testing.T) {
	boom := fmt.Errorf("option exploded")
	_, err := New("test-api-key", func(*Client) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected option error, got %v", err)
	}
}

func TestClient_RequestSendsKey(t *testing.T) {
	var gotKey, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Fastly-Key")
		gotUA = r.UserAgent()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c, err := New("test-api-key", WithEndpoint(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	resp, err := c.Request(context.Background(), http.MethodGet, "/service/s1/version", nil)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if gotKey != "test-api-key" {
		t.Fatalf("Fastly-Key not sent: %q", gotKey)
	}
	if gotUA != "fastly-promise-go/"+Version {
		t.Fatalf("unexpected User-Agent %q", gotUA)
	}
	if m, ok := resp.JSON.(map[string]any); !ok || m["status"] != "ok" {
		t.Fatalf("JSON not decoded: %#v", resp.JSON)
	}
}
