package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WennerMedia/fastly-promise/internal/types"
)

func TestPurgeURL_Success(t *testing.T) {
	t.Parallel()
	var gotMethod, gotKey, gotSoft string
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotKey = r.Header.Get("Fastly-Key")
		gotSoft = r.Header.Get("Fastly-Soft-Purge")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.Purge{Status: "ok", ID: "purge-1"})
	}))
	defer cdn.Close()

	got, err := PurgeURL(context.Background(), http.DefaultClient, "https://api.fastly.example", testKey, cdn.URL+"/img.png", false)
	if err != nil || got == nil || got.ID != "purge-1" {
		t.Fatalf("PurgeURL unexpected: got=%+v err=%v", got, err)
	}
	if gotMethod != "PURGE" {
		t.Fatalf("expected PURGE method, got %q", gotMethod)
	}
	if gotKey != "" {
		t.Fatalf("Fastly-Key must be stripped on a CDN host, got %q", gotKey)
	}
	if gotSoft != "" {
		t.Fatalf("soft header must be absent for a hard purge")
	}
}

func TestPurgeURL_Soft(t *testing.T) {
	t.Parallel()
	var gotSoft string
	cdn := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSoft = r.Header.Get("Fastly-Soft-Purge")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.Purge{Status: "ok", ID: "purge-2"})
	}))
	defer cdn.Close()
	if _, err := PurgeURL(context.Background(), http.DefaultClient, "https://api.fastly.example", testKey, cdn.URL+"/img.png", true); err != nil {
		t.Fatalf("PurgeURL error: %v", err)
	}
	if gotSoft != "1" {
		t.Fatalf("expected Fastly-Soft-Purge: 1, got %q", gotSoft)
	}
}

func TestPurgeURL_RequiresAbsoluteURL(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	_, err := PurgeURL(context.Background(), hc, "https://api.fastly.example", testKey, "/img.png", false)
	if !errors.Is(err, types.ErrPurgeURLNotAbsolute) {
		t.Fatalf("expected ErrPurgeURLNotAbsolute, got %v", err)
	}
	if !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("purge url error must be an argument error")
	}
	if _, err := PurgeURL(context.Background(), hc, "https://api.fastly.example", testKey, "", false); !errors.Is(err, types.ErrMissingURL) {
		t.Fatalf("expected ErrMissingURL, got %v", err)
	}
}

func TestPurgeAll_Success(t *testing.T) {
	t.Parallel()
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.Purge{Status: "ok"})
	}))
	defer srv.Close()
	if _, err := PurgeAll(context.Background(), srv.Client(), srv.URL, testKey, "s1"); err != nil {
		t.Fatalf("PurgeAll error: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/service/s1/purge_all" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestPurgeAll_MissingServiceID(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := PurgeAll(context.Background(), hc, "http://example.com", testKey, ""); !errors.Is(err, types.ErrMissingServiceID) {
		t.Fatalf("expected ErrMissingServiceID, got %v", err)
	}
}

func TestPurgeKey_Success(t *testing.T) {
	t.Parallel()
	var gotMethod, gotPath, gotSoft string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotSoft = r.Header.Get("Fastly-Soft-Purge")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.Purge{Status: "ok", ID: "purge-3"})
	}))
	defer srv.Close()
	got, err := PurgeKey(context.Background(), srv.Client(), srv.URL, testKey, "s1", "homepage", true)
	if err != nil || got == nil || got.ID != "purge-3" {
		t.Fatalf("PurgeKey unexpected: got=%+v err=%v", got, err)
	}
	if gotMethod != http.MethodPost || gotPath != "/service/s1/purge/homepage" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
	if gotSoft != "1" {
		t.Fatalf("expected soft purge header")
	}
}

func TestPurgeKey_Validation(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := PurgeKey(context.Background(), hc, "http://example.com", testKey, "", "k", false); !errors.Is(err, types.ErrMissingServiceID) {
		t.Fatalf("expected ErrMissingServiceID, got %v", err)
	}
	if _, err := PurgeKey(context.Background(), hc, "http://example.com", testKey, "s1", "", false); !errors.Is(err, types.ErrMissingPurgeKey) {
		t.Fatalf("expected ErrMissingPurgeKey, got %v", err)
	}
}
