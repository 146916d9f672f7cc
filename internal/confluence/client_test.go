package confluence

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apierrors "confluencemcp/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:   baseURL,
		Email:     "user@example.com",
		APIToken:  "secret-token",
		Timeout:   5 * time.Second,
		UserAgent: "confluence-mcp-server/test",
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient(testConfig("https://example.atlassian.net"), testLogger())
	if client == nil {
		t.Fatal("NewClient returned nil")
	}
	if client.httpClient == nil {
		t.Error("httpClient is nil")
	}

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("user@example.com:secret-token"))
	if client.AuthHeader() != want {
		t.Errorf("auth header = %q, want %q", client.AuthHeader(), want)
	}
}

func TestClient_AuthHeaderStable(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := client.ListSpaces(ctx); err != nil {
			t.Fatalf("ListSpaces failed: %v", err)
		}
	}

	if len(seen) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(seen))
	}
	for i, header := range seen {
		if header != client.AuthHeader() {
			t.Errorf("request %d auth header = %q, want %q", i, header, client.AuthHeader())
		}
	}
}

func TestListSpaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wiki/rest/api/space" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type: %s", r.Header.Get("Content-Type"))
		}
		_, _ = w.Write([]byte(`{
			"results": [
				{"key": "DEV", "name": "Development", "description": {"plain": {"value": "Engineering docs"}}},
				{"key": "HR", "name": "Human Resources"},
				{"key": "OPS", "name": "Operations", "description": {"plain": {"value": ""}}}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())
	spaces, err := client.ListSpaces(context.Background())
	if err != nil {
		t.Fatalf("ListSpaces failed: %v", err)
	}

	if len(spaces) != 3 {
		t.Fatalf("got %d spaces, want 3", len(spaces))
	}

	// Upstream order must be preserved
	wantKeys := []string{"DEV", "HR", "OPS"}
	for i, key := range wantKeys {
		if spaces[i].Key != key {
			t.Errorf("spaces[%d].Key = %q, want %q", i, spaces[i].Key, key)
		}
	}

	if spaces[0].Description.Plain.Value != "Engineering docs" {
		t.Errorf("description = %q, want %q", spaces[0].Description.Plain.Value, "Engineering docs")
	}
	if spaces[1].Description.Plain.Value != "" {
		t.Errorf("missing description should be empty, got %q", spaces[1].Description.Plain.Value)
	}
}

func TestListSpaceContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wiki/rest/api/space/DEV/content" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"page":{"results":[{"id":"100"}]}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())
	body, err := client.ListSpaceContent(context.Background(), "DEV")
	if err != nil {
		t.Fatalf("ListSpaceContent failed: %v", err)
	}
	if len(body) == 0 {
		t.Error("expected non-empty body")
	}
}

func TestSearch(t *testing.T) {
	const cql = `type=page AND text ~ "deploy"`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wiki/rest/api/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("cql"); got != cql {
			t.Errorf("cql = %q, want %q", got, cql)
		}
		_, _ = w.Write([]byte(`{"results":[{"content":{"id":"100","title":"Deploy Guide"}}]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())
	results, err := client.Search(context.Background(), cql)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if string(results) != `[{"content":{"id":"100","title":"Deploy Guide"}}]` {
		t.Errorf("unexpected results: %s", results)
	}
}

func TestSearch_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalSize":0}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())
	results, err := client.Search(context.Background(), "type=page")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if string(results) != "[]" {
		t.Errorf("results = %s, want []", results)
	}
}

func TestGetPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wiki/rest/api/content/12345" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("expand"); got != "body.storage" {
			t.Errorf("expand = %q, want body.storage", got)
		}
		_, _ = w.Write([]byte(`{"id":"12345","title":"Test Page"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())
	body, err := client.GetPage(context.Background(), "12345")
	if err != nil {
		t.Fatalf("GetPage failed: %v", err)
	}
	if string(body) != `{"id":"12345","title":"Test Page"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestClient_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no content with id"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), testLogger())
	_, err := client.GetPage(context.Background(), "999")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	upstream, ok := err.(*apierrors.UpstreamError)
	if !ok {
		t.Fatalf("expected *UpstreamError, got %T", err)
	}
	if upstream.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", upstream.StatusCode)
	}
	if upstream.Body != `{"message":"no content with id"}` {
		t.Errorf("Body = %q", upstream.Body)
	}
}

func TestClient_TrailingSlashBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wiki/rest/api/space" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL+"/"), testLogger())
	if _, err := client.ListSpaces(context.Background()); err != nil {
		t.Fatalf("ListSpaces failed: %v", err)
	}
}

func TestPretty(t *testing.T) {
	out, err := Pretty([]byte(`{"a":1,"b":[2,3]}`))
	if err != nil {
		t.Fatalf("Pretty failed: %v", err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    2,\n    3\n  ]\n}"
	if out != want {
		t.Errorf("Pretty output = %q, want %q", out, want)
	}
}

func TestPretty_InvalidJSON(t *testing.T) {
	if _, err := Pretty([]byte(`{not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
