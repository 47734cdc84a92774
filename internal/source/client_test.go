package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_Normalizes(t *testing.T) {
	if _, err := parseBaseURL("  "); err == nil {
		t.Fatal("parseBaseURL(empty) returned nil error")
	}

	u, err := parseBaseURL("example.com:8080/mocks?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:8080" {
		t.Fatalf("url = %q, want http://example.com:8080", u.String())
	}
	if u.Path != "/mocks/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchTwoStep(t *testing.T) {
	t.Parallel()

	var order []string
	var gotIDs string
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/mocks/ids.json":
			order = append(order, "ids")
			_ = json.NewEncoder(w).Encode(IDList{IDs: []string{"k1", "k2"}})
		case "/mocks/data.json":
			order = append(order, "data")
			gotIDs = r.URL.Query().Get("ids")
			_, _ = w.Write([]byte(`{"items":[{"id":"k1","title":"One","imgUrl":"http://img/1"},{"id":"k2","title":"Two"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/mocks")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	items, err := c.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if strings.Join(order, ",") != "ids,data" {
		t.Fatalf("request order = %v, want ids then data", order)
	}
	if gotIDs != "k1,k2" {
		t.Fatalf("ids query = %q, want k1,k2", gotIDs)
	}
	if len(items) != 2 || items[0].Title != "One" || items[0].ImageURL != "http://img/1" {
		t.Fatalf("items = %#v, want two decoded items", items)
	}
	if !strings.HasPrefix(gotUserAgent, "cubecarousel/") {
		t.Fatalf("User-Agent = %q, want cubecarousel/*", gotUserAgent)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ids.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/data.json":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchIDs(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchIDs error = %v, want decode response error", err)
	}

	_, err = c.FetchItems(context.Background(), []string{"a"})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchItems error = %v, want status 500 error", err)
	}

	_, err = c.Fetch(context.Background())
	if err == nil {
		t.Fatal("Fetch returned nil error after failed id listing")
	}
}
