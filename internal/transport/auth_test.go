package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestQueryAuth(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		token   string
		rawURL  string
		wantKey string
		wantVal string
	}{
		{
			name:    "plain url",
			param:   "api_key",
			token:   "secret",
			rawURL:  "http://upstream/movies",
			wantKey: "api_key",
			wantVal: "secret",
		},
		{
			name:    "preserves existing query",
			param:   "api_key",
			token:   "secret",
			rawURL:  "http://upstream/movies?page=2",
			wantKey: "page",
			wantVal: "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, tt.rawURL, nil)
			if err != nil {
				t.Fatalf("NewRequest: %v", err)
			}

			auth := &QueryAuth{Param: tt.param}
			auth.Apply(req, tt.token)

			query := req.URL.Query()
			if got := query.Get(tt.wantKey); got != tt.wantVal {
				t.Errorf("query %s = %q, want %q", tt.wantKey, got, tt.wantVal)
			}
			if got := query.Get("api_key"); got != tt.token {
				t.Errorf("api_key = %q, want %q", got, tt.token)
			}
		})
	}
}

func TestQueryAuthEmptyToken(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://upstream/movies", nil)
	auth := &QueryAuth{Param: "api_key"}
	auth.Apply(req, "")

	if strings.Contains(req.URL.RawQuery, "api_key") {
		t.Errorf("empty token should not be attached, got query %q", req.URL.RawQuery)
	}
}

func TestNoAuth(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://upstream/movies", nil)
	auth := &NoAuth{}
	auth.Apply(req, "secret")

	if req.URL.RawQuery != "" || len(req.Header) != 0 {
		t.Error("NoAuth should not modify the request")
	}
}

func TestHeaderAuth(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://upstream/movies", nil)
	auth := &HeaderAuth{Header: "X-Api-Token"}
	auth.Apply(req, "secret")

	if got := req.Header.Get("X-Api-Token"); got != "secret" {
		t.Errorf("header = %q, want %q", got, "secret")
	}
}

func TestClientAttachesCredential(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := New(&QueryAuth{Param: "api_key"}, "secret")
	resp, err := client.Get(context.Background(), server.URL+"/movies")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close() //nolint:errcheck

	if gotQuery.Get("api_key") != "secret" {
		t.Errorf("server saw api_key=%q, want %q", gotQuery.Get("api_key"), "secret")
	}
}

func TestClientRejectsBadScheme(t *testing.T) {
	client := New(&NoAuth{}, "")

	if _, err := client.Get(context.Background(), "ftp://upstream/movies"); err == nil {
		t.Error("expected error for non-http scheme")
	}
	if _, err := client.Get(context.Background(), "://bad"); err == nil {
		t.Error("expected error for malformed URL")
	}
}
