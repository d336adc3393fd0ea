package cloudsigma

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/ccs/internal/config"
)

// testServer mocks the CloudSigma API and upload endpoints.
type testServer struct {
	server   *httptest.Server
	mux      *http.ServeMux
	registry *prometheus.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mux := http.NewServeMux()
	ts := &testServer{
		server:   httptest.NewServer(mux),
		mux:      mux,
		registry: prometheus.NewRegistry(),
	}
	t.Cleanup(ts.server.Close)
	return ts
}

// client returns a Client pointed at the test server.
func (ts *testServer) client(opts ...ClientOption) *Client {
	cfg := &config.Config{Region: "zrh", Username: "user@example.com", Password: "secret"}
	return NewClient(cfg, append([]ClientOption{
		WithEndpoints(ts.server.URL+"/api/2.0/", ts.server.URL+"/upload/"),
		WithHTTPClient(ts.server.Client()),
		WithRegisterer(ts.registry),
		WithTimeouts(&config.Timeouts{Request: 5 * time.Second, Upload: 5 * time.Second, MaxIdleConns: 1}),
	}, opts...)...)
}

// handleFunc registers a handler for a method and path pattern below /api/2.0.
func (ts *testServer) handleFunc(t *testing.T, method, path string, handler http.HandlerFunc) {
	t.Helper()
	ts.mux.HandleFunc(method+" /api/2.0/"+path, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "user@example.com" || pass != "secret" {
			t.Errorf("unexpected basic auth: %q %q %v", user, pass, ok)
		}
		handler(w, r)
	})
}

// jsonResponse writes a JSON response with the given status code and body.
func jsonResponse(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// decodeBody decodes a JSON request body into a generic document.
func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode body %s: %v", data, err)
	}
	return doc
}
