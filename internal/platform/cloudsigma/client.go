package cloudsigma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/ccs/internal/config"
	"github.com/imamik/ccs/internal/resource"
)

// Client talks to the CloudSigma API of one region.
type Client struct {
	endpoint       string
	uploadEndpoint string
	username       string
	password       string

	timeouts     *config.Timeouts
	httpClient   *http.Client
	uploadClient *http.Client
	registerer   prometheus.Registerer
	metrics      *metrics
	log          logr.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeouts sets custom timeouts for the client.
func WithTimeouts(t *config.Timeouts) ClientOption {
	return func(c *Client) {
		c.timeouts = t
	}
}

// WithHTTPClient sets the HTTP client used for both API requests and uploads.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
		c.uploadClient = hc
	}
}

// WithEndpoints overrides the API and upload URLs derived from the region.
func WithEndpoints(api, upload string) ClientOption {
	return func(c *Client) {
		c.endpoint = api
		c.uploadEndpoint = upload
	}
}

// WithRegisterer registers the request metrics with reg.
func WithRegisterer(reg prometheus.Registerer) ClientOption {
	return func(c *Client) {
		c.registerer = reg
	}
}

// WithLogger logs every request at V(1).
func WithLogger(log logr.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a client for the account described by cfg.
func NewClient(cfg *config.Config, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:       cfg.APIEndpoint(),
		uploadEndpoint: cfg.UploadEndpoint(),
		username:       cfg.Username,
		password:       cfg.Password,
		log:            logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if !strings.HasSuffix(c.endpoint, "/") {
		c.endpoint += "/"
	}
	if c.timeouts == nil {
		c.timeouts = config.LoadTimeouts()
	}
	if c.httpClient == nil {
		c.httpClient = pooledClient(c.timeouts.Request, c.timeouts.MaxIdleConns)
	}
	if c.uploadClient == nil {
		c.uploadClient = pooledClient(c.timeouts.Upload, 1)
	}
	c.metrics = newMetrics(c.registerer)
	return c
}

func pooledClient(timeout time.Duration, maxIdle int) *http.Client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = timeout
	if t, ok := hc.Transport.(*http.Transport); ok {
		t.MaxIdleConnsPerHost = maxIdle
	}
	return hc
}

// Services returns the client's services in the form the resource registry
// consumes.
func (c *Client) Services() resource.Services {
	return resource.Services{
		Servers:       &serverService{collection[resource.Server]{c: c, path: "servers"}},
		Drives:        &driveService{collection[resource.Drive]{c: c, path: "drives"}},
		VLANs:         collection[resource.VLAN]{c: c, path: "vlans"},
		IPs:           collection[resource.IP]{c: c, path: "ips"},
		Subscriptions: collection[resource.Subscription]{c: c, path: "subscriptions"},
		Capabilities:  capabilityService{c: c},
	}
}

// do sends a JSON request to path relative to the API endpoint and decodes
// the response into out, if non-nil. Transport errors are returned as-is.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	data, err := c.send(c.httpClient, req, path)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse response of %s %s: %w", method, path, err)
	}
	return nil
}

// send executes req, records metrics under path, and returns the response
// body of a 2xx response.
func (c *Client) send(hc *http.Client, req *http.Request, path string) ([]byte, error) {
	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		c.metrics.observe(path, req.Method, 0, time.Since(start))
		c.log.V(1).Info("api request failed", "method", req.Method, "path", path, "error", err.Error())
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	elapsed := time.Since(start)
	c.metrics.observe(path, req.Method, resp.StatusCode, elapsed)
	c.log.V(1).Info("api request", "method", req.Method, "path", path, "status", resp.StatusCode,
		"duration", elapsed.Round(time.Millisecond).String())

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			Path:       path,
			Body:       strings.TrimSpace(string(data)),
		}
	}
	return data, nil
}
