package vnc

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vnetops/vnetctl/internal/util/retry"
)

// RealClient implements Controller against the controller's REST API.
type RealClient struct {
	endpoint   string
	token      string
	username   string
	password   string
	httpClient *http.Client

	retryMaxAttempts  int
	retryInitialDelay time.Duration
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) {
		c.httpClient = hc
	}
}

// WithBasicAuth sets username/password credentials. They are sent as-is;
// the engine never interprets them.
func WithBasicAuth(username, password string) ClientOption {
	return func(c *RealClient) {
		c.username = username
		c.password = password
	}
}

// WithTimeout bounds each controller API call.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *RealClient) {
		c.httpClient.Timeout = d
	}
}

// WithInsecureTLS disables certificate verification for controllers with
// self-signed certificates.
func WithInsecureTLS() ClientOption {
	return func(c *RealClient) {
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402
		}
	}
}

// WithRetry sets the backoff used for locked-resource deletes.
func WithRetry(maxAttempts int, initialDelay time.Duration) ClientOption {
	return func(c *RealClient) {
		c.retryMaxAttempts = maxAttempts
		c.retryInitialDelay = initialDelay
	}
}

// NewRealClient creates a controller client for the given API endpoint.
// A non-empty token takes precedence over basic auth credentials.
func NewRealClient(endpoint, token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		endpoint:          strings.TrimRight(endpoint, "/"),
		token:             token,
		httpClient:        &http.Client{Timeout: 30 * time.Second},
		retryMaxAttempts:  5,
		retryInitialDelay: 1 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect performs a single authenticated probe against the API root. A
// failure here means no session can be established and no work has been done.
func (c *RealClient) Connect(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/", nil, nil); err != nil {
		return fmt.Errorf("cannot establish controller session at %s: %w", c.endpoint, err)
	}
	return nil
}

type virtualNetworkEnvelope struct {
	VirtualNetwork *VirtualNetwork `json:"virtual-network"`
}

type networkIpamEnvelope struct {
	NetworkIpam *NetworkIpam `json:"network-ipam"`
}

// ReadNetwork returns the virtual network with the given identity.
func (c *RealClient) ReadNetwork(ctx context.Context, id Identity) (*VirtualNetwork, error) {
	var out virtualNetworkEnvelope
	path := "/virtual-network?fq_name_str=" + url.QueryEscape(id.String())
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out.VirtualNetwork == nil {
		return nil, fmt.Errorf("read network %s: empty response body", id)
	}
	return out.VirtualNetwork, nil
}

// ReadIpam returns the IPAM with the given identity.
func (c *RealClient) ReadIpam(ctx context.Context, id Identity) (*NetworkIpam, error) {
	var out networkIpamEnvelope
	path := "/network-ipam?fq_name_str=" + url.QueryEscape(id.String())
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out.NetworkIpam == nil {
		return nil, fmt.Errorf("read ipam %s: empty response body", id)
	}
	return out.NetworkIpam, nil
}

// CreateIpam creates the IPAM and returns it with the assigned UUID.
func (c *RealClient) CreateIpam(ctx context.Context, ipam *NetworkIpam) (*NetworkIpam, error) {
	in := networkIpamEnvelope{NetworkIpam: ipam}
	var out networkIpamEnvelope
	if err := c.do(ctx, http.MethodPost, "/network-ipams", in, &out); err != nil {
		return nil, err
	}
	if out.NetworkIpam == nil {
		return nil, fmt.Errorf("create ipam: empty response body")
	}
	return out.NetworkIpam, nil
}

// CreateNetwork creates the virtual network in a single call.
func (c *RealClient) CreateNetwork(ctx context.Context, vn *VirtualNetwork) error {
	in := virtualNetworkEnvelope{VirtualNetwork: vn}
	return c.do(ctx, http.MethodPost, "/virtual-networks", in, nil)
}

// UpdateNetwork updates an existing network in place.
func (c *RealClient) UpdateNetwork(ctx context.Context, vn *VirtualNetwork) error {
	if _, err := uuid.Parse(vn.UUID); err != nil {
		return fmt.Errorf("invalid network uuid %q: %w", vn.UUID, err)
	}
	in := virtualNetworkEnvelope{VirtualNetwork: vn}
	return c.do(ctx, http.MethodPut, "/virtual-network/"+vn.UUID, in, nil)
}

// DeleteNetwork deletes the network by UUID. Locked resources are retried
// with exponential backoff; a network that is already gone counts as success.
func (c *RealClient) DeleteNetwork(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid network uuid %q: %w", id, err)
	}

	return retry.WithExponentialBackoff(ctx, func() error {
		err := c.do(ctx, http.MethodDelete, "/virtual-network/"+id, nil, nil)
		if err == nil || IsNotFound(err) {
			return nil
		}
		if isLocked(err) {
			return err
		}
		return retry.Fatal(err)
	},
		retry.WithMaxRetries(c.retryMaxAttempts),
		retry.WithInitialDelay(c.retryInitialDelay))
}

// do performs one API call. A 404 response is reported as ErrNotFound, any
// other non-2xx response as an APIError.
func (c *RealClient) do(ctx context.Context, method, path string, in, out any) error {
	op := fmt.Sprintf("%s %s", method, path)

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Auth-Token", c.token)
	} else if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Op: op, Body: strings.TrimSpace(string(data))}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}
