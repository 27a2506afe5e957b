package capture

import (
	"net/http"
	"time"
)

// clientConfig holds internal configuration for a Client.
type clientConfig struct {
	edge       bool
	timeout    time.Duration
	httpClient *http.Client
}

func defaultConfig() clientConfig {
	return clientConfig{
		timeout: 30 * time.Second,
	}
}

// Option configures a [Client].
type Option func(*clientConfig)

// WithEdge routes requests through the edge host instead of the default CDN
// host. Only the host portion of built URLs changes; paths, parameters, and
// signature tokens are identical in both modes.
func WithEdge() Option {
	return func(c *clientConfig) {
		c.edge = true
	}
}

// WithTimeout sets the maximum duration for a single fetch.
// Defaults to 30 seconds. A zero or negative value disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithHTTPClient supplies a custom [http.Client] for fetches, for example
// one with a proxy, an instrumented transport, or a test interceptor.
// When set, [WithTimeout] has no effect; the supplied client's own timeout
// applies.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}
