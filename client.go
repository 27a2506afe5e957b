package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client signs and issues requests against the capture service.
//
// A Client is immutable after construction and safe for concurrent use:
// every call is an independent request/response cycle with no shared
// mutable state. Construct one per credential pair and reuse it.
type Client struct {
	key    string
	secret string
	cfg    clientConfig
	hc     *http.Client
}

// New creates a Client for the given API key and secret.
//
// Credentials are validated when an operation is invoked, not here, so a
// Client can always be constructed from whatever configuration is at hand.
func New(key, secret string, opts ...Option) *Client {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{}
		if cfg.timeout > 0 {
			hc.Timeout = cfg.timeout
		}
	}
	return &Client{key: key, secret: secret, cfg: cfg, hc: hc}
}

// BuildImageURL returns the signed URL for a screenshot of target.
func (c *Client) BuildImageURL(target string, opts Options) (string, error) {
	return c.buildURL(Image, target, opts)
}

// BuildPDFURL returns the signed URL for a PDF rendering of target.
func (c *Client) BuildPDFURL(target string, opts Options) (string, error) {
	return c.buildURL(PDF, target, opts)
}

// BuildContentURL returns the signed URL for a content extraction of target.
func (c *Client) BuildContentURL(target string, opts Options) (string, error) {
	return c.buildURL(Content, target, opts)
}

// BuildMetadataURL returns the signed URL for a metadata extraction of target.
func (c *Client) BuildMetadataURL(target string, opts Options) (string, error) {
	return c.buildURL(Metadata, target, opts)
}

// BuildAnimatedURL returns the signed URL for an animated capture of target.
func (c *Client) BuildAnimatedURL(target string, opts Options) (string, error) {
	return c.buildURL(Animated, target, opts)
}

// FetchImage captures a screenshot of target and returns the image payload.
func (c *Client) FetchImage(ctx context.Context, target string, opts Options) (*Result, error) {
	u, err := c.BuildImageURL(target, opts)
	if err != nil {
		return nil, err
	}
	return c.fetchBinary(ctx, u)
}

// FetchPDF renders target as a PDF and returns the document payload.
func (c *Client) FetchPDF(ctx context.Context, target string, opts Options) (*Result, error) {
	u, err := c.BuildPDFURL(target, opts)
	if err != nil {
		return nil, err
	}
	return c.fetchBinary(ctx, u)
}

// FetchAnimated captures an animated recording of target (typically MP4 or
// GIF, controlled by options) and returns the payload.
func (c *Client) FetchAnimated(ctx context.Context, target string, opts Options) (*Result, error) {
	u, err := c.BuildAnimatedURL(target, opts)
	if err != nil {
		return nil, err
	}
	return c.fetchBinary(ctx, u)
}

// FetchContent renders target and returns its HTML, plain text, and
// markdown representations.
func (c *Client) FetchContent(ctx context.Context, target string, opts Options) (*ContentResponse, error) {
	u, err := c.BuildContentURL(target, opts)
	if err != nil {
		return nil, err
	}
	var res ContentResponse
	if err := c.fetchJSON(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// FetchMetadata extracts page metadata (OpenGraph, title, favicons, and so
// on) from target.
func (c *Client) FetchMetadata(ctx context.Context, target string, opts Options) (*MetadataResponse, error) {
	u, err := c.BuildMetadataURL(target, opts)
	if err != nil {
		return nil, err
	}
	var res MetadataResponse
	if err := c.fetchJSON(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) fetchBinary(ctx context.Context, u string) (*Result, error) {
	body, contentType, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	return &Result{data: body, contentType: contentType}, nil
}

func (c *Client) fetchJSON(ctx context.Context, u string, v any) error {
	body, _, err := c.get(ctx, u)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// get performs exactly one GET and buffers the complete response. There is
// no retry; the caller owns retry policy. Cancellation and deadlines ride
// in on ctx and the configured client timeout.
func (c *Client) get(ctx context.Context, u string) (body []byte, contentType string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("capture: building request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, "", &HTTPError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       errorBody(data),
		}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// maxErrorBody caps how much of an error response is carried in an
// HTTPError. Service error bodies are short JSON or HTML; anything larger
// is noise in an error message.
const maxErrorBody = 2048

func errorBody(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}
