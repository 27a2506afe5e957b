package capture

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
)

// Endpoint identifies one of the capture service's operations.
type Endpoint string

// Endpoints exposed by the capture service.
const (
	Image    Endpoint = "image"
	PDF      Endpoint = "pdf"
	Content  Endpoint = "content"
	Metadata Endpoint = "metadata"
	Animated Endpoint = "animated"
)

// Service hosts. The edge host serves the same API with different routing.
const (
	cdnBaseURL  = "https://cdn.capture.page"
	edgeBaseURL = "https://edge.capture.page"
)

// buildURL assembles a signed request URL for the given endpoint. It is a
// pure function of the credentials, configuration, target, and option set:
// no I/O happens here and identical inputs yield identical output.
func (c *Client) buildURL(endpoint Endpoint, target string, opts Options) (string, error) {
	if c.key == "" || c.secret == "" {
		return "", ErrMissingCredentials
	}
	if target == "" {
		return "", ErrInvalidURL
	}
	if _, err := url.Parse(target); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	params := RequestOptions{}
	if opts != nil {
		params.merge(opts.RequestOptions())
	}
	params["url"] = String(target)

	query := encodeQuery(params)
	token := signToken(c.secret, query)

	base := cdnBaseURL
	if c.cfg.edge {
		base = edgeBaseURL
	}
	return base + "/" + c.key + "/" + token + "/" + string(endpoint) + "?" + query, nil
}

// signToken computes the signature the service validates: the lowercase hex
// MD5 digest of the shared secret concatenated with the canonical query.
// The scheme is fixed by the service and must match bit for bit; the secret
// itself never leaves the process.
func signToken(secret, query string) string {
	sum := md5.Sum([]byte(secret + query))
	return hex.EncodeToString(sum[:])
}
