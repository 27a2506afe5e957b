// Package capture is a client for the capture.page screenshot and
// content-extraction API. It builds signed request URLs locally and fetches
// results over plain HTTP GET; all rendering happens on the remote service.
//
// # Getting started
//
// Create a [Client] with your API key and secret, then build URLs or fetch
// results directly:
//
//	c := capture.New(os.Getenv("CAPTURE_KEY"), os.Getenv("CAPTURE_SECRET"))
//
//	// Build a signed URL without touching the network.
//	u, err := c.BuildImageURL("https://example.com", nil)
//
//	// Or fetch the capture in one call.
//	img, err := c.FetchImage(ctx, "https://example.com", nil)
//	err = img.WriteToFile("screenshot.png", 0o644)
//
// Five endpoints are supported: [Image], [PDF], [Animated] (binary
// payloads, returned as a [Result]), and [Content] / [Metadata] (JSON,
// returned as [ContentResponse] / [MetadataResponse]).
//
// # Options
//
// Capture options can be passed as a free-form [RequestOptions] map keyed
// by wire parameter name:
//
//	u, err := c.BuildImageURL("https://example.com", capture.RequestOptions{
//	    "full":  capture.Bool(true),
//	    "delay": capture.Int(3),
//	})
//
// or as a typed struct per endpoint:
//
//	img, err := c.FetchImage(ctx, "https://example.com", &capture.ScreenshotOptions{
//	    Full:     true,
//	    Delay:    3,
//	    DarkMode: true,
//	    Type:     "webp",
//	})
//
// Both forms encode to the same canonical query string: keys sorted,
// RFC 3986 percent-encoding, so identical options always produce identical
// signed URLs.
//
// # Client configuration
//
// Functional options configure the client at construction:
//
//	c := capture.New(key, secret,
//	    capture.WithEdge(),                 // use the edge host
//	    capture.WithTimeout(60*time.Second),
//	)
//
// A Client holds no mutable state and is safe for concurrent use. Fetch
// methods take a [context.Context]; cancellation and deadlines propagate to
// the underlying request. Requests are never retried — callers own retry
// policy.
//
// # Errors
//
// Failures are distinguishable by kind: [ErrMissingCredentials] and
// [ErrInvalidURL] with [errors.Is], [HTTPError] and [ParseError] with
// [errors.As]:
//
//	_, err := c.FetchPDF(ctx, target, nil)
//	var httpErr *capture.HTTPError
//	if errors.As(err, &httpErr) {
//	    log.Printf("service returned %d", httpErr.StatusCode)
//	}
package capture
