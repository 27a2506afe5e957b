package capture

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
)

// Result holds a binary capture payload (an image, PDF, or animation) and
// provides helpers for common output formats such as raw bytes, base64
// encoding, and streaming readers.
//
// A Result is returned by every binary fetch method. It is safe to call
// its methods multiple times — the underlying data is never modified.
type Result struct {
	data        []byte
	contentType string
}

// Bytes returns the raw payload.
func (r *Result) Bytes() []byte {
	return r.data
}

// Base64 returns the payload encoded as a standard base64 string (RFC 4648).
// This is useful for embedding in JSON payloads or data URIs.
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns an [*bytes.Reader] over the payload.
// This is suitable for streaming uploads to cloud storage (GCP, AWS S3, etc.)
// or any API that accepts an [io.Reader].
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full payload to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the payload to the file at path, creating it if needed.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Len returns the size of the payload in bytes.
func (r *Result) Len() int {
	return len(r.data)
}

// ContentType returns the Content-Type header the service sent with the
// payload, for example "image/png" or "application/pdf". It may be empty.
func (r *Result) ContentType() string {
	return r.contentType
}
