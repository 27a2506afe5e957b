package capture

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Options is the shape accepted by every build and fetch method. It is
// satisfied by the free-form [RequestOptions] map and by the typed option
// structs ([ScreenshotOptions], [PDFOptions], [ContentOptions],
// [MetadataOptions]). A nil Options means "no options".
type Options interface {
	// RequestOptions flattens the options into wire parameters.
	RequestOptions() RequestOptions
}

type valueKind int

const (
	kindBool valueKind = iota
	kindInt
	kindFloat
	kindString
)

// Value is a single capture option value: a boolean, a number, or a string.
// Construct one with [Bool], [Int], [Float], or [String]. The zero Value
// renders as "false".
type Value struct {
	kind valueKind
	b    bool
	i    int64
	f    float64
	s    string
}

// Bool returns a boolean option value.
func Bool(v bool) Value { return Value{kind: kindBool, b: v} }

// Int returns an integer option value.
func Int(v int) Value { return Value{kind: kindInt, i: int64(v)} }

// Float returns a floating-point option value.
func Float(v float64) Value { return Value{kind: kindFloat, f: v} }

// String returns a string option value.
func String(v string) Value { return Value{kind: kindString, s: v} }

// text renders the value the way the capture service expects it: booleans
// as "true"/"false", integers without a decimal point, floats in shortest
// decimal form.
func (v Value) text() string {
	switch v.kind {
	case kindBool:
		return strconv.FormatBool(v.b)
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}

// RequestOptions is a free-form set of capture options keyed by wire
// parameter name. It covers options the typed structs do not model; see
// https://docs.capture.page for the full parameter list.
type RequestOptions map[string]Value

// RequestOptions implements [Options].
func (o RequestOptions) RequestOptions() RequestOptions { return o }

// merge copies src entries into o, overwriting on collision.
func (o RequestOptions) merge(src RequestOptions) {
	for k, v := range src {
		o[k] = v
	}
}

func (o RequestOptions) setBool(k string, v bool) {
	if v {
		o[k] = Bool(v)
	}
}

func (o RequestOptions) setInt(k string, v int) {
	if v != 0 {
		o[k] = Int(v)
	}
}

func (o RequestOptions) setFloat(k string, v float64) {
	if v != 0 {
		o[k] = Float(v)
	}
}

func (o RequestOptions) setString(k, v string) {
	if v != "" {
		o[k] = String(v)
	}
}

// encodeQuery serializes an option set into its canonical query string.
// Keys are iterated in sorted order so that identical option sets always
// produce byte-identical output; the signature token depends on this.
// Options with empty string values are omitted.
func encodeQuery(opts RequestOptions) string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		text := opts[k].text()
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(queryEscape(k))
		b.WriteByte('=')
		b.WriteString(queryEscape(text))
	}
	return b.String()
}

// queryEscape percent-encodes s, leaving only RFC 3986 unreserved
// characters intact. Spaces become %20, never '+': the service signs the
// exact bytes, so the encoding must match its expectation.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
