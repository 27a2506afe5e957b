package capture

import "testing"

func TestValue_Text(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"int", Int(3), "3"},
		{"negative int", Int(-7), "-7"},
		{"float", Float(2.5), "2.5"},
		{"whole float", Float(2), "2"},
		{"small float", Float(0.125), "0.125"},
		{"string", String("png"), "png"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.text(); got != tc.want {
				t.Errorf("text() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeQuery_SortsKeys(t *testing.T) {
	opts := RequestOptions{
		"delay": Int(3),
		"vw":    Int(1440),
		"full":  Bool(true),
		"type":  String("webp"),
	}
	want := "delay=3&full=true&type=webp&vw=1440"
	if got := encodeQuery(opts); got != want {
		t.Errorf("encodeQuery = %q, want %q", got, want)
	}
}

func TestEncodeQuery_Deterministic(t *testing.T) {
	opts := RequestOptions{"b": Int(2), "a": Int(1), "c": Bool(true)}
	first := encodeQuery(opts)
	for i := 0; i < 10; i++ {
		if got := encodeQuery(opts); got != first {
			t.Fatalf("encodeQuery not deterministic: %q then %q", first, got)
		}
	}
}

func TestEncodeQuery_SkipsEmptyStrings(t *testing.T) {
	opts := RequestOptions{"selector": String(""), "full": Bool(true)}
	if got := encodeQuery(opts); got != "full=true" {
		t.Errorf("encodeQuery = %q, want %q", got, "full=true")
	}
}

func TestEncodeQuery_Empty(t *testing.T) {
	if got := encodeQuery(nil); got != "" {
		t.Errorf("encodeQuery(nil) = %q, want empty", got)
	}
	if got := encodeQuery(RequestOptions{}); got != "" {
		t.Errorf("encodeQuery(empty) = %q, want empty", got)
	}
}

func TestQueryEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://example.com", "https%3A%2F%2Fexample.com"},
		{"path with spaces", "path%20with%20spaces"},
		{"a+b", "a%2Bb"},
		{"AZaz09-_.~", "AZaz09-_.~"},
		{"div.content", "div.content"},
		{"user:pass", "user%3Apass"},
	}
	for _, tc := range cases {
		if got := queryEscape(tc.in); got != tc.want {
			t.Errorf("queryEscape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRequestOptions_Merge(t *testing.T) {
	dst := RequestOptions{"delay": Int(3), "full": Bool(true)}
	dst.merge(RequestOptions{"delay": Int(10), "fresh": Bool(true)})

	if got := dst["delay"].text(); got != "10" {
		t.Errorf("merge did not overwrite: delay = %q", got)
	}
	if got := dst["fresh"].text(); got != "true" {
		t.Errorf("merge did not add: fresh = %q", got)
	}
	if got := dst["full"].text(); got != "true" {
		t.Errorf("merge clobbered unrelated key: full = %q", got)
	}
}
