package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	capture "github.com/porticus-lab/go-capture"
)

func TestSplitOption(t *testing.T) {
	cases := []struct {
		in     string
		key    string
		val    capture.Value
		wantOK bool
	}{
		{"full=true", "full", capture.Bool(true), true},
		{"transparent=false", "transparent", capture.Bool(false), true},
		{"delay=3", "delay", capture.Int(3), true},
		{"scaleFactor=1.5", "scaleFactor", capture.Float(1.5), true},
		{"type=webp", "type", capture.String("webp"), true},
		{"waitFor=.loaded", "waitFor", capture.String(".loaded"), true},
		{"novalue", "", capture.Value{}, false},
		{"=orphan", "", capture.Value{}, false},
	}
	for _, tc := range cases {
		k, v, ok := splitOption(tc.in)
		if ok != tc.wantOK {
			t.Errorf("splitOption(%q) ok = %v, want %v", tc.in, ok, tc.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if k != tc.key || !reflect.DeepEqual(v, tc.val) {
			t.Errorf("splitOption(%q) = %q, %v, want %q, %v", tc.in, k, v, tc.key, tc.val)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("key: file_key\nsecret: file_secret\nedge: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	creds, err := loadConfigFile(path, true)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if creds.Key != "file_key" || creds.Secret != "file_secret" || !creds.Edge {
		t.Errorf("loadConfigFile = %+v", creds)
	}
}

func TestLoadConfigFile_MissingExplicit(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"), true)
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestResolveCredentials_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("key: file_key\nsecret: file_secret\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CAPTURE_KEY", "env_key")
	t.Setenv("CAPTURE_SECRET", "")

	creds, err := resolveCredentials(path, true)
	if err != nil {
		t.Fatalf("resolveCredentials: %v", err)
	}
	if creds.Key != "env_key" {
		t.Errorf("Key = %q, want env_key", creds.Key)
	}
	if creds.Secret != "file_secret" {
		t.Errorf("Secret = %q, want file_secret", creds.Secret)
	}
}
