package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	capture "github.com/porticus-lab/go-capture"
)

// credentials is the resolved credential and endpoint configuration.
// Resolution order: flags override environment, environment overrides the
// config file. Empty credentials are left for the library to reject.
type credentials struct {
	Key    string `yaml:"key"`
	Secret string `yaml:"secret"`
	Edge   bool   `yaml:"edge"`
}

func resolveCredentials(path string, explicit bool) (credentials, error) {
	creds, err := loadConfigFile(path, explicit)
	if err != nil {
		return credentials{}, err
	}
	if v := os.Getenv("CAPTURE_KEY"); v != "" {
		creds.Key = v
	}
	if v := os.Getenv("CAPTURE_SECRET"); v != "" {
		creds.Secret = v
	}
	return creds, nil
}

// loadConfigFile reads the YAML config file. A missing default file is
// fine; a missing or unparsable explicitly requested file is an error.
func loadConfigFile(path string, explicit bool) (credentials, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return credentials{}, nil
		}
		path = filepath.Join(home, ".config", "capture", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return credentials{}, nil
		}
		return credentials{}, fmt.Errorf("reading config: %w", err)
	}

	var creds credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return credentials{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return creds, nil
}

// splitOption parses a --opt key=value pair, inferring the value type:
// "true"/"false" become booleans, numeric text becomes a number, anything
// else stays a string.
func splitOption(kv string) (string, capture.Value, bool) {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || k == "" {
		return "", capture.Value{}, false
	}
	switch {
	case v == "true" || v == "false":
		return k, capture.Bool(v == "true"), true
	default:
		if n, err := strconv.Atoi(v); err == nil {
			return k, capture.Int(n), true
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return k, capture.Float(f), true
		}
		return k, capture.String(v), true
	}
}
