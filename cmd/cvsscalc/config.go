package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v2"

	"github.com/quay/cvsscore"
)

// LoadConfig reads the engine configuration from "name".
//
// An empty name returns the default configuration. Files with a ".yaml" or
// ".yml" extension are decoded as YAML, everything else as JSON.
func loadConfig(ctx context.Context, name string) (*cvsscore.Config, error) {
	var cfg cvsscore.Config
	if name == "" {
		return &cfg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var f cvsscore.ConfigUnmarshaler
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		f = func(v any) error { return yaml.UnmarshalStrict(b, v) }
	default:
		f = func(v any) error {
			dec := json.NewDecoder(bytes.NewReader(b))
			dec.DisallowUnknownFields()
			return dec.Decode(v)
		}
	}
	if err := cfg.Configure(ctx, f); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &cfg, nil
}
