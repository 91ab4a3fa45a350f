// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads bundlegen configuration files.
//
// A configuration file is YAML. It names an optional .env file, a set of
// path aliases and the bundles to generate:
//
//	envFile: .env
//	aliases:
//	  app: ./src
//	  basePath: ${BUILD_DIR}
//	bundles:
//	  - namespace: App\Assets
//	    basePath: "@basePath"
//	    chunks: [runtime, vendor, main]
//
// Unset bundle fields take the [creator.DefaultConfig] values. Environment
// variables are expanded in alias values and in the path fields of each
// bundle, after the .env file has been loaded. Relative alias paths resolve
// against the directory containing the configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/beastbytes/bundlegen/internal/alias"
	"github.com/beastbytes/bundlegen/internal/creator"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config is a loaded configuration file.
type Config struct {
	// Path is the file the configuration was loaded from, if any.
	Path string

	// EnvFile is the .env file loaded before expansion, if any.
	EnvFile string

	// Aliases maps alias names to resolved filesystem paths or other aliases.
	Aliases map[string]string

	// Bundles are the bundles to generate, defaults applied.
	Bundles []creator.Config
}

// file is the on-disk layout. Bundles are decoded one by one so each starts
// from the defaults.
type file struct {
	EnvFile string            `yaml:"envFile"`
	Aliases map[string]string `yaml:"aliases"`
	Bundles []yaml.Node       `yaml:"bundles"`
}

// Load reads and expands the configuration at path. Bundles are not
// validated, since command-line overrides may still complete them; call
// [Config.Validate] once they are applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	cfg, err := Parse(data, filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a configuration document. Relative paths resolve against dir.
// Only the document structure is checked.
func Parse(data []byte, dir string) (*Config, error) {
	var raw file
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := &Config{Aliases: make(map[string]string, len(raw.Aliases))}

	if raw.EnvFile != "" {
		cfg.EnvFile = resolvePath(dir, os.ExpandEnv(raw.EnvFile))
		// Variables already set in the environment win.
		if err := godotenv.Load(cfg.EnvFile); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	for name, value := range raw.Aliases {
		if strings.Trim(name, "@") == "" {
			return nil, fmt.Errorf("%w: empty alias name", ErrInvalid)
		}
		value = os.ExpandEnv(value)
		if !strings.HasPrefix(value, "@") {
			value = resolvePath(dir, value)
		}
		cfg.Aliases[name] = value
	}

	for i := range raw.Bundles {
		b := creator.DefaultConfig()
		if err := raw.Bundles[i].Decode(&b); err != nil {
			return nil, fmt.Errorf("bundle %d: %w", i, err)
		}
		b.BasePath = os.ExpandEnv(b.BasePath)
		b.ManifestPath = os.ExpandEnv(b.ManifestPath)
		b.Manifest = os.ExpandEnv(b.Manifest)
		b.BaseURL = os.ExpandEnv(b.BaseURL)
		cfg.Bundles = append(cfg.Bundles, b)
	}
	return cfg, nil
}

// Validate checks every bundle and rejects two bundles that would write the
// same class.
func (c *Config) Validate() error {
	if len(c.Bundles) == 0 {
		return fmt.Errorf("%w: no bundles configured", ErrInvalid)
	}
	for name := range c.Aliases {
		if strings.Trim(name, "@") == "" {
			return fmt.Errorf("%w: empty alias name", ErrInvalid)
		}
	}

	seen := make(map[string]int, len(c.Bundles))
	for i, b := range c.Bundles {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: bundle %d: %w", ErrInvalid, i, err)
		}
		key := b.Name()
		if j, dup := seen[key]; dup {
			return fmt.Errorf("%w: bundles %d and %d both generate %s", ErrInvalid, j, i, key)
		}
		seen[key] = i
	}
	return nil
}

// Resolver builds the alias resolver for the configured aliases.
func (c *Config) Resolver() (*alias.Aliases, error) {
	a, err := alias.New(c.Aliases)
	if err != nil {
		return nil, fmt.Errorf("%w: aliases: %w", ErrInvalid, err)
	}
	return a, nil
}

// Apply calls fn on every bundle, for command-line overrides.
func (c *Config) Apply(fn func(*creator.Config)) {
	for i := range c.Bundles {
		fn(&c.Bundles[i])
	}
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
