// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package creator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/beastbytes/bundlegen/internal/manifest"
	"github.com/beastbytes/bundlegen/internal/phpname"
	"github.com/beastbytes/bundlegen/model"
)

// Defaults for [Config].
const (
	DefaultBaseURL   = "/"
	DefaultClassName = "WebpackManifest"
	DefaultManifest  = manifest.DefaultName
	DefaultTarget    = "php"
)

// DefaultChunks is the default chunk order: runtime manifest, vendor code,
// then the entry point.
var DefaultChunks = []string{"manifest", "vendor", "main"}

// Config describes one bundle to generate.
type Config struct {
	// BasePath is the web-accessible directory, or an alias of it, that
	// contains the asset files. It locates the manifest when ManifestPath is
	// empty and is written to the bundle as given.
	BasePath string `yaml:"basePath"`

	// BaseURL is the base URL for the relative asset files.
	BaseURL string `yaml:"baseUrl"`

	// Chunks names the chunks in dependency order, from the runtime manifest
	// through to the entry point.
	Chunks []string `yaml:"chunks"`

	// ClassName is the name of the generated class.
	ClassName string `yaml:"className"`

	// Manifest is the manifest file name.
	Manifest string `yaml:"manifest"`

	// ManifestPath is the directory, or an alias of it, containing the
	// manifest. Overrides BasePath for locating the manifest.
	ManifestPath string `yaml:"manifestPath"`

	// Namespace is the namespace of the generated class. Its alias
	// ("App\Assets" -> "@app/Assets") is the output directory.
	Namespace string `yaml:"namespace"`

	// CSSOptions are passed to the framework when registering CSS files.
	CSSOptions model.Options `yaml:"cssOptions"`

	// CSSPosition is where <style> tags are inserted in a page.
	CSSPosition *int `yaml:"cssPosition"`

	// JSOptions are passed to the framework when registering JS files.
	JSOptions model.Options `yaml:"jsOptions"`

	// JSPosition is where <script> tags are inserted in a page.
	JSPosition *int `yaml:"jsPosition"`

	// Target is the registered generator that renders the bundle.
	Target string `yaml:"target"`

	// TargetOptions are passed to the target generator.
	TargetOptions map[string]string `yaml:"targetOptions"`

	// Force regenerates even when the output is newer than the manifest.
	Force bool `yaml:"force"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Chunks:    slices.Clone(DefaultChunks),
		ClassName: DefaultClassName,
		Manifest:  DefaultManifest,
		Target:    DefaultTarget,
	}
}

// Name identifies the bundle in logs and errors.
func (c Config) Name() string {
	return phpname.Trim(c.Namespace) + phpname.Separator + c.ClassName
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := c
	out.Chunks = slices.Clone(c.Chunks)
	out.CSSOptions = c.CSSOptions.Clone()
	out.JSOptions = c.JSOptions.Clone()
	out.TargetOptions = maps.Clone(c.TargetOptions)
	if c.CSSPosition != nil {
		v := *c.CSSPosition
		out.CSSPosition = &v
	}
	if c.JSPosition != nil {
		v := *c.JSPosition
		out.JSPosition = &v
	}
	return out
}

// Validate reports the first problem that would stop generation.
func (c Config) Validate() error {
	switch {
	case c.Namespace == "":
		return fmt.Errorf("%w: namespace is required", ErrConfig)
	case c.ClassName == "":
		return fmt.Errorf("%w: class name is required", ErrConfig)
	case c.Manifest == "":
		return fmt.Errorf("%w: manifest file name is required", ErrConfig)
	case c.BasePath == "" && c.ManifestPath == "":
		return fmt.Errorf("%w: base path or manifest path is required", ErrConfig)
	case c.Target == "":
		return fmt.Errorf("%w: target is required", ErrConfig)
	}
	return nil
}
