// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for asset bundle target generators.
//
// A target generator renders a resolved [model.Bundle] as source code for one
// framework. Generators register themselves with [Register] and are looked up
// by name.
package generator

import (
	"context"

	"github.com/beastbytes/bundlegen/model"
)

// Generator is the interface that all target generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate renders the bundle declaration.
	Generate(ctx context.Context, b *model.Bundle, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier used to select the target (e.g., "php").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists output extensions; the first is used for the
	// bundle file (e.g., [".php"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}

// Extension returns the primary output file extension, or "" if none.
func (m Metadata) Extension() string {
	if len(m.FileExtensions) == 0 {
		return ""
	}
	return m.FileExtensions[0]
}
