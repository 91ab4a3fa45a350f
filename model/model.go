// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the data structures shared by the bundle generator
// and its target generators.
//
// A [Manifest] is the flat JSON object written by the Webpack manifest plugin.
// A [Bundle] is everything a target generator needs to emit one asset bundle
// declaration.
package model

import (
	"encoding/json"
	"errors"
)

// Kind is an asset kind, which is also the manifest key extension.
type Kind string

const (
	// KindCSS is a stylesheet chunk.
	KindCSS Kind = "css"
	// KindJS is a script chunk.
	KindJS Kind = "js"
)

// Kinds lists asset kinds in the order they are looked up for each chunk.
var Kinds = []Kind{KindCSS, KindJS}

// Key returns the manifest key for chunk, e.g. "main.js".
func (k Kind) Key(chunk string) string {
	return chunk + "." + string(k)
}

// Manifest maps "<chunk>.<ext>" keys to hashed file paths.
type Manifest map[string]string

// ParseManifest decodes a manifest JSON document.
// The document must be a flat object of string values.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("manifest is not a JSON object")
	}
	return m, nil
}

// Lookup returns the file for chunk and kind, if present.
func (m Manifest) Lookup(chunk string, kind Kind) (string, bool) {
	v, ok := m[kind.Key(chunk)]
	return v, ok
}

// Bundle is the resolved content of a generated asset bundle.
type Bundle struct {
	// Namespace is the namespace the bundle class is declared in.
	Namespace string

	// ClassName is the name of the generated class.
	ClassName string

	// BasePath is the web-accessible directory (or alias) holding the assets.
	// Nil renders as null.
	BasePath *string

	// BaseURL is the URL prefix for the relative asset paths.
	BaseURL string

	// CSS lists stylesheet paths in chunk order.
	CSS []string

	// CSSOptions are passed through to the framework when registering CSS.
	CSSOptions Options

	// CSSPosition is where <style> tags are placed. Nil renders as null.
	CSSPosition *int

	// JS lists script paths in chunk order.
	JS []string

	// JSOptions are passed through to the framework when registering JS.
	JSOptions Options

	// JSPosition is where <script> tags are placed. Nil renders as null.
	JSPosition *int
}

// ResolveChunks collects the CSS and JS files of chunks from m.
// Files keep the order of chunks; chunks without an entry for a kind are
// skipped. Both returned slices are non-nil.
func ResolveChunks(m Manifest, chunks []string) (css, js []string) {
	css, js = []string{}, []string{}
	for _, chunk := range chunks {
		for _, kind := range Kinds {
			file, ok := m.Lookup(chunk, kind)
			if !ok {
				continue
			}
			switch kind {
			case KindCSS:
				css = append(css, file)
			case KindJS:
				js = append(js, file)
			}
		}
	}
	return css, js
}
