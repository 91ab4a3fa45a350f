// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package manifest loads the asset manifest written by the Webpack manifest
// plugin.
package manifest

import (
	"fmt"
	"os"
	"time"

	"github.com/beastbytes/bundlegen/model"
)

// DefaultName is the default manifest file name.
const DefaultName = "manifest.json"

// Load reads and parses the manifest at path.
func Load(path string) (model.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := model.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return m, nil
}

// ModTime returns the modification time of the manifest at path.
func ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat manifest: %w", err)
	}
	return info.ModTime(), nil
}

// IsNewer reports whether the file at target exists and was modified strictly
// after since. Any stat error counts as "not newer".
func IsNewer(target string, since time.Time) bool {
	info, err := os.Stat(target)
	if err != nil {
		return false
	}
	return info.ModTime().After(since)
}
