// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "fmt"

// Output contains generated files.
type Output struct {
	// Files maps filename to content.
	Files map[string][]byte
}

// Single returns an Output with a single file.
func Single(name string, content []byte) *Output {
	return &Output{Files: map[string][]byte{name: content}}
}

// Only returns the content of a single-file output.
func (o *Output) Only() (string, []byte, error) {
	if len(o.Files) != 1 {
		return "", nil, fmt.Errorf("expected one generated file, got %d", len(o.Files))
	}
	for name, content := range o.Files {
		return name, content, nil
	}
	panic("unreachable")
}
