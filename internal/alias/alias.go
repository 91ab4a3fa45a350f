// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package alias resolves path aliases such as "@app/Assets" to filesystem
// paths.
//
// An alias starts with "@". Resolving "@app/Assets" looks up the longest
// registered alias that is a path prefix ("@app/Assets", then "@app") and
// appends the remainder. Anything that does not start with "@" is returned
// unchanged.
package alias

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownAlias is returned when no registered alias matches.
	ErrUnknownAlias = errors.New("unknown path alias")

	// ErrInvalidAlias is returned for malformed alias names.
	ErrInvalidAlias = errors.New("invalid path alias")
)

// Resolver maps a path or alias to a filesystem path.
type Resolver interface {
	Get(path string) (string, error)
}

// Aliases is a [Resolver] backed by a set of registered aliases.
// The zero value has no aliases. Aliases is not safe for concurrent Set;
// Get may be called concurrently once setup is done.
type Aliases struct {
	paths map[string]string
}

// New returns Aliases populated from m.
// Keys may omit the leading "@". Values may reference other aliases in m;
// dangling or cyclic references fail with [ErrUnknownAlias].
func New(m map[string]string) (*Aliases, error) {
	a := &Aliases{}
	pending := make(map[string]string, len(m))
	for k, v := range m {
		pending[k] = v
	}

	// Values referring to other aliases are retried until no progress is made.
	for len(pending) > 0 {
		progressed := false
		names := make([]string, 0, len(pending))
		for k := range pending {
			names = append(names, k)
		}
		sort.Strings(names)

		var lastErr error
		for _, name := range names {
			if err := a.Set(name, pending[name]); err != nil {
				if errors.Is(err, ErrUnknownAlias) {
					lastErr = err
					continue
				}
				return nil, err
			}
			delete(pending, name)
			progressed = true
		}
		if !progressed {
			return nil, lastErr
		}
	}
	return a, nil
}

// Set registers alias name for path. A missing "@" prefix on name is added.
// If path is itself an alias it is resolved immediately.
func (a *Aliases) Set(name, path string) error {
	name = normalize(name)
	if name == "@" || strings.HasSuffix(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidAlias, name)
	}

	resolved, err := a.Get(path)
	if err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}

	if a.paths == nil {
		a.paths = make(map[string]string)
	}
	a.paths[name] = trimSeparators(resolved)
	return nil
}

// Get resolves path. Paths not starting with "@" are returned as is.
func (a *Aliases) Get(path string) (string, error) {
	if !strings.HasPrefix(path, "@") {
		return path, nil
	}

	for name := path; ; {
		if p, ok := a.paths[name]; ok {
			return p + path[len(name):], nil
		}
		i := strings.LastIndexByte(name, '/')
		if i < 0 {
			break
		}
		name = name[:i]
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlias, path)
}

func normalize(name string) string {
	if !strings.HasPrefix(name, "@") {
		name = "@" + name
	}
	return name
}

// trimSeparators strips trailing separators, keeping a lone root.
func trimSeparators(p string) string {
	trimmed := strings.TrimRight(p, `/\`)
	if trimmed == "" && p != "" {
		return p[:1]
	}
	return trimmed
}
