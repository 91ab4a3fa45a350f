// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package alias

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAliases_Get(t *testing.T) {
	a, err := New(map[string]string{
		"app":          "/srv/app/",
		"@app/Assets":  "/srv/generated",
		"basePath":     "/srv/public/build",
		"manifestPath": "@basePath/meta",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{name: "plain path passes through", path: "/tmp/x", want: "/tmp/x"},
		{name: "relative path passes through", path: "build", want: "build"},
		{name: "root alias", path: "@app", want: "/srv/app"},
		{name: "root alias with remainder", path: "@app/Views/layout", want: "/srv/app/Views/layout"},
		{name: "longest prefix wins", path: "@app/Assets", want: "/srv/generated"},
		{name: "longest prefix with remainder", path: "@app/Assets/Admin", want: "/srv/generated/Admin"},
		{name: "prefix must end at separator", path: "@appx", wantErr: ErrUnknownAlias},
		{name: "alias value resolved at set", path: "@manifestPath", want: "/srv/public/build/meta"},
		{name: "unknown alias", path: "@nope/x", wantErr: ErrUnknownAlias},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Get(tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Get(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q): %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]string
		wantErr error
	}{
		{
			name:    "dangling reference",
			input:   map[string]string{"a": "@missing/x"},
			wantErr: ErrUnknownAlias,
		},
		{
			name:    "cycle",
			input:   map[string]string{"a": "@b", "b": "@a"},
			wantErr: ErrUnknownAlias,
		},
		{
			name:    "empty name",
			input:   map[string]string{"@": "/x"},
			wantErr: ErrInvalidAlias,
		},
		{
			name:    "trailing separator in name",
			input:   map[string]string{"@a/": "/x"},
			wantErr: ErrInvalidAlias,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_ReferenceOrder(t *testing.T) {
	// "a" sorts before "z" but depends on it.
	a, err := New(map[string]string{"a": "@z/sub", "z": "/root"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := make(map[string]string)
	for _, name := range []string{"@a", "@z"} {
		p, err := a.Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		got[name] = p
	}
	want := map[string]string{"@a": "/root/sub", "@z": "/root"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolved aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestAliases_SetWithoutPrefix(t *testing.T) {
	var a Aliases
	if err := a.Set("web", "/var/www"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := a.Get("@web/assets")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "/var/www/assets" {
		t.Errorf("Get(@web/assets) = %q, want /var/www/assets", got)
	}
	if _, err := a.Get("@www"); !errors.Is(err, ErrUnknownAlias) {
		t.Errorf("Get(@www) error = %v, want ErrUnknownAlias", err)
	}
}

func TestTrimSeparators(t *testing.T) {
	tests := map[string]string{
		"/srv/app/":  "/srv/app",
		`C:\app\`:    `C:\app`,
		"/":          "/",
		"":           "",
		"relative//": "relative",
	}
	for in, want := range tests {
		if got := trimSeparators(in); got != want {
			t.Errorf("trimSeparators(%q) = %q, want %q", in, got, want)
		}
	}
}
