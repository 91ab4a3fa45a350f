// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/beastbytes/bundlegen/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    model.Manifest
		wantErr string
	}{
		{
			name:    "webpack manifest",
			content: `{"main.js": "js/main.4ae9.js", "main.css": "css/main.6ea1.css", "logo.svg": "img/logo.svg"}`,
			want: model.Manifest{
				"main.js":  "js/main.4ae9.js",
				"main.css": "css/main.6ea1.css",
				"logo.svg": "img/logo.svg",
			},
		},
		{
			name:    "not json",
			content: "main.js: js/main.js",
			wantErr: "parse manifest",
		},
		{
			name:    "not an object",
			content: "null",
			wantErr: "parse manifest",
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.Repeat("m", i+1)+".json")
			writeFile(t, path, tt.content)

			got, err := Load(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(): %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("manifest mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultName))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load(dir) succeeded, want error")
	}
}

func TestIsNewer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "WebpackManifest.php")
	writeFile(t, path, "<?php")

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	tests := []struct {
		name   string
		target string
		since  time.Time
		want   bool
	}{
		{name: "older reference", target: path, since: stamp.Add(-time.Second), want: true},
		{name: "equal times are not newer", target: path, since: stamp, want: false},
		{name: "newer reference", target: path, since: stamp.Add(time.Second), want: false},
		{name: "missing target", target: filepath.Join(dir, "missing.php"), since: time.Time{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNewer(tt.target, tt.since); got != tt.want {
				t.Errorf("IsNewer() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultName)
	writeFile(t, path, "{}")
	stamp := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	got, err := ModTime(path)
	if err != nil {
		t.Fatalf("ModTime: %v", err)
	}
	if !got.Equal(stamp) {
		t.Errorf("ModTime() = %v, want %v", got, stamp)
	}

	if _, err := ModTime(path + ".missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ModTime(missing) error = %v, want fs.ErrNotExist", err)
	}
}
