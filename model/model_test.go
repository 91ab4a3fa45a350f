// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.

package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestParseManifest(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Manifest
		wantErr bool
	}{
		{
			name:  "flat object",
			input: `{"main.js":"js/main.1.js","main.css":"css/main.2.css"}`,
			want:  Manifest{"main.js": "js/main.1.js", "main.css": "css/main.2.css"},
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  Manifest{},
		},
		{
			name:    "null document",
			input:   `null`,
			wantErr: true,
		},
		{
			name:    "array document",
			input:   `["main.js"]`,
			wantErr: true,
		},
		{
			name:    "nested value",
			input:   `{"main.js":{"src":"js/main.js"}}`,
			wantErr: true,
		},
		{
			name:    "truncated",
			input:   `{"main.js":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseManifest([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseManifest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseManifest() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveChunks(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		chunks   []string
		wantCSS  []string
		wantJS   []string
	}{
		{
			name: "default chunks",
			manifest: Manifest{
				"manifest.js": "js/manifest.abc.js",
				"vendor.js":   "js/vendor.def.js",
				"main.js":     "js/main.ghi.js",
				"main.css":    "css/main.jkl.css",
			},
			chunks:  []string{"manifest", "vendor", "main"},
			wantCSS: []string{"css/main.jkl.css"},
			wantJS:  []string{"js/manifest.abc.js", "js/vendor.def.js", "js/main.ghi.js"},
		},
		{
			name: "chunk order wins over manifest order",
			manifest: Manifest{
				"a.js":  "a.js",
				"b.js":  "b.js",
				"c.css": "c.css",
				"c.js":  "c.js",
			},
			chunks:  []string{"c", "b", "a"},
			wantCSS: []string{"c.css"},
			wantJS:  []string{"c.js", "b.js", "a.js"},
		},
		{
			name: "missing chunk is skipped",
			manifest: Manifest{
				"a.js": "a.js",
				"c.js": "c.js",
			},
			chunks:  []string{"a", "b", "c"},
			wantCSS: []string{},
			wantJS:  []string{"a.js", "c.js"},
		},
		{
			name:     "nothing matches",
			manifest: Manifest{"logo.png": "img/logo.png"},
			chunks:   []string{"manifest", "vendor", "main"},
			wantCSS:  []string{},
			wantJS:   []string{},
		},
		{
			name:     "no chunks",
			manifest: Manifest{"main.js": "js/main.js"},
			chunks:   nil,
			wantCSS:  []string{},
			wantJS:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css, js := ResolveChunks(tt.manifest, tt.chunks)
			if css == nil || js == nil {
				t.Fatalf("ResolveChunks() returned nil slice: css=%v js=%v", css, js)
			}
			if diff := cmp.Diff(tt.wantCSS, css); diff != "" {
				t.Errorf("css mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantJS, js); diff != "" {
				t.Errorf("js mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		input   string
		want    Option
		wantErr bool
	}{
		{input: "media=print", want: Option{Key: "media", Value: "print"}},
		{input: "defer=", want: Option{Key: "defer", Value: ""}},
		{input: "a=b=c", want: Option{Key: "a", Value: "b=c"}},
		{input: "media", wantErr: true},
		{input: "=print", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOption(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOption(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOption(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOptions_SetKeepsOrder(t *testing.T) {
	var o Options
	o.Set("media", "screen")
	o.Set("crossorigin", "anonymous")
	o.Set("media", "print")

	want := Options{{Key: "media", Value: "print"}, {Key: "crossorigin", Value: "anonymous"}}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("Options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"print", "anonymous"}, o.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestOptions_Clone(t *testing.T) {
	o := Options{{Key: "a", Value: "1"}}
	c := o.Clone()
	c.Set("a", "2")
	if o[0].Value != "1" {
		t.Errorf("clone shares storage: source now %q", o[0].Value)
	}
	if Options(nil).Clone() != nil {
		t.Error("Clone(nil) should stay nil")
	}
}

func TestOptions_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Options
		wantErr bool
	}{
		{
			name:  "mapping keeps document order",
			input: "opts:\n  z: last\n  a: first\n",
			want:  Options{{Key: "z", Value: "last"}, {Key: "a", Value: "first"}},
		},
		{
			name:  "sequence keyed by index",
			input: "opts: [x, y]\n",
			want:  Options{{Key: "0", Value: "x"}, {Key: "1", Value: "y"}},
		},
		{
			name:  "null",
			input: "opts: ~\n",
			want:  nil,
		},
		{
			name:    "nested value",
			input:   "opts:\n  a:\n    b: c\n",
			wantErr: true,
		},
		{
			name:    "plain scalar",
			input:   "opts: screen\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				Opts Options `yaml:"opts"`
			}
			err := yaml.Unmarshal([]byte(tt.input), &doc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, doc.Opts); diff != "" {
				t.Errorf("Options mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
