// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/beastbytes/bundlegen/internal/alias"
	"github.com/beastbytes/bundlegen/internal/config"
	"github.com/beastbytes/bundlegen/internal/creator"
	"github.com/beastbytes/bundlegen/model"
)

// bundleFlags are the flags describing a bundle. Without --config they
// describe the only bundle; with it they override every configured bundle.
type bundleFlags struct {
	aliases      []string
	basePath     string
	baseURL      string
	chunks       []string
	className    string
	manifest     string
	manifestPath string
	namespace    string
	cssOptions   []string
	jsOptions    []string
	cssPosition  int
	jsPosition   int
	target       string
	targetOpts   []string
	force        bool
	dryRun       bool
}

func (f *bundleFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.aliases, "alias", "a", nil, "Path alias as name=path (repeatable)")
	fs.StringVar(&f.basePath, "base-path", "", "Web-accessible directory, or alias, containing the assets")
	fs.StringVar(&f.baseURL, "base-url", creator.DefaultBaseURL, "Base URL for the asset files")
	fs.StringSliceVar(&f.chunks, "chunks", creator.DefaultChunks, "Chunk names in dependency order")
	fs.StringVarP(&f.className, "class", "c", creator.DefaultClassName, "Generated class name")
	fs.StringVar(&f.manifest, "manifest", creator.DefaultManifest, "Manifest file name")
	fs.StringVar(&f.manifestPath, "manifest-path", "", "Directory, or alias, containing the manifest (default: --base-path)")
	fs.StringVarP(&f.namespace, "namespace", "n", "", `Namespace of the generated class, e.g. App\Assets`)
	fs.StringArrayVar(&f.cssOptions, "css-option", nil, "CSS registration option as key=value (repeatable)")
	fs.StringArrayVar(&f.jsOptions, "js-option", nil, "JS registration option as key=value (repeatable)")
	fs.IntVar(&f.cssPosition, "css-position", 0, "Position of <style> tags (default: null)")
	fs.IntVar(&f.jsPosition, "js-position", 0, "Position of <script> tags (default: null)")
	fs.StringVarP(&f.target, "target", "t", creator.DefaultTarget, "Target generator")
	fs.StringArrayVar(&f.targetOpts, "target-option", nil, "Target generator option as key=value (repeatable)")
	fs.BoolVarP(&f.force, "force", "f", false, "Regenerate even if the bundle is newer than the manifest")
	fs.BoolVar(&f.dryRun, "dry-run", false, "Print generated bundles to stdout without writing files")
}

// apply copies the flags set on fs into b.
func (f *bundleFlags) apply(fs *pflag.FlagSet, b *creator.Config) error {
	set := func(name string) bool { return fs.Changed(name) }

	if set("base-path") {
		b.BasePath = f.basePath
	}
	if set("base-url") {
		b.BaseURL = f.baseURL
	}
	if set("chunks") {
		b.Chunks = trimAll(f.chunks)
	}
	if set("class") {
		b.ClassName = f.className
	}
	if set("manifest") {
		b.Manifest = f.manifest
	}
	if set("manifest-path") {
		b.ManifestPath = f.manifestPath
	}
	if set("namespace") {
		b.Namespace = f.namespace
	}
	if set("css-option") {
		opts, err := parseOptions(f.cssOptions)
		if err != nil {
			return fmt.Errorf("--css-option: %w", err)
		}
		b.CSSOptions = opts
	}
	if set("js-option") {
		opts, err := parseOptions(f.jsOptions)
		if err != nil {
			return fmt.Errorf("--js-option: %w", err)
		}
		b.JSOptions = opts
	}
	if set("css-position") {
		v := f.cssPosition
		b.CSSPosition = &v
	}
	if set("js-position") {
		v := f.jsPosition
		b.JSPosition = &v
	}
	if set("target") {
		b.Target = f.target
	}
	if set("target-option") {
		opts, err := parseOptions(f.targetOpts)
		if err != nil {
			return fmt.Errorf("--target-option: %w", err)
		}
		if b.TargetOptions == nil {
			b.TargetOptions = make(map[string]string, len(opts))
		}
		for _, o := range opts {
			b.TargetOptions[o.Key] = o.Value
		}
	}
	if set("force") {
		b.Force = f.force
	}
	return nil
}

// load builds the configuration from --config, if given, and the bundle
// flags, and returns it with its alias resolver.
func (f *bundleFlags) load(fs *pflag.FlagSet, configPath string) (*config.Config, *alias.Aliases, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		var applyErr error
		cfg.Apply(func(b *creator.Config) {
			if err := f.apply(fs, b); err != nil && applyErr == nil {
				applyErr = err
			}
		})
		if applyErr != nil {
			return nil, nil, applyErr
		}
	} else {
		b := creator.DefaultConfig()
		if err := f.apply(fs, &b); err != nil {
			return nil, nil, err
		}
		cfg = &config.Config{
			Aliases: make(map[string]string),
			Bundles: []creator.Config{b},
		}
	}

	for _, a := range f.aliases {
		name, path, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, nil, fmt.Errorf("--alias %q: want name=path", a)
		}
		cfg.Aliases[name] = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	resolver, err := cfg.Resolver()
	if err != nil {
		return nil, nil, err
	}
	return cfg, resolver, nil
}

func parseOptions(pairs []string) (model.Options, error) {
	var opts model.Options
	for _, p := range pairs {
		o, err := model.ParseOption(p)
		if err != nil {
			return nil, err
		}
		opts.Set(o.Key, o.Value)
	}
	return opts, nil
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
