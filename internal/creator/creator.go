// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package creator writes asset bundle classes from a Webpack manifest.
//
// A [Creator] resolves where the manifest and the bundle file live, skips
// work when the bundle is already newer than the manifest, and otherwise
// renders the bundle through the configured target generator and writes it.
package creator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/beastbytes/bundlegen/generator"
	"github.com/beastbytes/bundlegen/internal/alias"
	"github.com/beastbytes/bundlegen/internal/logging"
	"github.com/beastbytes/bundlegen/internal/manifest"
	"github.com/beastbytes/bundlegen/internal/phpname"
	"github.com/beastbytes/bundlegen/model"
)

var (
	// ErrConfig is returned for an incomplete bundle configuration.
	ErrConfig = errors.New("invalid bundle configuration")

	// ErrManifest is returned when the manifest cannot be read or parsed.
	ErrManifest = errors.New("manifest unavailable")

	// ErrDirectory is returned when the output directory cannot be created.
	ErrDirectory = errors.New("directory was not created")
)

// Status is the outcome of [Creator.Create].
type Status int

const (
	// StatusSkipped means the bundle was newer than the manifest.
	StatusSkipped Status = iota
	// StatusWritten means the bundle file was written.
	StatusWritten
	// StatusWriteFailed means the bundle file could not be opened, written
	// or closed. The file may be truncated.
	StatusWriteFailed
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusWritten:
		return "written"
	case StatusWriteFailed:
		return "write failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes what [Creator.Create] did.
type Result struct {
	// Status is the outcome.
	Status Status

	// Bytes is the number of bytes written; zero unless StatusWritten.
	Bytes int

	// Output is the bundle file path.
	Output string

	// Manifest is the manifest file path.
	Manifest string

	// Err is the write error for StatusWriteFailed.
	Err error
}

// Creator generates one asset bundle. Its configuration is fixed at
// construction.
type Creator struct {
	cfg     Config
	aliases alias.Resolver
	gen     generator.Generator
	logger  *zap.Logger
}

// New creates a Creator for cfg. The target generator is looked up in the
// [generator] registry. A nil logger discards log output.
func New(cfg Config, aliases alias.Resolver, logger *zap.Logger) (*Creator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := generator.Lookup(cfg.Target)
	if err != nil {
		return nil, err
	}
	if aliases == nil {
		aliases = &alias.Aliases{}
	}
	cfg = cfg.Clone()
	return &Creator{
		cfg:     cfg,
		aliases: aliases,
		gen:     gen,
		logger:  logging.OrNop(logger).With(zap.String("bundle", cfg.Name())),
	}, nil
}

// Config returns a copy of the creator's configuration.
func (c *Creator) Config() Config {
	return c.cfg.Clone()
}

// OutputDir returns the directory the bundle file is written to.
func (c *Creator) OutputDir() (string, error) {
	dir, err := c.aliases.Get(phpname.Alias(c.cfg.Namespace))
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}
	return filepath.FromSlash(dir), nil
}

// OutputFile returns the bundle file path.
func (c *Creator) OutputFile() (string, error) {
	dir, err := c.OutputDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.fileName()), nil
}

// ManifestFile returns the manifest file path.
func (c *Creator) ManifestFile() (string, error) {
	base := c.cfg.ManifestPath
	if base == "" {
		base = c.cfg.BasePath
	}
	dir, err := c.aliases.Get(base)
	if err != nil {
		return "", fmt.Errorf("resolve manifest path: %w", err)
	}
	return filepath.Join(filepath.FromSlash(dir), c.cfg.Manifest), nil
}

func (c *Creator) fileName() string {
	return c.cfg.ClassName + c.gen.Metadata().Extension()
}

// Create generates the bundle file.
//
// Manifest, directory and rendering problems are returned as errors. A
// failure to write the file is reported as StatusWriteFailed with a nil
// error so the caller can decide how to handle it.
func (c *Creator) Create(ctx context.Context) (*Result, error) {
	outputFile, err := c.OutputFile()
	if err != nil {
		return nil, err
	}
	manifestFile, err := c.ManifestFile()
	if err != nil {
		return nil, err
	}
	res := &Result{Output: outputFile, Manifest: manifestFile}
	log := c.logger.With(zap.String("output", outputFile), zap.String("manifest", manifestFile))

	modTime, err := manifest.ModTime(manifestFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	// Only a freshness shortcut; content is never compared.
	if !c.cfg.Force && manifest.IsNewer(outputFile, modTime) {
		log.Debug("bundle is up to date")
		res.Status = StatusSkipped
		return res, nil
	}

	if err := ensureDir(filepath.Dir(outputFile)); err != nil {
		return nil, err
	}

	content, err := c.render(ctx, manifestFile)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n, err := writeFile(outputFile, content)
	if err != nil {
		log.Warn("write bundle failed", zap.Error(err))
		res.Status = StatusWriteFailed
		res.Err = err
		return res, nil
	}

	log.Info("bundle written", zap.Int("bytes", n))
	res.Status = StatusWritten
	res.Bytes = n
	return res, nil
}

// Render returns the bundle source without touching the output file.
func (c *Creator) Render(ctx context.Context) ([]byte, error) {
	manifestFile, err := c.ManifestFile()
	if err != nil {
		return nil, err
	}
	return c.render(ctx, manifestFile)
}

func (c *Creator) render(ctx context.Context, manifestFile string) ([]byte, error) {
	m, err := manifest.Load(manifestFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}

	b := c.Bundle(m)
	c.logger.Debug("resolved chunks",
		zap.Strings("chunks", c.cfg.Chunks),
		zap.Strings("css", b.CSS),
		zap.Strings("js", b.JS))

	out, err := c.gen.Generate(ctx, b, generator.Config{
		OutputFile: c.fileName(),
		Options:    c.cfg.TargetOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", c.gen.Metadata().Name, err)
	}
	_, content, err := out.Only()
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", c.gen.Metadata().Name, err)
	}
	return content, nil
}

// Bundle builds the bundle declared by the configuration for m.
func (c *Creator) Bundle(m model.Manifest) *model.Bundle {
	b := &model.Bundle{
		Namespace:   c.cfg.Namespace,
		ClassName:   c.cfg.ClassName,
		BaseURL:     c.cfg.BaseURL,
		CSSOptions:  c.cfg.CSSOptions.Clone(),
		CSSPosition: c.cfg.CSSPosition,
		JSOptions:   c.cfg.JSOptions.Clone(),
		JSPosition:  c.cfg.JSPosition,
	}
	if c.cfg.BasePath != "" {
		basePath := c.cfg.BasePath
		b.BasePath = &basePath
	}
	b.CSS, b.JS = model.ResolveChunks(m, c.cfg.Chunks)
	return b
}

// ensureDir creates dir and its parents. Creation failing because another
// process created dir concurrently is not an error.
func ensureDir(dir string) error {
	if isDir(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil && !isDir(dir) {
		return fmt.Errorf("%w: %s: %w", ErrDirectory, dir, err)
	}
	return nil
}

// writeFile truncates and writes path, returning the bytes written.
func writeFile(path string, content []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	n, err := f.Write(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
