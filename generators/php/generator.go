// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package php generates Yii3 asset bundle classes.
package php

import (
	"context"
	"fmt"

	"github.com/beastbytes/bundlegen/generator"
	"github.com/beastbytes/bundlegen/internal/phpname"
	"github.com/beastbytes/bundlegen/model"
)

// Name is the registry name of this generator.
const Name = "php"

// Generator implements [generator.Generator] for PHP asset bundles.
type Generator struct{}

// NewGenerator creates a new PHP generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           Name,
		Version:        "1.0.0",
		Description:    "Generate a Yii3 AssetBundle class from a Webpack manifest",
		FileExtensions: []string{".php"},
		URL:            "https://github.com/yiisoft/assets",
	}
}

// Generate produces the bundle class file.
func (g *Generator) Generate(ctx context.Context, b *model.Bundle, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !phpname.IsNamespace(b.Namespace) {
		return nil, fmt.Errorf("invalid namespace %q", b.Namespace)
	}
	if !phpname.IsIdentifier(b.ClassName) {
		return nil, fmt.Errorf("invalid class name %q", b.ClassName)
	}

	internalCfg := Config{
		BaseClass: cfg.Option("base_class", DefaultBaseClass),
	}

	filename := b.ClassName + ".php"
	if cfg.OutputFile != "" {
		filename = cfg.OutputFile
	}

	return generator.Single(filename, Render(b, internalCfg)), nil
}
