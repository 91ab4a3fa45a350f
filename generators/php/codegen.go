// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package php

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/beastbytes/bundlegen/internal/phpname"
	"github.com/beastbytes/bundlegen/model"
)

// DefaultBaseClass is the class generated bundles extend.
const DefaultBaseClass = `Yiisoft\Assets\AssetBundle`

// Config holds configuration for PHP generation.
type Config struct {
	// BaseClass is the fully qualified parent class.
	BaseClass string
}

// Render returns the PHP source declaring b.
//
// Values are written with single quotes and no escaping, so a path containing
// a quote produces invalid PHP. Webpack output paths never do.
func Render(b *model.Bundle, cfg Config) []byte {
	base := cfg.BaseClass
	if base == "" {
		base = DefaultBaseClass
	}
	base = phpname.Trim(base)

	var buf bytes.Buffer

	buf.WriteString("<?php\n")
	buf.WriteString("/**\n")
	// The trailing space is part of the established header.
	buf.WriteString(" * Do not edit this file; it is automatically created \n")
	buf.WriteString(" */\n\n")
	buf.WriteString("declare(strict_types=1);\n\n")
	fmt.Fprintf(&buf, "namespace %s;\n\n", phpname.Trim(b.Namespace))
	fmt.Fprintf(&buf, "use %s;\n\n", base)
	fmt.Fprintf(&buf, "final class %s extends %s\n", b.ClassName, phpname.BaseName(base))
	buf.WriteString("{\n")

	writeProperty(&buf, "?string", "basePath", b.BasePath)
	writeProperty(&buf, "?string", "baseUrl", b.BaseURL)
	writeProperty(&buf, "array", "css", b.CSS)
	writeProperty(&buf, "array", "cssOptions", b.CSSOptions)
	writeProperty(&buf, "?int", "cssPosition", b.CSSPosition)
	writeProperty(&buf, "array", "js", b.JS)
	writeProperty(&buf, "array", "jsOptions", b.JSOptions)
	writeProperty(&buf, "?int", "jsPosition", b.JSPosition)

	buf.WriteString("}")
	return buf.Bytes()
}

func writeProperty(buf *bytes.Buffer, typ, name string, v any) {
	fmt.Fprintf(buf, "    public %s $%s = %s;\n", typ, name, formatValue(v))
}

// formatValue renders v as a PHP literal.
// Options render as a list of their values; keys are not written.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + val + "'"
	case *string:
		if val == nil {
			return "null"
		}
		return formatValue(*val)
	case int:
		return strconv.Itoa(val)
	case *int:
		if val == nil {
			return "null"
		}
		return formatValue(*val)
	case []string:
		if len(val) == 0 {
			return "[]"
		}
		return "['" + strings.Join(val, "','") + "']"
	case model.Options:
		return formatValue(val.Values())
	default:
		return fmt.Sprintf("%v", v)
	}
}
