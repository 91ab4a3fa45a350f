// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package phpname holds helpers for PHP namespaces and class names.
package phpname

import (
	"strings"
	"unicode"
)

// Separator is the PHP namespace separator.
const Separator = `\`

// LcFirst returns name with the first letter lowercased.
// Returns empty string for empty input.
func LcFirst(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// Trim removes leading and trailing namespace separators.
func Trim(namespace string) string {
	return strings.Trim(namespace, Separator)
}

// Alias returns the path alias a namespace maps to by convention:
// "App\Assets" -> "@app/Assets".
func Alias(namespace string) string {
	return "@" + LcFirst(strings.ReplaceAll(Trim(namespace), Separator, "/"))
}

// BaseName returns the last segment of a fully qualified name:
// "Yiisoft\Assets\AssetBundle" -> "AssetBundle".
func BaseName(fqcn string) string {
	fqcn = Trim(fqcn)
	if i := strings.LastIndex(fqcn, Separator); i >= 0 {
		return fqcn[i+1:]
	}
	return fqcn
}

// IsIdentifier reports whether name is a valid PHP label.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', unicode.IsLetter(r), r >= 0x80:
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// IsNamespace reports whether namespace is a valid, non-empty qualified name.
// A single leading separator is allowed.
func IsNamespace(namespace string) bool {
	namespace = strings.TrimPrefix(namespace, Separator)
	if namespace == "" {
		return false
	}
	for seg := range strings.SplitSeq(namespace, Separator) {
		if !IsIdentifier(seg) {
			return false
		}
	}
	return true
}
