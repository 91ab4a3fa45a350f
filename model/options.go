// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Option is a single registration option.
type Option struct {
	Key   string
	Value string
}

// Options is an ordered set of registration options.
// Insertion order is kept because generated output lists values in order.
type Options []Option

// ParseOption parses a "key=value" pair.
func ParseOption(s string) (Option, error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return Option{}, fmt.Errorf("invalid option %q: want key=value", s)
	}
	return Option{Key: key, Value: value}, nil
}

// Set replaces the value for key in place, or appends it.
func (o *Options) Set(key, value string) {
	for i := range *o {
		if (*o)[i].Key == key {
			(*o)[i].Value = value
			return
		}
	}
	*o = append(*o, Option{Key: key, Value: value})
}

// Values returns the option values in order.
func (o Options) Values() []string {
	values := make([]string, 0, len(o))
	for _, opt := range o {
		values = append(values, opt.Value)
	}
	return values
}

// Clone returns a copy that shares no storage with o.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	return append(Options(nil), o...)
}

// UnmarshalYAML accepts a mapping of scalars, keeping document order, or a
// sequence of scalars, keyed by index.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	var opts Options
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: option %q: value must be a scalar", v.Line, k.Value)
			}
			opts.Set(k.Value, v.Value)
		}
	case yaml.SequenceNode:
		for i, v := range node.Content {
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: option %d: value must be a scalar", v.Line, i)
			}
			opts = append(opts, Option{Key: strconv.Itoa(i), Value: v.Value})
		}
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return fmt.Errorf("line %d: options must be a mapping or a sequence", node.Line)
		}
	default:
		return fmt.Errorf("line %d: options must be a mapping or a sequence", node.Line)
	}
	*o = opts
	return nil
}
