// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Lint verification of generated bundles.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// Tool installation instructions
var installInstructions = map[string]string{
	"php": "php is required. Install PHP 8.1 or later: https://www.php.net/downloads",
}

// requireTool fails the test if the tool is not available.
func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		instruction := installInstructions[name]
		if instruction == "" {
			instruction = fmt.Sprintf("Install %s and ensure it's in PATH", name)
		}
		t.Fatalf("%s not found in PATH.\n%s", name, instruction)
	}
}

// TestPHPOutputLints verifies that a generated bundle is valid PHP.
func TestPHPOutputLints(t *testing.T) {
	requireTool(t, "php")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	workDir := t.TempDir()
	build := filepath.Join(workDir, "public", "build")
	if err := os.MkdirAll(build, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	manifest := `{"manifest.js":"js/manifest.abc.js","vendor.js":"js/vendor.def.js","main.js":"js/main.ghi.js","main.css":"css/main.jkl.css"}`
	if err := os.WriteFile(filepath.Join(build, "manifest.json"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cmd := exec.CommandContext(ctx, binary,
		"-a", "app="+filepath.Join(workDir, "src"),
		"-a", "basePath="+build,
		"-n", `App\Assets`,
		"--base-path", "@basePath",
		"--css-position", "1",
		"--js-option", "defer=defer",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("bundlegen: %v\n%s", err, stderr.String())
	}

	out := filepath.Join(workDir, "src", "Assets", "WebpackManifest.php")
	t.Run("php_lint", func(t *testing.T) {
		start := time.Now()
		lint := exec.CommandContext(ctx, "php", "-l", out)
		output, err := lint.CombinedOutput()
		if err != nil {
			t.Fatalf("php -l failed: %v\n%s", err, output)
		}
		t.Logf("php -l: %v", time.Since(start))
	})
}
