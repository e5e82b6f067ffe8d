// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/swordday/simple-binary-encoding/encoding/irbin"
	"github.com/swordday/simple-binary-encoding/ir"
)

const pluginPathEnv = "SBE_CODEGEN_PLUGIN_PATH"

// readSchema loads an IR document. Files ending in ".sbeir" are in the
// binary IR format, anything else is YAML or JSON.
func readSchema(path string) (*ir.IR, error) {
	if filepath.Ext(path) != ".sbeir" {
		return ir.Load(path)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading IR file %q", path)
	}
	schema, err := irbin.Decode(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding IR file %q", path)
	}
	return schema, nil
}

// locatePlugin searches a colon-separated list of directories for the
// codegen plugin of a language.
func locatePlugin(searchPath, language string) (string, error) {
	if searchPath == "" {
		searchPath = os.Getenv(pluginPathEnv)
	}
	if searchPath == "" {
		return "", fmt.Errorf("No plugin path set, use --plugin-path= or $%s", pluginPathEnv)
	}
	basename := fmt.Sprintf("sbe-codegen-%s.wasm", language)
	for _, dir := range strings.Split(searchPath, ":") {
		if dir == "" {
			continue
		}
		pluginPath := filepath.Join(dir, basename)
		if info, err := os.Stat(pluginPath); err == nil && !info.IsDir() {
			return pluginPath, nil
		}
	}
	return "", fmt.Errorf("SBE codegen plugin %s not found in plugin path", basename)
}
