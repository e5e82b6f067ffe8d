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

// Package output writes generated files below an output directory.
package output

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/swordday/simple-binary-encoding/codegen"
)

type Option interface {
	apply(*Manager)
}

type option func(*Manager)

func (f option) apply(m *Manager) { f(m) }

func WithLogger(logger log.Logger) Option {
	return option(func(m *Manager) {
		m.logger = logger
	})
}

// WithFileMode sets the permissions of written files. Directories are
// created with the same permissions plus the execute bits.
func WithFileMode(mode fs.FileMode) Option {
	return option(func(m *Manager) {
		m.fileMode = mode
	})
}

// Manager writes files into a root directory of an afero.Fs. Every file
// name is checked to stay inside the root before anything is written.
type Manager struct {
	fs       afero.Fs
	root     string
	logger   log.Logger
	fileMode fs.FileMode
}

// Summary describes what a call to WriteFiles did.
type Summary struct {
	Files int
	Bytes uint64
}

func NewManager(afs afero.Fs, root string, opts ...Option) *Manager {
	m := &Manager{
		fs:       afs,
		root:     root,
		logger:   log.NewNopLogger(),
		fileMode: 0o644,
	}
	for _, opt := range opts {
		opt.apply(m)
	}
	return m
}

func (m *Manager) Root() string {
	return m.root
}

// Path resolves a slash-separated file name against the root.
func (m *Manager) Path(name string) (string, error) {
	if m.root == "" {
		return "", errors.New("No output directory specified")
	}
	if name == "" {
		return "", errors.Errorf("Invalid output path %q: empty", name)
	}
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if part == "" || part == "." || part == ".." {
			return "", errors.Errorf("Invalid output path %q: bad path component %q", name, part)
		}
		if filepath.IsAbs(part) || strings.ContainsAny(part, `\:`) {
			return "", errors.Errorf("Invalid output path %q: component %q is not a plain name", name, part)
		}
	}
	return filepath.Join(append([]string{m.root}, parts...)...), nil
}

// Write stores one file, creating parent directories as needed.
func (m *Manager) Write(name string, content []byte) error {
	outPath, err := m.Path(name)
	if err != nil {
		return err
	}
	dirMode := m.fileMode | (m.fileMode&0o444)>>2
	if err := m.fs.MkdirAll(filepath.Dir(outPath), dirMode); err != nil {
		return errors.Wrapf(err, "creating directory for %q", name)
	}
	if err := afero.WriteFile(m.fs, outPath, content, m.fileMode); err != nil {
		return errors.Wrapf(err, "writing %q", name)
	}
	level.Debug(m.logger).Log("msg", "wrote file", "path", outPath, "bytes", len(content))
	return nil
}

// WriteFiles validates every name first, so that a bad name leaves the
// output directory untouched.
func (m *Manager) WriteFiles(files []*codegen.File) (Summary, error) {
	for _, file := range files {
		if _, err := m.Path(file.Name); err != nil {
			return Summary{}, err
		}
	}
	var summary Summary
	for _, file := range files {
		if err := m.Write(file.Name, file.Content); err != nil {
			return summary, err
		}
		summary.Files += 1
		summary.Bytes += uint64(len(file.Content))
	}
	return summary, nil
}

// JoinPath joins plugin-style path components into a file name accepted
// by Path.
func JoinPath(parts []string) string {
	return strings.Join(parts, "/")
}
