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

package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/swordday/simple-binary-encoding/codegen"
	"github.com/swordday/simple-binary-encoding/internal/testutil"
	"github.com/swordday/simple-binary-encoding/output"
)

func TestWriteFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := output.NewManager(fs, "/out/car")

	summary, err := m.WriteFiles([]*codegen.File{
		{Name: "Car.go", Content: []byte("package car\n")},
		{Name: "sub/Engine.go", Content: []byte("package sub\n")},
	})
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 2, summary.Files)
	testutil.ExpectEq(t, 24, summary.Bytes)

	data, err := afero.ReadFile(fs, filepath.Join("/out/car", "Car.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "package car\n", string(data))

	data, err = afero.ReadFile(fs, filepath.Join("/out/car", "sub", "Engine.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "package sub\n", string(data))

	info, err := fs.Stat(filepath.Join("/out/car", "Car.go"))
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := output.NewManager(fs, "/out")
	testutil.AssertNoError(t, m.Write("Car.go", []byte("old contents")))
	testutil.AssertNoError(t, m.Write("Car.go", []byte("new")))

	data, err := afero.ReadFile(fs, "/out/Car.go")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, "new", string(data))
}

func TestPath(t *testing.T) {
	m := output.NewManager(afero.NewMemMapFs(), "/out")

	got, err := m.Path("a/b.go")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, filepath.Join("/out", "a", "b.go"), got)

	tests := []struct {
		name    string
		pattern string
	}{
		{"", `empty`},
		{"/etc/passwd", `bad path component ""`},
		{"a//b.go", `bad path component ""`},
		{"../b.go", `bad path component "\.\."`},
		{"a/./b.go", `bad path component "\."`},
		{"a/", `bad path component ""`},
		{`a\b.go`, `not a plain name`},
		{`C:x.go`, `not a plain name`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := m.Path(test.name)
			testutil.AssertError(t, err)
			testutil.ExpectMatch(t, `^Invalid output path .*`+test.pattern, err.Error())
		})
	}
}

func TestPathNoRoot(t *testing.T) {
	m := output.NewManager(afero.NewMemMapFs(), "")
	_, err := m.Path("Car.go")
	testutil.AssertError(t, err)
	testutil.ExpectEq(t, "No output directory specified", err.Error())
}

func TestWriteFilesRejectsBeforeWriting(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := output.NewManager(fs, "/out")

	_, err := m.WriteFiles([]*codegen.File{
		{Name: "Car.go", Content: []byte("package car\n")},
		{Name: "../escape.go", Content: []byte("package escape\n")},
	})
	testutil.AssertError(t, err)

	exists, err := afero.Exists(fs, "/out/Car.go")
	testutil.AssertNoError(t, err)
	testutil.ExpectFalse(t, exists)
}

func TestWriteReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	m := output.NewManager(fs, "/out")

	err := m.Write("Car.go", []byte("package car\n"))
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, `^creating directory for "Car.go": `, err.Error())
}

func TestFileMode(t *testing.T) {
	fs := afero.NewMemMapFs()
	m := output.NewManager(fs, "/out", output.WithFileMode(0o600))
	testutil.AssertNoError(t, m.Write("Car.go", nil))

	info, err := fs.Stat("/out/Car.go")
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestJoinPath(t *testing.T) {
	testutil.ExpectEq(t, "a/b.go", output.JoinPath([]string{"a", "b.go"}))

	m := output.NewManager(afero.NewMemMapFs(), "/out")
	_, err := m.Path(output.JoinPath([]string{"a", "..", "b.go"}))
	testutil.AssertError(t, err)
}
