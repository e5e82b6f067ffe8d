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

// Command tinygo_build builds the sbe codegen plugin as a wasm module.
package main

import (
	"flag"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	tinygo   = flag.String("tinygo", "tinygo", "")
	output   = flag.String("output", "sbe-codegen-go.wasm", "")
	chdir    = flag.String("chdir", ".", "")
	goSdkBin = flag.String("go-sdk-bin", "", "")
	wasmOpt  = flag.String("wasm-opt", "", "")
	pkg      = flag.String("package", "./bin/sbe-codegen-go", "")
)

func main() {
	flag.Parse()
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	pwd, err := os.Getwd()
	if err != nil {
		level.Error(logger).Log("msg", "getwd", "err", err)
		os.Exit(1)
	}

	tinygoArgs := tinygoBuildArgs(filepath.Join(pwd, *output), *pkg, flag.Args())
	cmd := exec.Command(resolve(pwd, *tinygo), tinygoArgs...)
	cmd.Env = buildEnv(pwd)
	cmd.Dir = filepath.Join(pwd, *chdir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	level.Info(logger).Log("msg", "building plugin", "cmd", cmd.Path, "args", strings.Join(tinygoArgs, " "))
	if err := cmd.Run(); err != nil {
		level.Error(logger).Log("msg", "tinygo build failed", "err", err)
		os.Exit(1)
	}
}

// The plugin is loaded as a reactor module: the host calls _initialize,
// never _start.
func tinygoBuildArgs(outPath, pkg string, extra []string) []string {
	args := []string{
		"build",
		"-o=" + outPath,
		"-target=wasip1",
		"-buildmode=c-shared",
		"-no-debug",
	}
	args = append(args, extra...)
	return append(args, pkg)
}

// resolve leaves bare command names for $PATH lookup.
func resolve(pwd, path string) string {
	if !strings.ContainsRune(path, filepath.Separator) {
		return path
	}
	return filepath.Join(pwd, path)
}

func buildEnv(pwd string) []string {
	env := []string{
		"HOME=" + filepath.Join(os.TempDir(), "tinygo-home"),
	}
	if *goSdkBin != "" {
		env = append(env, "PATH="+filepath.Join(pwd, *goSdkBin)+string(os.PathListSeparator)+os.Getenv("PATH"))
	} else {
		env = append(env, "PATH="+os.Getenv("PATH"))
	}
	if *wasmOpt != "" {
		env = append(env, "WASMOPT="+filepath.Join(pwd, *wasmOpt))
	}
	return env
}
