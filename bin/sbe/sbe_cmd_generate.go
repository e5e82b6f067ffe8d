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
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/swordday/simple-binary-encoding/codegen"
	"github.com/swordday/simple-binary-encoding/output"
)

type cmdGenerate struct {
	outDir      string
	packageName string
	parallelism int
	configPath  string
	verbose     bool

	flagSet *pflag.FlagSet
	fs      afero.Fs
}

// generateConfig is the file format of `sbe generate --config`. Flags
// given on the command line take precedence.
type generateConfig struct {
	Package     string `yaml:"package"`
	Output      string `yaml:"output"`
	Parallelism int    `yaml:"parallelism"`
	Verbose     bool   `yaml:"verbose"`
}

func (*cmdGenerate) help() *commandHelp {
	return &commandHelp{
		usage:   "generate IR_FILE",
		summary: "Generate Go codecs for the messages and types of an IR document",
	}
}

func (cmd *cmdGenerate) flags(flags *pflag.FlagSet) {
	cmd.flagSet = flags
	flags.StringVarP(&cmd.outDir, "output", "o", "", "directory to write generated files into")
	flags.StringVar(&cmd.packageName, "package", "", "Go package name (default: derived from the schema namespaces)")
	flags.IntVarP(&cmd.parallelism, "parallelism", "j", 0, "number of entities to generate concurrently (default: GOMAXPROCS)")
	flags.StringVar(&cmd.configPath, "config", "", "YAML file with default option values")
	flags.BoolVarP(&cmd.verbose, "verbose", "v", false, "log each generated entity")
}

func (cmd *cmdGenerate) run(ctx context.Context, argv []string) int {
	if len(argv) != 1 {
		fmt.Fprintln(stderr, "usage: sbe generate [options] IR_FILE")
		return 1
	}
	if err := cmd.loadConfig(); err != nil {
		printError(err)
		return 1
	}
	if cmd.outDir == "" {
		fmt.Fprintln(stderr, "No output directory specified (set --output=)")
		return 1
	}
	logger := newLogger(stderr, cmd.verbose)

	schema, err := readSchema(argv[0])
	if err != nil {
		printError(err)
		return 1
	}

	opts := []codegen.GenerateOption{codegen.WithLogger(logger)}
	if cmd.packageName != "" {
		opts = append(opts, codegen.WithPackageName(cmd.packageName))
	}
	if cmd.parallelism > 0 {
		opts = append(opts, codegen.WithParallelism(cmd.parallelism))
	}
	result := codegen.Generate(schema, opts...)

	var warnings, errs []string
	for _, warning := range result.Warnings {
		warnings = append(warnings, warning.String())
	}
	for _, err := range result.Errors {
		errs = append(errs, err.Error())
	}
	printDiagnostics(stderr, warnings, errs)
	if len(result.Errors) > 0 {
		return 1
	}

	fs := cmd.fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	manager := output.NewManager(fs, cmd.outDir, output.WithLogger(logger))
	summary, err := manager.WriteFiles(result.Files)
	if err != nil {
		printError(err)
		return 1
	}
	level.Info(logger).Log(
		"msg", "wrote generated files",
		"dir", manager.Root(),
		"files", summary.Files,
		"size", humanize.Bytes(summary.Bytes),
	)
	return 0
}

func (cmd *cmdGenerate) loadConfig() error {
	if cmd.configPath == "" {
		return nil
	}
	data, err := os.ReadFile(cmd.configPath)
	if err != nil {
		return errors.Wrapf(err, "reading config %q", cmd.configPath)
	}
	var config generateConfig
	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return errors.Wrapf(err, "decoding config %q", cmd.configPath)
	}

	changed := func(name string) bool {
		return cmd.flagSet != nil && cmd.flagSet.Changed(name)
	}
	if !changed("package") && config.Package != "" {
		cmd.packageName = config.Package
	}
	if !changed("output") && config.Output != "" {
		cmd.outDir = config.Output
	}
	if !changed("parallelism") && config.Parallelism != 0 {
		cmd.parallelism = config.Parallelism
	}
	if !changed("verbose") && config.Verbose {
		cmd.verbose = true
	}
	return nil
}
