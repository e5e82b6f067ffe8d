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
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/swordday/simple-binary-encoding/encoding/irbin"
	"github.com/swordday/simple-binary-encoding/encoding/irtext"
	"github.com/swordday/simple-binary-encoding/ir"
)

type convertFormat uint8

const (
	formatText convertFormat = iota
	formatBinary
	formatYAML
)

type cmdConvert struct {
	outPath string
	format  string
}

func (*cmdConvert) help() *commandHelp {
	return &commandHelp{
		usage:   "convert IR_FILE",
		summary: "Convert an IR document to a text dump, binary IR, or YAML",
	}
}

func (cmd *cmdConvert) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.outPath, "output", "o", "", "output file (default: stdout)")
	flags.StringVarP(&cmd.format, "format", "f", "", "'text', 'binary', or 'yaml' (default: from the output file extension)")
}

func (cmd *cmdConvert) run(ctx context.Context, argv []string) int {
	if len(argv) != 1 {
		fmt.Fprintln(stderr, "usage: sbe convert [options] IR_FILE")
		return 1
	}
	format, err := selectFormat(cmd.format, cmd.outPath)
	if err != nil {
		printError(err)
		return 1
	}

	schema, err := readSchema(argv[0])
	if err != nil {
		printError(err)
		return 1
	}

	var out []byte
	switch format {
	case formatText:
		out = []byte(irtext.Encode(schema))
	case formatBinary:
		out, err = irbin.Encode(schema)
	case formatYAML:
		out, err = ir.Encode(schema)
	}
	if err != nil {
		printError(err)
		return 1
	}

	if cmd.outPath == "" {
		if _, err := stdout.Write(out); err != nil {
			printError(err)
			return 1
		}
		return 0
	}
	if err := os.WriteFile(cmd.outPath, out, 0o666); err != nil {
		printError(errors.Wrapf(err, "writing %q", cmd.outPath))
		return 1
	}
	return 0
}

// selectFormat picks the output format from the --format flag, or else
// from the output file's extension. Output to stdout defaults to text.
func selectFormat(format, outPath string) (convertFormat, error) {
	switch format {
	case "text", "irtext":
		return formatText, nil
	case "bin", "binary", "sbeir":
		return formatBinary, nil
	case "yaml", "yml":
		return formatYAML, nil
	case "":
	default:
		return 0, fmt.Errorf("Unsupported output format %q", format)
	}

	if outPath == "" {
		return formatText, nil
	}
	switch filepath.Ext(outPath) {
	case ".txt", ".irtext":
		return formatText, nil
	case ".sbeir", ".bin":
		return formatBinary, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("Cannot select a format for %q (use --format=text, binary, or yaml)", outPath)
}
