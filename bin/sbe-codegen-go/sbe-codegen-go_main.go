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
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/swordday/simple-binary-encoding/codegen"
	"github.com/swordday/simple-binary-encoding/ir"
	"github.com/swordday/simple-binary-encoding/plugin"
)

// When run natively, the plugin reads a JSON request from stdin and writes
// the JSON response to stdout. Given an IR document path instead, it
// builds the request itself.
func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	requestBuf, err := readRequest(os.Args[1:])
	if err != nil {
		level.Error(logger).Log("msg", "reading request", "err", err)
		os.Exit(1)
	}

	responseBuf, rc := plugin.Handle(requestBuf, codegen.WithLogger(level.NewFilter(logger, level.AllowInfo())))
	if _, err := os.Stdout.Write(responseBuf); err != nil {
		level.Error(logger).Log("msg", "writing response", "err", err)
		os.Exit(1)
	}
	os.Exit(int(rc))
}

func readRequest(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	schema, err := ir.Load(args[0])
	if err != nil {
		return nil, err
	}
	request, err := plugin.NewRequest(schema, "")
	if err != nil {
		return nil, err
	}
	return plugin.EncodeRequest(request)
}
