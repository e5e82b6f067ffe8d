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
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	wasm "github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/swordday/simple-binary-encoding/codegen"
	"github.com/swordday/simple-binary-encoding/output"
	"github.com/swordday/simple-binary-encoding/plugin"
)

type cmdCodegen struct {
	outDir      string
	pluginPath  string
	language    string
	packageName string
	verbose     bool
}

func (*cmdCodegen) help() *commandHelp {
	return &commandHelp{
		usage:   "codegen IR_FILE",
		summary: "Generate code for an IR document with a wasm codegen plugin",
	}
}

func (cmd *cmdCodegen) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.outDir, "output", "o", "", "directory to write generated files into")
	flags.StringVar(&cmd.pluginPath, "plugin-path", "", "colon-separated plugin directories (default: $"+pluginPathEnv+")")
	flags.StringVar(&cmd.language, "language", "go", "target language of the plugin")
	flags.StringVar(&cmd.packageName, "package", "", "package name passed to the plugin")
	flags.BoolVarP(&cmd.verbose, "verbose", "v", false, "log each written file")
}

func (cmd *cmdCodegen) run(ctx context.Context, argv []string) int {
	if len(argv) != 1 {
		fmt.Fprintln(stderr, "usage: sbe codegen [options] IR_FILE")
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
	request, err := plugin.NewRequest(schema, cmd.packageName)
	if err != nil {
		printError(err)
		return 1
	}
	requestBuf, err := plugin.EncodeRequest(request)
	if err != nil {
		printError(err)
		return 1
	}

	pluginPath, err := locatePlugin(cmd.pluginPath, cmd.language)
	if err != nil {
		printError(err)
		return 1
	}
	pluginBin, err := os.ReadFile(pluginPath)
	if err != nil {
		printError(err)
		return 1
	}
	level.Debug(logger).Log("msg", "running plugin", "path", pluginPath, "size", humanize.Bytes(uint64(len(pluginBin))))

	response, err := runPlugin(ctx, pluginBin, cmd.language, requestBuf)
	if err != nil {
		printError(err)
		return 1
	}
	if response.Error != "" {
		printError(fmt.Errorf("%s", response.Error))
		return 1
	}
	printDiagnostics(stderr, response.Warnings, response.Errors)
	if len(response.Errors) > 0 {
		return 1
	}
	if len(response.Files) == 0 {
		fmt.Fprintln(stderr, "Plugin did not generate any output files")
		return 1
	}

	files := make([]*codegen.File, 0, len(response.Files))
	for _, file := range response.Files {
		files = append(files, &codegen.File{
			Name:    output.JoinPath(file.Path),
			Content: file.Content,
		})
	}
	manager := output.NewManager(afero.NewOsFs(), cmd.outDir, output.WithLogger(logger))
	summary, err := manager.WriteFiles(files)
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

// runPlugin instantiates a codegen plugin and passes it one request. The
// plugin's response is decoded even when it reports a failure, so that
// its diagnostics can be shown.
func runPlugin(ctx context.Context, pluginBin []byte, language string, requestBuf []byte) (*plugin.Response, error) {
	runtimeConfig := wasm.NewRuntimeConfigInterpreter()
	runtimeConfig = runtimeConfig.WithMemoryLimitPages(16384)
	runtime := wasm.NewRuntimeWithConfig(ctx, runtimeConfig)
	defer runtime.Close(ctx)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, runtime); err != nil {
		return nil, err
	}
	pluginExe, err := runtime.CompileModule(ctx, pluginBin)
	if err != nil {
		return nil, err
	}
	moduleConfig := wasm.NewModuleConfig().
		WithStartFunctions("_initialize").
		WithStderr(stderr)
	mod, err := runtime.InstantiateModule(ctx, pluginExe, moduleConfig)
	if err != nil {
		return nil, err
	}
	mem := mod.Memory()

	generateName := "sbe_codegen_generate/" + language
	wasmAlloc := mod.ExportedFunction("sbe_codegen_allocate")
	wasmDealloc := mod.ExportedFunction("sbe_codegen_deallocate")
	wasmGenerate := mod.ExportedFunction(generateName)
	for name, fn := range map[string]any{
		"sbe_codegen_allocate":   wasmAlloc,
		"sbe_codegen_deallocate": wasmDealloc,
		generateName:             wasmGenerate,
	} {
		if fn == nil {
			return nil, fmt.Errorf("Plugin does not export %q", name)
		}
	}

	requestFrame := plugin.AppendFrame(nil, requestBuf)
	results, err := wasmAlloc.Call(ctx, uint64(len(requestFrame)))
	if err != nil {
		return nil, err
	}
	requestPtr := uint32(results[0])
	if requestPtr == 0 || !mem.Write(requestPtr, requestFrame) {
		return nil, fmt.Errorf("Failed to write %d byte request into plugin memory", len(requestFrame))
	}
	defer wasmDealloc.Call(ctx, uint64(requestPtr))

	results, err = wasmAlloc.Call(ctx, 4)
	if err != nil {
		return nil, err
	}
	responsePtrPtr := uint32(results[0])
	if responsePtrPtr == 0 {
		return nil, fmt.Errorf("Failed to allocate response pointer in plugin memory")
	}
	defer wasmDealloc.Call(ctx, uint64(responsePtrPtr))

	if _, err := wasmGenerate.Call(ctx, uint64(requestPtr), uint64(responsePtrPtr)); err != nil {
		return nil, err
	}

	responsePtr, ok := mem.ReadUint32Le(responsePtrPtr)
	if !ok {
		return nil, fmt.Errorf("Failed to read response pointer")
	}
	defer wasmDealloc.Call(ctx, uint64(responsePtr))
	responseLen, ok := mem.ReadUint32Le(responsePtr)
	if !ok {
		return nil, fmt.Errorf("Failed to read response message length")
	}
	responseBuf, ok := mem.Read(responsePtr+4, responseLen)
	if !ok {
		return nil, fmt.Errorf("Failed to read response message")
	}
	return plugin.DecodeResponse(bytes.Clone(responseBuf))
}
