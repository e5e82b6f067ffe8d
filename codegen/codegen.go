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

// Package codegen generates Go codecs from an SBE intermediate
// representation.
//
// Each message, composite, enum, and choice set in the schema becomes one
// Go source file declaring a type with Encode, Decode, and (where values
// can be out of range) RangeCheck methods. Groups are generated into the
// file of the message that contains them.
package codegen

import (
	"runtime"
	"slices"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/swordday/simple-binary-encoding/ir"
)

type GenerateOption interface {
	apply(*GenerateOptions)
}

type generateOption func(*GenerateOptions)

func (f generateOption) apply(opts *GenerateOptions) { f(opts) }

type GenerateOptions struct {
	packageName string
	parallelism int
	logger      log.Logger
}

// WithPackageName overrides the Go package name derived from the schema
// namespaces.
func WithPackageName(packageName string) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.packageName = packageName
	})
}

// WithParallelism limits how many entities are generated concurrently.
// The output does not depend on it.
func WithParallelism(parallelism int) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.parallelism = parallelism
	})
}

func WithLogger(logger log.Logger) GenerateOption {
	return generateOption(func(opts *GenerateOptions) {
		opts.logger = logger
	})
}

type GenerateResult struct {
	Files    []*File
	Errors   []*Error
	Warnings []*Warning
}

// File is one generated Go source file.
type File struct {
	Name    string
	Content []byte

	// Imports lists the packages the file imports, sorted.
	Imports []string
}

func Generate(schema *ir.IR, opts ...GenerateOption) GenerateResult {
	return NewGenerateOptions(opts...).Generate(schema)
}

func NewGenerateOptions(opts ...GenerateOption) *GenerateOptions {
	generateOptions := &GenerateOptions{
		parallelism: runtime.GOMAXPROCS(0),
		logger:      log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt.apply(generateOptions)
	}
	if generateOptions.parallelism < 1 {
		generateOptions.parallelism = 1
	}
	return generateOptions
}

type headerTypes struct {
	blockLengthType string
	templateIDType  string
	schemaIDType    string
	versionType     string
}

// generator holds the state of one generation job. Jobs share nothing but
// the schema, which they only read.
type generator struct {
	schema *ir.IR
	names  *namer
	header headerTypes

	// entity is the top-level entity being generated, for diagnostics.
	entity string

	units    []*unit
	errors   []*Error
	warnings []*Warning
}

func (g *generator) err(err error) {
	g.errors = append(g.errors, err.(*Error))
}

func (g *generator) warn(warning *Warning) {
	g.warnings = append(g.warnings, warning)
}

func (g *generator) newUnit(typeName string) *unit {
	u := newUnit(typeName)
	g.units = append(g.units, u)
	return u
}

type job struct {
	name string
	run  func(g *generator)
}

type jobResult struct {
	files    []*File
	errors   []*Error
	warnings []*Warning
}

func (opts *GenerateOptions) Generate(schema *ir.IR) GenerateResult {
	logger := opts.logger
	pkgName := opts.packageName
	if pkgName == "" {
		pkgName = packageName(schema.Namespaces)
	}
	if pkgName == "" {
		pkgName = packageName([]string{schema.PackageName})
	}

	header, err := resolveHeaderTypes(schema.Header)
	if err != nil {
		return GenerateResult{Errors: []*Error{err.(*Error)}}
	}

	jobs := entityJobs(schema)
	results := make([]jobResult, len(jobs))

	var eg errgroup.Group
	eg.SetLimit(opts.parallelism)
	for ii, j := range jobs {
		eg.Go(func() error {
			g := &generator{
				schema: schema,
				names:  newNamer(),
				header: header,
				entity: j.name,
			}
			j.run(g)
			results[ii] = g.finish(pkgName)
			level.Debug(logger).Log(
				"msg", "generated entity",
				"entity", j.name,
				"files", len(results[ii].files),
				"errors", len(results[ii].errors),
			)
			return nil
		})
	}
	_ = eg.Wait()

	var result GenerateResult
	seen := make(map[string]struct{})
	for ii, r := range results {
		result.Errors = append(result.Errors, r.errors...)
		result.Warnings = append(result.Warnings, r.warnings...)
		for _, file := range r.files {
			if _, dup := seen[file.Name]; dup {
				result.Warnings = append(result.Warnings, warnDuplicateArtifact(jobs[ii].name, file.Name))
				continue
			}
			seen[file.Name] = struct{}{}
			result.Files = append(result.Files, file)
		}
	}
	slices.SortFunc(result.Files, func(a, b *File) int {
		return strings.Compare(a.Name, b.Name)
	})

	level.Info(logger).Log(
		"msg", "generation complete",
		"package", pkgName,
		"entities", len(jobs),
		"files", len(result.Files),
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
	)
	return result
}

// entityJobs lists the header, then each type, then each message, in
// schema order. Duplicate artifacts are resolved in favor of the earliest.
func entityJobs(schema *ir.IR) []job {
	var jobs []job
	header := schema.Header.Tokens
	jobs = append(jobs, job{
		name: schema.Header.Name(),
		run: func(g *generator) {
			g.composite(g.names.exported(header[0].Name), header)
		},
	})
	for _, tokens := range schema.Types {
		head := &tokens[0]
		switch head.Signal {
		case ir.Signal_BEGIN_ENUM:
			jobs = append(jobs, job{head.Name, func(g *generator) { g.enum(tokens) }})
		case ir.Signal_BEGIN_SET:
			jobs = append(jobs, job{head.Name, func(g *generator) { g.choiceSet(tokens) }})
		case ir.Signal_BEGIN_COMPOSITE:
			jobs = append(jobs, job{head.Name, func(g *generator) {
				g.composite(g.names.exported(head.Name), tokens)
			}})
		case ir.Signal_BEGIN_MESSAGE:
			// Messages are generated from the message list.
		default:
			jobs = append(jobs, job{head.Name, func(g *generator) {
				g.err(errUnknownEntity(head.Name, head.Signal))
			}})
		}
	}
	for _, tokens := range schema.Messages {
		jobs = append(jobs, job{tokens[0].Name, func(g *generator) { g.message(tokens) }})
	}
	return jobs
}

func resolveHeaderTypes(header *ir.HeaderStructure) (headerTypes, error) {
	var types headerTypes
	for _, field := range []struct {
		out  *string
		name string
		t    ir.PrimitiveType
	}{
		{&types.blockLengthType, "blockLength", header.BlockLengthType},
		{&types.templateIDType, "templateId", header.TemplateIDType},
		{&types.schemaIDType, "schemaId", header.SchemaIDType},
		{&types.versionType, "version", header.SchemaVersionType},
	} {
		goT, ok := goType(field.t)
		if !ok {
			token := &ir.Token{Name: field.name}
			token.Encoding.PrimitiveType = field.t
			return headerTypes{}, errUnsupportedPrimitive(header.Name(), token)
		}
		*field.out = goT
	}
	return types, nil
}

// finish formats the job's units into files. A job that reported errors
// produces no files.
func (g *generator) finish(pkgName string) jobResult {
	if len(g.errors) > 0 {
		return jobResult{errors: g.errors, warnings: g.warnings}
	}
	var files []*File
	for _, u := range g.units {
		content, err := u.source(pkgName)
		if err != nil {
			g.err(errFormatSource(g.entity, u.fileName(), err))
			continue
		}
		files = append(files, &File{
			Name:    u.fileName(),
			Content: content,
			Imports: u.importList(),
		})
	}
	if len(g.errors) > 0 {
		files = nil
	}
	return jobResult{files: files, errors: g.errors, warnings: g.warnings}
}
