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

package codegen_test

import (
	"io/fs"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/swordday/simple-binary-encoding/codegen"
	"github.com/swordday/simple-binary-encoding/internal/testutil"
)

var (
	testdata         fs.FS
	codegenErrors    map[string]*testutil.Diagnostic
	codegenWarnings  map[string]*testutil.Diagnostic
	baselineArtifact = []string{
		"BooleanType.go",
		"BoostType.go",
		"Booster.go",
		"Car.go",
		"Engine.go",
		"MessageHeader.go",
		"Model.go",
		"OptionalExtras.go",
	}
)

func init() {
	testdata = os.DirFS("testdata")
	var err error
	codegenErrors, err = testutil.LoadDiagnostics(testdata, "diagnostics/errors.json")
	if err != nil {
		panic(err)
	}
	codegenWarnings, err = testutil.LoadDiagnostics(testdata, "diagnostics/warnings.json")
	if err != nil {
		panic(err)
	}
}

func generateBaseline(t *testing.T, opts ...codegen.GenerateOption) codegen.GenerateResult {
	t.Helper()
	schema := testutil.LoadIR(t, testdata, "baseline.yaml")
	result := codegen.Generate(schema, opts...)
	for _, err := range result.Errors {
		t.Errorf("unexpected error: %v", err)
	}
	for _, warning := range result.Warnings {
		t.Errorf("unexpected warning: %v", warning)
	}
	return result
}

func fileNames(files []*codegen.File) []string {
	var names []string
	for _, file := range files {
		names = append(names, file.Name)
	}
	return names
}

func findFile(t *testing.T, files []*codegen.File, name string) string {
	t.Helper()
	for _, file := range files {
		if file.Name == name {
			return string(file.Content)
		}
	}
	t.Fatalf("no generated file %s in %v", name, fileNames(files))
	return ""
}

func TestGenerateCheckedIn(t *testing.T) {
	tests := []struct {
		schema string
		dir    string
		files  []string
	}{
		{"baseline.yaml", "../internal/baseline", baselineArtifact},
		{"versioned.yaml", "../internal/versioned", []string{"MessageHeader.go", "Tick.go"}},
	}
	for _, test := range tests {
		t.Run(test.schema, func(t *testing.T) {
			schema := testutil.LoadIR(t, testdata, test.schema)
			result := codegen.Generate(schema)
			testutil.ExpectEq(t, 0, len(result.Errors))
			testutil.ExpectEq(t, 0, len(result.Warnings))
			testutil.ExpectSliceEq(t, test.files, fileNames(result.Files))

			for _, file := range result.Files {
				want, err := os.ReadFile(test.dir + "/" + file.Name)
				testutil.AssertNoError(t, err)
				testutil.ExpectNoDiff(t, string(want), string(file.Content))
			}
		})
	}
}

func TestGenerateBaselineImports(t *testing.T) {
	result := generateBaseline(t)
	imports := make(map[string][]string)
	for _, file := range result.Files {
		imports[file.Name] = file.Imports
	}
	testutil.ExpectSliceEq(t, []string{"encoding/binary", "io"}, imports["OptionalExtras.go"])
	testutil.ExpectSliceEq(t, []string{"encoding/binary", "fmt", "io"}, imports["Model.go"])
	testutil.ExpectSliceEq(t, []string{"encoding/binary", "fmt", "io", "math"}, imports["BooleanType.go"])
	testutil.ExpectSliceEq(t, []string{
		"encoding/binary",
		"errors",
		"fmt",
		"io",
		"math",
		"unicode/utf8",
	}, imports["Car.go"])
}

func TestGenerateMessageCodec(t *testing.T) {
	result := generateBaseline(t)
	car := findFile(t, result.Files, "Car.go")

	// Fields are encoded in order; the gap before cupHolderCount and the
	// block padding are written as zeros before the groups.
	testutil.ExpectContains(t, car,
		"func (c *Car) Encode(writer io.Writer, order binary.ByteOrder, doRangeCheck bool) error {",
		"c.RangeCheck(c.SbeSchemaVersion(), c.SbeSchemaVersion())",
		"binary.Write(writer, order, c.SerialNumber)",
		"c.Engine.Encode(writer, order)",
		"writer.Write(make([]byte, 2))",
		"binary.Write(writer, order, c.CupHolderCount)",
		"writer.Write(make([]byte, 2))",
		"fuelFiguresBlockLength := uint16(6)",
		"fuelFiguresNumInGroup := uint16(len(c.FuelFigures))",
		"binary.Write(writer, order, uint32(len(c.Manufacturer)))",
	)

	testutil.ExpectContains(t, car,
		"func (c *Car) Decode(reader io.Reader, order binary.ByteOrder, actingVersion uint16, blockLength uint16, doRangeCheck bool) error {",
		"c.Available = BooleanType.NullValue",
		"c.DiscountedModel = Model.C",
		"if !c.CupHolderCountInActingVersion(actingVersion) {",
		"c.CupHolderCount = c.CupHolderCountNullValue()",
		"} else {",
		"io.CopyN(io.Discard, reader, 2)",
		"binary.Read(reader, order, &c.CupHolderCount)",
		"if blockLength > c.SbeBlockLength() {",
		"io.CopyN(io.Discard, reader, int64(blockLength-c.SbeBlockLength()))",
		"c.FuelFigures = make([]CarFuelFigures, fuelFiguresNumInGroup)",
		"c.Manufacturer = make([]uint8, manufacturerLength)",
		"c.RangeCheck(actingVersion, c.SbeSchemaVersion())",
	)
}

func TestGenerateGroupCodec(t *testing.T) {
	result := generateBaseline(t)
	car := findFile(t, result.Files, "Car.go")

	testutil.ExpectContains(t, car,
		"type CarPerformanceFigures struct {",
		"Acceleration []CarPerformanceFiguresAcceleration",
		"func (c *CarPerformanceFigures) Decode(reader io.Reader, order binary.ByteOrder, actingVersion uint16, blockLength uint16) error {",
		"c.Acceleration[idx].Decode(reader, order, actingVersion, accelerationBlockLength)",
		"func (*CarPerformanceFigures) OctaneRatingMinValue() uint8 {\n\treturn 90\n}",
		"func (*CarPerformanceFigures) OctaneRatingMaxValue() uint8 {\n\treturn 110\n}",
		"type CarPerformanceFiguresAcceleration struct {",
	)
	testutil.ExpectContains(t, car,
		"func (c *CarFuelFigures) RangeCheck(actingVersion uint16, schemaVersion uint16) error {",
		"if math.IsNaN(float64(c.Mpg)) || c.Mpg < c.MpgMinValue() || c.Mpg > c.MpgMaxValue() {",
	)
}

func TestGenerateCompositeConstants(t *testing.T) {
	result := generateBaseline(t)
	engine := findFile(t, result.Files, "Engine.go")

	testutil.ExpectContains(t, engine,
		"Fuel             [6]byte",
		"func (e *Engine) Decode(reader io.Reader, order binary.ByteOrder, actingVersion uint16) error {",
		"e.MaxRpm = 9000",
		`copy(e.Fuel[:], "Petrol")`,
		"func EngineInit(e *Engine) {",
		"e.MaxRpm = 9000",
		`copy(e.Fuel[:], "Petrol")`,
		"BoosterInit(&e.Booster)",
	)
	testutil.ExpectFalse(t, strings.Contains(engine, "binary.Write(writer, order, e.Fuel)"))
	testutil.ExpectFalse(t, strings.Contains(engine, "blockLength"))
}

func TestGenerateEnumAndSet(t *testing.T) {
	result := generateBaseline(t)

	testutil.ExpectContains(t, findFile(t, result.Files, "Model.go"),
		"type ModelEnum byte",
		"var Model = ModelValues{",
		"A:         'A',",
		"NullValue: 0,",
		"case Model.NullValue:",
		`return fmt.Errorf("range check failed on Model: unknown enumeration value %v", m)`,
	)
	testutil.ExpectContains(t, findFile(t, result.Files, "OptionalExtras.go"),
		"type OptionalExtras [8]bool",
		"CruiseControl: 2,",
		"wireval |= 1 << uint(k)",
		"o[idx] = wireval&(1<<uint(idx)) != 0",
	)
}

func TestGenerateEnumImports(t *testing.T) {
	schema := testutil.DecodeIR(t, `
package: sides
id: 1
version: 0
`+testutil.MessageHeaderYAML+`
types:
  - - {signal: BEGIN_ENUM, name: Side, encodedLength: 1, encoding: {primitiveType: int8, presence: optional, nullValue: 0}}
    - {signal: VALID_VALUE, name: BUY, encoding: {primitiveType: int8, constValue: 1}}
    - {signal: VALID_VALUE, name: SELL, encoding: {primitiveType: int8, constValue: 2}}
    - {signal: END_ENUM, name: Side}
  - - {signal: BEGIN_ENUM, name: Status, encodedLength: 1, encoding: {primitiveType: int8}}
    - {signal: VALID_VALUE, name: OPEN, encoding: {primitiveType: int8, constValue: 1}}
    - {signal: END_ENUM, name: Status}
`)
	result := codegen.Generate(schema)
	testutil.ExpectEq(t, 0, len(result.Errors))

	imports := make(map[string][]string)
	for _, file := range result.Files {
		imports[file.Name] = file.Imports
	}

	// The overridden null is the only bound an enum renders, so math is
	// not needed even though the int8 minimum is spelled with it.
	side := findFile(t, result.Files, "Side.go")
	testutil.ExpectSliceEq(t, []string{"encoding/binary", "fmt", "io"}, imports["Side.go"])
	testutil.ExpectContains(t, side, "NullValue: 0,")
	testutil.ExpectFalse(t, strings.Contains(side, "math"))

	testutil.ExpectSliceEq(t, []string{"encoding/binary", "fmt", "io", "math"}, imports["Status.go"])
	testutil.ExpectContains(t, findFile(t, result.Files, "Status.go"), "NullValue: math.MinInt8,")
}

func TestGenerateDeterministic(t *testing.T) {
	serial := generateBaseline(t, codegen.WithParallelism(1))
	parallel := generateBaseline(t, codegen.WithParallelism(8))

	testutil.ExpectSliceEq(t, fileNames(serial.Files), fileNames(parallel.Files))
	for ii := range min(len(serial.Files), len(parallel.Files)) {
		testutil.ExpectNoDiff(t, string(serial.Files[ii].Content), string(parallel.Files[ii].Content))
	}
}

func TestGeneratePackageName(t *testing.T) {
	result := generateBaseline(t, codegen.WithPackageName("cars"))
	for _, file := range result.Files {
		testutil.ExpectContains(t, string(file.Content), "\npackage cars\n")
	}

	schema := testutil.LoadIR(t, testdata, "baseline.yaml")
	schema.Namespaces = []string{"com.example", "car-data"}
	result = codegen.Generate(schema)
	testutil.ExpectContains(t, string(result.Files[0].Content), "\npackage com_example_car_data\n")
}

func TestGenerateInlineComposite(t *testing.T) {
	schema := testutil.DecodeIR(t, `
package: inline
id: 1
version: 0
`+testutil.MessageHeaderYAML+`
types:
  - - {signal: BEGIN_COMPOSITE, name: Outer, encodedLength: 4}
    - {signal: ENCODING, name: tag, offset: 0, encodedLength: 1, encoding: {primitiveType: uint8}}
    - {signal: BEGIN_COMPOSITE, name: inner, offset: 1, encodedLength: 2}
    - {signal: ENCODING, name: value, offset: 0, encodedLength: 2, encoding: {primitiveType: int16}}
    - {signal: END_COMPOSITE, name: inner}
    - {signal: END_COMPOSITE, name: Outer}
`)
	result := codegen.Generate(schema)
	testutil.ExpectEq(t, 0, len(result.Errors))
	testutil.ExpectSliceEq(t, []string{"MessageHeader.go", "Outer.go", "OuterInner.go"}, fileNames(result.Files))

	outer := findFile(t, result.Files, "Outer.go")
	testutil.ExpectContains(t, outer,
		"Inner OuterInner",
		"o.Inner.Encode(writer, order)",
		"if _, err := writer.Write(make([]byte, 1)); err != nil {",
		"OuterInnerInit(&o.Inner)",
	)
	testutil.ExpectContains(t, findFile(t, result.Files, "OuterInner.go"),
		"func (*OuterInner) ValueMinValue() int16 {\n\treturn math.MinInt16 + 1\n}",
		"func (*OuterInner) ValueNullValue() int16 {\n\treturn math.MinInt16\n}",
	)
}

func TestDiagnostics(t *testing.T) {
	entries, err := fs.ReadDir(testdata, "diagnostics/cases")
	testutil.AssertNoError(t, err)

	for _, entry := range entries {
		name := entry.Name()
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := "diagnostics/cases/" + name
			schema := testutil.LoadIR(t, testdata, dir+"/input.yaml")
			result := codegen.Generate(schema)

			wantErrors := testutil.LoadExpected(t, codegenErrors, testdata, dir+"/expect.json", "errors")
			wantWarnings := testutil.LoadExpected(t, codegenWarnings, testdata, dir+"/expect.json", "warnings")
			testutil.ExpectDiagnostics(t, "error", wantErrors, result.Errors)
			testutil.ExpectDiagnostics(t, "warning", wantWarnings, result.Warnings)

			// The header artifact is always produced, and failing entities
			// produce nothing.
			names := fileNames(result.Files)
			testutil.ExpectTrue(t, slices.Contains(names, "MessageHeader.go"))
			if len(wantErrors) > 0 {
				testutil.ExpectEq(t, 1, len(names))
			}
		})
	}
}

func TestErrorEntity(t *testing.T) {
	schema := testutil.LoadIR(t, testdata, "diagnostics/cases/malformed_group/input.yaml")
	result := codegen.Generate(schema)
	testutil.ExpectEq(t, 1, len(result.Errors))
	testutil.ExpectEq(t, "Flat", result.Errors[0].Entity())
	testutil.ExpectEq(t, "E6001: BEGIN_GROUP 'entries' is malformed: expected a dimension of blockLength and numInGroup", result.Errors[0].Error())
}
