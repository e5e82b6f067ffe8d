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

// Package plugin defines the messages exchanged between the sbe CLI and a
// code generator plugin.
//
// A request carries the schema in the binary IR format of package irbin.
// Messages are JSON; when passed through wasm memory they are framed by a
// little-endian uint32 length.
package plugin

import (
	"encoding/binary"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/swordday/simple-binary-encoding/codegen"
	"github.com/swordday/simple-binary-encoding/encoding/irbin"
	"github.com/swordday/simple-binary-encoding/ir"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Request struct {
	Schema      []byte `json:"schema"`
	PackageName string `json:"package_name,omitempty"`
}

type Response struct {
	Files    []OutputFile `json:"files,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
	Errors   []string     `json:"errors,omitempty"`

	// Error is set when the plugin could not run at all.
	Error string `json:"error,omitempty"`
}

type OutputFile struct {
	Path    []string `json:"path"`
	Content []byte   `json:"content"`
}

// Failed reports whether the response carries no usable output.
func (r *Response) Failed() bool {
	return r.Error != "" || len(r.Errors) > 0
}

func NewRequest(schema *ir.IR, packageName string) (*Request, error) {
	buf, err := irbin.Encode(schema)
	if err != nil {
		return nil, err
	}
	return &Request{Schema: buf, PackageName: packageName}, nil
}

func EncodeRequest(request *Request) ([]byte, error) {
	return json.Marshal(request)
}

func DecodeRequest(buf []byte) (*Request, error) {
	var request Request
	if err := json.Unmarshal(buf, &request); err != nil {
		return nil, fmt.Errorf("DecodeRequest: %w", err)
	}
	return &request, nil
}

func EncodeResponse(response *Response) ([]byte, error) {
	return json.Marshal(response)
}

func DecodeResponse(buf []byte) (*Response, error) {
	var response Response
	if err := json.Unmarshal(buf, &response); err != nil {
		return nil, fmt.Errorf("DecodeResponse: %w", err)
	}
	return &response, nil
}

// Generate runs the code generator for a request.
func Generate(request *Request, opts ...codegen.GenerateOption) *Response {
	schema, err := irbin.Decode(request.Schema)
	if err != nil {
		return &Response{Error: fmt.Sprintf("irbin.Decode: %v", err)}
	}
	if request.PackageName != "" {
		opts = append(opts, codegen.WithPackageName(request.PackageName))
	}
	result := codegen.Generate(schema, opts...)

	response := &Response{}
	for _, warning := range result.Warnings {
		response.Warnings = append(response.Warnings, warning.String())
	}
	for _, err := range result.Errors {
		response.Errors = append(response.Errors, err.Error())
	}
	if len(result.Errors) > 0 {
		return response
	}
	for _, file := range result.Files {
		response.Files = append(response.Files, OutputFile{
			Path:    strings.Split(file.Name, "/"),
			Content: file.Content,
		})
	}
	return response
}

// Handle decodes a request, runs the generator, and encodes the response.
// The returned code is 0 on success and 1 if the response reports a
// failure.
func Handle(requestBuf []byte, opts ...codegen.GenerateOption) ([]byte, uint8) {
	var response *Response
	request, err := DecodeRequest(requestBuf)
	if err != nil {
		response = &Response{Error: err.Error()}
	} else {
		response = Generate(request, opts...)
	}
	responseBuf, err := EncodeResponse(response)
	if err != nil {
		response = &Response{Error: fmt.Sprintf("EncodeResponse: %v", err)}
		responseBuf, _ = EncodeResponse(response)
	}
	if response.Failed() {
		return responseBuf, 1
	}
	return responseBuf, 0
}

// AppendFrame appends a length-prefixed message to dst.
func AppendFrame(dst, message []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(message)))
	return append(dst, message...)
}

// FrameLength reads the length prefix of a framed message.
func FrameLength(frame []byte) (uint32, bool) {
	if len(frame) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(frame), true
}
