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
	"math"
	"unsafe"

	"github.com/swordday/simple-binary-encoding/codegen"
	"github.com/swordday/simple-binary-encoding/plugin"
)

var buffers = make(map[*uint8][]uint8)

//go:export sbe_codegen_allocate
func sbeCodegenAllocate(len uint32) *uint8 {
	if len == 0 || len > math.MaxInt32 {
		return nil
	}
	buf := make([]uint8, int(len))
	ptr := unsafe.SliceData(buf)
	buffers[ptr] = buf
	return ptr
}

//go:export sbe_codegen_deallocate
func sbeCodegenDeallocate(ptr *uint8) {
	delete(buffers, ptr)
}

// The request is a length-prefixed frame. The response frame is kept
// alive in buffers until the host deallocates it.
//
//go:export sbe_codegen_generate/go
func sbeCodegenGenerateGo(requestPtr *uint8, responsePtrPtr **uint8) uint8 {
	requestLen, _ := plugin.FrameLength(unsafe.Slice(requestPtr, 4))
	requestBuf := unsafe.Slice((*uint8)(unsafe.Add(unsafe.Pointer(requestPtr), 4)), requestLen)

	// The wasm module runs on a single thread.
	responseBuf, rc := plugin.Handle(requestBuf, codegen.WithParallelism(1))

	response := plugin.AppendFrame(nil, responseBuf)
	responsePtr := unsafe.SliceData(response)
	buffers[responsePtr] = response
	*responsePtrPtr = responsePtr
	return rc
}
