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

package versioned_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/swordday/simple-binary-encoding/internal/testutil"
	"github.com/swordday/simple-binary-encoding/internal/versioned"
)

func newTick() *versioned.Tick {
	var tick versioned.Tick
	versioned.TickInit(&tick)
	tick.Seq = 7
	tick.Level = -3
	tick.Volume = 500
	tick.Legs = []versioned.TickLegs{
		{Qty: 10, Side: 1},
		{Qty: 20, Side: -1},
	}
	tick.Tag = []uint8("x1")
	return &tick
}

// producerBytes lays out a tick the way a producer compiled against the
// given schema version writes it, with extra bytes appended to the block
// and to each group element.
func producerBytes(tick *versioned.Tick, version uint16, blockExtra, legExtra int) (data []byte, blockLength uint16) {
	var buf bytes.Buffer
	order := binary.LittleEndian

	_ = binary.Write(&buf, order, tick.Seq)
	_ = binary.Write(&buf, order, tick.Level)
	blockLength = 5
	if version >= 1 {
		buf.WriteByte(0)
		_ = binary.Write(&buf, order, tick.Volume)
		blockLength = 8
	}
	buf.Write(make([]byte, blockExtra))
	blockLength += uint16(blockExtra)

	legBlockLength := uint16(2)
	if version >= 2 {
		legBlockLength = 3
	}
	legBlockLength += uint16(legExtra)
	_ = binary.Write(&buf, order, legBlockLength)
	_ = binary.Write(&buf, order, uint8(len(tick.Legs)))
	for _, leg := range tick.Legs {
		_ = binary.Write(&buf, order, leg.Qty)
		if version >= 2 {
			_ = binary.Write(&buf, order, leg.Side)
		}
		buf.Write(make([]byte, legExtra))
	}

	_ = binary.Write(&buf, order, uint8(len(tick.Tag)))
	buf.Write(tick.Tag)
	return buf.Bytes(), blockLength
}

func TestTickRoundTrip(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			want := newTick()
			var buf bytes.Buffer
			testutil.AssertNoError(t, want.Encode(&buf, order, true))
			testutil.ExpectEq(t, 8+(3+2*3)+(1+2), buf.Len())

			var got versioned.Tick
			reader := bytes.NewReader(buf.Bytes())
			err := got.Decode(reader, order, want.SbeSchemaVersion(), want.SbeBlockLength(), true)
			testutil.AssertNoError(t, err)
			testutil.ExpectEq(t, 0, reader.Len())
			testutil.ExpectDeepEq(t, want, &got, cmpopts.EquateEmpty())
		})
	}
}

func TestTickLayoutMatchesProducer(t *testing.T) {
	tick := newTick()
	var buf bytes.Buffer
	testutil.AssertNoError(t, tick.Encode(&buf, binary.LittleEndian, true))

	want, blockLength := producerBytes(tick, 2, 0, 0)
	testutil.ExpectBytesEq(t, want, buf.Bytes())
	testutil.ExpectEq(t, tick.SbeBlockLength(), blockLength)
}

func TestTickDecodeOlderProducer(t *testing.T) {
	tests := []struct {
		name       string
		version    uint16
		wantVolume uint16
		wantSides  []int8
	}{
		{
			name:       "version 0",
			version:    0,
			wantVolume: math.MaxUint16,
			wantSides:  []int8{math.MinInt8, math.MinInt8},
		},
		{
			name:       "version 1",
			version:    1,
			wantVolume: 500,
			wantSides:  []int8{math.MinInt8, math.MinInt8},
		},
		{
			name:       "version 2",
			version:    2,
			wantVolume: 500,
			wantSides:  []int8{1, -1},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tick := newTick()
			data, blockLength := producerBytes(tick, test.version, 0, 0)

			// Fields newer than the producer take no bytes on the wire, so
			// everything after them still lines up.
			var got versioned.Tick
			reader := bytes.NewReader(data)
			err := got.Decode(reader, binary.LittleEndian, test.version, blockLength, true)
			testutil.AssertNoError(t, err)
			testutil.ExpectEq(t, 0, reader.Len())

			testutil.ExpectEq(t, tick.Seq, got.Seq)
			testutil.ExpectEq(t, tick.Level, got.Level)
			testutil.ExpectEq(t, test.wantVolume, got.Volume)
			testutil.ExpectBytesEq(t, tick.Tag, got.Tag)

			var sides []int8
			for ii, leg := range got.Legs {
				testutil.ExpectEq(t, tick.Legs[ii].Qty, leg.Qty)
				sides = append(sides, leg.Side)
			}
			testutil.ExpectSliceEq(t, test.wantSides, sides)
		})
	}
}

func TestTickDecodeNewerProducer(t *testing.T) {
	want := newTick()

	// A producer at version 3 appended three bytes to the block and two to
	// each leg.
	data, blockLength := producerBytes(want, 2, 3, 2)
	testutil.ExpectEq(t, uint16(11), blockLength)

	var got versioned.Tick
	reader := bytes.NewReader(data)
	err := got.Decode(reader, binary.LittleEndian, 3, blockLength, true)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 0, reader.Len())
	testutil.ExpectDeepEq(t, want, &got, cmpopts.EquateEmpty())
}

func TestTickRangeBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		modify func(tick *versioned.Tick)
	}{
		{"level at minimum", func(tick *versioned.Tick) { tick.Level = -10 }},
		{"level at maximum", func(tick *versioned.Tick) { tick.Level = 10 }},
		{"seq at minimum", func(tick *versioned.Tick) { tick.Seq = 0 }},
		{"seq at maximum", func(tick *versioned.Tick) { tick.Seq = math.MaxUint32 - 1 }},
		{"volume at maximum", func(tick *versioned.Tick) { tick.Volume = math.MaxUint16 - 1 }},
		{"volume null", func(tick *versioned.Tick) { tick.Volume = tick.VolumeNullValue() }},
		{"side at minimum", func(tick *versioned.Tick) { tick.Legs[0].Side = math.MinInt8 + 1 }},
		{"side at maximum", func(tick *versioned.Tick) { tick.Legs[0].Side = math.MaxInt8 }},
		{"side null", func(tick *versioned.Tick) { tick.Legs[1].Side = tick.Legs[1].SideNullValue() }},
		{"tag at maximum length", func(tick *versioned.Tick) { tick.Tag = bytes.Repeat([]byte{'a'}, 254) }},
		{"legs at maximum count", func(tick *versioned.Tick) { tick.Legs = make([]versioned.TickLegs, 254) }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			want := newTick()
			test.modify(want)

			var buf bytes.Buffer
			testutil.AssertNoError(t, want.Encode(&buf, binary.LittleEndian, true))

			var got versioned.Tick
			err := got.Decode(&buf, binary.LittleEndian, want.SbeSchemaVersion(), want.SbeBlockLength(), true)
			testutil.AssertNoError(t, err)
			testutil.ExpectDeepEq(t, want, &got, cmpopts.EquateEmpty())
		})
	}
}

func TestTickRangeCheck(t *testing.T) {
	tests := []struct {
		name   string
		modify func(tick *versioned.Tick)
		want   string
	}{
		{
			name:   "level below minimum",
			modify: func(tick *versioned.Tick) { tick.Level = -11 },
			want:   "range check failed on Tick.Level: -11 outside [-10, 10]",
		},
		{
			name:   "level above maximum",
			modify: func(tick *versioned.Tick) { tick.Level = 11 },
			want:   "range check failed on Tick.Level: 11 outside [-10, 10]",
		},
		{
			name:   "required field at null",
			modify: func(tick *versioned.Tick) { tick.Seq = math.MaxUint32 },
			want:   "range check failed on Tick.Seq: 4294967295 outside [0, 4294967294]",
		},
		{
			name:   "group element",
			modify: func(tick *versioned.Tick) { tick.Legs[1].Qty = math.MaxUint16 },
			want:   "range check failed on TickLegs.Qty: 65535 outside [0, 65534]",
		},
		{
			name:   "tag longer than its length prefix",
			modify: func(tick *versioned.Tick) { tick.Tag = bytes.Repeat([]byte{'a'}, 300) },
			want:   "range check failed on Tick.Tag: length 300 exceeds 254",
		},
		{
			name:   "more legs than the count prefix",
			modify: func(tick *versioned.Tick) { tick.Legs = make([]versioned.TickLegs, 255) },
			want:   "range check failed on Tick.Legs: 255 entries exceed 254",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tick := newTick()
			test.modify(tick)

			var buf bytes.Buffer
			err := tick.Encode(&buf, binary.LittleEndian, true)
			testutil.AssertError(t, err)
			testutil.ExpectEq(t, test.want, err.Error())
			testutil.ExpectEq(t, 0, buf.Len())
		})
	}
}

func TestTickVersionAccessors(t *testing.T) {
	tick := newTick()
	testutil.ExpectEq(t, uint16(1), tick.VolumeSinceVersion())
	testutil.ExpectFalse(t, tick.VolumeInActingVersion(0))
	testutil.ExpectTrue(t, tick.VolumeInActingVersion(1))

	leg := tick.Legs[0]
	testutil.ExpectEq(t, uint16(2), leg.SideSinceVersion())
	testutil.ExpectFalse(t, leg.SideInActingVersion(1))
	testutil.ExpectEq(t, uint16(3), leg.SbeBlockLength())
	testutil.ExpectEq(t, uint64(1), tick.TagHeaderLength())
}
