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

package baseline_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/swordday/simple-binary-encoding/internal/baseline"
	"github.com/swordday/simple-binary-encoding/internal/testutil"
)

func newCar() *baseline.Car {
	var car baseline.Car
	baseline.CarInit(&car)
	car.SerialNumber = 1234
	car.ModelYear = 2013
	car.Available = baseline.BooleanType.T
	car.Code = baseline.Model.A
	car.SomeNumbers = [4]uint32{1, 2, 3, 4}
	copy(car.VehicleCode[:], "abcdef")
	car.Extras[baseline.OptionalExtrasChoice.SunRoof] = true
	car.Extras[baseline.OptionalExtrasChoice.CruiseControl] = true
	car.Engine.Capacity = 2000
	car.Engine.NumCylinders = 4
	copy(car.Engine.ManufacturerCode[:], "123")
	car.Engine.Booster.BoostType = baseline.BoostType.TURBO
	car.Engine.Booster.HorsePower = 200
	car.CupHolderCount = 2
	car.FuelFigures = []baseline.CarFuelFigures{
		{Speed: 30, Mpg: 35.9},
		{Speed: 55, Mpg: 49.0},
	}
	car.PerformanceFigures = []baseline.CarPerformanceFigures{
		{
			OctaneRating: 95,
			Acceleration: []baseline.CarPerformanceFiguresAcceleration{
				{Mph: 30, Seconds: 4.0},
				{Mph: 60, Seconds: 7.5},
			},
		},
	}
	car.Manufacturer = []uint8("Honda")
	car.Model = []uint8("Civic VTi")
	return &car
}

func encodeCar(t *testing.T, car *baseline.Car, order binary.ByteOrder) []byte {
	t.Helper()
	var buf bytes.Buffer
	testutil.AssertNoError(t, car.Encode(&buf, order, true))
	return buf.Bytes()
}

func TestCarRoundTrip(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			want := newCar()
			encoded := encodeCar(t, want, order)

			// Fixed block, two group headers and their elements, and two
			// length-prefixed var data fields.
			testutil.ExpectEq(t, 48+(4+2*6)+(4+1+(4+2*6))+(4+5)+(4+9), len(encoded))

			var got baseline.Car
			err := got.Decode(bytes.NewReader(encoded), order, want.SbeSchemaVersion(), want.SbeBlockLength(), true)
			testutil.AssertNoError(t, err)
			testutil.ExpectDeepEq(t, want, &got, cmpopts.EquateEmpty())
		})
	}
}

func TestCarFixedBlockLayout(t *testing.T) {
	encoded := encodeCar(t, newCar(), binary.LittleEndian)

	testutil.ExpectEq(t, uint64(1234), binary.LittleEndian.Uint64(encoded[0:]))
	testutil.ExpectEq(t, uint16(2013), binary.LittleEndian.Uint16(encoded[8:]))
	testutil.ExpectEq(t, byte(1), encoded[10])
	testutil.ExpectEq(t, byte('A'), encoded[11])
	testutil.ExpectEq(t, uint32(3), binary.LittleEndian.Uint32(encoded[20:]))
	testutil.ExpectBytesEq(t, []byte("abcdef"), encoded[28:34])
	testutil.ExpectEq(t, byte(0b101), encoded[34])

	// The constant discounted model takes no space, so the engine starts
	// right after the extras.
	testutil.ExpectEq(t, uint16(2000), binary.LittleEndian.Uint16(encoded[35:]))
	testutil.ExpectEq(t, byte(4), encoded[37])
	testutil.ExpectBytesEq(t, []byte("123"), encoded[38:41])
	testutil.ExpectEq(t, byte('T'), encoded[41])
	testutil.ExpectEq(t, byte(200), encoded[42])

	// Two bytes of gap precede the cup holder count at offset 45, and two
	// bytes of padding fill the block to 48.
	testutil.ExpectBytesEq(t, []byte{0, 0, 2, 0, 0}, encoded[43:48])

	// fuelFigures dimension: blockLength 6, numInGroup 2.
	testutil.ExpectEq(t, uint16(6), binary.LittleEndian.Uint16(encoded[48:]))
	testutil.ExpectEq(t, uint16(2), binary.LittleEndian.Uint16(encoded[50:]))
	testutil.ExpectEq(t, uint16(30), binary.LittleEndian.Uint16(encoded[52:]))
	testutil.ExpectEq(t, float32(35.9), math.Float32frombits(binary.LittleEndian.Uint32(encoded[54:])))
}

func TestCarDecodeRestoresConstants(t *testing.T) {
	encoded := encodeCar(t, newCar(), binary.LittleEndian)

	var got baseline.Car
	err := got.Decode(bytes.NewReader(encoded), binary.LittleEndian, 1, 48, false)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, baseline.Model.C, got.DiscountedModel)
	testutil.ExpectEq(t, uint16(9000), got.Engine.MaxRpm)
	testutil.ExpectEq(t, "Petrol", string(got.Engine.Fuel[:]))
}

func TestCarDecodeSkipsBlockExtension(t *testing.T) {
	car := newCar()
	encoded := encodeCar(t, car, binary.LittleEndian)

	// A producer with a newer schema appended four bytes to the block.
	extended := make([]byte, 0, len(encoded)+4)
	extended = append(extended, encoded[:48]...)
	extended = append(extended, 0xde, 0xad, 0xbe, 0xef)
	extended = append(extended, encoded[48:]...)

	var got baseline.Car
	err := got.Decode(bytes.NewReader(extended), binary.LittleEndian, 1, 52, true)
	testutil.AssertNoError(t, err)
	testutil.ExpectDeepEq(t, car, &got, cmpopts.EquateEmpty())
}

func TestCarDecodeTruncated(t *testing.T) {
	encoded := encodeCar(t, newCar(), binary.LittleEndian)

	var got baseline.Car
	err := got.Decode(bytes.NewReader(encoded[:30]), binary.LittleEndian, 1, 48, false)
	testutil.AssertError(t, err)
}

func TestCarRangeCheck(t *testing.T) {
	tests := []struct {
		name   string
		modify func(car *baseline.Car)
		want   string
	}{
		{
			name:   "octane below minimum",
			modify: func(car *baseline.Car) { car.PerformanceFigures[0].OctaneRating = 80 },
			want:   "range check failed on CarPerformanceFigures.OctaneRating: 80 outside [90, 110]",
		},
		{
			name:   "unsigned null value",
			modify: func(car *baseline.Car) { car.ModelYear = math.MaxUint16 },
			want:   "range check failed on Car.ModelYear: 65535 outside [0, 65534]",
		},
		{
			name:   "nan in required float",
			modify: func(car *baseline.Car) { car.FuelFigures[1].Mpg = float32(math.NaN()) },
			want:   "range check failed on CarFuelFigures.Mpg: NaN outside",
		},
		{
			name:   "unprintable character",
			modify: func(car *baseline.Car) { car.VehicleCode[2] = 0x80 },
			want:   "range check failed on Car.VehicleCode[2]: 128 outside [32, 126]",
		},
		{
			name:   "unknown enum value",
			modify: func(car *baseline.Car) { car.Code = 'Z' },
			want:   "range check failed on Model: unknown enumeration value 90",
		},
		{
			name:   "invalid utf-8",
			modify: func(car *baseline.Car) { car.Manufacturer = []uint8{0xff, 0xfe} },
			want:   "Car.Manufacturer failed UTF-8 validation",
		},
		{
			name:   "nested composite",
			modify: func(car *baseline.Car) { car.Engine.Booster.BoostType = 'X' },
			want:   "range check failed on BoostType: unknown enumeration value 88",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			car := newCar()
			test.modify(car)

			err := car.RangeCheck(1, 1)
			testutil.AssertError(t, err)
			testutil.ExpectContains(t, err.Error(), test.want)

			var buf bytes.Buffer
			testutil.AssertError(t, car.Encode(&buf, binary.LittleEndian, true))
			testutil.ExpectEq(t, 0, buf.Len())

			// Without the range check, the encoder writes whatever it has.
			testutil.ExpectNoError(t, car.Encode(&buf, binary.LittleEndian, false))
		})
	}
}

func TestCarRangeCheckAcceptsNull(t *testing.T) {
	car := newCar()
	car.CupHolderCount = car.CupHolderCountNullValue()
	copy(car.VehicleCode[:], "ab\x00\x00\x00\x00")
	car.Code = baseline.Model.NullValue
	testutil.ExpectNoError(t, car.RangeCheck(1, 1))
}

func TestEnumRangeCheckFromNewerSchema(t *testing.T) {
	unknown := baseline.ModelEnum('Z')
	testutil.AssertError(t, unknown.RangeCheck(1, 1))

	// A value decoded from a newer schema version cannot be checked.
	testutil.ExpectNoError(t, unknown.RangeCheck(2, 1))
}

func TestCarOptionalFieldAbsentInActingVersion(t *testing.T) {
	car := newCar()
	testutil.ExpectTrue(t, car.CupHolderCountInActingVersion(1))
	testutil.ExpectFalse(t, car.CupHolderCountInActingVersion(0))
	testutil.ExpectEq(t, uint16(1), car.CupHolderCountSinceVersion())
	testutil.ExpectEq(t, uint8(math.MaxUint8), car.CupHolderCountNullValue())
}

func TestMessageHeader(t *testing.T) {
	car := newCar()
	header := baseline.MessageHeader{
		BlockLength: car.SbeBlockLength(),
		TemplateId:  car.SbeTemplateId(),
		SchemaId:    car.SbeSchemaId(),
		Version:     car.SbeSchemaVersion(),
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, header.Encode(&buf, binary.LittleEndian))
	testutil.ExpectBytesEq(t, []byte{48, 0, 1, 0, 1, 0, 1, 0}, buf.Bytes())
	testutil.ExpectEq(t, int64(buf.Len()), header.EncodedLength())

	var got baseline.MessageHeader
	testutil.AssertNoError(t, got.Decode(&buf, binary.LittleEndian, 0))
	testutil.ExpectEq(t, header, got)
}

func TestOptionalExtras(t *testing.T) {
	var extras baseline.OptionalExtras
	extras[baseline.OptionalExtrasChoice.SportsPack] = true
	extras[baseline.OptionalExtrasChoice.CruiseControl] = true

	var buf bytes.Buffer
	testutil.AssertNoError(t, extras.Encode(&buf, binary.LittleEndian))
	testutil.ExpectBytesEq(t, []byte{0b110}, buf.Bytes())

	var got baseline.OptionalExtras
	testutil.AssertNoError(t, got.Decode(&buf, binary.LittleEndian, 0))
	testutil.ExpectEq(t, extras, got)
	testutil.ExpectFalse(t, got[baseline.OptionalExtrasChoice.SunRoof])
}

func TestCarMetadata(t *testing.T) {
	car := newCar()
	testutil.ExpectEq(t, uint16(48), car.SbeBlockLength())
	testutil.ExpectEq(t, uint16(1), car.SbeTemplateId())
	testutil.ExpectEq(t, int64(48), car.EncodedLength())
	testutil.ExpectEq(t, uint16(5), car.SomeNumbersId())
	testutil.ExpectEq(t, "ASCII", car.VehicleCodeCharacterEncoding())
	testutil.ExpectEq(t, "UTF-8", car.ManufacturerCharacterEncoding())
	testutil.ExpectEq(t, uint64(4), car.ManufacturerHeaderLength())
	testutil.ExpectEq(t, "", car.SerialNumberMetaAttribute(3))

	var figures baseline.CarPerformanceFigures
	testutil.ExpectEq(t, uint8(90), figures.OctaneRatingMinValue())
	testutil.ExpectEq(t, uint8(110), figures.OctaneRatingMaxValue())
	testutil.ExpectEq(t, uint16(1), figures.SbeBlockLength())
}
