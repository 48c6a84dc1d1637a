package wire

import "testing"

func TestVarintRoundtrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 16383, 16384, 2097151, 2097152, 1 << 33, ^uint64(0)}
	for _, v := range cases {
		t.Run("", func(t *testing.T) {
			buf := AppendVarint(nil, v)
			if len(buf) != SizeVarint(v) {
				t.Fatalf("SizeVarint(%d) = %d, encoded length = %d", v, SizeVarint(v), len(buf))
			}
			got, n := ConsumeVarint(buf)
			if n != len(buf) {
				t.Fatalf("consumed %d bytes, want %d", n, len(buf))
			}
			if got != v {
				t.Fatalf("roundtrip got %d, want %d", got, v)
			}
		})
	}
}

func TestConsumeVarintTruncated(t *testing.T) {
	buf := []byte{0x80, 0x80, 0x80}
	if _, n := ConsumeVarint(buf); n != 0 {
		t.Fatalf("expected 0 consumed for truncated varint, got %d", n)
	}
	if _, n := ConsumeVarint(nil); n != 0 {
		t.Fatalf("expected 0 consumed for empty buffer, got %d", n)
	}
}

func TestZigZag32Roundtrip(t *testing.T) {
	cases := []int32{0, 1, -1, 2, -2, 2147483647, -2147483648}
	for _, v := range cases {
		if got := UnZigZag32(ZigZag32(v)); got != v {
			t.Fatalf("zigzag32 roundtrip got %d, want %d", got, v)
		}
	}
	if ZigZag32(-1) != 1 {
		t.Fatalf("ZigZag32(-1) = %d, want 1", ZigZag32(-1))
	}
}

func TestZigZag64Roundtrip(t *testing.T) {
	cases := []int64{0, 1, -1, 2, -2, 9223372036854775807, -9223372036854775808}
	for _, v := range cases {
		if got := UnZigZag64(ZigZag64(v)); got != v {
			t.Fatalf("zigzag64 roundtrip got %d, want %d", got, v)
		}
	}
}

func TestEncodeInt32NegativeCostsTenBytes(t *testing.T) {
	b := NewBuffer(16)
	b.EncodeInt32(1, -1, false)
	// field tag (1 byte) + 10-byte sign-extended varint
	if got, want := b.Len(), 11; got != want {
		t.Fatalf("encoded length = %d, want %d", got, want)
	}

	var size int
	AddInt32(&size, 1, -1, false)
	if size != b.Len() {
		t.Fatalf("AddInt32 size %d does not match Buffer.EncodeInt32 length %d", size, b.Len())
	}
}

func TestCalcSizeMatchesEncodeLength(t *testing.T) {
	msgs := []Message{
		&HelloRequest{ClientInfo: "test client", ApiVersionMajor: 1, ApiVersionMinor: 9},
		&DeviceInfoResponse{Name: "device", MacAddress: "AA:BB:CC:DD:EE:FF", FriendlyName: "Kitchen Light"},
		&SwitchCommandRequest{Key: 42, State: true},
		&LightCommandRequest{Key: 7, HasBrightness: true, Brightness: 0.5, HasRGB: true, Red: 1, Green: 0.5, Blue: 0},
		&ListEntitiesSensorResponse{
			Base:              EntityInfoBase{ObjectID: "temp", Key: 99, Name: "Temperature"},
			UnitOfMeasurement: "°C",
			AccuracyDecimals:  1,
		},
	}
	for _, m := range msgs {
		var size int
		m.CalcSize(&size)
		b := NewBuffer(size)
		m.Encode(b)
		if b.Len() != size {
			t.Fatalf("%T: CalcSize=%d but Encode produced %d bytes", m, size, b.Len())
		}
	}
}

func TestSwitchCommandRequestDecodeRoundtrip(t *testing.T) {
	want := &SwitchCommandRequest{Key: 123, State: true}
	var size int
	want.CalcSize(&size)
	b := NewBuffer(size)
	want.Encode(b)

	got := &SwitchCommandRequest{}
	if err := Decode(got, b.Bytes()); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if *got != *want {
		t.Fatalf("decoded %+v, want %+v", got, want)
	}
}

func TestHelloRequestDecodeRoundtrip(t *testing.T) {
	want := &HelloRequest{ClientInfo: "home assistant", ApiVersionMajor: 1, ApiVersionMinor: 10}
	var size int
	want.CalcSize(&size)
	b := NewBuffer(size)
	want.Encode(b)

	got := &HelloRequest{}
	if err := Decode(got, b.Bytes()); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if *got != *want {
		t.Fatalf("decoded %+v, want %+v", got, want)
	}
}

func TestDecodeTruncatedLengthDelimitedField(t *testing.T) {
	// field 1, wire type 2 (length-delimited), length 5, but only 2 bytes follow.
	buf := []byte{0x0a, 0x05, 'h', 'i'}
	got := &HelloRequest{}
	if err := Decode(got, buf); err == nil {
		t.Fatalf("expected error decoding truncated length-delimited field")
	}
}

func TestIsPassthrough(t *testing.T) {
	if !IsPassthrough(TypeBluetoothGATTReadRequest) {
		t.Fatalf("expected bluetooth GATT read to be a passthrough type")
	}
	if IsPassthrough(TypeSwitchCommandRequest) {
		t.Fatalf("switch command should not be a passthrough type")
	}
}
