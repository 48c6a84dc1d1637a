package wire

import "math"

// WireType identifies how a field's value is laid out on the wire,
// following https://protobuf.dev/programming-guides/encoding/#structure.
type WireType uint8

const (
	WireVarint         WireType = 0
	Wire64Bit          WireType = 1
	WireLengthDelimited WireType = 2
	Wire32Bit          WireType = 5
)

func fieldTag(fieldID uint32, wt WireType) uint64 {
	return uint64(fieldID)<<3 | uint64(wt&0x7)
}

// Buffer is an append-only encode target for one message. The zero value
// is an empty buffer; NewBuffer pre-sizes one, and Wrap appends onto an
// existing slice.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer backed by a slice pre-allocated to size bytes.
func NewBuffer(size int) *Buffer {
	return &Buffer{buf: make([]byte, 0, size)}
}

// Wrap returns a Buffer that appends directly onto an existing slice
// (used when encoding into a shared, reused connection buffer).
func Wrap(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

func (b *Buffer) writeByte(v byte) { b.buf = append(b.buf, v) }

func (b *Buffer) encodeFieldTag(fieldID uint32, wt WireType) {
	b.buf = AppendVarint(b.buf, fieldTag(fieldID, wt))
}

// EncodeVarintRaw appends a bare varint with no field tag.
func (b *Buffer) EncodeVarintRaw(v uint64) { b.buf = AppendVarint(b.buf, v) }

// EncodeString appends a length-delimited string field. A zero-length
// string is skipped unless force is set (used for fields with explicit
// presence semantics).
func (b *Buffer) EncodeString(fieldID uint32, s string, force bool) {
	if len(s) == 0 && !force {
		return
	}
	b.encodeFieldTag(fieldID, WireLengthDelimited)
	b.buf = AppendVarint(b.buf, uint64(len(s)))
	b.buf = append(b.buf, s...)
}

// EncodeBytes appends a length-delimited bytes field.
func (b *Buffer) EncodeBytes(fieldID uint32, v []byte, force bool) {
	if len(v) == 0 && !force {
		return
	}
	b.encodeFieldTag(fieldID, WireLengthDelimited)
	b.buf = AppendVarint(b.buf, uint64(len(v)))
	b.buf = append(b.buf, v...)
}

// EncodeUint32 appends a varint-encoded uint32 field.
func (b *Buffer) EncodeUint32(fieldID uint32, v uint32, force bool) {
	if v == 0 && !force {
		return
	}
	b.encodeFieldTag(fieldID, WireVarint)
	b.buf = AppendVarint(b.buf, uint64(v))
}

// EncodeUint64 appends a varint-encoded uint64 field.
func (b *Buffer) EncodeUint64(fieldID uint32, v uint64, force bool) {
	if v == 0 && !force {
		return
	}
	b.encodeFieldTag(fieldID, WireVarint)
	b.buf = AppendVarint(b.buf, v)
}

// EncodeBool appends a bool field (one byte payload, only when true or forced).
func (b *Buffer) EncodeBool(fieldID uint32, v bool, force bool) {
	if !v && !force {
		return
	}
	b.encodeFieldTag(fieldID, WireVarint)
	if v {
		b.writeByte(1)
	} else {
		b.writeByte(0)
	}
}

// EncodeFixed32 appends a little-endian fixed32 field.
func (b *Buffer) EncodeFixed32(fieldID uint32, v uint32, force bool) {
	if v == 0 && !force {
		return
	}
	b.encodeFieldTag(fieldID, Wire32Bit)
	b.buf = append(b.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// EncodeFixed64 appends a little-endian fixed64 field.
func (b *Buffer) EncodeFixed64(fieldID uint32, v uint64, force bool) {
	if v == 0 && !force {
		return
	}
	b.encodeFieldTag(fieldID, Wire64Bit)
	b.buf = append(b.buf,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// EncodeFloat appends a float32 field via its fixed32 bit pattern.
func (b *Buffer) EncodeFloat(fieldID uint32, v float32, force bool) {
	if v == 0 && !force {
		return
	}
	b.EncodeFixed32(fieldID, float32bits(v), true)
}

// EncodeDouble appends a float64 field via its fixed64 bit pattern.
func (b *Buffer) EncodeDouble(fieldID uint32, v float64, force bool) {
	if v == 0 && !force {
		return
	}
	b.EncodeFixed64(fieldID, float64bits(v), true)
}

// EncodeInt32 appends a signed int32 field. Negative values are always
// sign-extended to 64 bits on the wire (matching upstream proto.h), so
// they cost the full 10-byte varint.
func (b *Buffer) EncodeInt32(fieldID uint32, v int32, force bool) {
	if v < 0 {
		b.EncodeInt64(fieldID, int64(v), force)
		return
	}
	b.EncodeUint32(fieldID, uint32(v), force)
}

// EncodeInt64 appends a signed int64 field (not zigzag).
func (b *Buffer) EncodeInt64(fieldID uint32, v int64, force bool) {
	b.EncodeUint64(fieldID, uint64(v), force)
}

// EncodeSint32 appends a zigzag-encoded int32 field.
func (b *Buffer) EncodeSint32(fieldID uint32, v int32, force bool) {
	b.EncodeUint32(fieldID, ZigZag32(v), force)
}

// EncodeSint64 appends a zigzag-encoded int64 field.
func (b *Buffer) EncodeSint64(fieldID uint32, v int64, force bool) {
	b.EncodeUint64(fieldID, ZigZag64(v), force)
}

// EncodeEnum appends an enum field (encoded as uint32).
func (b *Buffer) EncodeEnum(fieldID uint32, v uint32, force bool) {
	b.EncodeUint32(fieldID, v, force)
}

// EncodeMessage appends a nested message, writing the field tag and a
// length prefix computed from the nested message's own CalcSize pass.
func (b *Buffer) EncodeMessage(fieldID uint32, m Message) {
	b.encodeFieldTag(fieldID, WireLengthDelimited)
	var size int
	m.CalcSize(&size)
	b.buf = AppendVarint(b.buf, uint64(size))
	m.Encode(b)
}

func float32bits(f float32) uint32 { return math.Float32bits(f) }

func float64bits(f float64) uint64 { return math.Float64bits(f) }

func float32bitsToFloat(v uint32) float32 { return math.Float32frombits(v) }

func float64bitsToFloat(v uint64) float64 { return math.Float64frombits(v) }
