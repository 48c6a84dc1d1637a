package wire

import "fmt"

// Message is implemented by every generated-style message type. Encoding is
// a two-pass contract: CalcSize first so the frame layer can size its
// length prefix, then Encode to actually append the bytes — mirroring
// ProtoMessage::calculate_size / ProtoMessage::encode upstream.
type Message interface {
	// MessageType returns the wire type id used in the frame header.
	MessageType() uint16
	// CalcSize adds this message's encoded payload length to *total.
	CalcSize(total *int)
	// Encode appends this message's fields to b.
	Encode(b *Buffer)
}

// Decoder is implemented by messages that can be populated from a raw
// payload. Decode walks the payload field by field and dispatches each one
// to the appropriate hook; unknown field numbers are skipped, matching the
// original's "unknown fields are ignored" behavior.
type Decoder interface {
	Message
	// DecodeVarint handles a varint-wire-type field.
	DecodeVarint(fieldID uint32, v uint64) error
	// DecodeLengthDelimited handles a length-delimited field.
	DecodeLengthDelimited(fieldID uint32, v []byte) error
	// Decode32Bit handles a fixed32-wire-type field.
	Decode32Bit(fieldID uint32, v uint32) error
	// Decode64Bit handles a fixed64-wire-type field.
	Decode64Bit(fieldID uint32, v uint64) error
}

// Decode parses buf as a sequence of protobuf-compatible fields and
// dispatches each to d's typed hooks. It returns an error only on a
// malformed field (truncated varint/length, unsupported wire type) or if a
// hook itself returns one.
func Decode(d Decoder, buf []byte) error {
	for len(buf) > 0 {
		tag, n := ConsumeVarint(buf)
		if n == 0 {
			return fmt.Errorf("wire: truncated field tag")
		}
		buf = buf[n:]

		fieldID := uint32(tag >> 3)
		wt := WireType(tag & 0x7)

		switch wt {
		case WireVarint:
			v, n := ConsumeVarint(buf)
			if n == 0 {
				return fmt.Errorf("wire: truncated varint field %d", fieldID)
			}
			buf = buf[n:]
			if err := d.DecodeVarint(fieldID, v); err != nil {
				return err
			}
		case Wire64Bit:
			if len(buf) < 8 {
				return fmt.Errorf("wire: truncated fixed64 field %d", fieldID)
			}
			v := uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
				uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
			buf = buf[8:]
			if err := d.Decode64Bit(fieldID, v); err != nil {
				return err
			}
		case WireLengthDelimited:
			length, n := ConsumeVarint(buf)
			if n == 0 {
				return fmt.Errorf("wire: truncated length prefix field %d", fieldID)
			}
			buf = buf[n:]
			if uint64(len(buf)) < length {
				return fmt.Errorf("wire: truncated length-delimited field %d", fieldID)
			}
			v := buf[:length]
			buf = buf[length:]
			if err := d.DecodeLengthDelimited(fieldID, v); err != nil {
				return err
			}
		case Wire32Bit:
			if len(buf) < 4 {
				return fmt.Errorf("wire: truncated fixed32 field %d", fieldID)
			}
			v := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
			buf = buf[4:]
			if err := d.Decode32Bit(fieldID, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("wire: unsupported wire type %d on field %d", wt, fieldID)
		}
	}
	return nil
}

// AsBool interprets a varint field value as the generated code does:
// nonzero is true.
func AsBool(v uint64) bool { return v != 0 }

// AsFloat reinterprets a fixed32 field value as a float32 via its bit pattern.
func AsFloat(v uint32) float32 { return float32bitsToFloat(v) }

// AsDouble reinterprets a fixed64 field value as a float64 via its bit pattern.
func AsDouble(v uint64) float64 { return float64bitsToFloat(v) }
