package wire

// SizeOfVarint returns the number of bytes a varint-encoded uint64 occupies.
// Kept as a thin alias of SizeVarint for readability at call sites that
// mirror the original ProtoSize::varint naming.
func SizeOfVarint(v uint64) int { return SizeVarint(v) }

func fieldTagSize(fieldID uint32, wt WireType) int {
	return SizeVarint(fieldTag(fieldID, wt))
}

// AddString adds the encoded size of a length-delimited string field to *total.
func AddString(total *int, fieldID uint32, s string, force bool) {
	if len(s) == 0 && !force {
		return
	}
	*total += fieldTagSize(fieldID, WireLengthDelimited) + SizeVarint(uint64(len(s))) + len(s)
}

// AddBytes adds the encoded size of a length-delimited bytes field to *total.
func AddBytes(total *int, fieldID uint32, v []byte, force bool) {
	if len(v) == 0 && !force {
		return
	}
	*total += fieldTagSize(fieldID, WireLengthDelimited) + SizeVarint(uint64(len(v))) + len(v)
}

// AddUint32 adds the encoded size of a varint uint32 field to *total.
func AddUint32(total *int, fieldID uint32, v uint32, force bool) {
	if v == 0 && !force {
		return
	}
	*total += fieldTagSize(fieldID, WireVarint) + SizeVarint(uint64(v))
}

// AddUint64 adds the encoded size of a varint uint64 field to *total.
func AddUint64(total *int, fieldID uint32, v uint64, force bool) {
	if v == 0 && !force {
		return
	}
	*total += fieldTagSize(fieldID, WireVarint) + SizeVarint(v)
}

// AddBool adds the encoded size of a bool field (always 1 byte payload).
func AddBool(total *int, fieldID uint32, v bool, force bool) {
	if !v && !force {
		return
	}
	*total += fieldTagSize(fieldID, WireVarint) + 1
}

// AddFixed32 adds the encoded size of a fixed32 field.
func AddFixed32(total *int, fieldID uint32, v uint32, force bool) {
	if v == 0 && !force {
		return
	}
	*total += fieldTagSize(fieldID, Wire32Bit) + 4
}

// AddFixed64 adds the encoded size of a fixed64 field.
func AddFixed64(total *int, fieldID uint32, v uint64, force bool) {
	if v == 0 && !force {
		return
	}
	*total += fieldTagSize(fieldID, Wire64Bit) + 8
}

// AddFloat adds the encoded size of a float32 field.
func AddFloat(total *int, fieldID uint32, v float32, force bool) {
	if v == 0 && !force {
		return
	}
	*total += fieldTagSize(fieldID, Wire32Bit) + 4
}

// AddDouble adds the encoded size of a float64 field.
func AddDouble(total *int, fieldID uint32, v float64, force bool) {
	if v == 0 && !force {
		return
	}
	*total += fieldTagSize(fieldID, Wire64Bit) + 8
}

// AddInt32 adds the encoded size of a signed int32 field. Negative values
// are sign-extended to 64 bits on the wire, always costing 10 bytes.
func AddInt32(total *int, fieldID uint32, v int32, force bool) {
	if v == 0 && !force {
		return
	}
	if v < 0 {
		*total += fieldTagSize(fieldID, WireVarint) + 10
		return
	}
	AddUint32(total, fieldID, uint32(v), force)
}

// AddInt64 adds the encoded size of a signed int64 field.
func AddInt64(total *int, fieldID uint32, v int64, force bool) {
	AddUint64(total, fieldID, uint64(v), force)
}

// AddSint32 adds the encoded size of a zigzag int32 field.
func AddSint32(total *int, fieldID uint32, v int32, force bool) {
	AddUint32(total, fieldID, ZigZag32(v), force)
}

// AddSint64 adds the encoded size of a zigzag int64 field.
func AddSint64(total *int, fieldID uint32, v int64, force bool) {
	AddUint64(total, fieldID, ZigZag64(v), force)
}

// AddEnum adds the encoded size of an enum field (encoded as uint32).
func AddEnum(total *int, fieldID uint32, v uint32, force bool) {
	AddUint32(total, fieldID, v, force)
}

// AddMessage adds the encoded size of a nested message field: tag + length
// varint + the nested message's own size.
func AddMessage(total *int, fieldID uint32, m Message) {
	var nested int
	m.CalcSize(&nested)
	*total += fieldTagSize(fieldID, WireLengthDelimited) + SizeVarint(uint64(nested)) + nested
}
