package wire

// EntityInfoBase carries the fields every ListEntities*Response shares,
// mirroring the common prefix of esphome's per-entity info messages.
type EntityInfoBase struct {
	ObjectID          string
	Key               uint32
	Name              string
	UniqueID          string
	Icon              string
	DisabledByDefault bool
	EntityCategory    uint32
}

func sizeEntityBase(total *int, e EntityInfoBase) {
	AddString(total, 1, e.ObjectID, false)
	AddUint32(total, 2, e.Key, true)
	AddString(total, 3, e.Name, false)
	AddString(total, 4, e.UniqueID, false)
	AddString(total, 5, e.Icon, false)
	AddBool(total, 6, e.DisabledByDefault, false)
	AddEnum(total, 7, e.EntityCategory, false)
}

func encodeEntityBase(b *Buffer, e EntityInfoBase) {
	b.EncodeString(1, e.ObjectID, false)
	b.EncodeUint32(2, e.Key, true)
	b.EncodeString(3, e.Name, false)
	b.EncodeString(4, e.UniqueID, false)
	b.EncodeString(5, e.Icon, false)
	b.EncodeBool(6, e.DisabledByDefault, false)
	b.EncodeEnum(7, e.EntityCategory, false)
}

func decodeEntityBaseField(e *EntityInfoBase, fieldID uint32, v uint64) bool {
	switch fieldID {
	case 2:
		e.Key = uint32(v)
	case 6:
		e.DisabledByDefault = AsBool(v)
	case 7:
		e.EntityCategory = uint32(v)
	default:
		return false
	}
	return true
}

func decodeEntityBaseString(e *EntityInfoBase, fieldID uint32, v []byte) bool {
	switch fieldID {
	case 1:
		e.ObjectID = string(v)
	case 3:
		e.Name = string(v)
	case 4:
		e.UniqueID = string(v)
	case 5:
		e.Icon = string(v)
	default:
		return false
	}
	return true
}
