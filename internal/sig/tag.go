// Package sig models the bus protocol's recursive type-signature grammar as a
// read-only cursor. Signature parsing and validation live here, never in
// the generator itself, which only ever consumes an already-built cursor.
package sig

// Tag is a discriminated type-signature element, drawn from the closed set
// the generator's dispatcher switches on.
type Tag int

const (
	TagByte Tag = iota
	TagBool
	TagInt16
	TagUint16
	TagInt32
	TagUint32
	TagInt64
	TagUint64
	TagDouble
	TagUnixFD
	TagString
	TagObjectPath
	TagSignature
	TagArray
	TagStruct
	TagDictEntry

	// TagVariant denotes the bus protocol's variant type ('v'): a
	// self-describing container holding one value plus its own
	// signature. It parses cleanly (so a cursor can represent it) but the
	// dispatcher has nothing to route it to, since marshalling a variant
	// needs the value's runtime signature, not just its static one, and
	// runtime value handling is out of scope here.
	TagVariant
)

func (t Tag) String() string {
	switch t {
	case TagByte:
		return "byte"
	case TagBool:
		return "bool"
	case TagInt16:
		return "int16"
	case TagUint16:
		return "uint16"
	case TagInt32:
		return "int32"
	case TagUint32:
		return "uint32"
	case TagInt64:
		return "int64"
	case TagUint64:
		return "uint64"
	case TagDouble:
		return "double"
	case TagUnixFD:
		return "unix_fd"
	case TagString:
		return "string"
	case TagObjectPath:
		return "object_path"
	case TagSignature:
		return "signature"
	case TagArray:
		return "array"
	case TagStruct:
		return "struct"
	case TagDictEntry:
		return "dict_entry"
	case TagVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// IsBasic reports whether tag is serialized by a single append call:
// scalars plus strings. Orthogonal to IsFixed.
func IsBasic(t Tag) bool {
	switch t {
	case TagByte, TagBool, TagInt16, TagUint16, TagInt32, TagUint32, TagInt64,
		TagUint64, TagDouble, TagUnixFD, TagString, TagObjectPath, TagSignature:
		return true
	default:
		return false
	}
}

// IsFixed reports whether tag occupies a statically known number of bytes.
// Strings are basic but never fixed.
func IsFixed(t Tag) bool {
	switch t {
	case TagByte, TagBool, TagInt16, TagUint16, TagInt32, TagUint32, TagInt64,
		TagUint64, TagDouble, TagUnixFD:
		return true
	default:
		return false
	}
}
