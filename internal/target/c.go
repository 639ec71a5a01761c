// Package target maps a signature tag onto the C token vocabulary the
// generator's emitted code uses: base types, DBUS_TYPE_* constants, pointer
// qualification, and the struct/dict-entry type names a companion
// structure-definition generator would have produced. One function per
// token class, grounded on the teacher's genc.go token emitters, adapted
// from "emit a VM opcode's C spelling" to "emit a signature tag's C
// spelling".
package target

import (
	"fmt"
	"strings"

	"github.com/dbus-codegen/marshalgen/internal/sig"
)

// BaseCType returns the unqualified C type a basic tag's value is carried
// in, plus whether that type is itself pointer-valued (string-like types
// are; scalars are not). Callers read-only-qualify the result with Qualify
// before using it as an input variable's declared type.
func BaseCType(tag sig.Tag) (base string, pointerValued bool) {
	switch tag {
	case sig.TagByte:
		return "uint8_t", false
	case sig.TagBool:
		return "dbus_bool_t", false
	case sig.TagInt16:
		return "int16_t", false
	case sig.TagUint16:
		return "uint16_t", false
	case sig.TagInt32:
		return "int32_t", false
	case sig.TagUint32:
		return "uint32_t", false
	case sig.TagInt64:
		return "int64_t", false
	case sig.TagUint64:
		return "uint64_t", false
	case sig.TagDouble:
		return "double", false
	case sig.TagUnixFD:
		return "int", false
	case sig.TagString, sig.TagObjectPath, sig.TagSignature:
		return "char *", true
	default:
		return "void", false
	}
}

// TagConstantName returns the DBUS_TYPE_* wire-type constant for a basic
// tag, the value passed as dbus_message_iter_append_basic's type argument.
func TagConstantName(tag sig.Tag) string {
	switch tag {
	case sig.TagByte:
		return "DBUS_TYPE_BYTE"
	case sig.TagBool:
		return "DBUS_TYPE_BOOLEAN"
	case sig.TagInt16:
		return "DBUS_TYPE_INT16"
	case sig.TagUint16:
		return "DBUS_TYPE_UINT16"
	case sig.TagInt32:
		return "DBUS_TYPE_INT32"
	case sig.TagUint32:
		return "DBUS_TYPE_UINT32"
	case sig.TagInt64:
		return "DBUS_TYPE_INT64"
	case sig.TagUint64:
		return "DBUS_TYPE_UINT64"
	case sig.TagDouble:
		return "DBUS_TYPE_DOUBLE"
	case sig.TagUnixFD:
		return "DBUS_TYPE_UNIX_FD"
	case sig.TagString:
		return "DBUS_TYPE_STRING"
	case sig.TagObjectPath:
		return "DBUS_TYPE_OBJECT_PATH"
	case sig.TagSignature:
		return "DBUS_TYPE_SIGNATURE"
	default:
		return "DBUS_TYPE_INVALID"
	}
}

// ContainerConstantName returns the DBUS_TYPE_* container constant for a
// struct or dict-entry tag, passed as dbus_message_iter_open_container's
// type argument.
func ContainerConstantName(tag sig.Tag) string {
	if tag == sig.TagDictEntry {
		return "DBUS_TYPE_DICT_ENTRY"
	}
	return "DBUS_TYPE_STRUCT"
}

// Qualify prepends the read-only qualifier a generated input variable's
// type always carries: the emitted code promises not to mutate the value
// it was handed. "const " in front of the base spelling reads correctly
// whether base is a scalar ("const int32_t") or already a pointer
// ("const char *", i.e. pointer-to-const-char) -- pointerValued is kept as
// a parameter for callers that need to tell the two cases apart, even
// though the qualification itself is uniform.
func Qualify(base string, pointerValued bool) string {
	_ = pointerValued
	return "const " + base
}

// BumpPointer adds one level of pointer indirection, read-only qualified,
// to a type already produced by Qualify or a prior BumpPointer call. This
// is the single operation the array generator uses, uniformly, to carry a
// fixed-width leaf's type (and its length's type) out through every array
// nesting level it passes through.
func BumpPointer(t string) string {
	return t + " * const"
}

// StructTypeName returns the C struct type name a companion structure-
// definition generator would emit for a struct or dict-entry's member
// signature, e.g. "(is)" -> "DBusStruct_is", "{si}" -> "DBusDictEntry_si".
func StructTypeName(tag sig.Tag, subtreeText string) string {
	inner := strings.Trim(subtreeText, "(){}")
	if tag == sig.TagDictEntry {
		return fmt.Sprintf("DBusDictEntry_%s", inner)
	}
	return fmt.Sprintf("DBusStruct_%s", inner)
}
