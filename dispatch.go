package marshalgen

import "github.com/dbus-codegen/marshalgen/internal/sig"

// Dispatch inspects the type tag at cursor and routes to the matching
// specialist generator, appending every input/local variable the emitted
// code needs to inputs/locals and returning the emitted code for this one
// value.
//
// Dispatch never itself fails except by propagating a sub-generator's
// error: an allocation failure (ErrOutOfMemory, wrapped in an *EmitError)
// or, if cursor holds a tag outside the closed set the caller promised a
// well-formed signature would stay within, an *UnsupportedTagError.
func Dispatch(cfg *Config, cursor sig.Cursor, iterName, valueName, oomBlock string, inputs, locals *VarList) (string, error) {
	tag := cursor.CurrentTag()
	switch {
	case sig.IsBasic(tag):
		return GenBasic(cfg, cursor, iterName, valueName, oomBlock, inputs, locals)
	case tag == sig.TagArray:
		return GenArray(cfg, cursor, iterName, valueName, oomBlock, inputs, locals)
	case tag == sig.TagStruct, tag == sig.TagDictEntry:
		return GenStruct(cfg, cursor, iterName, valueName, oomBlock, inputs, locals)
	default:
		return "", &UnsupportedTagError{Tag: tag.String(), Signature: string(cursor.SubtreeText())}
	}
}
