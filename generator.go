// Package marshalgen is a marshalling-code generator for a bus-IPC wire
// protocol with a recursive, typed signature language. Given a signature
// cursor describing one type, it emits target-language serialization code
// for that type plus the declarative input/local variable lists the
// surrounding function-body assembler needs to wire the emitted code up.
//
// The package owns only the recursive traversal (Dispatch and its three
// specialists). Signature parsing, the bus runtime's own iterator type,
// and physical file I/O are external collaborators -- see internal/sig and
// internal/target for the supporting pieces this repository bundles so it
// is self-contained, and cmd/dbusgen for a thin front end over it all.
package marshalgen

import "github.com/dbus-codegen/marshalgen/internal/sig"

// Result is everything a single Generate call produces: the emitted code,
// and the ordered input/local variable lists a caller assembling the
// surrounding function body needs.
type Result struct {
	Code   string
	Inputs []VarRecord
	Locals []VarRecord
}

// Generate marshals a value of the type described by cursor. iterName names
// the bus iterator the emitted code appends onto; valueName names the value
// being marshaled (and seeds every input/local name the generation
// produces); oomBlock is inlined, indented one level, at every fallible
// call site in the emitted code.
func Generate(cfg *Config, cursor sig.Cursor, iterName, valueName, oomBlock string) (Result, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	inputs := &VarList{}
	locals := &VarList{}
	code, err := Dispatch(cfg, cursor, iterName, valueName, oomBlock, inputs, locals)
	if err != nil {
		return Result{}, err
	}
	return Result{Code: code, Inputs: inputs.Records(), Locals: locals.Records()}, nil
}
