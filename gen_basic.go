package marshalgen

import (
	"fmt"

	"github.com/dbus-codegen/marshalgen/internal/sig"
	"github.com/dbus-codegen/marshalgen/internal/target"
)

// GenBasic emits a single append call for a scalar or string-like value.
// It declares no locals and appends exactly one input: the value itself,
// read-only qualified.
func GenBasic(cfg *Config, cursor sig.Cursor, iterName, valueName, oomBlock string, inputs, locals *VarList) (string, error) {
	tag := cursor.CurrentTag()
	base, pointerValued := target.BaseCType(tag)
	constName := target.TagConstantName(tag)

	w := newOutputWriter(cfg.Indent, cfg.WriteBudget)

	if err := w.writel(fmt.Sprintf("/* %s */", base)); err != nil {
		return "", wrapEmit("basic: comment", err)
	}
	call := fmt.Sprintf("if (!dbus_message_iter_append_basic(%s, %s, &%s)) {", iterName, constName, valueName)
	if err := w.writeil(call); err != nil {
		return "", wrapEmit("basic: append_basic", err)
	}
	w.indent()
	if err := w.writeBlock(oomBlock); err != nil {
		return "", wrapEmit("basic: oom block", err)
	}
	w.unindent()
	if err := w.writeil("}"); err != nil {
		return "", wrapEmit("basic: close brace", err)
	}

	// No locals: a basic value needs nothing beyond the input itself.
	newVarRecord(inputs, target.Qualify(base, pointerValued), valueName, "")

	return w.String(), nil
}
