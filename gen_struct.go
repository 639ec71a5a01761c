package marshalgen

import (
	"fmt"

	"github.com/dbus-codegen/marshalgen/internal/sig"
	"github.com/dbus-codegen/marshalgen/internal/target"
)

// GenStruct emits a container open, sequential recursive member marshals
// with field projection, and a container close. The struct and dict-entry
// tags share this generator; only the container constant, the input's
// struct type name, and the dict-entry member-count check (enforced at
// parse time) differ.
func GenStruct(cfg *Config, cursor sig.Cursor, iterName, valueName, oomBlock string, inputs, locals *VarList) (string, error) {
	tag := cursor.CurrentTag()
	member, ok := cursor.Recurse()
	if !ok {
		// The signature grammar structurally disallows a zero-member
		// struct/dict-entry; reaching here means the caller's
		// "pre-validated signature" promise broke.
		return "", &UnsupportedTagError{Tag: tag.String(), Signature: string(cursor.SubtreeText())}
	}

	w := newOutputWriter(cfg.Indent, cfg.WriteBudget)
	structIterName := valueName + "_iter"
	containerConst := target.ContainerConstantName(tag)

	if err := w.writel(fmt.Sprintf("/* %s */", string(cursor.SubtreeText()))); err != nil {
		return "", wrapEmit("struct: comment", err)
	}
	openCall := fmt.Sprintf("if (!dbus_message_iter_open_container(%s, %s, NULL, &%s)) {", iterName, containerConst, structIterName)
	if err := w.writeil(openCall); err != nil {
		return "", wrapEmit("struct: open_container", err)
	}
	w.indent()
	if err := w.writeBlock(oomBlock); err != nil {
		return "", wrapEmit("struct: open oom block", err)
	}
	w.unindent()
	if err := w.writeil("}"); err != nil {
		return "", wrapEmit("struct: open close brace", err)
	}

	newVarRecord(locals, "DBusMessageIter", structIterName, "")

	index := 0
	for {
		fieldName := cfg.FieldName(index)
		memberName := fmt.Sprintf("%s_%s", valueName, fieldName)

		memberInputs := &VarList{}
		memberLocals := &VarList{}
		code, err := Dispatch(cfg, member, structIterName, memberName, oomBlock, memberInputs, memberLocals)
		if err != nil {
			return "", err
		}

		// Promote every returned inner-local unchanged.
		for _, lr := range memberLocals.Records() {
			locals.Append(lr)
		}

		// Promote every returned inner-input to *locals* (not *inputs*):
		// the struct projects fields from the structured value instead of
		// demanding them individually. Each promoted input gets a
		// projection assignment rather than a redeclaration -- its
		// declaration belongs to whatever assembles the locals list into
		// a function body, the same way the array generator's own
		// arrayIterName/structIterName locals are never redeclared inline
		// here either.
		for _, ir := range memberInputs.Records() {
			suffix := ir.Suffix
			projected := fmt.Sprintf("%s->%s%s", valueName, fieldName, suffix)
			if err := w.writeil(fmt.Sprintf("%s = %s;", ir.Name, projected)); err != nil {
				return "", wrapEmit("struct: member projection assignment", err)
			}
			locals.Append(ir)
		}

		if err := w.writeBlock(code); err != nil {
			return "", wrapEmit("struct: member code", err)
		}

		next, hasNext := member.Next()
		if !hasNext {
			break
		}
		member = next
		index++
	}

	closeCall := fmt.Sprintf("if (!dbus_message_iter_close_container(%s, &%s)) {", iterName, structIterName)
	if err := w.writeil(closeCall); err != nil {
		return "", wrapEmit("struct: close_container", err)
	}
	w.indent()
	if err := w.writeBlock(oomBlock); err != nil {
		return "", wrapEmit("struct: close oom block", err)
	}
	w.unindent()
	if err := w.writeil("}"); err != nil {
		return "", wrapEmit("struct: close close brace", err)
	}

	structType := target.StructTypeName(tag, string(cursor.SubtreeText()))
	newVarRecord(inputs, target.Qualify(structType+" *", true), valueName, "")

	return w.String(), nil
}
