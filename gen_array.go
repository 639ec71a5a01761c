package marshalgen

import (
	"fmt"

	"github.com/dbus-codegen/marshalgen/internal/sig"
	"github.com/dbus-codegen/marshalgen/internal/target"
)

// isFixedElement reports whether an array whose element is described by c
// needs an explicit caller-supplied length (as opposed to a NULL-sentinel
// loop): true for a basic fixed-width tag, and, recursively, for an array of
// such elements at any depth. A nested fixed array carries no in-band
// terminator any more than its leaf element does, so "aai"/"aaai" stay
// length-driven at every level, not just the innermost one.
func isFixedElement(c sig.Cursor) bool {
	tag := c.CurrentTag()
	if sig.IsBasic(tag) {
		return sig.IsFixed(tag)
	}
	if tag == sig.TagArray {
		child, ok := c.Recurse()
		if !ok {
			return false
		}
		return isFixedElement(child)
	}
	return false
}

// GenArray emits a container open, a length-driven or sentinel-driven loop
// around a recursive element marshal, and a container close. It is the most
// intricate of the three specialists.
func GenArray(cfg *Config, cursor sig.Cursor, iterName, valueName, oomBlock string, inputs, locals *VarList) (string, error) {
	elemCursor, ok := cursor.Recurse()
	if !ok {
		return "", &UnsupportedTagError{Tag: "array", Signature: string(cursor.SubtreeText())}
	}

	w := newOutputWriter(cfg.Indent, cfg.WriteBudget)
	arrayIterName := valueName + "_iter"
	elementSig := string(elemCursor.SubtreeText())

	if err := w.writel(fmt.Sprintf("/* array of %s */", elementSig)); err != nil {
		return "", wrapEmit("array: comment", err)
	}
	openCall := fmt.Sprintf(
		"if (!dbus_message_iter_open_container(%s, DBUS_TYPE_ARRAY, %q, &%s)) {",
		iterName, elementSig, arrayIterName,
	)
	if err := w.writeil(openCall); err != nil {
		return "", wrapEmit("array: open_container", err)
	}
	w.indent()
	if err := w.writeBlock(oomBlock); err != nil {
		return "", wrapEmit("array: open oom block", err)
	}
	w.unindent()
	if err := w.writeil("}"); err != nil {
		return "", wrapEmit("array: open close brace", err)
	}

	newVarRecord(locals, "DBusMessageIter", arrayIterName, "")

	fixed := isFixedElement(elemCursor)
	elementName := valueName + "_element"

	elemInputs := &VarList{}
	elemLocals := &VarList{}
	elemCode, err := Dispatch(cfg, elemCursor, arrayIterName, elementName, oomBlock, elemInputs, elemLocals)
	if err != nil {
		return "", err
	}

	// Rewrite every element-level input into an outer input one pointer
	// level deeper, reclassifying the original as a local re-assigned each
	// iteration of the loop body.
	var preamble []string
	type loopLocal struct{ typ, name string }
	var loopLocals []loopLocal

	hasPromotedLen := false
	for _, ir := range elemInputs.Records() {
		suffix := ir.Suffix
		outerName := valueName + suffix
		outerType := target.BumpPointer(ir.Type)
		newVarRecord(inputs, outerType, outerName, suffix)
		if suffix == "_len" {
			hasPromotedLen = true
		}
		preamble = append(preamble, fmt.Sprintf("%s = %s[i];", ir.Name, outerName))
		loopLocals = append(loopLocals, loopLocal{ir.Type, ir.Name})
	}
	for _, lr := range elemLocals.Records() {
		loopLocals = append(loopLocals, loopLocal{lr.Type, lr.Name})
	}

	if fixed && !hasPromotedLen {
		// Fixed-width elements carry no in-band sentinel: the caller must
		// supply an explicit length, appended after all element-derived
		// inputs so declaration order matches (pointers first, length
		// last). A nested fixed array already promoted one up from its
		// inner call (bumped one indirection deeper above) -- this only
		// fires at the level where a length is first needed.
		newVarRecord(inputs, "size_t", valueName+"_len", "_len")
	}

	if fixed {
		if err := w.writeil(fmt.Sprintf("for (size_t i = 0; i < %s_len; i++) {", valueName)); err != nil {
			return "", wrapEmit("array: fixed loop header", err)
		}
	} else {
		if err := w.writeil(fmt.Sprintf("for (size_t i = 0; %s[i] != NULL; i++) {", valueName)); err != nil {
			return "", wrapEmit("array: sentinel loop header", err)
		}
	}
	w.indent()
	for _, lr := range loopLocals {
		if err := w.writeil(fmt.Sprintf("%s %s;", lr.typ, lr.name)); err != nil {
			return "", wrapEmit("array: loop-local declaration", err)
		}
	}
	for _, line := range preamble {
		if err := w.writeil(line); err != nil {
			return "", wrapEmit("array: loop preamble assignment", err)
		}
	}
	if err := w.writeBlock(elemCode); err != nil {
		return "", wrapEmit("array: element code", err)
	}
	w.unindent()
	if err := w.writeil("}"); err != nil {
		return "", wrapEmit("array: loop close brace", err)
	}

	closeCall := fmt.Sprintf("if (!dbus_message_iter_close_container(%s, &%s)) {", iterName, arrayIterName)
	if err := w.writeil(closeCall); err != nil {
		return "", wrapEmit("array: close_container", err)
	}
	w.indent()
	if err := w.writeBlock(oomBlock); err != nil {
		return "", wrapEmit("array: close oom block", err)
	}
	w.unindent()
	if err := w.writeil("}"); err != nil {
		return "", wrapEmit("array: close close brace", err)
	}

	return w.String(), nil
}
