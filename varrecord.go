package marshalgen

// VarRecord is a `(type, name)` pair describing one input or local variable
// the emitted code expects the caller to provide, or declares itself.
// Suffix is carried explicitly rather than recovered later by trimming name
// against some base -- that would make every caller re-derive the "name
// begins with base" relationship instead of reading it off the record.
type VarRecord struct {
	Type   string
	Name   string
	Suffix string
}

// VarList is an ordered, append-only sequence of variable records.
// Insertion order is significant: it becomes the declaration/argument
// order of the function the caller assembles around the emitted code.
type VarList struct {
	records []VarRecord
}

// Append adds v to the end of the list and returns it.
func (l *VarList) Append(v VarRecord) VarRecord {
	l.records = append(l.records, v)
	return v
}

// Records returns the list's records in insertion order. The returned slice
// is owned by the caller; mutating it does not affect the list.
func (l *VarList) Records() []VarRecord {
	out := make([]VarRecord, len(l.records))
	copy(out, l.records)
	return out
}

func newVarRecord(parent *VarList, typ, name, suffix string) VarRecord {
	return parent.Append(VarRecord{Type: typ, Name: name, Suffix: suffix})
}
