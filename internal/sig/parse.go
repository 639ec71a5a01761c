package sig

import "fmt"

// ParseError reports a malformed signature. The core generator assumes a
// pre-validated signature; this error exists only so the cursor-
// construction boundary itself can fail cleanly for callers that hand it
// untrusted text (the CLI, tests).
type ParseError struct {
	Signature string
	Offset    int
	Message   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s @ %s:%d", e.Message, e.Signature, e.Offset)
}

// Parse builds a Cursor over signature, which must describe exactly one
// type (a single scalar, string-like, array, struct or dict-entry).
func Parse(signature string) (Cursor, error) {
	n, pos, err := parseOne([]byte(signature), 0)
	if err != nil {
		return Cursor{}, err
	}
	if pos != len(signature) {
		return Cursor{}, &ParseError{Signature: signature, Offset: pos, Message: "trailing characters after single type"}
	}
	return Cursor{n: n, siblings: []*node{n}, idx: 0}, nil
}

var basicTags = map[byte]Tag{
	'y': TagByte,
	'b': TagBool,
	'n': TagInt16,
	'q': TagUint16,
	'i': TagInt32,
	'u': TagUint32,
	'x': TagInt64,
	't': TagUint64,
	'd': TagDouble,
	'h': TagUnixFD,
	's': TagString,
	'o': TagObjectPath,
	'g': TagSignature,
	'v': TagVariant,
}

func parseOne(data []byte, pos int) (*node, int, error) {
	if pos >= len(data) {
		return nil, pos, &ParseError{Signature: string(data), Offset: pos, Message: "unexpected end of signature"}
	}

	start := pos
	c := data[pos]

	switch {
	case c == 'a':
		elem, next, err := parseOne(data, pos+1)
		if err != nil {
			return nil, next, err
		}
		return &node{tag: TagArray, children: []*node{elem}, text: string(data[start:next])}, next, nil

	case c == '(':
		members, next, err := parseSequence(data, pos+1, ')')
		if err != nil {
			return nil, next, err
		}
		if len(members) == 0 {
			return nil, next, &ParseError{Signature: string(data), Offset: pos, Message: "struct with zero members"}
		}
		return &node{tag: TagStruct, children: members, text: string(data[start:next])}, next, nil

	case c == '{':
		members, next, err := parseSequence(data, pos+1, '}')
		if err != nil {
			return nil, next, err
		}
		if len(members) != 2 {
			return nil, next, &ParseError{Signature: string(data), Offset: pos, Message: "dict-entry must have exactly 2 members"}
		}
		return &node{tag: TagDictEntry, children: members, text: string(data[start:next])}, next, nil

	default:
		tag, ok := basicTags[c]
		if !ok {
			return nil, pos, &ParseError{Signature: string(data), Offset: pos, Message: fmt.Sprintf("unknown type code %q", c)}
		}
		return &node{tag: tag, text: string(data[pos : pos+1])}, pos + 1, nil
	}
}

// parseSequence parses zero or more types up to (and consuming) the closing
// byte, used for struct and dict-entry member lists.
func parseSequence(data []byte, pos int, closing byte) ([]*node, int, error) {
	var members []*node
	for {
		if pos >= len(data) {
			return nil, pos, &ParseError{Signature: string(data), Offset: pos, Message: "unterminated container"}
		}
		if data[pos] == closing {
			return members, pos + 1, nil
		}
		n, next, err := parseOne(data, pos)
		if err != nil {
			return nil, next, err
		}
		members = append(members, n)
		pos = next
	}
}
