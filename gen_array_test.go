package marshalgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbus-codegen/marshalgen/internal/sig"
)

func TestGenArrayFixedElementUsesLengthLoop(t *testing.T) {
	cursor, err := sig.Parse("ai")
	require.NoError(t, err)

	cfg := NewConfig()
	inputs := &VarList{}
	locals := &VarList{}
	code, err := GenArray(cfg, cursor, "iter", "value", "return -1;\n", inputs, locals)
	require.NoError(t, err)

	assert.Contains(t, code, `dbus_message_iter_open_container(iter, DBUS_TYPE_ARRAY, "i", &value_iter)`)
	assert.Contains(t, code, "for (size_t i = 0; i < value_len; i++)")
	assert.Contains(t, code, "dbus_message_iter_append_basic(value_iter, DBUS_TYPE_INT32, &value_element)")
	assert.Contains(t, code, "dbus_message_iter_close_container(iter, &value_iter)")

	require.Len(t, inputs.Records(), 2)
	assert.Equal(t, VarRecord{Type: "const int32_t * const", Name: "value"}, inputs.Records()[0])
	assert.Equal(t, VarRecord{Type: "size_t", Name: "value_len", Suffix: "_len"}, inputs.Records()[1])

	require.Len(t, locals.Records(), 1)
	assert.Equal(t, "value_iter", locals.Records()[0].Name)
}

func TestGenArraySentinelElementUsesSentinelLoop(t *testing.T) {
	cursor, err := sig.Parse("as")
	require.NoError(t, err)

	cfg := NewConfig()
	inputs := &VarList{}
	locals := &VarList{}
	code, err := GenArray(cfg, cursor, "iter", "value", "return -1;\n", inputs, locals)
	require.NoError(t, err)

	assert.Contains(t, code, "for (size_t i = 0; value[i] != NULL; i++)")
	assert.NotContains(t, code, "value_len")

	require.Len(t, inputs.Records(), 1)
	assert.Equal(t, "value", inputs.Records()[0].Name)
	assert.Equal(t, "const char * * const", inputs.Records()[0].Type)
}

func TestGenArrayNestedFixedArraysBumpPointerPerLevel(t *testing.T) {
	cursor, err := sig.Parse("aai")
	require.NoError(t, err)

	cfg := NewConfig()
	inputs := &VarList{}
	locals := &VarList{}
	code, err := GenArray(cfg, cursor, "iter", "value", "return -1;\n", inputs, locals)
	require.NoError(t, err)

	require.Len(t, inputs.Records(), 2)
	assert.Equal(t, "const int32_t * const * const", inputs.Records()[0].Type)
	assert.Equal(t, "value", inputs.Records()[0].Name)
	assert.Equal(t, "size_t * const", inputs.Records()[1].Type)
	assert.Equal(t, "value_len", inputs.Records()[1].Name)

	opens := countOccurrences(code, "dbus_message_iter_open_container")
	closes := countOccurrences(code, "dbus_message_iter_close_container")
	assert.Equal(t, 2, opens)
	assert.Equal(t, 2, closes)
}

func TestGenArrayOOMBlockAppearsAtEveryFallibleCall(t *testing.T) {
	cursor, err := sig.Parse("ai")
	require.NoError(t, err)

	cfg := NewConfig()
	inputs := &VarList{}
	locals := &VarList{}
	code, err := GenArray(cfg, cursor, "iter", "value", "return -1;\n", inputs, locals)
	require.NoError(t, err)

	// open_container, append_basic, close_container: three fallible calls.
	assert.Equal(t, 3, countOccurrences(code, "return -1;"))
}
