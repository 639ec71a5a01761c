package marshalgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbus-codegen/marshalgen/internal/sig"
)

func TestDispatchRoutesEachTag(t *testing.T) {
	cfg := NewConfig()

	for _, signature := range []string{"i", "s", "ai", "as", "(is)", "{si}"} {
		t.Run(signature, func(t *testing.T) {
			cursor, err := sig.Parse(signature)
			require.NoError(t, err)
			inputs := &VarList{}
			locals := &VarList{}
			_, err = Dispatch(cfg, cursor, "iter", "value", "return -1;\n", inputs, locals)
			require.NoError(t, err)
			assert.NotEmpty(t, inputs.Records())
		})
	}
}

func TestDispatchRejectsUnsupportedTag(t *testing.T) {
	cursor, err := sig.Parse("v")
	require.NoError(t, err)

	cfg := NewConfig()
	inputs := &VarList{}
	locals := &VarList{}
	_, err = Dispatch(cfg, cursor, "iter", "value", "return -1;\n", inputs, locals)
	require.Error(t, err)
	assert.True(t, isUnsupportedTag(err))

	var tagErr *UnsupportedTagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "variant", tagErr.Tag)
}
