package marshalgen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbus-codegen/marshalgen/internal/sig"
)

// randomSignature builds a random well-formed signature string up to
// maxDepth containers deep. There is no property-testing library in the
// corpus this repo draws on (testify ships assertions, not generators), so
// this is a small hand-rolled generator over math/rand -- the standard
// library tool for exactly this job.
func randomSignature(r *rand.Rand, maxDepth int) string {
	basics := []byte{'y', 'b', 'n', 'q', 'i', 'u', 'x', 't', 'd', 'h', 's', 'o', 'g'}

	if maxDepth <= 0 {
		return string(basics[r.Intn(len(basics))])
	}

	switch r.Intn(3) {
	case 0:
		return string(basics[r.Intn(len(basics))])
	case 1:
		return "a" + randomSignature(r, maxDepth-1)
	default:
		n := 1 + r.Intn(3)
		var b strings.Builder
		b.WriteByte('(')
		for i := 0; i < n; i++ {
			b.WriteString(randomSignature(r, maxDepth-1))
		}
		b.WriteByte(')')
		return b.String()
	}
}

func TestPropertyPrefixInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		signature := randomSignature(r, 3)
		cursor, err := sig.Parse(signature)
		require.NoErrorf(t, err, "signature %q", signature)

		cfg := NewConfig()
		inputs := &VarList{}
		locals := &VarList{}
		_, err = Dispatch(cfg, cursor, "iter", "value", "return -1;\n", inputs, locals)
		require.NoErrorf(t, err, "signature %q", signature)

		records := inputs.Records()
		require.NotEmptyf(t, records, "signature %q produced no inputs", signature)
		assert.Equalf(t, "value", records[0].Name, "signature %q: first input must be exactly the base name", signature)
		for _, rec := range records {
			assert.Truef(t, strings.HasPrefix(rec.Name, "value"), "signature %q: input %q does not start with base name", signature, rec.Name)
		}
	}
}

func TestPropertyContainerBalance(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		signature := randomSignature(r, 3)
		cursor, err := sig.Parse(signature)
		require.NoError(t, err)

		cfg := NewConfig()
		inputs := &VarList{}
		locals := &VarList{}
		code, err := Dispatch(cfg, cursor, "iter", "value", "return -1;\n", inputs, locals)
		require.NoError(t, err)

		depth := 0
		for _, tok := range strings.Split(code, "\n") {
			if strings.Contains(tok, "open_container") {
				depth++
			}
			if strings.Contains(tok, "close_container") {
				depth--
			}
			require.GreaterOrEqualf(t, depth, 0, "signature %q: close_container before matching open_container", signature)
		}
		assert.Equalf(t, 0, depth, "signature %q: unbalanced open/close container", signature)
	}
}

func TestPropertyDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		signature := randomSignature(r, 3)
		cursor, err := sig.Parse(signature)
		require.NoError(t, err)

		cfg := NewConfig()

		inputsA, localsA := &VarList{}, &VarList{}
		codeA, err := Dispatch(cfg, cursor, "iter", "value", "return -1;\n", inputsA, localsA)
		require.NoError(t, err)

		cursor2, err := sig.Parse(signature)
		require.NoError(t, err)
		inputsB, localsB := &VarList{}, &VarList{}
		codeB, err := Dispatch(cfg, cursor2, "iter", "value", "return -1;\n", inputsB, localsB)
		require.NoError(t, err)

		assert.Equalf(t, codeA, codeB, "signature %q: generation is not deterministic", signature)
		assert.Equal(t, inputsA.Records(), inputsB.Records())
		assert.Equal(t, localsA.Records(), localsB.Records())
	}
}

func TestPropertyOOMBlockInlinedAtEveryFallibleCall(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	oom := "goto fail;\n"
	for i := 0; i < 100; i++ {
		signature := randomSignature(r, 3)
		cursor, err := sig.Parse(signature)
		require.NoError(t, err)

		cfg := NewConfig()
		inputs, locals := &VarList{}, &VarList{}
		code, err := Dispatch(cfg, cursor, "iter", "value", oom, inputs, locals)
		require.NoError(t, err)

		fallible := strings.Count(code, "open_container(") +
			strings.Count(code, "close_container(") +
			strings.Count(code, "append_basic(")
		oomCount := strings.Count(code, "goto fail;")
		assert.Equalf(t, fallible, oomCount, "signature %q: expected one OOM block per fallible call", signature)
	}
}

func TestPropertyIdempotentNestingOfFixedArrays(t *testing.T) {
	cfg := NewConfig()
	cursor, err := sig.Parse("aai")
	require.NoError(t, err)

	inputs, locals := &VarList{}, &VarList{}
	_, err = Dispatch(cfg, cursor, "iter", "foo", "return -1;\n", inputs, locals)
	require.NoError(t, err)

	records := inputs.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "foo", records[0].Name)
	assert.Equal(t, "const int32_t * const * const", records[0].Type)
	assert.Equal(t, "foo_len", records[1].Name)
	assert.Equal(t, "size_t * const", records[1].Type)
}
