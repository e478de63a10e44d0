package syms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemangleType(t *testing.T) {
	const mangled = "_ZN3foo3barEi"
	testcases := []struct {
		typ    DemangleType
		expect string
	}{
		{DemangleNone, mangled},
		{DemangleFull, "foo::bar(int)"},
		{DemangleSimplified, "foo::bar"},
		{DemangleTemplates, "foo::bar"},
	}
	for _, tt := range testcases {
		assert.Equal(t, tt.expect, tt.typ.Demangle(mangled), "demangle type %s", tt.typ)
	}
	assert.Equal(t, "plain_name", DemangleFull.Demangle("plain_name"))
}

func TestParseDemangleType(t *testing.T) {
	dt, err := ParseDemangleType(" full ")
	require.NoError(t, err)
	assert.Equal(t, DemangleFull, dt)

	dt, err = ParseDemangleType("")
	require.NoError(t, err)
	assert.Equal(t, DemangleNone, dt)

	_, err = ParseDemangleType("fancy")
	assert.Error(t, err)
}

func TestSymbol_String(t *testing.T) {
	assert.Equal(t, "main - 0x401000", Symbol{Name: "main", Addr: 0x401000}.String())
}
