package conjugation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerb(t *testing.T) {
	v, err := NewVerb(MSA, MustParseRoot("ك-ت-ب"), 1, ContextAU)
	require.NoError(t, err)
	assert.Equal(t, Sound, v.Category())
	assert.Equal(t, Stem(1), v.Stem())
	assert.Equal(t, ContextAU, v.Context())
	assert.Equal(t, "msa", v.Dialect().ID())
	assert.Equal(t, Melody{ShortA, ShortU}, v.Melody())
	assert.Equal(t, "msa ك-ت-ب I (au)", v.String())

	v, err = NewVerb(MSA, MustParseRoot("ر-م-ي"), 10, "")
	require.NoError(t, err)
	assert.Equal(t, Melody{ShortA, ShortI}, v.Melody())
	assert.Equal(t, "msa ر-م-ي X", v.String())
}

func TestNewVerbPicksOnlyContext(t *testing.T) {
	v, err := NewVerb(MSA, MustParseRoot("د-ح-ر-ج"), 1, "")
	require.NoError(t, err)
	assert.Equal(t, ContextQuad, v.Context())

	_, err = NewVerb(MSA, MustParseRoot("ك-ت-ب"), 1, "")
	assert.ErrorIs(t, err, ErrIllegalStem1Context, "several contexts, none chosen")
}

func TestNewVerbErrors(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		root    Root
		stem    Stem
		ctx     Stem1Context
		want    error
	}{
		{"no dialect", nil, MustParseRoot("ك-ت-ب"), 1, ContextAU, ErrUnknownDialect},
		{"empty root", MSA, Root{}, 1, ContextAU, ErrInvalidRoot},
		{"stem 0", MSA, MustParseRoot("ك-ت-ب"), 0, "", ErrUnsupportedStem},
		{"stem 11", MSA, MustParseRoot("ك-ت-ب"), 11, "", ErrUnsupportedStem},
		{"quad stem 3", MSA, MustParseRoot("د-ح-ر-ج"), 3, "", ErrUnsupportedStem},
		{"hollow stem 9", MSA, MustParseRoot("ق-و-ل"), 9, "", ErrNotImplemented},
		{"geminate stem 6", MSA, MustParseRoot("ر-د-د"), 6, "", ErrNotImplemented},
		{"geminate stem 7", MSA, MustParseRoot("ر-د-د"), 7, "", ErrNotImplemented},
		{"doubly weak stem 9", MSA, MustParseRoot("و-ف-ي"), 9, "", ErrNotImplemented},
		{"lebanese defective stem 4", Lebanese, MustParseRoot("ر-م-ي"), 4, "", ErrUnsupportedStem},
		{"south levantine stem 1", SouthLevantine, MustParseRoot("ع-د-و"), 1, "", ErrUnsupportedStem},
		{"context on derived stem", MSA, MustParseRoot("ك-ت-ب"), 2, ContextAU, ErrIllegalStem1Context},
		{"wrong melody", MSA, MustParseRoot("ر-م-ي"), 1, ContextAU, ErrIllegalStem1Context},
		{"lebanese context in msa", MSA, MustParseRoot("ك-ت-ب"), 1, ContextAU2, ErrIllegalStem1Context},
		{"msa context in lebanese", Lebanese, MustParseRoot("ك-ت-ب"), 1, ContextUU, ErrIllegalStem1Context},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVerb(tt.dialect, tt.root, tt.stem, tt.ctx)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Panics(t, func() { MustNewVerb(MSA, MustParseRoot("ك-ت-ب"), 1, ContextIrjy2) })
}

func TestVerbRadical(t *testing.T) {
	perfect := mustQuery(t, "perfect 3ms")
	passive := mustQuery(t, "perfect passive 3ms")

	dua := mustVerb(t, MSA, "د-ع-و", 1, ContextDefective2)
	assert.Equal(t, Waw, dua.radical(3, perfect))
	assert.Equal(t, Ya, dua.radical(3, passive))

	dua10 := mustVerb(t, MSA, "د-ع-و", 10, "")
	assert.Equal(t, Ya, dua10.radical(3, perfect))

	qara := mustVerb(t, Lebanese, "ق-ر-ء", 1, ContextAA)
	assert.Equal(t, Ya, qara.radical(3, perfect))
	assert.Equal(t, Defective, qara.Category())

	kataba := mustVerb(t, MSA, "ك-ت-ب", 8, "")
	assert.Equal(t, Ta, kataba.letter(infix, perfect))
	darb := mustVerb(t, MSA, "ض-ر-ب", 8, "")
	assert.Equal(t, Tta, darb.letter(infix, perfect))
	assert.Equal(t, Siin, darb.letter(lit(Siin), perfect))
}
