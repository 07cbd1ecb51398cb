package conjugation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCategory(t *testing.T) {
	tests := []struct {
		root string
		want Category
	}{
		{"ك-ت-ب", Sound},
		{"و-ص-ل", Assimilated},
		{"ي-س-ر", Assimilated},
		{"ق-و-ل", Hollow},
		{"ب-ي-ع", Hollow},
		{"ر-م-ي", Defective},
		{"د-ع-و", Defective},
		{"و-ف-ي", DoublyWeak},
		{"ر-و-ي", Defective},
		{"ق-و-ي", Defective},
		{"ح-ي-و", Defective},
		{"ر-د-د", Geminate},
		{"ح-ي-ي", Geminate},
		{"ء-ك-ل", HamzaOnR1},
		{"ق-ر-ء", Sound},
		{"د-ح-ر-ج", Quadriliteral},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.root, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MustParseRoot(tt.root).Category())
		})
	}
}

func TestParseRoot(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ك-ت-ب", "ك-ت-ب"},
		{"ك ت ب", "ك-ت-ب"},
		{"كتب", "ك-ت-ب"},
		{" كَتَبَ ", "ك-ت-ب"},
		{"أ-ك-ل", "ء-ك-ل"},
		{"ق-ر-أ", "ق-ر-ء"},
		{"ر-م-ى", "ر-م-ي"},
		{"دحرج", "د-ح-ر-ج"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseRoot(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
		})
	}

	for _, in := range []string{"", "كت", "كتبته", "ك-ت-x"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseRoot(in)
			assert.ErrorIs(t, err, ErrInvalidRoot)
		})
	}
}

func TestRootAccessors(t *testing.T) {
	r := MustParseRoot("د-ح-ر-ج")
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, Dal, r.R(1))
	assert.Equal(t, Jiim, r.R(4))
	assert.Equal(t, Letter(0), r.R(5))
	assert.Equal(t, Letter(0), r.R(0))
	assert.True(t, r.Equals(Dal, Hha, Ra, Jiim))
	assert.False(t, r.Equals(Dal, Hha, Ra))

	rads := r.Radicals()
	rads[0] = Kaf
	assert.Equal(t, Dal, r.R(1), "Radicals returns a copy")

	assert.Panics(t, func() { MustParseRoot("ك") })
}
