package conjugation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipleCatalog(t *testing.T) {
	c := New()
	entries, err := Catalog()
	require.NoError(t, err)

	for _, e := range entries {
		if e.ActiveParticiple == "" && e.PassiveParticiple == "" {
			continue
		}
		t.Run(e.Name(), func(t *testing.T) {
			v, err := e.Verb()
			require.NoError(t, err)
			for voice, want := range map[Voice]string{Active: e.ActiveParticiple, Passive: e.PassiveParticiple} {
				if want == "" {
					continue
				}
				got, err := c.ConjugateParticiple(v, voice)
				require.NoError(t, err, voice.String())
				assertForm(t, want, got)
			}
		})
	}
}

func TestParticiple(t *testing.T) {
	c := New()

	tests := []struct {
		name  string
		verb  *Verb
		voice Voice
		want  string
	}{
		{"hollow with final hamza", mustVerb(t, MSA, "ج-ي-ء", 1, ContextII), Active, "جَاءٍ"},
		{"hayiya", mustVerb(t, MSA, "ح-ي-ي", 1, ContextHayiya), Active, "حَيّ"},
		{"assimilated stem 4", mustVerb(t, MSA, "و-ص-ل", 4, ""), Active, "مُوصِل"},
		{"defective stem 10 passive", mustVerb(t, MSA, "ش-ف-ي", 10, ""), Passive, "مُسْتَشْفًى"},
		{"defective stem 8 active", mustVerb(t, MSA, "ش-ر-ي", 8, ""), Active, "مُشْتَرٍ"},
		{"ح-ي-ي stem 4 active", mustVerb(t, MSA, "ح-ي-ي", 4, ""), Active, "مُحْيٍ"},
		{"ح-ي-ي stem 4 passive", mustVerb(t, MSA, "ح-ي-ي", 4, ""), Passive, "مُحْيًى"},
		{"ح-ي-و stem 4 active", mustVerb(t, MSA, "ح-ي-و", 4, ""), Active, "مُحْيٍ"},
		{"ر-ء-ي stem 4 active", mustVerb(t, MSA, "ر-ء-ي", 4, ""), Active, "مُرٍ"},
		{"ر-ء-ي stem 4 passive", mustVerb(t, MSA, "ر-ء-ي", 4, ""), Passive, "مُرًى"},
		{"doubly weak stem 4", mustVerb(t, MSA, "و-ص-ي", 4, ""), Active, "مُوصٍ"},
		{"lebanese sound", mustVerb(t, Lebanese, "ر-ب-ط", 1, ContextAU), Active, "رَابِط"},
		{"lebanese hollow", mustVerb(t, Lebanese, "ر-و-ح", 1, ContextIU), Active, "رَايِح"},
		{"lebanese defective", mustVerb(t, Lebanese, "ر-م-ي", 1, ContextAI), Active, "رَامِي"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ConjugateParticiple(tt.verb, tt.voice)
			require.NoError(t, err)
			assertForm(t, tt.want, got)
		})
	}
}

func TestParticipleErrors(t *testing.T) {
	c := New()

	tests := []struct {
		name  string
		verb  *Verb
		voice Voice
		want  error
	}{
		{"nil verb", nil, Active, ErrInvalidQuery},
		{"no voice", mustVerb(t, MSA, "ك-ت-ب", 1, ContextAU), 0, ErrInvalidQuery},
		{"lebanese passive", mustVerb(t, Lebanese, "ر-ب-ط", 1, ContextAU), Passive, ErrUnsupportedFeature},
		{"laysa", mustVerb(t, MSA, "ل-ي-س", 1, ContextLaysa), Active, ErrNotImplemented},
		{"hayiya passive", mustVerb(t, MSA, "ح-ي-ي", 1, ContextHayiya), Passive, ErrNotImplemented},
		{"south levantine", mustVerb(t, SouthLevantine, "ع-د-و", 4, ""), Active, ErrNotImplemented},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ConjugateParticiple(tt.verb, tt.voice)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
