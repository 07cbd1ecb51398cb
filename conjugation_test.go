package conjugation

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertForm compares got with the vocalized text want, ignoring the order
// of stacked marks and the invisible marks.
func assertForm(t *testing.T, want string, got []DisplayVocalized) {
	t.Helper()
	if diff := cmp.Diff(Render(ParseVocalized(want)), Render(got)); diff != "" {
		t.Errorf("form mismatch (-want +got):\n%s", diff)
	}
}

func mustVerb(t *testing.T, d Dialect, root string, stem Stem, ctx Stem1Context) *Verb {
	t.Helper()
	v, err := NewVerb(d, MustParseRoot(root), stem, ctx)
	require.NoError(t, err)
	return v
}

func mustQuery(t *testing.T, s string) Query {
	t.Helper()
	q, err := ParseQuery(s)
	require.NoError(t, err)
	return q
}

func TestConjugateCatalog(t *testing.T) {
	c := New()
	entries, err := Catalog()
	require.NoError(t, err)

	for _, e := range entries {
		if len(e.Forms) == 0 {
			continue
		}
		t.Run(e.Name(), func(t *testing.T) {
			v, err := e.Verb()
			require.NoError(t, err)
			for _, f := range e.Forms {
				got, err := c.Conjugate(v, f.Query)
				if !assert.NoError(t, err, f.Query.Code()) {
					continue
				}
				t.Run(f.Query.Code(), func(t *testing.T) {
					assertForm(t, f.Expected, got)
				})
			}
		})
	}
}

func TestConjugateSoundVerb(t *testing.T) {
	c := New()
	v := mustVerb(t, MSA, "ك-ت-ب", 1, ContextAU)

	tests := []struct {
		query string
		want  string
	}{
		{"perfect 3ms", "كَتَبَ"},
		{"indicative 1p", "نَكْتُبُ"},
		{"perfect passive 3ms", "كُتِبَ"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := c.Conjugate(v, mustQuery(t, tt.query))
			require.NoError(t, err)
			assertForm(t, tt.want, got)
		})
	}
}

func TestConjugateHollow(t *testing.T) {
	c := New()
	v := mustVerb(t, MSA, "خ-و-ف", 1, ContextIA)

	got, err := c.Conjugate(v, mustQuery(t, "perfect 2ms"))
	require.NoError(t, err)
	assertForm(t, "خِفْتَ", got)

	got, err = c.Conjugate(v, mustQuery(t, "perfect 3ms"))
	require.NoError(t, err)
	assertForm(t, "خَافَ", got)
}

// Roots with two weak radicals, hamza next to a weak radical, and the
// rarer Stem-I melodies.
func TestConjugateWeakRoots(t *testing.T) {
	c := New()

	tests := []struct {
		root  string
		stem  Stem
		ctx   Stem1Context
		query string
		want  string
	}{
		{"ر-و-ي", 1, ContextDefective1, "perfect 3mp", "رَوَوْا"},
		{"ر-و-ي", 1, ContextDefective1, "indicative 3ms", "يَرْوِي"},
		{"ر-و-ي", 1, ContextDefective1, "perfect passive 2ms", "رُوِيتَ"},
		{"ر-و-ي", 1, ContextDefective1, "indicative passive 3ms", "يُرْوَى"},
		{"ق-و-ي", 1, ContextDefective3, "perfect 3ms", "قَوِيَ"},
		{"ق-و-ي", 1, ContextDefective3, "indicative 3ms", "يَقْوَى"},
		{"ح-ي-و", 4, "", "perfect 3ms", "أَحْيَا"},
		{"ح-ي-و", 4, "", "perfect 2ms", "أَحْيَيْتَ"},
		{"ح-ي-و", 4, "", "indicative 3mp", "يُحْيُونَ"},
		{"ح-ي-و", 4, "", "indicative passive 3ms", "يُحْيَا"},
		{"ء-م-ن", 1, ContextIA, "indicative 1s", "آمَنُ"},
		{"ء-م-ن", 1, ContextIA, "indicative passive 1s", "أُومَنُ"},
		{"ء-م-ن", 4, "", "perfect passive 3ms", "أُومِنَ"},
		{"و-ص-ي", 4, "", "perfect 3ms", "أَوْصَى"},
		{"و-ص-ي", 4, "", "indicative 3ms", "يُوصِي"},
		{"و-ص-ي", 4, "", "imperative 2ms", "أَوْصِ"},
		{"و-ص-ي", 4, "", "indicative passive 3ms", "يُوصَى"},
		{"و-ف-ي", 1, ContextDefective1, "indicative 3ms", "يَفِي"},
		{"و-ف-ي", 1, ContextDefective1, "imperative 2ms", "فِ"},
		{"و-ف-ي", 1, ContextDefective1, "indicative passive 3ms", "يُوفَى"},
		{"و-ف-ي", 2, "", "perfect 3ms", "وَفَّى"},
		{"و-ف-ي", 2, "", "indicative 3ms", "يُوَفِّي"},
		{"و-ق-ي", 8, "", "perfect 3ms", "اِتَّقَى"},
		{"و-ق-ي", 8, "", "indicative 3ms", "يَتَّقِي"},
		{"ر-ء-ي", 1, ContextDefective1, "perfect 3ms", "رَأَى"},
		{"ر-ء-ي", 1, ContextDefective1, "indicative 3mp", "يَرَوْنَ"},
		{"ر-ء-ي", 1, ContextDefective1, "imperative 2ms", "رَ"},
		{"ر-ء-ي", 1, ContextDefective1, "perfect passive 3ms", "رُئِيَ"},
		{"ر-ء-ي", 4, "", "perfect 3ms", "أَرَى"},
		{"ر-ء-ي", 4, "", "indicative 2fs", "تُرِينَ"},
		{"ر-ء-ي", 4, "", "imperative 2ms", "أَرِ"},
		{"ر-ء-ي", 4, "", "indicative passive 3ms", "يُرَى"},
		{"و-س-ع", 1, ContextIA, "indicative 3ms", "يَسَعُ"},
		{"و-س-ع", 1, ContextIA, "imperative 2ms", "سَعْ"},
		{"ي-س-ر", 1, ContextUU, "indicative 3ms", "يَيْسُرُ"},
		{"ي-س-ر", 1, ContextUU, "imperative 2ms", "اُوسُرْ"},
		{"ر-د-د", 4, "", "perfect 1s", "أَرْدَدْتُ"},
		{"ر-د-د", 10, "", "perfect 3ms", "اِسْتَرَدَّ"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s/%s", tt.root, tt.stem, tt.query), func(t *testing.T) {
			got, err := c.Conjugate(mustVerb(t, MSA, tt.root, tt.stem, tt.ctx), mustQuery(t, tt.query))
			require.NoError(t, err)
			assertForm(t, tt.want, got)
		})
	}
}

func TestConjugateErrors(t *testing.T) {
	c := New()
	msa := mustVerb(t, MSA, "ك-ت-ب", 1, ContextAU)
	leb := mustVerb(t, Lebanese, "ر-ب-ط", 1, ContextAU)
	jy2 := mustVerb(t, Lebanese, "ج-ي-ء", 1, ContextIrjy2)
	laysa := mustVerb(t, MSA, "ل-ي-س", 1, ContextLaysa)

	tests := []struct {
		name  string
		verb  *Verb
		query Query
		want  error
	}{
		{"missing tense", msa, Query{Voice: Active, Person: Third, Gender: Male, Numerus: Singular}, ErrInvalidQuery},
		{"missing mood", msa, Query{Tense: Present, Voice: Active, Person: Third, Gender: Male, Numerus: Singular}, ErrInvalidQuery},
		{"passive imperative", msa, mustQuery(t, "imperative passive 2ms"), ErrUnsupportedFeature},
		{"imperative 3rd person", msa, mustQuery(t, "imperative 3ms"), ErrUnsupportedFeature},
		{"first person dual", msa, mustQuery(t, "perfect 1d"), ErrUnsupportedFeature},
		{"lebanese dual", leb, mustQuery(t, "perfect 3md"), ErrUnsupportedFeature},
		{"lebanese feminine plural", leb, mustQuery(t, "perfect 3fp"), ErrUnsupportedFeature},
		{"lebanese jussive", leb, mustQuery(t, "jussive 3ms"), ErrUnsupportedFeature},
		{"lebanese passive", leb, mustQuery(t, "perfect passive 3ms"), ErrUnsupportedFeature},
		{"ija imperative", jy2, mustQuery(t, "imperative 2ms"), ErrNotImplemented},
		{"laysa present", laysa, mustQuery(t, "indicative 3ms"), ErrUnsupportedFeature},
		{"nil verb", nil, mustQuery(t, "perfect 3ms"), ErrInvalidQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Conjugate(tt.verb, tt.query)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestLebaneseFirstPersonPluralIgnoresGender(t *testing.T) {
	c := New()
	v := mustVerb(t, Lebanese, "ر-ب-ط", 1, ContextAU)
	q := mustQuery(t, "perfect 1p")
	q.Gender = Female

	got, err := c.Conjugate(v, q)
	require.NoError(t, err)
	assertForm(t, "رَبَطْنَا", got)
}

func TestLebaneseEmphasis(t *testing.T) {
	c := New()
	v := mustVerb(t, Lebanese, "ر-ب-ط", 1, ContextAU)

	got, err := c.Conjugate(v, mustQuery(t, "perfect 3ms"))
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.True(t, got[0].Emphasis, "stress on the first consonant in the 3rd person")

	got, err = c.Conjugate(v, mustQuery(t, "perfect 1s"))
	require.NoError(t, err)
	require.Greater(t, len(got), 1)
	assert.False(t, got[0].Emphasis)
	assert.True(t, got[1].Emphasis)
}

// Every legal query of every catalog verb resolves to a form or to an
// attested gap; none hits a template defect.
func TestResolutionTotality(t *testing.T) {
	c := New()
	entries, err := Catalog()
	require.NoError(t, err)

	for _, e := range entries {
		t.Run(e.Name(), func(t *testing.T) {
			v, err := e.Verb()
			require.NoError(t, err)
			table, err := c.ConjugationTable(v)
			require.NoError(t, err)
			assert.NotEmpty(t, table.Cells)
			for _, cell := range table.Cells {
				if cell.Err == nil {
					assert.NotEmpty(t, cell.Form, cell.Query.Code())
				}
			}
		})
	}
}

func TestConjugatorConcurrentUse(t *testing.T) {
	c := New()
	v := mustVerb(t, MSA, "ق-و-ل", 1, ContextUU)
	q := mustQuery(t, "indicative 3ms")
	want, err := c.Conjugate(v, q)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Conjugate(v, q)
			if err != nil {
				errs <- err
				return
			}
			if Render(got) != Render(want) {
				errs <- fmt.Errorf("got %s, want %s", Render(got), Render(want))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestConjugationTable(t *testing.T) {
	c := New()

	t.Run("msa", func(t *testing.T) {
		t.Parallel()
		table, err := c.ConjugationTable(mustVerb(t, MSA, "ك-ت-ب", 1, ContextAU))
		require.NoError(t, err)

		cell, ok := table.Lookup(mustQuery(t, "jussive 3fp"))
		require.True(t, ok)
		assertForm(t, "يَكْتُبْنَ", cell.Form)

		_, ok = table.Lookup(mustQuery(t, "perfect 1d"))
		assert.False(t, ok, "no 1st person dual")
		_, ok = table.Lookup(mustQuery(t, "imperative passive 2ms"))
		assert.False(t, ok, "no passive imperative")
	})

	t.Run("lebanese", func(t *testing.T) {
		t.Parallel()
		table, err := c.ConjugationTable(mustVerb(t, Lebanese, "ر-ب-ط", 1, ContextAU))
		require.NoError(t, err)
		for _, cell := range table.Cells {
			assert.NotEqual(t, Dual, cell.Query.Numerus)
			assert.NotEqual(t, Passive, cell.Query.Voice)
			assert.NotEqual(t, Jussive, cell.Query.Mood)
		}
		// 3rd, 2nd and 1st person in the perfect: 5 singular and 3 plural
		var perfect int
		for _, cell := range table.Cells {
			if cell.Query.Tense == Perfect {
				perfect++
			}
		}
		assert.Equal(t, 8, perfect)
	})

	t.Run("gaps are kept", func(t *testing.T) {
		t.Parallel()
		table, err := c.ConjugationTable(mustVerb(t, Lebanese, "ج-ي-ء", 1, ContextIrjy2))
		require.NoError(t, err)
		cell, ok := table.Lookup(mustQuery(t, "imperative 2ms"))
		require.True(t, ok)
		assert.ErrorIs(t, cell.Err, ErrNotImplemented)
	})
}
