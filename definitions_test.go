package conjugation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		in   string
		want Query
	}{
		{"perfect 3ms", Query{Tense: Perfect, Voice: Active, Person: Third, Gender: Male, Numerus: Singular}},
		{"past 2fp", Query{Tense: Perfect, Voice: Active, Person: Second, Gender: Female, Numerus: Plural}},
		{"present 1s", Query{Tense: Present, Mood: Indicative, Voice: Active, Person: First, Gender: Male, Numerus: Singular}},
		{"Jussive Passive 3FD", Query{Tense: Present, Mood: Jussive, Voice: Passive, Person: Third, Gender: Female, Numerus: Dual}},
		{"imperative 2mp", Query{Tense: Present, Mood: Imperative, Voice: Active, Person: Second, Gender: Male, Numerus: Plural}},
		{"subj 1p", Query{Tense: Present, Mood: Subjunctive, Voice: Active, Person: First, Gender: Male, Numerus: Plural}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := ParseQuery(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
			assert.NoError(t, q.Validate())
		})
	}
}

func TestParseQueryErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"perfect",
		"perfect active 3ms extra",
		"future 3ms",
		"perfect loud 3ms",
		"perfect 4ms",
		"perfect 3xs",
		"perfect 3m",
		"perfect 1ms",
		"perfect 3mq",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseQuery(in)
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

func TestQueryCodeRoundTrip(t *testing.T) {
	for _, q := range tableQueries() {
		t.Run(q.Code(), func(t *testing.T) {
			got, err := ParseQuery(q.Code())
			require.NoError(t, err)
			assert.Equal(t, q, got)
		})
	}
}

func TestQueryCode(t *testing.T) {
	assert.Equal(t, "indicative passive 3fs", Query{Tense: Present, Mood: Indicative, Voice: Passive, Person: Third, Gender: Female, Numerus: Singular}.Code())
	assert.Equal(t, "perfect 1p", Query{Tense: Perfect, Voice: Active, Person: First, Gender: Male, Numerus: Plural}.Code())
	assert.Equal(t, "perfect active third male singular", mustQuery(t, "perfect 3ms").String())
	assert.Equal(t, "present jussive passive second female dual", mustQuery(t, "jussive passive 2fd").String())
}

func TestQueryValidate(t *testing.T) {
	valid := Query{Tense: Perfect, Voice: Active, Person: Third, Gender: Male, Numerus: Singular}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Query)
	}{
		{"tense", func(q *Query) { q.Tense = 0 }},
		{"present without mood", func(q *Query) { q.Tense = Present }},
		{"voice", func(q *Query) { q.Voice = 3 }},
		{"person", func(q *Query) { q.Person = 0 }},
		{"gender", func(q *Query) { q.Gender = 5 }},
		{"numerus", func(q *Query) { q.Numerus = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.mutate(&q)
			assert.ErrorIs(t, q.Validate(), ErrInvalidQuery)
		})
	}
}

func TestParseStem(t *testing.T) {
	tests := []struct {
		in   string
		want Stem
	}{
		{"1", 1},
		{"I", 1},
		{"viii", 8},
		{" 10 ", 10},
		{"X", 10},
	}
	for _, tt := range tests {
		got, err := ParseStem(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, in := range []string{"0", "11", "XI", "form"} {
		_, err := ParseStem(in)
		assert.ErrorIs(t, err, ErrUnsupportedStem, in)
	}
	assert.Equal(t, "VIII", Stem(8).String())
	assert.Equal(t, "Stem(12)", Stem(12).String())
}

func TestEnumParsing(t *testing.T) {
	m, err := ParseMood("subj")
	require.NoError(t, err)
	assert.Equal(t, Subjunctive, m)

	p, err := ParsePerson("2nd")
	require.NoError(t, err)
	assert.Equal(t, Second, p)

	g, err := ParseGender("feminine")
	require.NoError(t, err)
	assert.Equal(t, Female, g)

	n, err := ParseNumerus("pl")
	require.NoError(t, err)
	assert.Equal(t, Plural, n)

	tense, err := ParseTense("pres")
	require.NoError(t, err)
	assert.Equal(t, Present, tense)

	_, err = ParseVoice("middle")
	assert.ErrorIs(t, err, ErrInvalidQuery)
	assert.Equal(t, "Voice(7)", Voice(7).String())
}
