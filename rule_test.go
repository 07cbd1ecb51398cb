package conjugation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ruleInput(q Query) *matchInput {
	return &matchInput{query: q, root: MustParseRoot("ك-ت-ب")}
}

func TestResolveRuleFirstMatchWins(t *testing.T) {
	tree := &Rule{
		Symbols: symbols(rad1, rad2, rad3),
		Vowels:  vowels(ShortA, ShortA),
		Children: []*Rule{
			{When: Conditions{Tense: Perfect, Person: Third}, Vowels: vowels(ShortU, ShortI)},
			{When: Conditions{Tense: Perfect}, Vowels: vowels(ShortI, ShortI)},
			{Vowels: vowels(Sukun, ShortU)},
		},
	}

	tests := []struct {
		query string
		want  []Vowel
	}{
		{"perfect 3ms", vowels(ShortU, ShortI)},
		{"perfect 2ms", vowels(ShortI, ShortI)},
		{"indicative 2ms", vowels(Sukun, ShortU)},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res, err := resolveRule(tree, ruleInput(mustQuery(t, tt.query)), nil)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, res.vowels); diff != "" {
				t.Errorf("vowels mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tree.Symbols, res.symbols, "symbols are inherited")
		})
	}
}

func TestResolveRuleInheritance(t *testing.T) {
	tree := &Rule{
		PrefixVowel: ShortU,
		Emphasize:   1,
		Children: []*Rule{{
			When:    Conditions{Moods: []Mood{Indicative}},
			Symbols: symbols(rad2, rad3),
			Children: []*Rule{
				{When: Conditions{Person: First}, Vowels: vowels(ShortA), Emphasize: 2},
				{Vowels: vowels(ShortI)},
			},
		}},
	}

	res, err := resolveRule(tree, ruleInput(mustQuery(t, "indicative 1s")), nil)
	require.NoError(t, err)
	assert.Equal(t, ShortU, res.prefixVowel)
	assert.Equal(t, 2, res.emphasize)
	assert.Equal(t, symbols(rad2, rad3), res.symbols)

	res, err = resolveRule(tree, ruleInput(mustQuery(t, "indicative 3ms")), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.emphasize)
	assert.Equal(t, vowels(ShortI), res.vowels)
}

func TestResolveRuleBase(t *testing.T) {
	sound := &Rule{Symbols: symbols(rad1, rad2, rad3), Vowels: vowels(Sukun, ShortU)}
	lookup := func(c Category) *Rule {
		if c == Sound {
			return sound
		}
		return nil
	}
	tree := &Rule{Children: []*Rule{
		{When: Conditions{Tense: Perfect}, Symbols: symbols(rad2, rad3), Vowels: vowels(ShortA)},
		{Base: Sound, Symbols: symbols(lit(Ta), rad2, rad3), PrefixVowel: LongU},
	}}

	res, err := resolveRule(tree, ruleInput(mustQuery(t, "indicative 3ms")), lookup)
	require.NoError(t, err)
	assert.Equal(t, symbols(lit(Ta), rad2, rad3), res.symbols)
	assert.Equal(t, vowels(Sukun, ShortU), res.vowels)
	assert.Equal(t, LongU, res.prefixVowel)

	_, err = resolveRule(&Rule{Base: Geminate}, ruleInput(mustQuery(t, "perfect 3ms")), lookup)
	assert.ErrorIs(t, err, ErrUnresolvedRule)
}

func TestResolveRuleIncomplete(t *testing.T) {
	tree := &Rule{Symbols: symbols(rad1, rad2, rad3), Children: []*Rule{
		{When: Conditions{Tense: Perfect}, Vowels: vowels(ShortA, ShortA)},
	}}
	_, err := resolveRule(tree, ruleInput(mustQuery(t, "indicative 3ms")), nil)
	assert.ErrorIs(t, err, ErrUnresolvedRule)
}

func TestConditionsMatch(t *testing.T) {
	in := &matchInput{
		query:       mustQuery(t, "jussive 2fs"),
		context:     ContextAU,
		root:        MustParseRoot("و-ص-ل"),
		vowelSuffix: true,
	}

	tests := []struct {
		name string
		cond Conditions
		want bool
	}{
		{"empty", Conditions{}, true},
		{"mood", Conditions{Moods: []Mood{Jussive, Imperative}}, true},
		{"other mood", Conditions{Moods: []Mood{Indicative}}, false},
		{"context", Conditions{Contexts: []Stem1Context{ContextAU, ContextAI}}, true},
		{"other context", Conditions{Contexts: []Stem1Context{ContextAI}}, false},
		{"r1", Conditions{R1: Waw}, true},
		{"r2", Conditions{R2: Waw}, false},
		{"vowel suffix", Conditions{VowelSuffix: ptr(true)}, true},
		{"suffix sukun", Conditions{SuffixSukun: ptr(true)}, false},
		{"final weak", Conditions{FinalWeak: ptr(false)}, true},
		{"all", Conditions{Tense: Present, Voice: Active, Person: Second, Gender: Female, Numerus: Singular}, true},
		{"tense", Conditions{Tense: Perfect}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.match(in))
		})
	}

	perfect := &matchInput{query: mustQuery(t, "perfect 3ms"), root: in.root}
	assert.False(t, (&Conditions{Moods: []Mood{Jussive}}).match(perfect), "moods never match the perfect")
}
