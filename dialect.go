package conjugation

import (
	"fmt"
	"strings"
)

// Features lists the grammatical categories a dialect distinguishes.
type Features struct {
	Dual         bool `json:"dual" yaml:"dual"`
	FemalePlural bool `json:"female_plural" yaml:"female_plural"`
	Jussive      bool `json:"jussive" yaml:"jussive"`
	Passive      bool `json:"passive" yaml:"passive"`
}

// Dialect describes one variety of Arabic: its metadata, the Stem-I
// melodies it allows and the tables the engine conjugates with. A Verb
// captures its dialect once, at construction.
type Dialect interface {
	// ID is the short name used on the command line and in the API.
	ID() string
	Name() string
	// ISO639 is the ISO 639-3 language code.
	ISO639() string
	Glottocode() string
	Features() Features
	// Stem1Contexts lists the Stem-I contexts legal for root, in the
	// dialect's preferred order.
	Stem1Contexts(root Root) []Stem1Context
	Melody(ctx Stem1Context) (Melody, bool)
	// HasStem reports whether the dialect builds stem for roots of the
	// category.
	HasStem(stem Stem, cat Category) bool

	classify(root Root) Category
	// missingStem explains why HasStem is false for stem and cat.
	missingStem(stem Stem, cat Category) error
	templates() *templateSet
	suffix(q Query, v *Verb) Suffix
	prefix(in affixInput) []Element
	vowelSuffix(q Query) bool
	checkQuery(v *Verb, q Query) error
	participle(c *Conjugator, v *Verb, voice Voice) (Word, error)
	verbalNouns(v *Verb) ([]string, error)
}

// The dialects the engine knows.
var (
	MSA            Dialect = msaDialect{}
	Lebanese       Dialect = lebaneseDialect{}
	SouthLevantine Dialect = southLevantineDialect{}
)

// Dialects returns every dialect, MSA first.
func Dialects() []Dialect {
	return []Dialect{MSA, Lebanese, SouthLevantine}
}

// LookupDialect finds a dialect by ID, name, ISO 639-3 code or
// Glottocode, ignoring case.
func LookupDialect(s string) (Dialect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Dialects() {
		if s == d.ID() || s == strings.ToLower(d.Name()) || s == d.ISO639() || s == d.Glottocode() {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

// melodies holds the vowel pairs of the context tags. The same tag means
// the same melody in every dialect.
var melodies = map[Stem1Context]Melody{
	ContextAA:         {ShortA, ShortA},
	ContextAI:         {ShortA, ShortI},
	ContextAU:         {ShortA, ShortU},
	ContextAU2:        {ShortA, ShortU},
	ContextIA:         {ShortI, ShortA},
	ContextII:         {ShortI, ShortI},
	ContextIU:         {ShortI, ShortU},
	ContextUU:         {ShortU, ShortU},
	ContextDefective1: {ShortA, ShortI},
	ContextDefective2: {ShortA, ShortU},
	ContextDefective3: {ShortI, ShortA},
	ContextQuad:       {ShortA, ShortI},
	ContextHayiya:     {ShortI, ShortA},
	ContextLaysa:      {ShortA, ShortA},
	ContextIrjy2:      {ShortI, ShortI},
}

// melodyIn looks ctx up, restricted to the contexts a dialect lists.
func melodyIn(allowed map[Category][]Stem1Context, extra []Stem1Context, ctx Stem1Context) (Melody, bool) {
	for _, set := range allowed {
		if contains(set, ctx) {
			m, ok := melodies[ctx]
			return m, ok
		}
	}
	if contains(extra, ctx) {
		m, ok := melodies[ctx]
		return m, ok
	}
	return Melody{}, false
}

// stemSet is a set of stems written as a bit mask.
type stemSet uint16

func stems(s ...Stem) stemSet {
	var set stemSet
	for _, st := range s {
		set |= 1 << st
	}
	return set
}

func (s stemSet) has(st Stem) bool { return st >= 1 && st <= 10 && s&(1<<st) != 0 }

// allStems is stems I to X.
var allStems = stems(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

// excludedStem is the missingStem of a dialect whose stem sets list
// everything it has.
func excludedStem(d Dialect, stem Stem, cat Category) error {
	return fmt.Errorf("%w: %s has no stem %s for %s roots", ErrUnsupportedStem, d.Name(), stem, cat)
}

// checkFeatures rejects the categories a dialect does not distinguish and
// the combinations no dialect has.
func checkFeatures(f Features, q Query) error {
	switch {
	case !f.Dual && q.Numerus == Dual:
		return fmt.Errorf("%w: dual", ErrUnsupportedFeature)
	case !f.FemalePlural && q.Numerus == Plural && q.Gender == Female && q.Person != First:
		return fmt.Errorf("%w: feminine plural", ErrUnsupportedFeature)
	case !f.Passive && q.Voice == Passive:
		return fmt.Errorf("%w: passive", ErrUnsupportedFeature)
	}
	if q.Tense != Present {
		return nil
	}
	switch {
	case !f.Jussive && q.Mood == Jussive:
		return fmt.Errorf("%w: jussive", ErrUnsupportedFeature)
	case q.Mood == Imperative && q.Voice == Passive:
		return fmt.Errorf("%w: passive imperative", ErrUnsupportedFeature)
	case q.Mood == Imperative && q.Person != Second:
		return fmt.Errorf("%w: imperative in the %s person", ErrUnsupportedFeature, q.Person)
	}
	return nil
}
