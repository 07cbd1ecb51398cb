package conjugation

import "fmt"

// southLevantineDialect covers the Palestinian and Jordanian varieties.
// Only the stems with a distinct template are conjugated.
type southLevantineDialect struct{}

var southLevantineStems = map[Category]stemSet{
	Defective: stems(4),
	Hollow:    stems(7),
}

func (southLevantineDialect) ID() string         { return "south-levantine" }
func (southLevantineDialect) Name() string       { return "South Levantine Arabic" }
func (southLevantineDialect) ISO639() string     { return "ajp" }
func (southLevantineDialect) Glottocode() string { return "sout3123" }

func (southLevantineDialect) Features() Features { return Features{} }

func (southLevantineDialect) Stem1Contexts(Root) []Stem1Context { return nil }

func (southLevantineDialect) Melody(Stem1Context) (Melody, bool) { return Melody{}, false }

func (southLevantineDialect) HasStem(stem Stem, cat Category) bool {
	return southLevantineStems[cat].has(stem)
}

func (southLevantineDialect) classify(root Root) Category { return root.Category() }
func (southLevantineDialect) templates() *templateSet     { return southLevantineTemplates() }

func (d southLevantineDialect) missingStem(stem Stem, cat Category) error {
	return excludedStem(d, stem, cat)
}

func (southLevantineDialect) suffix(q Query, v *Verb) Suffix {
	return southLevantineSuffix(q, v.finalWeak())
}

func (southLevantineDialect) prefix(in affixInput) []Element { return southLevantinePrefix(in) }
func (southLevantineDialect) vowelSuffix(q Query) bool       { return levantineVowelSuffix(q) }

func (d southLevantineDialect) checkQuery(_ *Verb, q Query) error {
	return checkFeatures(d.Features(), q)
}

func (southLevantineDialect) participle(_ *Conjugator, v *Verb, _ Voice) (Word, error) {
	return Word{}, fmt.Errorf("%w: South Levantine participle of %s", ErrNotImplemented, v.root)
}

func (southLevantineDialect) verbalNouns(*Verb) ([]string, error) {
	return nil, fmt.Errorf("%w: South Levantine verbal nouns", ErrNotImplemented)
}
