package conjugation

import "fmt"

type lebaneseDialect struct{}

var lebaneseContexts = map[Category][]Stem1Context{
	Sound:         {ContextAA, ContextAU, ContextAU2, ContextIA, ContextIU},
	HamzaOnR1:     {ContextAU},
	Assimilated:   {ContextAI, ContextIA, ContextII},
	Hollow:        {ContextIA, ContextII, ContextIU},
	Geminate:      {ContextAI, ContextAU},
	Defective:     {ContextAA, ContextAI, ContextIA, ContextII},
	DoublyWeak:    {ContextAA, ContextAI, ContextIA, ContextII},
	Quadriliteral: {ContextQuad},
}

var lebaneseStems = map[Category]stemSet{
	Sound:         allStems,
	HamzaOnR1:     allStems,
	Assimilated:   allStems,
	Hollow:        stems(1, 8),
	Geminate:      stems(1),
	Defective:     stems(1, 2, 3, 5, 6),
	DoublyWeak:    stems(1),
	Quadriliteral: stems(1),
}

var rootJy2 = MustParseRoot("ج-ي-ء")

func (lebaneseDialect) ID() string         { return "lebanese" }
func (lebaneseDialect) Name() string       { return "Lebanese Arabic" }
func (lebaneseDialect) ISO639() string     { return "apc" }
func (lebaneseDialect) Glottocode() string { return "stan1323" }

func (lebaneseDialect) Features() Features { return Features{} }

func (d lebaneseDialect) Stem1Contexts(root Root) []Stem1Context {
	if root == rootJy2 {
		return []Stem1Context{ContextIrjy2}
	}
	return append([]Stem1Context(nil), lebaneseContexts[d.classify(root)]...)
}

func (lebaneseDialect) Melody(ctx Stem1Context) (Melody, bool) {
	return melodyIn(lebaneseContexts, []Stem1Context{ContextIrjy2}, ctx)
}

func (lebaneseDialect) HasStem(stem Stem, cat Category) bool { return lebaneseStems[cat].has(stem) }

// classify treats a final hamza as a weak radical: قِرِي, بْيِقْرَا.
func (lebaneseDialect) classify(root Root) Category {
	cat := root.Category()
	if cat == Sound && root.Len() == 3 && root.R(3) == Hamza {
		return Defective
	}
	return cat
}

func (lebaneseDialect) templates() *templateSet { return lebaneseTemplates() }

func (d lebaneseDialect) missingStem(stem Stem, cat Category) error { return excludedStem(d, stem, cat) }

func (lebaneseDialect) suffix(q Query, v *Verb) Suffix {
	return lebaneseSuffix(q, v.finalWeak())
}

func (lebaneseDialect) prefix(in affixInput) []Element { return lebanesePrefix(in) }
func (lebaneseDialect) vowelSuffix(q Query) bool       { return levantineVowelSuffix(q) }

func (d lebaneseDialect) checkQuery(v *Verb, q Query) error {
	if err := checkFeatures(d.Features(), q); err != nil {
		return err
	}
	if v.context == ContextIrjy2 && q.Tense == Present && q.Mood == Imperative {
		return fmt.Errorf("%w: imperative of %s", ErrNotImplemented, v.root)
	}
	return nil
}

func (lebaneseDialect) participle(c *Conjugator, v *Verb, voice Voice) (Word, error) {
	return lebaneseParticiple(c, v, voice)
}

func (lebaneseDialect) verbalNouns(v *Verb) ([]string, error) {
	return nil, fmt.Errorf("%w: Lebanese verbal nouns", ErrNotImplemented)
}
