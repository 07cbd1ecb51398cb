package conjugation

import "fmt"

type msaDialect struct{}

var msaContexts = map[Category][]Stem1Context{
	Sound:         {ContextAA, ContextAI, ContextAU, ContextIA, ContextII, ContextUU},
	Assimilated:   {ContextAA, ContextAI, ContextIA, ContextII, ContextUU},
	HamzaOnR1:     {ContextAI, ContextAU, ContextIA, ContextUU},
	Defective:     {ContextDefective1, ContextDefective2, ContextDefective3},
	Geminate:      {ContextAU, ContextAI, ContextAA, ContextIA},
	DoublyWeak:    {ContextDefective1},
	Quadriliteral: {ContextQuad},
}

var msaStems = map[Category]stemSet{
	Sound:         allStems,
	Assimilated:   allStems,
	HamzaOnR1:     allStems,
	Hollow:        stems(1, 2, 3, 4, 5, 6, 7, 8, 10),
	Geminate:      stems(1, 2, 3, 4, 5, 8, 10),
	Defective:     stems(1, 2, 3, 4, 5, 6, 7, 8, 10),
	DoublyWeak:    stems(1, 2, 3, 4, 5, 6, 7, 8, 10),
	Quadriliteral: stems(1, 2, 4),
}

var (
	rootHayiya = MustParseRoot("ح-ي-ي")
	rootLaysa  = MustParseRoot("ل-ي-س")
	rootRaa    = MustParseRoot("ر-ء-ي")
)

func (msaDialect) ID() string         { return "msa" }
func (msaDialect) Name() string       { return "Modern Standard Arabic" }
func (msaDialect) ISO639() string     { return "arb" }
func (msaDialect) Glottocode() string { return "stan1318" }

func (msaDialect) Features() Features {
	return Features{Dual: true, FemalePlural: true, Jussive: true, Passive: true}
}

func (msaDialect) Stem1Contexts(root Root) []Stem1Context {
	switch {
	case root == rootHayiya:
		return []Stem1Context{ContextHayiya}
	case root == rootLaysa:
		return []Stem1Context{ContextLaysa}
	case root == rootRaa:
		return []Stem1Context{ContextDefective1}
	}
	cat := root.Category()
	if cat == Hollow {
		// قَالَ يَقُولُ, بَاعَ يَبِيعُ; خَافَ يَخَافُ for either
		if root.R(2) == Waw {
			return []Stem1Context{ContextUU, ContextIA}
		}
		return []Stem1Context{ContextII, ContextIA}
	}
	return append([]Stem1Context(nil), msaContexts[cat]...)
}

func (msaDialect) Melody(ctx Stem1Context) (Melody, bool) {
	return melodyIn(msaContexts, []Stem1Context{ContextUU, ContextII, ContextIA, ContextHayiya, ContextLaysa}, ctx)
}

func (msaDialect) HasStem(stem Stem, cat Category) bool { return msaStems[cat].has(stem) }

func (msaDialect) classify(root Root) Category { return root.Category() }

// missingStem: every triliteral category has all ten stems in MSA, so a
// stem without a template is a gap in the sources (اِسْوَدَّ, تَرَادَّ).
func (d msaDialect) missingStem(stem Stem, cat Category) error {
	if cat == Quadriliteral {
		return excludedStem(d, stem, cat)
	}
	return fmt.Errorf("%w: no attested %s stem %s template", ErrNotImplemented, cat, stem)
}

func (msaDialect) templates() *templateSet     { return msaTemplates() }
func (msaDialect) suffix(q Query, _ *Verb) Suffix {
	return msaSuffix(q)
}
func (msaDialect) prefix(in affixInput) []Element { return msaPrefix(in) }
func (msaDialect) vowelSuffix(q Query) bool       { return takesVowelSuffix(q) }

func (d msaDialect) checkQuery(v *Verb, q Query) error {
	if err := checkFeatures(d.Features(), q); err != nil {
		return err
	}
	if q.Numerus == Dual && q.Person == First {
		return fmt.Errorf("%w: first person dual", ErrUnsupportedFeature)
	}
	switch v.context {
	case ContextLaysa:
		if q.Tense != Perfect || q.Voice != Active {
			return fmt.Errorf("%w: لَيْسَ has only the active perfect", ErrUnsupportedFeature)
		}
	case ContextHayiya:
		if q.Voice == Passive {
			return fmt.Errorf("%w: passive of حَيِيَ", ErrUnsupportedFeature)
		}
	}
	return nil
}

func (msaDialect) participle(c *Conjugator, v *Verb, voice Voice) (Word, error) {
	return msaParticiple(c, v, voice)
}

func (msaDialect) verbalNouns(v *Verb) ([]string, error) { return msaVerbalNouns(v) }
