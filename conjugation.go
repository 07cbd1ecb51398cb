// Package conjugation generates fully vocalized Arabic verb forms: finite
// conjugations, participles and verbal nouns of Modern Standard Arabic,
// Lebanese and South Levantine Arabic.
//
// A Verb is a root in one derivational stem of one dialect. A Conjugator
// resolves the dialect's rule tree for each query and assembles the stem
// with its affixes into a []DisplayVocalized, which Render turns into text.
package conjugation

import "fmt"

// Conjugator holds the rule tables of every dialect. It is safe for
// concurrent use.
type Conjugator struct {
	// templates maps Dialect.ID to the dialect's rule registry.
	templates map[string]*templateSet
}

// New builds the rule tables of all dialects and returns a ready-to-use
// Conjugator.
func New() *Conjugator {
	c := &Conjugator{templates: make(map[string]*templateSet)}
	for _, d := range Dialects() {
		c.templates[d.ID()] = d.templates()
	}
	return c
}

func (c *Conjugator) templateSet(d Dialect) *templateSet {
	if s, ok := c.templates[d.ID()]; ok {
		return s
	}
	return d.templates()
}

// Conjugate returns the form of v selected by q.
func (c *Conjugator) Conjugate(v *Verb, q Query) ([]DisplayVocalized, error) {
	w, err := c.word(v, q)
	if err != nil {
		return nil, err
	}
	return w.Spell(), nil
}

// ConjugateParticiple returns the active or passive participle of v.
func (c *Conjugator) ConjugateParticiple(v *Verb, voice Voice) ([]DisplayVocalized, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil verb", ErrInvalidQuery)
	}
	if voice != Active && voice != Passive {
		return nil, fmt.Errorf("%w: voice %d", ErrInvalidQuery, voice)
	}
	if voice == Passive && !v.dialect.Features().Passive {
		return nil, fmt.Errorf("%w: passive participle in %s", ErrUnsupportedFeature, v.dialect.Name())
	}
	w, err := v.dialect.participle(c, v, voice)
	if err != nil {
		return nil, err
	}
	return w.Spell(), nil
}

// VerbalNouns returns every attested verbal noun of v, in attested order.
func (c *Conjugator) VerbalNouns(v *Verb) ([][]DisplayVocalized, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil verb", ErrInvalidQuery)
	}
	patterns, err := v.dialect.verbalNouns(v)
	if err != nil {
		return nil, err
	}
	out := make([][]DisplayVocalized, 0, len(patterns))
	for _, p := range patterns {
		w, err := expandPattern(p, v.root)
		if err != nil {
			return nil, fmt.Errorf("verbal noun of %s: %w", v, err)
		}
		out = append(out, w.Spell())
	}
	return out, nil
}

// HasMultipleVerbalNouns reports whether v has more than one attested
// verbal noun.
func (c *Conjugator) HasMultipleVerbalNouns(v *Verb) (bool, error) {
	if v == nil {
		return false, fmt.Errorf("%w: nil verb", ErrInvalidQuery)
	}
	patterns, err := v.dialect.verbalNouns(v)
	if err != nil {
		return false, err
	}
	return len(patterns) > 1, nil
}

// VerbalNoun returns the verbal noun of v. It fails with
// ErrAmbiguousVerbalNoun when several are attested.
func (c *Conjugator) VerbalNoun(v *Verb) ([]DisplayVocalized, error) {
	nouns, err := c.VerbalNouns(v)
	if err != nil {
		return nil, err
	}
	switch len(nouns) {
	case 0:
		return nil, fmt.Errorf("%w: no verbal noun for %s", ErrNotImplemented, v)
	case 1:
		return nouns[0], nil
	}
	return nil, fmt.Errorf("%w: %s has %d", ErrAmbiguousVerbalNoun, v, len(nouns))
}

// checkQuery validates q on its own and against the verb's dialect.
func (c *Conjugator) checkQuery(v *Verb, q Query) error {
	if v == nil {
		return fmt.Errorf("%w: nil verb", ErrInvalidQuery)
	}
	if err := q.Validate(); err != nil {
		return err
	}
	return v.dialect.checkQuery(v, q)
}

// word assembles prefix, stem and suffix for q.
func (c *Conjugator) word(v *Verb, q Query) (Word, error) {
	if err := c.checkQuery(v, q); err != nil {
		return Word{}, err
	}
	st, err := c.stem(v, q)
	if err != nil {
		return Word{}, err
	}
	prefix := v.dialect.prefix(affixInput{query: q, verb: v, rule: st.rule, first: st.elements[0].Vowel})
	elems := make([]Element, 0, len(prefix)+len(st.elements)+len(st.suffix.Elements))
	elems = append(elems, prefix...)
	elems = append(elems, st.elements...)
	elems = append(elems, st.suffix.Elements...)
	return Word{Elements: elems, Ending: st.suffix.Ending}, nil
}

// assembledStem is a resolved stem with concrete vowels, before the
// prefix is added.
type assembledStem struct {
	rule     resolvedRule
	elements []Element
	suffix   Suffix
}

// stem resolves the rule tree of v for q and zips the skeleton with its
// vowels. The suffix's previous vowel fills the slot of the last
// consonant when the template leaves it open.
func (c *Conjugator) stem(v *Verb, q Query) (assembledStem, error) {
	d := v.dialect
	sfx := d.suffix(q, v)
	in := &matchInput{
		query:       q,
		context:     v.context,
		root:        v.root,
		suffixSukun: sfx.Previous == Sukun,
		vowelSuffix: d.vowelSuffix(q),
		finalWeak:   v.finalWeak(),
	}
	set := c.templateSet(d)
	tree := set.tree(v)
	if tree == nil {
		return assembledStem{}, fmt.Errorf("%w: no %s tree for %s stem %s", ErrUnresolvedRule, d.ID(), v.category, v.stem)
	}
	res, err := resolveRule(tree, in, set.lookup(v.stem))
	if err != nil {
		return assembledStem{}, fmt.Errorf("%s %s stem %s: %w", d.ID(), v.category, v.stem, err)
	}

	m := v.Melody()
	vs := make([]Vowel, 0, len(res.vowels)+1)
	for _, x := range res.vowels {
		vs = append(vs, resolveVowel(x, q.Voice, m))
	}
	vs = append(vs, sfx.Previous)
	if len(vs) < len(res.symbols) {
		return assembledStem{}, fmt.Errorf("%w: %s %s stem %s: %d vowels for %d consonants in %s",
			ErrUnresolvedRule, d.ID(), v.category, v.stem, len(vs), len(res.symbols), q)
	}

	elems := make([]Element, len(res.symbols))
	for i, s := range res.symbols {
		elems[i] = Element{
			Consonant: v.letter(s, q),
			Vowel:     vs[i],
			Emphasis:  res.emphasize == i+1,
		}
	}
	return assembledStem{rule: res, elements: elems, suffix: sfx}, nil
}
