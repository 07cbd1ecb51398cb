package conjugation

type templateKey struct {
	stem     Stem
	category Category
}

type rootStemKey struct {
	root Root
	stem Stem
}

// templateSet is the rule registry of one dialect. It is built once and
// only read afterwards.
type templateSet struct {
	trees map[templateKey]*Rule
	// irregular trees replace the category tree of a Stem-I verb.
	irregular map[Stem1Context]*Rule
	// byRoot trees are tied to a single root and stem (أَحْيَا).
	byRoot map[rootStemKey]*Rule
}

func newTemplateSet() *templateSet {
	return &templateSet{
		trees:     make(map[templateKey]*Rule),
		irregular: make(map[Stem1Context]*Rule),
		byRoot:    make(map[rootStemKey]*Rule),
	}
}

func (s *templateSet) add(stem Stem, cat Category, r *Rule) {
	s.trees[templateKey{stem, cat}] = r
}

// tree selects the rule tree for v. A category without a tree of its own
// uses the sound tree of the stem.
func (s *templateSet) tree(v *Verb) *Rule {
	if t, ok := s.byRoot[rootStemKey{v.root, v.stem}]; ok {
		return t
	}
	if v.stem == 1 {
		if t, ok := s.irregular[v.context]; ok {
			return t
		}
	}
	if t, ok := s.trees[templateKey{v.stem, v.category}]; ok {
		return t
	}
	return s.trees[templateKey{v.stem, v.soundCategory()}]
}

// lookup resolves Base references for the given stem.
func (s *templateSet) lookup(stem Stem) baseLookup {
	return func(c Category) *Rule {
		return s.trees[templateKey{stem, c}]
	}
}

// stemShape is the sound skeleton of a stem. The last vowel sits on the
// consonant before the final radical; the final radical takes its vowel
// from the suffix.
type stemShape struct {
	perfectSymbols []Symbol
	perfectVowels  []Vowel
	presentSymbols []Symbol
	presentVowels  []Vowel
}

func (sh stemShape) tree() *Rule {
	return &Rule{Children: []*Rule{
		{When: Conditions{Tense: Perfect}, Symbols: sh.perfectSymbols, Vowels: sh.perfectVowels},
		{When: Conditions{Tense: Present}, Symbols: sh.presentSymbols, Vowels: sh.presentVowels},
	}}
}

func symbols(s ...Symbol) []Symbol { return s }
func vowels(v ...Vowel) []Vowel    { return v }

// dropFinal removes the final radical and puts v on the consonant that is
// now last.
func dropFinal(syms []Symbol, vs []Vowel, v Vowel) ([]Symbol, []Vowel) {
	outS := append([]Symbol(nil), syms[:len(syms)-1]...)
	outV := append([]Vowel(nil), vs[:len(outS)]...)
	outV[len(outV)-1] = v
	return outS, outV
}

func dropNode(when Conditions, syms []Symbol, vs []Vowel, v Vowel) *Rule {
	s, vv := dropFinal(syms, vs, v)
	return &Rule{When: when, Symbols: s, Vowels: vv}
}
