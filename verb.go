package conjugation

import "fmt"

// Verb is a root in one stem of one dialect. It is validated by NewVerb and
// immutable afterwards.
type Verb struct {
	root     Root
	stem     Stem
	context  Stem1Context
	dialect  Dialect
	category Category
}

// NewVerb checks that the dialect builds stem for the root and that ctx is
// one of the root's Stem-I contexts. A stem the dialect has but no
// template covers fails with ErrNotImplemented. Derived stems take no context. For
// Stem I an empty ctx is accepted when the root has exactly one context.
func NewVerb(d Dialect, root Root, stem Stem, ctx Stem1Context) (*Verb, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: no dialect given", ErrUnknownDialect)
	}
	if root.Len() == 0 {
		return nil, fmt.Errorf("%w: empty root", ErrInvalidRoot)
	}
	if stem < 1 || stem > 10 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStem, stem)
	}
	if root.Len() == 4 && stem != 1 && stem != 2 && stem != 4 {
		return nil, fmt.Errorf("%w: quadriliteral stem %s", ErrUnsupportedStem, stem)
	}
	cat := d.classify(root)
	if !d.HasStem(stem, cat) {
		return nil, d.missingStem(stem, cat)
	}

	if stem != 1 {
		if ctx != "" {
			return nil, fmt.Errorf("%w: %q given for stem %s", ErrIllegalStem1Context, ctx, stem)
		}
	} else {
		legal := d.Stem1Contexts(root)
		if ctx == "" && len(legal) == 1 {
			ctx = legal[0]
		}
		if !contains(legal, ctx) {
			return nil, fmt.Errorf("%w: %q for %s in %s, want one of %v", ErrIllegalStem1Context, ctx, root, d.Name(), legal)
		}
	}
	return &Verb{root: root, stem: stem, context: ctx, dialect: d, category: cat}, nil
}

// MustNewVerb is like NewVerb but panics on error.
func MustNewVerb(d Dialect, root Root, stem Stem, ctx Stem1Context) *Verb {
	v, err := NewVerb(d, root, stem, ctx)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Verb) Root() Root            { return v.root }
func (v *Verb) Stem() Stem            { return v.stem }
func (v *Verb) Context() Stem1Context { return v.context }
func (v *Verb) Dialect() Dialect      { return v.dialect }
func (v *Verb) Category() Category    { return v.category }

// Melody returns the stem vowels: the context's melody in Stem I, the
// fixed derived melody otherwise.
func (v *Verb) Melody() Melody {
	if v.stem == 1 {
		if m, ok := v.dialect.Melody(v.context); ok {
			return m
		}
	}
	return derivedMelody(v.stem, v.quad())
}

func (v *Verb) String() string {
	s := fmt.Sprintf("%s %s %s", v.dialect.ID(), v.root, v.stem)
	if v.context != "" {
		s += " (" + string(v.context) + ")"
	}
	return s
}

func (v *Verb) quad() bool { return v.root.Len() == 4 }

// soundCategory is the category whose tree serves a verb without a tree of
// its own.
func (v *Verb) soundCategory() Category {
	if v.quad() {
		return Quadriliteral
	}
	return Sound
}

// finalWeak reports a weak last radical, as the affixes see it.
func (v *Verb) finalWeak() bool {
	switch {
	case v.category == Defective || v.category == DoublyWeak:
		return true
	case v.quad():
		return v.root.R(4).IsWeak()
	}
	return false
}

// radical returns radical i as it is conjugated. A final waw (and in
// Lebanese a final hamza) is written ya, except in the active of the
// past-a present-u defective verbs: دَعَا, دَعَوْتُ but دُعِيَ.
func (v *Verb) radical(i int, q Query) Letter {
	r := v.root.R(i)
	if i != 3 || v.quad() || (v.category != Defective && v.category != DoublyWeak) {
		return r
	}
	if r != Waw && r != Hamza {
		return r
	}
	if v.stem == 1 && v.context == ContextDefective2 && q.Voice == Active {
		return r
	}
	return Ya
}

// letter spells one skeleton symbol.
func (v *Verb) letter(s Symbol, q Query) Letter {
	switch s.kind {
	case symbolRadical:
		return v.radical(s.radical, q)
	case symbolInfix:
		return stem8Infix(v.root.R(1))
	}
	return s.letter
}
