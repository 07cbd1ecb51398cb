package conjugation

import "fmt"

type symbolKind int

const (
	symbolRadical symbolKind = iota + 1
	symbolLetter
	symbolInfix
)

// Symbol is one consonant slot of a stem skeleton: a root radical, a
// fixed letter, or the Stem VIII infix whose spelling depends on r1.
type Symbol struct {
	kind    symbolKind
	radical int
	letter  Letter
}

var (
	rad1 = Symbol{kind: symbolRadical, radical: 1}
	rad2 = Symbol{kind: symbolRadical, radical: 2}
	rad3 = Symbol{kind: symbolRadical, radical: 3}
	rad4 = Symbol{kind: symbolRadical, radical: 4}

	infix = Symbol{kind: symbolInfix}
)

func lit(l Letter) Symbol { return Symbol{kind: symbolLetter, letter: l} }

func (s Symbol) String() string {
	switch s.kind {
	case symbolRadical:
		return fmt.Sprintf("r%d", s.radical)
	case symbolLetter:
		return s.letter.String()
	case symbolInfix:
		return "<t>"
	}
	return "?"
}

func ptr[T any](v T) *T { return &v }

// Conditions restrict when a rule node applies. Every set field must match;
// unset fields match anything.
type Conditions struct {
	Tense Tense
	// Moods only match present-tense queries.
	Moods    []Mood
	Voice    Voice
	Person   Person
	Gender   Gender
	Numerus  Numerus
	Contexts []Stem1Context
	R1       Letter
	R2       Letter

	// SuffixSukun tests whether the suffix leaves the last stem consonant
	// without a vowel.
	SuffixSukun *bool
	// VowelSuffix tests whether the present suffix starts with a vowel
	// (2nd feminine singular, dual, masculine plural).
	VowelSuffix *bool
	// FinalWeak tests for a weak last radical, quadriliteral roots included.
	FinalWeak *bool
}

// matchInput is everything a condition can look at.
type matchInput struct {
	query       Query
	context     Stem1Context
	root        Root
	suffixSukun bool
	vowelSuffix bool
	finalWeak   bool
}

func (c *Conditions) match(in *matchInput) bool {
	q := in.query
	switch {
	case c.Tense != 0 && c.Tense != q.Tense,
		c.Voice != 0 && c.Voice != q.Voice,
		c.Person != 0 && c.Person != q.Person,
		c.Gender != 0 && c.Gender != q.Gender,
		c.Numerus != 0 && c.Numerus != q.Numerus,
		c.R1 != 0 && c.R1 != in.root.R(1),
		c.R2 != 0 && c.R2 != in.root.R(2),
		c.SuffixSukun != nil && *c.SuffixSukun != in.suffixSukun,
		c.VowelSuffix != nil && *c.VowelSuffix != in.vowelSuffix,
		c.FinalWeak != nil && *c.FinalWeak != in.finalWeak:
		return false
	}
	if len(c.Moods) > 0 && (q.Tense != Present || !contains(c.Moods, q.Mood)) {
		return false
	}
	if len(c.Contexts) > 0 && !contains(c.Contexts, in.context) {
		return false
	}
	return true
}

func contains[T comparable](set []T, v T) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

// Rule is a node of a conjugation rule tree. A node that matches overrides
// the fields it sets and inherits the rest from its parent. Children are
// tried in order and the first match is descended into.
type Rule struct {
	When Conditions

	Symbols []Symbol
	Vowels  []Vowel
	// PrefixVowel replaces the dialect's default present prefix vowel.
	PrefixVowel Vowel
	// Emphasize is the 1-based stem position carrying the stress.
	Emphasize int

	// Base makes the node resolve the tree of another category for the
	// same stem, then substitute the node's own symbols.
	Base Category

	Children []*Rule
}

// resolvedRule is the result of walking a rule tree for one query.
type resolvedRule struct {
	symbols     []Symbol
	vowels      []Vowel
	prefixVowel Vowel
	emphasize   int
}

func (r *resolvedRule) overlay(n *Rule) {
	if n.Symbols != nil {
		r.symbols = n.Symbols
	}
	if n.Vowels != nil {
		r.vowels = n.Vowels
	}
	if n.PrefixVowel != 0 {
		r.prefixVowel = n.PrefixVowel
	}
	if n.Emphasize != 0 {
		r.emphasize = n.Emphasize
	}
}

// baseLookup returns the tree a Base node refers to.
type baseLookup func(Category) *Rule

// resolveRule walks the tree from root and returns the merged result.
func resolveRule(root *Rule, in *matchInput, lookup baseLookup) (resolvedRule, error) {
	var res resolvedRule
	node := root
	res.overlay(node)
	for {
		if node.Base != 0 {
			base := lookup(node.Base)
			if base == nil || base == root {
				return res, fmt.Errorf("%w: no %s tree to fall back on", ErrUnresolvedRule, node.Base)
			}
			inner, err := resolveRule(base, in, lookup)
			if err != nil {
				return res, err
			}
			if node.Symbols != nil {
				inner.symbols = node.Symbols
			}
			if res.prefixVowel != 0 {
				inner.prefixVowel = res.prefixVowel
			}
			if res.emphasize != 0 {
				inner.emphasize = res.emphasize
			}
			return inner, nil
		}
		next := firstMatch(node.Children, in)
		if next == nil {
			break
		}
		node = next
		res.overlay(node)
	}
	if len(res.symbols) == 0 || res.vowels == nil {
		return res, fmt.Errorf("%w: %s: missing skeleton or vowels", ErrUnresolvedRule, in.query)
	}
	return res, nil
}

func firstMatch(children []*Rule, in *matchInput) *Rule {
	for _, c := range children {
		if c.When.match(in) {
			return c
		}
	}
	return nil
}
