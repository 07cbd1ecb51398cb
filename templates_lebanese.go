package conjugation

import "sync"

var lebaneseTemplates = sync.OnceValue(buildLebaneseTemplates)

func buildLebaneseTemplates() *templateSet {
	s := newTemplateSet()

	s.add(1, Sound, lebaneseSoundStem1())
	s.add(1, HamzaOnR1, lebaneseHamzaOnR1Stem1())
	s.add(1, Assimilated, lebaneseAssimilatedStem1())
	s.add(1, Hollow, lebaneseHollowStem1())
	s.add(1, Geminate, lebaneseGeminateStem1())
	s.add(1, Defective, lebaneseDefectiveStem1())
	s.add(1, DoublyWeak, lebaneseDefectiveStem1())
	s.add(1, Quadriliteral, lebaneseQuadStem1())
	s.irregular[ContextIrjy2] = lebaneseIrregularJy2()

	for stem, sh := range lebaneseShapes {
		s.add(stem, Sound, sh.tree())
	}
	for stem, sh := range lebaneseDefectiveShapes {
		s.add(stem, Defective, sh.tree())
	}
	s.add(8, Hollow, lebaneseHollowStem8())
	return s
}

// emphasis puts the stress on the first stem consonant in the 3rd person
// and on position other elsewhere: دَرَسْ, دَرَسِتْ.
func emphasis(other int) []*Rule {
	return []*Rule{
		{When: Conditions{Person: Third}, Emphasize: 1},
		{Emphasize: other},
	}
}

// lebaneseMelody is the vowel set of one regular Stem-I context.
type lebaneseMelody struct {
	prefix        Vowel
	present       Vowel
	presentSuffix []Vowel
	imperative    Vowel
	imperativeSfx Vowel
}

var lebaneseRegular = map[Stem1Context]lebaneseMelody{
	ContextAA:  {ShortI, ShortA, vowels(Sukun, ShortA), LongA, ShortA},
	ContextAU:  {ShortU, ShortU, vowels(Sukun, Sukun), LongU, ShortU},
	ContextAU2: {ShortI, ShortU, vowels(ShortI, Sukun), LongU, ShortI},
	ContextIA:  {ShortI, ShortA, vowels(Sukun, ShortA), LongA, ShortA},
	ContextIU:  {ShortI, ShortU, vowels(Sukun, Sukun), LongU, ShortI},
}

func lebaneseSoundStem1() *Rule {
	root := &Rule{Symbols: symbols(rad1, rad2, rad3)}
	for _, ctx := range []Stem1Context{ContextAA, ContextAU, ContextAU2, ContextIA, ContextIU} {
		m := lebaneseRegular[ctx]
		perfect := &Rule{When: Conditions{Tense: Perfect}, Vowels: vowels(ShortA, ShortA), Children: emphasis(2)}
		if ctx == ContextIA || ctx == ContextIU {
			perfect = &Rule{When: Conditions{Tense: Perfect}, Children: []*Rule{
				{When: Conditions{Person: Third, Gender: Male, Numerus: Singular}, Vowels: vowels(ShortI, ShortI), Emphasize: 1},
				{When: Conditions{Person: Third}, Vowels: vowels(ShortI, Sukun), Emphasize: 1},
				{Vowels: vowels(Sukun, ShortI), Emphasize: 2},
			}}
		}
		root.Children = append(root.Children, &Rule{
			When: Conditions{Contexts: []Stem1Context{ctx}},
			Children: []*Rule{
				perfect,
				{When: Conditions{Moods: []Mood{Imperative}, VowelSuffix: ptr(true)}, Vowels: vowels(Sukun, m.imperativeSfx)},
				{When: Conditions{Moods: []Mood{Imperative}}, Vowels: vowels(Sukun, m.imperative)},
				{When: Conditions{Tense: Present, VowelSuffix: ptr(true)}, PrefixVowel: m.prefix, Vowels: m.presentSuffix},
				{When: Conditions{Tense: Present}, PrefixVowel: m.prefix, Vowels: vowels(Sukun, m.present)},
			},
		})
	}
	return root
}

// lebaneseHamzaOnR1Stem1 conjugates like the sound verb except أَكَلْ and
// أَخَدْ, which lose the hamza in the present: بْيَاكُلْ, كُلْ.
func lebaneseHamzaOnR1Stem1() *Rule {
	eat := func(r2 Letter) *Rule {
		return &Rule{
			When:    Conditions{R1: Hamza, R2: r2},
			Symbols: symbols(rad2, rad3),
			Children: []*Rule{
				{When: Conditions{Tense: Perfect}, Base: Sound},
				{When: Conditions{Moods: []Mood{Imperative}, VowelSuffix: ptr(true)}, Vowels: vowels(ShortI)},
				{When: Conditions{Moods: []Mood{Imperative}}, Vowels: vowels(ShortU)},
				{
					When:        Conditions{Tense: Present},
					PrefixVowel: LongA,
					Vowels:      vowels(ShortU),
					Children: []*Rule{
						{When: Conditions{VowelSuffix: ptr(true)}, Vowels: vowels(Sukun)},
					},
				},
			},
		}
	}
	return &Rule{Children: []*Rule{
		eat(Kaf),
		eat(Kha),
		{Base: Sound},
	}}
}

func lebaneseAssimilatedStem1() *Rule {
	type melody struct{ past1, past2Male, past2Third, present Vowel }
	melodies := map[Stem1Context]melody{
		ContextAI: {ShortA, ShortA, ShortA, ShortI},
		ContextIA: {ShortU, ShortI, Sukun, ShortA},
		// past i, present a: وِقِعْ, بْيُوقَعْ
		ContextII: {ShortI, ShortI, Sukun, ShortA},
	}
	root := &Rule{}
	for _, ctx := range []Stem1Context{ContextAI, ContextIA, ContextII} {
		m := melodies[ctx]
		present := &Rule{
			When:        Conditions{Tense: Present},
			Symbols:     symbols(rad2, rad3),
			PrefixVowel: LongU,
			Vowels:      vowels(m.present),
		}
		if ctx == ContextAI {
			present.Children = []*Rule{{When: Conditions{VowelSuffix: ptr(true)}, Vowels: vowels(Sukun)}}
		}
		root.Children = append(root.Children, &Rule{
			When:    Conditions{Contexts: []Stem1Context{ctx}},
			Symbols: symbols(rad1, rad2, rad3),
			Children: []*Rule{
				{When: Conditions{Tense: Perfect}, Children: []*Rule{
					{When: Conditions{Person: Third, Gender: Male, Numerus: Singular}, Vowels: vowels(m.past1, m.past2Male)},
					{When: Conditions{Person: Third}, Vowels: vowels(m.past1, m.past2Third)},
					{Vowels: vowels(Sukun, m.past1)},
				}},
				{When: Conditions{Moods: []Mood{Imperative}, VowelSuffix: ptr(true)}, Vowels: vowels(Sukun, m.present)},
				{When: Conditions{Moods: []Mood{Imperative}}, Vowels: vowels(Sukun, LongA)},
				present,
			},
		})
	}
	return root
}

func lebaneseHollowStem1() *Rule {
	long := map[Stem1Context]Vowel{ContextIA: LongA, ContextII: LongI, ContextIU: LongU}
	root := &Rule{Symbols: symbols(rad1, rad3)}
	for _, ctx := range []Stem1Context{ContextIA, ContextII, ContextIU} {
		root.Children = append(root.Children, &Rule{
			When: Conditions{Contexts: []Stem1Context{ctx}},
			Children: []*Rule{
				{When: Conditions{Tense: Perfect, Person: Third}, Vowels: vowels(LongA)},
				{When: Conditions{Tense: Perfect}, Vowels: vowels(ShortI)},
				{When: Conditions{Tense: Present}, PrefixVowel: Sukun, Vowels: vowels(long[ctx])},
			},
		})
	}
	return root
}

func lebaneseGeminateStem1() *Rule {
	return &Rule{
		Symbols: symbols(rad1, rad2, rad3),
		Children: []*Rule{
			{When: Conditions{Tense: Perfect, Person: Third}, Vowels: vowels(ShortA, Sukun)},
			{When: Conditions{Tense: Perfect}, Vowels: vowels(ShortA, Sukun, DiphthongAj)},
			{When: Conditions{Contexts: []Stem1Context{ContextAU}}, PrefixVowel: Sukun, Vowels: vowels(ShortU, Sukun)},
			{PrefixVowel: Sukun, Vowels: vowels(ShortI, Sukun)},
		},
	}
}

// lebaneseDefectiveStem1 drops the weak radical; the suffix supplies the
// final vowel. aa and ia end in ā in the present (بْيِقْرَى, بْيِنْسَى).
func lebaneseDefectiveStem1() *Rule {
	aFinal := []Stem1Context{ContextAA, ContextIA}
	return &Rule{
		Symbols: symbols(rad1, rad2),
		Children: []*Rule{
			{When: Conditions{Tense: Perfect, Contexts: []Stem1Context{ContextAA, ContextAI}}, Vowels: vowels(ShortA)},
			{When: Conditions{Tense: Perfect}, Children: []*Rule{
				{When: Conditions{Person: Third, Gender: Male, Numerus: Singular}, Vowels: vowels(ShortI, LongI)},
				{When: Conditions{Person: Third, Numerus: Singular}, Symbols: symbols(rad1, rad2, rad3), Vowels: vowels(ShortI, Sukun, ShortI)},
				{When: Conditions{Person: Third}, Symbols: symbols(rad1, rad2, rad3), Vowels: vowels(ShortI, Sukun)},
				{Vowels: vowels(Sukun, LongI)},
			}},
			{When: Conditions{Moods: []Mood{Imperative}, VowelSuffix: ptr(true)}, Vowels: vowels(Sukun)},
			{When: Conditions{Moods: []Mood{Imperative}, Contexts: aFinal}, Vowels: vowels(Sukun, BrokenA)},
			{When: Conditions{Moods: []Mood{Imperative}}, Vowels: vowels(Sukun)},
			{
				When:        Conditions{Tense: Present},
				PrefixVowel: ShortI,
				Vowels:      vowels(Sukun),
				Children: []*Rule{
					{When: Conditions{Contexts: aFinal, VowelSuffix: ptr(false)}, Vowels: vowels(Sukun, BrokenA)},
				},
			},
		},
	}
}

func lebaneseQuadStem1() *Rule {
	return &Rule{Children: []*Rule{
		{
			When:        Conditions{FinalWeak: ptr(true)},
			Symbols:     symbols(rad1, rad2, rad3),
			Vowels:      vowels(ShortA, Sukun),
			PrefixVowel: Sukun,
		},
		{
			Symbols: symbols(rad1, rad2, rad3, rad4),
			Vowels:  vowels(ShortA, Sukun, ShortA),
			Children: []*Rule{
				{When: Conditions{Tense: Perfect}, Children: emphasis(3)},
				{
					When:        Conditions{Tense: Present},
					PrefixVowel: Sukun,
					Vowels:      vowels(ShortA, Sukun, ShortI),
					Children: []*Rule{
						{When: Conditions{VowelSuffix: ptr(true)}, Vowels: vowels(ShortA, Sukun, Sukun)},
					},
				},
			},
		},
	}}
}

// lebaneseIrregularJy2 is إِجَا, يِجِي (ج-ي-ء). The imperative (تَعَا) is
// suppletive and not generated.
func lebaneseIrregularJy2() *Rule {
	hamzaJ := symbols(lit(Hamza), rad1)
	return &Rule{Children: []*Rule{
		{When: Conditions{Tense: Perfect, Person: Third, Gender: Male, Numerus: Singular}, Symbols: hamzaJ, Vowels: vowels(ShortI, LongA)},
		{When: Conditions{Tense: Perfect, Person: Third}, Symbols: hamzaJ, Vowels: vowels(ShortI)},
		{When: Conditions{Tense: Perfect}, Symbols: symbols(rad1), Vowels: vowels(LongI)},
		{
			When:        Conditions{Tense: Present},
			Symbols:     symbols(rad1),
			PrefixVowel: ShortI,
			Vowels:      vowels(LongI),
			Children: []*Rule{
				{When: Conditions{VowelSuffix: ptr(true)}, Vowels: []Vowel{}},
			},
		},
	}}
}

// levantineShape is a derived stem without voice or mood distinctions.
// presentSuffix replaces the present vowels before a vowel suffix.
type levantineShape struct {
	perfectSymbols []Symbol
	perfectVowels  []Vowel
	presentSymbols []Symbol
	prefix         Vowel
	presentVowels  []Vowel
	presentSuffix  []Vowel
}

func (sh levantineShape) tree() *Rule {
	present := sh.presentSymbols
	if present == nil {
		present = sh.perfectSymbols
	}
	pres := &Rule{
		When:        Conditions{Tense: Present},
		Symbols:     present,
		PrefixVowel: sh.prefix,
		Vowels:      sh.presentVowels,
	}
	if sh.presentSuffix != nil {
		pres.Children = []*Rule{{When: Conditions{VowelSuffix: ptr(true)}, Vowels: sh.presentSuffix}}
	}
	return &Rule{Children: []*Rule{
		{When: Conditions{Tense: Perfect}, Symbols: sh.perfectSymbols, Vowels: sh.perfectVowels},
		pres,
	}}
}

var lebaneseShapes = map[Stem]levantineShape{
	2: {
		perfectSymbols: symbols(rad1, rad2, rad2, rad3), perfectVowels: vowels(ShortA, Sukun, ShortA),
		prefix: Sukun, presentVowels: vowels(ShortA, Sukun, ShortI), presentSuffix: vowels(ShortA, Sukun, Sukun),
	},
	3: {
		perfectSymbols: symbols(rad1, rad2, rad3), perfectVowels: vowels(LongA, ShortA),
		prefix: Sukun, presentVowels: vowels(LongA, ShortI), presentSuffix: vowels(LongA, Sukun),
	},
	4: {
		perfectSymbols: symbols(lit(Hamza), rad1, rad2, rad3), perfectVowels: vowels(ShortA, Sukun, ShortA),
		presentSymbols: symbols(rad1, rad2, rad3),
		prefix:         Sukun, presentVowels: vowels(Sukun, ShortI), presentSuffix: vowels(Sukun, Sukun),
	},
	5: {
		perfectSymbols: symbols(lit(Ta), rad1, rad2, rad2, rad3), perfectVowels: vowels(Sukun, ShortA, Sukun, ShortA),
		prefix: ShortI, presentVowels: vowels(Sukun, ShortA, Sukun, ShortA),
	},
	6: {
		perfectSymbols: symbols(lit(Ta), rad1, rad2, rad3), perfectVowels: vowels(Sukun, LongA, ShortA),
		prefix: ShortI, presentVowels: vowels(Sukun, LongA, ShortA),
	},
	7: {
		perfectSymbols: symbols(lit(Nun), rad1, rad2, rad3), perfectVowels: vowels(Sukun, ShortA, ShortA),
		prefix: ShortU, presentVowels: vowels(Sukun, ShortU, ShortI), presentSuffix: vowels(Sukun, ShortU, Sukun),
	},
	8: {
		perfectSymbols: symbols(rad1, infix, rad2, rad3), perfectVowels: vowels(Sukun, ShortA, ShortA),
		prefix: ShortI, presentVowels: vowels(Sukun, ShortI, ShortI), presentSuffix: vowels(Sukun, ShortI, Sukun),
	},
	9: {
		perfectSymbols: symbols(rad1, rad2, rad3, rad3), perfectVowels: vowels(Sukun, ShortA, Sukun),
		prefix: ShortI, presentVowels: vowels(Sukun, ShortA, Sukun),
	},
	10: {
		perfectSymbols: symbols(lit(Siin), lit(Ta), rad1, rad2, rad3), perfectVowels: vowels(Sukun, ShortA, Sukun, ShortA),
		prefix: ShortI, presentVowels: vowels(Sukun, ShortA, Sukun, ShortI), presentSuffix: vowels(Sukun, ShortA, Sukun, Sukun),
	},
}

// lebaneseDefectiveShapes drop the weak radical. A vowel list as long as
// the skeleton ends the stem in ā and overrides the suffix vowel.
var lebaneseDefectiveShapes = map[Stem]levantineShape{
	2: {
		perfectSymbols: symbols(rad1, rad2, rad2), perfectVowels: vowels(ShortA, Sukun),
		prefix: Sukun, presentVowels: vowels(ShortA, Sukun),
	},
	3: {
		perfectSymbols: symbols(rad1, rad2), perfectVowels: vowels(LongA),
		prefix: Sukun, presentVowels: vowels(LongA),
	},
	5: {
		perfectSymbols: symbols(lit(Ta), rad1, rad2, rad2), perfectVowels: vowels(Sukun, ShortA, Sukun),
		prefix: ShortI, presentVowels: vowels(Sukun, ShortA, Sukun, BrokenA), presentSuffix: vowels(Sukun, ShortA, Sukun),
	},
	6: {
		perfectSymbols: symbols(lit(Ta), rad1, rad2), perfectVowels: vowels(Sukun, LongA),
		prefix: ShortI, presentVowels: vowels(Sukun, LongA, BrokenA), presentSuffix: vowels(Sukun, LongA),
	},
}

func lebaneseHollowStem8() *Rule {
	syms := symbols(rad1, infix, rad3)
	return &Rule{
		Symbols: syms,
		Children: []*Rule{
			{When: Conditions{Tense: Perfect, Person: Third}, Vowels: vowels(Sukun, LongA)},
			{When: Conditions{Tense: Perfect}, Vowels: vowels(Sukun, ShortA)},
			{When: Conditions{Tense: Present}, PrefixVowel: ShortI, Vowels: vowels(Sukun, LongA)},
		},
	}
}
