package conjugation

import "sync"

// msaShapes are the sound skeletons of the triliteral stems.
var msaShapes = map[Stem]stemShape{
	1: {
		symbols(rad1, rad2, rad3), vowels(VowelOpen, VowelPast),
		symbols(rad1, rad2, rad3), vowels(Sukun, VowelPresent),
	},
	2: {
		symbols(rad1, rad2, rad2, rad3), vowels(VowelOpen, Sukun, VowelPast),
		symbols(rad1, rad2, rad2, rad3), vowels(ShortA, Sukun, VowelPresent),
	},
	3: {
		symbols(rad1, rad2, rad3), vowels(VowelLongOpen, VowelPast),
		symbols(rad1, rad2, rad3), vowels(LongA, VowelPresent),
	},
	4: {
		symbols(lit(Hamza), rad1, rad2, rad3), vowels(VowelOpen, Sukun, VowelPast),
		symbols(rad1, rad2, rad3), vowels(Sukun, VowelPresent),
	},
	5: {
		symbols(lit(Ta), rad1, rad2, rad2, rad3), vowels(VowelOpen, VowelOpen, Sukun, VowelPast),
		symbols(lit(Ta), rad1, rad2, rad2, rad3), vowels(ShortA, ShortA, Sukun, VowelPresent),
	},
	6: {
		symbols(lit(Ta), rad1, rad2, rad3), vowels(VowelOpen, VowelLongOpen, VowelPast),
		symbols(lit(Ta), rad1, rad2, rad3), vowels(ShortA, LongA, VowelPresent),
	},
	7: {
		symbols(lit(Nun), rad1, rad2, rad3), vowels(Sukun, VowelOpen, VowelPast),
		symbols(lit(Nun), rad1, rad2, rad3), vowels(Sukun, ShortA, VowelPresent),
	},
	8: {
		symbols(rad1, infix, rad2, rad3), vowels(Sukun, VowelOpen, VowelPast),
		symbols(rad1, infix, rad2, rad3), vowels(Sukun, ShortA, VowelPresent),
	},
	10: {
		symbols(lit(Siin), lit(Ta), rad1, rad2, rad3), vowels(Sukun, VowelOpen, Sukun, VowelPast),
		symbols(lit(Siin), lit(Ta), rad1, rad2, rad3), vowels(Sukun, ShortA, Sukun, VowelPresent),
	},
}

var msaQuadShapes = map[Stem]stemShape{
	1: {
		symbols(rad1, rad2, rad3, rad4), vowels(VowelOpen, Sukun, VowelPast),
		symbols(rad1, rad2, rad3, rad4), vowels(ShortA, Sukun, VowelPresent),
	},
	2: {
		symbols(lit(Ta), rad1, rad2, rad3, rad4), vowels(VowelOpen, VowelOpen, Sukun, VowelPast),
		symbols(lit(Ta), rad1, rad2, rad3, rad4), vowels(ShortA, ShortA, Sukun, VowelPresent),
	},
}

var msaTemplates = sync.OnceValue(buildMSATemplates)

func buildMSATemplates() *templateSet {
	s := newTemplateSet()
	for stem, sh := range msaShapes {
		s.add(stem, Sound, sh.tree())
	}
	s.add(9, Sound, msaSoundStem9())
	for stem, sh := range msaQuadShapes {
		s.add(stem, Quadriliteral, sh.tree())
	}
	s.add(4, Quadriliteral, msaQuadStem4())

	addMSAHollow(s)
	addMSAGeminate(s)
	addMSAAssimilated(s)
	addMSADefective(s)
	addMSAIrregular(s)
	return s
}

func msaSoundStem9() *Rule {
	jussive := []Mood{Jussive, Imperative}
	return &Rule{
		Symbols: symbols(rad1, rad2, rad3, rad3),
		Children: []*Rule{
			{When: Conditions{Moods: jussive, VowelSuffix: ptr(true)}, Vowels: vowels(Sukun, ShortA, Sukun)},
			{When: Conditions{Moods: jussive}, Vowels: vowels(Sukun, ShortA, VowelPresent)},
			{When: Conditions{Tense: Present, Gender: Female, Numerus: Plural}, Vowels: vowels(Sukun, ShortA, VowelPresent)},
			{When: Conditions{SuffixSukun: ptr(true)}, Vowels: vowels(Sukun, VowelOpen, VowelPast)},
			{
				Vowels: vowels(Sukun, VowelOpen, Sukun),
				Children: []*Rule{
					{When: Conditions{Tense: Present, Voice: Passive}, Vowels: vowels(Sukun, ShortA, Sukun)},
				},
			},
		},
	}
}

func msaQuadStem4() *Rule {
	syms := symbols(rad1, rad2, rad3, rad4, rad4)
	return &Rule{Children: []*Rule{
		{
			When:    Conditions{Tense: Perfect},
			Symbols: syms,
			Vowels:  vowels(Sukun, VowelOpen, VowelPast, Sukun),
			Children: []*Rule{
				{When: Conditions{SuffixSukun: ptr(true)}, Vowels: vowels(Sukun, VowelOpen, Sukun, VowelPast)},
			},
		},
		{
			Symbols: syms,
			Vowels:  vowels(Sukun, ShortA, VowelPresent, Sukun),
			Children: []*Rule{
				{When: Conditions{SuffixSukun: ptr(true)}, Vowels: vowels(Sukun, ShortA, Sukun, VowelPresent)},
			},
		},
	}}
}
