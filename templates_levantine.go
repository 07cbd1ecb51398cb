package conjugation

import "sync"

var southLevantineTemplates = sync.OnceValue(func() *templateSet {
	s := newTemplateSet()
	s.add(4, Defective, levantineShape{
		perfectSymbols: symbols(lit(Hamza), rad1, rad2), perfectVowels: vowels(ShortA, Sukun),
		presentSymbols: symbols(rad1, rad2),
		prefix:         ShortI, presentVowels: vowels(Sukun),
	}.tree())
	s.add(7, Hollow, &Rule{
		Symbols: symbols(lit(Nun), rad1, rad3),
		Children: []*Rule{
			{When: Conditions{Tense: Perfect, Person: Third}, Vowels: vowels(Sukun, LongA)},
			{When: Conditions{Tense: Perfect}, Vowels: vowels(Sukun, ShortA)},
			{When: Conditions{Tense: Present}, PrefixVowel: Sukun, Vowels: vowels(Sukun, LongA)},
		},
	})
	return s
})
