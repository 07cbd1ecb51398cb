package conjugation

func addMSAHollow(s *templateSet) {
	// perfect and present vowel pairs: (no sukun suffix, sukun suffix)
	hollow := func(perfect []Symbol, perfectLong, perfectShort []Vowel, present []Symbol, presentLong, presentShort []Vowel) *Rule {
		return &Rule{Children: []*Rule{
			{
				When:    Conditions{Tense: Present},
				Symbols: present,
				Vowels:  presentLong,
				Children: []*Rule{
					{When: Conditions{SuffixSukun: ptr(true)}, Vowels: presentShort},
				},
			},
			{
				When:    Conditions{Tense: Perfect},
				Symbols: perfect,
				Vowels:  perfectLong,
				Children: []*Rule{
					{When: Conditions{SuffixSukun: ptr(true)}, Vowels: perfectShort},
				},
			},
		}}
	}

	s.add(1, Hollow, hollow(
		symbols(rad1, rad3), vowels(VowelLongPerfect), vowels(VowelPast),
		symbols(rad1, rad3), vowels(VowelLongPresent), vowels(VowelPresent),
	))
	s.add(4, Hollow, hollow(
		symbols(lit(Hamza), rad1, rad3), vowels(VowelOpen, VowelLongPerfect), vowels(VowelOpen, VowelPast),
		symbols(rad1, rad3), vowels(VowelLongPresent), vowels(VowelPresent),
	))
	s.add(7, Hollow, hollow(
		symbols(lit(Nun), rad1, rad3), vowels(Sukun, VowelLongPerfect), vowels(Sukun, VowelPast),
		symbols(lit(Nun), rad1, rad3), vowels(Sukun, LongA), vowels(Sukun, ShortA),
	))
	s.add(8, Hollow, hollow(
		symbols(rad1, infix, rad3), vowels(Sukun, VowelLongPerfect), vowels(Sukun, VowelPast),
		symbols(rad1, infix, rad3), vowels(Sukun, LongA), vowels(Sukun, ShortA),
	))
	s.add(10, Hollow, hollow(
		symbols(lit(Siin), lit(Ta), rad1, rad3), vowels(Sukun, VowelOpen, VowelLongPerfect), vowels(Sukun, VowelOpen, VowelPast),
		symbols(lit(Siin), lit(Ta), rad1, rad3), vowels(Sukun, ShortA, VowelLongPresent), vowels(Sukun, ShortA, VowelPresent),
	))
}

func addMSAGeminate(s *templateSet) {
	noSukun := ptr(false)
	r123 := symbols(rad1, rad2, rad3)

	s.add(1, Geminate, &Rule{Children: []*Rule{
		{
			When:        Conditions{R1: Waw, Moods: []Mood{Imperative}, SuffixSukun: ptr(true)},
			PrefixVowel: LongI,
			Symbols:     symbols(rad2, rad3),
			Vowels:      vowels(VowelPresent),
		},
		{When: Conditions{Tense: Present, SuffixSukun: noSukun}, Symbols: r123, Vowels: vowels(VowelPresent, Sukun)},
		{
			When:        Conditions{R1: Waw, Tense: Present, Voice: Passive, SuffixSukun: ptr(true)},
			PrefixVowel: LongU,
			Symbols:     symbols(rad2, rad3),
			Vowels:      vowels(VowelPresent),
		},
		{When: Conditions{Tense: Perfect, Person: Third, SuffixSukun: noSukun}, Symbols: r123, Vowels: vowels(VowelOpen, Sukun)},
		{Base: Sound},
	}})

	s.add(3, Geminate, &Rule{Children: []*Rule{
		{When: Conditions{Tense: Present, SuffixSukun: noSukun}, Symbols: r123, Vowels: vowels(LongA, Sukun)},
		{When: Conditions{Tense: Perfect, Person: Third, SuffixSukun: noSukun}, Symbols: r123, Vowels: vowels(VowelLongOpen, Sukun)},
		{Base: Sound},
	}})

	// geminated derived stems share one shape: the stem prefix, then r1 r2 r3
	// with r2 and r3 merging whenever r3 has a vowel.
	geminate := func(prefix []Symbol, prefixPerfect, prefixPresent []Vowel, perfectSymbols []Symbol) *Rule {
		presentSymbols := append(append([]Symbol(nil), prefix...), rad1, rad2, rad3)
		with := func(pre []Vowel, v ...Vowel) []Vowel {
			return append(append([]Vowel(nil), pre...), v...)
		}
		return &Rule{Children: []*Rule{
			{
				When:    Conditions{Moods: []Mood{Imperative}},
				Symbols: presentSymbols,
				Vowels:  with(prefixPresent, Sukun, ShortI),
				Children: []*Rule{
					{When: Conditions{VowelSuffix: ptr(true)}, Vowels: with(prefixPresent, ShortI, Sukun)},
				},
			},
			{
				When:    Conditions{Moods: []Mood{Jussive}},
				Symbols: presentSymbols,
				Vowels:  with(prefixPresent, Sukun, VowelPresent),
				Children: []*Rule{
					{When: Conditions{VowelSuffix: ptr(true)}, Vowels: with(prefixPresent, VowelPresent, Sukun)},
				},
			},
			{
				When:    Conditions{Tense: Present},
				Symbols: presentSymbols,
				Vowels:  with(prefixPresent, VowelPresent, Sukun),
				Children: []*Rule{
					{When: Conditions{Numerus: Plural, Gender: Female}, Vowels: with(prefixPresent, Sukun, VowelPresent)},
				},
			},
			{
				When:    Conditions{Tense: Perfect},
				Symbols: perfectSymbols,
				Vowels:  with(prefixPerfect, Sukun, VowelPast),
				Children: []*Rule{
					{When: Conditions{Person: Third, Numerus: Plural, Gender: Female}},
					{When: Conditions{Person: Third}, Vowels: with(prefixPerfect, VowelPast, Sukun)},
				},
			},
		}}
	}

	s.add(4, Geminate, geminate(nil, vowels(VowelOpen), nil, symbols(lit(Hamza), rad1, rad2, rad3)))
	s.add(10, Geminate, geminate(
		symbols(lit(Siin), lit(Ta)), vowels(Sukun, VowelOpen), vowels(Sukun, ShortA),
		symbols(lit(Siin), lit(Ta), rad1, rad2, rad3),
	))

	// Stem VIII carries its vowel on the infix, so r1 stays vowelless.
	r8 := symbols(rad1, infix, rad2, rad3)
	s.add(8, Geminate, &Rule{
		Symbols: r8,
		Children: []*Rule{
			{
				When:   Conditions{Moods: []Mood{Jussive, Imperative}},
				Vowels: vowels(Sukun, ShortA, VowelPresent),
				Children: []*Rule{
					{When: Conditions{VowelSuffix: ptr(true)}, Vowels: vowels(Sukun, ShortA, Sukun)},
				},
			},
			{
				When:   Conditions{Tense: Present},
				Vowels: vowels(Sukun, ShortA, Sukun),
				Children: []*Rule{
					{When: Conditions{Numerus: Plural, Gender: Female}, Vowels: vowels(Sukun, ShortA, VowelPresent)},
				},
			},
			{
				When:   Conditions{Tense: Perfect},
				Vowels: vowels(Sukun, VowelOpen, VowelPast),
				Children: []*Rule{
					{When: Conditions{Person: Third, Numerus: Plural, Gender: Female}},
					{When: Conditions{Person: Third}, Vowels: vowels(Sukun, VowelOpen, Sukun)},
				},
			},
		},
	})
}

func addMSAAssimilated(s *templateSet) {
	s.add(1, Assimilated, &Rule{Children: []*Rule{
		{
			When: Conditions{R1: Waw},
			Children: []*Rule{
				{
					When:        Conditions{Tense: Present, Voice: Passive},
					PrefixVowel: LongU,
					Symbols:     symbols(rad2, rad3),
					Vowels:      vowels(VowelPresent),
				},
				// وَصَلَ يَصِلُ, وَسِعَ يَسَعُ, وَعُلَ يَعُلُ
				{
					When:    Conditions{Tense: Present},
					Symbols: symbols(rad2, rad3),
					Vowels:  vowels(VowelPresent),
				},
				{Base: Sound},
			},
		},
		{
			When:        Conditions{Moods: []Mood{Imperative}, Contexts: []Stem1Context{ContextUU}},
			PrefixVowel: LongU,
			Symbols:     symbols(rad2, rad3),
			Vowels:      vowels(VowelPresent),
		},
		{
			When:        Conditions{Moods: []Mood{Imperative}},
			PrefixVowel: LongI,
			Symbols:     symbols(rad2, rad3),
			Vowels:      vowels(VowelPresent),
		},
		{
			When:        Conditions{Tense: Present, Voice: Passive},
			PrefixVowel: LongU,
			Symbols:     symbols(rad2, rad3),
			Vowels:      vowels(ShortA),
		},
		{Base: Sound},
	}})

	s.add(4, Assimilated, &Rule{Children: []*Rule{
		{
			When:        Conditions{Moods: []Mood{Indicative, Subjunctive, Jussive}},
			PrefixVowel: LongU,
			Symbols:     symbols(rad2, rad3),
			Vowels:      vowels(VowelPresent),
		},
		{
			When:    Conditions{Tense: Perfect, Voice: Passive},
			Symbols: symbols(lit(Hamza), rad2, rad3),
			Vowels:  vowels(LongU, VowelPast),
		},
		{Base: Sound},
	}})

	s.add(8, Assimilated, &Rule{Base: Sound, Symbols: symbols(lit(Ta), infix, rad2, rad3)})

	s.add(10, Assimilated, &Rule{Children: []*Rule{
		{
			When:    Conditions{Voice: Passive, Tense: Perfect},
			Symbols: symbols(lit(Siin), lit(Ta), rad2, rad3),
			Vowels:  vowels(Sukun, LongU, ShortI),
		},
		{
			When:    Conditions{Voice: Passive, R1: Waw},
			Symbols: symbols(lit(Siin), lit(Ta), rad2, rad3),
			Vowels:  vowels(Sukun, DiphthongAw, ShortA),
		},
		{
			When:    Conditions{Voice: Passive},
			Symbols: symbols(lit(Siin), lit(Ta), rad2, rad3),
			Vowels:  vowels(Sukun, DiphthongAj, ShortA),
		},
		{Base: Sound},
	}})
}

// vowel class of a defective present: the vowel that replaces the final
// radical, long and short, and whether it is the a class (يَلْقَى).
type defectiveClass struct {
	long, short Vowel
	a           bool
}

var (
	defectiveI = defectiveClass{long: LongI, short: ShortI}
	defectiveU = defectiveClass{long: LongU, short: ShortU}
	defectiveA = defectiveClass{long: BrokenA, short: ShortA, a: true}
)

// defectivePerfect builds the perfect of a final-weak stem. In the a class
// the final radical falls before vowel suffixes of the third person
// (رَمَى, رَمَتْ, رَمَوْا); in the i class before consonant suffixes
// (لَقِيتُ) and ū (لَقُوا).
func defectivePerfect(when Conditions, syms []Symbol, vs []Vowel, aClass bool, final3ms Vowel) *Rule {
	n := &Rule{When: when, Symbols: syms, Vowels: vs}
	if aClass {
		n.Children = []*Rule{
			dropNode(Conditions{Person: Third, Gender: Male, Numerus: Singular}, syms, vs, final3ms),
			dropNode(Conditions{Person: Third, Gender: Female, Numerus: Singular}, syms, vs, ShortA),
			dropNode(Conditions{Person: Third, Gender: Female, Numerus: Dual}, syms, vs, ShortA),
			dropNode(Conditions{Person: Third, Gender: Male, Numerus: Plural}, syms, vs, DiphthongAw),
		}
		return n
	}
	n.Children = []*Rule{
		dropNode(Conditions{SuffixSukun: ptr(true)}, syms, vs, LongI),
		dropNode(Conditions{Person: Third, Gender: Male, Numerus: Plural}, syms, vs, LongU),
	}
	return n
}

// defectivePresent builds the present of a final-weak stem for one vowel
// class.
func defectivePresent(when Conditions, syms []Symbol, vs []Vowel, c defectiveClass) *Rule {
	subjunctive := &Rule{When: Conditions{Moods: []Mood{Subjunctive}}}
	indicative := dropNode(Conditions{}, syms, vs, c.long)
	if c.a {
		subjunctive = dropNode(Conditions{Moods: []Mood{Subjunctive}}, syms, vs, BrokenA)
	}
	singular := []*Rule{
		dropNode(Conditions{Moods: []Mood{Jussive, Imperative}}, syms, vs, c.short),
		subjunctive,
		indicative,
	}

	feminine2 := dropNode(Conditions{Person: Second, Gender: Female, Numerus: Singular}, syms, vs, LongI)
	masculinePlural := dropNode(Conditions{Numerus: Plural, Gender: Male}, syms, vs, LongU)
	femininePlural := dropNode(Conditions{Numerus: Plural, Gender: Female}, syms, vs, c.long)
	if c.a {
		feminine2 = dropNode(feminine2.When, syms, vs, DiphthongAj)
		masculinePlural = dropNode(masculinePlural.When, syms, vs, DiphthongAw)
		femininePlural = &Rule{When: femininePlural.When}
	}

	children := []*Rule{
		{When: Conditions{Person: First, Numerus: Plural}, Children: singular},
		{When: Conditions{Numerus: Dual}},
		feminine2,
		masculinePlural,
		femininePlural,
	}
	return &Rule{When: when, Symbols: syms, Vowels: vs, Children: append(children, singular...)}
}

func addMSADefective(s *templateSet) {
	active, passive := Conditions{Voice: Active}, Conditions{Voice: Passive}
	perfect, present := Conditions{Tense: Perfect}, Conditions{Tense: Present}

	// Stem I: the vowel class follows the Stem-I context.
	sh := msaShapes[1]
	type1 := Conditions{Voice: Active, Contexts: []Stem1Context{ContextDefective1}}
	type2 := Conditions{Voice: Active, Contexts: []Stem1Context{ContextDefective2}}
	stem1 := func(presentSymbols []Symbol, presentVowels []Vowel) *Rule {
		return &Rule{Children: []*Rule{
			{When: perfect, Children: []*Rule{
				defectivePerfect(type1, sh.perfectSymbols, sh.perfectVowels, true, BrokenA),
				defectivePerfect(type2, sh.perfectSymbols, sh.perfectVowels, true, LongA),
				defectivePerfect(Conditions{}, sh.perfectSymbols, sh.perfectVowels, false, 0),
			}},
			{When: present, Children: []*Rule{
				defectivePresent(type1, presentSymbols, presentVowels, defectiveI),
				defectivePresent(type2, presentSymbols, presentVowels, defectiveU),
				defectivePresent(Conditions{}, presentSymbols, presentVowels, defectiveA),
			}},
		}}
	}
	s.add(1, Defective, stem1(sh.presentSymbols, sh.presentVowels))

	// وَفَى, يَفِي, يُوفَى: the weak first radical falls in the present and
	// merges into ū after the passive prefix.
	r23 := symbols(rad2, rad3)
	doubly := stem1(r23, vowels(VowelPresent))
	doubly.Children = append([]*Rule{{
		When:        Conditions{Tense: Present, Voice: Passive},
		PrefixVowel: LongU,
		Children:    []*Rule{defectivePresent(Conditions{}, r23, vowels(VowelPresent), defectiveA)},
	}}, doubly.Children...)
	s.add(1, DoublyWeak, doubly)

	derived := func(sh stemShape, activeClass defectiveClass) *Rule {
		return &Rule{Children: []*Rule{
			{When: perfect, Children: []*Rule{
				defectivePerfect(active, sh.perfectSymbols, sh.perfectVowels, true, BrokenA),
				defectivePerfect(passive, sh.perfectSymbols, sh.perfectVowels, false, 0),
			}},
			{When: present, Children: []*Rule{
				defectivePresent(active, sh.presentSymbols, sh.presentVowels, activeClass),
				defectivePresent(passive, sh.presentSymbols, sh.presentVowels, defectiveA),
			}},
		}}
	}
	for _, stem := range []Stem{2, 3, 4, 5, 6, 7, 8, 10} {
		activeClass := defectiveI
		if stem == 5 || stem == 6 {
			activeClass = defectiveA
		}
		tree := derived(msaShapes[stem], activeClass)
		s.add(stem, Defective, tree)
		if stem != 4 && stem != 8 {
			// وَفَّى, وَافَى, تَوَفَّى, اِسْتَوْفَى
			s.add(stem, DoublyWeak, tree)
		}
	}

	// اِتَّقَى: the weak first radical assimilates to the infix.
	s.add(8, DoublyWeak, derived(stemShape{
		symbols(lit(Ta), infix, rad2, rad3), vowels(Sukun, VowelOpen, VowelPast),
		symbols(lit(Ta), infix, rad2, rad3), vowels(Sukun, ShortA, VowelPresent),
	}, defectiveI))

	// أَوْصَى, يُوصِي, أُوصِيَ: outside the imperative the first radical
	// merges into ū as in the assimilated stem IV.
	sh4 := msaShapes[4]
	s.add(4, DoublyWeak, &Rule{Children: []*Rule{
		{When: perfect, Children: []*Rule{
			defectivePerfect(active, sh4.perfectSymbols, sh4.perfectVowels, true, BrokenA),
			defectivePerfect(passive, symbols(lit(Hamza), rad2, rad3), vowels(LongU, VowelPast), false, 0),
		}},
		{
			When:        Conditions{Moods: []Mood{Indicative, Subjunctive, Jussive}},
			PrefixVowel: LongU,
			Children: []*Rule{
				defectivePresent(active, r23, vowels(VowelPresent), defectiveI),
				defectivePresent(passive, r23, vowels(VowelPresent), defectiveA),
			},
		},
		defectivePresent(present, sh4.presentSymbols, sh4.presentVowels, defectiveI),
	}})
}

func addMSAIrregular(s *templateSet) {
	r1r2 := symbols(rad1, rad2)
	r1r2ya := symbols(rad1, rad2, lit(Ya))

	s.irregular[ContextHayiya] = &Rule{Children: []*Rule{
		{When: Conditions{Tense: Present}, Children: []*Rule{
			{When: Conditions{Numerus: Dual}, Symbols: r1r2ya, Vowels: vowels(Sukun, ShortA, ShortA)},
			{When: Conditions{Numerus: Plural, Gender: Female, Person: Third}, Symbols: r1r2, Vowels: vowels(Sukun, DiphthongAj)},
			{When: Conditions{Numerus: Plural, Gender: Female, Person: Second}, Symbols: r1r2, Vowels: vowels(Sukun, DiphthongAj)},
			{When: Conditions{Moods: []Mood{Imperative}}, Symbols: r1r2, Vowels: vowels(Sukun, ShortA)},
			{When: Conditions{VowelSuffix: ptr(true)}, Symbols: r1r2, Vowels: vowels(Sukun, ShortA)},
			{When: Conditions{Moods: []Mood{Jussive}}, Symbols: r1r2, Vowels: vowels(Sukun, ShortA)},
			{Symbols: r1r2, Vowels: vowels(Sukun, LongA)},
		}},
		{When: Conditions{Person: Third, Numerus: Plural, Gender: Male}, Symbols: r1r2ya, Vowels: vowels(VowelOpen, Sukun)},
		{When: Conditions{Person: Third, Numerus: Plural, Gender: Female}, Symbols: r1r2, Vowels: vowels(VowelOpen, LongI)},
		{When: Conditions{Person: Third}, Symbols: r1r2ya, Vowels: vowels(VowelOpen, ShortI)},
		{Symbols: r1r2, Vowels: vowels(VowelOpen, LongI)},
	}}

	r1r3 := symbols(rad1, rad3)
	s.irregular[ContextLaysa] = &Rule{Children: []*Rule{
		{When: Conditions{Person: Third, Gender: Female, Numerus: Plural}, Symbols: r1r3, Vowels: vowels(ShortA)},
		{When: Conditions{Person: Third}, Symbols: r1r3, Vowels: vowels(DiphthongAj)},
		{Symbols: r1r3, Vowels: vowels(ShortA)},
	}}

	// أَحْيَا, يُحْيِي: stem IV of ح-ي-ي conjugates like a defective verb.
	s.byRoot[rootStemKey{rootHayiya, 4}] = &Rule{Base: Defective}

	// رَأَى, يَرَى and أَرَى, يُرِي: the hamza of ر-ء-ي falls in the present
	// and in the whole of stem IV.
	s.byRoot[rootStemKey{rootRaa, 1}] = &Rule{Children: []*Rule{
		{When: Conditions{Tense: Perfect}, Base: Defective},
		defectivePresent(Conditions{Tense: Present}, r1r3, vowels(ShortA), defectiveA),
	}}
	raa4 := symbols(lit(Hamza), rad1, rad3)
	s.byRoot[rootStemKey{rootRaa, 4}] = &Rule{Children: []*Rule{
		{When: Conditions{Tense: Perfect}, Children: []*Rule{
			defectivePerfect(Conditions{Voice: Active}, raa4, vowels(VowelOpen, VowelPast), true, BrokenA),
			defectivePerfect(Conditions{Voice: Passive}, raa4, vowels(VowelOpen, VowelPast), false, 0),
		}},
		{When: Conditions{Tense: Present}, Children: []*Rule{
			defectivePresent(Conditions{Voice: Active}, r1r3, vowels(VowelPresent), defectiveI),
			defectivePresent(Conditions{Voice: Passive}, r1r3, vowels(VowelPresent), defectiveA),
		}},
	}}
}
