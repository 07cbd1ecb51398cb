package conjugation

// lebaneseSuffix builds the Lebanese person endings. Verbs with a weak
// final radical keep their last vowel in the suffix: رَمَى, رَمَيْتْ,
// بْيِرْمِي.
func lebaneseSuffix(q Query, defective bool) Suffix {
	if q.Tense == Perfect {
		switch {
		case q.Numerus == Plural && q.Person == First:
			return Suffix{Previous: levantineStemFinal(defective, Sukun), Elements: []Element{elem(Nun, LongA)}}
		case q.Numerus == Plural && q.Person == Second:
			return Suffix{Previous: levantineStemFinal(defective, Sukun), Elements: []Element{elem(Ta, LongU)}, Ending: silentAlef}
		case q.Numerus == Plural:
			return Suffix{Previous: LongU, Ending: silentAlef}
		case q.Person == Second && q.Gender == Female:
			return Suffix{Previous: levantineStemFinal(defective, Sukun), Elements: []Element{elem(Ta, LongI)}}
		case q.Person == Third && q.Gender == Male:
			if defective {
				return Suffix{Previous: BrokenA}
			}
			return Suffix{Previous: Sukun}
		case q.Person == Third:
			return Suffix{Previous: ShortI, Elements: []Element{elem(Ta, Sukun)}}
		}
		return Suffix{Previous: levantineStemFinal(defective, ShortI), Elements: []Element{elem(Ta, Sukun)}}
	}

	switch {
	case q.Numerus == Plural && q.Person != First:
		return Suffix{Previous: LongU, Ending: silentAlef}
	case q.Person == Second && q.Gender == Female && q.Numerus == Singular:
		return Suffix{Previous: LongI}
	case defective:
		return Suffix{Previous: LongI}
	}
	return Suffix{Previous: Sukun}
}

// levantineStemFinal is the vowel before a consonantal perfect suffix:
// the diphthong ay for defective verbs.
func levantineStemFinal(defective bool, v Vowel) Vowel {
	if defective {
		return DiphthongAj
	}
	return v
}

func levantineVowelSuffix(q Query) bool {
	if q.Tense != Present {
		return false
	}
	switch q.Numerus {
	case Singular:
		return q.Person == Second && q.Gender == Female
	case Plural:
		return q.Person != First
	}
	return false
}

// lebanesePrefix builds the subject marker and the b-/m- indicative
// marker. A prefix vowel of sukun (hollow and geminate verbs) moves the
// vowel onto the b-: بِيرُوحْ, بِتْرُوحْ, بْرُوحْ, مِنْرُوحْ.
func lebanesePrefix(in affixInput) []Element {
	q := in.query
	if q.Tense == Perfect || q.Mood == Imperative {
		return nil
	}
	vowel := in.rule.prefixVowel
	if vowel == 0 {
		vowel = ShortI
	}
	letter := presentPersonLetter(q)
	firstSingular := q.Person == First && q.Numerus == Singular
	firstPlural := q.Person == First && q.Numerus == Plural

	if q.Mood != Indicative {
		if vowel == Sukun && firstSingular {
			return nil
		}
		return []Element{elem(letter, vowel)}
	}

	if vowel == Sukun {
		switch {
		case firstSingular:
			return []Element{elem(Ba, Sukun)}
		case firstPlural:
			return []Element{elem(Mim, ShortI), elem(Nun, Sukun)}
		case letter == Ya:
			return []Element{elem(Ba, LongI)}
		}
		return []Element{elem(Ba, ShortI), elem(letter, Sukun)}
	}
	switch {
	case firstSingular:
		return []Element{elem(Ba, vowel)}
	case firstPlural:
		return []Element{elem(Mim, Sukun), elem(Nun, vowel)}
	}
	return []Element{elem(Ba, Sukun), elem(letter, vowel)}
}
