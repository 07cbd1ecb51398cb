package conjugation

// southLevantineSuffix differs from the Lebanese endings in the 3rd
// feminine singular (أَعْدَتْ) and in the plural, which is written without
// the silent alef (أَعْدُو, بْتِعْدُو).
func southLevantineSuffix(q Query, defective bool) Suffix {
	if q.Tense == Perfect {
		switch {
		case q.Numerus == Plural && q.Person == First:
			return Suffix{Previous: levantineStemFinal(defective, Sukun), Elements: []Element{elem(Nun, LongA)}}
		case q.Numerus == Plural && q.Person == Second:
			return Suffix{Previous: levantineStemFinal(defective, Sukun), Elements: []Element{elem(Ta, LongU)}}
		case q.Numerus == Plural:
			return Suffix{Previous: LongU}
		case q.Person == Second && q.Gender == Female:
			return Suffix{Previous: levantineStemFinal(defective, Sukun), Elements: []Element{elem(Ta, LongI)}}
		case q.Person == Third && q.Gender == Male:
			if defective {
				return Suffix{Previous: BrokenA}
			}
			return Suffix{Previous: Sukun}
		case q.Person == Third:
			return Suffix{Previous: ShortA, Elements: []Element{elem(Ta, Sukun)}}
		}
		return Suffix{Previous: levantineStemFinal(defective, Sukun), Elements: []Element{elem(Ta, Sukun)}}
	}

	switch {
	case q.Numerus == Plural && q.Person != First:
		return Suffix{Previous: LongU}
	case q.Person == Second && q.Gender == Female && q.Numerus == Singular:
		return Suffix{Previous: LongI}
	case defective:
		return Suffix{Previous: LongI}
	}
	return Suffix{Previous: Sukun}
}

// southLevantinePrefix uses a helping alif before a vowelless onset in
// the perfect and imperative (اِنْقَالْ, اِعْدِي) and an a-vowel for the
// 1st singular (أَعْدِي, بَعْدِي). A sukun prefix vowel elides the ي of
// the indicative: بِنْقَالْ.
func southLevantinePrefix(in affixInput) []Element {
	q := in.query
	if q.Tense == Perfect || q.Mood == Imperative {
		if in.first == Sukun {
			return []Element{elem(Alef, ShortI)}
		}
		return nil
	}

	letter := presentPersonLetter(q)
	vowel := in.rule.prefixVowel
	elide := vowel == Sukun && letter == Ya
	if vowel == 0 || vowel == Sukun {
		vowel = ShortI
	}
	firstSingular := q.Person == First && q.Numerus == Singular

	if q.Mood != Indicative {
		if firstSingular {
			return []Element{elem(Hamza, ShortA)}
		}
		return []Element{elem(letter, vowel)}
	}
	switch {
	case firstSingular:
		return []Element{elem(Ba, ShortA)}
	case q.Person == First:
		return []Element{elem(Mim, Sukun), elem(Nun, vowel)}
	case elide:
		return []Element{elem(Ba, ShortI)}
	}
	return []Element{elem(Ba, Sukun), elem(letter, vowel)}
}
