package conjugation

func msaSuffix(q Query) Suffix {
	if q.Tense == Perfect {
		return msaPerfectSuffix(q)
	}
	return msaPresentSuffix(q)
}

func msaPerfectSuffix(q Query) Suffix {
	switch q.Numerus {
	case Singular:
		switch q.Person {
		case Third:
			if q.Gender == Female {
				return Suffix{Previous: ShortA, Elements: []Element{elem(Ta, Sukun)}}
			}
			return Suffix{Previous: ShortA}
		case Second:
			if q.Gender == Female {
				return Suffix{Previous: Sukun, Elements: []Element{elem(Ta, ShortI)}}
			}
			return Suffix{Previous: Sukun, Elements: []Element{elem(Ta, ShortA)}}
		}
		return Suffix{Previous: Sukun, Elements: []Element{elem(Ta, ShortU)}}

	case Dual:
		switch {
		case q.Person == Third && q.Gender == Female:
			return Suffix{Previous: ShortA, Elements: []Element{elem(Ta, LongA)}}
		case q.Person == Third:
			return Suffix{Previous: LongA}
		}
		return Suffix{Previous: Sukun, Elements: []Element{elem(Ta, ShortU), elem(Mim, LongA)}}
	}

	switch {
	case q.Person == First:
		return Suffix{Previous: Sukun, Elements: []Element{elem(Nun, LongA)}}
	case q.Person == Third && q.Gender == Male:
		return Suffix{Previous: LongU, Ending: silentAlef}
	case q.Person == Third:
		return Suffix{Previous: Sukun, Elements: []Element{elem(Nun, ShortA)}}
	case q.Gender == Male:
		return Suffix{Previous: Sukun, Elements: []Element{elem(Ta, ShortU), elem(Mim, Sukun)}}
	}
	return Suffix{Previous: Sukun, Elements: []Element{elem(Ta, ShortU), elem(Nun, Sukun), elem(Nun, ShortA)}}
}

func msaPresentSuffix(q Query) Suffix {
	short := ShortU
	switch q.Mood {
	case Subjunctive:
		short = ShortA
	case Jussive, Imperative:
		short = Sukun
	}
	indicative := q.Mood == Indicative

	switch {
	case q.Numerus == Singular && q.Person == Second && q.Gender == Female:
		if indicative {
			return Suffix{Previous: LongI, Elements: []Element{elem(Nun, ShortA)}}
		}
		return Suffix{Previous: LongI}

	case q.Numerus == Dual:
		if indicative {
			return Suffix{Previous: LongA, Elements: []Element{elem(Nun, ShortI)}}
		}
		return Suffix{Previous: LongA}

	case q.Numerus == Plural && q.Person != First:
		if q.Gender == Female {
			return Suffix{Previous: Sukun, Elements: []Element{elem(Nun, ShortA)}}
		}
		if indicative {
			return Suffix{Previous: LongU, Elements: []Element{elem(Nun, ShortA)}}
		}
		return Suffix{Previous: LongU, Ending: silentAlef}
	}
	return Suffix{Previous: short}
}

// msaPrefix builds the wasl alif of vowelless onsets and the present-tense
// subject marker.
func msaPrefix(in affixInput) []Element {
	q, v := in.query, in.verb
	if q.Tense == Perfect {
		if in.first != Sukun {
			return nil
		}
		if q.Voice == Passive {
			return []Element{elem(Alef, ShortU)}
		}
		return []Element{elem(Alef, ShortI)}
	}

	if q.Mood == Imperative {
		switch {
		case v.stem == 4 && !v.quad():
			return []Element{elem(Hamza, ShortA)}
		case in.rule.prefixVowel != 0:
			return []Element{elem(Alef, in.rule.prefixVowel)}
		case in.first != Sukun:
			return nil
		case v.stem == 1 && v.Melody().Present == ShortU && v.context != ContextHayiya:
			return []Element{elem(Alef, ShortU)}
		}
		return []Element{elem(Alef, ShortI)}
	}

	vowel := in.rule.prefixVowel
	if vowel == 0 {
		vowel = ShortA
		switch {
		case q.Voice == Passive:
			vowel = ShortU
		case v.quad() && v.stem == 1:
			vowel = ShortU
		case !v.quad() && (v.stem == 2 || v.stem == 3 || v.stem == 4):
			vowel = ShortU
		}
	}
	return []Element{elem(presentPersonLetter(q), vowel)}
}
