package conjugation

import "fmt"

// Stem-I participles follow fixed patterns (see expandPattern). Derived
// stems build theirs from the 3rd masculine singular present stem with a
// mim prefix: يُكَاتِبُ → مُكَاتِب, بْيِسْتَعْمِلْ → مِسْتَعْمِلْ.

func msaParticiple(c *Conjugator, v *Verb, voice Voice) (Word, error) {
	if v.stem != 1 || v.quad() {
		return msaDerivedParticiple(c, v, voice)
	}
	p, err := msaStem1Participle(v, voice)
	if err != nil {
		return Word{}, err
	}
	return expandPattern(p, v.root)
}

func msaStem1Participle(v *Verb, voice Voice) (string, error) {
	active := voice == Active
	switch v.context {
	case ContextLaysa:
		return "", fmt.Errorf("%w: participle of لَيْسَ", ErrNotImplemented)
	case ContextHayiya:
		if active {
			return "1a20ي", nil
		}
		return "", fmt.Errorf("%w: passive participle of حَيِيَ", ErrNotImplemented)
	}

	switch v.category {
	case Hollow:
		switch {
		case active && v.root.R(3) == Hamza:
			return "1A3K", nil
		case active:
			return "1Aءi3", nil
		case v.root.R(2) == Ya:
			return "مa1I3", nil
		}
		return "مa1U3", nil
	case Geminate:
		if active {
			return "1A203", nil
		}
		return "مa102U3", nil
	case Defective, DoublyWeak:
		switch {
		case active:
			return "1A2K", nil
		case v.context == ContextDefective2:
			return "مa102Uو", nil
		}
		return "مa102Iي", nil
	}
	if active {
		return "1A2i3", nil
	}
	return "مa102U3", nil
}

// participleStem returns the 3rd masculine singular present stem of v.
func participleStem(c *Conjugator, v *Verb, voice Voice) (assembledStem, error) {
	q := Query{Tense: Present, Mood: Indicative, Voice: voice, Person: Third, Gender: Male, Numerus: Singular}
	return c.stem(v, q)
}

func msaDerivedParticiple(c *Conjugator, v *Verb, voice Voice) (Word, error) {
	st, err := participleStem(c, v, voice)
	if err != nil {
		return Word{}, err
	}
	mim := ShortU
	if pv := st.rule.prefixVowel; pv.isLong() {
		// مُوصِل from يُوصِلُ
		mim = pv
	}
	body := append([]Element{elem(Mim, mim)}, st.elements...)
	last := body[len(body)-1]
	body = body[:len(body)-1]

	// A 3ms present stem ending in ī or broken a has lost its final
	// radical: مُعْطٍ, مُعْطًى, مُحْيٍ.
	if last.Vowel == LongI || last.Vowel == BrokenA {
		final := FinalKasratan
		if voice == Passive {
			final = FinalAlefMaksuraFathatan
		}
		return Word{Elements: body, Ending: &Ending{Consonant: last.Consonant, Final: final}}, nil
	}
	if voice == Active {
		pen := &body[len(body)-1]
		switch pen.Vowel {
		case ShortA, ShortU:
			pen.Vowel = ShortI
		}
	}
	return Word{Elements: body, Ending: &Ending{Consonant: last.Consonant, Final: FinalNone}}, nil
}

func lebaneseParticiple(c *Conjugator, v *Verb, voice Voice) (Word, error) {
	if v.stem != 1 {
		return lebaneseDerivedParticiple(c, v, voice)
	}
	var p string
	switch {
	case v.context == ContextIrjy2:
		p = "1Aي"
	case v.category == Quadriliteral:
		p = "م01a203i4"
	case v.category == Hollow:
		p = "1Aيi3"
	case v.category == Defective || v.category == DoublyWeak:
		p = "1A2I"
	default:
		p = "1A2i3"
	}
	return expandPattern(p, v.root)
}

func lebaneseDerivedParticiple(c *Conjugator, v *Verb, voice Voice) (Word, error) {
	st, err := participleStem(c, v, voice)
	if err != nil {
		return Word{}, err
	}
	mim := ShortI
	switch v.stem {
	case 2, 3:
		mim = Sukun
	case 4:
		mim = ShortU
	}
	elems := append([]Element{elem(Mim, mim)}, st.elements...)
	for i := 1; i < len(elems); i++ {
		el := &elems[i]
		switch {
		case (v.stem == 7 || v.stem == 8) && (el.Vowel == ShortA || el.Vowel == ShortU):
			el.Vowel = ShortI
		case el.Vowel == BrokenA:
			el.Vowel = LongI
		}
	}
	return Word{Elements: elems}, nil
}
