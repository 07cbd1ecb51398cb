package conjugation

// seatHamzas replaces every bare hamza consonant by its written seat. The
// seat depends on the hamza's own vowel and the vowel before it; of the
// two, i is strongest, then u, then a.
func seatHamzas(in []Element, end *Ending) []Element {
	elems := make([]Element, 0, len(in))
	for i := 0; i < len(in); i++ {
		el := in[i]
		if el.Consonant != Hamza {
			elems = append(elems, el)
			continue
		}
		var prev Vowel
		if i > 0 {
			prev = in[i-1].Vowel
		}
		// A voweled hamza followed by ءْ is written as one hamza with the
		// long vowel: آمَنَ, أُومِنَ, إِيمَان.
		if long := el.Vowel.lengthen(); long != el.Vowel && i+1 < len(in) && in[i+1].Consonant == Hamza && in[i+1].Vowel == Sukun {
			seat := AlefMadda
			if long != LongA {
				seat = hamzaSeat(i, prev, long, false)
			}
			elems = append(elems, Element{Consonant: seat, Vowel: long, Emphasis: el.Emphasis || in[i+1].Emphasis})
			i++
			continue
		}
		el.Consonant = hamzaSeat(i, prev, el.Vowel, i == len(in)-1 && end == nil)
		if el.Consonant == AlefHamza && el.Vowel == LongA {
			el.Consonant = AlefMadda
		}
		elems = append(elems, el)
	}
	return elems
}

func hamzaSeat(pos int, prev, own Vowel, final bool) Letter {
	switch {
	case pos == 0:
		if own.short() == ShortI {
			return AlefHamzaBelow
		}
		return AlefHamza
	case final:
		return finalHamzaSeat(prev)
	case prev.isLong():
		switch own.short() {
		case ShortI:
			return YaHamza
		case ShortU:
			return WawHamza
		}
		if prev == DiphthongAj || prev == LongI {
			return YaHamza
		}
		return Hamza
	}
	o, p := own.short(), prev.short()
	switch {
	case o == ShortI || p == ShortI:
		return YaHamza
	case o == ShortU || p == ShortU:
		return WawHamza
	case o == ShortA || p == ShortA:
		return AlefHamza
	}
	return Hamza
}

// finalHamzaSeat seats a word-final hamza on the letter matching the
// preceding short vowel. After a long vowel or sukun it stands alone.
func finalHamzaSeat(prev Vowel) Letter {
	switch prev {
	case ShortA:
		return AlefHamza
	case ShortI:
		return YaHamza
	case ShortU:
		return WawHamza
	}
	return Hamza
}
