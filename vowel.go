package conjugation

import "fmt"

// Vowel is a semantic vowel: what is pronounced after a consonant, before
// it is spelled with diacritics and matres lectionis. The zero value means
// "not given" in templates.
type Vowel int

const (
	Sukun Vowel = iota + 1
	ShortA
	ShortI
	ShortU
	LongA
	LongI
	LongU
	DiphthongAj
	DiphthongAw
	// BrokenA is ā spelled with alef maqsura (رَمَى).
	BrokenA
)

// Symbolic vowels. Templates use them where the vowel depends on the voice
// or on the Stem-I melody; resolveVowel replaces them before assembly.
const (
	// VowelOpen is a in the active, u in the passive.
	VowelOpen Vowel = iota + 100
	// VowelLongOpen is ā in the active, ū in the passive.
	VowelLongOpen
	// VowelPast is the melody's past vowel, i in the passive.
	VowelPast
	// VowelPresent is the melody's present vowel, a in the passive.
	VowelPresent
	// VowelLongPresent is VowelPresent lengthened.
	VowelLongPresent
	// VowelLongPerfect is ā in the active, ī in the passive.
	VowelLongPerfect
)

var vowelNames = map[Vowel]string{
	Sukun:            "0",
	ShortA:           "a",
	ShortI:           "i",
	ShortU:           "u",
	LongA:            "ā",
	LongI:            "ī",
	LongU:            "ū",
	DiphthongAj:      "aj",
	DiphthongAw:      "aw",
	BrokenA:          "á",
	VowelOpen:        "<open>",
	VowelLongOpen:    "<long open>",
	VowelPast:        "<past>",
	VowelPresent:     "<present>",
	VowelLongPresent: "<long present>",
	VowelLongPerfect: "<long perfect>",
}

func (v Vowel) String() string {
	if s, ok := vowelNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Vowel(%d)", int(v))
}

// short returns the short vowel v is built on. Diphthongs and broken a
// count as a; sukun and unset stay as they are.
func (v Vowel) short() Vowel {
	switch v {
	case ShortA, LongA, DiphthongAj, DiphthongAw, BrokenA:
		return ShortA
	case ShortI, LongI:
		return ShortI
	case ShortU, LongU:
		return ShortU
	}
	return v
}

func (v Vowel) lengthen() Vowel {
	switch v {
	case ShortA:
		return LongA
	case ShortI:
		return LongI
	case ShortU:
		return LongU
	}
	return v
}

// isLong reports long vowels and diphthongs.
func (v Vowel) isLong() bool {
	switch v {
	case LongA, LongI, LongU, DiphthongAj, DiphthongAw, BrokenA:
		return true
	}
	return false
}

func (v Vowel) symbolic() bool { return v >= VowelOpen }

// resolveVowel replaces a symbolic vowel by the concrete vowel for the
// voice and melody. Concrete vowels pass through.
func resolveVowel(v Vowel, voice Voice, m Melody) Vowel {
	passive := voice == Passive
	switch v {
	case VowelOpen:
		if passive {
			return ShortU
		}
		return ShortA
	case VowelLongOpen:
		if passive {
			return LongU
		}
		return LongA
	case VowelPast:
		if passive {
			return ShortI
		}
		return m.Past
	case VowelPresent:
		if passive {
			return ShortA
		}
		return m.Present
	case VowelLongPresent:
		return resolveVowel(VowelPresent, voice, m).lengthen()
	case VowelLongPerfect:
		if passive {
			return LongI
		}
		return LongA
	}
	return v
}
