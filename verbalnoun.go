package conjugation

import (
	"fmt"
	"unicode/utf8"
)

// Noun patterns are written one consonant at a time, each followed by its
// vowel:
//
//	1-4      root radical
//	t        Stem VIII infix (ت, ط or د after r1)
//	ء..ي     literal letter
//	a i u 0  short vowel or sukun
//	A I U    long vowel
//	K        kasratan on the last consonant (تَرَبٍّ)
//	F        fathatan and alef maqsura on the last consonant (هَوًى)
//
// A last consonant without a vowel ends the word unmarked: "1a203"
// is فَعْل.
var patternVowels = map[rune]Vowel{
	'a': ShortA, 'i': ShortI, 'u': ShortU, '0': Sukun,
	'A': LongA, 'I': LongI, 'U': LongU,
}

var patternFinals = map[rune]FinalMark{
	'K': FinalKasratan,
	'F': FinalAlefMaksuraFathatan,
}

// expandPattern fills a noun pattern with the radicals of root.
func expandPattern(p string, root Root) (Word, error) {
	var (
		w       Word
		pending Letter
	)
	for i, r := range p {
		if v, ok := patternVowels[r]; ok {
			if pending == 0 {
				return Word{}, fmt.Errorf("%w: pattern %q: vowel at %d follows no consonant", ErrUnresolvedRule, p, i)
			}
			w.Elements = append(w.Elements, elem(pending, v))
			pending = 0
			continue
		}
		if f, ok := patternFinals[r]; ok {
			if pending == 0 || i+utf8.RuneLen(r) != len(p) {
				return Word{}, fmt.Errorf("%w: pattern %q: final mark at %d", ErrUnresolvedRule, p, i)
			}
			w.Ending = &Ending{Consonant: pending, Final: f}
			return w, nil
		}

		if pending != 0 {
			return Word{}, fmt.Errorf("%w: pattern %q: consonant at %d has no vowel", ErrUnresolvedRule, p, i)
		}
		switch {
		case r >= '1' && r <= '4':
			pending = root.R(int(r - '0'))
			if pending == 0 {
				return Word{}, fmt.Errorf("%w: pattern %q needs radical %c of %s", ErrUnresolvedRule, p, r, root)
			}
		case r == 't':
			pending = stem8Infix(root.R(1))
		case r >= 'ء' && r <= 'ي':
			pending = Letter(r)
		default:
			return Word{}, fmt.Errorf("%w: pattern %q: unexpected %q", ErrUnresolvedRule, p, r)
		}
	}
	if pending != 0 {
		w.Ending = &Ending{Consonant: pending, Final: FinalNone}
	}
	return w, nil
}

type nounKey struct {
	category Category
	context  Stem1Context
}

// msaStem1Nouns are the attested Stem-I verbal noun patterns per category
// and melody.
var msaStem1Nouns = map[nounKey][]string{
	{Sound, ContextUU}: {"1u2U3aة", "1u203", "1u203aة", "1a2a3", "1a2A3", "1a2A3aة", "1a203", "1a203aة"},
	{Sound, ContextAA}: {"1u2U3", "1u2A3", "1a203", "1i203", "1i2A3aة", "مa102a3aة"},
	{Sound, ContextAI}: {"1u203", "1u2U3", "1u203Aن", "1u203aة", "1a203", "1a2i3aة", "1i203aة", "1i203", "مa102i3aة"},
	{Sound, ContextAU}: {"1u2U3", "1u2A3", "1a2a3", "1a2A3aة", "1a203", "1i2A3aة", "1i203aة", "مa102a3"},
	{Sound, ContextIA}: {"1u2U3", "1u203", "1a2a3", "1a2i3aة", "1a203", "1a203aة", "1a2A3", "1a2A3aة", "1i203"},

	{Assimilated, ContextUU}: {"1u203", "1a203"},
	{Assimilated, ContextAA}: {"1u2U3", "1a203"},
	{Assimilated, ContextAI}: {"1a203", "1u2U3", "2i3aة"},
	{Assimilated, ContextIA}: {"1a203"},
	{Assimilated, ContextII}: {"1a203", "2i3aة"},

	{DoublyWeak, ContextDefective1}: {"1a203", "1i2Aيaة"},

	{Defective, ContextDefective1}: {"1a2Aء", "1a20ي", "1i2Aء", "1i2Aيaة", "1i20يAن"},
	{Defective, ContextDefective2}: {"1a20و", "1a20وaى"},
	{Defective, ContextDefective3}: {"1a2Aء", "1a2F", "1a20يaة", "1i2Aء"},

	{HamzaOnR1, ContextUU}: {"1a2a3", "ءa2A3aة", "ءi2A3aة"},
	{HamzaOnR1, ContextAU}: {"1a203"},
	{HamzaOnR1, ContextAI}: {"1a203"},
	{HamzaOnR1, ContextIA}: {"1a2A3"},

	{Hollow, ContextUU}: {"1U3", "1aوA3", "1aو03", "1aو03aة", "1iيA3", "1iيA3aة", "مa1A3"},
	{Hollow, ContextIA}: {"1aي03aة"},
	{Hollow, ContextII}: {"1aيa3Aن", "1aيA3", "1aي03", "1aي03aة", "1iيA3", "1I3aة", "1iيA3aة", "مa1I3aة"},

	{Geminate, ContextAA}: {"1a203"},
	{Geminate, ContextAU}: {"1u2U3", "1a2A3aة", "1a203", "1i2A3"},
	{Geminate, ContextAI}: {"1u2U3", "1u202", "1a2A3", "1a2I3", "1a203", "1i2A3", "1i203", "1i203aة"},
	{Geminate, ContextIA}: {"1i202", "مa1a202aة"},

	{Quadriliteral, ContextQuad}: {"1a203a4aة"},

	// حَيِيَ
	{Geminate, ContextHayiya}: {"1a2Aة"},
}

// msaDerivedNouns are the verbal noun patterns of the derived stems. A
// category without an entry uses the Sound entry of its stem.
var msaDerivedNouns = map[Stem]map[Category][]string{
	2: {
		Sound:       {"تa102I3", "تa102i3aة"},
		HamzaOnR1:   {"تa102I3"},
		Assimilated: {"تa102I3"},
		Hollow:      {"تa102I3"},
		Geminate:    {"تa102A3", "تa102I3"},
		Defective:   {"تa102iيaة"},
		DoublyWeak:  {"تa102iيaة"},
	},
	3: {
		Sound:      {"مu1A2a3aة", "1i2A3"},
		Geminate:   {"مu1A203aة", "1i2A3"},
		Defective:  {"مu1A2Aة"},
		DoublyWeak: {"مu1A2Aة"},
	},
	4: {
		Sound:       {"ءi102A3"},
		HamzaOnR1:   {"ءI2A3"},
		Assimilated: {"ءI2A3"},
		Hollow:      {"ءi1A3aة"},
		Defective:   {"ءi102Aء"},
		DoublyWeak:  {"ءI2Aء"},
	},
	5: {
		Sound:      {"تa1a202u3"},
		Defective:  {"تa1a202K"},
		DoublyWeak: {"تa1a202K"},
	},
	6: {
		Sound:      {"تa1A2u3"},
		Defective:  {"تa1A2K"},
		DoublyWeak: {"تa1A2K"},
	},
	7: {
		Sound:      {"اiن01i2A3"},
		Hollow:     {"اiن01iيA3"},
		Defective:  {"اiن01i2Aء"},
		DoublyWeak: {"اiن01i2Aء"},
	},
	8: {
		Sound:       {"اi10ti2A3"},
		Assimilated: {"اiت0ti2A3"},
		Hollow:      {"اi10tiيA3"},
		Defective:   {"اi10ti2Aء"},
		DoublyWeak:  {"اiت0ti2Aء"},
	},
	9: {
		Sound: {"اi102i3A3"},
	},
	10: {
		Sound:       {"اiس0تi102A3"},
		Assimilated: {"اiس0تI2A3"},
		Hollow:      {"اiس0تi1A3aة"},
		Defective:   {"اiس0تi102Aء"},
		DoublyWeak:  {"اiس0تI2Aء"},
	},
}

// msaRootNouns override the tables for single roots.
var msaRootNouns = map[rootStemKey][]string{
	{rootRaa, 1}: {"1a20ي", "1u20يaة"},
	{rootRaa, 4}: {"ءi1Aءaة"},
}

// msaDefectiveStem1Nouns covers the defective roots whose second radical
// is weak too.
func msaDefectiveStem1Nouns(v *Verb) []string {
	r := v.root
	switch {
	case v.context == ContextDefective3 && r.Equals(Hha, Ya, Waw):
		return []string{"1a2Aء", "1a2Aة"}
	case r.R(2) != Waw || r.R(3) != Ya:
		return nil
	case v.context == ContextDefective1:
		// طَيّ, رِوَايَة
		return []string{"1aي0ي", "1i2Aيaة"}
	case v.context == ContextDefective3:
		// قُوَّة, هَوًى
		return []string{"1u202aة", "1a2F"}
	}
	return nil
}

var msaQuadNouns = map[Stem][]string{
	2: {"تa1a203u4"},
	4: {"اi102i304Aن"},
}

func msaVerbalNouns(v *Verb) ([]string, error) {
	if p, ok := msaRootNouns[rootStemKey{v.root, v.stem}]; ok {
		return p, nil
	}
	var patterns []string
	switch {
	case v.stem == 1 && v.category == Defective:
		patterns = msaDefectiveStem1Nouns(v)
		if patterns == nil {
			patterns = msaStem1Nouns[nounKey{v.category, v.context}]
		}
	case v.stem == 1:
		patterns = msaStem1Nouns[nounKey{v.category, v.context}]
	case v.quad():
		patterns = msaQuadNouns[v.stem]
	default:
		byCat := msaDerivedNouns[v.stem]
		patterns = byCat[v.category]
		if patterns == nil {
			patterns = byCat[Sound]
		}
	}
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no attested verbal noun for %s", ErrNotImplemented, v)
	}
	return patterns, nil
}
