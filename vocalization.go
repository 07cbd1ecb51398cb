package conjugation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Tashkil is the diacritic written on a letter. MarkLong and MarkEndOfWord
// are invisible: they tag matres lectionis and word-final letters.
type Tashkil int

const (
	MarkNone Tashkil = iota
	MarkFatha
	MarkKasra
	MarkDhamma
	MarkSukun
	MarkLong
	MarkEndOfWord
	MarkFathatan
	MarkKasratan
	MarkDammatan
)

var tashkilRunes = map[Tashkil]rune{
	MarkFatha:    'َ',
	MarkKasra:    'ِ',
	MarkDhamma:   'ُ',
	MarkSukun:    'ْ',
	MarkFathatan: 'ً',
	MarkKasratan: 'ٍ',
	MarkDammatan: 'ٌ',
}

const shaddaRune = 'ّ'

// runeTashkil is the inverse of tashkilRunes.
var runeTashkil = func() map[rune]Tashkil {
	m := make(map[rune]Tashkil, len(tashkilRunes))
	for t, r := range tashkilRunes {
		m[r] = t
	}
	return m
}()

// DisplayVocalized is one letter of an output form with its diacritics.
// Emphasis marks the stressed syllable in the Lebanese templates and is not
// rendered.
type DisplayVocalized struct {
	Letter   Letter  `json:"letter" yaml:"letter"`
	Tashkil  Tashkil `json:"tashkil" yaml:"tashkil"`
	Shadda   bool    `json:"shadda,omitempty" yaml:"shadda,omitempty"`
	Emphasis bool    `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
}

// Element is a consonant followed by its semantic vowel.
type Element struct {
	Consonant Letter
	Vowel     Vowel
	Emphasis  bool
}

// FinalMark is the mark written on a word's ending consonant.
type FinalMark int

const (
	FinalNone FinalMark = iota
	FinalSukun
	FinalKasratan
	FinalFathatan
	// FinalAlefMaksuraFathatan writes fathatan followed by alef maqsura
	// (مُسْتَشْفًى).
	FinalAlefMaksuraFathatan
)

// Ending is a word-final consonant that carries no semantic vowel, such
// as the silent alef after a masculine plural ū or a nunated radical.
type Ending struct {
	Consonant Letter
	Final     FinalMark
}

// Word is an assembled form before spelling.
type Word struct {
	Elements []Element
	Ending   *Ending
}

func elem(c Letter, v Vowel) Element { return Element{Consonant: c, Vowel: v} }

// vowelMark maps the short part of a vowel to its diacritic.
func vowelMark(v Vowel) Tashkil {
	switch v.short() {
	case ShortA:
		return MarkFatha
	case ShortI:
		return MarkKasra
	case ShortU:
		return MarkDhamma
	case Sukun:
		return MarkSukun
	}
	return MarkNone
}

// Spell turns a word into display letters: hamzas are seated, long vowels
// and diphthongs get their mater lectionis, the ending gets its final mark
// and doubled consonants are written with shadda.
func (w Word) Spell() []DisplayVocalized {
	elems := seatHamzas(w.Elements, w.Ending)
	out := make([]DisplayVocalized, 0, 2*len(elems)+2)
	for _, el := range elems {
		if el.Consonant == AlefMadda && el.Vowel == LongA {
			out = append(out, DisplayVocalized{Letter: AlefMadda, Tashkil: MarkLong, Emphasis: el.Emphasis})
			continue
		}
		out = append(out, DisplayVocalized{Letter: el.Consonant, Tashkil: vowelMark(el.Vowel), Emphasis: el.Emphasis})
		switch el.Vowel {
		case LongA:
			out = append(out, DisplayVocalized{Letter: Alef, Tashkil: MarkLong})
		case LongI:
			out = append(out, DisplayVocalized{Letter: Ya, Tashkil: MarkLong})
		case LongU:
			out = append(out, DisplayVocalized{Letter: Waw, Tashkil: MarkLong})
		case DiphthongAj:
			out = append(out, DisplayVocalized{Letter: Ya, Tashkil: MarkSukun})
		case DiphthongAw:
			out = append(out, DisplayVocalized{Letter: Waw, Tashkil: MarkSukun})
		case BrokenA:
			// after ya the broken a is written with alef: أَحْيَا, يُحْيَا
			mater := AlefMaksura
			if el.Consonant == Ya {
				mater = Alef
			}
			out = append(out, DisplayVocalized{Letter: mater, Tashkil: MarkLong})
		}
	}
	if end := w.Ending; end != nil {
		c := end.Consonant
		if c == Hamza && len(elems) > 0 {
			c = finalHamzaSeat(elems[len(elems)-1].Vowel)
		}
		switch end.Final {
		case FinalNone:
			out = append(out, DisplayVocalized{Letter: c, Tashkil: MarkEndOfWord})
		case FinalSukun:
			out = append(out, DisplayVocalized{Letter: c, Tashkil: MarkSukun})
		case FinalKasratan:
			out = append(out, DisplayVocalized{Letter: c, Tashkil: MarkKasratan})
		case FinalFathatan:
			out = append(out, DisplayVocalized{Letter: c, Tashkil: MarkFathatan})
		case FinalAlefMaksuraFathatan:
			out = append(out,
				DisplayVocalized{Letter: c, Tashkil: MarkFathatan},
				DisplayVocalized{Letter: AlefMaksura, Tashkil: MarkEndOfWord})
		}
	}
	return collapseShadda(out)
}

// collapseShadda merges a letter without vowel into an identical following
// letter, which then carries shadda. A long ī or ū followed by its own
// letter merges the same way (مَدْعُوّ). The first letter never merges.
func collapseShadda(in []DisplayVocalized) []DisplayVocalized {
	out := make([]DisplayVocalized, 0, len(in))
	for i := 0; i < len(in); i++ {
		cur := in[i]
		if i > 0 && i+1 < len(in) && in[i+1].Letter == cur.Letter && !in[i+1].Shadda && mergeable(cur) {
			next := in[i+1]
			next.Shadda = true
			next.Emphasis = next.Emphasis || cur.Emphasis
			out = append(out, next)
			i++
			continue
		}
		out = append(out, cur)
	}
	return out
}

func mergeable(d DisplayVocalized) bool {
	switch d.Tashkil {
	case MarkSukun:
		return true
	case MarkLong:
		return d.Letter == Waw || d.Letter == Ya
	}
	return false
}

// Render writes the sequence as Unicode text in NFC.
func Render(seq []DisplayVocalized) string {
	var b strings.Builder
	for _, d := range seq {
		b.WriteRune(rune(d.Letter))
		if r, ok := tashkilRunes[d.Tashkil]; ok {
			b.WriteRune(r)
		}
		if d.Shadda {
			b.WriteRune(shaddaRune)
		}
	}
	return norm.NFC.String(b.String())
}

// ParseVocalized reads vocalized text into display letters. Marks attach
// to the preceding letter; letters without a mark get MarkNone.
func ParseVocalized(s string) []DisplayVocalized {
	var out []DisplayVocalized
	for _, r := range NormalizeVocalized(s) {
		if r == shaddaRune {
			if len(out) > 0 {
				out[len(out)-1].Shadda = true
			}
			continue
		}
		if t, ok := runeTashkil[r]; ok {
			if len(out) > 0 {
				out[len(out)-1].Tashkil = t
			}
			continue
		}
		out = append(out, DisplayVocalized{Letter: Letter(r)})
	}
	return out
}

// CompareVocalized reports whether a and b are written the same. Emphasis
// is ignored and the invisible marks equal MarkNone.
func CompareVocalized(a, b []DisplayVocalized) bool {
	return Render(a) == Render(b)
}
