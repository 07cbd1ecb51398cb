package conjugation

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// decorationReplacer removes characters that carry no morphological
// information: tatweel, the superscript (dagger) alef and zero-width
// joiners sometimes left by keyboards.
var decorationReplacer = strings.NewReplacer(
	"\u0640", "", // tatweel
	"\u0670", "", // superscript alef
	"\u200c", "", // zero width non-joiner
	"\u200d", "", // zero width joiner
)

// tashkilReplacer strips every diacritic the engine emits.
var tashkilReplacer = strings.NewReplacer(
	"\u064b", "", // fathatan
	"\u064c", "", // dammatan
	"\u064d", "", // kasratan
	"\u064e", "", // fatha
	"\u064f", "", // damma
	"\u0650", "", // kasra
	"\u0651", "", // shadda
	"\u0652", "", // sukun
)

// radicalReplacer maps the seated hamza spellings and alef maqsura to the
// letter a root radical is stored as.
var radicalReplacer = strings.NewReplacer(
	"أ", "ء",
	"إ", "ء",
	"ؤ", "ء",
	"ئ", "ء",
	"ى", "ي",
)

// NormalizeVocalized composes s to NFC (so that alef + combining hamza
// becomes أ) and drops decoration characters.
func NormalizeVocalized(s string) string {
	return decorationReplacer.Replace(norm.NFC.String(s))
}

// StripTashkil removes all diacritics from s, leaving the bare letters.
func StripTashkil(s string) string {
	return tashkilReplacer.Replace(NormalizeVocalized(s))
}

// ParseRoot reads a root written as "ك-ت-ب", "ك ت ب" or "كتب".
// Seated hamzas are stored as bare hamza; diacritics are ignored.
func ParseRoot(s string) (Root, error) {
	clean := radicalReplacer.Replace(StripTashkil(strings.TrimSpace(s)))
	var radicals []Letter
	for _, r := range clean {
		if r == '-' || unicode.IsSpace(r) {
			continue
		}
		radicals = append(radicals, Letter(r))
	}
	root, err := NewRoot(radicals...)
	if err != nil {
		return Root{}, fmt.Errorf("parse root %q: %w", s, err)
	}
	return root, nil
}
