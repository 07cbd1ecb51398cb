package conjugation

// Letter is one Arabic grapheme. The constants below are the code points
// used in every output sequence.
type Letter rune

// Consonants, matres lectionis and hamza spellings.
const (
	Hamza          Letter = 'ء'
	AlefMadda      Letter = 'آ'
	AlefHamza      Letter = 'أ'
	WawHamza       Letter = 'ؤ'
	AlefHamzaBelow Letter = 'إ'
	YaHamza        Letter = 'ئ'
	Alef           Letter = 'ا'
	Ba             Letter = 'ب'
	TaMarbuta      Letter = 'ة'
	Ta             Letter = 'ت'
	Tha            Letter = 'ث'
	Jiim           Letter = 'ج'
	Hha            Letter = 'ح'
	Kha            Letter = 'خ'
	Dal            Letter = 'د'
	Thal           Letter = 'ذ'
	Ra             Letter = 'ر'
	Zay            Letter = 'ز'
	Siin           Letter = 'س'
	Shiin          Letter = 'ش'
	Sad            Letter = 'ص'
	Dad            Letter = 'ض'
	Tta            Letter = 'ط'
	Zha            Letter = 'ظ'
	Ayn            Letter = 'ع'
	Ghayn          Letter = 'غ'
	Fa             Letter = 'ف'
	Qaf            Letter = 'ق'
	Kaf            Letter = 'ك'
	Lam            Letter = 'ل'
	Mim            Letter = 'م'
	Nun            Letter = 'ن'
	Ha             Letter = 'ه'
	Waw            Letter = 'و'
	AlefMaksura    Letter = 'ى'
	Ya             Letter = 'ي'
)

// radicalLetters is the alphabet a root may be built from.
var radicalLetters = map[Letter]bool{
	Hamza: true, Ba: true, Ta: true, Tha: true, Jiim: true, Hha: true,
	Kha: true, Dal: true, Thal: true, Ra: true, Zay: true, Siin: true,
	Shiin: true, Sad: true, Dad: true, Tta: true, Zha: true, Ayn: true,
	Ghayn: true, Fa: true, Qaf: true, Kaf: true, Lam: true, Mim: true,
	Nun: true, Ha: true, Waw: true, Ya: true,
}

// IsRadical reports whether l may appear as a root radical.
func (l Letter) IsRadical() bool { return radicalLetters[l] }

// IsWeak reports whether l is one of the weak radicals waw and ya.
func (l Letter) IsWeak() bool { return l == Waw || l == Ya }

// IsHamza reports whether l is hamza in any of its spellings.
func (l Letter) IsHamza() bool {
	switch l {
	case Hamza, AlefHamza, AlefHamzaBelow, WawHamza, YaHamza, AlefMadda:
		return true
	}
	return false
}

// String returns the letter as text.
func (l Letter) String() string { return string(rune(l)) }

// stem8Infix returns the spelling of the Stem VIII infixed ta after r1:
// emphatics take ṭa, dental voiced consonants take dal.
func stem8Infix(r1 Letter) Letter {
	switch r1 {
	case Sad, Dad, Tta, Zha:
		return Tta
	case Dal, Thal, Zay:
		return Dal
	}
	return Ta
}
