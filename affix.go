package conjugation

// Suffix is what follows the stem: the vowel given to the last stem
// consonant, the suffix letters, and an optional silent ending.
type Suffix struct {
	Previous Vowel
	Elements []Element
	Ending   *Ending
}

// silentAlef is the alef written after the masculine plural ū.
var silentAlef = &Ending{Consonant: Alef, Final: FinalNone}

// affixInput carries what the prefix builders need beyond the query.
type affixInput struct {
	query Query
	verb  *Verb
	rule  resolvedRule
	// first is the resolved vowel on the first stem consonant.
	first Vowel
}

// presentPersonLetter is the subject marker of the present tense.
func presentPersonLetter(q Query) Letter {
	switch {
	case q.Person == First && q.Numerus == Singular:
		return Hamza
	case q.Person == First:
		return Nun
	case q.Person == Second:
		return Ta
	case q.Gender == Female && q.Numerus != Plural:
		return Ta
	}
	return Ya
}

// takesVowelSuffix reports the present-tense cells whose suffix starts with
// a vowel: 2nd feminine singular, dual, 2nd and 3rd masculine plural.
func takesVowelSuffix(q Query) bool {
	if q.Tense != Present {
		return false
	}
	switch q.Numerus {
	case Singular:
		return q.Person == Second && q.Gender == Female
	case Dual:
		return true
	case Plural:
		return q.Person != First && q.Gender == Male
	}
	return false
}
