package conjugation

import (
	"errors"
	"fmt"
)

// TableCell is one cell of a conjugation table. Err is set when the
// dialect has the cell but no form is known for it.
type TableCell struct {
	Query Query
	Form  []DisplayVocalized
	Err   error
}

// ConjugationTable holds every form of a verb in canonical order: voice,
// then tense and mood, then number, person and gender.
type ConjugationTable struct {
	Verb  *Verb
	Cells []TableCell
}

// Lookup returns the cell for q.
func (t *ConjugationTable) Lookup(q Query) (TableCell, bool) {
	for _, c := range t.Cells {
		if c.Query == q {
			return c, true
		}
	}
	return TableCell{}, false
}

// tableQueries lists the queries of a full paradigm. The 1st person
// carries no gender and is listed as masculine.
func tableQueries() []Query {
	type slot struct {
		tense Tense
		mood  Mood
	}
	slots := []slot{{Perfect, 0}, {Present, Indicative}, {Present, Subjunctive}, {Present, Jussive}, {Present, Imperative}}
	var out []Query
	for _, voice := range []Voice{Active, Passive} {
		for _, s := range slots {
			for _, n := range []Numerus{Singular, Dual, Plural} {
				for _, p := range []Person{Third, Second, First} {
					for _, g := range []Gender{Male, Female} {
						if p == First && g == Female {
							continue
						}
						out = append(out, Query{Tense: s.tense, Mood: s.mood, Voice: voice, Person: p, Gender: g, Numerus: n})
					}
				}
			}
		}
	}
	return out
}

// ConjugationTable conjugates v for every query its dialect distinguishes.
// Cells the dialect refuses are left out; a template defect aborts the
// table.
func (c *Conjugator) ConjugationTable(v *Verb) (*ConjugationTable, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil verb", ErrInvalidQuery)
	}
	table := &ConjugationTable{Verb: v}
	for _, q := range tableQueries() {
		form, err := c.Conjugate(v, q)
		switch {
		case err == nil:
			table.Cells = append(table.Cells, TableCell{Query: q, Form: form})
		case errors.Is(err, ErrUnsupportedFeature):
		case errors.Is(err, ErrNotImplemented):
			table.Cells = append(table.Cells, TableCell{Query: q, Err: err})
		default:
			return nil, err
		}
	}
	return table, nil
}
