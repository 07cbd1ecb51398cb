package conjugation

import (
	"fmt"
	"strings"
)

// Tense is perfect or present. The imperative is a present-tense mood.
type Tense int

const (
	Perfect Tense = iota + 1
	Present
)

// Mood applies to the present tense only.
type Mood int

const (
	Indicative Mood = iota + 1
	Subjunctive
	Jussive
	Imperative
)

type Voice int

const (
	Active Voice = iota + 1
	Passive
)

type Person int

const (
	First Person = iota + 1
	Second
	Third
)

type Gender int

const (
	Male Gender = iota + 1
	Female
)

type Numerus int

const (
	Singular Numerus = iota + 1
	Dual
	Plural
)

var (
	tenseNames   = []string{"", "perfect", "present"}
	moodNames    = []string{"", "indicative", "subjunctive", "jussive", "imperative"}
	voiceNames   = []string{"", "active", "passive"}
	personNames  = []string{"", "first", "second", "third"}
	genderNames  = []string{"", "male", "female"}
	numerusNames = []string{"", "singular", "dual", "plural"}
)

func enumName(names []string, v int, kind string) string {
	if v > 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

// enumParse maps a name, or a prefix of one, to its 1-based value.
func enumParse(names []string, s, kind string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := 1; i < len(names); i++ {
		if s == names[i] {
			return i, nil
		}
	}
	// prefixes, first match wins
	for i := 1; i < len(names); i++ {
		if s != "" && strings.HasPrefix(names[i], s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidQuery, kind, s)
}

func (t Tense) String() string   { return enumName(tenseNames, int(t), "Tense") }
func (m Mood) String() string    { return enumName(moodNames, int(m), "Mood") }
func (v Voice) String() string   { return enumName(voiceNames, int(v), "Voice") }
func (p Person) String() string  { return enumName(personNames, int(p), "Person") }
func (g Gender) String() string  { return enumName(genderNames, int(g), "Gender") }
func (n Numerus) String() string { return enumName(numerusNames, int(n), "Numerus") }

// ParseTense accepts "perfect", "present" or a unique prefix of either.
func ParseTense(s string) (Tense, error) {
	v, err := enumParse(tenseNames, s, "tense")
	return Tense(v), err
}

func ParseMood(s string) (Mood, error) {
	v, err := enumParse(moodNames, s, "mood")
	return Mood(v), err
}

func ParseVoice(s string) (Voice, error) {
	v, err := enumParse(voiceNames, s, "voice")
	return Voice(v), err
}

// ParsePerson also accepts the digits 1, 2 and 3.
func ParsePerson(s string) (Person, error) {
	switch strings.TrimSpace(s) {
	case "1", "1st":
		return First, nil
	case "2", "2nd":
		return Second, nil
	case "3", "3rd":
		return Third, nil
	}
	v, err := enumParse(personNames, s, "person")
	return Person(v), err
}

func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "masculine", "m":
		return Male, nil
	case "feminine", "f":
		return Female, nil
	}
	v, err := enumParse(genderNames, s, "gender")
	return Gender(v), err
}

func ParseNumerus(s string) (Numerus, error) {
	v, err := enumParse(numerusNames, s, "numerus")
	return Numerus(v), err
}

// Query selects one cell of the paradigm. Mood is ignored in the perfect
// and required in the present.
type Query struct {
	Tense   Tense
	Mood    Mood
	Voice   Voice
	Person  Person
	Gender  Gender
	Numerus Numerus
}

// Validate checks that every required field is set and in range. It does
// not consult the dialect; see Verb for dialect-level checks.
func (q Query) Validate() error {
	switch {
	case q.Tense < Perfect || q.Tense > Present:
		return fmt.Errorf("%w: tense %d", ErrInvalidQuery, q.Tense)
	case q.Tense == Present && (q.Mood < Indicative || q.Mood > Imperative):
		return fmt.Errorf("%w: mood %d in the present", ErrInvalidQuery, q.Mood)
	case q.Voice < Active || q.Voice > Passive:
		return fmt.Errorf("%w: voice %d", ErrInvalidQuery, q.Voice)
	case q.Person < First || q.Person > Third:
		return fmt.Errorf("%w: person %d", ErrInvalidQuery, q.Person)
	case q.Gender < Male || q.Gender > Female:
		return fmt.Errorf("%w: gender %d", ErrInvalidQuery, q.Gender)
	case q.Numerus < Singular || q.Numerus > Plural:
		return fmt.Errorf("%w: numerus %d", ErrInvalidQuery, q.Numerus)
	}
	return nil
}

// mood returns the mood that applies to q: zero in the perfect.
func (q Query) mood() Mood {
	if q.Tense == Perfect {
		return 0
	}
	return q.Mood
}

func (q Query) String() string {
	var b strings.Builder
	b.WriteString(q.Tense.String())
	if q.Tense == Present {
		b.WriteByte(' ')
		b.WriteString(q.Mood.String())
	}
	fmt.Fprintf(&b, " %s %s %s %s", q.Voice, q.Person, q.Gender, q.Numerus)
	return b.String()
}

// Stem is the derivational stem (Arabic "form"), 1 to 10. Quadriliteral
// roots use 1, 2 and 4 for Quad I, II and IV.
type Stem int

var romanStems = []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

func (s Stem) String() string {
	if s >= 1 && s <= 10 {
		return romanStems[s]
	}
	return fmt.Sprintf("Stem(%d)", int(s))
}

// ParseStem accepts decimal ("8") or roman ("VIII") notation.
func ParseStem(s string) (Stem, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i := 1; i < len(romanStems); i++ {
		if s == romanStems[i] || s == fmt.Sprint(i) {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedStem, s)
}

// Stem1Context is a dialect-specific tag selecting the vowel melody (and
// for some roots the template variant) of a Stem-I verb, e.g. "au" for
// past a, present u.
type Stem1Context string

// Context tags shared by the dialects.
const (
	ContextAA Stem1Context = "aa"
	ContextAI Stem1Context = "ai"
	ContextAU Stem1Context = "au"
	ContextIA Stem1Context = "ia"
	ContextII Stem1Context = "ii"
	ContextUU Stem1Context = "uu"
	ContextIU Stem1Context = "iu"

	// ContextAU2 is the Lebanese au class that keeps i on the present
	// prefix (بِيِدْرُس).
	ContextAU2 Stem1Context = "au2"

	// ContextQuad is the only context of quadriliteral roots.
	ContextQuad Stem1Context = "ss"

	// Defective types: past a / present i, past a / present u, past i /
	// present a.
	ContextDefective1 Stem1Context = "type1"
	ContextDefective2 Stem1Context = "type2"
	ContextDefective3 Stem1Context = "type3"

	ContextHayiya Stem1Context = "hayiya"
	ContextLaysa  Stem1Context = "laysa"

	// ContextIrjy2 is the Lebanese ج-ي-ء (ijā, yiji).
	ContextIrjy2 Stem1Context = "irjy2"
)

// Melody is the pair of Stem-I stem vowels.
type Melody struct {
	Past    Vowel
	Present Vowel
}

// derivedMelody is the melody of every derived stem except the
// reflexive stems whose present keeps a.
func derivedMelody(stem Stem, quad bool) Melody {
	switch {
	case quad && stem == 2:
		return Melody{ShortA, ShortA}
	case !quad && (stem == 5 || stem == 6):
		return Melody{ShortA, ShortA}
	}
	return Melody{ShortA, ShortI}
}

// Code returns the compact notation ParseQuery reads, e.g.
// "indicative passive 3fs". The voice is omitted when active.
func (q Query) Code() string {
	var b strings.Builder
	if q.Tense == Perfect {
		b.WriteString("perfect")
	} else {
		b.WriteString(q.Mood.String())
	}
	if q.Voice == Passive {
		b.WriteString(" passive")
	}
	fmt.Fprintf(&b, " %d", int(q.Person))
	if q.Person != First {
		b.WriteString(genderNames[q.Gender][:1])
	}
	b.WriteString(numerusNames[q.Numerus][:1])
	return b.String()
}

// ParseQuery reads the compact notation "<tense or mood> [voice] <cell>",
// where the cell is person, gender (m or f, not for the 1st person) and
// number (s, d or p): "perfect 3ms", "jussive passive 2fp", "indicative 1p".
// "present" stands for the indicative.
func ParseQuery(s string) (Query, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) < 2 || len(fields) > 3 {
		return Query{}, fmt.Errorf("%w: %q, want \"<tense or mood> [voice] <cell>\"", ErrInvalidQuery, s)
	}
	q := Query{Voice: Active}
	switch fields[0] {
	case "perfect", "past":
		q.Tense = Perfect
	case "present":
		q.Tense, q.Mood = Present, Indicative
	default:
		m, err := ParseMood(fields[0])
		if err != nil {
			return Query{}, err
		}
		q.Tense, q.Mood = Present, m
	}
	if len(fields) == 3 {
		v, err := ParseVoice(fields[1])
		if err != nil {
			return Query{}, err
		}
		q.Voice = v
	}

	cell := fields[len(fields)-1]
	if len(cell) < 2 {
		return Query{}, fmt.Errorf("%w: cell %q", ErrInvalidQuery, cell)
	}
	p, err := ParsePerson(cell[:1])
	if err != nil {
		return Query{}, err
	}
	q.Person, q.Gender = p, Male
	rest := cell[1:]
	if p != First {
		if len(rest) != 2 {
			return Query{}, fmt.Errorf("%w: cell %q needs gender and number", ErrInvalidQuery, cell)
		}
		if q.Gender, err = ParseGender(rest[:1]); err != nil {
			return Query{}, err
		}
		rest = rest[1:]
	}
	switch rest {
	case "s":
		q.Numerus = Singular
	case "d":
		q.Numerus = Dual
	case "p":
		q.Numerus = Plural
	default:
		return Query{}, fmt.Errorf("%w: number %q in cell %q", ErrInvalidQuery, rest, cell)
	}
	return q, nil
}
