package conjugation

import (
	"fmt"
	"strings"
)

// Category is the shape class of a root, derived from its radicals alone.
type Category int

const (
	Sound Category = iota + 1
	Assimilated
	Hollow
	Defective
	DoublyWeak
	Geminate
	HamzaOnR1
	Quadriliteral
)

var categoryNames = map[Category]string{
	Sound:         "sound",
	Assimilated:   "assimilated",
	Hollow:        "hollow",
	Defective:     "defective",
	DoublyWeak:    "doubly-weak",
	Geminate:      "geminate",
	HamzaOnR1:     "hamza-on-r1",
	Quadriliteral: "quadriliteral",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Root is an immutable sequence of three or four radicals.
type Root struct {
	radicals [4]Letter
	n        int
}

// NewRoot validates the radicals and returns the root.
func NewRoot(radicals ...Letter) (Root, error) {
	if len(radicals) != 3 && len(radicals) != 4 {
		return Root{}, fmt.Errorf("%w: %d radicals, want 3 or 4", ErrInvalidRoot, len(radicals))
	}
	var r Root
	for i, l := range radicals {
		if !l.IsRadical() {
			return Root{}, fmt.Errorf("%w: radical %d is %q", ErrInvalidRoot, i+1, string(rune(l)))
		}
		r.radicals[i] = l
	}
	r.n = len(radicals)
	return r, nil
}

// MustParseRoot is like ParseRoot but panics on error. Meant for tables
// and tests.
func MustParseRoot(s string) Root {
	r, err := ParseRoot(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of radicals (3 or 4).
func (r Root) Len() int { return r.n }

// R returns radical i, 1-based. Out of range positions yield 0.
func (r Root) R(i int) Letter {
	if i < 1 || i > r.n {
		return 0
	}
	return r.radicals[i-1]
}

// Radicals returns a copy of the radicals.
func (r Root) Radicals() []Letter {
	out := make([]Letter, r.n)
	copy(out, r.radicals[:r.n])
	return out
}

// Equals reports whether r consists of exactly the given radicals.
func (r Root) Equals(radicals ...Letter) bool {
	if len(radicals) != r.n {
		return false
	}
	for i, l := range radicals {
		if r.radicals[i] != l {
			return false
		}
	}
	return true
}

// String renders the root in the dash-separated form, e.g. "ك-ت-ب".
func (r Root) String() string {
	parts := make([]string, r.n)
	for i := 0; i < r.n; i++ {
		parts[i] = r.radicals[i].String()
	}
	return strings.Join(parts, "-")
}

// Category classifies the root. Checks run in a fixed order: length,
// gemination, both ends weak, weak r1, weak r3 after a weak r2 (رَوَى,
// قَوِيَ), each other single weak position, initial hamza.
func (r Root) Category() Category {
	if r.n == 4 {
		return Quadriliteral
	}
	r1, r2, r3 := r.radicals[0], r.radicals[1], r.radicals[2]
	switch {
	case r2 == r3:
		return Geminate
	case r1.IsWeak() && r3.IsWeak():
		return DoublyWeak
	case r1.IsWeak():
		return Assimilated
	case r2.IsWeak() && r3.IsWeak():
		return Defective
	case r2.IsWeak():
		return Hollow
	case r3.IsWeak():
		return Defective
	case r1 == Hamza:
		return HamzaOnR1
	}
	return Sound
}
