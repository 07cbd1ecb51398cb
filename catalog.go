package conjugation

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/verbs.yaml
var catalogYAML []byte

// CatalogForm is an attested form of a catalog verb.
type CatalogForm struct {
	Query    Query  `yaml:"query" json:"query"`
	Expected string `yaml:"expected" json:"expected"`
}

// CatalogEntry is one example verb with forms it is known to produce.
type CatalogEntry struct {
	Dialect string       `yaml:"dialect" json:"dialect"`
	Root    string       `yaml:"root" json:"root"`
	Stem    Stem         `yaml:"stem" json:"stem"`
	Context Stem1Context `yaml:"context,omitempty" json:"context,omitempty"`
	Gloss   string       `yaml:"gloss,omitempty" json:"gloss,omitempty"`

	Forms             []CatalogForm `yaml:"forms,omitempty" json:"forms,omitempty"`
	ActiveParticiple  string        `yaml:"active_participle,omitempty" json:"active_participle,omitempty"`
	PassiveParticiple string        `yaml:"passive_participle,omitempty" json:"passive_participle,omitempty"`
	// VerbalNouns lists forms that must be among the verb's verbal nouns.
	VerbalNouns []string `yaml:"verbal_nouns,omitempty" json:"verbal_nouns,omitempty"`
}

// Verb builds the entry's verb.
func (e CatalogEntry) Verb() (*Verb, error) {
	d, err := LookupDialect(e.Dialect)
	if err != nil {
		return nil, err
	}
	root, err := ParseRoot(e.Root)
	if err != nil {
		return nil, err
	}
	return NewVerb(d, root, e.Stem, e.Context)
}

// Name identifies the entry in logs and test names.
func (e CatalogEntry) Name() string {
	name := fmt.Sprintf("%s/%s/%s", e.Dialect, e.Root, e.Stem)
	if e.Context != "" {
		name += "/" + string(e.Context)
	}
	return name
}

type catalogFile struct {
	Verbs []CatalogEntry `yaml:"verbs"`
}

// UnmarshalYAML reads a stem in decimal or roman notation.
func (s *Stem) UnmarshalYAML(value *yaml.Node) error {
	st, err := ParseStem(value.Value)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// MarshalYAML writes the stem number.
func (s Stem) MarshalYAML() (interface{}, error) {
	return int(s), nil
}

// UnmarshalYAML reads a query in the notation of ParseQuery.
func (q *Query) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseQuery(s)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// MarshalYAML writes the query in the notation of ParseQuery.
func (q Query) MarshalYAML() (interface{}, error) {
	return q.Code(), nil
}

// MarshalText lets queries appear as strings in JSON.
func (q Query) MarshalText() ([]byte, error) {
	return []byte(q.Code()), nil
}

var loadCatalog = sync.OnceValues(func() ([]CatalogEntry, error) {
	return ParseCatalog(catalogYAML)
})

// Catalog returns the embedded example verbs.
func Catalog() ([]CatalogEntry, error) {
	entries, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return append([]CatalogEntry(nil), entries...), nil
}

// ParseCatalog reads a catalog in the format of catalog/verbs.yaml.
func ParseCatalog(data []byte) ([]CatalogEntry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, e := range f.Verbs {
		if _, err := e.Verb(); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i+1, e.Name(), err)
		}
	}
	return f.Verbs, nil
}
