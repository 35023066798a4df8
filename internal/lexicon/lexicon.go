package lexicon

import (
	"fmt"
	"os"
	"strings"

	"github.com/actuallystonmai/health-lens-service/internal/domain"
	"gopkg.in/yaml.v3"
)

// Synonym maps regional or alternate names onto a canonical lexicon entry.
type Synonym struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

// Lexicon is immutable after construction and safe for concurrent reads.
type Lexicon struct {
	version  string
	entries  []domain.FoodEntry
	index    map[string]int
	synonyms []Synonym
}

type file struct {
	Version  string             `yaml:"version"`
	Foods    []domain.FoodEntry `yaml:"foods"`
	Synonyms []Synonym          `yaml:"synonyms"`
}

func New(version string, entries []domain.FoodEntry, synonyms []Synonym) (*Lexicon, error) {
	if version == "" {
		return nil, fmt.Errorf("lexicon version is required")
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("lexicon %s has no foods", version)
	}

	l := &Lexicon{
		version:  version,
		entries:  make([]domain.FoodEntry, 0, len(entries)),
		index:    make(map[string]int, len(entries)),
		synonyms: make([]Synonym, 0, len(synonyms)),
	}

	for _, e := range entries {
		e.Name = normalizeName(e.Name)
		if err := validateEntry(e); err != nil {
			return nil, err
		}
		if _, dup := l.index[e.Name]; dup {
			return nil, fmt.Errorf("duplicate food %q", e.Name)
		}
		l.index[e.Name] = len(l.entries)
		l.entries = append(l.entries, e)
	}

	for _, s := range synonyms {
		canonical := normalizeName(s.Canonical)
		if _, ok := l.index[canonical]; !ok {
			return nil, fmt.Errorf("synonym target %q is not in the lexicon", s.Canonical)
		}
		variants := make([]string, 0, len(s.Variants))
		for _, v := range s.Variants {
			if v = normalizeName(v); v != "" {
				variants = append(variants, v)
			}
		}
		l.synonyms = append(l.synonyms, Synonym{Canonical: canonical, Variants: variants})
	}

	return l, nil
}

// Default returns the built-in table.
func Default() *Lexicon {
	l, err := New(DefaultVersion, defaultFoods, defaultSynonyms)
	if err != nil {
		panic(fmt.Sprintf("built-in lexicon: %v", err))
	}
	return l
}

// Load reads a YAML lexicon that replaces the built-in table.
func Load(path string) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	l, err := New(f.Version, f.Foods, f.Synonyms)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return l, nil
}

func (l *Lexicon) Version() string { return l.version }

func (l *Lexicon) Len() int { return len(l.entries) }

// Entries returns the foods in match order.
func (l *Lexicon) Entries() []domain.FoodEntry {
	out := make([]domain.FoodEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Lexicon) Lookup(name string) (domain.FoodEntry, bool) {
	i, ok := l.index[normalizeName(name)]
	if !ok {
		return domain.FoodEntry{}, false
	}
	return l.entries[i], true
}

// Resolve returns the canonical name of the first synonym whose variant
// appears in token as a whole word sequence.
func (l *Lexicon) Resolve(token string) (string, bool) {
	padded := " " + normalizeName(token) + " "
	for _, s := range l.synonyms {
		for _, v := range s.Variants {
			if strings.Contains(padded, " "+v+" ") {
				return s.Canonical, true
			}
		}
	}
	return "", false
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func validateEntry(e domain.FoodEntry) error {
	if e.Name == "" {
		return fmt.Errorf("food name is required")
	}
	for name, v := range map[string]float64{"carbs": e.Carbs, "protein": e.Protein, "fat": e.Fat, "fiber": e.Fiber} {
		if v < 0 || v > 1 {
			return fmt.Errorf("food %q: %s must be a fraction in [0,1], got %g", e.Name, name, v)
		}
	}
	if e.Calories < 0 || e.Sodium < 0 {
		return fmt.Errorf("food %q: calories and sodium must be non-negative", e.Name)
	}
	return nil
}
