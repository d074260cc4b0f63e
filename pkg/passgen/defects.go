package passgen

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// SubstitutionGroup maps every rune of From to the candidate runes of To.
type SubstitutionGroup struct {
	From string
	To   string
}

// Substitutions maps an eligible rune to its look-alike candidates.
type Substitutions map[rune][]rune

// NewSubstitutions builds a table from groups in order. When a rune appears
// in more than one group, the group registered last wins.
func NewSubstitutions(groups ...SubstitutionGroup) (Substitutions, error) {
	table := make(Substitutions)
	for _, g := range groups {
		to := []rune(g.To)
		if len(to) == 0 {
			return nil, ErrEmptySubstitutions
		}
		for _, r := range g.From {
			table[r] = slices.Clone(to)
		}
	}
	if len(table) == 0 {
		return nil, ErrEmptySubstitutions
	}
	return table, nil
}

// symbolGroups replaces letters with digits and symbols that resemble them.
// 'L' is listed twice; the later "LVv" group takes effect.
var symbolGroups = []SubstitutionGroup{
	{From: "A", To: "4"},
	{From: "OoQ", To: "0"},
	{From: "E", To: "3"},
	{From: "LlIJ", To: "1"},
	{From: "ij", To: "!:;"},
	{From: "Ss", To: "$5"},
	{From: "Zz", To: "2"},
	{From: "LVv", To: "7^"},
	{From: "a", To: "@"},
	{From: "N", To: `\%`},
	{From: "B", To: `8\%&`},
	{From: "Ppq", To: "9"},
	{From: "bd", To: "6&"},
	{From: "XxfF", To: "+"},
	{From: "H", To: "#"},
}

const (
	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"
	letters    = "abcdefghijklmnopqrstuvwxyz"
)

// vowelGroups maps each lower-case vowel to the other four. Upper-case
// vowels are never eligible.
func vowelGroups() []SubstitutionGroup {
	groups := make([]SubstitutionGroup, 0, len(vowels))
	for _, v := range vowels {
		others := make([]rune, 0, len(vowels)-1)
		for _, o := range vowels {
			if o != v {
				others = append(others, o)
			}
		}
		groups = append(groups, SubstitutionGroup{From: string(v), To: string(others)})
	}
	return groups
}

// Defects perturbs a bounded, randomly chosen subset of eligible runes with
// look-alike substitutes.
type Defects struct {
	table      Substitutions
	minDefects int
	maxDefects int
}

// NewDefects creates a defect injector applying between minDefects and
// maxDefects substitutions per call, both inclusive.
func NewDefects(table Substitutions, minDefects, maxDefects int) (*Defects, error) {
	if minDefects < 0 || maxDefects < 0 {
		return nil, ErrNegativeCount
	}
	if minDefects > maxDefects {
		return nil, ErrInvalidDefectRange
	}
	if len(table) == 0 {
		return nil, ErrEmptySubstitutions
	}
	own := make(Substitutions, len(table))
	for r, candidates := range table {
		if len(candidates) == 0 {
			return nil, ErrEmptySubstitutions
		}
		own[r] = slices.Clone(candidates)
	}
	return &Defects{table: own, minDefects: minDefects, maxDefects: maxDefects}, nil
}

// SymbolDefects replaces letters with similar-looking digits and symbols,
// e.g. A→4, E→3, H→#.
func SymbolDefects(minDefects, maxDefects int) (*Defects, error) {
	table, err := NewSubstitutions(symbolGroups...)
	if err != nil {
		return nil, err
	}
	return NewDefects(table, minDefects, maxDefects)
}

// VowelDefects replaces lower-case vowels with a different lower-case vowel.
func VowelDefects(minDefects, maxDefects int) (*Defects, error) {
	table, err := NewSubstitutions(vowelGroups()...)
	if err != nil {
		return nil, err
	}
	return NewDefects(table, minDefects, maxDefects)
}

type alphaConfig struct {
	vowels     bool
	consonants bool
	anyLetter  bool
}

// AlphaOption configures AlphaDefects.
type AlphaOption func(*alphaConfig)

// WithConsonants makes consonants eligible as well as vowels.
func WithConsonants() AlphaOption {
	return func(c *alphaConfig) {
		c.consonants = true
	}
}

// WithoutVowels leaves vowels untouched. Combined with WithConsonants only
// consonants change.
func WithoutVowels() AlphaOption {
	return func(c *alphaConfig) {
		c.vowels = false
	}
}

// AnyLetter draws substitutes from the whole alphabet instead of the
// eligible rune's own class.
func AnyLetter() AlphaOption {
	return func(c *alphaConfig) {
		c.anyLetter = true
	}
}

// AlphaDefects replaces letters with other letters, preserving case: an
// upper-case rune is only ever replaced by an upper-case rune. By default
// only vowels change, and only into other vowels.
func AlphaDefects(minDefects, maxDefects int, opts ...AlphaOption) (*Defects, error) {
	cfg := &alphaConfig{vowels: true}
	for _, opt := range opts {
		opt(cfg)
	}

	var groups []SubstitutionGroup
	if cfg.vowels {
		groups = append(groups, letterGroups(vowels, cfg.anyLetter)...)
	}
	if cfg.consonants {
		groups = append(groups, letterGroups(consonants, cfg.anyLetter)...)
	}

	table, err := NewSubstitutions(groups...)
	if err != nil {
		return nil, err
	}
	return NewDefects(table, minDefects, maxDefects)
}

// letterGroups maps every rune of class, in both cases, to the other runes
// of its class or of the whole alphabet.
func letterGroups(class string, anyLetter bool) []SubstitutionGroup {
	pool := class
	if anyLetter {
		pool = letters
	}

	groups := make([]SubstitutionGroup, 0, 2*len(class))
	for _, r := range class {
		to := strings.ReplaceAll(pool, string(r), "")
		groups = append(groups,
			SubstitutionGroup{From: string(r), To: to},
			SubstitutionGroup{From: strings.ToUpper(string(r)), To: strings.ToUpper(to)},
		)
	}
	return groups
}

// Candidates returns the substitutes for r and whether r is eligible.
func (d *Defects) Candidates(r rune) ([]rune, bool) {
	c, ok := d.table[r]
	return slices.Clone(c), ok
}

// Transform applies the defects to seed. The rune length never changes and
// no position is substituted twice. A seed with no eligible rune comes back
// unchanged.
func (d *Defects) Transform(rng *rand.Rand, seed string) string {
	runes := []rune(seed)

	eligible := make([]int, 0, len(runes))
	for i, r := range runes {
		if _, ok := d.table[r]; ok {
			eligible = append(eligible, i)
		}
	}

	nMin := min(len(eligible), d.minDefects)
	nMax := min(len(eligible), d.maxDefects)
	n := nMin + rng.IntN(nMax-nMin+1)
	if n == 0 {
		return seed
	}

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	for _, pos := range eligible[:n] {
		candidates := d.table[runes[pos]]
		runes[pos] = candidates[rng.IntN(len(candidates))]
	}
	return string(runes)
}
