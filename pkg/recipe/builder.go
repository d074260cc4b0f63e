package recipe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/passgen/pkg/corpus"
	"github.com/dmitrymomot/passgen/pkg/logger"
	"github.com/dmitrymomot/passgen/pkg/passgen"
)

// DefaultCorpus is used by word and phrase stages that name no corpus.
const DefaultCorpus = "alice"

// Defaults for stage bounds left out of a recipe.
const (
	DefaultWordCount  = 4
	DefaultPhraseMin  = 3
	DefaultPhraseMax  = 4
	DefaultDefectsMin = 1
)

// Option configures a Builder.
type Option func(*Builder)

// WithCorpus registers c under name, replacing any corpus already known by
// that name. Nil corpora are ignored.
func WithCorpus(name string, c *corpus.Corpus) Option {
	return func(b *Builder) {
		if name != "" && c != nil {
			b.corpora[name] = c
		}
	}
}

// WithBuiltinCorpora registers every corpus shipped with the corpus package.
func WithBuiltinCorpora() Option {
	return func(b *Builder) {
		for _, name := range corpus.BuiltinNames() {
			if c, err := corpus.Builtin(name); err == nil {
				b.corpora[name] = c
			}
		}
	}
}

// WithLogger sets the logger used for build diagnostics.
// If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Builder compiles recipes into generators against a set of named corpora.
// A Builder is not modified by Build and may be shared once configured.
type Builder struct {
	corpora map[string]*corpus.Corpus
	logger  *slog.Logger
}

// NewBuilder creates a Builder. Options are applied in order, so a later
// WithCorpus overrides an earlier builtin of the same name.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		corpora: make(map[string]*corpus.Corpus),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CorpusNames lists the registered corpora in lexical order.
func (b *Builder) CorpusNames() []string {
	return slices.Sorted(maps.Keys(b.corpora))
}

// Build compiles r into a single generator chaining its stages left to
// right. Errors name the offending stage path, e.g. "stages[2].stages[0]".
// ctx is passed to the logger only.
func (b *Builder) Build(ctx context.Context, r *Recipe) (passgen.Generator, error) {
	if r == nil || len(r.Stages) == 0 {
		return nil, ErrEmptyRecipe
	}

	gens, err := b.buildStages(ctx, "stages", r.Stages)
	if err != nil {
		return nil, err
	}

	b.logger.DebugContext(ctx, "recipe compiled",
		logger.Component("recipe"),
		slog.String("recipe", r.Name),
		logger.Count(len(r.Stages)),
	)
	return passgen.Chain(gens...), nil
}

func (b *Builder) buildStages(ctx context.Context, prefix string, stages []Stage) ([]passgen.Generator, error) {
	gens := make([]passgen.Generator, 0, len(stages))
	for i, s := range stages {
		g, err := b.buildStage(ctx, fmt.Sprintf("%s[%d]", prefix, i), s)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	return gens, nil
}

func (b *Builder) buildStage(ctx context.Context, path string, s Stage) (passgen.Generator, error) {
	kind := strings.ToLower(strings.TrimSpace(s.Kind))

	g, err := b.compile(ctx, path, kind, s)
	if err != nil {
		return nil, err
	}

	b.logger.DebugContext(ctx, "stage compiled", logger.Stage(path), logger.Kind(kind))
	return g, nil
}

func (b *Builder) compile(ctx context.Context, path, kind string, s Stage) (passgen.Generator, error) {
	wrap := func(g passgen.Generator, err error) (passgen.Generator, error) {
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", path, kind, errors.Join(ErrInvalidStage, err))
		}
		return g, nil
	}

	switch kind {
	case KindConstant:
		return passgen.Constant(s.Value), nil
	case KindSurround:
		return passgen.Surround(s.Left, s.Right), nil
	case KindWords:
		c, err := b.corpus(ctx, path, s.Corpus)
		if err != nil {
			return nil, err
		}
		lo, hi := bounds(s.Count, s.MaxCount, DefaultWordCount, DefaultWordCount)
		return wrap(asGenerator(passgen.NewWordRangeSampler(c, lo, hi, s.MinLength)))
	case KindPhrase:
		c, err := b.corpus(ctx, path, s.Corpus)
		if err != nil {
			return nil, err
		}
		lo, hi := bounds(s.Min, s.Max, DefaultPhraseMin, DefaultPhraseMax)
		return wrap(asGenerator(passgen.NewPhraseSampler(c, lo, hi)))
	case KindRandom:
		return wrap(asGenerator(passgen.NewRandomString(s.Length, s.Alphabet)))
	case KindDigits:
		return wrap(asGenerator(passgen.Digits(s.Length)))
	case KindLowercase:
		return wrap(asGenerator(passgen.Lowercase(s.Length)))
	case KindUppercase:
		return wrap(asGenerator(passgen.Uppercase(s.Length)))
	case KindAlphanumeric:
		return wrap(asGenerator(passgen.AlphaNumeric(s.Length)))
	case KindLetters:
		return wrap(asGenerator(passgen.Letters(s.Length)))
	case KindHex:
		return wrap(asGenerator(passgen.Hexadecimal(s.Length, s.Upper)))
	case KindUUID:
		return passgen.UUID(), nil
	case KindULID:
		return passgen.ULID(), nil
	case KindCase:
		return wrap(passgen.CaseTransform(s.Case))
	case KindRandomCase:
		return passgen.RandomCase(), nil
	case KindSymbols:
		lo, hi := bounds(s.Min, s.Max, DefaultDefectsMin, DefaultDefectsMin)
		return wrap(asGenerator(passgen.SymbolDefects(lo, hi)))
	case KindVowels:
		lo, hi := bounds(s.Min, s.Max, DefaultDefectsMin, DefaultDefectsMin)
		return wrap(asGenerator(passgen.VowelDefects(lo, hi)))
	case KindAlpha:
		var opts []passgen.AlphaOption
		if s.Consonants {
			opts = append(opts, passgen.WithConsonants())
		}
		if s.NoVowels {
			opts = append(opts, passgen.WithoutVowels())
		}
		if s.AnyLetter {
			opts = append(opts, passgen.AnyLetter())
		}
		lo, hi := bounds(s.Min, s.Max, DefaultDefectsMin, DefaultDefectsMin)
		return wrap(asGenerator(passgen.AlphaDefects(lo, hi, opts...)))
	case KindDefects:
		groups := make([]passgen.SubstitutionGroup, len(s.Groups))
		for i, g := range s.Groups {
			groups[i] = passgen.SubstitutionGroup{From: g.From, To: g.To}
		}
		table, err := passgen.NewSubstitutions(groups...)
		if err != nil {
			return wrap(nil, err)
		}
		lo, hi := bounds(s.Min, s.Max, DefaultDefectsMin, DefaultDefectsMin)
		return wrap(asGenerator(passgen.NewDefects(table, lo, hi)))
	case KindOr:
		if len(s.Stages) != 2 {
			return nil, fmt.Errorf("%s (%s): %w: want exactly 2 stages, got %d", path, kind, ErrInvalidStage, len(s.Stages))
		}
		gens, err := b.buildStages(ctx, path+".stages", s.Stages)
		if err != nil {
			return nil, err
		}
		return passgen.Or(gens[0], gens[1]), nil
	case KindSwitch, KindChain:
		if len(s.Stages) == 0 {
			return nil, fmt.Errorf("%s (%s): %w: no stages", path, kind, ErrInvalidStage)
		}
		gens, err := b.buildStages(ctx, path+".stages", s.Stages)
		if err != nil {
			return nil, err
		}
		if kind == KindSwitch {
			return passgen.Switch(gens...), nil
		}
		return passgen.Chain(gens...), nil
	}

	return nil, fmt.Errorf("%s: %w: %q", path, ErrUnknownKind, s.Kind)
}

func (b *Builder) corpus(ctx context.Context, path, name string) (*corpus.Corpus, error) {
	if name == "" {
		name = DefaultCorpus
	}
	c, ok := b.corpora[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", path, ErrUnknownCorpus, name)
	}
	b.logger.DebugContext(ctx, "corpus resolved", logger.Stage(path), logger.Corpus(name))
	return c, nil
}

// bounds resolves an optional [lo, hi] pair. Both zero selects the
// defaults; a zero hi collapses the range onto lo.
func bounds(lo, hi, defLo, defHi int) (int, int) {
	switch {
	case lo == 0 && hi == 0:
		return defLo, defHi
	case hi == 0:
		return lo, lo
	}
	return lo, hi
}

// asGenerator erases the concrete stage type so a failed constructor yields
// a nil interface rather than a typed nil.
func asGenerator[T passgen.Generator](g T, err error) (passgen.Generator, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}
