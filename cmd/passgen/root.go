package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passgen/pkg/logger"
	"github.com/dmitrymomot/passgen/pkg/passgen"
	"github.com/dmitrymomot/passgen/pkg/recipe"
)

type runIDKey struct{}

type options struct {
	preset   string
	recipe   string
	count    int
	corpora  []string
	seed     uint64
	envFiles []string
	list     bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate memorable passwords from composable pipelines",
		Long: `passgen builds passwords by running a pipeline of stages over an empty
string: words and phrases sampled from a text corpus, random characters,
case conventions and look-alike character defects.

Pipelines come from embedded presets or from a YAML recipe file.`,
		Example: `  passgen --preset xkcd --count 3
  passgen --recipe my-recipe.yaml --corpus poems=./poems.txt
  PASSGEN_SEED=42 passgen --preset pin`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", "", "embedded recipe to use (env PASSGEN_PRESET)")
	f.StringVarP(&opts.recipe, "recipe", "r", "", "path to a YAML recipe, overrides --preset (env PASSGEN_RECIPE)")
	f.IntVarP(&opts.count, "count", "n", 0, "number of passwords to print (env PASSGEN_COUNT)")
	f.StringArrayVarP(&opts.corpora, "corpus", "c", nil, "register a text file as a corpus, name=path (env PASSGEN_CORPORA)")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for reproducible output, 0 for a random seed (env PASSGEN_SEED)")
	f.StringArrayVar(&opts.envFiles, "env-file", nil, "read variables from a .env file before the environment")
	f.BoolVarP(&opts.list, "list", "l", false, "list presets and corpora and exit")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log recipe compilation to stderr")

	return cmd
}

// merge applies the flags the user set on top of cfg.
func merge(cmd *cobra.Command, cfg Config, opts options) Config {
	f := cmd.Flags()
	if f.Changed("preset") {
		cfg.Preset = opts.preset
	}
	if f.Changed("recipe") {
		cfg.Recipe = opts.recipe
	}
	if f.Changed("count") {
		cfg.Count = opts.count
	}
	if f.Changed("corpus") {
		cfg.Corpora = append(cfg.Corpora, opts.corpora...)
	}
	if f.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	name := cfg.LogFormat
	if name == "" {
		name = string(detectFormat(w))
	}
	format, err := logger.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithContextExtractors(runIDFromContext),
	), nil
}

func runIDFromContext(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	if !ok || id == "" {
		return slog.Attr{}, false
	}
	return logger.RunID(id), true
}

// detectFormat picks text for an interactive terminal and JSON otherwise.
func detectFormat(w io.Writer) logger.Format {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return logger.FormatText
	}
	return logger.FormatJSON
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := loadConfig(opts.envFiles)
	if err != nil {
		return err
	}
	cfg = merge(cmd, cfg, opts)

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := context.WithValue(cmd.Context(), runIDKey{}, uuid.NewString())

	builder, err := newBuilder(ctx, log, cfg.Corpora)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.list {
		return list(out, builder)
	}

	if cfg.Count <= 0 {
		return fmt.Errorf("%w: %d", errInvalidCount, cfg.Count)
	}

	r, err := loadRecipe(cfg.Recipe, cfg.Preset)
	if err != nil {
		log.ErrorContext(ctx, "load recipe", logger.Preset(cfg.Preset), logger.Error(err))
		return err
	}
	gen, err := builder.Build(ctx, r)
	if err != nil {
		log.ErrorContext(ctx, "build recipe", logger.Preset(r.Name), logger.Error(err))
		return err
	}

	start := time.Now()
	seq := passgen.NewSequence(gen, newRand(cfg.Seed))
	n := 0
	for pw := range seq.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, pw); err != nil {
			return err
		}
		if n++; n == cfg.Count {
			break
		}
	}

	log.InfoContext(ctx, "passwords generated",
		logger.Preset(r.Name),
		logger.Count(n),
		logger.Seed(cfg.Seed),
		logger.Duration(time.Since(start)),
	)
	return nil
}

func newBuilder(ctx context.Context, log *slog.Logger, specs []string) (*recipe.Builder, error) {
	parsed, err := parseCorpusSpecs(specs)
	if err != nil {
		return nil, err
	}

	opts := []recipe.Option{
		recipe.WithBuiltinCorpora(),
		recipe.WithLogger(log),
	}
	for _, spec := range parsed {
		c, err := loadCorpus(spec.path)
		if err != nil {
			return nil, fmt.Errorf("corpus %s: %w", spec.name, err)
		}
		log.DebugContext(ctx, "corpus loaded", logger.Corpus(spec.name), slog.String("path", spec.path))
		opts = append(opts, recipe.WithCorpus(spec.name, c))
	}
	return recipe.NewBuilder(opts...), nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return passgen.NewRand()
	}
	return passgen.NewSeededRand(seed)
}

func list(w io.Writer, b *recipe.Builder) error {
	if _, err := fmt.Fprintln(w, "presets:"); err != nil {
		return err
	}
	for _, name := range recipe.PresetNames() {
		r, err := recipe.Preset(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %-10s %s\n", name, r.Description); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "corpora:"); err != nil {
		return err
	}
	for _, name := range b.CorpusNames() {
		if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
			return err
		}
	}
	return nil
}
