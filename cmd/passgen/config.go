package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/passgen/pkg/config"
	"github.com/dmitrymomot/passgen/pkg/corpus"
	"github.com/dmitrymomot/passgen/pkg/recipe"
)

// Config is read from the environment; command line flags take precedence.
type Config struct {
	Preset    string   `env:"PASSGEN_PRESET" envDefault:"phrases"`
	Recipe    string   `env:"PASSGEN_RECIPE"`
	Count     int      `env:"PASSGEN_COUNT" envDefault:"5"`
	Corpora   []string `env:"PASSGEN_CORPORA" envSeparator:","`
	Seed      uint64   `env:"PASSGEN_SEED"`
	LogLevel  string   `env:"PASSGEN_LOG_LEVEL" envDefault:"warn"`
	LogFormat string   `env:"PASSGEN_LOG_FORMAT"`
}

func loadConfig(envFiles []string) (Config, error) {
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return Config{}, err
		}
	}
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadRecipe prefers a recipe file over a named preset.
func loadRecipe(path, preset string) (*recipe.Recipe, error) {
	if path == "" {
		return recipe.Preset(preset)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}
	return recipe.Parse(data)
}

// loadCorpus reads a text file into a corpus.
func loadCorpus(path string) (*corpus.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return corpus.New(string(data)), nil
}
