// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing:
//
//   - LoadEnv reads one or more .env files without overriding variables that
//     are already set. OverloadEnv lets the files win.
//   - Load parses the environment into any struct annotated with `env` tags.
//     The default ./.env is read on first use when LoadEnv was not called.
//   - Each configuration type is parsed once and cached by its reflect.Type.
//     A failed parse is not cached, so a later Load retries.
//   - MustLoadEnv and MustLoad panic instead of returning an error.
//   - ForceReload and ResetCache drop cached values, which tests rely on.
//
// # Usage
//
//	type Config struct {
//	    Preset  string   `env:"PASSGEN_PRESET" envDefault:"phrases"`
//	    Count   int      `env:"PASSGEN_COUNT" envDefault:"5"`
//	    Corpora []string `env:"PASSGEN_CORPORA" envSeparator:","`
//	}
//
//	if err := config.LoadEnv("passgen.env"); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors wrap the sentinels below and can be compared with errors.Is:
//
//   - ErrLoadingEnvFile    – a .env file is missing or malformed.
//   - ErrParsingConfig     – env vars could not be parsed into the struct.
//   - ErrInvalidConfigType – the target is not a struct.
//   - ErrNilPointer        – nil pointer passed to Load or MustLoad.
package config
