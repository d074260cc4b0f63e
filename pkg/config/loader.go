package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds one parsed configuration type. A failed parse is not cached:
// the entry is dropped so that the next Load tries again.
type entry struct {
	once  sync.Once
	value any
	err   error
}

type configCache struct {
	mu      sync.Mutex
	entries map[reflect.Type]*entry
}

var (
	cache = &configCache{entries: make(map[reflect.Type]*entry)}

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// LoadEnv reads the given .env files into the process environment. Without
// arguments it reads ./.env. Variables already set in the environment are
// never overwritten, and a file listed earlier wins over a later one.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	markDefaultEnvLoaded()
	return nil
}

// OverloadEnv works like LoadEnv but lets every file override variables that
// are already set, with later files winning.
func OverloadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	markDefaultEnvLoaded()
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

func markDefaultEnvLoaded() {
	defaultEnvMu.Lock()
	defaultEnvLoaded = true
	defaultEnvMu.Unlock()
}

// loadDefaultEnv reads ./.env once per process unless LoadEnv ran first.
// A missing file is not an error.
func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true
	_ = godotenv.Load()
}

// Load parses environment variables into v using its `env` struct tags.
// Each configuration type is parsed once; later calls copy the cached value
// into v.
//
//	type Config struct {
//		Preset string `env:"PASSGEN_PRESET" envDefault:"phrases"`
//		Count  int    `env:"PASSGEN_COUNT" envDefault:"5"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrInvalidConfigType, typ)
	}

	cache.mu.Lock()
	e, ok := cache.entries[typ]
	if !ok {
		e = &entry{}
		cache.entries[typ] = e
	}
	cache.mu.Unlock()

	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		cache.mu.Lock()
		if cache.entries[typ] == e {
			delete(cache.entries, typ)
		}
		cache.mu.Unlock()
		return e.err
	}

	cached, ok := e.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReload drops the cached value for T and parses the environment again.
func ForceReload[T any](v *T) error {
	cache.mu.Lock()
	delete(cache.entries, reflect.TypeFor[T]())
	cache.mu.Unlock()
	return Load(v)
}

// ResetCache forgets every cached configuration and allows ./.env to be read
// again by the next Load.
func ResetCache() {
	cache.mu.Lock()
	cache.entries = make(map[reflect.Type]*entry)
	cache.mu.Unlock()

	defaultEnvMu.Lock()
	defaultEnvLoaded = false
	defaultEnvMu.Unlock()
}
