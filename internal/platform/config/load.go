package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables that override file settings.
const EnvPrefix = "APP_"

const defaultConfigDir = "configs"

// Option configures Load.
type Option func(*loader)

type loader struct {
	dir     string
	environ func() []string
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// WithEnviron replaces os.Environ as the source of APP_ overrides.
func WithEnviron(environ func() []string) Option {
	return func(l *loader) { l.environ = environ }
}

// Load builds the gateway configuration for profile. Later layers win:
//
//	defaults → configs/base.yaml → configs/{profile}.yaml → APP_* env
//
// An env var overrides a key only when its name matches a key already known
// from the earlier layers, so APP_SERVER_READ_TIMEOUT is server.read_timeout
// and never server.read.timeout. Unknown APP_ variables are ignored. The
// result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := loader{dir: defaultConfigDir, environ: os.Environ}
	for _, opt := range opts {
		opt(&l)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(l.dir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	keys := envKeys(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:      EnvPrefix,
		EnvironFunc: l.environ,
		TransformFunc: func(name, value string) (string, any) {
			return keys[strings.ToLower(strings.TrimPrefix(name, EnvPrefix))], value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading %s environment: %w", EnvPrefix, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// checkProfile rejects profile names that could escape the config directory.
func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare name", profile)
	}
	return nil
}

// envKeys maps the env spelling of every known key, with dots replaced by
// underscores, back to the dotted key.
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}
