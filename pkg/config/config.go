// Package config loads the optional aoc.toml configuration file.
//
// A missing file is not an error: every field has a default. A minimal file:
//
//	input_dir = "~/aoc/2022"
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//
//	[cache.redis]
//	addr = "localhost:6379"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/adventofcode/pkg/cache"
	"github.com/matzehuels/adventofcode/pkg/crates"
	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

// appName names the config and cache directories.
const appName = "aoc"

// FileName is the config file looked up in the config directory.
const FileName = "aoc.toml"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Config is the decoded aoc.toml.
type Config struct {
	// InputDir holds dayN.txt files (and day5.layout.txt).
	InputDir string `toml:"input_dir"`

	Cache  CacheConfig  `toml:"cache"`
	Crates CratesConfig `toml:"crates"`
}

// CacheConfig selects and configures the answer cache.
type CacheConfig struct {
	Backend string   `toml:"backend"`
	TTL     Duration `toml:"ttl"`
	Dir     string   `toml:"dir"`
	Prefix  string   `toml:"prefix"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// CratesConfig holds defaults for the crates command.
type CratesConfig struct {
	Policy string `toml:"policy"`
}

// Duration is a time.Duration written as a string ("720h") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		InputDir: "inputs",
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration{cache.TTLAnswer},
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   appName,
				Collection: "answers",
			},
		},
		Crates: CratesConfig{Policy: crates.PolicySingle.String()},
	}
}

// Load reads the config at path. An empty path means the default location;
// a missing file at the default location yields Default(). A path given
// explicitly must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		dir, err := Dir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, FileName)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	cfg.InputDir = expandHome(cfg.InputDir)
	cfg.Cache.Dir = expandHome(cfg.Cache.Dir)

	return cfg, cfg.Validate()
}

// Validate checks field values that TOML decoding cannot.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNone:
	default:
		return errs.New(errs.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	if c.Cache.Backend == BackendRedis && c.Cache.Redis.Addr == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "cache.redis.addr is required for the redis backend")
	}
	if c.Cache.Backend == BackendMongo && (c.Cache.Mongo.URI == "" || c.Cache.Mongo.Database == "" || c.Cache.Mongo.Collection == "") {
		return errs.New(errs.ErrCodeInvalidConfig, "cache.mongo uri, database and collection are required for the mongo backend")
	}
	if _, err := crates.ParsePolicy(c.Crates.Policy); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "crates.policy")
	}
	return nil
}

// Dir returns the config directory using XDG standard (~/.config/aoc/).
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// CacheDir returns the cache directory using XDG standard (~/.cache/aoc/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// InputPath returns the default input file for day.
func (c Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%d.txt", day))
}

// LayoutPath returns the default stack layout file for day 5.
func (c Config) LayoutPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%d.layout.txt", day))
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
