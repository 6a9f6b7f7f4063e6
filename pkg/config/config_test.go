package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg.InputDir != "inputs" {
		t.Errorf("InputDir = %q, want inputs", cfg.InputDir)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL.Duration != 720*time.Hour {
		t.Errorf("TTL = %v, want 720h", cfg.Cache.TTL)
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadFromXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(`input_dir = "puzzles"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputDir != "puzzles" {
		t.Errorf("InputDir = %q, want puzzles", cfg.InputDir)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
input_dir = "data"

[cache]
backend = "redis"
ttl = "1h30m"
prefix = "aoc:"

[cache.redis]
addr = "redis:6379"
db = 2

[crates]
policy = "block"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.InputDir != "data" {
		t.Errorf("InputDir = %q", cfg.InputDir)
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.Redis.Addr != "redis:6379" || cfg.Cache.Redis.DB != 2 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute {
		t.Errorf("TTL = %v, want 1h30m", cfg.Cache.TTL)
	}
	if cfg.Cache.Prefix != "aoc:" {
		t.Errorf("Prefix = %q", cfg.Cache.Prefix)
	}
	// Unset sections keep their defaults.
	if cfg.Cache.Mongo.Collection != "answers" {
		t.Errorf("Mongo.Collection = %q, want answers", cfg.Cache.Mongo.Collection)
	}
	if cfg.Crates.Policy != "block" {
		t.Errorf("Crates.Policy = %q", cfg.Crates.Policy)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `input_dir = `},
		{"backend", "[cache]\nbackend = \"memcached\""},
		{"ttl", "[cache]\nttl = \"soon\""},
		{"negative ttl", "[cache]\nttl = \"-1h\""},
		{"policy", "[crates]\npolicy = \"sideways\""},
		{"redis addr", "[cache]\nbackend = \"redis\"\n[cache.redis]\naddr = \"\""},
		{"mongo uri", "[cache]\nbackend = \"mongo\"\n[cache.mongo]\nuri = \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := expandHome("~/aoc"), filepath.Join(home, "aoc"); got != want {
		t.Errorf("expandHome(~/aoc) = %q, want %q", got, want)
	}
	if got := expandHome("rel/dir"); got != "rel/dir" {
		t.Errorf("expandHome(rel/dir) = %q", got)
	}
}

func TestPaths(t *testing.T) {
	cfg := Default()
	cfg.InputDir = "in"

	if got, want := cfg.InputPath(3), filepath.Join("in", "day3.txt"); got != want {
		t.Errorf("InputPath(3) = %q, want %q", got, want)
	}
	if got, want := cfg.LayoutPath(5), filepath.Join("in", "day5.layout.txt"); got != want {
		t.Errorf("LayoutPath(5) = %q, want %q", got, want)
	}
}

func TestDirs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/x/config")
	t.Setenv("XDG_CACHE_HOME", "/x/cache")

	if d, _ := Dir(); d != filepath.Join("/x/config", appName) {
		t.Errorf("Dir() = %q", d)
	}
	if d, _ := CacheDir(); d != filepath.Join("/x/cache", appName) {
		t.Errorf("CacheDir() = %q", d)
	}
}
