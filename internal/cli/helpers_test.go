package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

// sampleFiles are the example inputs of each day, keyed by file name.
var sampleFiles = map[string]string{
	"day1.txt":        "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n",
	"day2.txt":        "A Y\nB X\nC Z\n",
	"day4.txt":        "2-4,6-8\n2-3,4-5\n5-7,7-9\n2-8,3-7\n6-6,4-6\n2-6,4-8\n",
	"day5.txt":        "move 1 from 2 to 1\nmove 3 from 1 to 3\nmove 2 from 2 to 1\nmove 1 from 1 to 2\n",
	"day5.layout.txt": "ZN\nMCD\nP\n",
	"day6.txt":        "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n",
}

// testEnv is a temporary input directory, cache directory and config file.
type testEnv struct {
	inputDir string
	cacheDir string
	config   string
}

func newTestEnv(t *testing.T, files map[string]string) testEnv {
	t.Helper()
	root := t.TempDir()
	env := testEnv{
		inputDir: filepath.Join(root, "inputs"),
		cacheDir: filepath.Join(root, "cache"),
		config:   filepath.Join(root, "aoc.toml"),
	}
	if err := os.MkdirAll(env.inputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(env.inputDir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := fmt.Sprintf("input_dir = %q\n\n[cache]\nbackend = \"file\"\ndir = %q\n", env.inputDir, env.cacheDir)
	if err := os.WriteFile(env.config, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return env
}

// execute runs the root command with args and returns the log output.
func (env testEnv) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs(append([]string{"--config", env.config}, args...))
	root.SetOut(&logs)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return logs.String(), err
}

// cacheEntries counts the files in the cache directory.
func (env testEnv) cacheEntries(t *testing.T) int {
	t.Helper()
	n := 0
	_ = filepath.Walk(env.cacheDir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && strings.HasSuffix(path, ".json") {
			n++
		}
		return nil
	})
	return n
}

// cacheExpiries returns the expiry time of every file cache entry.
func (env testEnv) cacheExpiries(t *testing.T) []time.Time {
	t.Helper()
	var out []time.Time
	_ = filepath.Walk(env.cacheDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var entry struct {
			ExpiresAt time.Time `json:"expires_at"`
		}
		if err := json.Unmarshal(data, &entry); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		out = append(out, entry.ExpiresAt)
		return nil
	})
	return out
}
