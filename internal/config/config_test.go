package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONTRACKER_REDIS_ADDR", "localhost:6379")

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %s, want :8080", cfg.ListenPort)
	}
	if cfg.IngestInterval != 6*time.Hour {
		t.Errorf("IngestInterval = %v, want 6h", cfg.IngestInterval)
	}
	if cfg.IngestStartupDelay != 10*time.Second {
		t.Errorf("IngestStartupDelay = %v, want 10s", cfg.IngestStartupDelay)
	}
	if cfg.SourceTimeout != 10*time.Second {
		t.Errorf("SourceTimeout = %v, want 10s", cfg.SourceTimeout)
	}
	if cfg.Sources.Codeforces.APIURL != "" {
		t.Errorf("Sources should be empty without a sources file")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CONTRACKER_REDIS_ADDR", "redis:6379")
	t.Setenv("CONTRACKER_INGEST_INTERVAL", "30m")
	t.Setenv("CONTRACKER_DB_PATH", "/tmp/test.db")

	cfg := Load()

	if cfg.IngestInterval != 30*time.Minute {
		t.Errorf("IngestInterval = %v, want 30m", cfg.IngestInterval)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %s", cfg.DBPath)
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Errorf("RedisAddr = %s", cfg.RedisAddr)
	}
}

func TestLoadPanicsWithoutRedisAddr(t *testing.T) {
	os.Unsetenv("CONTRACKER_REDIS_ADDR")
	defer func() {
		if recover() == nil {
			t.Error("Load() did not panic without CONTRACKER_REDIS_ADDR")
		}
	}()
	Load()
}

func TestLoadSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := `codeforces:
  api_url: http://127.0.0.1:9001/api/contest.list
codechef:
  api_url: http://127.0.0.1:9002/api/list/contests/all
leetcode:
  page_url: http://127.0.0.1:9003/contest/
  graphql_url: http://127.0.0.1:9003/graphql
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	sources, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources() error = %v", err)
	}
	if sources.Codeforces.APIURL != "http://127.0.0.1:9001/api/contest.list" {
		t.Errorf("Codeforces.APIURL = %s", sources.Codeforces.APIURL)
	}
	if sources.Leetcode.GraphqlURL != "http://127.0.0.1:9003/graphql" {
		t.Errorf("Leetcode.GraphqlURL = %s", sources.Leetcode.GraphqlURL)
	}
}

func TestLoadSourcesMissingFile(t *testing.T) {
	if _, err := LoadSources("/nonexistent/sources.yaml"); err == nil {
		t.Error("LoadSources() succeeded on missing file")
	}
}
