package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse an existing file")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateReportsErrors(t *testing.T) {
	cfg := writeTestConfig(t, "[minhash]\nalgorithm = \"crc32\"\n")
	_, _, err := runCLI(t, []string{"config", "validate"}, cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "minhash.algorithm")
}

func TestConfigShowJSON(t *testing.T) {
	cfg := writeTestConfig(t, "[minhash]\nhashes = 64\n")
	out, _, err := runCLI(t, []string{"--json", "config", "show"}, cfg)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	var got struct {
		MinHash struct {
			Hashes    int    `json:"hashes"`
			Algorithm string `json:"algorithm"`
		} `json:"minhash"`
		Output struct {
			Format string `json:"format"`
		} `json:"output"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.MinHash.Hashes != 64 || got.MinHash.Algorithm != "md5" {
		t.Fatalf("unexpected minhash section %+v", got.MinHash)
	}
	if got.Output.Format != "json" {
		t.Fatalf("output.format = %q, want json", got.Output.Format)
	}
}

func TestConfigShowTOML(t *testing.T) {
	out, _, err := runCLI(t, []string{"config", "show"}, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[minhash]")
}

func TestInvalidLogLevelFails(t *testing.T) {
	if _, _, err := runCLI(t, []string{"--log-level", "verbose", "cosine", "--a", "1", "--b", "1"}, ""); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestDebugLoggingWritesToStderr(t *testing.T) {
	_, stderr, err := runCLI(t, []string{"--log-level", "debug", "cosine", "--a", "1", "--b", "1"}, "")
	if err != nil {
		t.Fatalf("cosine: %v", err)
	}
	requireContains(t, stderr, "cosine similarity computed")
	requireContains(t, stderr, `"component":"vector"`)
}
