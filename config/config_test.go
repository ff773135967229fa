package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Retrieve.MaxExamples != 4 {
		t.Errorf("expected MaxExamples=4, got %d", cfg.Retrieve.MaxExamples)
	}
	if cfg.Stammer.MinElongationRun != 6 {
		t.Errorf("expected MinElongationRun=6, got %d", cfg.Stammer.MinElongationRun)
	}
	if cfg.Stammer.MinDupWordLen != 3 {
		t.Errorf("expected MinDupWordLen=3, got %d", cfg.Stammer.MinDupWordLen)
	}
	if cfg.Stammer.RepetitionMargin != 2 {
		t.Errorf("expected RepetitionMargin=2, got %d", cfg.Stammer.RepetitionMargin)
	}
	if cfg.Embedding.Dimension != 384 {
		t.Errorf("expected Dimension=384, got %d", cfg.Embedding.Dimension)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected Addr=:8080, got %s", cfg.Server.Addr)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lingorag.yaml")

	content := `
retrieve:
  max_examples: 6
stammer:
  repetition_margin: 3
embedding:
  provider: mock
  dimension: 16
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Retrieve.MaxExamples != 6 {
		t.Errorf("expected MaxExamples=6, got %d", cfg.Retrieve.MaxExamples)
	}
	if cfg.Stammer.RepetitionMargin != 3 {
		t.Errorf("expected RepetitionMargin=3, got %d", cfg.Stammer.RepetitionMargin)
	}
	if cfg.Embedding.Provider != "mock" {
		t.Errorf("expected provider=mock, got %s", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Dimension != 16 {
		t.Errorf("expected Dimension=16, got %d", cfg.Embedding.Dimension)
	}
	// Unset sections keep their defaults
	if cfg.Stammer.MinElongationRun != 6 {
		t.Errorf("expected default MinElongationRun=6, got %d", cfg.Stammer.MinElongationRun)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Retrieve.MaxExamples != 4 {
		t.Errorf("expected defaults for empty dir, got MaxExamples=%d", cfg.Retrieve.MaxExamples)
	}

	content := "retrieve:\n  max_examples: 2\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "lingorag.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Retrieve.MaxExamples != 2 {
		t.Errorf("expected MaxExamples=2 from lingorag.yaml, got %d", cfg.Retrieve.MaxExamples)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.yaml")

	cfg := DefaultConfig()
	cfg.Retrieve.MaxExamples = 7
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Retrieve.MaxExamples != 7 {
		t.Errorf("expected MaxExamples=7 after round-trip, got %d", loaded.Retrieve.MaxExamples)
	}
}

func TestPairDBPath(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.PairDBPath("/data")
	want := filepath.Join("/data", ".lingorag", "pairs.db")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	cfg.Store.Path = "/elsewhere/pairs.db"
	if got := cfg.PairDBPath("/data"); got != "/elsewhere/pairs.db" {
		t.Errorf("expected explicit path to win, got %s", got)
	}
}
