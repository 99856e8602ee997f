package config

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFS_Default(t *testing.T) {
	fsys := fstest.MapFS{}

	cfg, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Fatalf("expected default provider 'openai', got %s", cfg.Provider)
	}
	if cfg.Model != "gpt-5" {
		t.Fatalf("expected default model 'gpt-5', got %s", cfg.Model)
	}
	if cfg.ModelVerbosity != nil {
		t.Fatalf("expected unset model_verbosity, got %s", *cfg.ModelVerbosity)
	}
}

func TestLoadFS_FromFile(t *testing.T) {
	fsys := fstest.MapFS{
		".quip/config.yaml": &fstest.MapFile{Data: []byte("provider: fooai\nmodel: gpt-4o\nmodel_verbosity: HIGH\n")},
	}

	cfg, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "fooai" {
		t.Fatalf("expected provider 'fooai', got %s", cfg.Provider)
	}
	if cfg.Model != "gpt-4o" {
		t.Fatalf("expected model 'gpt-4o', got %s", cfg.Model)
	}
	// Tokens are case-insensitive on input and canonical on output.
	if cfg.ModelVerbosity == nil || *cfg.ModelVerbosity != VerbosityHigh {
		t.Fatalf("expected model_verbosity 'high', got %v", cfg.ModelVerbosity)
	}
}

func TestLoadFS_AbsentVerbosityStaysUnset(t *testing.T) {
	fsys := fstest.MapFS{
		".quip/config.yaml": &fstest.MapFile{Data: []byte("model: gpt-5\n")},
	}

	cfg, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ModelVerbosity != nil {
		t.Fatalf("expected unset model_verbosity, got %s", *cfg.ModelVerbosity)
	}
}

func TestLoadFS_InvalidVerbosityFailsLoad(t *testing.T) {
	fsys := fstest.MapFS{
		".quip/config.yaml": &fstest.MapFile{Data: []byte("model: gpt-5\nmodel_verbosity: loud\n")},
	}

	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatalf("expected error for invalid model_verbosity, got nil")
	}
	var invalid *InvalidConfigValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidConfigValueError, got %T: %v", err, err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	v := VerbosityLow
	want := Default()
	want.Model = "gpt-5-mini"
	want.ModelVerbosity = &v

	if err := Save(dir, want); err != nil {
		t.Fatalf("Save returned unexpected error: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config round-trip mismatch (-want +got):\n%s", diff)
	}
}
