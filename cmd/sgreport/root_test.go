package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/sgreport/internal/config"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "sgreport" {
			t.Errorf("expected use 'sgreport', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions and version", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" || cmd.Long == "" {
			t.Error("expected non-empty descriptions")
		}
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
	})

	t.Run("flag defaults reproduce the conventional paths", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name      string
			shorthand string
			def       string
		}{
			{name: "input", shorthand: "i", def: config.DefaultInputPath},
			{name: "output", shorthand: "o", def: ""},
			{name: "format", shorthand: "f", def: config.FormatHTML},
			{name: "taxonomy", shorthand: "t", def: config.DefaultTaxonomy},
			{name: "config", shorthand: "c", def: ""},
			{name: "title", def: config.DefaultTitle},
			{name: "no-color", def: "false"},
		}

		for _, tt := range tests {
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Errorf("expected %s flag", tt.name)
				continue
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("%s: expected shorthand %q, got %q", tt.name, tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.def {
				t.Errorf("%s: expected default %q, got %q", tt.name, tt.def, flag.DefValue)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()

		names := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			names[sub.Name()] = true
		}
		for _, want := range []string{"init", "version"} {
			if !names[want] {
				t.Errorf("expected %s subcommand", want)
			}
		}
	})
}

// emptyConfig writes an empty config file so tests never pick up a
// developer's own .sgreport.
func emptyConfig(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "sgreport.yaml")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-c", emptyConfig(t, dir)}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputPath != config.DefaultInputPath {
			t.Errorf("expected input %q, got %q", config.DefaultInputPath, cfg.InputPath)
		}
		if cfg.OutputPath != config.DefaultOutputPath {
			t.Errorf("expected output %q, got %q", config.DefaultOutputPath, cfg.OutputPath)
		}
		if cfg.Title != config.DefaultTitle {
			t.Errorf("expected title %q, got %q", config.DefaultTitle, cfg.Title)
		}
	})

	t.Run("output follows format when unset", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-c", emptyConfig(t, dir), "-f", "markdown"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.OutputPath != "semgrep_report/semgrep-report.md" {
			t.Errorf("unexpected output %q", cfg.OutputPath)
		}
	})

	t.Run("flags override config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		configPath := filepath.Join(dir, "sgreport.yaml")
		content := "input: from-file.json\noutput: from-file.html\ntitle: File Title\ntaxonomy: extended\n"
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath, "-i", "from-flag.json"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputPath != "from-flag.json" {
			t.Errorf("expected flag input, got %q", cfg.InputPath)
		}
		if cfg.OutputPath != "from-file.html" {
			t.Errorf("expected file output, got %q", cfg.OutputPath)
		}
		if cfg.Title != "File Title" {
			t.Errorf("expected file title, got %q", cfg.Title)
		}
		if cfg.Taxonomy != "extended" {
			t.Errorf("expected file taxonomy, got %q", cfg.Taxonomy)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-c", filepath.Join(t.TempDir(), "nope.yaml")}); err != nil {
			t.Fatal(err)
		}

		_, err := buildConfig(cmd)
		if err == nil || !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("expected not found error, got %v", err)
		}
	})

	t.Run("invalid config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		configPath := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(configPath, []byte("input: [unclosed"), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-c", configPath}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd); err == nil {
			t.Error("expected error")
		}
	})
}
