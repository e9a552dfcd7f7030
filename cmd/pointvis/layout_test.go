package main

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/pointvis"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := newCLI(io.Discard, log.InfoLevel)
	root := c.rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLayoutCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "layout", "--points", "4", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var result layoutResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if result.Layout != "grid" || len(result.Points) != 4 {
		t.Fatalf("result = %+v", result)
	}
	// 2x2 grid: first cell is one cell left of and below the origin.
	if p := result.Points[0]; p.X != -1.05 || p.Y != -1.05 {
		t.Errorf("point 0 = (%v, %v), want (-1.05, -1.05)", p.X, p.Y)
	}
}

func TestLayoutCommand_YAML(t *testing.T) {
	out, err := executeCommand(t, "layout", "-n", "3", "-l", "Spiral", "-f", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var result layoutResult
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if result.Layout != "spiral" || len(result.Points) != 3 {
		t.Fatalf("result = %+v", result)
	}
	p := result.Points[0]
	if r := pointvis.SpiralRadius(0); math.Abs(math.Hypot(p.X, p.Y)-r) > 1e-9 {
		t.Errorf("point 0 not on radius %v", r)
	}
}

func TestLayoutCommand_Text(t *testing.T) {
	out, err := executeCommand(t, "layout", "-n", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "index") {
		t.Errorf("header = %q", lines[0])
	}
}

func TestLayoutCommand_Errors(t *testing.T) {
	if _, err := executeCommand(t, "layout", "-l", "hexagon"); !errors.Is(err, pointvis.ErrInvalidConfig) {
		t.Errorf("unknown layout err = %v, want ErrInvalidConfig", err)
	}
	if _, err := executeCommand(t, "layout", "-f", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := executeCommand(t, "layout", "-n", "-1"); err == nil {
		t.Error("expected error for negative points")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "pointvis "+version) {
		t.Errorf("version output = %q", out)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("layout: spiral\ndrag_threshold: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Layout != "spiral" {
		t.Errorf("layout = %q, want spiral", cfg.Layout)
	}
	cfg, err = loadConfig(path, "grid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Layout != "grid" {
		t.Errorf("flag should override file, got %q", cfg.Layout)
	}
}
