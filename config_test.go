package main

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ParseConfig(nil) = %+v, want defaults", cfg)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("window = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Interval != 2 {
		t.Errorf("Interval = %v, want 2", cfg.Interval)
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := ParseConfig([]string{
		"-sheet", "~/fonts/BrogueFont5.png",
		"-stage", "target",
		"-compositor", "cpu",
		"-blend", "add",
		"-interval", "0.5",
		"-seed", "99",
		"-tile-width", "9",
	}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.SheetPath != "~/fonts/BrogueFont5.png" || cfg.Stage != "target" || cfg.Seed != 99 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if k, _ := cfg.CompositorKind(); k != CompositorCPU {
		t.Errorf("CompositorKind() = %v, want cpu", k)
	}
	if m, _ := cfg.GlyphBlendMode(); m != BlendAdd {
		t.Errorf("GlyphBlendMode() = %v, want add", m)
	}
	if got := cfg.TileSize(Size{X: 18, Y: 28}); got != (Size{X: 9, Y: 28}) {
		t.Errorf("TileSize() = %v, want 9x28", got)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := [][]string{
		{"-stage", "bogus"},
		{"-compositor", "vulkan"},
		{"-blend", "none"},
		{"-blend", "screen"},
		{"-width", "0"},
		{"-sheet-cols", "0"},
		{"-tile-height", "-1"},
		{"-interval", "0"},
		{"-font-size", "0"},
		{"-color-key", "#12"},
		{"-color-key", "#gggggg"},
		{"-color-key", "#10203040"},
		{"-log-level", "trace"},
		{"extra"},
		{"-no-such-flag"},
	}
	for _, args := range tests {
		if _, err := ParseConfig(args, io.Discard); err == nil {
			t.Errorf("ParseConfig(%q) should fail", args)
		}
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := ParseConfig([]string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseConfig(-h) = %v, want flag.ErrHelp", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#000000", ColorBlack},
		{"ffffff", ColorWhite},
		{"#FF8000", Color{0xff, 0x80, 0x00, 0xff}},
		{"#fff", ColorWhite},
		{"102030", Color{0x10, 0x20, 0x30, 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"", "#12", "#1234", "#10203040", "#12345g"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", in)
		}
	}
}

func TestStageUsageListsEveryStage(t *testing.T) {
	var out strings.Builder
	ParseConfig([]string{"-h"}, &out)
	lines := strings.Split(out.String(), "\n")
	var usage string
	for i, line := range lines {
		if strings.TrimSpace(line) == "-stage string" && i+1 < len(lines) {
			usage = lines[i+1]
		}
	}
	for _, name := range stageNames {
		if !strings.Contains(usage, name) {
			t.Errorf("-stage usage %q does not mention %q", usage, name)
		}
	}
}
