package main

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func testApp(t *testing.T) *App {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 10
	cfg.Seed = 1
	app, err := CreateApp(cfg, testSheet(t, 16, 16, 'A'))
	if err != nil {
		t.Fatalf("CreateApp: %v", err)
	}
	app.now = func() float64 { return 0 }
	return app
}

func TestCreateApp(t *testing.T) {
	app := testApp(t)
	if app.grid.Cols != 10 || app.grid.Rows != 5 {
		t.Errorf("grid = %dx%d, want 10x5", app.grid.Cols, app.grid.Rows)
	}
	if app.stage != StageComposite || app.compositor != CompositorGPU || app.glyphMode != BlendBlend {
		t.Errorf("unexpected initial state: %v %v %v", app.stage, app.compositor, app.glyphMode)
	}
	if got := app.gridArea().Size(); got != (Size{X: 20, Y: 10}) {
		t.Errorf("gridArea() = %v, want 20x10", got)
	}
	if !app.IsRunning() {
		t.Error("new app should be running")
	}
}

func TestCreateAppErrors(t *testing.T) {
	sheet := testSheet(t, 16, 16)
	cfg := DefaultConfig()
	cfg.Width = 1
	if _, err := CreateApp(cfg, sheet); err == nil {
		t.Error("expected an error for a window smaller than a tile")
	}
	cfg = DefaultConfig()
	cfg.Stage = "nope"
	if _, err := CreateApp(cfg, sheet); err == nil {
		t.Error("expected an error for an invalid config")
	}
}

func TestAppUpdateRefreshesOnInterval(t *testing.T) {
	app := testApp(t)
	now := 0.0
	app.now = func() float64 { return now }

	if err := app.Update(); err != nil {
		t.Fatal(err)
	}
	if !app.dirty {
		t.Error("first Update should refresh the grid")
	}
	first := slices.Clone(app.grid.Cells)
	for _, cell := range first {
		if cell.Glyph < 32 {
			t.Fatalf("refreshed cell has unusable glyph %d", cell.Glyph)
		}
	}

	app.dirty = false
	now = 1
	app.Update()
	if app.dirty || !slices.Equal(first, app.grid.Cells) {
		t.Error("grid changed before the refresh interval passed")
	}

	now = 2
	app.Update()
	if !app.dirty || slices.Equal(first, app.grid.Cells) {
		t.Error("grid did not change after the refresh interval")
	}
}

func TestAppKeys(t *testing.T) {
	app := testApp(t)

	app.HandleKey("Tab")
	if app.stage != StageSheet {
		t.Errorf("Tab: stage = %v, want sheet", app.stage)
	}
	app.HandleKey("4")
	if app.stage != StageTarget {
		t.Errorf("4: stage = %v, want target", app.stage)
	}
	if !app.dirty {
		t.Error("switching stages should mark the target dirty")
	}
	if got := app.Title(); got != "brogueglyphs : target" {
		t.Errorf("Title() = %q", got)
	}

	app.HandleKey("5")
	app.HandleKey("m")
	app.HandleKey("c")
	if app.glyphMode != BlendAdd || app.compositor != CompositorCPU {
		t.Errorf("after m and c: mode %v, compositor %v", app.glyphMode, app.compositor)
	}
	if got := app.Title(); got != "brogueglyphs : composite (cpu, add)" {
		t.Errorf("Title() = %q", got)
	}
	app.HandleKey("S-m")
	app.HandleKey("S-c")
	if app.glyphMode != BlendMod || app.compositor != CompositorGPU {
		t.Errorf("after S-m and S-c: mode %v, compositor %v", app.glyphMode, app.compositor)
	}

	app.Update()
	app.dirty = false
	before := slices.Clone(app.grid.Cells)
	app.HandleKey("Space")
	app.Update()
	if !app.dirty || slices.Equal(before, app.grid.Cells) {
		t.Error("Space should refresh the grid immediately")
	}

	if app.HandleKey("x") {
		t.Error("x should not be bound")
	}
	app.HandleKey("Escape")
	if app.IsRunning() {
		t.Error("Escape should stop the app")
	}
}

func TestAppCopyGrid(t *testing.T) {
	app := testApp(t)
	app.Update()
	var copied string
	app.copyText = func(s string) error {
		copied = s
		return nil
	}
	app.HandleKey("C-c")
	if copied != app.grid.Text() {
		t.Errorf("copied %q, want %q", copied, app.grid.Text())
	}
	if lines := strings.Count(copied, "\n"); lines != app.grid.Rows {
		t.Errorf("copied %d lines, want %d", lines, app.grid.Rows)
	}

	app.copyText = func(string) error { return errors.New("no clipboard") }
	app.CopyGrid()
}
