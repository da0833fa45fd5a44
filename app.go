package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// App runs one stage at a time. dirty is set when the grid or stage changed
// since the render target was last drawn; copyText is clipboard.WriteAll
// outside of tests.
type App struct {
	cfg        Config
	shouldExit bool
	stage      Stage
	compositor CompositorKind
	glyphMode  BlendMode
	colorKey   Color
	windowSize Size
	sheet      *SpriteSheet
	tileSize   Size
	grid       *Grid
	picker     *GlyphPicker
	palette    Palette
	rng        Rand
	refresher  *Refresher
	dirty      bool
	keyMap     KeyMap
	now        func() float64
	copyText   func(string) error

	qr         *QuadRenderer
	sheetTex   *Texture
	keyedTex   *Texture
	target     *Target
	fills      *QuadBatch
	glyphs     *QuadBatch
	keyed      *QuadBatch
	targetQuad *QuadBatch
	cpu        *Compositor
	frame      *Surface
}

func loadSheet(cfg Config) (*SpriteSheet, error) {
	if cfg.SheetPath == "" {
		logger.Info("no sprite sheet given, generating one", "fontSize", cfg.FontSize)
		return GenerateSpriteSheet(cfg.FontSize, cfg.SheetCols, cfg.SheetRows)
	}
	return LoadSpriteSheet(cfg.SheetPath, cfg.SheetCols, cfg.SheetRows)
}

// CreateApp prepares everything that does not need a GL context.
func CreateApp(cfg Config, sheet *SpriteSheet) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stage, _ := ParseStage(cfg.Stage)
	compositor, _ := cfg.CompositorKind()
	glyphMode, _ := cfg.GlyphBlendMode()
	colorKey, _ := ParseHexColor(cfg.ColorKey)
	windowSize := Size{X: cfg.Width, Y: cfg.Height}
	tileSize := cfg.TileSize(sheet.GlyphSize())
	gridSize := GridSizeFor(windowSize, tileSize)
	if gridSize.X == 0 || gridSize.Y == 0 {
		return nil, fmt.Errorf("window %v cannot hold a single %v tile", windowSize, tileSize)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	app := &App{
		cfg:        cfg,
		stage:      stage,
		compositor: compositor,
		glyphMode:  glyphMode,
		colorKey:   colorKey,
		windowSize: windowSize,
		sheet:      sheet,
		tileSize:   tileSize,
		grid:       NewGrid(gridSize.X, gridSize.Y),
		picker:     NewGlyphPicker(sheet.GlyphCount()),
		palette:    DefaultPalette(),
		rng:        NewRand(seed),
		refresher:  NewRefresher(cfg.Interval),
		now:        GetTime,
		copyText:   clipboard.WriteAll,
	}
	app.bindKeys()
	logger.Info("app created",
		"stage", stage,
		"glyphSize", sheet.GlyphSize(),
		"tileSize", tileSize,
		"grid", gridSize,
		"glyphs", app.picker.Len(),
		"seed", seed)
	return app, nil
}

func (app *App) bindKeys() {
	km := CreateKeyMap()
	km.Bind("Escape", app.Quit)
	km.Bind("Space", app.RefreshNow)
	km.Bind("Tab", func() {
		app.SelectStage(app.stage.Next())
	})
	for i := range stageNames {
		stage := Stage(i)
		km.Bind(fmt.Sprint(i+1), func() {
			app.SelectStage(stage)
		})
	}
	km.Bind("m", app.NextGlyphMode)
	km.Bind("S-m", app.NextGlyphMode)
	km.Bind("c", app.ToggleCompositor)
	km.Bind("S-c", app.ToggleCompositor)
	km.Bind("C-c", app.CopyGrid)
	app.keyMap = km
}

func (app *App) Title() string {
	if app.stage == StageComposite {
		return fmt.Sprintf("brogueglyphs : %s (%s, %s)", app.stage, app.compositor, app.glyphMode)
	}
	return fmt.Sprintf("brogueglyphs : %s", app.stage)
}

func (app *App) IsRunning() bool {
	return !app.shouldExit
}

func (app *App) Quit() {
	app.shouldExit = true
}

func (app *App) RefreshNow() {
	app.refresher.Force()
}

func (app *App) SelectStage(stage Stage) {
	if stage == app.stage {
		return
	}
	logger.Info("stage selected", "stage", stage)
	app.stage = stage
	app.dirty = true
}

func (app *App) NextGlyphMode() {
	app.glyphMode = app.glyphMode.NextGlyphMode()
	logger.Info("glyph blend mode selected", "mode", app.glyphMode)
	app.dirty = true
}

func (app *App) ToggleCompositor() {
	if app.compositor == CompositorGPU {
		app.compositor = CompositorCPU
	} else {
		app.compositor = CompositorGPU
	}
	logger.Info("compositor selected", "compositor", app.compositor)
	app.dirty = true
}

func (app *App) CopyGrid() {
	if err := app.copyText(app.grid.Text()); err != nil {
		logger.Warn("copy to clipboard failed", "error", err)
		return
	}
	logger.Info("grid copied to clipboard", "cols", app.grid.Cols, "rows", app.grid.Rows)
}

func (app *App) HandleKey(key string) bool {
	return app.keyMap.HandleKey(key)
}

func (app *App) OnKey(key glfw.Key, scancode int, action glfw.Action, modes glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	name := KeyName(key, scancode, modes, glfw.GetKeyName)
	if name == "" {
		return
	}
	if !app.HandleKey(name) {
		logger.Debug("unbound key", "key", name)
	}
}

func (app *App) OnFramebufferSize(width, height int) {
	logger.Debug("OnFramebufferSize", "width", width, "height", height)
}

// gridArea is the part of the window covered by whole tiles.
func (app *App) gridArea() Rect {
	return Rect{Max: Size{X: app.grid.Cols * app.tileSize.X, Y: app.grid.Rows * app.tileSize.Y}}
}

func (app *App) cellRect(x, y int) Rect {
	origin := Point{X: x * app.tileSize.X, Y: y * app.tileSize.Y}
	return Rect{Min: origin, Max: origin.Add(app.tileSize)}
}

func (app *App) Init() error {
	qr, err := CreateQuadRenderer()
	if err != nil {
		return err
	}
	app.qr = qr
	sheetTex, err := CreateTextureFromSurface(app.sheet.Image())
	if err != nil {
		return err
	}
	app.sheetTex = sheetTex
	keyedTex, err := CreateTextureFromSurface(app.sheet.Keyed(app.colorKey))
	if err != nil {
		return err
	}
	app.keyedTex = keyedTex
	target, err := CreateTarget(app.gridArea().Size())
	if err != nil {
		return err
	}
	app.target = target
	app.fills = qr.CreateFillBatch()
	app.glyphs = qr.CreateBatch(sheetTex)
	app.keyed = qr.CreateBatch(keyedTex)
	app.targetQuad = qr.CreateBatch(target.Texture())
	app.cpu = NewCompositor(app.sheet, app.colorKey, app.tileSize)
	app.frame = NewSurface(app.gridArea().Size())
	logger.Info("Init", "target", target.Size())
	return app.Update()
}

func clearColor(c Color) {
	r, g, b, a := colorToFloats(c)
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// drawGlyphs queues every cell's glyph into batch, tinted with its
// foreground color unless tint is false.
func (app *App) drawGlyphs(batch *QuadBatch, tint bool) {
	batch.Clear()
	for y := range app.grid.Rows {
		for x := range app.grid.Cols {
			cell := app.grid.At(x, y)
			c := ColorWhite
			if tint {
				c = cell.Fg
			}
			batch.Draw(app.cellRect(x, y), app.sheet.GlyphRect(cell.Glyph), c)
		}
	}
}

func (app *App) drawBackgrounds(batch *QuadBatch) {
	batch.Clear()
	for y := range app.grid.Rows {
		for x := range app.grid.Cols {
			batch.Fill(app.cellRect(x, y), app.grid.At(x, y).Bg)
		}
	}
}

func (app *App) renderKeyedGrid(viewport Size) error {
	app.fills.Clear()
	app.fills.Fill(Rect{Max: viewport}, ColorBackdrop)
	if err := app.fills.Render(viewport, BlendNone); err != nil {
		return err
	}
	app.drawGlyphs(app.keyed, true)
	return app.keyed.Render(viewport, BlendBlend)
}

func (app *App) renderComposite(viewport Size) error {
	if app.compositor == CompositorCPU {
		app.cpu.Compose(app.frame, app.grid, app.glyphMode)
		return app.target.Upload(app.frame)
	}
	app.target.Bind()
	defer app.target.Unbind()
	clearColor(ColorBlack)
	app.drawBackgrounds(app.fills)
	if err := app.fills.Render(viewport, BlendNone); err != nil {
		return err
	}
	app.drawGlyphs(app.keyed, true)
	return app.keyed.Render(viewport, app.glyphMode)
}

func (app *App) updateTarget() error {
	if !app.dirty {
		return nil
	}
	viewport := app.target.Size()
	var err error
	switch app.stage {
	case StageTarget:
		app.target.Bind()
		err = app.renderKeyedGrid(viewport)
		app.target.Unbind()
	case StageComposite:
		err = app.renderComposite(viewport)
	}
	if err != nil {
		return err
	}
	app.dirty = false
	return nil
}

func (app *App) Render() error {
	if app.stage.UsesTarget() {
		if err := app.updateTarget(); err != nil {
			return err
		}
		app.targetQuad.Clear()
		area := app.gridArea()
		app.targetQuad.DrawFlipped(area, area, ColorWhite)
		return app.targetQuad.Render(app.windowSize, BlendNone)
	}
	if app.stage.UsesColorKey() {
		return app.renderKeyedGrid(app.windowSize)
	}
	if app.stage == StageSheet {
		app.glyphs.Clear()
		app.glyphs.Draw(Rect{Max: app.windowSize}, app.sheet.Image().Bounds(), ColorWhite)
		return app.glyphs.Render(app.windowSize, BlendNone)
	}
	app.drawGlyphs(app.glyphs, false)
	return app.glyphs.Render(app.windowSize, BlendNone)
}

// Update re-rolls the grid whenever the refresh interval has passed.
func (app *App) Update() error {
	if app.refresher.Due(app.now()) {
		app.grid.Randomize(app.rng, app.picker, app.palette)
		app.dirty = true
		logger.Debug("grid refreshed", "stage", app.stage)
	}
	return nil
}

func (app *App) Close() error {
	logger.Debug("Close")
	closers := []interface{ Close() error }{}
	if app.target != nil {
		closers = append(closers, app.target)
	}
	if app.keyedTex != nil {
		closers = append(closers, app.keyedTex)
	}
	if app.sheetTex != nil {
		closers = append(closers, app.sheetTex)
	}
	if app.qr != nil {
		closers = append(closers, app.qr)
	}
	var errs []error
	for _, c := range closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
