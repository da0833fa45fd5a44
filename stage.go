package main

import "fmt"

// Stage selects which rendering experiment the app runs.
type Stage int

const (
	// whole sprite sheet stretched over the window
	StageSheet Stage = iota
	// grid glyphs drawn as-is, glyph boxes visible
	StageTexture
	// black made transparent by a color key
	StageColorKey
	// grid rendered into an off-screen target when it changes
	StageTarget
	// background tile + tinted glyph compositing
	StageComposite
)

var stageNames = []string{"sheet", "texture", "colorkey", "target", "composite"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return StageSheet, fmt.Errorf("unknown stage: %q", name)
}

func (s Stage) Next() Stage {
	return Stage((int(s) + 1) % len(stageNames))
}

func (s Stage) UsesColorKey() bool {
	return s != StageSheet && s != StageTexture
}

func (s Stage) UsesTarget() bool {
	return s == StageTarget || s == StageComposite
}
