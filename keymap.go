package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type KeyHandler func()

type KeyMap map[string]KeyHandler

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

func (km KeyMap) HandleKey(key string) bool {
	if handler, ok := km[key]; ok {
		handler()
		return true
	}
	return false
}

func (km KeyMap) Bind(key string, handler KeyHandler) {
	km[key] = handler
}

var namedKeys = map[glfw.Key]string{
	glfw.KeySpace:     "Space",
	glfw.KeyEscape:    "Escape",
	glfw.KeyEnter:     "Enter",
	glfw.KeyTab:       "Tab",
	glfw.KeyBackspace: "Backspace",
	glfw.KeyRight:     "Right",
	glfw.KeyLeft:      "Left",
	glfw.KeyDown:      "Down",
	glfw.KeyUp:        "Up",
	glfw.KeyF1:        "F1",
	glfw.KeyF2:        "F2",
	glfw.KeyF3:        "F3",
	glfw.KeyF4:        "F4",
}

// KeyName turns a key event into names like "C-c", "S-Tab" or "Escape".
// lookup resolves printable keys; it is glfw.GetKeyName outside of tests.
// Modifier keys on their own yield "".
func KeyName(key glfw.Key, scancode int, mods glfw.ModifierKey, lookup func(glfw.Key, int) string) string {
	switch key {
	case glfw.KeyLeftShift, glfw.KeyLeftControl, glfw.KeyLeftAlt, glfw.KeyLeftSuper:
		return ""
	case glfw.KeyRightShift, glfw.KeyRightControl, glfw.KeyRightAlt, glfw.KeyRightSuper:
		return ""
	}
	keyName, ok := namedKeys[key]
	if !ok {
		keyName = lookup(key, scancode)
	}
	if keyName == "" {
		return ""
	}
	if mods&glfw.ModShift != 0 {
		keyName = "S-" + keyName
	}
	if mods&glfw.ModAlt != 0 {
		keyName = "M-" + keyName
	}
	if mods&glfw.ModControl != 0 {
		keyName = "C-" + keyName
	}
	return keyName
}
