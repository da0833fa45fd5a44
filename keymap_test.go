package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func fakeKeyNames(key glfw.Key, scancode int) string {
	switch key {
	case glfw.KeyC:
		return "c"
	case glfw.KeyM:
		return "m"
	case glfw.Key1:
		return "1"
	}
	return ""
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		mods glfw.ModifierKey
		want string
	}{
		{glfw.KeyEscape, 0, "Escape"},
		{glfw.KeySpace, 0, "Space"},
		{glfw.KeyTab, glfw.ModShift, "S-Tab"},
		{glfw.KeyC, 0, "c"},
		{glfw.KeyC, glfw.ModControl, "C-c"},
		{glfw.KeyM, glfw.ModControl | glfw.ModAlt, "C-M-m"},
		{glfw.Key1, 0, "1"},
		{glfw.KeyLeftShift, glfw.ModShift, ""},
		{glfw.KeyRightControl, glfw.ModControl, ""},
		{glfw.KeyF12, 0, ""},
	}
	for _, tt := range tests {
		if got := KeyName(tt.key, 0, tt.mods, fakeKeyNames); got != tt.want {
			t.Errorf("KeyName(%v, %v) = %q, want %q", tt.key, tt.mods, got, tt.want)
		}
	}
}

func TestKeyMap(t *testing.T) {
	km := CreateKeyMap()
	calls := 0
	km.Bind("C-c", func() { calls++ })
	if !km.HandleKey("C-c") {
		t.Error("HandleKey(C-c) = false, want true")
	}
	if km.HandleKey("c") {
		t.Error("HandleKey(c) = true for an unbound key")
	}
	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
}
