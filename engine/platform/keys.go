package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/uchiha/engine/core"
)

// TranslateKey maps a physical key to the engine's closed key vocabulary.
// The mapping is total: every key maps to exactly one code, with
// KEY_UNDEFINED for anything outside the vocabulary. Movement keys accept
// either the arrow key or its WASD equivalent.
func TranslateKey(key glfw.Key) core.KeyCode {
	switch key {
	case glfw.KeyUp, glfw.KeyW:
		return core.KEY_TOP
	case glfw.KeyDown, glfw.KeyS:
		return core.KEY_BOTTOM
	case glfw.KeyLeft, glfw.KeyA:
		return core.KEY_LEFT
	case glfw.KeyRight, glfw.KeyD:
		return core.KEY_RIGHT
	case glfw.KeyEscape:
		return core.KEY_ESCAPE
	case glfw.KeySpace:
		return core.KEY_SPACE
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return core.KEY_ENTER
	}
	return core.KEY_UNDEFINED
}

// TranslateKeyEvent turns a key action into an engine event. Repeats are
// not part of the event vocabulary and report ok=false. Pure function, no
// side effects.
func TranslateKeyEvent(key glfw.Key, action glfw.Action) (core.Event, bool) {
	switch action {
	case glfw.Press:
		return core.Event{Type: core.EVENT_KEY_PRESSED, Key: TranslateKey(key)}, true
	case glfw.Release:
		return core.Event{Type: core.EVENT_KEY_RELEASED, Key: TranslateKey(key)}, true
	}
	return core.Event{}, false
}
