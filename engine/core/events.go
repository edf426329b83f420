package core

type EventType uint8

const (
	// Application quit has been requested (window close, OS signal).
	EVENT_QUIT EventType = iota
	// The pointer moved. MouseX/MouseY carry the new position.
	EVENT_MOUSE_MOTION
	// A pointer button was released. MouseX/MouseY carry the click position.
	EVENT_MOUSE_CLICK
	// A keyboard key went down. Key carries the mapped key code.
	EVENT_KEY_PRESSED
	// A keyboard key went up. Key carries the mapped key code.
	EVENT_KEY_RELEASED
)

func (t EventType) String() string {
	switch t {
	case EVENT_QUIT:
		return "quit"
	case EVENT_MOUSE_MOTION:
		return "mouse_motion"
	case EVENT_MOUSE_CLICK:
		return "mouse_click"
	case EVENT_KEY_PRESSED:
		return "pressed"
	case EVENT_KEY_RELEASED:
		return "released"
	}
	return "unknown"
}

// KeyCode is the closed key vocabulary the engine reports to the game.
// Everything the platform produces maps into exactly one of these.
type KeyCode uint8

const (
	KEY_UNDEFINED KeyCode = iota
	KEY_TOP
	KEY_BOTTOM
	KEY_LEFT
	KEY_RIGHT
	KEY_ESCAPE
	KEY_SPACE
	KEY_ENTER
)

func (k KeyCode) String() string {
	switch k {
	case KEY_TOP:
		return "top"
	case KEY_BOTTOM:
		return "bottom"
	case KEY_LEFT:
		return "left"
	case KEY_RIGHT:
		return "right"
	case KEY_ESCAPE:
		return "escape"
	case KEY_SPACE:
		return "space"
	case KEY_ENTER:
		return "enter"
	}
	return "undefined"
}

// Event is the uniform input representation handed to the game loop.
// Key is only meaningful for EVENT_KEY_PRESSED/EVENT_KEY_RELEASED and
// MouseX/MouseY only for the mouse event types; consumers must not read
// fields that do not belong to the current Type.
type Event struct {
	Type   EventType
	Key    KeyCode
	MouseX uint16
	MouseY uint16
}
