package engine

import "github.com/spaghettifunk/uchiha/engine/core"

// Game is the application the engine drives. The engine calls the hooks
// from its run loop; every hook is optional.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnEvent         OnEvent
	FnShutdown        Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(deltaTime float64) error

// OnEvent receives every drained input event before the engine's own
// handling. Returning true marks the event as consumed.
type OnEvent func(event core.Event) bool
type Shutdown func() error
