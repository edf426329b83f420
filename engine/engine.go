package engine

import (
	"os"

	"github.com/spaghettifunk/uchiha/engine/assets"
	"github.com/spaghettifunk/uchiha/engine/core"
	"github.com/spaghettifunk/uchiha/engine/platform"
	"github.com/spaghettifunk/uchiha/engine/renderer"
	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
	"github.com/spaghettifunk/uchiha/engine/renderer/opengl"
)

// Engine owns the window, the renderer and the asset manager, and exposes
// the surface a game loop needs: initialize, poll input, create textures,
// draw, present, shut down. All of it must be driven from the main OS
// thread; there is no internal concurrency around GPU access.
type Engine struct {
	gameInstance *Game
	isRunning    bool
	platform     *platform.Platform
	assetManager *assets.AssetManager
	renderer     *renderer.Renderer
	width        uint32
	height       uint32
	clock        *core.Clock
	lastTime     float64
}

func New(g *Game) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	core.SetLogLevel(g.ApplicationConfig.LogLevel)

	p := platform.New()

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Engine{
		gameInstance: g,
		isRunning:    true,
		platform:     p,
		assetManager: am,
		renderer:     renderer.New(opengl.New(p)),
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
		clock:        core.NewClock(),
	}, nil
}

// Initialize brings up every subsystem in dependency order: window and GL
// context first, then the renderer, then assets, then the game. Any failure
// tears down what already started; no partially constructed engine is left
// behind.
func (e *Engine) Initialize() error {
	config := e.gameInstance.ApplicationConfig

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	if err := e.platform.Startup(config.Name, e.width, e.height, config.Fullscreen); err != nil {
		return &core.InitError{Stage: "platform", Err: err}
	}

	if err := e.renderer.Initialize(config.Name, e.width, e.height); err != nil {
		e.platform.Shutdown()
		return err
	}

	if _, err := os.Stat(config.AssetsDir); err == nil {
		if err := e.assetManager.Initialize(config.AssetsDir); err != nil {
			e.renderer.Shutdown()
			e.platform.Shutdown()
			return &core.InitError{Stage: "assets", Err: err}
		}
	} else {
		core.LogWarn("assets directory '%s' not found, hot reload disabled", config.AssetsDir)
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			e.Shutdown()
			return err
		}
	}
	return nil
}

// PollEvent reports at most one pending input event without blocking.
// Call in a loop until it returns false to drain the queue within a frame.
func (e *Engine) PollEvent() (core.Event, bool) {
	return e.platform.PollEvent()
}

// CreateTexture decodes the image file at path and uploads it into a GPU
// texture. The caller owns the result and is responsible for destroying it;
// the engine keeps no reference.
func (e *Engine) CreateTexture(path string) (*metadata.Texture, error) {
	img, err := e.assetManager.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return e.renderer.CreateTexture(img)
}

// DestroyTexture releases a texture created through CreateTexture.
func (e *Engine) DestroyTexture(texture *metadata.Texture) {
	e.renderer.DestroyTexture(texture)
}

// DrawTriangles draws a batch of flat-colored triangles.
func (e *Engine) DrawTriangles(triangles []metadata.Triangle) error {
	return e.renderer.DrawTriangles(triangles)
}

// DrawTrianglesTextured draws a batch of triangles sampling the texture.
func (e *Engine) DrawTrianglesTextured(triangles []metadata.Triangle, texture *metadata.Texture) error {
	return e.renderer.DrawTrianglesTextured(triangles, texture)
}

// Present makes everything drawn since the last Present visible.
func (e *Engine) Present() error {
	return e.renderer.Present()
}

// Run drives the game loop: drain input, update, render, present, until a
// quit is requested or a hook fails.
func (e *Engine) Run() error {
	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	for e.isRunning {
		e.pumpEvents()
		if !e.isRunning {
			break
		}

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStartTime := platform.GetAbsoluteTime()

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("game update failed, shutting down: %s", err.Error())
				e.isRunning = false
				return err
			}
		}

		if e.gameInstance.FnRender != nil {
			if err := e.gameInstance.FnRender(delta); err != nil {
				core.LogError("game render failed, shutting down: %s", err.Error())
				e.isRunning = false
				return err
			}
		}

		if err := e.Present(); err != nil {
			core.LogError("present failed: %s", err.Error())
			e.isRunning = false
			return err
		}

		core.MetricsUpdate(platform.GetAbsoluteTime() - frameStartTime)
		e.lastTime = currentTime
	}

	return nil
}

// RequestQuit stops the run loop after the current frame.
func (e *Engine) RequestQuit() {
	e.isRunning = false
}

func (e *Engine) pumpEvents() {
	for {
		event, ok := e.PollEvent()
		if !ok {
			return
		}
		if e.gameInstance.FnOnEvent != nil && e.gameInstance.FnOnEvent(event) {
			continue
		}
		if event.Type == core.EVENT_QUIT {
			core.LogInfo("quit requested, shutting down.")
			e.isRunning = false
		}
	}
}

func (e *Engine) Shutdown() error {
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if err := e.assetManager.Shutdown(); err != nil {
		return err
	}
	if err := e.renderer.Shutdown(); err != nil {
		return err
	}
	return e.platform.Shutdown()
}

// GetFramebufferSize returns the width and height (in this order) of the
// application framebuffer.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}
