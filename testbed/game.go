package testbed

import (
	"os"

	"github.com/spaghettifunk/uchiha/engine"
	"github.com/spaghettifunk/uchiha/engine/core"
	"github.com/spaghettifunk/uchiha/engine/renderer/metadata"
)

const configPath = "uchiha.toml"

// TestGame renders two flat-colored triangles and a textured quad, and logs
// every input event it receives.
type TestGame struct {
	*engine.Game
	engine *engine.Engine
}

type gameState struct {
	flatTriangles     []metadata.Triangle
	texturedTriangles []metadata.Triangle
	horseTexture      *metadata.Texture
}

func NewTestGame() (*TestGame, error) {
	config, err := engine.LoadApplicationConfig(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		config = engine.DefaultApplicationConfig()
	}

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State: &gameState{
				flatTriangles: []metadata.Triangle{
					metadata.NewTriangle(
						metadata.Vertex{X: 0.3, Y: -0.3, R: 1, A: 1},
						metadata.Vertex{X: 0.0, Y: 0.3, R: 1, A: 1},
						metadata.Vertex{X: -0.3, Y: -0.3, R: 1, A: 1},
					),
					metadata.NewTriangle(
						metadata.Vertex{X: 0.6, Y: 0.3, G: 1, A: 1},
						metadata.Vertex{X: 0.9, Y: 0.3, G: 1, A: 1},
						metadata.Vertex{X: 0.75, Y: 0.6, G: 1, A: 1},
					),
				},
				texturedTriangles: []metadata.Triangle{
					metadata.NewTriangle(
						metadata.Vertex{X: -0.1, Y: 0.1, R: 1, G: 1, B: 1, A: 1, U: 1, V: 1},
						metadata.Vertex{X: -0.1, Y: 0.4, R: 1, G: 1, B: 1, A: 1, U: 1, V: 0},
						metadata.Vertex{X: -0.4, Y: 0.1, R: 1, G: 1, B: 1, A: 1, U: 0, V: 1},
					),
					metadata.NewTriangle(
						metadata.Vertex{X: -0.4, Y: 0.4, R: 1, G: 1, B: 1, A: 1, U: 0, V: 0},
						metadata.Vertex{X: -0.1, Y: 0.4, R: 1, G: 1, B: 1, A: 1, U: 1, V: 0},
						metadata.Vertex{X: -0.4, Y: 0.1, R: 1, G: 1, B: 1, A: 1, U: 0, V: 1},
					),
				},
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnRender = tg.Render
	tg.FnOnEvent = tg.OnEvent
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

// SetEngine hands the game its engine. Must be called before Initialize.
func (tg *TestGame) SetEngine(e *engine.Engine) {
	tg.engine = e
}

func (tg *TestGame) Initialize() error {
	state := tg.State.(*gameState)

	texture, err := tg.engine.CreateTexture("assets/black-horse.png")
	if err != nil {
		core.LogWarn("no texture for the quad: %s", err.Error())
		return nil
	}
	state.horseTexture = texture
	return nil
}

func (tg *TestGame) Render(deltaTime float64) error {
	state := tg.State.(*gameState)

	if err := tg.engine.DrawTriangles(state.flatTriangles); err != nil {
		return err
	}
	if state.horseTexture != nil {
		if err := tg.engine.DrawTrianglesTextured(state.texturedTriangles, state.horseTexture); err != nil {
			return err
		}
	}
	return nil
}

func (tg *TestGame) OnEvent(event core.Event) bool {
	switch event.Type {
	case core.EVENT_MOUSE_MOTION:
		core.LogDebug("event: mouse motion %d, %d", event.MouseX, event.MouseY)
	case core.EVENT_MOUSE_CLICK:
		core.LogInfo("event: mouse click %d, %d", event.MouseX, event.MouseY)
	case core.EVENT_KEY_PRESSED:
		core.LogInfo("event: key pressed '%s'", event.Key)
		if event.Key == core.KEY_ESCAPE {
			tg.engine.RequestQuit()
			return true
		}
	case core.EVENT_KEY_RELEASED:
		core.LogInfo("event: key released '%s'", event.Key)
	}
	return false
}

func (tg *TestGame) Shutdown() error {
	state := tg.State.(*gameState)
	if state.horseTexture != nil {
		tg.engine.DestroyTexture(state.horseTexture)
		state.horseTexture = nil
	}
	return nil
}
