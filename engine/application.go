package engine

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/uchiha/engine/core"
)

type ApplicationConfig struct {
	// Window starting width.
	StartWidth uint32 `toml:"width"`
	// Window starting height.
	StartHeight uint32 `toml:"height"`
	// Whether to cover the primary monitor instead of opening a window.
	Fullscreen bool `toml:"fullscreen"`
	// The application name used in windowing.
	Name string `toml:"name"`
	// Directory the asset manager watches. Relative to the working directory.
	AssetsDir string `toml:"assets_dir"`
	LogLevel  core.LogLevel `toml:"log_level"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartWidth:  800,
		StartHeight: 600,
		Fullscreen:  false,
		Name:        "Uchiha Engine",
		AssetsDir:   "assets",
		LogLevel:    core.DebugLevel,
	}
}

// LoadApplicationConfig reads a TOML application configuration file.
// Missing fields keep their defaults.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}
