// Package config loads the engine settings from a TOML file, the environment
// and an optional .env file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/spaghettifunk/litecraft/engine/core"
)

const (
	// DefaultPath is where the settings file is looked up when none is given.
	DefaultPath = "settings.toml"
	// EnvPrefix prefixes every environment override, e.g. LITECRAFT_TEXTURES_WORKERS.
	EnvPrefix = "LITECRAFT"
)

// Settings holds every configurable value of the engine.
type Settings struct {
	Resources ResourceSettings `mapstructure:"resources" toml:"resources"`
	Textures  TextureSettings  `mapstructure:"textures" toml:"textures"`
	Shaders   ShaderSettings   `mapstructure:"shaders" toml:"shaders"`
	Engine    EngineSettings   `mapstructure:"engine" toml:"engine"`
	Log       LogSettings      `mapstructure:"log" toml:"log"`
}

type ResourceSettings struct {
	// PackDir is the folder holding the resource pack archives.
	PackDir string `mapstructure:"pack_dir" toml:"pack_dir"`
	// ResourceDir is the loose resource tree.
	ResourceDir string `mapstructure:"resource_dir" toml:"resource_dir"`
	// Packs are the enabled resource packs, highest priority first.
	Packs []string `mapstructure:"packs" toml:"packs"`
	// Watch reloads the pack list when archives change on disk.
	Watch bool `mapstructure:"watch" toml:"watch"`
}

type TextureSettings struct {
	Workers int `mapstructure:"workers" toml:"workers"`
	// UploadsPerTick caps the uploads of one tick, zero or less drains everything.
	UploadsPerTick int      `mapstructure:"uploads_per_tick" toml:"uploads_per_tick"`
	Formats        []string `mapstructure:"formats" toml:"formats"`
	MaxSize        uint32   `mapstructure:"max_size" toml:"max_size"`
}

type ShaderTier struct {
	Version uint16 `mapstructure:"version" toml:"version"`
	Subpath string `mapstructure:"subpath" toml:"subpath"`
}

type ShaderSettings struct {
	Namespace string       `mapstructure:"namespace" toml:"namespace"`
	Tiers     []ShaderTier `mapstructure:"tiers" toml:"tiers"`
}

type EngineSettings struct {
	FramesPerSecond int    `mapstructure:"frames_per_second" toml:"frames_per_second"`
	Renderer        string `mapstructure:"renderer" toml:"renderer"`
}

type LogSettings struct {
	Level string `mapstructure:"level" toml:"level"`
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		Resources: ResourceSettings{
			PackDir:     "resourcepacks",
			ResourceDir: "resources",
			Packs:       []string{},
			Watch:       false,
		},
		Textures: TextureSettings{
			Workers:        6,
			UploadsPerTick: 1,
			Formats:        []string{"png"},
			MaxSize:        0,
		},
		Shaders: ShaderSettings{
			Namespace: "litecraft",
			Tiers: []ShaderTier{
				{Version: 330, Subpath: "core"},
				{Version: 140, Subpath: ""},
			},
		},
		Engine: EngineSettings{
			FramesPerSecond: 60,
			Renderer:        "headless",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Validate reports the first setting the engine cannot run with.
func (s *Settings) Validate() error {
	switch {
	case s.Textures.Workers <= 0:
		return fmt.Errorf("textures.workers must be > 0, got %d", s.Textures.Workers)
	case len(s.Shaders.Tiers) == 0:
		return errors.New("shaders.tiers must list at least one tier")
	case s.Shaders.Namespace == "":
		return errors.New("shaders.namespace must not be empty")
	case s.Engine.FramesPerSecond <= 0:
		return fmt.Errorf("engine.frames_per_second must be > 0, got %d", s.Engine.FramesPerSecond)
	case s.Resources.PackDir == "" || s.Resources.ResourceDir == "":
		return errors.New("resources.pack_dir and resources.resource_dir must not be empty")
	}
	for _, tier := range s.Shaders.Tiers {
		if tier.Version == 0 {
			return errors.New("shaders.tiers entries need a version")
		}
	}
	return nil
}

// Load reads the settings file at path. A missing file is generated from
// Default, a file that cannot be parsed is moved aside to <path>.bak and
// regenerated. A .env file next to the settings file and LITECRAFT_*
// environment variables override the file.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = DefaultPath
	}
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(filepath.Dir(path), ".env"))

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := Save(path, Default()); err != nil {
			return nil, err
		}
		core.LogInfo("generated default settings at %s", path)
	}

	v, err := newViper()
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.MergeInConfig(); err != nil {
		core.LogWarn("could not read settings %s, restoring defaults: %s", path, err)
		if err := backup(path); err != nil {
			return nil, err
		}
		if err := Save(path, Default()); err != nil {
			return nil, err
		}
		if v, err = newViper(); err != nil {
			return nil, err
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// newViper returns a viper instance seeded with the default settings.
func newViper() (*viper.Viper, error) {
	defaults, err := toml.Marshal(Default())
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, err
	}

	// Map environment variables to nested keys (e.g. LITECRAFT_TEXTURES_WORKERS -> textures.workers)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

// Save writes the settings as TOML.
func Save(path string, settings *Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path+".bak", data, 0o644)
}
