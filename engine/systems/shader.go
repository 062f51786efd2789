package systems

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/litecraft/engine/assets/loaders"
	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer"
	"github.com/spaghettifunk/litecraft/engine/renderer/metadata"
)

type ShaderManagerConfig struct {
	/** @brief The namespace the shader sources are looked up in. */
	Namespace string
	/** @brief The GLSL tiers to load, highest version first. */
	Tiers []loaders.ShaderTier
}

// ShaderManager compiles shader programs synchronously on the goroutine
// owning the renderer backend.
type ShaderManager struct {
	config   ShaderManagerConfig
	loader   *loaders.ShaderLoader
	programs map[string]*metadata.Program
}

func NewShaderManager(config ShaderManagerConfig, loader *loaders.ShaderLoader) (*ShaderManager, error) {
	if len(config.Tiers) == 0 {
		return nil, fmt.Errorf("func NewShaderManager - at least one shader tier is required")
	}
	return &ShaderManager{
		config:   config,
		loader:   loader,
		programs: make(map[string]*metadata.Program),
	}, nil
}

// Load reads every available tier of the named program and links it. Loading
// a program twice logs a warning and keeps the first one.
func (sm *ShaderManager) Load(name string, backend renderer.Backend) error {
	if _, ok := sm.programs[name]; ok {
		core.LogWarn("Shader '%s' is already loaded!", name)
		return nil
	}

	sources := make([]metadata.ShaderSource, 0, len(sm.config.Tiers))
	for _, tier := range sm.config.Tiers {
		src, err := sm.loader.Load(sm.config.Namespace, name, tier)
		if errors.Is(err, core.ErrNotFound) {
			core.LogDebug("shader %s has no GLSL %d sources: %s", name, tier.Version, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("shader %s: %w", name, err)
		}
		sources = append(sources, src)
	}
	if len(sources) == 0 {
		return fmt.Errorf("shader %s has no sources in namespace %s: %w", name, sm.config.Namespace, core.ErrNotFound)
	}

	program, err := backend.ShaderCreate(name, sources)
	if err != nil {
		return fmt.Errorf("shader %s: %s: %w", name, err, core.ErrCompile)
	}
	sm.programs[name] = program
	core.LogDebug("shader %s linked as %d with %d tier(s)", name, program.Handle, len(sources))
	return nil
}

// Get returns the program linked under name.
func (sm *ShaderManager) Get(name string) (*metadata.Program, bool) {
	p, ok := sm.programs[name]
	return p, ok
}

func (sm *ShaderManager) Count() int {
	return len(sm.programs)
}
