package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/spaghettifunk/litecraft/engine/config"
	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer"
	"github.com/spaghettifunk/litecraft/engine/scenes"
	"github.com/spaghettifunk/litecraft/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to run
	EngineStageBootComplete
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	settings     *config.Settings
	backend      renderer.Backend
	resources    *systems.ResourceManager
	director     *scenes.Director
	clock        *core.Clock
	metrics      *core.Metrics
}

// New boots the engine on the given backend. The options are handed to the
// resource manager.
func New(settings *config.Settings, backend renderer.Backend, opts ...systems.Option) (*Engine, error) {
	e := &Engine{
		currentStage: EngineStageBooting,
		settings:     settings,
		backend:      backend,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
	}

	opts = append([]systems.Option{systems.WithClock(e.clock)}, opts...)
	rm, err := systems.NewResourceManager(settings, opts...)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	e.resources = rm
	e.director = scenes.NewDirector(rm, backend, scenes.KindLoading)
	e.currentStage = EngineStageBootComplete
	return e, nil
}

// Run ticks the engine at the configured frame rate until the last scene is
// active, a frame fails or ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageBootComplete {
		return fmt.Errorf("engine cannot run from stage %d", e.currentStage)
	}
	e.currentStage = EngineStageRunning
	e.clock.Start()

	ticker := time.NewTicker(time.Second / time.Duration(e.settings.Engine.FramesPerSecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := e.frame()
			if err != nil {
				return err
			}
			if done {
				core.LogInfo("scene %s reached in %.3fs", e.director.Current(), e.clock.Seconds())
				return nil
			}
		}
	}
}

func (e *Engine) frame() (bool, error) {
	frameStart := time.Now()

	if _, err := e.resources.Tick(e.backend); err != nil {
		return false, err
	}
	if err := e.director.Update(); err != nil {
		return false, err
	}

	e.clock.Update()
	e.metrics.Update(time.Since(frameStart).Seconds())
	return e.director.Done(), nil
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.clock.Stop()
	return e.resources.Shutdown()
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Resources() *systems.ResourceManager {
	return e.resources
}

func (e *Engine) Director() *scenes.Director {
	return e.director
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

func (e *Engine) Clock() *core.Clock {
	return e.clock
}
