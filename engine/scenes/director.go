package scenes

import (
	"fmt"

	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer"
)

// Stage is the lifecycle step of the current scene.
type Stage int

const (
	// StageLoading waits for the scene assets.
	StageLoading Stage = iota
	// StageReady has every asset and is about to be shown.
	StageReady
	// StageActive is shown.
	StageActive
	// StageUnloading hands over to the next scene.
	StageUnloading
)

func (s Stage) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageReady:
		return "ready"
	case StageActive:
		return "active"
	case StageUnloading:
		return "unloading"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Director walks the scenes through their stages. It advances one step per
// Update and must be used from the goroutine owning the renderer backend.
type Director struct {
	resources Resources
	backend   renderer.Backend

	current   Kind
	stage     Stage
	requested bool
}

func NewDirector(res Resources, backend renderer.Backend, first Kind) *Director {
	return &Director{
		resources: res,
		backend:   backend,
		current:   first,
		stage:     StageLoading,
	}
}

// Update moves the current scene forward when it can.
func (d *Director) Update() error {
	switch d.stage {
	case StageLoading:
		if !d.requested {
			d.requested = true
			core.LogInfo("loading scene %s", d.current)
			if err := d.current.Assets().request(d.resources, d.backend); err != nil {
				return fmt.Errorf("scene %s: %w", d.current, err)
			}
		}
		if d.resources.Loaded() {
			d.stage = StageReady
		}
	case StageReady:
		d.stage = StageActive
		core.LogInfo("scene %s is active", d.current)
	case StageActive:
		if _, ok := d.current.Next(); ok {
			d.stage = StageUnloading
		}
	case StageUnloading:
		next, _ := d.current.Next()
		core.LogDebug("scene %s hands over to %s", d.current, next)
		d.current = next
		d.stage = StageLoading
		d.requested = false
	}
	return nil
}

func (d *Director) Current() Kind {
	return d.current
}

func (d *Director) Stage() Stage {
	return d.stage
}

// Done reports whether the last scene is active.
func (d *Director) Done() bool {
	_, hasNext := d.current.Next()
	return !hasNext && d.stage == StageActive
}
