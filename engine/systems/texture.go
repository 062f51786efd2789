package systems

import (
	"fmt"

	"github.com/spaghettifunk/litecraft/engine/assets/loaders"
	"github.com/spaghettifunk/litecraft/engine/containers"
	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer"
	"github.com/spaghettifunk/litecraft/engine/renderer/metadata"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

type TextureManagerConfig struct {
	/** @brief The number of decode workers. */
	Workers int
	/** @brief The maximum number of uploads per Tick. Zero or less drains every decoded texture. */
	UploadsPerTick int
}

type textureKey struct {
	id     resources.Identifier
	target metadata.TextureTarget
}

// TextureManager decodes textures on a worker pool and uploads them on the
// goroutine calling Tick. Except for the workers, it must only be used from
// the goroutine that owns the renderer backend.
type TextureManager struct {
	config TextureManagerConfig
	loader *loaders.TextureLoader

	jobSystem *JobSystem
	completed *containers.Queue[*metadata.DecodedImage]

	textures   map[resources.Identifier]*metadata.Texture
	uiTextures map[resources.Identifier]*metadata.UITexture
	inFlight   map[textureKey]struct{}
	pending    int
}

func NewTextureManager(config TextureManagerConfig, loader *loaders.TextureLoader) (*TextureManager, error) {
	js, err := NewJobSystem(config.Workers)
	if err != nil {
		return nil, err
	}
	return &TextureManager{
		config:     config,
		loader:     loader,
		jobSystem:  js,
		completed:  containers.NewQueue[*metadata.DecodedImage](32),
		textures:   make(map[resources.Identifier]*metadata.Texture),
		uiTextures: make(map[resources.Identifier]*metadata.UITexture),
		inFlight:   make(map[textureKey]struct{}),
	}, nil
}

// Request schedules the texture for loading into the scene table.
func (tm *TextureManager) Request(id resources.Identifier) {
	tm.request(id, metadata.TextureTargetScene)
}

// RequestUI schedules the texture for loading into the UI table.
func (tm *TextureManager) RequestUI(id resources.Identifier) {
	tm.request(id, metadata.TextureTargetUI)
}

func (tm *TextureManager) request(id resources.Identifier, target metadata.TextureTarget) {
	if tm.resident(id, target) {
		core.LogWarn("Texture %s is already loaded!", id)
		return
	}
	key := textureKey{id: id, target: target}
	if _, ok := tm.inFlight[key]; ok {
		core.LogWarn("Texture %s is already being loaded", id)
		return
	}

	var img *metadata.DecodedImage
	job := metadata.NewJobTask(fmt.Sprintf("texture %s", id),
		func() error {
			// failures are absorbed into the fallback image
			img, _ = tm.loader.Load(id, target)
			return nil
		}, nil, nil)
	job.OnComplete = func() {
		tm.post(job, img)
	}
	job.OnFailure = func(err error) {
		tm.post(job, metadata.NewFallbackImage(id, target))
	}

	if err := tm.jobSystem.Submit(job); err != nil {
		core.LogError("could not schedule texture %s: %s", id, err)
		return
	}
	tm.inFlight[key] = struct{}{}
	tm.pending++
}

func (tm *TextureManager) post(job *metadata.JobTask, img *metadata.DecodedImage) {
	img.JobID = job.ID
	if !tm.completed.Push(img) {
		core.LogDebug("dropping texture %s, the texture manager is shut down", img.ID)
	}
}

func (tm *TextureManager) resident(id resources.Identifier, target metadata.TextureTarget) bool {
	if target == metadata.TextureTargetUI {
		_, ok := tm.uiTextures[id]
		return ok
	}
	_, ok := tm.textures[id]
	return ok
}

// Tick uploads decoded textures to the backend without waiting for workers.
// It returns how many textures were uploaded. An upload failure wraps
// core.ErrUpload and leaves the remaining textures queued.
func (tm *TextureManager) Tick(backend renderer.Backend) (int, error) {
	applied := 0
	for tm.config.UploadsPerTick <= 0 || applied < tm.config.UploadsPerTick {
		img, ok := tm.completed.TryPop()
		if !ok {
			break
		}
		texture, err := backend.TextureCreate(img)
		if err != nil {
			return applied, fmt.Errorf("could not send texture %s to the GPU: %s: %w", img.ID, err, core.ErrUpload)
		}

		switch img.Target {
		case metadata.TextureTargetUI:
			tm.uiTextures[img.ID] = metadata.NewUITexture(img.ID, texture)
		default:
			tm.textures[img.ID] = texture
		}
		delete(tm.inFlight, textureKey{id: img.ID, target: img.Target})
		tm.pending--
		applied++

		if img.Fallback {
			core.LogDebug("texture %s uploaded as %d using the fallback pattern (job %s)", img.ID, texture.Handle, img.JobID)
		} else {
			core.LogDebug("texture %s uploaded as %d (job %s)", img.ID, texture.Handle, img.JobID)
		}
	}
	return applied, nil
}

// Get returns the scene texture of id, if uploaded.
func (tm *TextureManager) Get(id resources.Identifier) (*metadata.Texture, bool) {
	t, ok := tm.textures[id]
	return t, ok
}

// GetUI returns the UI texture of id, if uploaded.
func (tm *TextureManager) GetUI(id resources.Identifier) (*metadata.UITexture, bool) {
	t, ok := tm.uiTextures[id]
	return t, ok
}

// Loaded reports whether every requested texture was uploaded.
func (tm *TextureManager) Loaded() bool {
	return tm.pending == 0
}

// Pending returns the number of requested textures not yet uploaded.
func (tm *TextureManager) Pending() int {
	return tm.pending
}

// Count returns the number of uploaded scene and UI textures.
func (tm *TextureManager) Count() int {
	return len(tm.textures) + len(tm.uiTextures)
}

/**
 * @brief Stops the decode workers. Running jobs finish first; their results
 * are discarded.
 */
func (tm *TextureManager) Shutdown() error {
	tm.completed.Close()
	return tm.jobSystem.Shutdown()
}
