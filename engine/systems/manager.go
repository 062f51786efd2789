package systems

import (
	"github.com/spaghettifunk/litecraft/engine/assets"
	"github.com/spaghettifunk/litecraft/engine/assets/loaders"
	"github.com/spaghettifunk/litecraft/engine/config"
	"github.com/spaghettifunk/litecraft/engine/core"
	"github.com/spaghettifunk/litecraft/engine/renderer"
	"github.com/spaghettifunk/litecraft/engine/resources"
)

// FatalHandler is called when a required asset cannot be made available.
// The default terminates the process.
type FatalHandler func(msg string, args ...interface{})

type Option func(*ResourceManager)

// WithFatalHandler replaces core.LogFatal as the reaction to fatal asset errors.
func WithFatalHandler(handler FatalHandler) Option {
	return func(rm *ResourceManager) {
		rm.fatal = handler
	}
}

// WithClock makes Time report the given clock instead of one started at creation.
func WithClock(clock *core.Clock) Option {
	return func(rm *ResourceManager) {
		rm.clock = clock
	}
}

// ResourceManager is the single entry point used by scenes to load assets.
// It must be used from the goroutine owning the renderer backend.
type ResourceManager struct {
	settings *config.Settings

	resolver *resources.Resolver
	textures *TextureManager
	shaders  *ShaderManager
	fonts    *FontManager
	watcher  *assets.PackWatcher

	clock      *core.Clock
	fatal      FatalHandler
	packsDirty bool
}

func NewResourceManager(settings *config.Settings, opts ...Option) (*ResourceManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	rm := &ResourceManager{
		settings: settings,
		fatal:    core.LogFatal,
	}
	for _, opt := range opts {
		opt(rm)
	}
	if rm.clock == nil {
		rm.clock = core.NewClock()
		rm.clock.Start()
	}

	rm.resolver = resources.NewResolver(settings.Resources.PackDir, settings.Resources.ResourceDir, settings.Resources.Packs)

	tl, err := loaders.NewTextureLoader(rm.resolver, settings.Textures.Formats)
	if err != nil {
		return nil, err
	}
	rm.textures, err = NewTextureManager(TextureManagerConfig{
		Workers:        settings.Textures.Workers,
		UploadsPerTick: settings.Textures.UploadsPerTick,
	}, tl)
	if err != nil {
		return nil, err
	}

	tiers := make([]loaders.ShaderTier, len(settings.Shaders.Tiers))
	for i, tier := range settings.Shaders.Tiers {
		tiers[i] = loaders.ShaderTier{Version: tier.Version, Subpath: tier.Subpath}
	}
	rm.shaders, err = NewShaderManager(ShaderManagerConfig{
		Namespace: settings.Shaders.Namespace,
		Tiers:     tiers,
	}, loaders.NewShaderLoader(rm.resolver))
	if err != nil {
		rm.textures.Shutdown()
		return nil, err
	}

	rm.fonts = NewFontManager(loaders.NewFontLoader(rm.resolver))

	if settings.Resources.Watch {
		rm.watcher, err = assets.NewPackWatcher(settings.Resources.PackDir)
		if err != nil {
			rm.textures.Shutdown()
			return nil, err
		}
	}

	core.LogDebug("resource manager ready, packs %v, %d decode workers", settings.Resources.Packs, settings.Textures.Workers)
	return rm, nil
}

// LoadTexture schedules a scene texture. It never blocks.
func (rm *ResourceManager) LoadTexture(id resources.Identifier) {
	rm.textures.Request(id)
}

// LoadUITexture schedules a UI texture. It never blocks.
func (rm *ResourceManager) LoadUITexture(id resources.Identifier) {
	rm.textures.RequestUI(id)
}

// LoadShader compiles the named program right away. Failing is fatal.
func (rm *ResourceManager) LoadShader(name string, backend renderer.Backend) error {
	if err := rm.shaders.Load(name, backend); err != nil {
		rm.fatal("could not load shader '%s': %s", name, err)
		return err
	}
	return nil
}

// LoadFont parses the font right away. Failing is fatal.
func (rm *ResourceManager) LoadFont(id resources.Identifier) error {
	if err := rm.fonts.Load(id); err != nil {
		rm.fatal("could not load font %s: %s", id, err)
		return err
	}
	return nil
}

// Tick uploads decoded textures and applies resource pack changes between
// load batches. An upload failure is fatal.
func (rm *ResourceManager) Tick(backend renderer.Backend) (int, error) {
	if rm.watcher != nil {
		select {
		case <-rm.watcher.Changes():
			rm.packsDirty = true
		default:
		}
	}

	applied, err := rm.textures.Tick(backend)
	if err != nil {
		rm.fatal("%s", err)
		return applied, err
	}

	if rm.packsDirty && rm.Loaded() {
		rm.refreshPacks()
	}
	return applied, nil
}

// refreshPacks enables the configured packs present on disk.
func (rm *ResourceManager) refreshPacks() {
	rm.packsDirty = false
	available, err := rm.resolver.AvailablePacks()
	if err != nil {
		core.LogWarn("could not list resource packs: %s", err)
		return
	}
	present := make(map[string]struct{}, len(available))
	for _, name := range available {
		present[name] = struct{}{}
	}

	enabled := make([]string, 0, len(rm.settings.Resources.Packs))
	for _, name := range rm.settings.Resources.Packs {
		if _, ok := present[name]; ok {
			enabled = append(enabled, name)
		}
	}
	rm.resolver.SetPacks(enabled)
	core.LogInfo("resource packs changed, enabled %v", enabled)
}

// Loaded reports whether every requested texture was uploaded.
func (rm *ResourceManager) Loaded() bool {
	return rm.textures.Loaded()
}

// Time returns the seconds elapsed since the manager was created.
func (rm *ResourceManager) Time() float32 {
	return rm.clock.Seconds()
}

// SetResourcePacks replaces the enabled resource packs. It fails with
// core.ErrBusy while textures are loading.
func (rm *ResourceManager) SetResourcePacks(packs []string) error {
	if !rm.Loaded() {
		return core.ErrBusy
	}
	rm.settings.Resources.Packs = append([]string(nil), packs...)
	rm.resolver.SetPacks(packs)
	core.LogInfo("resource packs set to %v", packs)
	return nil
}

func (rm *ResourceManager) Textures() *TextureManager {
	return rm.textures
}

func (rm *ResourceManager) Shaders() *ShaderManager {
	return rm.shaders
}

func (rm *ResourceManager) Fonts() *FontManager {
	return rm.fonts
}

func (rm *ResourceManager) Resolver() *resources.Resolver {
	return rm.resolver
}

func (rm *ResourceManager) Shutdown() error {
	if rm.watcher != nil {
		if err := rm.watcher.Close(); err != nil {
			return err
		}
	}
	return rm.textures.Shutdown()
}
