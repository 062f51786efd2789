package resources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/spaghettifunk/litecraft/engine/core"
)

const (
	// PackRoot is the root folder of the entries inside a resource pack.
	PackRoot = "assets"
	// DefaultResourceDir is the loose resource tree used when no pack has the resource.
	DefaultResourceDir = "resources"
	// DefaultPackDir is the folder holding the resource pack archives.
	DefaultPackDir = "resourcepacks"

	packExtension = ".zip"
)

// Resolver turns identifiers into raw bytes. Enabled packs are searched in
// order, then the loose resource tree. It is safe for concurrent use.
type Resolver struct {
	packDir     string
	resourceDir string
	packs       atomic.Pointer[[]string]
}

func NewResolver(packDir, resourceDir string, packs []string) *Resolver {
	if packDir == "" {
		packDir = DefaultPackDir
	}
	if resourceDir == "" {
		resourceDir = DefaultResourceDir
	}
	r := &Resolver{
		packDir:     packDir,
		resourceDir: resourceDir,
	}
	r.SetPacks(packs)
	return r
}

func (r *Resolver) PackDir() string {
	return r.packDir
}

func (r *Resolver) ResourceDir() string {
	return r.resourceDir
}

// Packs returns the enabled pack names in priority order.
func (r *Resolver) Packs() []string {
	return append([]string(nil), *r.packs.Load()...)
}

// SetPacks replaces the enabled pack list. Lookups already running keep the
// list they started with.
func (r *Resolver) SetPacks(packs []string) {
	snapshot := append([]string(nil), packs...)
	r.packs.Store(&snapshot)
}

// Resolve returns the bytes of the resource.
func (r *Resolver) Resolve(id Identifier) ([]byte, error) {
	data, _, err := r.Locate(id)
	return data, err
}

// Locate returns the bytes of the resource and where they were found.
func (r *Resolver) Locate(id Identifier) ([]byte, string, error) {
	if err := os.MkdirAll(r.packDir, 0o755); err != nil {
		core.LogWarn("could not create resource pack folder %s: %s", r.packDir, err)
	}

	entry := id.Folder(PackRoot)
	for _, name := range *r.packs.Load() {
		path := filepath.Join(r.packDir, name+packExtension)
		data, found := r.readFromPack(path, entry)
		if found {
			return data, path + "!" + entry, nil
		}
	}

	path := id.Folder(r.resourceDir)
	data, err := os.ReadFile(path)
	if err == nil {
		return data, path, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		core.LogWarn("could not read %s: %s", path, err)
	}
	return nil, "", fmt.Errorf("resource %s does not exist on any resource pack: %w", id, core.ErrNotFound)
}

func (r *Resolver) readFromPack(path, entry string) ([]byte, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	pack, err := OpenPack(path)
	if err != nil {
		core.LogWarn("skipping resource pack: %s", err)
		return nil, false
	}
	defer pack.Close()

	data, err := pack.ReadEntry(entry)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			core.LogWarn("skipping resource pack: %s", err)
		}
		return nil, false
	}
	return data, true
}

// LoadText resolves the resource and checks that it is valid UTF-8.
func (r *Resolver) LoadText(id Identifier) (string, error) {
	data, err := r.Resolve(id)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("resource %s is not valid UTF-8: %w", id, core.ErrDecode)
	}
	return string(data), nil
}

// AvailablePacks lists the pack archives present in the pack folder, sorted by name.
func (r *Resolver) AvailablePacks() ([]string, error) {
	if err := os.MkdirAll(r.packDir, 0o755); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(r.packDir)
	if err != nil {
		return nil, err
	}

	packs := []string{}
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), packExtension) {
			continue
		}
		packs = append(packs, strings.TrimSuffix(e.Name(), packExtension))
	}
	sort.Strings(packs)
	return packs, nil
}
