package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/litecraft/engine/core"
)

// PackWatcher reports changes to the resource pack archives of a folder.
// Bursts of events are coalesced into a single notification.
type PackWatcher struct {
	dir string

	fsnotify *fsnotify.Watcher
	changes  chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup

	mutex    sync.Mutex
	isClosed bool
}

func NewPackWatcher(dir string) (*PackWatcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(dir); err != nil {
		fsWatch.Close()
		return nil, err
	}

	pw := &PackWatcher{
		dir:      dir,
		fsnotify: fsWatch,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	pw.wg.Add(1)
	go pw.start()
	return pw, nil
}

// Changes delivers a value after one or more pack archives were created,
// written, removed or renamed.
func (pw *PackWatcher) Changes() <-chan struct{} {
	return pw.changes
}

func (pw *PackWatcher) Dir() string {
	return pw.dir
}

func (pw *PackWatcher) Close() error {
	pw.mutex.Lock()
	if pw.isClosed {
		pw.mutex.Unlock()
		return errors.New("pack watcher already closed")
	}
	pw.isClosed = true
	pw.mutex.Unlock()

	close(pw.done)
	pw.wg.Wait()
	return nil
}

func (pw *PackWatcher) start() {
	defer pw.wg.Done()
	for {
		select {
		case e, ok := <-pw.fsnotify.Events:
			if !ok {
				return
			}
			if !isPackArchive(e.Name) {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			core.LogDebug("resource pack %s changed (%s)", filepath.Base(e.Name), e.Op)
			pw.notify()

		case err, ok := <-pw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("resource pack watcher: %s", err)

		case <-pw.done:
			if err := pw.fsnotify.Close(); err != nil {
				core.LogWarn("resource pack watcher: %s", err)
			}
			return
		}
	}
}

// notify never blocks, a pending notification already covers this change.
func (pw *PackWatcher) notify() {
	select {
	case pw.changes <- struct{}{}:
	default:
	}
}

func isPackArchive(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zip")
}
