package resources

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/exp/mmap"
)

// Pack is an opened resource pack archive. The file is memory-mapped and read
// through archive/zip.
type Pack struct {
	path    string
	mapping *mmap.ReaderAt
	entries map[string]*zip.File
}

// OpenPack maps the zip archive at path and indexes its entries.
func OpenPack(path string) (*Pack, error) {
	mapping, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", path, err)
	}
	reader, err := zip.NewReader(mapping, int64(mapping.Len()))
	if err != nil {
		mapping.Close()
		return nil, fmt.Errorf("pack %s: %w", path, err)
	}

	entries := make(map[string]*zip.File, len(reader.File))
	for _, f := range reader.File {
		// first entry wins on duplicated names
		if _, ok := entries[f.Name]; !ok {
			entries[f.Name] = f
		}
	}
	return &Pack{
		path:    path,
		mapping: mapping,
		entries: entries,
	}, nil
}

func (p *Pack) Path() string {
	return p.path
}

// ReadEntry returns the content of the named entry, fs.ErrNotExist when the
// archive has no such entry.
func (p *Pack) ReadEntry(name string) ([]byte, error) {
	f, ok := p.entries[name]
	if !ok || f.FileInfo().IsDir() {
		return nil, fs.ErrNotExist
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("pack %s: entry %s: %w", p.path, name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("pack %s: entry %s: %w", p.path, name, err)
	}
	return data, nil
}

// Entries returns the number of entries in the archive.
func (p *Pack) Entries() int {
	return len(p.entries)
}

func (p *Pack) Close() error {
	return p.mapping.Close()
}
