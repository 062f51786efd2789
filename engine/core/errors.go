package core

import (
	"errors"
)

var (
	// ErrNotFound is returned when an identifier resolves to no bytes in any
	// enabled resource pack nor in the loose resource tree.
	ErrNotFound = errors.New("resource not found")
	// ErrDecode is returned when bytes were found but are malformed for the
	// expected codec.
	ErrDecode = errors.New("resource could not be decoded")
	// ErrCompile is returned when a shader program fails to build.
	ErrCompile = errors.New("shader compilation failed")
	// ErrUpload is returned when the GPU refuses a texture.
	ErrUpload = errors.New("failed to send texture to GPU")
	// ErrBusy is returned when a reconfiguration is attempted while jobs are in flight.
	ErrBusy = errors.New("resource loading in progress")
)
