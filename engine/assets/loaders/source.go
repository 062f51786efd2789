package loaders

import "github.com/spaghettifunk/litecraft/engine/resources"

// Source hands out the raw content of resources. *resources.Resolver is the
// production implementation, it is called from worker goroutines.
type Source interface {
	Resolve(id resources.Identifier) ([]byte, error)
	LoadText(id resources.Identifier) (string, error)
}
