package resources

import (
	"fmt"
	"strings"
)

const (
	NamespaceLitecraft = "litecraft"
	NamespaceMinecraft = "minecraft"
)

// Identifier names a resource. It is a plain value: compare it with == and use
// it directly as a map key.
type Identifier struct {
	Namespace string
	Kind      Kind
	// Subpath is an optional folder between the kind folder and the name.
	Subpath string
	Name    string
}

// New creates an identifier with full URI
func New(namespace, name string, kind Kind) Identifier {
	return Identifier{
		Namespace: namespace,
		Kind:      kind,
		Name:      name,
	}
}

// WithPath creates an identifier and sets a custom sub path
func WithPath(namespace, name, subpath string, kind Kind) Identifier {
	return Identifier{
		Namespace: namespace,
		Kind:      kind,
		Subpath:   subpath,
		Name:      name,
	}
}

func Litecraft(name string, kind Kind) Identifier {
	return New(NamespaceLitecraft, name, kind)
}

func Minecraft(name string, kind Kind) Identifier {
	return New(NamespaceMinecraft, name, kind)
}

func LitecraftPath(name, subpath string, kind Kind) Identifier {
	return WithPath(NamespaceLitecraft, name, subpath, kind)
}

func MinecraftPath(name, subpath string, kind Kind) Identifier {
	return WithPath(NamespaceMinecraft, name, subpath, kind)
}

// Folder returns the relative file path of the resource under root, e.g.
// "assets/minecraft/textures/entity/creeper.png".
func (id Identifier) Folder(root string) string {
	if id.Subpath != "" {
		return fmt.Sprintf("%s/%s/%s/%s/%s.%s",
			root,                // Ex. resources
			id.Namespace,        // Ex. minecraft
			id.Kind.Folder(),    // Ex. textures
			id.Subpath,          // Ex. entity
			id.Name,             // Ex. creeper
			id.Kind.Extension(), // Ex. png
		)
	}
	return fmt.Sprintf("%s/%s/%s/%s.%s",
		root,
		id.Namespace,
		id.Kind.Folder(),
		id.Name,
		id.Kind.Extension(),
	)
}

func (id Identifier) String() string {
	return fmt.Sprintf("[%s:%s:%s]", id.Namespace, id.Kind, id.path())
}

func (id Identifier) path() string {
	if id.Subpath == "" {
		return id.Name
	}
	return id.Subpath + "/" + id.Name
}

// ParseIdentifier reads the "namespace:kind:[subpath/]name" form, e.g.
// "minecraft:texture:entity/creeper". Surrounding brackets are accepted so the
// output of String parses back.
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return Identifier{}, fmt.Errorf("invalid identifier %q: expected namespace:kind:name", s)
	}
	kind, err := ParseKind(parts[1])
	if err != nil {
		return Identifier{}, err
	}
	namespace, rest := parts[0], parts[2]
	if namespace == "" || rest == "" {
		return Identifier{}, fmt.Errorf("invalid identifier %q: empty namespace or name", s)
	}

	subpath, name := "", rest
	if i := strings.LastIndex(rest, "/"); i >= 0 {
		subpath, name = rest[:i], rest[i+1:]
	}
	if name == "" {
		return Identifier{}, fmt.Errorf("invalid identifier %q: empty name", s)
	}
	return WithPath(namespace, name, subpath, kind), nil
}
