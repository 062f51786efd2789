package resources

import "fmt"

// Kind is the type of a resource. It decides the folder and the file
// extension the resource is stored under.
type Kind int

/** @brief Pre-defined resource kinds. */
const (
	KindLanguage Kind = iota
	KindBlockstate
	KindModel
	KindSound
	KindTexture
	KindAnimation
	KindColormap
	KindFont
	KindProperty
	KindText
	KindFragmentShader
	KindVertexShader
)

type kindInfo struct {
	name      string
	folder    string
	extension string
}

var kindTable = [...]kindInfo{
	KindLanguage:       {"language", "lang", "lang"},
	KindBlockstate:     {"blockstate", "blockstates", "json"},
	KindModel:          {"model", "models", "json"},
	KindSound:          {"sound", "sounds", "ogg"},
	KindTexture:        {"texture", "textures", "png"},
	KindAnimation:      {"animation", "textures", "mcmeta"},
	KindColormap:       {"colormap", "textures/colormap", "mcmeta"},
	KindFont:           {"font", "fonts", "ttf"},
	KindProperty:       {"property", "textures/misc", "mcmeta"},
	KindText:           {"text", "texts", "txt"},
	KindFragmentShader: {"fragment_shader", "shaders", "fsh"},
	KindVertexShader:   {"vertex_shader", "shaders", "vsh"},
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindTable))
	for i := range kindTable {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kindTable)
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindTable[k].name
}

// Folder returns the folder resources of this kind live in, e.g. "textures".
func (k Kind) Folder() string {
	if !k.valid() {
		return ""
	}
	return kindTable[k].folder
}

// Extension returns the file extension without the leading dot, e.g. "png".
func (k Kind) Extension() string {
	if !k.valid() {
		return ""
	}
	return kindTable[k].extension
}

// ParseKind maps the name printed by Kind.String back to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, info := range kindTable {
		if info.name == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resource kind %q", name)
}
