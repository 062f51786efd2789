package metadata

import "fmt"

// DefaultShaderVersion is the GLSL version used when a program has a single tier.
const DefaultShaderVersion uint16 = 140

/**
 * @brief The sources of one tier of a shader program.
 */
type ShaderSource struct {
	/** @brief The GLSL version the sources target. */
	Version uint16
	/** @brief The vertex stage source. */
	Vertex string
	/** @brief The fragment stage source. */
	Fragment string
}

/**
 * @brief Represents a shader program linked by the renderer backend.
 */
type Program struct {
	/** @brief The shader Name, e.g. "quad". */
	Name string
	/** @brief The handle given by the renderer backend. */
	Handle uint32
	/** @brief Every tier the program was built with, highest version first. */
	Sources []ShaderSource
}

// Select returns the highest tier whose version is not above supported.
func (p *Program) Select(supported uint16) (ShaderSource, error) {
	best := -1
	for i, src := range p.Sources {
		if src.Version > supported {
			continue
		}
		if best < 0 || src.Version > p.Sources[best].Version {
			best = i
		}
	}
	if best < 0 {
		return ShaderSource{}, fmt.Errorf("shader %s has no tier for GLSL %d", p.Name, supported)
	}
	return p.Sources[best], nil
}
