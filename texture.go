package inkstroke

import "fmt"

// Texture is a brush texture. Strokes only store and expose it; many
// strokes may share one texture, which they never modify.
type Texture interface {
	// Name identifies the texture in persisted strokes.
	Name() string
}

// NamedTexture is a Texture which is nothing but its name.
type NamedTexture string

// Name returns the texture name.
func (t NamedTexture) Name() string {
	return string(t)
}

// TextureResolver finds the texture for a persisted texture name.
type TextureResolver func(name string) (Texture, error)

// Textures resolves names from a fixed set of textures.
func Textures(textures ...Texture) TextureResolver {
	m := make(map[string]Texture, len(textures))
	for _, t := range textures {
		m[t.Name()] = t
	}
	return func(name string) (Texture, error) {
		if t, ok := m[name]; ok {
			return t, nil
		}
		return nil, fmt.Errorf("%w: unknown texture %q", ErrNilTexture, name)
	}
}
