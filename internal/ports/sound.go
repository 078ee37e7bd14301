package ports

import "bartog/internal/platform"

// SoundPort accepts sound effect requests made by the engine.
type SoundPort interface {
	RequestSFX(sfx platform.SFX)
}
