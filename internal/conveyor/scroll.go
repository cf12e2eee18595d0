package conveyor

import (
	"Conveyor3D/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

// frameTime matches the renderer's nominal frame cadence; Update has no dt
const frameTime = 1.0 / 60.0

// MaterialScroller is the render-side target for texture scrolling. The
// renderer owns the material; this package only pushes offsets at it.
type MaterialScroller interface {
	SetUVOffset(offset mgl32.Vec2)
}

// TextureScroller scrolls the belt material in sync with the surface speed.
// It reads belt configuration and never feeds back into force computation;
// disable the component to freeze the texture without touching the belt.
type TextureScroller struct {
	behaviour.BaseComponent

	Belt   *Belt
	Target MaterialScroller

	// Tiling scales texture units per world unit of surface travel
	Tiling float32

	offset mgl32.Vec2
}

func NewTextureScroller(belt *Belt, target MaterialScroller) *TextureScroller {
	return &TextureScroller{
		Belt:   belt,
		Target: target,
		Tiling: 1,
	}
}

func (s *TextureScroller) Update() {
	if s.Belt == nil || s.Target == nil {
		return
	}

	s.offset[1] += s.Belt.Speed * s.Belt.DirectionMultiplier * s.Tiling * frameTime

	// Keep the offset bounded; texture sampling wraps anyway
	for s.offset[1] > 1 {
		s.offset[1] -= 1
	}
	for s.offset[1] < -1 {
		s.offset[1] += 1
	}

	s.Target.SetUVOffset(s.offset)
}
