package conveyor

import (
	"Conveyor3D/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceFrame is the belt's world-space orientation snapshot for one step:
// position, axes, rotation and the extent along the travel axis. It is a pure
// derived value and is recomputed from the live transform at the top of every
// driver invocation, never cached, so a moving belt is never stale.
type SurfaceFrame struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3
	Right    mgl32.Vec3
	Up       mgl32.Vec3
	Rotation mgl32.Quat
	Length   float32
}

// FrameOf derives the surface frame from a transform. Length is the extent
// along the forward axis, taken from the Z scale.
func FrameOf(t *behaviour.Transform) SurfaceFrame {
	return SurfaceFrame{
		Position: t.Position,
		Forward:  t.Forward(),
		Right:    t.Right(),
		Up:       t.Up(),
		Rotation: t.Rotation,
		Length:   t.Scale.Z(),
	}
}

// Longitudinal returns a world point's belt-local coordinate along the
// forward axis, with the belt position as origin
func (f SurfaceFrame) Longitudinal(world mgl32.Vec3) float32 {
	return world.Sub(f.Position).Dot(f.Forward)
}
