package conveyor

import (
	"Conveyor3D/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
)

// DebugDrawer is the sink for gizmo lines; the renderer or editor provides it
type DebugDrawer interface {
	DrawLine(from, to mgl32.Vec3, color [3]float32)
}

// Gizmo colors follow the usual axis convention
var (
	colorX    = [3]float32{1, 0, 0}
	colorY    = [3]float32{0, 1, 0}
	colorZ    = [3]float32{0, 0, 1}
	colorEdge = [3]float32{1, 1, 0}
)

// BeltGizmos draws the belt frame axes and, when edge detection is enabled,
// the release zone at the exit end. Pure observer: it reads belt state and
// draws, nothing more.
type BeltGizmos struct {
	behaviour.BaseComponent

	Belt   *Belt
	Drawer DebugDrawer

	// AxisLength is the drawn length of the frame axes, in world units
	AxisLength float32
}

func NewBeltGizmos(belt *Belt, drawer DebugDrawer) *BeltGizmos {
	return &BeltGizmos{
		Belt:       belt,
		Drawer:     drawer,
		AxisLength: 1,
	}
}

func (g *BeltGizmos) Update() {
	if g.Belt == nil || g.Drawer == nil {
		return
	}

	f := FrameOf(g.Belt.GetGameObject().Transform)

	g.Drawer.DrawLine(f.Position, f.Position.Add(f.Right.Mul(g.AxisLength)), colorX)
	g.Drawer.DrawLine(f.Position, f.Position.Add(f.Up.Mul(g.AxisLength)), colorY)
	g.Drawer.DrawLine(f.Position, f.Position.Add(f.Forward.Mul(g.AxisLength)), colorZ)

	if g.Belt.EdgeDetectionDistance > 0 {
		g.drawEdgeZone(f)
	}
}

// drawEdgeZone outlines the release zone at the exit end as a quad on the
// surface plane
func (g *BeltGizmos) drawEdgeZone(f SurfaceFrame) {
	t := g.Belt.GetGameObject().Transform
	halfWidth := t.Scale.X() / 2

	travel := f.Forward.Mul(g.Belt.DirectionMultiplier)
	outer := f.Position.Add(travel.Mul(f.Length / 2))
	inner := f.Position.Add(travel.Mul(f.Length/2 - g.Belt.EdgeDetectionDistance))
	right := f.Right.Mul(halfWidth)

	corners := [4]mgl32.Vec3{
		inner.Sub(right),
		inner.Add(right),
		outer.Add(right),
		outer.Sub(right),
	}
	for i := range corners {
		g.Drawer.DrawLine(corners[i], corners[(i+1)%4], colorEdge)
	}
}
