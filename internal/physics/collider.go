package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is a world-space axis-aligned bounding box
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}

func (a AABB) Center() mgl32.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Contact is a single contact point produced during collision detection
type Contact struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// CollisionEvent describes one continuing contact between a handler's
// collider and another body, valid for the current step only
type CollisionEvent struct {
	Body     *Body
	Position mgl32.Vec3
	Contacts []Contact
}

// CollisionHandler receives continuing-contact events once per step
type CollisionHandler interface {
	OnCollisionStay(event CollisionEvent)
}

// Collider is an oriented box volume. When a body is attached the collider
// follows the body's position; otherwise Center is authoritative (static
// geometry such as a conveyor surface).
type Collider struct {
	Center      mgl32.Vec3
	HalfExtents mgl32.Vec3
	Rotation    mgl32.Quat

	body    *Body
	handler CollisionHandler
}

func NewBoxCollider(center, halfExtents mgl32.Vec3) *Collider {
	return &Collider{
		Center:      center,
		HalfExtents: halfExtents,
		Rotation:    mgl32.QuatIdent(),
	}
}

// AttachBody ties the collider to a dynamic body; the collider tracks the
// body's position from then on
func (c *Collider) AttachBody(b *Body) {
	c.body = b
}

// Body returns the attached dynamic body, or nil for static colliders
func (c *Collider) Body() *Body {
	return c.body
}

// SetHandler registers the receiver of continuing-contact events for this
// collider
func (c *Collider) SetHandler(h CollisionHandler) {
	c.handler = h
}

func (c *Collider) position() mgl32.Vec3 {
	if c.body != nil {
		return c.body.Position
	}
	return c.Center
}

// Bounds returns the world-space AABB enclosing the (possibly rotated) box
func (c *Collider) Bounds() AABB {
	center := c.position()

	// Enclosing extents of a rotated box: |R| * h per axis
	m := c.Rotation.Mat4().Mat3()
	var ext mgl32.Vec3
	for i := 0; i < 3; i++ {
		ext[i] = abs(m.At(i, 0))*c.HalfExtents.X() +
			abs(m.At(i, 1))*c.HalfExtents.Y() +
			abs(m.At(i, 2))*c.HalfExtents.Z()
	}

	return AABB{
		Min: center.Sub(ext),
		Max: center.Add(ext),
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
