package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// World owns all bodies and colliders and advances them in fixed steps.
// It is single-threaded: Step integrates forces, then detects contacts and
// dispatches continuing-contact events synchronously before returning, so
// handlers never run concurrently with each other.
type World struct {
	Gravity mgl32.Vec3

	bodies    []*Body
	colliders []*Collider
}

func NewWorld() *World {
	return &World{
		Gravity: mgl32.Vec3{0, -9.81, 0},
	}
}

func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

func (w *World) AddCollider(c *Collider) {
	w.colliders = append(w.colliders, c)
}

func (w *World) RemoveCollider(c *Collider) {
	for i, existing := range w.colliders {
		if existing == c {
			w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
			return
		}
	}
}

// OverlapBox returns all colliders whose volume intersects the given
// oriented box
func (w *World) OverlapBox(center, halfExtents mgl32.Vec3, rotation mgl32.Quat) []*Collider {
	var hits []*Collider
	for _, c := range w.colliders {
		if boxesOverlap(center, halfExtents, rotation, c.position(), c.HalfExtents, c.Rotation) {
			hits = append(hits, c)
		}
	}
	return hits
}

// Step advances the simulation by dt: integrate accumulated forces and
// gravity, then detect contacts and dispatch continuing-contact events.
// Forces applied from inside an event handler take effect next step; direct
// velocity writes take effect immediately.
func (w *World) Step(dt float32) {
	for _, b := range w.bodies {
		if b.Kinematic {
			continue
		}
		b.integrate(dt, w.Gravity)
	}

	w.dispatchContacts()
}

func (w *World) dispatchContacts() {
	for _, c := range w.colliders {
		if c.handler == nil {
			continue
		}
		for _, other := range w.colliders {
			if other == c || other.body == nil {
				continue
			}
			if !boxesOverlap(c.position(), c.HalfExtents, c.Rotation,
				other.position(), other.HalfExtents, other.Rotation) {
				continue
			}

			contact, ok := contactBetween(c.Bounds(), other.Bounds())
			if !ok {
				continue
			}

			c.handler.OnCollisionStay(CollisionEvent{
				Body:     other.body,
				Position: other.body.Position,
				Contacts: []Contact{contact},
			})
		}
	}
}

// contactBetween approximates a single contact point between two
// intersecting volumes: the center of the AABB overlap region, with the
// normal along the axis of least penetration pointing from a toward b
func contactBetween(a, b AABB) (Contact, bool) {
	overlap := AABB{
		Min: mgl32.Vec3{
			max(a.Min.X(), b.Min.X()),
			max(a.Min.Y(), b.Min.Y()),
			max(a.Min.Z(), b.Min.Z()),
		},
		Max: mgl32.Vec3{
			min(a.Max.X(), b.Max.X()),
			min(a.Max.Y(), b.Max.Y()),
			min(a.Max.Z(), b.Max.Z()),
		},
	}

	depth := overlap.Max.Sub(overlap.Min)
	if depth.X() < 0 || depth.Y() < 0 || depth.Z() < 0 {
		return Contact{}, false
	}

	axis := 0
	for i := 1; i < 3; i++ {
		if depth[i] < depth[axis] {
			axis = i
		}
	}

	var normal mgl32.Vec3
	if b.Center()[axis] >= a.Center()[axis] {
		normal[axis] = 1
	} else {
		normal[axis] = -1
	}

	return Contact{
		Position: overlap.Center(),
		Normal:   normal,
	}, true
}
