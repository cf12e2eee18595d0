package conveyor

import (
	"Conveyor3D/internal/behaviour"
	"Conveyor3D/internal/logger"
	"Conveyor3D/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	// adhesionAccel is the constant downward acceleration applied alongside
	// every velocity correction, keeping fast or bouncing bodies pressed
	// against the surface
	adhesionAccel = 3.0

	// onTopThreshold is the minimum dot product between a contact normal and
	// the belt's up axis for the contact to count as a top-face contact
	// (roughly a 60 degree cone around vertical)
	onTopThreshold = 0.5
)

// Belt drives every dynamic body resting on its surface toward the belt's
// target horizontal velocity. Bodies inside the edge zone at the exit end are
// released instead, optionally with an outward push.
//
// Two detection paths feed the same policies: FixedUpdate polls an
// oriented-box overlap query, and OnCollisionStay handles continuing-contact
// events for pairs the query path misses. Both recompute the surface frame
// fresh each invocation.
type Belt struct {
	behaviour.BaseComponent

	// Speed is the surface speed along the forward axis
	Speed float32
	// DirectionMultiplier flips the direction of travel: +1 forward, -1 back
	DirectionMultiplier float32
	// EdgeDetectionDistance is the length of the release zone at the exit
	// end. Zero disables edge handling entirely.
	EdgeDetectionDistance float32
	// PushOffEdge enables the one-shot ejection impulse inside the edge zone
	PushOffEdge bool
	// EdgePushForce is the magnitude of the ejection impulse
	EdgePushForce float32

	world    *physics.World
	collider *physics.Collider
}

func NewBelt(world *physics.World) *Belt {
	return &Belt{
		Speed:               2,
		DirectionMultiplier: 1,
		world:               world,
	}
}

// Collider returns the belt's collision volume, available after Start
func (b *Belt) Collider() *physics.Collider {
	return b.collider
}

// Start ensures the belt has a collision volume sized to its transform and
// registers it with the world. Runs once, outside the per-step hot path.
func (b *Belt) Start() {
	if b.collider != nil {
		return
	}

	t := b.GetGameObject().Transform
	b.collider = physics.NewBoxCollider(t.Position, t.Scale.Mul(0.5))
	b.collider.Rotation = t.Rotation
	b.collider.SetHandler(b)
	b.world.AddCollider(b.collider)

	logger.Log.Info("Conveyor collider created",
		zap.String("object", b.GetGameObject().Name),
		zap.Float32("length", t.Scale.Z()))
}

func (b *Belt) OnDestroy() {
	if b.collider != nil {
		b.world.RemoveCollider(b.collider)
		b.collider = nil
	}
}

// FixedUpdate is the overlap-query driver. It runs once per fixed step:
// recompute the frame and target velocity, query everything overlapping the
// belt volume, classify each body and dispatch to edge release or correction.
func (b *Belt) FixedUpdate() {
	t := b.GetGameObject().Transform
	f := FrameOf(t)
	target := f.Forward.Mul(b.Speed * b.DirectionMultiplier)

	// The collision volume tracks the live transform
	if b.collider != nil {
		b.collider.Center = f.Position
		b.collider.Rotation = f.Rotation
		b.collider.HalfExtents = t.Scale.Mul(0.5)
	}

	for _, c := range b.world.OverlapBox(f.Position, t.Scale.Mul(0.5), f.Rotation) {
		body := c.Body()
		if body == nil || body.Kinematic {
			continue
		}
		if !aboveSurface(c.Bounds(), f.Position) {
			continue
		}
		if b.edgeEnabled() && b.nearEnd(f, body.Position) {
			b.releaseAtEdge(f, body)
			continue
		}
		b.correct(target, body)
	}
}

// OnCollisionStay is the fallback contact driver, fed by the physics engine's
// continuing-contact events. It applies the same edge policy, then assigns
// the target velocity directly (vertical component carried over) on the first
// top-face contact.
func (b *Belt) OnCollisionStay(event physics.CollisionEvent) {
	body := event.Body
	if body == nil || body.Kinematic {
		return
	}

	f := FrameOf(b.GetGameObject().Transform)

	if b.edgeEnabled() && b.nearEnd(f, event.Position) {
		b.releaseAtEdge(f, body)
		return
	}

	target := f.Forward.Mul(b.Speed * b.DirectionMultiplier)
	target[1] = body.Velocity.Y()

	for _, contact := range event.Contacts {
		if contact.Normal.Dot(f.Up) > onTopThreshold {
			body.SetVelocity(target)
			body.AddForce(mgl32.Vec3{0, -adhesionAccel, 0}, physics.ForceModeAcceleration)
			break
		}
	}
}

// correct drives the body's horizontal velocity to the target in one step.
// The delta's vertical component is zeroed so gravity and other forces own
// the vertical motion; the adhesion force below is a plain acceleration the
// engine integrates like gravity.
func (b *Belt) correct(target mgl32.Vec3, body *physics.Body) {
	delta := target.Sub(body.Velocity)
	delta[1] = 0
	body.AddForce(delta, physics.ForceModeVelocityChange)
	body.AddForce(mgl32.Vec3{0, -adhesionAccel, 0}, physics.ForceModeAcceleration)
}

// releaseAtEdge suspends correction for a body in the edge zone. With push
// enabled it applies one ejection impulse along the direction of travel;
// otherwise the body keeps its momentum and leaves on its own.
func (b *Belt) releaseAtEdge(f SurfaceFrame, body *physics.Body) {
	if !b.PushOffEdge {
		return
	}
	travel := f.Forward.Mul(b.DirectionMultiplier)
	body.AddForce(travel.Mul(b.EdgePushForce), physics.ForceModeImpulse)
}

func (b *Belt) edgeEnabled() bool {
	return b.EdgeDetectionDistance > 0
}

// nearEnd reports whether a world position lies in the edge zone at the exit
// end. Only the end in the direction of travel counts; a body entering from
// the far side is never near-end no matter how close to that edge it is.
func (b *Belt) nearEnd(f SurfaceFrame, world mgl32.Vec3) bool {
	along := f.Longitudinal(world) * b.DirectionMultiplier
	return along > f.Length/2-b.EdgeDetectionDistance
}

// aboveSurface is the coarse belt-supported test: the lowest point of the
// body's bounds must sit at or above the surface plane. There is deliberately
// no horizontal containment check, so a body hovering above the belt
// footprint passes too; the overlap query bounds how far off that can be.
func aboveSurface(bounds physics.AABB, beltPosition mgl32.Vec3) bool {
	return bounds.Min.Y() >= beltPosition.Y()
}
