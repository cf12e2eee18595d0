package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ForceMode selects how AddForce translates a force vector into a velocity
// change at the next World.Step
type ForceMode int

const (
	// ForceModeForce is a continuous, mass-scaled force: dv = f*dt/m
	ForceModeForce ForceMode = iota
	// ForceModeAcceleration is a continuous force ignoring mass: dv = f*dt
	ForceModeAcceleration
	// ForceModeImpulse is an instantaneous, mass-scaled momentum change: dv = f/m
	ForceModeImpulse
	// ForceModeVelocityChange is an instantaneous velocity delta: dv = f
	ForceModeVelocityChange
)

// Body is a dynamic rigid body in the simulation. Forces accumulate between
// steps and are folded into the velocity by World.Step.
type Body struct {
	Position  mgl32.Vec3
	Velocity  mgl32.Vec3
	Mass      float32
	Kinematic bool

	forceAccum   mgl32.Vec3
	accelAccum   mgl32.Vec3
	impulseAccum mgl32.Vec3
	deltaVAccum  mgl32.Vec3
}

func NewBody(position mgl32.Vec3, mass float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Position: position,
		Mass:     mass,
	}
}

// AddForce queues a force for the next step. Kinematic bodies ignore forces.
func (b *Body) AddForce(force mgl32.Vec3, mode ForceMode) {
	if b.Kinematic {
		return
	}

	switch mode {
	case ForceModeForce:
		b.forceAccum = b.forceAccum.Add(force)
	case ForceModeAcceleration:
		b.accelAccum = b.accelAccum.Add(force)
	case ForceModeImpulse:
		b.impulseAccum = b.impulseAccum.Add(force)
	case ForceModeVelocityChange:
		b.deltaVAccum = b.deltaVAccum.Add(force)
	}
}

// SetVelocity assigns the velocity directly. Kinematic bodies ignore it.
func (b *Body) SetVelocity(v mgl32.Vec3) {
	if b.Kinematic {
		return
	}
	b.Velocity = v
}

// integrate applies accumulated forces plus gravity and advances the position
func (b *Body) integrate(dt float32, gravity mgl32.Vec3) {
	invMass := 1.0 / b.Mass

	b.Velocity = b.Velocity.
		Add(b.forceAccum.Mul(dt * invMass)).
		Add(b.accelAccum.Mul(dt)).
		Add(b.impulseAccum.Mul(invMass)).
		Add(b.deltaVAccum).
		Add(gravity.Mul(dt))

	b.Position = b.Position.Add(b.Velocity.Mul(dt))

	b.forceAccum = mgl32.Vec3{}
	b.accelAccum = mgl32.Vec3{}
	b.impulseAccum = mgl32.Vec3{}
	b.deltaVAccum = mgl32.Vec3{}
}
