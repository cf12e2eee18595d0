package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"Conveyor3D/internal/behaviour"
	"Conveyor3D/internal/physics"
)

type countingComponent struct {
	behaviour.BaseComponent
	fixed   int
	updates int
}

func (c *countingComponent) FixedUpdate() { c.fixed++ }
func (c *countingComponent) Update()      { c.updates++ }

func TestAdvanceRunsFixedTicks(t *testing.T) {
	sim := NewSim()
	comp := &countingComponent{}
	obj := behaviour.NewGameObject("Counter")
	obj.AddComponent(comp)
	sim.Components.RegisterGameObject(obj)

	// 0.05s at a 0.02 step: two fixed ticks, one update pass
	sim.Advance(0.05)

	require.Equal(t, 2, comp.fixed)
	require.Equal(t, 1, comp.updates)

	// Leftover 0.01 carries into the next frame
	sim.Advance(0.01)
	require.Equal(t, 3, comp.fixed)
}

func TestAdvanceCapsCatchUp(t *testing.T) {
	sim := NewSim()
	comp := &countingComponent{}
	obj := behaviour.NewGameObject("Counter")
	obj.AddComponent(comp)
	sim.Components.RegisterGameObject(obj)

	sim.Advance(10)

	require.LessOrEqual(t, comp.fixed, 13, "a stall must not trigger unbounded catch-up")
}

func TestAdvanceStepsPhysics(t *testing.T) {
	sim := NewSim()
	body := physics.NewBody(mgl32.Vec3{0, 10, 0}, 1)
	sim.World.AddBody(body)

	sim.Advance(DefaultFixedStep)

	require.Less(t, float64(body.Velocity.Y()), 0.0, "gravity should act during fixed ticks")
}
