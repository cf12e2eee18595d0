package engine

import (
	"time"

	"Conveyor3D/internal/behaviour"
	"Conveyor3D/internal/logger"
	"Conveyor3D/internal/physics"

	"go.uber.org/zap"
)

// DefaultFixedStep is the physics tick length, 50 Hz
const DefaultFixedStep = float32(0.02)

// Sim hosts the fixed-timestep loop: per fixed tick it runs FixedUpdate on
// all components and then steps the physics world, so forces queued by
// components land in the step that immediately follows. Update runs once per
// frame for the visualization observers.
type Sim struct {
	World      *physics.World
	Components *behaviour.ComponentManager
	FixedStep  float32

	accumulator float32
}

func NewSim() *Sim {
	logger.Init()
	logger.Log.Info("Conveyor3D initializing...")

	return &Sim{
		World:      physics.NewWorld(),
		Components: behaviour.NewComponentManager(),
		FixedStep:  DefaultFixedStep,
	}
}

// Advance consumes one frame's worth of wall time: zero or more fixed ticks
// followed by one Update pass
func (s *Sim) Advance(frameDt float32) {
	// Cap the debt so a long stall doesn't spiral into a catch-up storm
	if frameDt > 0.25 {
		frameDt = 0.25
	}

	s.accumulator += frameDt
	for s.accumulator >= s.FixedStep {
		s.Components.FixedUpdateAll()
		s.World.Step(s.FixedStep)
		s.accumulator -= s.FixedStep
	}

	s.Components.UpdateAll()
}

// Run drives Advance from wall time for the given duration. Used by the
// demos; a host with its own frame loop calls Advance directly.
func (s *Sim) Run(duration time.Duration) {
	logger.Log.Info("Simulation running",
		zap.Duration("duration", duration),
		zap.Float32("fixedStep", s.FixedStep))

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	deadline := time.Now().Add(duration)
	last := time.Now()
	for now := range ticker.C {
		s.Advance(float32(now.Sub(last).Seconds()))
		last = now
		if now.After(deadline) {
			return
		}
	}
}
