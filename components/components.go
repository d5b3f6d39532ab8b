// Package components defines the data components stored per agent entity.
package components

// DeathCause records what eliminated an agent.
type DeathCause uint8

const (
	DeathNone DeathCause = iota
	DeathPipe
	DeathBounds
)

// Bird holds the kinematic state of one agent's bird. X is fixed for the
// whole run; only the vertical axis is simulated.
type Bird struct {
	X     float64
	Y     float64
	Vel   float64 // velocity set at the last jump (negative = up)
	JumpY float64 // y at the last jump, used for tilt
	Ticks int     // ticks since the last jump
	Tilt  float64 // degrees, rendering only
}

// AgentState tracks evaluation bookkeeping for one agent.
type AgentState struct {
	GenomeKey int
	Alive     bool
	Fitness   float64
	Death     DeathCause
}
