package game

import (
	"math"
	"time"

	"github.com/aryMello/maze-runner-vr-sub001/internal/logging"
	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

// HeadingSource supplies the current camera yaw in radians. The mover only
// reads it; camera animation stays in the render layer.
type HeadingSource interface {
	Heading() float64
}

// PositionSender accepts outbound position reports. Implemented over the
// websocket by the app; nil in tests that only care about displacement.
type PositionSender interface {
	SendPosition(x, z float64, ts int64)
}

// Mover owns the local player's continuous position and advances it every
// frame according to the active intent. Other players' positions come from
// the server and never pass through here.
type Mover struct {
	state *State

	X, Z float64

	intent Direction

	Speed     float64 // cells per second
	Probe     float64 // collision lookahead in the direction of travel
	Radius    float64 // player collision radius
	CameraRel bool    // "north" means camera-forward when set

	heading HeadingSource
	sender  PositionSender

	reportEvery time.Duration
	lastReport  time.Time

	warnedNoMaze bool
}

func NewMover(state *State, heading HeadingSource, sender PositionSender) *Mover {
	return &Mover{
		state:       state,
		Speed:       protocol.MoveSpeed,
		Probe:       protocol.ProbeDistance,
		Radius:      protocol.CollisionRadius,
		CameraRel:   true,
		heading:     heading,
		sender:      sender,
		reportEvery: protocol.ReportIntervalMs * time.Millisecond,
	}
}

// SetIntent implements IntentSink.
func (m *Mover) SetIntent(d Direction) { m.intent = d }

// Intent returns the currently committed direction.
func (m *Mover) Intent() Direction { return m.intent }

// SetPosition teleports the mover, used when the server assigns a spawn.
func (m *Mover) SetPosition(x, z float64) {
	m.X, m.Z = x, z
	m.mirrorToState()
}

// intentVector is the unit vector for d before any camera rotation.
// North is -Z, matching the maze plane used on the wire.
func intentVector(d Direction) (float64, float64) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirWest:
		return -1, 0
	case DirEast:
		return 1, 0
	default:
		return 0, 0
	}
}

func cellOf(v float64) int { return int(math.Floor(v)) }

// Advance moves the player by one frame's worth of travel. dt is elapsed
// seconds; non-positive dt and frames without an intent do nothing.
func (m *Mover) Advance(dt float64, now time.Time) {
	if dt <= 0 || m.intent == DirNone {
		return
	}
	maze := m.state.Maze
	if maze == nil {
		if !m.warnedNoMaze {
			logging.L.Warnw("mover: maze not loaded, skipping ticks")
			m.warnedNoMaze = true
		}
		return
	}
	m.warnedNoMaze = false

	vx, vz := intentVector(m.intent)
	if m.CameraRel {
		if m.heading == nil {
			logging.L.Debugw("mover: no heading source, skipping tick")
			return
		}
		h := m.heading.Heading()
		sin, cos := math.Sin(h), math.Cos(h)
		vx, vz = vx*cos-vz*sin, vx*sin+vz*cos
	}
	dx := vx * m.Speed * dt
	dz := vz * m.Speed * dt

	// Per-axis probe: a blocked axis is cancelled, the other one keeps its
	// motion, which is what makes walls slide instead of sticking.
	if dx != 0 {
		look := m.X + dx + math.Copysign(m.Probe+m.Radius, dx)
		if maze.IsWall(cellOf(look), cellOf(m.Z)) {
			dx = 0
		}
	}
	if dz != 0 {
		look := m.Z + dz + math.Copysign(m.Probe+m.Radius, dz)
		if maze.IsWall(cellOf(m.X+dx), cellOf(look)) {
			dz = 0
		}
	}
	m.X += dx
	m.Z += dz
	m.mirrorToState()

	// Throttled report: interval is wall-clock so it survives variable
	// frame rates; the last computed position is always the one that goes.
	if m.sender != nil && now.Sub(m.lastReport) >= m.reportEvery {
		m.sender.SendPosition(m.X, m.Z, now.UnixMilli())
		m.lastReport = now
	}
}

// mirrorToState keeps the roster entry for the local player in step with
// the predicted position so the renderer and scoreboard read one store.
func (m *Mover) mirrorToState() {
	if p, ok := m.state.Players[m.state.MyPlayerID]; ok {
		p.X, p.Z = m.X, m.Z
	}
}

// Reset drops the intent and the report clock; paired with State.Reset and
// InputMapper.Reset when a session ends.
func (m *Mover) Reset() {
	m.intent = DirNone
	m.lastReport = time.Time{}
	m.warnedNoMaze = false
}
