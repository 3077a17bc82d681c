package game

import (
	"math"
	"testing"
	"time"

	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

type fixedHeading float64

func (f fixedHeading) Heading() float64 { return float64(f) }

type countSender struct {
	sends        int
	lastX, lastZ float64
}

func (c *countSender) SendPosition(x, z float64, ts int64) {
	c.sends++
	c.lastX, c.lastZ = x, z
}

func mazeState() *State {
	s := NewState()
	s.StartGame(testStartPayload())
	return s
}

func TestAdvanceWithoutMaze(t *testing.T) {
	m := NewMover(NewState(), nil, nil)
	m.SetPosition(2.5, 2.5)
	m.SetIntent(DirEast)
	m.Advance(0.016, time.Now())
	if m.X != 2.5 || m.Z != 2.5 {
		t.Fatalf("moved without a maze: %v %v", m.X, m.Z)
	}
}

func TestAdvanceZeroDt(t *testing.T) {
	m := NewMover(mazeState(), nil, nil)
	m.SetPosition(2.5, 2.5)
	m.SetIntent(DirEast)
	m.Advance(0, time.Now())
	m.Advance(-0.1, time.Now())
	if m.X != 2.5 {
		t.Fatalf("non-positive dt must not move, got x=%v", m.X)
	}
}

func TestAdvanceNoIntent(t *testing.T) {
	snd := &countSender{}
	m := NewMover(mazeState(), nil, snd)
	m.SetPosition(2.5, 2.5)
	m.Advance(0.016, time.Now())
	if m.X != 2.5 || m.Z != 2.5 || snd.sends != 0 {
		t.Fatalf("idle frame moved or reported: x=%v z=%v sends=%d", m.X, m.Z, snd.sends)
	}
}

func TestMoveEastInOpenCell(t *testing.T) {
	m := NewMover(mazeState(), nil, nil)
	m.CameraRel = false
	m.SetPosition(2.0, 2.5)
	m.SetIntent(DirEast)
	m.Advance(0.1, time.Now())
	want := 2.0 + m.Speed*0.1
	if math.Abs(m.X-want) > 1e-9 || m.Z != 2.5 {
		t.Fatalf("want x=%v z=2.5, got x=%v z=%v", want, m.X, m.Z)
	}
}

func TestWallCancelsForwardKeepsLateral(t *testing.T) {
	// Heading rotated off north so the candidate displacement has both a
	// forward (-Z, into the wall at row 0) and a lateral (+X) component.
	m := NewMover(mazeState(), fixedHeading(0.5), nil)
	m.SetPosition(2.5, 1.5)
	m.SetIntent(DirNorth)
	m.Advance(0.016, time.Now())

	if m.Z != 1.5 {
		t.Fatalf("forward component not cancelled: z=%v", m.Z)
	}
	if m.X <= 2.5 {
		t.Fatalf("lateral component lost: x=%v", m.X)
	}
}

func TestBothAxesBlocked(t *testing.T) {
	// Top-left interior corner: walls at col 0 and row 0.
	m := NewMover(mazeState(), fixedHeading(-0.5), nil)
	m.SetPosition(1.2, 1.2)
	m.SetIntent(DirNorth)
	m.Advance(0.016, time.Now())

	if m.X != 1.2 || m.Z != 1.2 {
		t.Fatalf("corner must block both axes, got x=%v z=%v", m.X, m.Z)
	}
}

func TestReportThrottling(t *testing.T) {
	snd := &countSender{}
	m := NewMover(mazeState(), nil, snd)
	m.CameraRel = false
	m.SetPosition(2.0, 2.5)
	m.SetIntent(DirEast)

	t0 := time.Now()
	m.Advance(0.016, t0) // first report
	m.Advance(0.016, t0.Add(50*time.Millisecond))
	if snd.sends != 1 {
		t.Fatalf("report inside the interval: sends=%d", snd.sends)
	}
	m.Advance(0.016, t0.Add(150*time.Millisecond))
	if snd.sends != 2 {
		t.Fatalf("want second report after interval, sends=%d", snd.sends)
	}
	if snd.lastX != m.X {
		t.Fatalf("report must carry the last computed position: %v != %v", snd.lastX, m.X)
	}
}

func TestAdvanceMirrorsRosterEntry(t *testing.T) {
	s := mazeState()
	s.MyPlayerID = "A"
	m := NewMover(s, nil, nil)
	m.CameraRel = false
	m.SetPosition(2.0, 2.5)
	m.SetIntent(DirEast)
	m.Advance(0.1, time.Now())

	p := s.Players["A"]
	if p.X != m.X || p.Z != m.Z {
		t.Fatalf("roster entry out of step: (%v,%v) vs (%v,%v)", p.X, p.Z, m.X, m.Z)
	}
}

func TestOutOfBoundsIsWall(t *testing.T) {
	maze := protocol.Maze{Cols: 3, Rows: 3, Cells: []string{"...", "...", "..."}}
	if !maze.IsWall(-1, 0) || !maze.IsWall(0, -1) || !maze.IsWall(3, 0) || !maze.IsWall(0, 3) {
		t.Fatalf("outside the grid must count as wall")
	}
	if maze.IsWall(1, 1) {
		t.Fatalf("open cell reported as wall")
	}
}
