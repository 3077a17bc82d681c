package game

import (
	"time"

	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

// State is the local mirror of one session: roster, maze, treasures, room
// and readiness. One instance per session, passed explicitly to the input
// mapper, the mover and the renderer. Server events are the only writers
// besides the local player's predicted position.
type State struct {
	Room       string
	MyPlayerID string

	Players   map[string]*protocol.Player
	Maze      *protocol.Maze
	Treasures map[string]*protocol.Treasure

	GameStarted bool
	StartedAt   time.Time

	MyReady         bool
	MyTreasureCount int
}

func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// SetRoom records the room code. The server is authoritative for room
// identity, so a different code simply overwrites.
func (s *State) SetRoom(code string) {
	s.Room = code
}

// UpdatePlayers replaces the whole roster from a server snapshot.
func (s *State) UpdatePlayers(roster []protocol.Player) {
	s.Players = make(map[string]*protocol.Player, len(roster))
	for i := range roster {
		p := roster[i]
		s.Players[p.ID] = &p
	}
}

func (s *State) AddPlayer(p protocol.Player) {
	s.Players[p.ID] = &p
}

// RemovePlayer is a no-op for unknown ids (stale leave events happen).
func (s *State) RemovePlayer(id string) {
	delete(s.Players, id)
}

// UpdatePlayerReady flips readiness for an existing player only; it never
// fabricates a roster entry from a stale event.
func (s *State) UpdatePlayerReady(id string, ready bool) {
	if p, ok := s.Players[id]; ok {
		p.Ready = ready
	}
}

// StartGame applies the whole start payload: maze, treasures and roster are
// replaced wholesale and the started flag flips. A second call re-applies
// the new payload (last write wins) rather than being rejected.
func (s *State) StartGame(gs protocol.GameStarted) {
	maze := gs.Maze
	s.Maze = &maze

	s.Treasures = make(map[string]*protocol.Treasure, len(gs.Treasures))
	for i := range gs.Treasures {
		t := gs.Treasures[i]
		s.Treasures[t.ID] = &t
	}

	s.UpdatePlayers(gs.Players)

	s.GameStarted = true
	if gs.StartedAt > 0 {
		s.StartedAt = time.UnixMilli(gs.StartedAt)
	} else {
		s.StartedAt = time.Now()
	}
}

// CollectTreasure marks a treasure as taken by playerID and bumps that
// player's tally. Unknown or already-collected treasures are ignored, which
// makes duplicate collection events from the server harmless and keeps the
// collected flag monotonic.
func (s *State) CollectTreasure(treasureID, playerID string) {
	t, ok := s.Treasures[treasureID]
	if !ok || t.Collected {
		return
	}
	t.Collected = true
	t.CollectedBy = playerID

	if p, ok := s.Players[playerID]; ok {
		p.Treasures++
	}
	if playerID == s.MyPlayerID {
		s.MyTreasureCount++
	}
}

// ToggleReady flips the local readiness flag and returns the new value.
// Other players' readiness only changes via ReadyChanged events.
func (s *State) ToggleReady() bool {
	s.MyReady = !s.MyReady
	return s.MyReady
}

// Elapsed is the time since the game started, zero before that.
func (s *State) Elapsed() time.Duration {
	if !s.GameStarted || s.StartedAt.IsZero() {
		return 0
	}
	return time.Since(s.StartedAt)
}

// Reset returns every field to its initial value. Used when leaving a room
// or on hard reconnect so nothing stale leaks into the next session.
func (s *State) Reset() {
	s.Room = ""
	s.MyPlayerID = ""
	s.Players = make(map[string]*protocol.Player)
	s.Maze = nil
	s.Treasures = make(map[string]*protocol.Treasure)
	s.GameStarted = false
	s.StartedAt = time.Time{}
	s.MyReady = false
	s.MyTreasureCount = 0
}
