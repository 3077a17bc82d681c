package game

import (
	"encoding/json"
	"testing"

	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

// newTestGame wires the core without a socket; handle() never touches the
// network directly.
func newTestGame() *Game {
	g := &Game{
		state:  NewState(),
		cam:    NewCamera(),
		connCh: make(chan connResult, 1),
	}
	g.mover = NewMover(g.state, g.cam, nil)
	g.input = NewInputMapper(g.state, g.mover)
	return g
}

func env(t *testing.T, typ string, v interface{}) protocol.MsgEnvelope {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", typ, err)
	}
	return protocol.MsgEnvelope{Type: typ, Data: b}
}

func joinAndStart(t *testing.T, g *Game) {
	t.Helper()
	g.handle(env(t, "RoomJoined", protocol.RoomJoined{
		Room:     "KJHG",
		PlayerID: "A",
		Players:  testStartPayload().Players,
	}))
	g.handle(env(t, "GameStarted", testStartPayload()))
}

func TestHandleRoomJoined(t *testing.T) {
	g := newTestGame()
	joinAndStart(t, g)

	if g.state.Room != "KJHG" || g.state.MyPlayerID != "A" {
		t.Fatalf("room/id not applied: %q %q", g.state.Room, g.state.MyPlayerID)
	}
	if g.mover.X != 1.5 || g.mover.Z != 1.5 {
		t.Fatalf("spawn not adopted: %v %v", g.mover.X, g.mover.Z)
	}
	if g.scr != screenPlaying || !g.state.GameStarted {
		t.Fatalf("GameStarted must switch to the playing screen")
	}
}

func TestHandlePlayerMovedLocalIgnored(t *testing.T) {
	g := newTestGame()
	joinAndStart(t, g)

	g.handle(env(t, "PlayerMoved", protocol.PlayerMoved{PlayerID: "A", X: 9, Z: 9}))

	if g.mover.X != 1.5 || g.mover.Z != 1.5 {
		t.Fatalf("local prediction overwritten: %v %v", g.mover.X, g.mover.Z)
	}
	if p := g.state.Players["A"]; p.X != 1.5 || p.Z != 1.5 {
		t.Fatalf("local roster entry overwritten: %v %v", p.X, p.Z)
	}
}

func TestHandlePlayerMovedOtherApplied(t *testing.T) {
	g := newTestGame()
	joinAndStart(t, g)

	g.handle(env(t, "PlayerMoved", protocol.PlayerMoved{PlayerID: "B", X: 2.25, Z: 3.75}))

	if p := g.state.Players["B"]; p.X != 2.25 || p.Z != 3.75 {
		t.Fatalf("other player's position not applied: %v %v", p.X, p.Z)
	}
}

func TestHandleRosterSnapshotKeepsLocalPosition(t *testing.T) {
	g := newTestGame()
	joinAndStart(t, g)
	g.mover.SetPosition(2.0, 2.0)

	snap := testStartPayload().Players // carries A at 1.5,1.5
	g.handle(env(t, "RosterSnapshot", protocol.RosterSnapshot{Players: snap}))

	if p := g.state.Players["A"]; p.X != 2.0 || p.Z != 2.0 {
		t.Fatalf("snapshot clobbered local position: %v %v", p.X, p.Z)
	}
	if p := g.state.Players["B"]; p.X != 3.5 {
		t.Fatalf("snapshot not applied for others: %v", p.X)
	}
}

func TestHandleTreasureCollectedDuplicate(t *testing.T) {
	g := newTestGame()
	joinAndStart(t, g)

	ev := env(t, "TreasureCollected", protocol.TreasureCollected{TreasureID: "t1", PlayerID: "A"})
	g.handle(ev)
	g.handle(ev)

	if g.state.MyTreasureCount != 1 || g.state.Players["A"].Treasures != 1 {
		t.Fatalf("duplicate event double counted: my=%d roster=%d",
			g.state.MyTreasureCount, g.state.Players["A"].Treasures)
	}
}

func TestHandleReadyChanged(t *testing.T) {
	g := newTestGame()
	g.handle(env(t, "RoomJoined", protocol.RoomJoined{
		Room: "KJHG", PlayerID: "A", Players: testStartPayload().Players,
	}))

	g.handle(env(t, "ReadyChanged", protocol.ReadyChanged{PlayerID: "B", Ready: true}))
	if !g.state.Players["B"].Ready || g.state.MyReady {
		t.Fatalf("ready flag misapplied")
	}

	g.handle(env(t, "ReadyChanged", protocol.ReadyChanged{PlayerID: "A", Ready: true}))
	if !g.state.MyReady {
		t.Fatalf("own ready confirmation not applied")
	}

	g.handle(env(t, "ReadyChanged", protocol.ReadyChanged{PlayerID: "ghost", Ready: true}))
	if len(g.state.Players) != 2 {
		t.Fatalf("ghost ready event fabricated a player")
	}
}

func TestHandlePlayerJoinLeave(t *testing.T) {
	g := newTestGame()
	joinAndStart(t, g)

	g.handle(env(t, "PlayerJoined", protocol.PlayerJoined{
		Player: protocol.Player{ID: "C", Name: "carol", Color: 2},
	}))
	if _, ok := g.state.Players["C"]; !ok {
		t.Fatalf("join not applied")
	}

	g.handle(env(t, "PlayerLeft", protocol.PlayerLeft{PlayerID: "C"}))
	if _, ok := g.state.Players["C"]; ok {
		t.Fatalf("leave not applied")
	}
}

func TestHandleUnknownTypeIgnored(t *testing.T) {
	g := newTestGame()
	g.handle(protocol.MsgEnvelope{Type: "Nonsense", Data: []byte(`{"a":1}`)})
	if g.state.Room != "" || len(g.state.Players) != 0 {
		t.Fatalf("unknown message mutated state")
	}
}

func TestResetSessionClearsEverything(t *testing.T) {
	g := newTestGame()
	joinAndStart(t, g)
	g.input.KeyDown("w")

	g.resetSession()

	if g.scr != screenLobby {
		t.Fatalf("must return to lobby")
	}
	if g.input.Active() != DirNone || g.mover.Intent() != DirNone {
		t.Fatalf("stale intent survived reset")
	}
	if g.state.Room != "" || g.state.GameStarted {
		t.Fatalf("stale session state survived reset")
	}
}
