package game

import (
	"encoding/json"

	"github.com/aryMello/maze-runner-vr-sub001/internal/logging"
	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

// handle applies one server envelope to the local state. The switch is the
// whole reconciliation policy: server data overwrites local state in arrival
// order, with one exception — the local player's continuous position, which
// the mover owns while the session runs.
func (g *Game) handle(env protocol.MsgEnvelope) {
	switch env.Type {
	case "RoomJoined":
		var m protocol.RoomJoined
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		g.state.SetRoom(m.Room)
		g.state.MyPlayerID = m.PlayerID
		g.state.UpdatePlayers(m.Players)
		// Adopt the server-assigned spawn; from here on the mover predicts.
		if p, ok := g.state.Players[m.PlayerID]; ok {
			g.mover.SetPosition(p.X, p.Z)
		}
		g.status = "In room " + m.Room + " — R to ready up, C to copy the code"
		logging.L.Infow("room joined", "room", m.Room, "player", m.PlayerID)

	case "RosterSnapshot":
		var m protocol.RosterSnapshot
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		g.state.UpdatePlayers(m.Players)
		// The snapshot carries a server-side position for us too; the local
		// prediction stays authoritative, so stamp it back over the entry.
		g.mover.mirrorToState()

	case "PlayerJoined":
		var m protocol.PlayerJoined
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		g.state.AddPlayer(m.Player)

	case "PlayerLeft":
		var m protocol.PlayerLeft
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		g.state.RemovePlayer(m.PlayerID)

	case "ReadyChanged":
		var m protocol.ReadyChanged
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		g.state.UpdatePlayerReady(m.PlayerID, m.Ready)
		if m.PlayerID == g.state.MyPlayerID {
			g.state.MyReady = m.Ready
		}

	case "GameStarted":
		var m protocol.GameStarted
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		g.state.StartGame(m)
		if p, ok := g.state.Players[g.state.MyPlayerID]; ok {
			g.mover.SetPosition(p.X, p.Z)
		}
		g.scr = screenPlaying
		logging.L.Infow("game started",
			"cols", m.Maze.Cols, "rows", m.Maze.Rows, "treasures", len(m.Treasures))

	case "TreasureCollected":
		var m protocol.TreasureCollected
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		// Same path whether it names us or someone else; duplicates no-op.
		g.state.CollectTreasure(m.TreasureID, m.PlayerID)

	case "PlayerMoved":
		var m protocol.PlayerMoved
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		if m.PlayerID == g.state.MyPlayerID {
			// Our own echo; the mover's prediction wins mid-session.
			return
		}
		if p, ok := g.state.Players[m.PlayerID]; ok {
			p.X, p.Z = m.X, m.Z
		}

	case "ErrorMsg":
		var m protocol.ErrorMsg
		if err := json.Unmarshal(env.Data, &m); err != nil {
			return
		}
		g.status = m.Message
		logging.L.Warnw("server error", "msg", m.Message)

	default:
		logging.L.Debugw("unhandled message", "type", env.Type)
	}
}
