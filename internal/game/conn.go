package game

import (
	"github.com/aryMello/maze-runner-vr-sub001/internal/logging"
	"github.com/aryMello/maze-runner-vr-sub001/internal/netcfg"
)

func (g *Game) retryConnect() {
	if g.connectInFlight {
		return
	}
	g.connSt = stateConnecting
	g.connErrMsg = ""
	g.connectInFlight = true
	go g.connectAsync()
}

func (g *Game) connectAsync() {
	// Single in-flight dial guarded by connectInFlight
	n, err := NewNet(netcfg.ServerURL)
	// send result without blocking forever; drop oldest on overflow
	select {
	case g.connCh <- connResult{n: n, err: err}:
	default:
		select {
		case <-g.connCh:
		default:
		}
		g.connCh <- connResult{n: n, err: err}
	}
	g.connectInFlight = false
}

// safe send wrapper
func (g *Game) send(typ string, payload interface{}) {
	if g.net == nil || g.net.IsClosed() {
		logging.L.Debugw("send skipped, no socket", "type", typ)
		return
	}
	if err := g.net.Send(typ, payload); err != nil {
		logging.L.Warnw("send failed", "type", typ, "err", err)
	}
}

// resetSession tears the session back to the lobby: held keys, intent,
// camera and every store field are wiped so nothing stale carries over into
// the next room.
func (g *Game) resetSession() {
	g.input.Reset()
	g.mover.Reset()
	g.cam.Reset()
	g.state.Reset()

	g.scr = screenLobby
	g.codeInput = ""
	g.status = "Enter a room code and press Enter, or press Enter alone to create one."
}
