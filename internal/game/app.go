package game

import (
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/aryMello/maze-runner-vr-sub001/internal/logging"
	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

var playerName = "Player"

func SetPlayerName(n string) {
	if n != "" {
		playerName = n
	}
}

// Game glues the core together for ebiten: one Update per frame drains the
// network inbox, feeds key events to the input mapper and advances the
// mover; Draw renders the store top-down.
type Game struct {
	state *State
	input *InputMapper
	mover *Mover
	cam   *Camera

	net             *Net
	connCh          chan connResult
	connSt          connState
	connErrMsg      string
	connRetryAt     time.Time
	connectInFlight bool

	scr       screen
	codeInput string
	status    string

	lastFrame time.Time
}

func New() *Game {
	g := &Game{
		state:  NewState(),
		cam:    NewCamera(),
		connCh: make(chan connResult, 4),
		connSt: stateIdle,
		scr:    screenLobby,
		status: "Enter a room code and press Enter, or press Enter alone to create one.",
	}
	g.mover = NewMover(g.state, g.cam, g)
	g.input = NewInputMapper(g.state, g.mover)
	g.retryConnect()
	return g
}

// SendPosition implements PositionSender over the websocket.
func (g *Game) SendPosition(x, z float64, ts int64) {
	g.send("PositionUpdate", protocol.PositionUpdate{X: x, Z: z, Ts: ts})
}

func (g *Game) Update() error {
	now := time.Now()
	var dt float64
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now
	if dt > 0.25 {
		dt = 0.25 // window was hidden or dragged; don't teleport
	}

	if g.connSt == stateFailed && now.After(g.connRetryAt) {
		g.connRetryAt = now.Add(2 * time.Second)
		g.retryConnect()
	}

	select {
	case res := <-g.connCh:
		if res.err != nil {
			g.connSt = stateFailed
			g.connErrMsg = res.err.Error()
			g.connRetryAt = now.Add(2 * time.Second)
			break
		}
		g.net = res.n
		g.connSt = stateConnected
		logging.L.Infow("connected")
	default:
	}

	if g.net != nil && !g.net.IsClosed() {
		for {
			select {
			case env, ok := <-g.net.inCh:
				if !ok {
					g.onDisconnect()
					goto afterMessages
				}
				g.handle(env)
			default:
				goto afterMessages
			}
		}
	}
afterMessages:

	switch g.scr {
	case screenLobby:
		g.updateLobby()
	case screenPlaying:
		g.updatePlaying()
	}

	g.cam.Update(dt)
	g.mover.Advance(dt, now)
	return nil
}

// onDisconnect drops back to the lobby; the retry loop dials again.
func (g *Game) onDisconnect() {
	g.net = nil
	g.connSt = stateFailed
	g.connErrMsg = "connection lost"
	g.connRetryAt = time.Now().Add(2 * time.Second)
	g.resetSession()
	g.status = "Connection lost, reconnecting..."
}

func (g *Game) updateLobby() {
	inRoom := g.state.Room != ""

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyEnter:
			if inRoom {
				break
			}
			code := strings.ToUpper(strings.TrimSpace(g.codeInput))
			if code == "" {
				g.send("CreateRoom", protocol.CreateRoom{Name: playerName})
				g.status = "Creating room..."
			} else {
				g.send("JoinRoom", protocol.JoinRoom{Room: code, Name: playerName})
				g.status = "Joining " + code + "..."
			}
		case ebiten.KeyBackspace:
			if !inRoom && len(g.codeInput) > 0 {
				g.codeInput = g.codeInput[:len(g.codeInput)-1]
			}
		case ebiten.KeyEscape:
			if inRoom {
				g.send("LeaveRoom", protocol.LeaveRoom{})
				g.resetSession()
			}
		case ebiten.KeyR:
			if inRoom {
				ready := g.state.ToggleReady()
				g.send("SetReady", protocol.SetReady{Ready: ready})
			} else {
				g.typeIntoCode(k)
			}
		case ebiten.KeyC:
			if inRoom {
				if err := clipboard.WriteAll(g.state.Room); err != nil {
					g.status = "Couldn't copy (install xclip/xsel on Linux)."
					logging.L.Warnw("clipboard copy failed", "err", err)
				} else {
					g.status = "Room code copied to clipboard."
				}
			} else {
				g.typeIntoCode(k)
			}
		default:
			if !inRoom {
				g.typeIntoCode(k)
			}
		}
	}
}

func (g *Game) typeIntoCode(k ebiten.Key) {
	s := k.String()
	if len(s) == 1 && len(g.codeInput) < 12 {
		g.codeInput += s
	}
}

func (g *Game) updatePlaying() {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyQ:
			g.cam.TurnBy(-math.Pi / 2)
		case ebiten.KeyE:
			g.cam.TurnBy(math.Pi / 2)
		case ebiten.KeyEscape:
			g.send("LeaveRoom", protocol.LeaveRoom{})
			g.resetSession()
		default:
			if id := ebitenKeyID(k); id != "" {
				g.input.KeyDown(id)
			}
		}
	}
	for _, k := range movementKeys {
		if inpututil.IsKeyJustReleased(k) {
			g.input.KeyUp(ebitenKeyID(k))
		}
	}
}

func (g *Game) Layout(w, h int) (int, int) { return protocol.ScreenW, protocol.ScreenH }
