package game

import "github.com/hajimehoshi/ebiten/v2"

// ---- Core enums / layout constants ----

type connState int

const (
	stateIdle connState = iota
	stateConnecting
	stateConnected
	stateFailed
)

type screen int

const (
	screenLobby screen = iota
	screenPlaying
)

const (
	pad      = 8
	cellPx   = 36 // pixels per maze cell in the top-down view
	hudLineH = 16
)

// Used by async connection
type connResult struct {
	n   *Net
	err error
}

// ebitenKeyID translates the keys we care about into the abstract key ids
// the input mapper's binding table speaks. Everything else maps to "".
func ebitenKeyID(k ebiten.Key) string {
	switch k {
	case ebiten.KeyW:
		return "w"
	case ebiten.KeyS:
		return "s"
	case ebiten.KeyA:
		return "a"
	case ebiten.KeyD:
		return "d"
	case ebiten.KeyArrowUp:
		return "ArrowUp"
	case ebiten.KeyArrowDown:
		return "ArrowDown"
	case ebiten.KeyArrowLeft:
		return "ArrowLeft"
	case ebiten.KeyArrowRight:
		return "ArrowRight"
	default:
		return ""
	}
}

// movementKeys is the set polled for releases each frame.
var movementKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
}
