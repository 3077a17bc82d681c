package game

// Direction is the single committed movement intent.
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirWest
	DirEast
)

func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	case DirEast:
		return "east"
	default:
		return "none"
	}
}

// keyToDir maps abstract key ids to logical directions. The ebiten layer
// owns the ebiten.Key -> key-id translation; this table only knows the
// bindings: both letter cases plus the arrow key per direction.
var keyToDir = map[string]Direction{
	"w": DirNorth, "W": DirNorth, "ArrowUp": DirNorth,
	"s": DirSouth, "S": DirSouth, "ArrowDown": DirSouth,
	"a": DirWest, "A": DirWest, "ArrowLeft": DirWest,
	"d": DirEast, "D": DirEast, "ArrowRight": DirEast,
}

// intentPriority resolves simultaneous keys to exactly one direction.
// No diagonals: that is a design choice, not a missing feature.
var intentPriority = [...]Direction{DirNorth, DirSouth, DirWest, DirEast}

// IntentSink receives intent transitions. Implemented by *Mover.
type IntentSink interface {
	SetIntent(Direction)
}

// InputMapper turns raw press/release events into at most one active
// movement intent. Only actual transitions reach the sink; holding a key
// or re-pressing a held one never produces duplicate notifications.
type InputMapper struct {
	state  *State
	sink   IntentSink
	held   map[Direction]bool
	active Direction
}

func NewInputMapper(state *State, sink IntentSink) *InputMapper {
	return &InputMapper{
		state: state,
		sink:  sink,
		held:  make(map[Direction]bool),
	}
}

// Active returns the current intent.
func (im *InputMapper) Active() Direction { return im.active }

// KeyDown handles a raw press. Unknown keys and input before the game has
// started are ignored outright.
func (im *InputMapper) KeyDown(key string) {
	if im.state != nil && !im.state.GameStarted {
		return
	}
	d, ok := keyToDir[key]
	if !ok || im.held[d] {
		return
	}
	im.held[d] = true
	im.recompute()
}

// KeyUp handles a raw release. Releasing a direction that was never held
// (e.g. the key went down before the game started) is a no-op.
func (im *InputMapper) KeyUp(key string) {
	if im.state != nil && !im.state.GameStarted {
		return
	}
	d, ok := keyToDir[key]
	if !ok || !im.held[d] {
		return
	}
	delete(im.held, d)
	im.recompute()
}

// recompute derives the intent from the held set. Recomputing from the
// same held set twice yields the same result, so ticks and key events may
// interleave freely.
func (im *InputMapper) recompute() {
	next := DirNone
	for _, d := range intentPriority {
		if im.held[d] {
			next = d
			break
		}
	}
	if next == im.active {
		return
	}
	im.active = next
	if im.sink != nil {
		im.sink.SetIntent(next)
	}
}

// Reset clears all held directions and stops movement. Used on disconnect
// and when leaving a room so no stale intent survives into the next session.
func (im *InputMapper) Reset() {
	im.held = make(map[Direction]bool)
	if im.active != DirNone {
		im.active = DirNone
		if im.sink != nil {
			im.sink.SetIntent(DirNone)
		}
	}
}
