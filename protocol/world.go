package protocol

// Player is the wire shape of one roster entry. X/Z are continuous
// coordinates in the maze plane (one grid cell = one unit).
type Player struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Z         float64 `json:"z"`
	Ready     bool    `json:"ready"`
	Treasures int     `json:"treasures"`
	Color     int     `json:"color"`
}

// Maze cells, row-major. '#' is a wall, '.' is open floor.
const (
	CellWall = '#'
	CellOpen = '.'
)

// Maze is fixed for the session once GameStarted delivers it.
type Maze struct {
	Cols  int      `json:"cols"`
	Rows  int      `json:"rows"`
	Cells []string `json:"cells"`
}

// IsWall reports whether the cell blocks movement. Anything outside the
// grid counts as a wall so players cannot leave the maze.
func (m *Maze) IsWall(col, row int) bool {
	if col < 0 || col >= m.Cols || row < 0 || row >= m.Rows {
		return true
	}
	if row >= len(m.Cells) || col >= len(m.Cells[row]) {
		return true
	}
	return m.Cells[row][col] == CellWall
}

type Treasure struct {
	ID          string `json:"id"`
	Col         int    `json:"col"`
	Row         int    `json:"row"`
	Collected   bool   `json:"collected"`
	CollectedBy string `json:"collectedBy,omitempty"`
}
