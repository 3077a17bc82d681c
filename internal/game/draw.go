package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/aryMello/maze-runner-vr-sub001/protocol"
)

var playerColors = []color.NRGBA{
	{250, 54, 54, 255},
	{237, 188, 30, 255},
	{10, 189, 56, 255},
	{52, 251, 246, 255},
	{50, 30, 204, 255},
	{203, 24, 221, 255},
}

var (
	colWall     = color.NRGBA{68, 68, 68, 255}
	colFloor    = color.NRGBA{24, 24, 30, 255}
	colTreasure = color.NRGBA{255, 200, 40, 255}
	colBG       = color.NRGBA{16, 16, 20, 255}
)

func colorFor(idx int) color.NRGBA {
	if idx < 0 {
		idx = 0
	}
	return playerColors[idx%len(playerColors)]
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)

	if g.connSt != stateConnected {
		msg := "Connecting to server..."
		if g.connSt == stateFailed {
			msg = "Unable to connect: " + g.connErrMsg
		}
		text.Draw(screen, msg, basicfont.Face7x13, pad, 48, color.White)
		return
	}

	switch g.scr {
	case screenLobby:
		g.drawLobby(screen)
	case screenPlaying:
		g.drawMaze(screen)
		g.drawHUD(screen)
	}
}

func (g *Game) drawLobby(screen *ebiten.Image) {
	y := 48
	text.Draw(screen, protocol.GameName, basicfont.Face7x13, pad, y, color.White)
	y += 2 * hudLineH

	if g.state.Room == "" {
		text.Draw(screen, "Room code:", basicfont.Face7x13, pad, y, color.White)
		ebitenutil.DrawRect(screen, float64(pad), float64(y+6), 200, 18, color.NRGBA{40, 40, 40, 255})
		text.Draw(screen, g.codeInput, basicfont.Face7x13, pad+4, y+20, color.White)
		y += 3 * hudLineH
	} else {
		text.Draw(screen, "Room: "+g.state.Room, basicfont.Face7x13, pad, y, color.White)
		y += 2 * hudLineH
		for _, p := range g.state.Players {
			mark := "[ ]"
			if p.Ready {
				mark = "[x]"
			}
			name := p.Name
			if p.ID == g.state.MyPlayerID {
				name += " (you)"
			}
			text.Draw(screen, mark+" "+name, basicfont.Face7x13, pad, y, colorFor(p.Color))
			y += hudLineH
		}
		y += hudLineH
	}
	text.Draw(screen, g.status, basicfont.Face7x13, pad, y, color.NRGBA{200, 200, 200, 255})
}

// drawMaze renders the grid top-down, centered on the screen. The local
// player is drawn from the mover's predicted position, everyone else from
// the roster the server keeps updated.
func (g *Game) drawMaze(screen *ebiten.Image) {
	maze := g.state.Maze
	if maze == nil {
		return
	}
	ox := (protocol.ScreenW - maze.Cols*cellPx) / 2
	oy := (protocol.ScreenH - maze.Rows*cellPx) / 2

	for row := 0; row < maze.Rows; row++ {
		for col := 0; col < maze.Cols; col++ {
			c := colFloor
			if maze.IsWall(col, row) {
				c = colWall
			}
			ebitenutil.DrawRect(screen,
				float64(ox+col*cellPx), float64(oy+row*cellPx),
				float64(cellPx-1), float64(cellPx-1), c)
		}
	}

	for _, t := range g.state.Treasures {
		if t.Collected {
			continue
		}
		x := float64(ox+t.Col*cellPx) + float64(cellPx)/2
		y := float64(oy+t.Row*cellPx) + float64(cellPx)/2
		ebitenutil.DrawRect(screen, x-5, y-5, 10, 10, colTreasure)
	}

	for _, p := range g.state.Players {
		px, pz := p.X, p.Z
		if p.ID == g.state.MyPlayerID {
			px, pz = g.mover.X, g.mover.Z
		}
		x := float64(ox) + px*float64(cellPx)
		y := float64(oy) + pz*float64(cellPx)
		ebitenutil.DrawRect(screen, x-7, y-7, 14, 14, colorFor(p.Color))
		if p.ID == g.state.MyPlayerID {
			ebitenutil.DrawRect(screen, x-9, y-9, 18, 2, color.White)
		}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	elapsed := g.state.Elapsed()
	line := fmt.Sprintf("Room %s   Treasures %d   %02d:%02d",
		g.state.Room, g.state.MyTreasureCount,
		int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	text.Draw(screen, line, basicfont.Face7x13, pad, 20, color.White)

	y := 40
	for _, p := range g.state.Players {
		text.Draw(screen, fmt.Sprintf("%s: %d", p.Name, p.Treasures),
			basicfont.Face7x13, pad, y, colorFor(p.Color))
		y += hudLineH
	}
}
