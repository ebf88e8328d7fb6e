package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tron-game/game"
	"tron-game/game/entity"
	"tron-game/game/types"
)

const borderPadding = 10 // Padding around game area

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(g *game.Game, assets *Assets) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := int32(r.screenHeight / 30)

	// Calculate available space for the grid after border padding
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2)

	// Calculate cell size based on available space and grid dimensions
	cellW := availableWidth / int32(g.Grid().Width)
	cellH := availableHeight / int32(g.Grid().Height)
	r.cellSize = min(cellW, cellH)

	r.totalGridWidth = r.cellSize * int32(g.Grid().Width)
	r.totalGridHeight = r.cellSize * int32(g.Grid().Height)

	// Center the grid
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	// Grid background and lines
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	for x := 0; x < g.Grid().Width; x++ {
		for y := 0; y < g.Grid().Height; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rl.Color{R: 40, G: 40, B: 40, A: 255})
		}
	}

	r.drawCycle(g.Player1(), assets.Blue, assets.HasBlue)
	r.drawCycle(g.Player2(), assets.Red, assets.HasRed)

	state := g.State()

	// Score HUD only in best-of play
	if g.Config().BestOf > 1 {
		hud := fmt.Sprintf("BEST OF %d  |  %d - %d %s",
			g.Config().BestOf, state.ScoreP1, state.ScoreP2, g.Player2().Name)
		rl.DrawText(hud, 10, 10, fontSize, rl.White)
	}

	if state.RoundOver {
		r.drawRoundOverlay(g, state, fontSize)
	}

	rl.EndDrawing()
}

// drawCycle paints the trail as colored blocks and the head as a rotated
// sprite, falling back to a brighter block when the sprite isn't loaded.
func (r *Renderer) drawCycle(c *entity.Cycle, sprite rl.Texture2D, hasSprite bool) {
	color := rl.Color{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: 255}

	for _, p := range c.Trail[:len(c.Trail)-1] {
		rl.DrawRectangle(
			r.offsetX+int32(p.X)*r.cellSize,
			r.offsetY+int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)
	}

	head := c.Head()
	headX := r.offsetX + int32(head.X)*r.cellSize
	headY := r.offsetY + int32(head.Y)*r.cellSize

	if hasSprite {
		// Base sprite faces right; rotate clockwise to the heading
		var angle float32
		switch c.Direction {
		case types.Down:
			angle = 90
		case types.Left:
			angle = 180
		case types.Up:
			angle = 270
		}
		half := float32(r.cellSize) / 2
		rl.DrawTexturePro(sprite,
			rl.Rectangle{Width: float32(sprite.Width), Height: float32(sprite.Height)},
			rl.Rectangle{
				X:      float32(headX) + half,
				Y:      float32(headY) + half,
				Width:  float32(r.cellSize),
				Height: float32(r.cellSize),
			},
			rl.Vector2{X: half, Y: half}, angle, rl.White)
	} else {
		headColor := rl.Color{
			R: brighten(c.Color.R),
			G: brighten(c.Color.G),
			B: brighten(c.Color.B),
			A: 255,
		}
		rl.DrawRectangle(headX, headY, r.cellSize, r.cellSize, headColor)
	}
}

func brighten(v uint8) uint8 {
	scaled := float32(v) * 1.3
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func (r *Renderer) drawRoundOverlay(g *game.Game, state game.RoundState, fontSize int32) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Color{A: 170})

	bigFont := fontSize * 2
	centerY := r.screenHeight / 2

	if state.MatchOver {
		final := fmt.Sprintf("%s WINS THE MATCH!", winnerName(g, state))
		drawCenterText("MATCH OVER", centerY-40-bigFont/2, bigFont, rl.White)
		drawCenterText(final, centerY+10-bigFont/2, bigFont, rl.Yellow)
		drawCenterText("Press R to play again | ESC to quit", centerY+70, fontSize, rl.White)
	} else {
		drawCenterText("ROUND OVER", centerY-40-bigFont/2, bigFont, rl.White)
		drawCenterText(state.Outcome, centerY+10-bigFont/2, bigFont, rl.Yellow)
		drawCenterText("Press R for next round | ESC to quit", centerY+70, fontSize, rl.White)
	}
}

func winnerName(g *game.Game, state game.RoundState) string {
	if state.ScoreP1 > state.ScoreP2 {
		return strings.ToUpper(g.Player1().Name)
	}
	return strings.ToUpper(g.Player2().Name)
}
