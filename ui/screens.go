package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"tron-game/game"
)

// MenuChoice is what the menu screens hand back to main
type MenuChoice struct {
	Mode       game.Mode
	BestOf     int
	Difficulty game.Difficulty
}

func drawCenterText(text string, y, fontSize int32, color rl.Color) {
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (int32(rl.GetScreenWidth())-width)/2, y, fontSize, color)
}

// ShowTitle blocks on the title screen until any key is pressed.
// Returns false if the window was closed instead.
func ShowTitle(assets *Assets) bool {
	blinkTimer := 0
	show := true

	for !rl.WindowShouldClose() {
		assets.UpdateMusic()

		blinkTimer++
		if blinkTimer%20 == 0 {
			show = !show
		}

		if rl.GetKeyPressed() != 0 {
			return true
		}

		screenW := int32(rl.GetScreenWidth())
		screenH := int32(rl.GetScreenHeight())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		if assets.HasTitle {
			// Scale the title image to the window
			rl.DrawTexturePro(assets.Title,
				rl.Rectangle{Width: float32(assets.Title.Width), Height: float32(assets.Title.Height)},
				rl.Rectangle{Width: float32(screenW), Height: float32(screenH)},
				rl.Vector2{}, 0, rl.White)
		} else {
			drawCenterText("TRON LIGHT CYCLES", screenH/2-40, 44, rl.SkyBlue)
		}

		if show {
			drawCenterText("PRESS ANY KEY", screenH-30, 20, rl.White)
		}

		rl.EndDrawing()
	}

	return false
}

// SelectMode shows the mode/difficulty menu and blocks until a choice is
// made. Returns false if the window was closed.
func SelectMode(assets *Assets) (MenuChoice, bool) {
	choice := MenuChoice{Mode: game.SinglePlayer, BestOf: 1, Difficulty: game.Normal}

	for !rl.WindowShouldClose() {
		assets.UpdateMusic()

		switch {
		case rl.IsKeyPressed(rl.KeyOne):
			choice.Mode, choice.BestOf = game.SinglePlayer, 1
			return choice, selectDifficulty(assets, &choice)
		case rl.IsKeyPressed(rl.KeyTwo):
			choice.Mode, choice.BestOf = game.SinglePlayer, 5
			return choice, selectDifficulty(assets, &choice)
		case rl.IsKeyPressed(rl.KeyThree):
			choice.Mode, choice.BestOf = game.TwoPlayer, 1
			return choice, true
		case rl.IsKeyPressed(rl.KeyFour):
			choice.Mode, choice.BestOf = game.TwoPlayer, 5
			return choice, true
		}

		screenH := int32(rl.GetScreenHeight())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		drawCenterText("SELECT MODE", 90, 44, rl.Yellow)
		drawCenterText("1) 1-time play vs AI", 170, 20, rl.White)
		drawCenterText("2) Best of 5 vs AI", 210, 20, rl.White)
		drawCenterText("3) 1-time play (2 Player)", 260, 20, rl.White)
		drawCenterText("4) Best of 5 (2 Player)", 300, 20, rl.White)
		drawCenterText("P1 = Arrow Keys | P2 = WASD (2P only)", 360, 16, rl.Yellow)
		drawCenterText("ESC to quit", screenH-30, 16, rl.Yellow)

		rl.EndDrawing()
	}

	return choice, false
}

// selectDifficulty asks for the AI difficulty (single player only).
func selectDifficulty(assets *Assets, choice *MenuChoice) bool {
	for !rl.WindowShouldClose() {
		assets.UpdateMusic()

		switch {
		case rl.IsKeyPressed(rl.KeyOne):
			choice.Difficulty = game.Easy
			return true
		case rl.IsKeyPressed(rl.KeyTwo):
			choice.Difficulty = game.Normal
			return true
		case rl.IsKeyPressed(rl.KeyThree):
			choice.Difficulty = game.Hard
			return true
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		drawCenterText("SELECT DIFFICULTY", 90, 44, rl.Yellow)
		drawCenterText("1) Easy", 170, 20, rl.White)
		drawCenterText("2) Normal", 210, 20, rl.White)
		drawCenterText("3) Hard", 250, 20, rl.White)

		rl.EndDrawing()
	}

	return false
}
