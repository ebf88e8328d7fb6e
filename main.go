package main

import (
	"flag"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tron-game/game"
	"tron-game/game/types"
	"tron-game/ui"
)

const cellSize = 20

func main() {
	seed := flag.Uint64("seed", 0, "AI random seed (0 = time-based)")
	flag.Parse()

	width := int32(types.DefaultGridWidth * cellSize)
	height := int32(types.DefaultGridHeight * cellSize)

	rl.InitWindow(width, height, "TRON Light Cycles")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()

	assets := ui.LoadAssets()
	defer assets.Unload()

	if !ui.ShowTitle(assets) {
		return
	}
	choice, ok := ui.SelectMode(assets)
	if !ok {
		return
	}

	cfg := game.DefaultConfig()
	cfg.Mode = choice.Mode
	cfg.BestOf = choice.BestOf
	cfg.Difficulty = choice.Difficulty
	cfg.Seed = *seed

	g := game.NewGame(cfg)
	renderer := ui.NewRenderer()

	tickInterval := time.Second / time.Duration(cfg.Difficulty.Settings().TickRate)
	lastUpdate := time.Now()

	// Latest direction key pressed since the previous tick, zero when none
	var pendingP1, pendingP2 types.Point

	for !rl.WindowShouldClose() {
		assets.UpdateMusic()

		state := g.State()

		if state.RoundOver {
			if rl.IsKeyPressed(rl.KeyR) {
				g.ResetRound()
				pendingP1, pendingP2 = types.Point{}, types.Point{}
				lastUpdate = time.Now()
			}
		} else {
			// Player 1 = arrow keys
			switch {
			case rl.IsKeyPressed(rl.KeyUp):
				pendingP1 = types.Up
			case rl.IsKeyPressed(rl.KeyDown):
				pendingP1 = types.Down
			case rl.IsKeyPressed(rl.KeyLeft):
				pendingP1 = types.Left
			case rl.IsKeyPressed(rl.KeyRight):
				pendingP1 = types.Right
			}

			// Player 2 = WASD (two player only)
			if cfg.Mode == game.TwoPlayer {
				switch {
				case rl.IsKeyPressed(rl.KeyW):
					pendingP2 = types.Up
				case rl.IsKeyPressed(rl.KeyS):
					pendingP2 = types.Down
				case rl.IsKeyPressed(rl.KeyA):
					pendingP2 = types.Left
				case rl.IsKeyPressed(rl.KeyD):
					pendingP2 = types.Right
				}
			}

			// Advance the simulation at the difficulty's fixed rate
			if time.Since(lastUpdate) >= tickInterval {
				g.Tick(pendingP1, pendingP2)
				pendingP1, pendingP2 = types.Point{}, types.Point{}
				lastUpdate = time.Now()
			}
		}

		renderer.Draw(g, assets)
	}

	if err := g.Stats().SaveToFile(game.StatsDir); err != nil {
		fmt.Printf("[WARN] Could not save match stats: %v\n", err)
	}
}
