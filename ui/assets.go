package ui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Asset paths, relative to the working directory
const (
	TitleImagePath = "assets/title_screen.png"
	BlueSpritePath = "assets/blue_cycle.png"
	RedSpritePath  = "assets/red_cycle.png"
	MusicPath      = "sound/background_music.wav"
)

const musicVolume = 0.4

// Assets holds the optional presentation assets. Every one of them may be
// missing: the renderer falls back to solid blocks and the game runs
// silently. The simulation never depends on any of these loading.
type Assets struct {
	Title    rl.Texture2D
	HasTitle bool

	Blue    rl.Texture2D
	HasBlue bool
	Red     rl.Texture2D
	HasRed  bool

	Music    rl.Music
	HasMusic bool
}

// LoadAssets loads whatever is available and warns about the rest.
// Call after rl.InitWindow and rl.InitAudioDevice.
func LoadAssets() *Assets {
	a := &Assets{}

	a.Title, a.HasTitle = loadTexture(TitleImagePath)
	a.Blue, a.HasBlue = loadTexture(BlueSpritePath)
	a.Red, a.HasRed = loadTexture(RedSpritePath)

	if _, err := os.Stat(MusicPath); err != nil {
		fmt.Printf("[WARN] Music not playing: %s\n", MusicPath)
	} else {
		music := rl.LoadMusicStream(MusicPath)
		if rl.IsMusicReady(music) {
			music.Looping = true
			rl.SetMusicVolume(music, musicVolume)
			rl.PlayMusicStream(music)
			a.Music = music
			a.HasMusic = true
		} else {
			fmt.Printf("[WARN] Music not playing: %s\n", MusicPath)
		}
	}

	return a
}

func loadTexture(path string) (rl.Texture2D, bool) {
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("[WARN] Could not load sprite: %s\n", path)
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		fmt.Printf("[WARN] Could not load sprite: %s\n", path)
		return rl.Texture2D{}, false
	}
	return tex, true
}

// UpdateMusic keeps the music stream fed; call once per frame.
func (a *Assets) UpdateMusic() {
	if a.HasMusic {
		rl.UpdateMusicStream(a.Music)
	}
}

// Unload releases every loaded asset.
func (a *Assets) Unload() {
	if a.HasTitle {
		rl.UnloadTexture(a.Title)
	}
	if a.HasBlue {
		rl.UnloadTexture(a.Blue)
	}
	if a.HasRed {
		rl.UnloadTexture(a.Red)
	}
	if a.HasMusic {
		rl.StopMusicStream(a.Music)
		rl.UnloadMusicStream(a.Music)
	}
}
