package game

import (
	"fmt"
	"math"
)

// HUD is the text a frontend shows over the play field.
type HUD struct {
	Status  string // progress, temperature, speed
	Message string // end-of-round banner, empty while playing
	Hint    string
	Color   RGB // banner colour
}

// BuildHUD formats the read-only state of g for display.
func BuildHUD(g *GameCore) HUD {
	h := HUD{
		Status: fmt.Sprintf("Distance left: %d%%   Temp: %d°C   Speed: %g",
			int(math.Round(g.Progress())), int(math.Round(g.Temperature())), g.ScrollSpeed()),
		Hint:  "Up/Down: heat   R: restart   Esc: quit",
		Color: Palette.Text,
	}

	switch g.State() {
	case StateGameOver:
		h.Message = "GAME OVER"
		h.Hint = "Press R to restart"
		h.Color = Palette.Lose
	case StateWon:
		h.Message = "GOAL!"
		h.Hint = "Press R to restart"
		h.Color = Palette.Win
	}
	return h
}

// Title joins the HUD into a single line, for window titles.
func (h HUD) Title() string {
	if h.Message == "" {
		return "Balloon | " + h.Status
	}
	return "Balloon | " + h.Message + " | " + h.Status + " | " + h.Hint
}
