package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"balloon/internal/game"
)

// Input turns glfw key state into game commands. Heat keys follow the OS
// key repeat through the key callback; one-shot keys are edge-detected by
// polling.
type Input struct {
	prevKeys map[glfw.Key]bool
	queued   []game.Command
	out      []game.Command
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{prevKeys: make(map[glfw.Key]bool)}
	window.SetKeyCallback(in.onKey)
	return in
}

func (in *Input) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	if cmd := heatCommand(key); cmd != game.CmdNone {
		in.queued = append(in.queued, cmd)
	}
}

func heatCommand(key glfw.Key) game.Command {
	switch key {
	case glfw.KeyUp:
		return game.CmdHeatUp
	case glfw.KeyDown:
		return game.CmdHeatDown
	}
	return game.CmdNone
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Drain returns the commands gathered since the last call. The returned
// slice is reused.
func (in *Input) Drain(window *glfw.Window) []game.Command {
	in.out = append(in.out[:0], in.queued...)
	in.queued = in.queued[:0]
	if in.JustPressed(window, glfw.KeyR) {
		in.out = append(in.out, game.CmdRestart)
	}
	if in.JustPressed(window, glfw.KeyEscape) {
		in.out = append(in.out, game.CmdQuit)
	}
	return in.out
}
