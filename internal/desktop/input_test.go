package desktop

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"balloon/internal/game"
)

func TestHeatCommand(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want game.Command
	}{
		{glfw.KeyUp, game.CmdHeatUp},
		{glfw.KeyDown, game.CmdHeatDown},
		{glfw.KeyLeft, game.CmdNone},
		{glfw.KeyR, game.CmdNone},
	}
	for _, tt := range tests {
		if got := heatCommand(tt.key); got != tt.want {
			t.Errorf("heatCommand(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestOnKeyQueuesRepeats(t *testing.T) {
	in := &Input{prevKeys: make(map[glfw.Key]bool)}
	in.onKey(nil, glfw.KeyUp, 0, glfw.Press, 0)
	in.onKey(nil, glfw.KeyUp, 0, glfw.Repeat, 0)
	in.onKey(nil, glfw.KeyUp, 0, glfw.Release, 0)
	in.onKey(nil, glfw.KeyDown, 0, glfw.Press, 0)

	want := []game.Command{game.CmdHeatUp, game.CmdHeatUp, game.CmdHeatDown}
	if len(in.queued) != len(want) {
		t.Fatalf("queued = %v, want %v", in.queued, want)
	}
	for i := range want {
		if in.queued[i] != want[i] {
			t.Errorf("queued[%d] = %v, want %v", i, in.queued[i], want[i])
		}
	}
}
