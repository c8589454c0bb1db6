// Package desktop is the OpenGL frontend: a glfw window that steps the
// simulation at a fixed rate and draws each frame as a game.Scene.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"balloon/internal/game"
)

// maxCatchUp bounds how many ticks a single slow frame may run.
const maxCatchUp = 5

// Run opens the window and plays until it is closed or the player quits.
func Run(cfg game.Config, seed uint64, log *slog.Logger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(int(cfg.Width), int(cfg.Height))
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("gl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	sr, sg, sb := game.Palette.Sky.Floats()
	gl.ClearColor(sr, sg, sb, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	d := game.NewDriver(cfg, seed, log)
	input := NewInput(window)
	d.Core.Restart()

	var scene game.Scene
	var title string
	var acc float64

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		for _, cmd := range input.Drain(window) {
			if !d.Apply(cmd) {
				window.SetShouldClose(true)
			}
		}

		winW, winH := window.GetSize()
		fbW, fbH := window.GetFramebufferSize()
		if winW <= 0 || winH <= 0 || fbW <= 0 || fbH <= 0 {
			continue
		}
		d.Core.SetViewport(float64(winW), float64(winH))

		acc += dt
		for steps := 0; acc >= game.TickSeconds && steps < maxCatchUp; steps++ {
			d.Frame()
			acc -= game.TickSeconds
		}
		if acc > game.TickSeconds {
			acc = 0
		}

		if t := game.BuildHUD(d.Core).Title(); t != title {
			title = t
			window.SetTitle(title)
		}

		game.BuildScene(d, &scene)
		rend.BeginFrame(fbW, fbH)
		rend.DrawScene(&scene, view{
			W:     float32(winW),
			H:     float32(winH),
			Scale: float32(fbW) / float32(winW),
		})
		window.SwapBuffers()
	}

	log.Info("window closed", "frames", d.Frames(), "state", d.Core.State())
	return nil
}
