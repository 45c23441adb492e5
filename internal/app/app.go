//go:build ebiten

// Package app adapts the wave simulation to the ebiten game loop: it
// translates pointer and key events into injections, advances the solver,
// and blits the composited field once per frame.
package app

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ripplebox/internal/preset"
	"ripplebox/internal/render"
	"ripplebox/internal/sim"
	"ripplebox/internal/telemetry"
)

// Game owns the simulation, the painter, and the gesture state that turns
// pointer events into injection calls.
type Game struct {
	sim     *sim.Ripple
	preset  preset.Preset
	painter *render.GridPainter

	scale          int
	stepsPerUpdate int
	paused         bool
	showDebug      bool

	// previous pointer cell while the left button is held; -1 when idle
	prevX, prevY int

	rng *rand.Rand

	tick      int
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	lastStats telemetry.FrameStats
}

// Options bundles the runtime knobs owned by the entrypoint.
type Options struct {
	Scale          int
	StepsPerUpdate int
	Seed           int64
	Collector      *telemetry.Collector
	Output         *telemetry.OutputManager
}

// New constructs a Game for the provided simulation and preset.
func New(r *sim.Ripple, p preset.Preset, opts Options) *Game {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	size := r.Size()
	return &Game{
		sim:            r,
		preset:         p,
		painter:        render.NewGridPainter(size.W, size.H),
		scale:          scale,
		stepsPerUpdate: steps,
		prevX:          -1,
		prevY:          -1,
		rng:            rand.New(rand.NewPCG(uint64(opts.Seed), 0)),
		collector:      opts.Collector,
		output:         opts.Output,
	}
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showDebug = !g.showDebug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.splash()
	}

	g.handlePointer()

	if g.paused {
		return nil
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.sim.Step()
	}
	g.tick++
	if g.collector != nil && g.collector.Due(g.tick) {
		g.lastStats = g.collector.Collect(g.tick, g.sim.Heights())
		if err := g.output.WriteFrame(g.lastStats); err != nil {
			log.Printf("telemetry write failed: %v", err)
		}
	}
	return nil
}

// handlePointer translates mouse state into injection calls. The previous
// cursor cell lives on the Game so a drag gesture becomes explicit segment
// endpoints for the line injector.
func (g *Game) handlePointer() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.prevX, g.prevY = -1, -1
		return
	}
	mx, my := ebiten.CursorPosition()
	cx := mx / g.scale
	cy := my / g.scale
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || g.prevX < 0 {
		g.preset.Click(g.sim, cx, cy)
	} else if cx != g.prevX || cy != g.prevY {
		g.preset.Drag(g.sim, g.prevX, g.prevY, cx, cy)
	}
	g.prevX, g.prevY = cx, cy
}

// splash injects a random disturbance away from the border, the original
// space-bar behavior.
func (g *Game) splash() {
	size := g.sim.Size()
	margin := g.preset.SplashMargin
	if margin < 1 {
		margin = 1
	}
	spanX := size.W - 2*margin
	spanY := size.H - 2*margin
	if spanX < 1 || spanY < 1 {
		return
	}
	x := margin + g.rng.IntN(spanX)
	y := margin + g.rng.IntN(spanY)
	g.preset.Splash(g.sim, x, y)
}

// Draw renders the composited field and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Heights(), g.preset.Mapper, g.scale)
	if g.preset.GridLines {
		g.painter.DrawGridLines(screen, g.scale)
	}
	if g.showDebug {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\npeak: %.3f\nrms: %.4f",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.lastStats.Peak, g.lastStats.RMS)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	size := g.sim.Size()
	return size.W * g.scale, size.H * g.scale
}
