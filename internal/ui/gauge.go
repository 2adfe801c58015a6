package ui

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/harmonica"
)

const settleThreshold = 0.001

// gauge draws the damping ratio as a bar that eases toward its target.
type gauge struct {
	bar       progress.Model
	spring    harmonica.Spring
	pos       float64
	vel       float64
	target    float64
	animating bool
}

func newGauge() gauge {
	return gauge{
		bar: progress.New(
			progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
			progress.WithoutPercentage(),
		),
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), 8.0, 0.8),
	}
}

// setTarget moves the gauge toward v, clamped to [0, 1]. It reports whether
// a new animation has to be started.
func (g *gauge) setTarget(v float64) bool {
	if math.IsNaN(v) {
		v = 0
	}
	g.target = clamp01(v)
	if g.settled() {
		return false
	}
	start := !g.animating
	g.animating = true
	return start
}

// step advances one frame and reports whether the gauge is still moving.
func (g *gauge) step() bool {
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, g.target)
	if g.settled() {
		g.pos = g.target
		g.vel = 0
		g.animating = false
	}
	return g.animating
}

func (g *gauge) settled() bool {
	return math.Abs(g.pos-g.target) < settleThreshold && math.Abs(g.vel) < settleThreshold
}

func (g *gauge) setWidth(w int) {
	if w < 10 {
		w = 10
	}
	if w > 60 {
		w = 60
	}
	g.bar.Width = w
}

func (g gauge) View() string {
	return g.bar.ViewAs(clamp01(g.pos))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
