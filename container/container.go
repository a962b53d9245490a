// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package container provides the reusable screen wrapper that applies
// resolved safe-area insets to a requested edge subset, keeps content
// above the virtual keyboard, and runs a cosmetic scale pulse on
// orientation changes. Every internal failure degrades locally; the
// container always produces a usable frame.
package container

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/chewxy/math32"

	"github.com/floralens/safearea/base/nums"
	"github.com/floralens/safearea/device"
	"github.com/floralens/safearea/events"
	"github.com/floralens/safearea/insets"
	"github.com/floralens/safearea/platform"
	"github.com/floralens/safearea/safearea"
)

// Edges selects the sides of the screen that receive the resolved
// inset.
type Edges int32

const (
	Top Edges = 1 << iota
	Right
	Bottom
	Left
)

// AllEdges selects every side; it is the default.
const AllEdges = Top | Right | Bottom | Left

// Has returns whether e includes all edges in f.
func (e Edges) Has(f Edges) bool {
	return e&f == f
}

const (
	// keyboardHeightMax bounds plausible reported keyboard heights.
	keyboardHeightMax = 1000

	// keyboard padding ceilings by device class
	keyboardPadCeilTablet   = 600
	keyboardPadCeilLegacy   = 300
	keyboardPadCeilStandard = 500
)

// Config configures a [Container].
type Config struct {

	// Edges selects which sides receive the resolved inset.
	Edges Edges

	// BackgroundColor fills behind the content.
	BackgroundColor color.RGBA

	// KeyboardAware adds bottom padding to keep content above the
	// virtual keyboard.
	KeyboardAware bool

	// AnimateTransitions runs the cosmetic scale pulse on orientation
	// changes. It never gates layout.
	AnimateTransitions bool

	// Style, when set, is merged over the computed frame last:
	// its non-zero fields win.
	Style *Frame
}

// NewConfig returns the default configuration: all edges, white
// background, keyboard-aware, animated.
func NewConfig() Config {
	return Config{
		Edges:              AllEdges,
		BackgroundColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		KeyboardAware:      true,
		AnimateTransitions: true,
	}
}

// Frame is the computed presentation of the container for one render
// pass.
type Frame struct {

	// Padding is the per-side padding applied around the content.
	Padding insets.Floats

	// BackgroundColor fills behind the content.
	BackgroundColor color.RGBA

	// Scale is the cosmetic content scale, normally 1.
	Scale float32

	// Passthrough indicates the frame carries no styling and children
	// render directly; it is the degraded result of a render failure.
	Passthrough bool
}

// Container is the scoped screen wrapper. It subscribes to keyboard
// and screen change notifications on [Container.Mount] and releases
// them on [Container.Unmount]. All methods run on the render goroutine.
type Container struct {
	Config

	app    platform.App
	clock  platform.Clock
	logger *slog.Logger

	width          float32
	height         float32
	keyboardHeight float32
	scale          float32

	subs     []*events.Subscription
	anims    []*Animation
	lastStep time.Time

	mounted bool
}

// New returns a container over the given platform driver with the
// given configuration. A nil logger means [slog.Default].
func New(app platform.App, clock platform.Clock, cfg Config, lg *slog.Logger) *Container {
	c := &Container{Config: cfg, app: app, clock: clock, logger: lg, scale: 1}
	c.width, c.height = app.ScreenSize()
	return c
}

func (c *Container) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

func (c *Container) clk() platform.Clock {
	if c.clock != nil {
		return c.clock
	}
	return platform.SystemClock{}
}

// KeyboardHeight returns the last valid reported keyboard height, or 0
// when the keyboard is hidden.
func (c *Container) KeyboardHeight() float32 { return c.keyboardHeight }

// Scale returns the current cosmetic content scale.
func (c *Container) Scale() float32 { return c.scale }

// ScreenSize returns the dimensions last delivered to the container.
func (c *Container) ScreenSize() (width, height float32) { return c.width, c.height }

// Mount subscribes to screen change and keyboard notifications. Each
// subscription failure is logged and disables only that feature; the
// container still renders.
func (c *Container) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	src := c.app.Events()
	if src == nil {
		c.log().Warn("container: platform has no event source; keyboard and rotation handling disabled")
		return
	}
	c.subscribe("screen", func() *events.Subscription {
		return src.Subscribe(events.ScreenChange, c.onScreenChange)
	})
	c.subscribe("keyboard show", func() *events.Subscription {
		return src.Subscribe(src.KeyboardShowType(), c.onKeyboardShow)
	})
	c.subscribe("keyboard hide", func() *events.Subscription {
		return src.Subscribe(src.KeyboardHideType(), c.onKeyboardHide)
	})
}

func (c *Container) subscribe(feature string, f func() *events.Subscription) {
	defer func() {
		if r := recover(); r != nil {
			c.log().Error("container: subscription setup failed; feature disabled",
				"feature", feature, "err", r)
		}
	}()
	c.subs = append(c.subs, f())
}

// Unmount releases every subscription made on mount, independently, so
// one release failure does not block the others. Pending animations
// are cleared.
func (c *Container) Unmount() {
	for _, sub := range c.subs {
		if err := sub.Release(); err != nil {
			c.log().Error("container: releasing subscription", "err", err)
		}
	}
	c.subs = nil
	c.anims = nil
	c.mounted = false
}

func (c *Container) onScreenChange(ev events.Event) {
	b, ok := ev.(*events.Base)
	if !ok {
		return
	}
	c.width, c.height = b.Width, b.Height
	if c.AnimateTransitions {
		c.startPulse()
	}
}

func (c *Container) onKeyboardShow(ev events.Event) {
	b, ok := ev.(*events.Base)
	if !ok {
		return
	}
	h := b.KeyboardHeight
	if math32.IsNaN(h) || math32.IsInf(h, 0) || h < 0 || h > keyboardHeightMax {
		c.log().Warn("container: implausible keyboard height, keeping previous",
			"height", h, "previous", c.keyboardHeight)
		return
	}
	c.keyboardHeight = h
}

func (c *Container) onKeyboardHide(ev events.Event) {
	c.keyboardHeight = 0
}

// KeyboardPadCeiling returns the largest keyboard-driven bottom
// padding for the given class.
func KeyboardPadCeiling(cl device.Class) float32 {
	switch cl {
	case device.Tablet:
		return keyboardPadCeilTablet
	case device.Legacy:
		return keyboardPadCeilLegacy
	}
	return keyboardPadCeilStandard
}

// Frame computes the presentation for the given snapshot: insets on
// the selected edges, keyboard-aware bottom padding, the current
// scale, and the config style merged last. A style failure degrades to
// the class fallback padding; a render failure degrades to a
// passthrough frame.
func (c *Container) Frame(snap safearea.Snapshot) (fr Frame) {
	defer func() {
		if r := recover(); r != nil {
			c.log().Error("container: render failed, passing children through", "err", r)
			fr = Frame{Scale: 1, Passthrough: true}
		}
	}()
	fr = Frame{BackgroundColor: c.BackgroundColor, Scale: c.scale}
	fr.Padding = c.padding(snap)
	if c.Style != nil {
		fr = mergeStyle(fr, *c.Style)
	}
	return fr
}

func (c *Container) padding(snap safearea.Snapshot) (p insets.Floats) {
	cl := snap.Device.Class()
	defer func() {
		if r := recover(); r != nil {
			c.log().Error("container: style calculation failed, using class fallback", "err", r)
			p = insets.Fallback(cl)
		}
	}()
	in := snap.Insets
	if c.Edges.Has(Top) {
		p.Top = in.Top
	}
	if c.Edges.Has(Right) {
		p.Right = in.Right
	}
	if c.Edges.Has(Bottom) {
		p.Bottom = in.Bottom
	}
	if c.Edges.Has(Left) {
		p.Left = in.Left
	}
	if c.KeyboardAware && c.keyboardHeight > 0 {
		pad := math32.Max(c.keyboardHeight-in.Bottom, 0)
		p.Bottom += nums.Clamp(pad, 0, KeyboardPadCeiling(cl))
	}
	return p
}

func mergeStyle(fr, st Frame) Frame {
	if !insets.AreZero(st.Padding.Sides) {
		fr.Padding = st.Padding
	}
	if st.BackgroundColor != (color.RGBA{}) {
		fr.BackgroundColor = st.BackgroundColor
	}
	if st.Scale != 0 {
		fr.Scale = st.Scale
	}
	return fr
}
