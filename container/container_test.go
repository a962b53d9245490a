// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container_test

import (
	"bytes"
	"image/color"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/floralens/safearea/container"
	"github.com/floralens/safearea/insets"
	"github.com/floralens/safearea/platform/offscreen"
	"github.com/floralens/safearea/safearea"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestContainer(t *testing.T) (*Container, *offscreen.App, *fakeClock, *bytes.Buffer) {
	t.Helper()
	app := offscreen.New()
	clock := &fakeClock{t: time.Unix(0, 0)}
	buf := &bytes.Buffer{}
	lg := slog.New(slog.NewTextHandler(buf, nil))
	c := New(app, clock, NewConfig(), lg)
	return c, app, clock, buf
}

func TestKeyboardShowHide(t *testing.T) {
	c, app, _, _ := newTestContainer(t)
	c.Mount()
	defer c.Unmount()

	app.ShowKeyboard(300)
	assert.Equal(t, float32(300), c.KeyboardHeight())

	app.HideKeyboard()
	assert.Zero(t, c.KeyboardHeight())
}

func TestKeyboardInvalidHeightKeepsPrevious(t *testing.T) {
	c, app, _, buf := newTestContainer(t)
	c.Mount()
	defer c.Unmount()

	app.ShowKeyboard(300)
	app.ShowKeyboard(5000)
	assert.Equal(t, float32(300), c.KeyboardHeight())
	assert.Contains(t, buf.String(), "implausible keyboard height")

	app.ShowKeyboard(-1)
	assert.Equal(t, float32(300), c.KeyboardHeight())
}

func TestKeyboardEventsRapidSequence(t *testing.T) {
	c, app, _, _ := newTestContainer(t)
	c.Mount()
	defer c.Unmount()

	app.ShowKeyboard(300)
	app.ShowKeyboard(300)
	app.HideKeyboard()
	app.HideKeyboard()
	assert.Zero(t, c.KeyboardHeight())
}

func TestFramePadding(t *testing.T) {
	c, app, _, _ := newTestContainer(t)
	c.Mount()
	defer c.Unmount()

	snap := safearea.NewResolver(app, nil).Resolve()
	fr := c.Frame(snap)
	assert.False(t, fr.Passthrough)
	assert.Equal(t, insets.NewFloats(47, 0, 34, 0), fr.Padding)
	assert.Equal(t, float32(1), fr.Scale)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, fr.BackgroundColor)
}

func TestFrameKeyboardPadding(t *testing.T) {
	c, app, _, _ := newTestContainer(t)
	c.Mount()
	defer c.Unmount()

	snap := safearea.NewResolver(app, nil).Resolve()
	app.ShowKeyboard(300)
	fr := c.Frame(snap)
	// bottom inset plus keyboard overlap above the inset
	assert.Equal(t, float32(34+(300-34)), fr.Padding.Bottom)
}

func TestFrameKeyboardPaddingCeiling(t *testing.T) {
	c, app, _, _ := newTestContainer(t)
	c.Mount()
	defer c.Unmount()

	snap := safearea.NewResolver(app, nil).Resolve()
	app.ShowKeyboard(900)
	fr := c.Frame(snap)
	// overlap 866 exceeds the standard phone ceiling of 500
	assert.Equal(t, float32(34+500), fr.Padding.Bottom)
}

func TestFrameKeyboardUnaware(t *testing.T) {
	app := offscreen.New()
	cfg := NewConfig()
	cfg.KeyboardAware = false
	c := New(app, &fakeClock{}, cfg, nil)
	c.Mount()
	defer c.Unmount()

	snap := safearea.NewResolver(app, nil).Resolve()
	app.ShowKeyboard(300)
	fr := c.Frame(snap)
	assert.Equal(t, float32(34), fr.Padding.Bottom)
}

func TestFrameEdgeSubset(t *testing.T) {
	app := offscreen.New()
	cfg := NewConfig()
	cfg.Edges = Top
	cfg.KeyboardAware = false
	c := New(app, &fakeClock{}, cfg, nil)

	snap := safearea.NewResolver(app, nil).Resolve()
	fr := c.Frame(snap)
	assert.Equal(t, insets.NewFloats(47, 0, 0, 0), fr.Padding)
}

func TestFrameStyleMergedLast(t *testing.T) {
	app := offscreen.New()
	cfg := NewConfig()
	red := color.RGBA{R: 255, A: 255}
	cfg.Style = &Frame{BackgroundColor: red}
	c := New(app, &fakeClock{}, cfg, nil)

	snap := safearea.NewResolver(app, nil).Resolve()
	fr := c.Frame(snap)
	assert.Equal(t, red, fr.BackgroundColor)
	// untouched style fields do not override computed ones
	assert.Equal(t, insets.NewFloats(47, 0, 34, 0), fr.Padding)
	assert.Equal(t, float32(1), fr.Scale)
}

func TestUnmountReleasesSubscriptions(t *testing.T) {
	c, app, _, _ := newTestContainer(t)
	c.Mount()
	c.Unmount()

	app.ShowKeyboard(300)
	assert.Zero(t, c.KeyboardHeight())

	app.SetSize(852, 393)
	w, h := c.ScreenSize()
	assert.Equal(t, float32(393), w)
	assert.Equal(t, float32(852), h)
}

func TestUnmountWithoutMount(t *testing.T) {
	c, _, _, _ := newTestContainer(t)
	c.Unmount()
	c.Unmount()
}

func TestNoEventSource(t *testing.T) {
	app := offscreen.New()
	app.Event = nil
	buf := &bytes.Buffer{}
	c := New(app, &fakeClock{}, NewConfig(), slog.New(slog.NewTextHandler(buf, nil)))
	c.Mount()
	defer c.Unmount()
	assert.Contains(t, buf.String(), "no event source")

	snap := safearea.NewResolver(app, nil).Resolve()
	fr := c.Frame(snap)
	assert.False(t, fr.Passthrough)
}

func TestOrientationPulse(t *testing.T) {
	c, app, clock, _ := newTestContainer(t)
	c.Mount()
	defer c.Unmount()

	c.Step() // establishes the step baseline
	app.SetSize(852, 393)
	w, h := c.ScreenSize()
	assert.Equal(t, float32(852), w)
	assert.Equal(t, float32(393), h)

	clock.advance(50 * time.Millisecond)
	c.Step()
	assert.InDelta(t, 0.99, c.Scale(), 0.001)

	clock.advance(50 * time.Millisecond)
	c.Step()
	assert.InDelta(t, 0.98, c.Scale(), 0.001)

	clock.advance(50 * time.Millisecond)
	c.Step()
	assert.InDelta(t, 0.99, c.Scale(), 0.001)

	clock.advance(150 * time.Millisecond)
	c.Step()
	assert.Equal(t, float32(1), c.Scale())
}

func TestPulseDisabled(t *testing.T) {
	app := offscreen.New()
	cfg := NewConfig()
	cfg.AnimateTransitions = false
	clock := &fakeClock{}
	c := New(app, clock, cfg, nil)
	c.Mount()
	defer c.Unmount()

	c.Step()
	app.SetSize(852, 393)
	clock.advance(50 * time.Millisecond)
	c.Step()
	assert.Equal(t, float32(1), c.Scale())
}

func TestEdgesHas(t *testing.T) {
	assert.True(t, AllEdges.Has(Top))
	assert.True(t, AllEdges.Has(Top|Bottom))
	assert.True(t, (Top | Left).Has(Left))
	assert.False(t, Top.Has(Bottom))
}
