// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a deterministic platform driver used for
// testing and tooling. All state is settable and every notification is
// delivered synchronously.
package offscreen

import (
	"github.com/floralens/safearea/device"
	"github.com/floralens/safearea/events"
	"github.com/floralens/safearea/insets"
)

// App is the offscreen driver. The zero value is not usable; call [New].
type App struct {

	// Plat is the platform the driver reports.
	Plat device.Platforms

	// Version is the platform API level the driver reports.
	Version int

	// Width and Height are the current screen dimensions.
	Width  float32
	Height float32

	// Insets are the raw insets returned by [App.SafeAreaInsets].
	Insets insets.Floats

	// SensorErr, when set, makes [App.SafeAreaInsets] fail with it.
	SensorErr error

	// Event is the event source for the driver.
	Event *events.Source
}

// New returns an offscreen driver shaped like a current notched phone:
// 393x852 points with a 47 point status bar and a 34 point home
// indicator, delivering the "will" keyboard event variants.
func New() *App {
	return &App{
		Plat:   device.Offscreen,
		Width:  393,
		Height: 852,
		Insets: insets.NewFloats(47, 0, 34, 0),
		Event:  events.NewSource(true),
	}
}

func (a *App) Platform() device.Platforms { return a.Plat }

func (a *App) PlatformVersion() int { return a.Version }

func (a *App) ScreenSize() (width, height float32) { return a.Width, a.Height }

func (a *App) SafeAreaInsets() (insets.Floats, error) {
	if a.SensorErr != nil {
		return insets.Floats{}, a.SensorErr
	}
	return a.Insets, nil
}

func (a *App) Events() *events.Source { return a.Event }

// SetSize updates the screen dimensions and sends a screen change
// event, as happens on rotation or window resize.
func (a *App) SetSize(width, height float32) {
	a.Width = width
	a.Height = height
	if a.Event != nil {
		a.Event.Send(events.NewScreenChange(width, height))
	}
}

// ShowKeyboard reports the virtual keyboard becoming visible with the
// given height, sending the event variants the platform supports.
func (a *App) ShowKeyboard(height float32) {
	if a.Event == nil {
		return
	}
	if a.Event.HasWillKeyboardEvents() {
		a.Event.Send(events.NewKeyboard(events.KeyboardWillShow, height))
	}
	a.Event.Send(events.NewKeyboard(events.KeyboardDidShow, height))
}

// HideKeyboard reports the virtual keyboard being dismissed.
func (a *App) HideKeyboard() {
	if a.Event == nil {
		return
	}
	if a.Event.HasWillKeyboardEvents() {
		a.Event.Send(events.NewKeyboard(events.KeyboardWillHide, 0))
	}
	a.Event.Send(events.NewKeyboard(events.KeyboardDidHide, 0))
}
