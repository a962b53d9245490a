// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the typed notification stream connecting
// platform drivers to layout consumers: keyboard show/hide and screen
// dimension changes, delivered synchronously on the render goroutine.
package events

import (
	"fmt"
	"time"
)

// Types determines the type of platform event.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// KeyboardWillShow is sent just before the virtual keyboard becomes
	// visible, on platforms that deliver the "will" event variants.
	KeyboardWillShow

	// KeyboardDidShow is sent after the virtual keyboard has become
	// visible. On platforms without the "will" variants this is the
	// only show notification.
	KeyboardDidShow

	// KeyboardWillHide is sent just before the virtual keyboard is
	// dismissed, on platforms that deliver the "will" event variants.
	KeyboardWillHide

	// KeyboardDidHide is sent after the virtual keyboard is dismissed.
	KeyboardDidHide

	// ScreenChange is sent when the screen dimensions change, including
	// orientation changes.
	ScreenChange
)

func (t Types) String() string {
	switch t {
	case KeyboardWillShow:
		return "KeyboardWillShow"
	case KeyboardDidShow:
		return "KeyboardDidShow"
	case KeyboardWillHide:
		return "KeyboardWillHide"
	case KeyboardDidHide:
		return "KeyboardDidHide"
	case ScreenChange:
		return "ScreenChange"
	}
	return fmt.Sprintf("Types(%d)", int32(t))
}

// Event is the interface for all platform events.
type Event interface {

	// Type returns the type of the event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether a listener has marked the event handled,
	// which stops further delivery.
	IsHandled() bool

	// SetHandled marks the event as handled.
	SetHandled()
}

// Base is the base event type satisfying the [Event] interface; all
// events in this package use it directly.
type Base struct {
	Typ     Types
	Tm      time.Time
	Handled bool

	// KeyboardHeight is the reported end height of the keyboard, for
	// keyboard events. It is untrusted and must be validated by the
	// consumer.
	KeyboardHeight float32

	// Width and Height are the new screen dimensions, for [ScreenChange].
	Width  float32
	Height float32
}

// NewKeyboard returns a keyboard event of the given type carrying the
// reported keyboard height.
func NewKeyboard(typ Types, height float32) *Base {
	return &Base{Typ: typ, Tm: time.Now(), KeyboardHeight: height}
}

// NewScreenChange returns a [ScreenChange] event with the new dimensions.
func NewScreenChange(width, height float32) *Base {
	return &Base{Typ: ScreenChange, Tm: time.Now(), Width: width, Height: height}
}

func (ev *Base) Type() Types     { return ev.Typ }
func (ev *Base) Time() time.Time { return ev.Tm }
func (ev *Base) IsHandled() bool { return ev.Handled }
func (ev *Base) SetHandled()     { ev.Handled = true }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{KeyboardHeight: %g, Size: %gx%g, Time: %v}",
		ev.Typ, ev.KeyboardHeight, ev.Width, ev.Height, ev.Tm)
}
