// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "errors"

// ErrReleased is returned by [Subscription.Release] when the
// subscription was already released.
var ErrReleased = errors.New("events: subscription already released")

// Source delivers platform notifications to registered listeners.
// Delivery is synchronous on the goroutine calling [Source.Send];
// listeners must be idempotent since rapid show/hide or resize
// sequences are not ordered.
type Source struct {
	Listeners

	// hasWillKeyboard records whether the platform delivers the
	// "about to show/hide" keyboard event variants. It is a capability
	// fixed at construction, not a per-event branch.
	hasWillKeyboard bool

	nextID int
}

// NewSource returns a source for a platform whose keyboard capability
// is as given.
func NewSource(hasWillKeyboardEvents bool) *Source {
	return &Source{hasWillKeyboard: hasWillKeyboardEvents}
}

// HasWillKeyboardEvents reports whether the platform delivers the
// "about to show/hide" keyboard event variants.
func (s *Source) HasWillKeyboardEvents() bool {
	return s.hasWillKeyboard
}

// KeyboardShowType returns the show event type consumers should
// subscribe to on this platform: the "will" variant where available,
// otherwise exclusively the "did" variant.
func (s *Source) KeyboardShowType() Types {
	if s.hasWillKeyboard {
		return KeyboardWillShow
	}
	return KeyboardDidShow
}

// KeyboardHideType returns the hide event type consumers should
// subscribe to on this platform.
func (s *Source) KeyboardHideType() Types {
	if s.hasWillKeyboard {
		return KeyboardWillHide
	}
	return KeyboardDidHide
}

// Subscription is a handle to one registered listener. Handles are
// released independently; failing to release one has no effect on the
// others.
type Subscription struct {
	src      *Source
	typ      Types
	id       int
	released bool
}

// Subscribe registers the function for the given event type and
// returns a releasable handle.
func (s *Source) Subscribe(typ Types, fun func(Event)) *Subscription {
	s.nextID++
	s.Add(typ, s.nextID, fun)
	return &Subscription{src: s, typ: typ, id: s.nextID}
}

// Send delivers the event to all listeners registered for its type.
func (s *Source) Send(ev Event) {
	s.Call(ev)
}

// Release removes the listener from the source. Releasing twice
// returns [ErrReleased].
func (sub *Subscription) Release() error {
	if sub.released {
		return ErrReleased
	}
	sub.released = true
	if !sub.src.Delete(sub.typ, sub.id) {
		return ErrReleased
	}
	return nil
}
