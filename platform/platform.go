// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform defines the interfaces to the external platform
// collaborators: the raw safe-area sensor, the screen dimension query,
// the event stream, and the monotonic clock. Drivers implement [App];
// the engine only ever talks to these interfaces.
package platform

import (
	"time"

	"github.com/floralens/safearea/device"
	"github.com/floralens/safearea/events"
	"github.com/floralens/safearea/insets"
)

// App is the surface of a platform driver that the layout engine
// consumes. All methods are synchronous and are called on the render
// goroutine.
type App interface {

	// Platform returns the platform type.
	Platform() device.Platforms

	// PlatformVersion returns the platform API level, or 0 if unknown.
	PlatformVersion() int

	// ScreenSize returns the current screen dimensions in layout points.
	ScreenSize() (width, height float32)

	// SafeAreaInsets returns the raw safe area insets as reported by
	// the system. The values are untrusted: they may be negative,
	// non-finite, or absurdly large, and the call itself may fail.
	SafeAreaInsets() (insets.Floats, error)

	// Events returns the event source for keyboard and screen change
	// notifications. It may return nil on platforms without event
	// support, in which case those features are disabled.
	Events() *events.Source
}

// Clock abstracts the monotonic time source used for throttling and
// animation, so that tests can supply a deterministic fake.
type Clock interface {

	// Now returns the current time; the monotonic reading is what
	// matters to callers.
	Now() time.Time
}

// SystemClock is the [Clock] backed by the real system clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
