// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safearea

import "time"

// ThrottleInterval is the minimum time between evaluations of one
// throttled calculation, roughly one frame at 60Hz.
const ThrottleInterval = 16 * time.Millisecond

// throttle limits a derived calculation to one evaluation per
// [ThrottleInterval]. Each calculation owns its own throttle; the clock
// is shared and injected. State is read and written only on the render
// goroutine, so no locking is needed.
type throttle struct {
	last time.Time
	has  bool
}

// ready reports whether a calculation may run at the given time, and
// records the evaluation when it may.
func (t *throttle) ready(now time.Time) bool {
	if t.has && now.Sub(t.last) < ThrottleInterval {
		return false
	}
	t.last = now
	t.has = true
	return true
}
