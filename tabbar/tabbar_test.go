// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tabbar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floralens/safearea/device"
	"github.com/floralens/safearea/insets"
	"github.com/floralens/safearea/safearea"
	. "github.com/floralens/safearea/tabbar"
)

func snapWithBottom(bottom float32) safearea.Snapshot {
	info := device.Classify(393, 852, device.IOS, 17)
	res := insets.Resolved{Floats: insets.NewFloats(47, 0, bottom, 0)}
	return safearea.NewSnapshot(res, info)
}

func TestBuildGestureNavigation(t *testing.T) {
	cfg := Build(snapWithBottom(34))
	assert.Equal(t, float32(94), cfg.Height)
	assert.Equal(t, float32(34), cfg.PaddingBottom)
	assert.Equal(t, float32(8), cfg.PaddingTop)
}

func TestBuildButtonNavigation(t *testing.T) {
	cfg := Build(snapWithBottom(48))
	assert.Equal(t, float32(108), cfg.Height)
	assert.Equal(t, float32(40), cfg.PaddingBottom)
	assert.Equal(t, float32(8), cfg.PaddingTop)
}

func TestBuildButtonNavigationSmallInset(t *testing.T) {
	// bottom 40: not gesture, and 40-8=32 stays above the 8 floor
	cfg := Build(snapWithBottom(40))
	assert.Equal(t, float32(100), cfg.Height)
	assert.Equal(t, float32(32), cfg.PaddingBottom)
}

func TestBuildNoBottomInset(t *testing.T) {
	cfg := Build(snapWithBottom(0))
	assert.Equal(t, float32(76), cfg.Height)
	assert.Equal(t, float32(16), cfg.PaddingBottom)
	assert.Equal(t, float32(8), cfg.PaddingTop)
	assert.Zero(t, cfg.MarginBottom)
}

func TestBuildFloors(t *testing.T) {
	cfg := Build(snapWithBottom(1))
	assert.Equal(t, float32(61), cfg.Height)
	// gesture branch padding floor
	assert.Equal(t, float32(4), cfg.PaddingBottom)
}

func TestBuildHeightNotClampedToMax(t *testing.T) {
	// an extreme bottom inset exceeds MaxHeight; Height keeps the raw
	// value while MaxHeight still reports 120
	cfg := Build(snapWithBottom(200))
	assert.Equal(t, float32(260), cfg.Height)
	assert.Equal(t, float32(120), cfg.MaxHeight)
	assert.Greater(t, cfg.Height, cfg.MaxHeight)
}

func TestBuildBounds(t *testing.T) {
	for _, bottom := range []float32{0, 1, 8, 20, 34, 48, 100} {
		cfg := Build(snapWithBottom(bottom))
		assert.GreaterOrEqual(t, cfg.Height, cfg.MinHeight)
		assert.GreaterOrEqual(t, cfg.PaddingBottom, float32(4))
		assert.InDelta(t, 1.5, cfg.LabelOffset, 0.5)
		assert.InDelta(t, 1.5, cfg.IconOffset, 0.5)
	}
}
