// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabbar translates a resolved safe-area snapshot into the
// concrete tab bar height and padding policy, across the three
// navigation styles: gesture navigation, button navigation, and no
// bottom inset at all.
package tabbar

import (
	"github.com/chewxy/math32"

	"github.com/floralens/safearea/safearea"
)

const (
	// baseHeight is the tab bar content height before the bottom inset
	// is added.
	baseHeight = 60

	// noInsetHeight is the full tab bar height on devices without a
	// bottom inset.
	noInsetHeight = 76

	// paddingBottomFloor is the device-independent lower bound on
	// bottom padding.
	paddingBottomFloor = 4

	paddingTop = 8
)

// Config is the concrete tab bar layout policy derived from one
// snapshot. MinHeight and MaxHeight are attached for consumers;
// Height is guaranteed to be at least MinHeight but is not limited by
// MaxHeight, so an extreme bottom inset yields a Height above
// MaxHeight while MaxHeight still reports 120.
type Config struct {
	Height        float32
	PaddingBottom float32
	PaddingTop    float32
	MarginBottom  float32
	MinHeight     float32
	MaxHeight     float32

	// LabelOffset and IconOffset are small cosmetic shifts (1-2 points)
	// that vary by navigation style.
	LabelOffset float32
	IconOffset  float32
}

// Build selects the configuration for the snapshot's navigation style
// and applies the floors: Height at least [Config.MinHeight] and
// PaddingBottom at least the device-independent floor.
func Build(snap safearea.Snapshot) Config {
	bottom := snap.NavigationBarHeight
	cfg := Config{
		PaddingTop: paddingTop,
		MinHeight:  60,
		MaxHeight:  120,
	}
	switch {
	case snap.IsGestureNavigation:
		cfg.Height = baseHeight + bottom
		cfg.PaddingBottom = bottom
		cfg.LabelOffset = 1
		cfg.IconOffset = 1
	case snap.HasBottomInset:
		cfg.Height = baseHeight + bottom
		cfg.PaddingBottom = math32.Max(bottom-8, 8)
		cfg.LabelOffset = 2
		cfg.IconOffset = 1
	default:
		cfg.Height = noInsetHeight
		cfg.PaddingBottom = 16
		cfg.LabelOffset = 2
		cfg.IconOffset = 2
	}
	cfg.Height = math32.Max(cfg.Height, cfg.MinHeight)
	cfg.PaddingBottom = math32.Max(cfg.PaddingBottom, paddingBottomFloor)
	return cfg
}
