// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package insets

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/floralens/safearea/device"
)

// profile is the TOML shape of one fallback entry.
type profile struct {
	Top    float32 `toml:"top"`
	Right  float32 `toml:"right"`
	Bottom float32 `toml:"bottom"`
	Left   float32 `toml:"left"`
}

// profileFile is the TOML shape of a fallback override file. Classes
// not present keep their standard values.
type profileFile struct {
	Modern *profile `toml:"modern"`
	Legacy *profile `toml:"legacy"`
	Tablet *profile `toml:"tablet"`
}

// LoadTable reads per-class fallback overrides in TOML form, for
// example:
//
//	[modern]
//	top = 47
//	bottom = 34
//
// Overrides pass the same plausibility gate as sensor readings; an
// implausible entry fails the whole load so that a bad config file can
// never degrade the fallbacks below the built-in table.
func LoadTable(r io.Reader) (Table, error) {
	t := StandardTable
	var pf profileFile
	if err := toml.NewDecoder(r).Decode(&pf); err != nil {
		return t, fmt.Errorf("insets: decoding fallback profiles: %w", err)
	}
	for _, e := range []struct {
		name string
		c    device.Class
		p    *profile
		dst  *Floats
	}{
		{"modern", device.Modern, pf.Modern, &t.Modern},
		{"legacy", device.Legacy, pf.Legacy, &t.Legacy},
		{"tablet", device.Tablet, pf.Tablet, &t.Tablet},
	} {
		if e.p == nil {
			continue
		}
		f := NewFloats(e.p.Top, e.p.Right, e.p.Bottom, e.p.Left)
		if !f.IsFinite() || !f.Within(0, PlausibleMax(e.c)) {
			return StandardTable, fmt.Errorf("insets: implausible %s fallback override %+v", e.name, *e.p)
		}
		*e.dst = f
	}
	return t, nil
}
