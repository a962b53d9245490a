// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package insets_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	. "github.com/floralens/safearea/insets"
)

func TestSidesSet(t *testing.T) {
	assert.Equal(t, NewFloats(5, 5, 5, 5), NewFloats(5))
	assert.Equal(t, NewFloats(5, 10, 5, 10), NewFloats(5, 10))
	assert.Equal(t, NewFloats(1, 2, 3, 2), NewFloats(1, 2, 3))
	assert.Equal(t, NewFloats(1, 2, 3, 4), NewFloats(1, 2, 3, 4))
	assert.Equal(t, Floats{}, NewFloats())
}

func TestFloatsOps(t *testing.T) {
	f := NewFloats(10, 0, 30, 0)
	assert.Equal(t, NewFloats(15, 5, 35, 5), f.Add(NewFloats(5)))
	assert.Equal(t, NewFloats(10, 5, 20, 5), f.Clamp(5, 20))
	assert.Equal(t, NewFloats(10, 0, 30, 0), f.Round())
	assert.Equal(t, NewFloats(1, 3, 2, 0), NewFloats(1.4, 2.5, 1.6, 0.2).Round())
}

func TestFloatsIsFinite(t *testing.T) {
	assert.True(t, NewFloats(1, 2, 3, 4).IsFinite())
	assert.False(t, NewFloats(math32.NaN(), 0, 0, 0).IsFinite())
	assert.False(t, NewFloats(0, 0, math32.Inf(1), 0).IsFinite())
}

func TestFloatsWithin(t *testing.T) {
	assert.True(t, NewFloats(0, 10, 100, 50).Within(0, 100))
	assert.False(t, NewFloats(-1, 0, 0, 0).Within(0, 100))
	assert.False(t, NewFloats(0, 0, 101, 0).Within(0, 100))
}

func TestAreZero(t *testing.T) {
	assert.True(t, AreZero(Floats{}.Sides))
	assert.False(t, AreZero(NewFloats(0, 0, 1, 0).Sides))
}
