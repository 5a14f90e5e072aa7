// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D float32 vector or point.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y values.
func Vec2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Set sets the x and y values.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Add returns the vector sum of this vector and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns this vector minus other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Negate returns the negation of this vector.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Abs returns the component-wise absolute value.
func (v Vector2) Abs() Vector2 {
	return Vector2{math32.Abs(v.X), math32.Abs(v.Y)}
}

// MaxComponent returns the larger of the two components.
func (v Vector2) MaxComponent() float32 {
	return math32.Max(v.X, v.Y)
}

// ParseFloat32 parses the given string as a float32, per SVG number syntax.
func ParseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	return float32(f), err
}

// Float32String returns the standard compact string representation
// used for geometry attribute values.
func Float32String(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
