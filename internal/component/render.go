package component

import "image/color"

// Point is a screen position in logical pixels.
type Point struct {
	X, Y float64
}

// Circle описывает диск или кольцо для отрисовки.
// StrokeWidth 0 means a filled disc; otherwise the ring is drawn inward
// from Radius with the given thickness.
type Circle struct {
	CenterX     float64
	CenterY     float64
	Radius      float64
	Color       color.RGBA
	StrokeWidth float64
}

// Center returns the circle center as a Point.
func (c Circle) Center() Point {
	return Point{X: c.CenterX, Y: c.CenterY}
}

// InnerRadius is where the painted band starts. Never negative.
func (c Circle) InnerRadius() float64 {
	if c.StrokeWidth <= 0 {
		return 0
	}
	return max(c.Radius-c.StrokeWidth, 0)
}

// Contains reports whether a point at distance d from the center lies on
// the painted part of the circle.
func (c Circle) Contains(d float64) bool {
	if c.Radius <= 0 {
		return false
	}
	return d <= c.Radius && d >= c.InnerRadius()
}
