package simplex

import "math"

// Coordinate remappers: these wrap surfaces onto a higher-dimensional noise
// field so the output tiles seamlessly along the wrapped axes. They are
// conveniences over the Scaled methods and carry no state of their own.

// Cylindrical2D maps (x, y) onto a cylinder whose circumference is c along
// the x axis and evaluates Scaled3D on its surface, so the field repeats
// seamlessly with period c in x.
func (n *Noise) Cylindrical2D(c, x, y float64) float64 {
	nx := x / c
	r := c / (2.0 * math.Pi)
	rdx := nx * 2.0 * math.Pi
	a := r * math.Sin(rdx)
	b := r * math.Cos(rdx)
	return n.Scaled3D(a, b, y)
}

// Cylindrical3D maps (x, y, z) onto a cylinder of circumference c along the
// x axis and evaluates Scaled4D on its surface.
func (n *Noise) Cylindrical3D(c, x, y, z float64) float64 {
	nx := x / c
	r := c / (2.0 * math.Pi)
	rdx := nx * 2.0 * math.Pi
	a := r * math.Sin(rdx)
	b := r * math.Cos(rdx)
	return n.Scaled4D(a, b, y, z)
}

// Spherical2D treats (x, y) as longitude/latitude on a sphere of
// circumference c and evaluates Scaled3D on its surface, wrapping seamlessly
// in both directions.
func (n *Noise) Spherical2D(c, x, y float64) float64 {
	nx := x / c
	ny := y / c
	r := c / (2.0 * math.Pi)
	rdx := nx * 2.0 * math.Pi
	rdy := ny * math.Pi
	sinY := math.Sin(rdy + math.Pi)
	a := r * math.Sin(rdx) * sinY
	b := r * math.Cos(rdx) * sinY
	d := r * math.Cos(rdy)
	return n.Scaled3D(a, b, d)
}

// Spherical3D is Spherical2D with a free z axis, evaluated through Scaled4D.
func (n *Noise) Spherical3D(c, x, y, z float64) float64 {
	nx := x / c
	ny := y / c
	r := c / (2.0 * math.Pi)
	rdx := nx * 2.0 * math.Pi
	rdy := ny * math.Pi
	sinY := math.Sin(rdy + math.Pi)
	a := r * math.Sin(rdx) * sinY
	b := r * math.Cos(rdx) * sinY
	d := r * math.Cos(rdy)
	return n.Scaled4D(a, b, d, z)
}
