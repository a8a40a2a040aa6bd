// Package geom holds the small amount of 3-D vector math the assembler needs:
// polygon areas for floor-area derivation and the inset used to carve an
// opening out of its glazing-carrier surface.
package geom

import "math"

// Point is a vertex in model coordinates (meters).
type Point struct {
	X, Y, Z float64
}

// Loop is an ordered, implicitly closed vertex loop.
type Loop []Point

func (p Point) Add(q Point) Point               { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Point) Sub(q Point) Point               { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point) Scale(k float64) Point           { return Point{p.X * k, p.Y * k, p.Z * k} }
func (p Point) Length() float64                 { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }
func (p Point) Equal(q Point, tol float64) bool { return p.Sub(q).Length() <= tol }

// Unit returns p scaled to length one, or the zero vector when p has no length.
func (p Point) Unit() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Scale(1 / l)
}

// Centroid is the vertex average of the loop.
func (l Loop) Centroid() Point {
	if len(l) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range l {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(l)))
}

// Normal is the Newell normal of the loop. Its length is twice the area.
func (l Loop) Normal() Point {
	var n Point
	for i, cur := range l {
		next := l[(i+1)%len(l)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n
}

// Area is the planar area of the loop.
func (l Loop) Area() float64 {
	if len(l) < 3 {
		return 0
	}
	return l.Normal().Length() / 2
}

// Inset moves every vertex toward the loop centroid by distance. A vertex that
// sits on the centroid stays where it is.
func (l Loop) Inset(distance float64) Loop {
	c := l.Centroid()
	out := make(Loop, len(l))
	for i, p := range l {
		out[i] = p.Add(c.Sub(p).Unit().Scale(distance))
	}
	return out
}
