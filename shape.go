package sculptor

import (
	"github.com/chewxy/math32"
)

// ShapeKind selects the occupancy predicate used to fill the voxel grid.
type ShapeKind int

const (
	ShapeCube ShapeKind = iota
	ShapeSphere
	ShapeCylinder
	ShapeCone
	ShapeSquarePyramid

	shapeKindCount
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCube:
		return "Cube"
	case ShapeSphere:
		return "Sphere"
	case ShapeCylinder:
		return "Cylinder"
	case ShapeCone:
		return "Cone"
	case ShapeSquarePyramid:
		return "Square Pyramid"
	}
	return "Unknown"
}

// Next cycles through the shape kinds in declaration order.
func (k ShapeKind) Next() ShapeKind {
	return (k + 1) % shapeKindCount
}

func (k ShapeKind) Prev() ShapeKind {
	return (k + shapeKindCount - 1) % shapeKindCount
}

// ShapeKinds lists every selectable kind, in UI order.
func ShapeKinds() []ShapeKind {
	kinds := make([]ShapeKind, 0, shapeKindCount)
	for k := ShapeKind(0); k < shapeKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseShapeKind maps a config/UI label to its kind. Matching is by the
// String() form, case-sensitive.
func ParseShapeKind(s string) (ShapeKind, bool) {
	for _, k := range ShapeKinds() {
		if k.String() == s {
			return k, true
		}
	}
	return ShapeCube, false
}

const (
	MinDimension = 1
	MaxDimension = 32
)

// Dimensions is the integer extent of the voxel bounding box, each axis
// within [MinDimension, MaxDimension].
type Dimensions struct {
	Width  int
	Depth  int
	Height int
}

func (d Dimensions) Clamped() Dimensions {
	return Dimensions{
		Width:  clampDimension(d.Width),
		Depth:  clampDimension(d.Depth),
		Height: clampDimension(d.Height),
	}
}

func (d Dimensions) CellCount() int {
	return d.Width * d.Depth * d.Height
}

func clampDimension(v int) int {
	if v < MinDimension {
		return MinDimension
	}
	if v > MaxDimension {
		return MaxDimension
	}
	return v
}

// Solid reports whether the unit cell at grid coordinate (x, y, z) belongs to
// the shape. The cell center is normalized so that nx and nz span [-1, 1]
// across the box and ny spans [0, 1] from base to top; every predicate tests
// with an inclusive bound, so a 1-cell axis still lands inside the shape
// (center coordinate 0 resp. 0.5) and the grid is never empty.
func Solid(kind ShapeKind, dims Dimensions, x, y, z int) bool {
	nx := (float32(x)+0.5)/float32(dims.Width)*2 - 1
	nz := (float32(z)+0.5)/float32(dims.Depth)*2 - 1
	ny := (float32(y) + 0.5) / float32(dims.Height)

	switch kind {
	case ShapeCube:
		return true
	case ShapeSphere:
		dy := 2*ny - 1
		return nx*nx+nz*nz+dy*dy <= 1
	case ShapeCylinder:
		return nx*nx+nz*nz <= 1
	case ShapeCone:
		r := 1 - ny
		return nx*nx+nz*nz <= r*r
	case ShapeSquarePyramid:
		r := 1 - ny
		return math32.Abs(nx) <= r && math32.Abs(nz) <= r
	}
	return false
}
