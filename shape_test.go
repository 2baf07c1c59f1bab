package sculptor

import (
	"testing"
)

func TestClampDimension(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, MinDimension},
		{0, MinDimension},
		{1, 1},
		{16, 16},
		{32, 32},
		{33, MaxDimension},
		{1000, MaxDimension},
	}
	for _, c := range cases {
		if got := clampDimension(c.in); got != c.want {
			t.Errorf("clampDimension(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDimensionsClamped(t *testing.T) {
	d := Dimensions{Width: 0, Depth: 40, Height: 8}.Clamped()
	if d.Width != MinDimension || d.Depth != MaxDimension || d.Height != 8 {
		t.Errorf("unexpected clamped dimensions: %+v", d)
	}
	if d.CellCount() != MinDimension*MaxDimension*8 {
		t.Errorf("CellCount = %d", d.CellCount())
	}
}

func TestShapeKindCycle(t *testing.T) {
	kinds := ShapeKinds()
	if len(kinds) != int(shapeKindCount) {
		t.Fatalf("ShapeKinds returned %d kinds", len(kinds))
	}

	k := ShapeCube
	seen := map[ShapeKind]bool{}
	for i := 0; i < len(kinds); i++ {
		if seen[k] {
			t.Fatalf("kind %v repeated before full cycle", k)
		}
		seen[k] = true
		k = k.Next()
	}
	if k != ShapeCube {
		t.Errorf("Next cycle did not return to start, got %v", k)
	}

	if ShapeCube.Prev() != ShapeSquarePyramid {
		t.Errorf("Prev from first kind should wrap, got %v", ShapeCube.Prev())
	}
	for _, kind := range kinds {
		if kind.Next().Prev() != kind {
			t.Errorf("Next/Prev not inverse for %v", kind)
		}
	}
}

func TestParseShapeKind(t *testing.T) {
	for _, kind := range ShapeKinds() {
		got, ok := ParseShapeKind(kind.String())
		if !ok || got != kind {
			t.Errorf("ParseShapeKind(%q) = %v, %v", kind.String(), got, ok)
		}
	}
	if _, ok := ParseShapeKind("Dodecahedron"); ok {
		t.Error("ParseShapeKind accepted an unknown label")
	}
}

func TestSolidCubeFillsEverything(t *testing.T) {
	dims := Dimensions{Width: 5, Depth: 3, Height: 7}
	for y := 0; y < dims.Height; y++ {
		for z := 0; z < dims.Depth; z++ {
			for x := 0; x < dims.Width; x++ {
				if !Solid(ShapeCube, dims, x, y, z) {
					t.Fatalf("cube has hole at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}

func TestSolidSphereCenterAndCorners(t *testing.T) {
	dims := Dimensions{Width: 9, Depth: 9, Height: 9}
	if !Solid(ShapeSphere, dims, 4, 4, 4) {
		t.Error("sphere center cell should be solid")
	}
	for _, c := range [][3]int{{0, 0, 0}, {8, 0, 0}, {0, 8, 8}, {8, 8, 8}} {
		if Solid(ShapeSphere, dims, c[0], c[1], c[2]) {
			t.Errorf("sphere corner cell %v should be empty", c)
		}
	}
}

func TestSolidMinimumSizeIsNeverEmpty(t *testing.T) {
	dims := Dimensions{Width: 1, Depth: 1, Height: 1}
	for _, kind := range ShapeKinds() {
		if !Solid(kind, dims, 0, 0, 0) {
			t.Errorf("%v at 1x1x1 has no solid cell", kind)
		}
	}
}

// cross sections of tapering shapes must shrink monotonically with height
func TestSolidTaperedShapesShrinkUpward(t *testing.T) {
	dims := Dimensions{Width: 16, Depth: 16, Height: 16}
	for _, kind := range []ShapeKind{ShapeCone, ShapeSquarePyramid} {
		for y := 0; y+1 < dims.Height; y++ {
			for z := 0; z < dims.Depth; z++ {
				for x := 0; x < dims.Width; x++ {
					if Solid(kind, dims, x, y+1, z) && !Solid(kind, dims, x, y, z) {
						t.Fatalf("%v grows upward at (%d,%d,%d)", kind, x, y, z)
					}
				}
			}
		}
	}
}

func TestSolidCylinderIsHeightInvariant(t *testing.T) {
	dims := Dimensions{Width: 10, Depth: 12, Height: 6}
	for z := 0; z < dims.Depth; z++ {
		for x := 0; x < dims.Width; x++ {
			base := Solid(ShapeCylinder, dims, x, 0, z)
			for y := 1; y < dims.Height; y++ {
				if Solid(ShapeCylinder, dims, x, y, z) != base {
					t.Fatalf("cylinder cross section varies with height at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}
