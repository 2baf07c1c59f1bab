package sculptor

import (
	"reflect"
	"testing"

	"github.com/chewxy/math32"
)

func buildFor(t *testing.T, kind ShapeKind, w, d, h int) SurfaceMesh {
	t.Helper()
	grid := GenerateGrid(kind, Dimensions{Width: w, Depth: d, Height: h})
	return BuildMesh(&grid)
}

func TestBuildMeshSingleCell(t *testing.T) {
	mesh := buildFor(t, ShapeCube, 1, 1, 1)
	if len(mesh.Vertices) != 24 {
		t.Errorf("vertex count = %d, want 24", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 36 {
		t.Errorf("index count = %d, want 36", len(mesh.Indices))
	}
	if mesh.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", mesh.TriangleCount())
	}
}

// Two touching solid cells share an interior face that must not be emitted.
func TestBuildMeshCullsInteriorFaces(t *testing.T) {
	mesh := buildFor(t, ShapeCube, 2, 1, 1)
	// 2 cells have 12 faces in total; the 2 touching ones are culled.
	if got := len(mesh.Vertices) / 4; got != 10 {
		t.Errorf("face count = %d, want 10", got)
	}
}

func TestBuildMeshSolidBlockSurfaceOnly(t *testing.T) {
	mesh := buildFor(t, ShapeCube, 4, 4, 4)
	// only boundary faces survive: 6 sides of 4x4 quads
	if got := len(mesh.Vertices) / 4; got != 6*16 {
		t.Errorf("face count = %d, want %d", got, 6*16)
	}
}

func TestBuildMeshDeterministic(t *testing.T) {
	a := buildFor(t, ShapeSphere, 9, 9, 9)
	b := buildFor(t, ShapeSphere, 9, 9, 9)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical parameters produced different meshes")
	}
}

func TestBuildMeshIndicesInRange(t *testing.T) {
	mesh := buildFor(t, ShapeCone, 12, 12, 15)
	if len(mesh.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(mesh.Indices))
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(mesh.Vertices))
		}
	}
}

func TestBuildMeshNormalsAreUnitAxisAligned(t *testing.T) {
	mesh := buildFor(t, ShapeCylinder, 6, 6, 4)
	for i, v := range mesh.Vertices {
		sum := float32(0)
		nonZero := 0
		for _, n := range v.Normal {
			sum += n * n
			if n != 0 {
				nonZero++
			}
		}
		if math32.Abs(sum-1) > 1e-6 || nonZero != 1 {
			t.Fatalf("vertex %d has non axis-aligned normal %v", i, v.Normal)
		}
	}
}

func TestBuildMeshCenteredOnOrigin(t *testing.T) {
	mesh := buildFor(t, ShapeCube, 8, 6, 4)
	var minV, maxV [3]float32
	for i := range minV {
		minV[i] = math32.Inf(1)
		maxV[i] = math32.Inf(-1)
	}
	for _, v := range mesh.Vertices {
		for i := 0; i < 3; i++ {
			if v.Position[i] < minV[i] {
				minV[i] = v.Position[i]
			}
			if v.Position[i] > maxV[i] {
				maxV[i] = v.Position[i]
			}
		}
	}
	for i := 0; i < 3; i++ {
		if math32.Abs(minV[i]+maxV[i]) > 1e-5 {
			t.Errorf("axis %d not centered: min %g max %g", i, minV[i], maxV[i])
		}
	}
}

func TestBuildMeshColor(t *testing.T) {
	mesh := buildFor(t, ShapeCube, 1, 1, 1)
	if mesh.Color != VoxelColor {
		t.Errorf("mesh color = %v, want %v", mesh.Color, VoxelColor)
	}
}

func TestBuildMeshEmptyGrid(t *testing.T) {
	grid := OccupancyGrid{Dims: Dimensions{Width: 2, Depth: 2, Height: 2}.Clamped()}
	grid = GenerateGrid(ShapeCube, grid.Dims)
	for i := range grid.cells {
		grid.cells[i] = false
	}
	mesh := BuildMesh(&grid)
	if len(mesh.Vertices) != 0 || len(mesh.Indices) != 0 {
		t.Errorf("empty grid produced %d vertices", len(mesh.Vertices))
	}
}
