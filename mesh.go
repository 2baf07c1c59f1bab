package sculptor

// MeshVertex is the GPU vertex layout for the voxel surface. The tags drive
// the wgpu vertex buffer layout reflection in the renderer.
type MeshVertex struct {
	Position [3]float32 `sculptor:"layout" format:"float3" location:"0"`
	Normal   [3]float32 `sculptor:"layout" format:"float3" location:"1"`
}

// SurfaceMesh is a triangle surface with flat per-face normals and one
// uniform color. Indices address Vertices in groups of three, wound CCW as
// seen from outside the solid so the renderer can cull back faces.
type SurfaceMesh struct {
	Vertices []MeshVertex
	Indices  []uint32
	Color    [4]float32
}

// VoxelColor is the single material color of the sculpted solid (#AC1754).
var VoxelColor = [4]float32{0xAC / 255.0, 0x17 / 255.0, 0x54 / 255.0, 1.0}

// faceDir describes one of the six cube face orientations: the outward
// normal, the neighbor offset used for the exposure test, and the four quad
// corners (unit cube corner offsets) in CCW order viewed from outside.
type faceDir struct {
	normal  [3]float32
	offset  [3]int
	corners [4][3]float32
}

var faceDirs = [6]faceDir{
	{ // +X
		normal:  [3]float32{1, 0, 0},
		offset:  [3]int{1, 0, 0},
		corners: [4][3]float32{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	},
	{ // -X
		normal:  [3]float32{-1, 0, 0},
		offset:  [3]int{-1, 0, 0},
		corners: [4][3]float32{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	},
	{ // +Y
		normal:  [3]float32{0, 1, 0},
		offset:  [3]int{0, 1, 0},
		corners: [4][3]float32{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	},
	{ // -Y
		normal:  [3]float32{0, -1, 0},
		offset:  [3]int{0, -1, 0},
		corners: [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	},
	{ // +Z
		normal:  [3]float32{0, 0, 1},
		offset:  [3]int{0, 0, 1},
		corners: [4][3]float32{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	},
	{ // -Z
		normal:  [3]float32{0, 0, -1},
		offset:  [3]int{0, 0, -1},
		corners: [4][3]float32{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
	},
}

// BuildMesh extracts the exposed surface of the occupancy grid: one quad (two
// triangles) per solid-cell face whose neighbor is empty or out of bounds.
// Faces between two solid cells are never emitted. Cell iteration is the same
// y->z->x order as grid generation and the face order is fixed, so identical
// grids always produce identical vertex and index sequences. The mesh is
// centered on the origin so the camera can orbit the grid center.
func BuildMesh(grid *OccupancyGrid) SurfaceMesh {
	dims := grid.Dims
	mesh := SurfaceMesh{Color: VoxelColor}

	// Exposed-face count is not known up front; reserve for the common case
	// of a mostly-convex solid instead of growing from nil.
	estimate := 2 * (dims.Width*dims.Depth + dims.Width*dims.Height + dims.Depth*dims.Height)
	mesh.Vertices = make([]MeshVertex, 0, estimate*4)
	mesh.Indices = make([]uint32, 0, estimate*6)

	half := [3]float32{
		float32(dims.Width) / 2,
		float32(dims.Height) / 2,
		float32(dims.Depth) / 2,
	}

	for y := 0; y < dims.Height; y++ {
		for z := 0; z < dims.Depth; z++ {
			for x := 0; x < dims.Width; x++ {
				if !grid.At(x, y, z) {
					continue
				}
				for _, dir := range faceDirs {
					nx := x + dir.offset[0]
					ny := y + dir.offset[1]
					nz := z + dir.offset[2]
					if grid.SolidAt(nx, ny, nz) {
						continue
					}

					base := uint32(len(mesh.Vertices))
					for _, corner := range dir.corners {
						mesh.Vertices = append(mesh.Vertices, MeshVertex{
							Position: [3]float32{
								float32(x) + corner[0] - half[0],
								float32(y) + corner[1] - half[1],
								float32(z) + corner[2] - half[2],
							},
							Normal: dir.normal,
						})
					}
					mesh.Indices = append(mesh.Indices,
						base, base+1, base+2,
						base, base+2, base+3,
					)
				}
			}
		}
	}

	return mesh
}

// TriangleCount is len(Indices)/3.
func (m *SurfaceMesh) TriangleCount() int {
	return len(m.Indices) / 3
}
