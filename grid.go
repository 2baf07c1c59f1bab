package sculptor

// OccupancyGrid marks which unit cells of the bounding box are solid. Cells
// live in one flat buffer indexed x + width*(z + depth*y); the grid is
// rebuilt wholesale on every parameter change, never patched.
type OccupancyGrid struct {
	Dims  Dimensions
	cells []bool
}

func (g *OccupancyGrid) index(x, y, z int) int {
	return x + g.Dims.Width*(z+g.Dims.Depth*y)
}

func (g *OccupancyGrid) At(x, y, z int) bool {
	return g.cells[g.index(x, y, z)]
}

// SolidAt is like At but treats out-of-bounds neighbors as empty, which is
// exactly the exposure rule the mesh builder needs at grid borders.
func (g *OccupancyGrid) SolidAt(x, y, z int) bool {
	if x < 0 || x >= g.Dims.Width ||
		y < 0 || y >= g.Dims.Height ||
		z < 0 || z >= g.Dims.Depth {
		return false
	}
	return g.cells[g.index(x, y, z)]
}

func (g *OccupancyGrid) CellCount() int {
	return len(g.cells)
}

func (g *OccupancyGrid) SolidCount() int {
	count := 0
	for _, solid := range g.cells {
		if solid {
			count++
		}
	}
	return count
}

// GenerateGrid evaluates the shape predicate once per cell of the bounding
// box. The backing buffer is sized up front; at the 32^3 bound that is at
// most 32768 evaluations, cheap enough to run inline on every change.
func GenerateGrid(kind ShapeKind, dims Dimensions) OccupancyGrid {
	dims = dims.Clamped()
	grid := OccupancyGrid{
		Dims:  dims,
		cells: make([]bool, dims.CellCount()),
	}

	i := 0
	for y := 0; y < dims.Height; y++ {
		for z := 0; z < dims.Depth; z++ {
			for x := 0; x < dims.Width; x++ {
				grid.cells[i] = Solid(kind, dims, x, y, z)
				i++
			}
		}
	}
	return grid
}
