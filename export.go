package sculptor

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const DefaultExportPath = "exported_shape.obj"

// WriteOBJ writes the mesh in Wavefront OBJ format. Each vertex carries a
// position and a normal; faces index both with the same 1-based index.
func WriteOBJ(w io.Writer, mesh *SurfaceMesh, name string) error {
	if mesh == nil {
		return fmt.Errorf("export: nil mesh")
	}
	if len(mesh.Indices)%3 != 0 {
		return fmt.Errorf("export: index count %d is not a multiple of 3", len(mesh.Indices))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", name)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(mesh.Vertices), len(mesh.Indices)/3)
	fmt.Fprintf(bw, "o %s\n", name)

	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Indices[i] + 1
		b := mesh.Indices[i+1] + 1
		c := mesh.Indices[i+2] + 1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}
	return bw.Flush()
}

// ExportOBJFile writes the mesh to path, replacing any previous export.
func ExportOBJFile(path string, mesh *SurfaceMesh, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := WriteOBJ(f, mesh, name); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
