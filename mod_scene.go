package sculptor

import "reflect"

// SceneState owns the current shape parameters and the displayed surface
// mesh. Parameter setters only mark the state dirty; the scene system
// rebuilds grid and mesh once per frame at most and swaps the mesh in
// atomically, so a frame never observes a half-built surface.
type SceneState struct {
	Kind ShapeKind
	Dims Dimensions

	// Mesh is the currently displayed geometry. Version advances on every
	// swap; the renderer re-uploads its GPU buffers when it sees a version
	// it has not uploaded yet. MeshId is the asset handle of the same
	// geometry when an AssetServer is installed.
	Mesh    SurfaceMesh
	MeshId  AssetId
	Version uint

	dirty bool
}

// SetKind selects the shape predicate. Returns true if the value changed.
func (s *SceneState) SetKind(kind ShapeKind) bool {
	if kind < 0 || kind >= shapeKindCount || kind == s.Kind {
		return false
	}
	s.Kind = kind
	s.dirty = true
	return true
}

// SetWidth clamps to [MinDimension, MaxDimension]. Returns true on change.
func (s *SceneState) SetWidth(v int) bool {
	return s.setDim(&s.Dims.Width, v)
}

func (s *SceneState) SetDepth(v int) bool {
	return s.setDim(&s.Dims.Depth, v)
}

func (s *SceneState) SetHeight(v int) bool {
	return s.setDim(&s.Dims.Height, v)
}

func (s *SceneState) setDim(dst *int, v int) bool {
	v = clampDimension(v)
	if v == *dst {
		return false
	}
	*dst = v
	s.dirty = true
	return true
}

// SceneModule installs the scene state with the given startup parameters and
// schedules regeneration. The first frame builds the initial mesh.
type SceneModule struct {
	Kind ShapeKind
	Dims Dimensions
}

func (m SceneModule) Install(app *App) {
	if _, ok := app.resources[reflect.TypeOf(AssetServer{})]; !ok {
		AssetServerModule{}.Install(app)
	}
	app.AddResources(&SceneState{
		Kind:  m.Kind,
		Dims:  m.Dims.Clamped(),
		dirty: true,
	})

	logger := app.Logger()
	app.UseSystem(
		System(func(scene *SceneState, assets *AssetServer) {
			sceneRegenerateSystem(scene, assets, logger)
		}).InStage(Update),
	)
}

func sceneRegenerateSystem(scene *SceneState, assets *AssetServer, logger Logger) {
	if !scene.dirty {
		return
	}

	grid := GenerateGrid(scene.Kind, scene.Dims)
	mesh := BuildMesh(&grid)

	// Atomic swap: the old mesh is dropped wholesale, never mixed with the
	// new one.
	scene.Mesh = mesh
	if assets != nil {
		if scene.MeshId != "" {
			assets.DropMesh(scene.MeshId)
		}
		scene.MeshId = assets.LoadMesh(&scene.Mesh)
	}
	scene.Version++
	scene.dirty = false

	logger.Debugf("regenerated %s %dx%dx%d: %d solid cells, %d triangles",
		scene.Kind, scene.Dims.Width, scene.Dims.Depth, scene.Dims.Height,
		grid.SolidCount(), mesh.TriangleCount())
}
