package sculptor

import (
	"image"

	"github.com/google/uuid"
)

type AssetId string

type TextureFormat uint32

// Values match wgpu.TextureFormat so the GPU layer can cast directly.
const (
	TextureFormatR8Unorm    TextureFormat = 0x00000001
	TextureFormatRGBA8Unorm TextureFormat = 0x00000012
)

// AssetServer owns CPU-side copies of meshes and textures keyed by opaque
// ids. The renderer resolves ids into GPU resources and uses the id change
// itself as the re-upload signal.
type AssetServer struct {
	meshes   map[AssetId]MeshAsset
	textures map[AssetId]TextureAsset
}

type AssetServerModule struct{}

type MeshAsset struct {
	vertices []MeshVertex
	indices  []uint32
}

type TextureAsset struct {
	texels []uint8
	width  uint32
	height uint32
	format TextureFormat
}

func (server *AssetServer) LoadMesh(mesh *SurfaceMesh) AssetId {
	id := makeAssetId()
	server.meshes[id] = MeshAsset{
		vertices: mesh.Vertices,
		indices:  mesh.Indices,
	}
	return id
}

func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	asset, ok := server.meshes[id]
	return asset, ok
}

// DropMesh releases the CPU copy once the GPU buffers exist.
func (server *AssetServer) DropMesh(id AssetId) {
	delete(server.meshes, id)
}

func (server *AssetServer) CreateTexture(texels []uint8, texWidth uint32, texHeight uint32, format TextureFormat) AssetId {
	id := makeAssetId()
	server.textures[id] = TextureAsset{
		texels: texels,
		width:  texWidth,
		height: texHeight,
		format: format,
	}
	return id
}

// CreateAlphaTexture registers a glyph atlas as a single-channel texture.
func (server *AssetServer) CreateAlphaTexture(img *image.Alpha) AssetId {
	b := img.Bounds()
	return server.CreateTexture(img.Pix, uint32(b.Dx()), uint32(b.Dy()), TextureFormatR8Unorm)
}

func (server *AssetServer) Texture(id AssetId) (TextureAsset, bool) {
	asset, ok := server.textures[id]
	return asset, ok
}

func (AssetServerModule) Install(app *App) {
	app.AddResources(&AssetServer{
		meshes:   make(map[AssetId]MeshAsset),
		textures: make(map[AssetId]TextureAsset),
	})
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
