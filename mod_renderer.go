package sculptor

import (
	"reflect"

	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/DavidHavoc/3D-pixel-shape-Sculptor/shaders"
)

// Fixed lighting: one directional light plus a flat ambient term.
var lightDirection = mgl32.Vec3{15, 20, 10}.Normalize()

const (
	ambientStrength = 0.8
	cameraFovYDeg   = 45.0
	cameraNear      = 0.1
	cameraFar       = 500.0
)

type sceneUniforms struct {
	ViewProj mgl32.Mat4
	LightDir mgl32.Vec4
	Color    mgl32.Vec4
	// x = ambient strength, yzw unused
	Params mgl32.Vec4
}

type rendererState struct {
	gpu *GpuState

	meshPipeline     *wgpu.RenderPipeline
	depthView        *wgpu.TextureView
	uniformBuffer    *wgpu.Buffer
	uniformBindGroup *wgpu.BindGroup

	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
	indexCount     uint32
	uploadedMeshId AssetId
	meshUploaded   bool

	textPipeline     *wgpu.RenderPipeline
	textBindGroup    *wgpu.BindGroup
	textVertexBuffer *wgpu.Buffer
	textVertexCap    int
	textVertexCount  uint32
}

// RendererModule draws the sculpted mesh and the text overlay with wgpu.
// Requires PlatformWindowModule; the text pass is skipped when no
// TextRenderer resource is installed.
type RendererModule struct{}

func (RendererModule) Install(app *App) {
	winRes, ok := app.resources[reflect.TypeOf(WindowState{})]
	if !ok {
		panic("RendererModule requires PlatformWindowModule")
	}
	windowState := winRes.(*WindowState)

	gpu := createGpuState(windowState)
	rs := &rendererState{gpu: gpu}

	rs.meshPipeline = createRenderPipeline("Voxel Pipeline", shaders.VoxelWGSL, MeshVertex{}, gpu, pipelineOptions{
		depthTest: true,
		cullMode:  wgpu.CullModeBack,
	})
	rs.depthView = createDepthTexture(gpu)

	rs.uniformBuffer = createBuffer("Scene Uniforms", sceneUniforms{}, gpu,
		wgpu.BufferUsageUniform|wgpu.BufferUsageCopyDst)
	rs.uniformBindGroup = createUniformBindGroup(rs.meshPipeline, rs.uniformBuffer, gpu)

	if trRes, ok := app.resources[reflect.TypeOf(TextRenderer{})]; ok {
		tr := trRes.(*TextRenderer)
		rs.installTextPass(tr, gpu)
	}

	app.AddResources(rs)
	app.UseSystem(
		System(meshUploadSystem).InStage(Render),
	)
	app.UseSystem(
		System(renderFrameSystem).InStage(Render),
	)
}

func (rs *rendererState) installTextPass(tr *TextRenderer, gpu *GpuState) {
	rs.textPipeline = createRenderPipeline("Text Pipeline", shaders.TextWGSL, TextVertex{}, gpu, pipelineOptions{
		blend: &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		},
		cullMode: wgpu.CullModeNone,
	})

	atlas := TextureAsset{
		texels: tr.AtlasImage.Pix,
		width:  uint32(tr.AtlasImage.Bounds().Dx()),
		height: uint32(tr.AtlasImage.Bounds().Dy()),
		format: TextureFormatR8Unorm,
	}
	atlasView := createTextureFromAsset(&atlas, gpu)

	sampler, err := gpu.device.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MaxAnisotropy: 1,
	})
	if err != nil {
		panic(err)
	}

	layout := rs.textPipeline.GetBindGroupLayout(0)
	defer layout.Release()
	bindGroup, err := gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: atlasView, Size: wgpu.WholeSize},
			{Binding: 1, Sampler: sampler, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	rs.textBindGroup = bindGroup
}

func createUniformBindGroup(pipeline *wgpu.RenderPipeline, buffer *wgpu.Buffer, gpu *GpuState) *wgpu.BindGroup {
	layout := pipeline.GetBindGroupLayout(0)
	defer layout.Release()

	bindGroup, err := gpu.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: buffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}
	return bindGroup
}

// meshUploadSystem re-creates the vertex and index buffers whenever the
// scene has swapped in a new mesh. The asset id doubles as the dirty flag.
func meshUploadSystem(rs *rendererState, scene *SceneState, assets *AssetServer) {
	if rs.meshUploaded && scene.MeshId == rs.uploadedMeshId {
		return
	}

	if rs.vertexBuffer != nil {
		rs.vertexBuffer.Release()
		rs.vertexBuffer = nil
	}
	if rs.indexBuffer != nil {
		rs.indexBuffer.Release()
		rs.indexBuffer = nil
	}
	rs.indexCount = 0
	rs.uploadedMeshId = scene.MeshId
	rs.meshUploaded = true

	vertices := scene.Mesh.Vertices
	indices := scene.Mesh.Indices
	if asset, ok := assets.Mesh(scene.MeshId); ok {
		vertices = asset.vertices
		indices = asset.indices
	}
	if len(indices) == 0 {
		return
	}

	rs.vertexBuffer, rs.indexBuffer = createVertexIndexBuffers(vertices, indices, rs.gpu.device)
	rs.indexCount = uint32(len(indices))
}

func renderFrameSystem(rs *rendererState, s *WindowState, scene *SceneState, camera *CameraState, ui *UiFrame) {
	gpu := rs.gpu

	if uint32(s.WindowWidth) != gpu.surfaceConfig.Width || uint32(s.WindowHeight) != gpu.surfaceConfig.Height {
		gpu.reconfigure(s.WindowWidth, s.WindowHeight)
		rs.depthView.Release()
		rs.depthView = createDepthTexture(gpu)
	}
	if gpu.surfaceConfig.Width == 0 || gpu.surfaceConfig.Height == 0 {
		return
	}

	aspect := float32(gpu.surfaceConfig.Width) / float32(gpu.surfaceConfig.Height)
	proj := mgl32.Perspective(mgl32.DegToRad(cameraFovYDeg), aspect, cameraNear, cameraFar)
	uniforms := sceneUniforms{
		ViewProj: proj.Mul4(camera.ViewMatrix()),
		LightDir: lightDirection.Vec4(0),
		Color:    mgl32.Vec4(scene.Mesh.Color),
		Params:   mgl32.Vec4{ambientStrength, 0, 0, 0},
	}
	if err := gpu.queue.WriteBuffer(rs.uniformBuffer, 0, toBufferBytes(uniforms)); err != nil {
		panic(err)
	}

	rs.uploadTextVertices(ui, s)

	nextTexture, err := gpu.surface.GetCurrentTexture()
	if err != nil {
		// swapchain lost, usually mid-resize; reconfigure and retry next frame
		gpu.reconfigure(s.WindowWidth, s.WindowHeight)
		return
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            rs.depthView,
			DepthClearValue: 1.0,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
		},
	})
	defer renderPass.Release()

	if rs.indexCount > 0 {
		renderPass.SetPipeline(rs.meshPipeline)
		renderPass.SetBindGroup(0, rs.uniformBindGroup, nil)
		renderPass.SetVertexBuffer(0, rs.vertexBuffer, 0, wgpu.WholeSize)
		renderPass.SetIndexBuffer(rs.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		renderPass.DrawIndexed(rs.indexCount, 1, 0, 0, 0)
	}

	if rs.textPipeline != nil && rs.textVertexCount > 0 {
		renderPass.SetPipeline(rs.textPipeline)
		renderPass.SetBindGroup(0, rs.textBindGroup, nil)
		renderPass.SetVertexBuffer(0, rs.textVertexBuffer, 0, wgpu.WholeSize)
		renderPass.Draw(rs.textVertexCount, 1, 0, 0)
	}

	if err := renderPass.End(); err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	gpu.queue.Submit(cmdBuffer)
	gpu.surface.Present()
}

func (rs *rendererState) uploadTextVertices(ui *UiFrame, s *WindowState) {
	rs.textVertexCount = 0
	if rs.textPipeline == nil || ui == nil || len(ui.Items) == 0 {
		return
	}
	vertices := ui.Text.BuildVertices(ui.Items, s.WindowWidth, s.WindowHeight)
	if len(vertices) == 0 {
		return
	}

	// grow-only vertex buffer, rewritten in place every frame
	if rs.textVertexBuffer == nil || len(vertices) > rs.textVertexCap {
		if rs.textVertexBuffer != nil {
			rs.textVertexBuffer.Release()
		}
		capacity := nextPow2(len(vertices))
		buffer, err := rs.gpu.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "Text Vertex Buffer",
			Size:  uint64(capacity) * uint64(reflect.TypeOf(TextVertex{}).Size()),
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			panic(err)
		}
		rs.textVertexBuffer = buffer
		rs.textVertexCap = capacity
	}

	if err := rs.gpu.queue.WriteBuffer(rs.textVertexBuffer, 0, wgpu.ToBytes(vertices)); err != nil {
		panic(err)
	}
	rs.textVertexCount = uint32(len(vertices))
}

func nextPow2(n int) int {
	return 1 << int(math32.Ceil(math32.Log2(float32(n))))
}
