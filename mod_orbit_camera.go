package sculptor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraState is an orbit camera: yaw/pitch (degrees) and distance around a
// focus point. Only the orbit controller mutates it; the renderer reads the
// derived view transform every frame.
type CameraState struct {
	Yaw      float32
	Pitch    float32
	Distance float32
	Focus    mgl32.Vec3

	RotateSensitivity float32 // degrees per pixel of drag
	PanSensitivity    float32 // focus units per pixel, scaled by distance
	ZoomSensitivity   float32 // distance units per scroll step

	MinDistance float32
	MaxDistance float32
	MaxPitch    float32 // symmetric clamp, keeps the camera off the poles
}

// Orbit clamp and sensitivity defaults. Nothing outside the controller
// depends on the exact values, only on the clamping behavior.
const (
	defaultYaw      = 0.0
	defaultPitch    = 15.0
	defaultDistance = 40.0

	defaultRotateSensitivity = 0.25
	defaultPanSensitivity    = 0.0015
	defaultZoomSensitivity   = 2.5

	defaultMinDistance = 2.0
	defaultMaxDistance = 120.0
	defaultMaxPitch    = 89.0
)

func NewCameraState() *CameraState {
	return &CameraState{
		Yaw:               defaultYaw,
		Pitch:             defaultPitch,
		Distance:          defaultDistance,
		RotateSensitivity: defaultRotateSensitivity,
		PanSensitivity:    defaultPanSensitivity,
		ZoomSensitivity:   defaultZoomSensitivity,
		MinDistance:       defaultMinDistance,
		MaxDistance:       defaultMaxDistance,
		MaxPitch:          defaultMaxPitch,
	}
}

// direction is the unit vector from the focus point toward the camera.
func (c *CameraState) direction() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(pitch) * math32.Sin(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch) * math32.Cos(yaw),
	}
}

// Position derives the camera world position from the orbit parameters.
func (c *CameraState) Position() mgl32.Vec3 {
	return c.Focus.Add(c.direction().Mul(c.Distance))
}

// ViewMatrix is the look-at transform targeting the focus point.
func (c *CameraState) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Focus, mgl32.Vec3{0, 1, 0})
}

// Rotate applies a primary-button drag delta. Pitch is clamped inside
// (-MaxPitch, MaxPitch) so the view never flips over the poles.
func (c *CameraState) Rotate(dx, dy float32) {
	c.Yaw -= dx * c.RotateSensitivity
	c.Pitch += dy * c.RotateSensitivity

	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}
}

// Pan translates the focus point along the camera's right/up basis. The
// offset scales with distance so panning covers the same fraction of the
// screen at any zoom level.
func (c *CameraState) Pan(dx, dy float32) {
	dir := c.direction()
	forward := dir.Mul(-1)
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward).Normalize()

	scale := c.PanSensitivity * c.Distance
	c.Focus = c.Focus.Add(right.Mul(-dx * scale))
	c.Focus = c.Focus.Add(up.Mul(dy * scale))
}

// Zoom applies a scroll delta, keeping the distance inside
// [MinDistance, MaxDistance].
func (c *CameraState) Zoom(scroll float32) {
	c.Distance -= scroll * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// OrbitCameraModule installs the camera state and its drag/scroll
// controller. A non-nil Config overrides the baked-in sensitivities.
type OrbitCameraModule struct {
	Config *CameraConfig
}

func (m OrbitCameraModule) Install(app *App) {
	camera := NewCameraState()
	if m.Config != nil {
		camera.RotateSensitivity = m.Config.RotateSensitivity
		camera.PanSensitivity = m.Config.PanSensitivity
		camera.ZoomSensitivity = m.Config.ZoomSensitivity
		camera.MinDistance = m.Config.MinDistance
		camera.MaxDistance = m.Config.MaxDistance
		if camera.Distance < camera.MinDistance {
			camera.Distance = camera.MinDistance
		}
		if camera.Distance > camera.MaxDistance {
			camera.Distance = camera.MaxDistance
		}
	}
	app.AddResources(camera)
	app.UseSystem(
		System(orbitCameraControlSystem).InStage(Update),
	)
}

// orbitCameraControlSystem consumes the pointer/scroll deltas accumulated
// since last frame. Drags that started on the control panel belong to the
// panel and are ignored here.
func orbitCameraControlSystem(input *Input, camera *CameraState) {
	if input.PointerOverUi {
		return
	}

	if input.Pressed[MouseButtonLeft] {
		camera.Rotate(float32(input.MouseDeltaX), float32(input.MouseDeltaY))
	}
	if input.Pressed[MouseButtonRight] {
		camera.Pan(float32(input.MouseDeltaX), float32(input.MouseDeltaY))
	}
	if input.ScrollDelta != 0 {
		camera.Zoom(float32(input.ScrollDelta))
	}
}
