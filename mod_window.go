package sculptor

import (
	"reflect"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
	defaultWindowTitle  = "3D Shape Sculptor"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

// PlatformWindowModule creates the single shared GLFW window and exposes it
// as a WindowState resource. Install is idempotent: an existing WindowState
// is reused so renderer and input modules can be installed in any order.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = defaultWindowWidth
	}
	if height <= 0 {
		height = defaultWindowHeight
	}
	if title == "" {
		title = defaultWindowTitle
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

func (m PlatformWindowModule) Install(app *App) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		return
	}

	app.AddResources(createWindowState(m.Width, m.Height, m.Title))
	app.UseSystem(
		System(windowCloseSystem).InStage(PostUpdate),
	)
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // wgpu owns the surface, not OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func windowCloseSystem(s *WindowState, input *Input, app *App) {
	if s.windowGlfw.ShouldClose() || input.JustPressed[KeyEscape] {
		app.Quit()
	}
}
