package sculptor

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyA int = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

type InputModule struct{}

// Input is the per-frame snapshot of keyboard/pointer state. Deltas are
// relative to the previous frame; ScrollDelta accumulates scroll callback
// events between frames and is cleared after each poll.
type Input struct {
	Pressed      [64]bool
	JustPressed  [64]bool
	JustReleased [64]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	ScrollDelta              float64

	// PointerOverUi is set by the control panel when the pointer is over a
	// widget; the camera controller leaves those events to the panel.
	PointerOverUi bool

	WindowWidth, WindowHeight int

	scrollAccum   float64
	scrollHooked  bool
	haveLastMouse bool
}

func (mod InputModule) Install(app *App) {
	app.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input) {
	if !input.scrollHooked {
		s.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
			input.scrollAccum += yoff
		})
		input.scrollHooked = true
	}

	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)
		updateButton(input, key, action == glfw.Press)
	}

	mx, my := s.windowGlfw.GetCursorPos()
	if input.haveLastMouse {
		input.MouseDeltaX = mx - input.MouseX
		input.MouseDeltaY = my - input.MouseY
	}
	input.MouseX = mx
	input.MouseY = my
	input.haveLastMouse = true

	input.ScrollDelta = input.scrollAccum
	input.scrollAccum = 0

	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()
	s.WindowWidth, s.WindowHeight = input.WindowWidth, input.WindowHeight

	for btn := MouseButtonLeft; btn <= MouseButtonMiddle; btn++ {
		var glfwBtn glfw.MouseButton
		switch btn {
		case MouseButtonLeft:
			glfwBtn = glfw.MouseButtonLeft
		case MouseButtonRight:
			glfwBtn = glfw.MouseButtonRight
		case MouseButtonMiddle:
			glfwBtn = glfw.MouseButtonMiddle
		}
		action := s.windowGlfw.GetMouseButton(glfwBtn)
		updateButton(input, btn, action == glfw.Press)
	}
}

func updateButton(input *Input, key int, pressed bool) {
	input.JustPressed[key] = false
	input.JustReleased[key] = false

	if pressed {
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
		input.Pressed[key] = true
	} else {
		if input.Pressed[key] {
			input.JustReleased[key] = true
		}
		input.Pressed[key] = false
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeyA:      glfw.KeyA,
	KeyB:      glfw.KeyB,
	KeyC:      glfw.KeyC,
	KeyD:      glfw.KeyD,
	KeyE:      glfw.KeyE,
	KeyF:      glfw.KeyF,
	KeyG:      glfw.KeyG,
	KeyH:      glfw.KeyH,
	KeyI:      glfw.KeyI,
	KeyJ:      glfw.KeyJ,
	KeyK:      glfw.KeyK,
	KeyL:      glfw.KeyL,
	KeyM:      glfw.KeyM,
	KeyN:      glfw.KeyN,
	KeyO:      glfw.KeyO,
	KeyP:      glfw.KeyP,
	KeyQ:      glfw.KeyQ,
	KeyR:      glfw.KeyR,
	KeyS:      glfw.KeyS,
	KeyT:      glfw.KeyT,
	KeyU:      glfw.KeyU,
	KeyV:      glfw.KeyV,
	KeyW:      glfw.KeyW,
	KeyX:      glfw.KeyX,
	KeyY:      glfw.KeyY,
	KeyZ:      glfw.KeyZ,
	KeySpace:  glfw.KeySpace,
	KeyEnter:  glfw.KeyEnter,
	KeyEscape: glfw.KeyEscape,
	KeyTab:    glfw.KeyTab,
	KeyLeft:   glfw.KeyLeft,
	KeyRight:  glfw.KeyRight,
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
}
