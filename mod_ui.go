package sculptor

import (
	"fmt"
)

// UiFrame is the overlay text rebuilt every frame, consumed by the renderer.
type UiFrame struct {
	Text  *TextRenderer
	Items []TextItem
}

type UiState struct {
	status    string
	statusTtl float64
}

func (st *UiState) SetStatus(msg string) {
	st.status = msg
	st.statusTtl = 3.0
}

// UiModule draws the control panel: shape selector, dimension steppers and
// the OBJ export button. Install it before RendererModule so the renderer
// finds the glyph atlas.
type UiModule struct {
	FontSize float64
}

func (m UiModule) Install(app *App) {
	fontSize := m.FontSize
	if fontSize <= 0 {
		fontSize = 18
	}
	tr, err := NewTextRenderer(fontSize)
	if err != nil {
		panic(err)
	}

	app.AddResources(tr, &UiFrame{Text: tr}, &UiState{})

	logger := app.Logger()
	app.UseSystem(
		System(func(ui *UiFrame, st *UiState, input *Input, scene *SceneState, time *Time) {
			uiPanelSystem(ui, st, input, scene, time, logger)
		}).InStage(Update),
	)
}

const (
	uiPanelX     = 14.0
	uiPanelY     = 14.0
	uiPanelWidth = 250.0
	uiRowGap     = 1.45
)

var (
	uiTextColor      = [4]float32{1, 1, 1, 1}
	uiHighlightColor = [4]float32{1, 1, 0, 1}
	uiAccentColor    = VoxelColor
	uiHintColor      = [4]float32{0.6, 0.6, 0.6, 1}
)

// uiLayout lays rows top to bottom and hit-tests inline widgets as they are
// emitted.
type uiLayout struct {
	frame *UiFrame
	input *Input
	y     float32
	maxY  float32
}

func (l *uiLayout) lineHeight() float32 {
	return l.frame.Text.GetLineHeight(1)
}

func (l *uiLayout) emit(text string, x float32, color [4]float32) {
	l.frame.Items = append(l.frame.Items, TextItem{
		Text:     text,
		Position: [2]float32{x, l.y},
		Scale:    1,
		Color:    color,
	})
}

// widget emits a clickable label and reports a left click inside its box.
func (l *uiLayout) widget(label string, x float32) bool {
	w, h := l.frame.Text.MeasureText(label, 1)
	hover := l.input.MouseX >= float64(x) && l.input.MouseX <= float64(x+w) &&
		l.input.MouseY >= float64(l.y) && l.input.MouseY <= float64(l.y+h)

	color := uiTextColor
	if hover {
		color = uiHighlightColor
	}
	l.emit(label, x, color)

	return hover && l.input.JustPressed[MouseButtonLeft]
}

func (l *uiLayout) nextRow() {
	l.y += l.lineHeight() * uiRowGap
	if l.y > l.maxY {
		l.maxY = l.y
	}
}

func uiPanelSystem(ui *UiFrame, st *UiState, input *Input, scene *SceneState, time *Time, logger Logger) {
	ui.Items = ui.Items[:0]
	if input.WindowWidth == 0 {
		return
	}

	l := &uiLayout{frame: ui, input: input, y: uiPanelY, maxY: uiPanelY}

	l.emit("Shape Sculptor", uiPanelX, uiAccentColor)
	l.nextRow()

	// shape selector: "< Sphere >"
	if l.widget("<", uiPanelX) {
		scene.SetKind(scene.Kind.Prev())
	}
	l.emit(scene.Kind.String(), uiPanelX+24, uiTextColor)
	if l.widget(">", uiPanelX+150) {
		scene.SetKind(scene.Kind.Next())
	}
	l.nextRow()

	dimensionRow(l, "Width", scene.Dims.Width, scene.SetWidth)
	dimensionRow(l, "Depth", scene.Dims.Depth, scene.SetDepth)
	dimensionRow(l, "Height", scene.Dims.Height, scene.SetHeight)

	if l.widget("[ Export OBJ ]", uiPanelX) || input.JustPressed[KeyE] {
		exportScene(scene, st, logger)
	}
	l.nextRow()

	l.emit("Tab: next shape  E: export", uiPanelX, uiHintColor)
	l.nextRow()

	if st.statusTtl > 0 {
		st.statusTtl -= time.Dt
		l.emit(st.status, uiPanelX, uiAccentColor)
		l.nextRow()
	}

	if input.JustPressed[KeyTab] {
		scene.SetKind(scene.Kind.Next())
	}

	input.PointerOverUi = input.MouseX >= 0 && input.MouseX <= uiPanelWidth+uiPanelX &&
		input.MouseY >= 0 && input.MouseY <= float64(l.maxY+l.lineHeight())
}

func dimensionRow(l *uiLayout, name string, value int, set func(int) bool) {
	l.emit(name, uiPanelX, uiTextColor)
	if l.widget("[-]", uiPanelX+84) {
		set(value - 1)
	}
	l.emit(fmt.Sprintf("%2d", value), uiPanelX+120, uiTextColor)
	if l.widget("[+]", uiPanelX+152) {
		set(value + 1)
	}
	l.nextRow()
}

func exportScene(scene *SceneState, st *UiState, logger Logger) {
	name := fmt.Sprintf("%s_%dx%dx%d", scene.Kind, scene.Dims.Width, scene.Dims.Depth, scene.Dims.Height)
	if err := ExportOBJFile(DefaultExportPath, &scene.Mesh, name); err != nil {
		logger.Errorf("export failed: %v", err)
		st.SetStatus("Export failed")
		return
	}
	logger.Infof("exported %s to %s", name, DefaultExportPath)
	st.SetStatus("Saved " + DefaultExportPath)
}
