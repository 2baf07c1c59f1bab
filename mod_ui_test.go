package sculptor

import (
	"os"
	"testing"
)

func newTestUi(t *testing.T) (*UiFrame, *UiState, *Input, *SceneState, *Time) {
	t.Helper()
	tr, err := NewTextRenderer(18)
	if err != nil {
		t.Fatal(err)
	}
	scene, _ := newTestScene()
	input := &Input{WindowWidth: 1280, WindowHeight: 720}
	return &UiFrame{Text: tr}, &UiState{}, input, scene, &Time{Dt: 1.0 / 60.0}
}

func TestUiPanelEmitsWidgets(t *testing.T) {
	ui, st, input, scene, tm := newTestUi(t)
	uiPanelSystem(ui, st, input, scene, tm, NewNopLogger())

	if len(ui.Items) == 0 {
		t.Fatal("panel emitted no text")
	}

	labels := map[string]bool{}
	for _, item := range ui.Items {
		labels[item.Text] = true
	}
	for _, want := range []string{"Shape Sculptor", scene.Kind.String(), "Width", "Depth", "Height", "[ Export OBJ ]"} {
		if !labels[want] {
			t.Errorf("panel is missing %q", want)
		}
	}
}

func TestUiPanelPointerOverUi(t *testing.T) {
	ui, st, input, scene, tm := newTestUi(t)

	input.MouseX, input.MouseY = 20, 20
	uiPanelSystem(ui, st, input, scene, tm, NewNopLogger())
	if !input.PointerOverUi {
		t.Error("pointer inside the panel not flagged")
	}

	input.MouseX, input.MouseY = 900, 500
	uiPanelSystem(ui, st, input, scene, tm, NewNopLogger())
	if input.PointerOverUi {
		t.Error("pointer far from the panel flagged as over UI")
	}
}

func TestUiPanelTabCyclesShape(t *testing.T) {
	ui, st, input, scene, tm := newTestUi(t)
	before := scene.Kind

	input.JustPressed[KeyTab] = true
	uiPanelSystem(ui, st, input, scene, tm, NewNopLogger())
	if scene.Kind != before.Next() {
		t.Errorf("Tab changed kind to %v, want %v", scene.Kind, before.Next())
	}
}

func TestUiPanelExportKey(t *testing.T) {
	t.Chdir(t.TempDir())

	ui, st, input, scene, tm := newTestUi(t)
	input.JustPressed[KeyE] = true
	uiPanelSystem(ui, st, input, scene, tm, NewNopLogger())

	if _, err := os.Stat(DefaultExportPath); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if st.status == "" || st.statusTtl <= 0 {
		t.Error("export did not set a status line")
	}
}
