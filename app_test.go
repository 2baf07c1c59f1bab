package sculptor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterResource struct {
	frames int
}

func TestAppAddResources(t *testing.T) {
	app := NewApp()

	counter := &counterResource{}
	app.AddResources(counter)

	stored, ok := app.resources[reflect.TypeOf(counterResource{})]
	require.True(t, ok, "resource should be registered under its element type")
	assert.Same(t, counter, stored)
}

func TestAppAddResourcesRejectsValue(t *testing.T) {
	app := NewApp()
	assert.Panics(t, func() {
		app.AddResources(counterResource{})
	})
}

func TestAppAddResourcesRejectsDuplicate(t *testing.T) {
	app := NewApp()
	app.AddResources(&counterResource{})
	assert.Panics(t, func() {
		app.AddResources(&counterResource{})
	})
}

func TestAppSystemInjection(t *testing.T) {
	app := NewApp()
	counter := &counterResource{}
	app.AddResources(counter)

	app.UseSystem(System(func(c *counterResource) {
		c.frames++
	}).InStage(Update))

	app.RunFrame()
	app.RunFrame()
	assert.Equal(t, 2, counter.frames)
}

func TestAppSystemInjectsApp(t *testing.T) {
	app := NewApp()
	var got *App
	app.UseSystem(System(func(a *App) {
		got = a
	}).InStage(PreUpdate))

	app.RunFrame()
	assert.Same(t, app, got)
}

func TestAppUnresolvableDependencyPanics(t *testing.T) {
	app := NewApp()
	app.UseSystem(System(func(c *counterResource) {}).InStage(Update))
	assert.Panics(t, func() {
		app.RunFrame()
	})
}

func TestAppStageOrder(t *testing.T) {
	app := NewApp()
	var order []string
	record := func(name string) systemScheduleBuilder {
		return System(func() {
			order = append(order, name)
		})
	}

	app.UseSystem(record("render").InStage(Render))
	app.UseSystem(record("pre").InStage(PreUpdate))
	app.UseSystem(record("post").InStage(PostUpdate))
	app.UseSystem(record("update").InStage(Update))

	app.RunFrame()
	assert.Equal(t, []string{"pre", "update", "post", "render"}, order)
}

func TestAppUnknownStagePanics(t *testing.T) {
	app := NewApp()
	assert.Panics(t, func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Bogus"}))
	})
}

func TestAppQuitStopsRun(t *testing.T) {
	app := NewApp()
	counter := &counterResource{}
	app.AddResources(counter)

	app.UseSystem(System(func(c *counterResource, a *App) {
		c.frames++
		if c.frames == 3 {
			a.Quit()
		}
	}).InStage(Update))

	app.Run()
	assert.Equal(t, 3, counter.frames)
}

type installRecorder struct {
	installed *bool
}

func (m installRecorder) Install(app *App) {
	*m.installed = true
}

func TestAppUseModules(t *testing.T) {
	app := NewApp()
	installed := false
	app.UseModules(installRecorder{installed: &installed})
	assert.True(t, installed)
}

func TestAppLoggerFallback(t *testing.T) {
	app := NewApp()
	require.NotNil(t, app.Logger())
	assert.False(t, app.Logger().DebugEnabled())

	logger := NewDefaultLogger("test", true)
	app.AddResources(logger)
	assert.True(t, app.Logger().DebugEnabled())
}
