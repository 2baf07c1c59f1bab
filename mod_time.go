package sculptor

import (
	"time"
)

// Time tracks wall-clock frame timing. Dt is the duration of the previous
// frame in seconds.
type Time struct {
	Now time.Time
	Dt  float64
}

type TimeModule struct{}

func (mod TimeModule) Install(app *App) {
	app.AddResources(&Time{Now: time.Now()})
	app.UseSystem(
		System(timeSystem).InStage(PreUpdate),
	)
}

func timeSystem(timeResource *Time) {
	now := time.Now()
	timeResource.Dt = now.Sub(timeResource.Now).Seconds()
	timeResource.Now = now
}
