package app

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chime/alarm"
	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/timer"
)

const customTimerName = "Custom timer"

// startAction opens the countdown of a stored alarm. The countdown reloads
// after every alarm until the user quits.
func (e *Env) startAction(ctx *cli.Context) error {
	a, err := e.findAlarm(ctx.Args().First())
	if err != nil {
		return err
	}

	return e.RunCountdown(ctx.Context, timer.Options{
		Alarm:        a,
		TotalSeconds: a.IntervalSeconds(),
		Repeat:       true,
	})
}

// timerAction runs a one-off countdown of the given hours and minutes.
func (e *Env) timerAction(ctx *cli.Context) error {
	var (
		total int
		err   error
	)

	if ctx.IsSet("in") {
		total, err = alarm.ParseRelative(ctx.String("in"), time.Now())
	} else {
		total, err = alarm.ValidateCustom(
			ctx.String("hours"),
			ctx.String("minutes"),
		)
	}

	if err != nil {
		return err
	}

	sound := ctx.String("sound")
	if sound == "" {
		sound = e.Config.Alarm.Sound
	}

	name := ctx.String("name")
	if name == "" {
		name = customTimerName
	}

	return e.RunCountdown(ctx.Context, timer.Options{
		Alarm:        customAlarm(name, sound, total),
		TotalSeconds: total,
	})
}

// customAlarm builds the unsaved alarm shown by a one-off timer. Its interval
// is rounded up to whole minutes so that it is never zero.
func customAlarm(name, sound string, totalSeconds int) *models.Alarm {
	return &models.Alarm{
		ID:              "timer-" + alarm.NewID(),
		Name:            name,
		Kind:            models.DefaultKind,
		IntervalMinutes: max(1, (totalSeconds+59)/60),
		Sound:           sound,
		RepeatDays:      []models.Weekday{},
	}
}

// eventAction runs an event timer: an alarm every interval until the total
// has elapsed.
func (e *Env) eventAction(ctx *cli.Context) error {
	sound := ctx.String("sound")
	if sound == "" {
		sound = e.Config.Alarm.Sound
	}

	ev, err := alarm.ValidateEvent(alarm.EventInput{
		Name:        ctx.String("name"),
		TotalRaw:    ctx.String("total"),
		IntervalRaw: ctx.String("interval"),
		Sound:       sound,
	})
	if err != nil {
		return err
	}

	a := ev.Alarm()

	return e.RunCountdown(ctx.Context, timer.Options{
		Alarm:        a,
		TotalSeconds: a.IntervalSeconds(),
		Repeat:       true,
		MaxCycles:    ev.Cycles(),
	})
}
