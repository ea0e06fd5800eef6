package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chime/alarm"
	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/report"
)

// formInput fills the blanks of in with the creation form.
func formInput(in *alarm.Input) error {
	kinds := make([]huh.Option[string], len(models.Kinds))
	for i, k := range models.Kinds {
		kinds[i] = huh.NewOption(k, k)
	}

	sounds := make([]huh.Option[string], len(models.Sounds))
	for i, s := range models.Sounds {
		sounds[i] = huh.NewOption(s, s)
	}

	days := make([]huh.Option[string], len(models.Week))
	for i, d := range models.Week {
		days[i] = huh.NewOption(string(d), string(d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Alarm name").
				Value(&in.Name),
			huh.NewInput().
				Title("Repeat every (minutes)").
				Value(&in.IntervalRaw),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Type").
				Options(kinds...).
				Value(&in.Kind),
			huh.NewSelect[string]().
				Title("Sound").
				Options(sounds...).
				Value(&in.Sound),
			huh.NewMultiSelect[string]().
				Title("Repeat on").
				Options(days...).
				Value(&in.RepeatDays),
		),
	)

	return form.Run()
}

// addInput builds the creation form input from the flags, falling back to
// the configured defaults.
func (e *Env) addInput(ctx *cli.Context) alarm.Input {
	in := alarm.Input{
		Name:        ctx.String("name"),
		IntervalRaw: ctx.String("interval"),
		Kind:        ctx.String("type"),
		Sound:       ctx.String("sound"),
		RepeatDays:  ctx.StringSlice("repeat"),
	}

	if !ctx.IsSet("interval") {
		in.IntervalRaw = strconv.Itoa(e.Config.Alarm.Interval)
	}

	if in.Kind == "" {
		in.Kind = e.Config.Alarm.Kind
	}

	if in.Sound == "" {
		in.Sound = e.Config.Alarm.Sound
	}

	return in
}

// addAction handles the add command which validates and stores a new alarm.
// The interactive form is shown when no name is given on a terminal.
func (e *Env) addAction(ctx *cli.Context) error {
	in := e.addInput(ctx)

	if strings.TrimSpace(in.Name) == "" && e.Interactive() {
		if err := formInput(&in); err != nil {
			return err
		}
	}

	a, err := alarm.Validate(in)
	if err != nil {
		return err
	}

	s, err := e.Store()
	if err != nil {
		return err
	}

	err = s.Append(*a)
	if err != nil {
		return err
	}

	report.AlarmAdded(a)

	return nil
}
