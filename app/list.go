package app

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chime/internal/config"
	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/internal/timeutil"
	"github.com/ayoisaiah/chime/internal/ui"
	"github.com/ayoisaiah/chime/report"
)

// sortAlarms orders alarms in place. Names are compared in natural order so
// that "Workout 2" comes before "Workout 10".
func sortAlarms(alarms []models.Alarm, by string) error {
	switch strings.ToLower(by) {
	case "":
	case "name":
		sort.SliceStable(alarms, func(i, j int) bool {
			return natural.Less(
				strings.ToLower(alarms[i].Name),
				strings.ToLower(alarms[j].Name),
			)
		})
	case "interval":
		sort.SliceStable(alarms, func(i, j int) bool {
			return alarms[i].IntervalMinutes < alarms[j].IntervalMinutes
		})
	default:
		return errUnknownSort.Fmt(by)
	}

	return nil
}

func soundText(a *models.Alarm) string {
	if a.AudioURI != "" {
		return ui.Magenta("recording")
	}

	return a.Sound
}

// printAlarmsTable prints an alarm table to w.
func printAlarmsTable(w io.Writer, alarms []models.Alarm) {
	tableBody := make([][]string, len(alarms))

	for i := range alarms {
		a := &alarms[i]

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			a.ID,
			ui.Highlight(a.Name),
			ui.Cyan(a.Kind),
			ui.Green(timeutil.HumanizeMinutes(a.IntervalMinutes)),
			soundText(a),
			models.JoinWeekdays(a.RepeatDays),
		}
	}

	tableBody = append([][]string{
		{"#", "ID", "NAME", "TYPE", "EVERY", "SOUND", "REPEAT"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listAction handles the list command and prints every stored alarm.
func (e *Env) listAction(ctx *cli.Context) error {
	s, err := e.Store()
	if err != nil {
		return err
	}

	alarms, err := s.LoadAll()
	if err != nil {
		return err
	}

	err = sortAlarms(alarms, ctx.String("sort"))
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(alarms)
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if len(alarms) == 0 {
		report.NoAlarms()
		return nil
	}

	printAlarmsTable(config.Stdout, alarms)

	return nil
}

// showAction prints the details of a single alarm.
func (e *Env) showAction(ctx *cli.Context) error {
	a, err := e.findAlarm(ctx.Args().First())
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	data := [][]string{
		{"FIELD", "VALUE"},
		{"ID", a.ID},
		{"Name", a.Name},
		{"Type", a.Kind},
		{"Every", timeutil.HumanizeMinutes(a.IntervalMinutes)},
		{"Sound", a.Sound},
		{"Repeat", models.JoinWeekdays(a.RepeatDays)},
	}

	if a.AudioURI != "" {
		data = append(data, []string{"Recording", a.AudioURI})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

func (e *Env) findAlarm(id string) (*models.Alarm, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errMissingID
	}

	s, err := e.Store()
	if err != nil {
		return nil, err
	}

	a, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if a == nil {
		return nil, errAlarmNotFound.Fmt(id)
	}

	return a, nil
}
