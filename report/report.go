// Package report prints command outcomes to the terminal.
package report

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/chime/internal/models"
)

func AlarmAdded(a *models.Alarm) {
	pterm.Success.Printfln("alarm %q added (%s)", a.Name, a.ID)
}

func AlarmsDeleted(ids []string) {
	pterm.Info.Printfln("deleted: %s", strings.Join(ids, ", "))
}

func NoAlarms() {
	pterm.Info.Println("no alarms yet, create one with `chime add`")
}

func Error(err error) {
	pterm.Error.Println(err)
}
