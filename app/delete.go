package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chime/report"
)

// deleteAction removes the alarms with the given ids. Unknown ids are
// ignored.
func (e *Env) deleteAction(ctx *cli.Context) error {
	ids := ctx.Args().Slice()
	if len(ids) == 0 {
		return errMissingID
	}

	s, err := e.Store()
	if err != nil {
		return err
	}

	for _, id := range ids {
		err = s.DeleteByID(id)
		if err != nil {
			return err
		}
	}

	report.AlarmsDeleted(ids)

	return nil
}
