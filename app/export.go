package app

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chime/export"
	"github.com/ayoisaiah/chime/internal/config"
)

func writesToTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// exportAction writes every stored alarm in the requested format.
func (e *Env) exportAction(ctx *cli.Context) (err error) {
	format, err := export.ParseFormat(ctx.String("format"))
	if err != nil {
		return err
	}

	s, err := e.Store()
	if err != nil {
		return err
	}

	alarms, err := s.LoadAll()
	if err != nil {
		return err
	}

	out := ctx.String("output")
	if out == "" {
		binary := format == export.XLSX || format == export.PDF
		if binary && writesToTerminal(config.Stdout) {
			return errBinaryToTerminal.Fmt(string(format))
		}

		return export.Write(config.Stdout, format, alarms)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}

	defer func() {
		ferr := f.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	err = export.Write(f, format, alarms)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("exported %d alarms to %s", len(alarms), out)

	return nil
}
