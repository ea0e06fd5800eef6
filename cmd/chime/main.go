package main

import (
	"os"

	"github.com/ayoisaiah/chime/app"
	"github.com/ayoisaiah/chime/internal/osutil"
	"github.com/ayoisaiah/chime/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Error(err)
		os.Exit(int(osutil.ExitError))
	}
}
