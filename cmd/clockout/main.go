package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/clockout/app"
	"github.com/ayoisaiah/clockout/internal/osutil"
	"github.com/ayoisaiah/clockout/internal/pathutil"
)

func run(args []string) error {
	// a missing .env file is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		osutil.Exit(osutil.ExitError)
	}
}
