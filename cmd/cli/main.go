package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/platformid/internal/app"
	"github.com/specialistvlad/platformid/internal/cli"
	"github.com/specialistvlad/platformid/internal/hcl_adapter"
	"github.com/specialistvlad/platformid/internal/resolve"
)

// main is the entrypoint for the platformid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Generated output goes to outW; usage text and logs go to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl_adapter.NewLoader()
	platformApp := app.NewApp(outW, errW, appConfig, loader)

	if err := platformApp.Run(context.Background()); err != nil {
		return toExitError(err)
	}
	return nil
}

// toExitError assigns the process exit code for a failed run.
func toExitError(err error) *cli.ExitError {
	code := cli.ExitFailure
	switch {
	case errors.Is(err, resolve.ErrUnsupported):
		code = cli.ExitUnsupported
	case errors.Is(err, app.ErrUnknownFormat):
		code = cli.ExitUsage
	}
	return &cli.ExitError{Code: code, Message: err.Error()}
}
