package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/parserconfig/internal/parserconfig"
	"github.com/shandysiswandi/parserconfig/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/parserconfig/internal/pkg/pkgerror"
	"github.com/shandysiswandi/parserconfig/internal/pkg/pkguid"
)

// App is the parserconfig command line: the cobra command tree plus the
// settings, logging and store that its commands share for one invocation.
type App struct {
	stdout io.Writer
	stderr io.Writer

	// configuration
	settingsFile string
	config       pkgconfig.Config

	// libraries
	runID pkguid.StringID

	// resources
	store *parserconfig.Store

	// commands
	root *cobra.Command

	//
	closerFn map[string]func(context.Context) error
}

// New builds the command tree. Settings, logging and the store are set up
// lazily, once flags are parsed, by the commands that need them.
func New(stdout, stderr io.Writer) *App {
	app := &App{
		stdout: stdout,
		stderr: stderr,
	}

	app.initCommands()

	return app
}

// Run executes the command line and returns the process exit status.
func (a *App) Run(ctx context.Context, args []string) int {
	a.root.SetArgs(args)

	err := a.root.ExecuteContext(ctx)
	a.Stop(ctx)

	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return pkgerror.ExitCodeOf(err)
	}

	return pkgerror.ExitOK
}

// Stop runs the registered closers once and forgets them. Run calls it after
// every command, so calling it again is a no-op.
func (a *App) Stop(ctx context.Context) {
	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
	a.closerFn = nil
}
