// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/iechor-research/research-launcher/internal/issue"
	"github.com/iechor-research/research-launcher/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// newRootCommand builds the launcher command. Flag parsing is disabled so
// every argument reaches the Research CLI untouched, and cobra's built-in
// completion command is turned off for the same reason.
func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:                "research [arguments...]",
		Short:              "Launch the Research CLI",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Launch(cmd.Context(), args)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetIn(app.stdin)
	root.SetOut(app.stdout)
	root.SetErr(app.stderr)
	return root
}

// Execute runs the launcher with the process arguments and exits with the
// delegate's exit code. This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	os.Exit(int(run(context.Background(), app, os.Args[1:])))
}

// run executes the root command with args and maps the outcome to an exit code.
func run(ctx context.Context, app *App, args []string) types.ExitCode {
	// cobra routes these names to its hidden completion command; they
	// belong to the Research CLI here.
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		err := app.Launch(ctx, args)
		if err != nil {
			app.handleError(app.stderr, fang.Styles{}, err)
		}
		return exitCode(err)
	}

	root := newRootCommand(app)
	root.SetArgs(args)

	err := fang.Execute(
		ctx,
		root,
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
		fang.WithoutVersion(),
		fang.WithErrorHandler(app.handleError),
	)
	return exitCode(err)
}

// handleError renders launcher failures. A bare ExitError is the delegate's
// own status: the delegate already reported whatever it had to say.
//
// fang wraps the command's stderr before handing it over as w, so terminal
// detection looks at the App's own stderr instead.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(w, glamourStyle(a.stderr), svcErr)
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		verbose := slog.Default().Enabled(context.Background(), slog.LevelDebug)
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(verbose))
		return
	}

	fang.DefaultErrorHandler(w, styles, err)
}

func exitCode(err error) types.ExitCode {
	if err == nil {
		return types.ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code.OrFallback()
	}
	return types.ExitFailure
}
