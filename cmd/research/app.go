// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/iechor-research/research-launcher/internal/config"
	"github.com/iechor-research/research-launcher/internal/delegate"
	"github.com/iechor-research/research-launcher/internal/discovery"
	"github.com/iechor-research/research-launcher/internal/issue"
	"github.com/iechor-research/research-launcher/internal/logging"
	"github.com/iechor-research/research-launcher/pkg/platform"
	"github.com/iechor-research/research-launcher/pkg/types"
)

type (
	// App wires the launcher services. It is the composition root for the CLI
	// layer: the root command hands every argument to Launch.
	App struct {
		Config      config.Provider
		LoadOptions config.LoadOptions
		locatorOpts []discovery.Option
		stdin       io.Reader
		stdout      io.Writer
		stderr      io.Writer
		environ     func() []string
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config      config.Provider
		LoadOptions *config.LoadOptions
		// LocatorOptions are appended to the locator built for each launch.
		LocatorOptions []discovery.Option
		Stdin          io.Reader
		Stdout         io.Writer
		Stderr         io.Writer
		Environ        func() []string
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:      deps.Config,
		locatorOpts: deps.LocatorOptions,
		stdin:       deps.Stdin,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
		environ:     deps.Environ,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if deps.LoadOptions != nil {
		app.LoadOptions = *deps.LoadOptions
	} else {
		app.LoadOptions = config.OptionsFromEnv()
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	if app.environ == nil {
		app.environ = os.Environ
	}
	return app
}

// Launch locates the Research CLI module and runs it with args. A non-zero
// delegate exit is returned as a bare *ExitError; launcher failures are
// returned as *ExitError wrapping a *ServiceError.
func (a *App) Launch(ctx context.Context, args []string) error {
	cfg, cfgErr := a.Config.Load(ctx, a.LoadOptions)
	if cfgErr != nil {
		// Keep environment overrides when only the file is at fault.
		fallback, err := a.Config.Load(ctx, config.LoadOptions{SkipFile: true})
		if err != nil {
			fallback = config.DefaultConfig()
		}
		cfg = fallback
	}

	logging.Setup(a.stderr, cfg.LogLevel)
	slog.Debug("starting launcher", "version", Version, "commit", Commit)
	if cfgErr != nil {
		a.warnConfig(ctx, cfgErr)
	}

	locator := discovery.New(append(
		[]discovery.Option{discovery.WithSearchPaths(cfg.SearchPaths...)},
		a.locatorOpts...,
	)...)

	mod, err := locator.Resolve(ctx)
	if err != nil {
		return a.notFound(err)
	}

	var installRoot string
	if !locator.OverrideSet() {
		if root, ok := discovery.InferInstallRoot(mod.Path); ok {
			installRoot = root
		}
	}

	spec := delegate.NewLaunchSpec(cfg.Interpreter, mod.Path, args, installRoot)

	if cfg.DryRun {
		a.printDryRun(spec)
		return nil
	}

	d := delegate.New(
		delegate.WithStdio(a.stdin, a.stdout, a.stderr),
		delegate.WithEnviron(a.environ),
	)

	if cfg.Precheck {
		if _, err := d.Precheck(ctx, spec.Interpreter(), delegate.ProbeConfig{
			VersionArgs: cfg.VersionArgs,
			Timeout:     cfg.PrecheckTimeout,
			MinVersion:  cfg.MinVersion,
		}); err != nil {
			return a.interpreterUnavailable(spec.Interpreter(), err)
		}
	}

	result, err := d.Run(ctx, spec)
	if err != nil {
		return a.startupFailed(spec, err)
	}
	if !result.ExitCode.IsSuccess() {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// warnConfig reports an unusable config file without blocking the launch.
// At debug level the cause chain and the troubleshooting page are included.
func (a *App) warnConfig(ctx context.Context, err error) {
	verbose := slog.Default().Enabled(ctx, slog.LevelDebug)
	msg := err.Error()
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		msg = ae.Format(verbose)
	}
	fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+msg)
	fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+"using default launcher settings")

	if !verbose {
		return
	}
	if rendered, renderErr := issue.Get(issue.ConfigLoadFailedId).Render(glamourStyle(a.stderr)); renderErr == nil {
		fmt.Fprint(a.stderr, rendered)
	}
}

func (a *App) notFound(err error) error {
	var b strings.Builder
	b.WriteString(ErrorStyle.Render("Research CLI not found."))
	b.WriteString("\n")

	var nf *discovery.NotFoundError
	if errors.As(err, &nf) {
		b.WriteString("Searched:\n")
		for _, root := range nf.SearchedRoots() {
			b.WriteString("  " + PathStyle.Render(root) + "\n")
		}
	}

	ctx := issue.NewErrorContext().
		WithOperation("locate Research CLI module").
		WithSuggestion("Set " + CmdStyle.Render(discovery.OverrideEnvVar) + " to your Research CLI installation").
		WithSuggestion(platform.HostPathHint(platform.DetectSandbox())).
		Wrap(err)

	// Any other failure (e.g. cancellation) is reported without the catalog page.
	issueID := issue.Id(0)
	if errors.Is(err, discovery.ErrModuleNotFound) {
		issueID = issue.ModuleNotFoundId
	}
	return &ExitError{
		Code: types.ExitFailure,
		Err:  newServiceError(ctx.BuildError(), issueID, b.String()),
	}
}

func (a *App) interpreterUnavailable(interpreter string, err error) error {
	headline := ErrorStyle.Render("Node.js interpreter not available: ") + CmdStyle.Render(interpreter) + "\n"

	ctx := issue.NewErrorContext().
		WithOperation("check interpreter").
		WithResource(interpreter).
		Wrap(err)

	var iu *delegate.InterpreterUnavailableError
	if errors.As(err, &iu) && iu.Probe != nil {
		if out := strings.TrimSpace(iu.Probe.ErrOutput); out != "" {
			headline += PathStyle.Render(out) + "\n"
		}
	}

	return &ExitError{
		Code: types.ExitFailure,
		Err:  newServiceError(ctx.BuildError(), issue.InterpreterNotFoundId, headline),
	}
}

func (a *App) startupFailed(spec *delegate.LaunchSpec, err error) error {
	headline := ErrorStyle.Render("Failed to start Research CLI: ") + err.Error() + "\n"

	ctx := issue.NewErrorContext().
		WithOperation("start Research CLI").
		WithResource(spec.ModulePath()).
		Wrap(err)

	return &ExitError{
		Code: types.ExitFailure,
		Err:  newServiceError(ctx.BuildError(), issue.StartupFailedId, headline),
	}
}

// printDryRun writes the command that would run, quoted for a POSIX shell, to stderr.
func (a *App) printDryRun(spec *delegate.LaunchSpec) {
	var words []string
	if root, ok := spec.InstallRoot(); ok && spec.Injects(a.environ()) {
		words = append(words, discovery.OverrideEnvVar+"="+quoteWord(root))
	}
	for _, w := range spec.CommandLine() {
		words = append(words, quoteWord(w))
	}
	fmt.Fprintln(a.stderr, strings.Join(words, " "))
}

func quoteWord(s string) string {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		// Only strings with NUL bytes cannot be quoted; argv never contains them.
		slog.Debug("cannot quote argument", "arg", s, "error", err)
		return s
	}
	return q
}
