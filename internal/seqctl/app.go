// Package seqctl implements the seqctl command line tool, which applies the
// sequence operations to JSON arrays given as arguments or on stdin.
package seqctl

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// App holds the state shared by every command of one invocation.
type App struct {
	loaderOpts []config.LoaderOption
	in         io.Reader
	out        io.Writer
	errOut     io.Writer

	configFile string
	envFile    string
	format     string
	indent     int
	debug      bool

	cfg     *Config
	log     *logger.Logger
	started time.Time
}

// Option configures an App.
type Option func(*App)

// WithLoaderOptions passes extra options to the config loader.
func WithLoaderOptions(opts ...config.LoaderOption) Option {
	return func(a *App) { a.loaderOpts = append(a.loaderOpts, opts...) }
}

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) { a.in, a.out, a.errOut = in, out, errOut }
}

// NewApp creates an App.
func NewApp(opts ...Option) *App {
	a := &App{log: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs seqctl with args. Errors are returned as *errors.AppError
// whenever the failure is known.
func Execute(ctx context.Context, args []string, opts ...Option) error {
	app := NewApp(opts...)
	root := app.RootCommand()
	if app.in != nil {
		root.SetIn(app.in)
	}
	if app.out != nil {
		root.SetOut(app.out)
	}
	if app.errOut != nil {
		root.SetErr(app.errOut)
	}
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		// flag and command parsing errors from cobra
		appErr = errors.New(errors.ErrCodeUnsupported, err.Error()).WithCause(err)
	}
	app.log.Debug("command failed", logger.MergeWithError(
		logger.Fields(logger.FieldCode, string(appErr.Code)), appErr))
	return appErr
}

// setup loads the configuration and builds the logger. Flags override the
// loaded values.
func (a *App) setup(cmd *cobra.Command) error {
	opts := append([]config.LoaderOption{}, a.loaderOpts...)
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}

	cfg, err := loadConfig(opts...)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = a.format
	}
	if cmd.Flags().Changed("indent") {
		cfg.Output.Indent = a.indent
	}
	if a.debug {
		cfg.Debug = true
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	w := cmd.ErrOrStderr()
	if cfg.Logging.Output == "stdout" {
		w = cmd.OutOrStdout()
	}
	a.cfg = cfg
	a.log = logger.NewWithWriter(&cfg.Logging, w, cfg.Name).WithComponent("seqctl")
	a.started = time.Now()
	logger.SetGlobalLogger(a.log)
	a.log.Debug("configuration loaded", logger.Fields(
		logger.FieldConfig, a.configFile,
		"format", cfg.Output.Format,
	))
	return nil
}

// finish logs how long the command took.
func (a *App) finish(cmd *cobra.Command) {
	a.log.Debug("command finished", logger.DurationFields(cmd.Name(), time.Since(a.started)))
}

// Config returns the configuration loaded for the running command.
func (a *App) Config() *Config { return a.cfg }
