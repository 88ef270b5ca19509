package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shandysiswandi/parserconfig/internal/parserconfig"
	"github.com/shandysiswandi/parserconfig/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/parserconfig/internal/pkg/pkgerror"
	"github.com/shandysiswandi/parserconfig/internal/pkg/pkglog"
	"github.com/shandysiswandi/parserconfig/internal/pkg/pkguid"
)

const envPrefix = "PARSERCONFIG"

const (
	keyStorePath   = "store.path"
	keyStoreCreate = "store.create"
	keyLogLevel    = "log.level"
	keyLogFormat   = "log.format"
	keyLogID       = "log.id"
)

var defaultSettings = map[string]any{
	keyStoreCreate: false,
	keyLogLevel:    "info",
	keyLogFormat:   pkglog.FormatJSON,
	keyLogID:       pkguid.KindUUID,
}

// setup runs before every command that operates on the store.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationStore] != "true" {
		return nil
	}

	if err := a.initConfig(cmd.Flags()); err != nil {
		return err
	}
	if err := a.initLogging(); err != nil {
		return err
	}
	if err := a.initLibraries(); err != nil {
		return err
	}

	ctx := pkglog.SetRunID(cmd.Context(), a.runID.Generate())
	cmd.SetContext(ctx)

	if err := a.initStore(ctx); err != nil {
		return err
	}

	a.initClosers()

	return nil
}

func (a *App) initConfig(flags *pflag.FlagSet) error {
	path := a.settingsFile
	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}

	cfg, err := pkgconfig.NewViper(path,
		pkgconfig.WithDefaults(defaultSettings),
		pkgconfig.WithEnvPrefix(envPrefix),
		pkgconfig.WithFlags(map[string]*pflag.Flag{
			keyStorePath:   flags.Lookup("file"),
			keyStoreCreate: flags.Lookup("create"),
			keyLogLevel:    flags.Lookup("log-level"),
			keyLogFormat:   flags.Lookup("log-format"),
		}),
	)
	if err != nil {
		return pkgerror.NewValidation(err, fmt.Sprintf("failed to read settings %s", path), pkgerror.CodeInvalidInput)
	}

	a.config = cfg

	return nil
}

func (a *App) initLogging() error {
	level, err := pkglog.ParseLevel(a.config.GetString(keyLogLevel))
	if err != nil {
		return pkgerror.NewValidation(err, "invalid log level", pkgerror.CodeInvalidInput)
	}

	err = pkglog.InitLogging(pkglog.Options{
		Level:  level,
		Format: a.config.GetString(keyLogFormat),
		Output: a.stderr,
	})
	if err != nil {
		return pkgerror.NewValidation(err, "invalid log format", pkgerror.CodeInvalidInput)
	}

	return nil
}

func (a *App) initLibraries() error {
	gen, err := pkguid.New(a.config.GetString(keyLogID))
	if err != nil {
		return err
	}
	a.runID = gen

	return nil
}

func (a *App) initStore(ctx context.Context) error {
	path := a.config.Get(keyStorePath)
	if path == nil || path == "" {
		return pkgerror.NewValidation(nil,
			fmt.Sprintf("no configuration file given: use --file or %s_STORE_PATH", envPrefix),
			pkgerror.CodeInvalidInput)
	}

	store, err := parserconfig.NewFromValue(path,
		parserconfig.WithCreate(a.config.GetBool(keyStoreCreate)),
		parserconfig.WithLogger(slog.Default().With("run_id", pkglog.GetRunID(ctx))),
	)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init configuration store", "error", err)
		return err
	}

	a.store = store

	return nil
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
