package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/msto63/pyanalyzer/foundation/pylang"
	"github.com/msto63/pyanalyzer/internal/history"
	"github.com/msto63/pyanalyzer/internal/settings"

	mdwconfig "github.com/msto63/pyanalyzer/foundation/core/config"
	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
)

// stdinName is the source name recorded for input read from stdin
const stdinName = "<stdin>"

// errReported marks an error whose message was already printed
type errReported struct {
	err error
}

func (e errReported) Error() string { return e.err.Error() }
func (e errReported) Unwrap() error { return e.err }

func isReported(err error) bool {
	var r errReported
	return errors.As(err, &r)
}

// app bundles the settings and services shared by all commands
type app struct {
	settings *settings.Settings
	config   *mdwconfig.Config
	logger   *mdwlog.Logger
}

// newApp loads the configuration and sets up logging
func newApp() (*app, error) {
	s, cfg, err := settings.Load(cfgFile)
	if err != nil {
		printError("Konfiguration konnte nicht geladen werden", err)
		return nil, errReported{err}
	}

	logger, err := s.Logger()
	if err != nil {
		printError("Logger konnte nicht erstellt werden", err)
		return nil, errReported{err}
	}
	if verbose {
		logger = logger.WithLevel(mdwlog.LevelDebug)
	}
	mdwlog.SetDefault(logger)

	logger.Debug("configuration loaded", mdwlog.Fields{
		"file": s.File,
	})
	return &app{settings: s, config: cfg, logger: logger}, nil
}

// analyzer creates an analysis engine for the loaded settings
func (a *app) analyzer() (*pylang.Analyzer, error) {
	return pylang.New(a.settings.AnalyzerOptions(a.logger))
}

// openHistory opens the run history; a disabled history is kept in memory
func (a *app) openHistory() (history.RunStore, error) {
	if !a.settings.History.Enabled {
		return history.NewMemoryRunStore(), nil
	}
	store, err := history.NewSQLiteRunStore(history.SQLiteRunConfig{Path: a.settings.History.Path})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open history").
			WithCode(mdwerror.CodeStorageError).
			WithDetail("path", a.settings.History.Path)
	}
	return store, nil
}

// analyze reads the source named by args and analyzes it. When record is
// set and the history is enabled, the run is stored.
func (a *app) analyze(ctx context.Context, args []string, record bool) (*pylang.Result, string, error) {
	src, name, err := readSource(args, os.Stdin)
	if err != nil {
		return nil, "", err
	}

	analyzer, err := a.analyzer()
	if err != nil {
		return nil, "", err
	}
	result, err := analyzer.Run(src)
	if err != nil {
		return nil, "", err
	}

	if record && a.settings.History.Enabled {
		a.record(ctx, result, name)
	}
	return result, name, nil
}

// record stores a run and prunes old ones. Failures are logged only.
func (a *app) record(ctx context.Context, result *pylang.Result, name string) {
	store, err := a.openHistory()
	if err != nil {
		a.logger.WarnWithErr("history unavailable", err)
		return
	}
	defer store.Close()

	if err := store.Save(ctx, history.FromResult(result, name)); err != nil {
		a.logger.WarnWithErr("failed to record run", err, mdwlog.Fields{
			"run_id": result.RunID,
		})
		return
	}
	if keep := a.settings.History.Keep; keep > 0 {
		if deleted, err := store.Prune(ctx, keep); err != nil {
			a.logger.WarnWithErr("failed to prune history", err)
		} else if deleted > 0 {
			a.logger.Debug("history pruned", mdwlog.Fields{"deleted": deleted})
		}
	}
}

// readSource returns the analyzed text and its name. No argument or "-"
// reads stdin.
func readSource(args []string, stdin io.Reader) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", mdwerror.Wrap(err, "failed to read stdin").
				WithCode(mdwerror.CodeInvalidInput)
		}
		return string(data), stdinName, nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInvalidInput
		if errors.Is(err, os.ErrNotExist) {
			code = mdwerror.CodeNotFound
		}
		return "", "", mdwerror.Wrap(err, "failed to read source file").
			WithCode(code).
			WithDetail("path", path)
	}
	return string(data), path, nil
}
