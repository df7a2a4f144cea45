package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"sdjquiz/internal/config"
	"sdjquiz/internal/loader"
	"sdjquiz/internal/logging"
	"sdjquiz/internal/session"
	"sdjquiz/internal/ui/live"
	"sdjquiz/internal/ui/plain"
)

// runPlay loads settings and drives a single play-through.
func runPlay(stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return ExitError
	}
	logger, closeLog, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Logging error: %v\n", err)
		return ExitError
	}
	defer func() {
		_ = closeLog()
	}()

	decision, err := resolveUIMode(cfg.UI, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return ExitUsage
	}
	if decision.warning != "" {
		fmt.Fprintln(stderr, decision.warning)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("starting", zap.String("ui", decision.mode()), zap.Int64("seed", seed))

	engine := session.NewEngine(
		newPresenter(decision.useLive, stdin, stdout, cfg.NoColor),
		session.WithRand(rand.New(rand.NewSource(seed))),
		session.WithLogger(logger),
	)
	if _, err := engine.Run(context.Background()); err != nil {
		var loadErr *loader.LoadError
		if !errors.As(err, &loadErr) {
			// load failures were already shown by the presenter
			fmt.Fprintf(stderr, "Quiz aborted: %v\n", err)
		}
		logger.Info("play aborted", zap.Stringer("state", engine.State()), zap.Error(err))
		return ExitError
	}
	return ExitOK
}

// newPresenter picks the live or plain front end.
func newPresenter(useLive bool, stdin io.Reader, stdout io.Writer, noColor bool) session.Presenter {
	if useLive {
		return live.New(stdin, stdout, live.Options{NoColor: noColor})
	}
	return plain.New(stdin, stdout, plain.Options{NoColor: noColor})
}

