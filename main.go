package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"physcalc/internal/calc"
	"physcalc/internal/cli"
	"physcalc/internal/config"
	"physcalc/internal/constants"
	"physcalc/internal/logger"
	"physcalc/internal/model"
	"physcalc/internal/session"
	"physcalc/ui"
)

func main() {
	flags, err := cli.ParseFlags()
	if err != nil {
		os.Exit(2)
	}

	// No flags provided or help requested = use GUI
	if flags == nil {
		if len(os.Args) > 1 {
			return // help was printed
		}
		if err := runGUI(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// CLI mode
	if err := runCLI(flags); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the session.
func setup(flags *cli.RunnerConfig) (*session.Session, *logger.ZapLogger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if flags != nil {
		if flags.Plain {
			cfg.Mode = model.Plain.String()
		}
		if flags.LogLevel != "" {
			cfg.LogLevel = flags.LogLevel
		}
		if flags.LogFile != "" {
			cfg.LogFile = flags.LogFile
		}
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	log, err := logger.NewZapLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	table, err := constants.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("load constants: %w", err)
	}
	ev := calc.NewEvaluator(table, calc.WithCacheTTL(cfg.CacheTTL))
	log.Debug("main", "evaluator ready", map[string]interface{}{
		"evaluator": ev.String(),
		"cache_ttl": cfg.CacheTTL.String(),
	})

	sess := session.New(table, ev,
		session.WithLogger(log),
		session.WithDisplayMode(cfg.DisplayMode()),
	)
	return sess, log, nil
}

func runGUI() error {
	sess, log, err := setup(nil)
	if err != nil {
		return err
	}
	defer log.Sync()

	a := app.NewWithID("com.physcalc.gui")
	win := ui.BuildMainWindow(a, sess, log)
	win.ShowAndRun()
	return nil
}

func runCLI(flags *cli.RunnerConfig) error {
	sess, log, err := setup(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer log.Sync()

	runner := cli.NewRunner(sess, os.Stdout, flags.Verbose)
	if flags.Interactive {
		if flags.Expr != "" {
			// Seed the session so the REPL can chain from it.
			_ = runner.Eval(flags.Expr)
		}
		if err := runner.REPL(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		return nil
	}
	return runner.Eval(flags.Expr)
}
