package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"pacecalc/internal/config"
	"pacecalc/internal/prompt"
	"pacecalc/internal/resultlog"
	"pacecalc/internal/tui"
)

const (
	modeTUI    = "tui"
	modePrompt = "prompt"
)

type options struct {
	mode       string
	results    string
	configPath string
	exponent   float64
	initConfig bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Optional .env in the working directory
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	configPath, err := resolveConfigPath(opts.configPath)
	if err != nil {
		return err
	}

	if opts.initConfig {
		if err := config.CreateExample(configPath); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		fmt.Printf("Example config at:\n  %s\n", configPath)
		return nil
	}

	cfg, err := loadConfig(configPath, opts)
	if err != nil {
		return err
	}

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	results := resultlog.New(cfg.Results.File, cfg.AppendResults())

	switch opts.mode {
	case modePrompt:
		session := prompt.NewSession(os.Stdin, os.Stdout, results, cfg.Prediction.RiegelExponent, logger)
		if err := session.Run(); err != nil {
			if errors.Is(err, prompt.ErrInputClosed) {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("running prompt: %w", err)
		}
		return nil

	default:
		app := tui.NewApp(tui.Options{
			Unit:           cfg.PaceUnit(),
			Preset:         cfg.Display.DistancePreset,
			RiegelExponent: cfg.Prediction.RiegelExponent,
		}, results, logger)
		p := tea.NewProgram(app, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("pacecalc", pflag.ContinueOnError)
	fs.StringVarP(&opts.mode, "mode", "m", modeTUI, "front end: tui or prompt")
	fs.StringVar(&opts.results, "results", "", "results file (overrides config)")
	fs.StringVar(&opts.configPath, "config", "", "config file (default ~/.pacecalc/config.json)")
	fs.Float64Var(&opts.exponent, "exponent", 0, "Riegel exponent (overrides config)")
	fs.BoolVar(&opts.initConfig, "init-config", false, "write an example config file and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.mode != modeTUI && opts.mode != modePrompt {
		return options{}, fmt.Errorf("unknown mode %q (want %s or %s)", opts.mode, modeTUI, modePrompt)
	}

	return opts, nil
}

func resolveConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("locating config: %w", err)
	}
	return path, nil
}

// loadConfig layers the config file, PACECALC_* variables and flags.
// A missing config file means defaults.
func loadConfig(path string, opts options) (*config.Config, error) {
	cfg, err := config.LoadFrom(path)
	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg.ApplyEnv()

	if opts.results != "" {
		cfg.Results.File = opts.results
	}
	if opts.exponent != 0 {
		cfg.Prediction.RiegelExponent = opts.exponent
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed (%s): %w", path, err)
	}

	return cfg, nil
}

// newLogger returns the diagnostic logger backed by a rotated file
func newLogger(cfg *config.Config) (*log.Logger, io.Closer, error) {
	path := cfg.Log.File
	if path == "" {
		var err error
		path, err = config.DefaultLogPath()
		if err != nil {
			return nil, nil, fmt.Errorf("locating log file: %w", err)
		}
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}

	return log.New(w, "", log.LstdFlags), w, nil
}
