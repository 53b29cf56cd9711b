package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/scrubber/internal/app"
	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/scrub"
	"github.com/llehouerou/scrubber/internal/stderr"
)

type cliOptions struct {
	file           string
	mode           string
	selection      string
	configPath     string
	printSelection bool
}

func main() {
	if err := runWithArgs(os.Args, run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWithArgs(args []string, runFn func(cliOptions) error) error {
	if len(args) == 0 {
		args = []string{config.AppName}
	}

	opts := &cliOptions{}
	cmd := newRootCmd(opts, runFn)
	cmd.SetArgs(args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *cliOptions, runFn func(cliOptions) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           config.AppName + " [file]",
		Short:         "Play an audio file and mark time ranges on its timeline",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.file = args[0]
			}
			if err := opts.validate(); err != nil {
				return err
			}
			return runFn(*opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "Input mode: select (drag marks a range) or scrub (drag seeks)")
	cmd.Flags().StringVar(&opts.selection, "select", "", "Initial selection as start:duration in seconds")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file, loaded after the default locations")
	cmd.Flags().BoolVar(&opts.printSelection, "print-selection", false, "Print the final selection as YAML on exit")

	return cmd
}

func (o cliOptions) validate() error {
	switch o.mode {
	case "", "select", "scrub":
	default:
		return fmt.Errorf("invalid --mode %q (want select or scrub)", o.mode)
	}
	if o.file != "" && !player.IsSupported(o.file) {
		return fmt.Errorf("%s: %w", o.file, player.ErrUnsupportedFormat)
	}
	if o.selection != "" {
		if _, err := scrub.ParseSelection(o.selection); err != nil {
			return fmt.Errorf("invalid --select: %w", err)
		}
	}
	return nil
}

func (o cliOptions) initialSelection() *scrub.Selection {
	if o.selection == "" {
		return nil
	}
	sel, err := scrub.ParseSelection(o.selection)
	if err != nil {
		return nil
	}
	return &sel
}

func run(opts cliOptions) error {
	// Capture C library stderr before the speaker is initialized
	capture, err := stderr.Start()
	if err != nil {
		capture = nil
	}
	stopCapture := func() {
		if capture != nil {
			capture.Stop()
			capture = nil
		}
	}
	defer stopCapture()

	loadOpts := config.LoadOptions{Path: opts.configPath}
	load := func() (*config.Config, error) { return config.LoadWithOptions(loadOpts) }
	cfg, err := load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if opts.mode != "" {
		cfg.Scrub.InputMode = opts.mode
	}

	logger, closeLog, err := openLog(cfg.GetLogConfig())
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "file", opts.file, "config", cfg.Files)

	app.ApplyAppearance(cfg)
	keys, err := app.KeysFor(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpKeysLoad, err))
	}

	p := player.New(logger)
	defer p.Close()

	zones := zone.New()
	defer zones.Close()

	var lines <-chan string
	if capture != nil {
		lines = capture.Lines()
	}

	m := app.New(app.Options{
		Config:      cfg,
		Player:      p,
		Keys:        keys,
		File:        opts.file,
		Initial:     opts.initialSelection(),
		Zones:       zones,
		StderrLines: lines,
		Logger:      logger,
	})
	defer m.Close()

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if watcher, err := config.Watch(cfg.Files, load, func(c *config.Config, err error) {
		if err == nil && opts.mode != "" {
			c.Scrub.InputMode = opts.mode
		}
		prog.Send(app.ConfigReloadedMsg{Config: c, Err: err})
	}); err != nil {
		logger.Warn("config watch disabled", "err", err)
	} else {
		defer watcher.Close()
	}

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(p, func(c mpris.Command) {
			prog.Send(app.MPRISMsg{Command: c})
		})
		if err != nil {
			logger.Warn(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer adapter.Close()
			go prog.Send(app.MPRISReadyMsg{Adapter: adapter})
		}
	}

	final, err := prog.Run()
	stopCapture()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	if opts.printSelection {
		fm, ok := final.(app.Model)
		if !ok {
			return nil
		}
		return printSelection(os.Stdout, p.Source(), fm.Selection())
	}
	return nil
}

// selectionReport is the --print-selection output.
type selectionReport struct {
	File      string           `yaml:"file,omitempty"`
	Selection *scrub.Selection `yaml:"selection"`
}

func printSelection(w io.Writer, file string, sel *scrub.Selection) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(selectionReport{File: file, Selection: sel}); err != nil {
		return err
	}
	return enc.Close()
}

// openLog opens the log file through bubbletea, which keeps the terminal
// free for the UI.
func openLog(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := tea.LogToFile(cfg.File, config.AppName)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel(cfg.Level)})
	return slog.New(handler), func() { f.Close() }, nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
