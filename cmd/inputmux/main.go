// Package main is the entry point for the inputmux terminal demo.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/tidwall/gjson"

	"github.com/dshills/inputmux/internal/app"
	"github.com/dshills/inputmux/internal/engine"
	"github.com/dshills/inputmux/internal/input/dispatch"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/platform"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// openWindow opens a native window source. It is nil unless built with
// the glfw tag.
var openWindow func(title string, width, height int, capture bool) (platform.Source, error)

// display is a source that can show the status line itself.
type display interface {
	DrawText(x, y int, text string)
}

type cliOptions struct {
	app.Options
	logFile string
	window  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	// The terminal owns the screen, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	cfg := app.DefaultLoggerConfig()
	cfg.Output = logOut
	opts.Logger = app.NewLogger(cfg)
	app.SetLogger(opts.Logger)

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	src, err := openSource(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer src.Close()

	if err := application.SetSource(src); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set source: %v\n", err)
		return 1
	}

	var quit atomic.Bool
	reg := application.Engine().Registry()
	for _, code := range []key.Code{key.Q, key.Escape} {
		if _, err := reg.Register(code, dispatch.OnPress(func(key.Event) error {
			quit.Store(true)
			return nil
		})); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to bind quit key: %v\n", err)
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	screen, hasScreen := src.(display)
	if hasScreen {
		screen.DrawText(0, 0, fmt.Sprintf("inputmux %s - move the mouse, scroll, press keys; q or Esc quits", version))
	}

	err = application.Run(ctx, func(f engine.Frame) error {
		if quit.Load() {
			return engine.ErrStop
		}
		switch {
		case hasScreen:
			screen.DrawText(0, 2, statusLine(application.Status()))
		case f.Number%uint64(engine.DefaultTickRate) == 0:
			fmt.Println(statusLine(application.Status()))
		}
		return nil
	})
	if err != nil {
		_ = src.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// openSource opens the terminal, or a native window when requested.
func openSource(opts cliOptions) (platform.Source, error) {
	if opts.window {
		if openWindow == nil {
			return nil, fmt.Errorf("-window requires a build with the glfw tag")
		}
		src, err := openWindow("inputmux", 1024, 768, opts.Recenter)
		if err != nil {
			return nil, fmt.Errorf("failed to open window: %w", err)
		}
		return src, nil
	}

	term, err := platform.NewTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return term, nil
}

// statusLine renders the JSON status as one line of text.
func statusLine(status string) string {
	r := gjson.GetMany(status,
		"frame.number",
		"pointer.x", "pointer.y",
		"scroll.x", "scroll.y",
		"dispatch.subscriptions",
		"metrics.key_events",
		"metrics.fps",
	)
	return fmt.Sprintf("frame %d  pointer (%g, %g)  scroll (%g, %g)  subs %d  keys %d  fps %.1f",
		r[0].Uint(), r[1].Float(), r[2].Float(), r[3].Float(), r[4].Float(),
		r[5].Int(), r[6].Uint(), r[7].Float())
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml or .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&opts.Recenter, "recenter", false, "Warp the pointer back to the window center after every move")
	flag.StringVar(&opts.ScriptPath, "script", "", "Lua script with key bindings")
	flag.BoolVar(&opts.window, "window", false, "Use a native GLFW window instead of the terminal (glfw builds only)")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the configuration file when it changes")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.Debug, "d", false, "Enable debug logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "inputmux - keyboard and pointer input multiplexer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inputmux [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  inputmux                          Show live input state\n")
		fmt.Fprintf(os.Stderr, "  inputmux -c inputmux.toml -watch  Load and hot reload a config\n")
		fmt.Fprintf(os.Stderr, "  inputmux -script keys.lua         Bind keys from Lua\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("inputmux %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts
}
