// Package app wires the input core into a runnable application. It loads
// configuration, builds the engine context, installs configured bindings
// and the Lua script, and drives the frame loop on a platform source.
package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dshills/inputmux/internal/config"
	"github.com/dshills/inputmux/internal/engine"
	"github.com/dshills/inputmux/internal/input/dispatch"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/pointer"
	"github.com/dshills/inputmux/internal/platform"
	"github.com/dshills/inputmux/internal/script"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Recenter forces pointer recenter mode on.
	Recenter bool

	// ScriptPath overrides the configured Lua script when set.
	ScriptPath string

	// Debug enables debug logging.
	Debug bool

	// Watch reloads the configuration file when it changes.
	Watch bool

	// Logger is the application logger. Defaults to GetLogger().
	Logger *Logger
}

// Application owns the engine context and everything bound to it.
type Application struct {
	mu sync.RWMutex

	opts   Options
	cfg    *config.Config
	logger *Logger

	engine  *engine.Context
	loop    *engine.Loop
	source  platform.Source
	script  *script.Script
	watcher *config.Watcher

	bindings []dispatch.Handle

	lastFrame atomic.Pointer[engine.Frame]
	running   atomic.Bool
	cancel    context.CancelFunc
	closed    bool
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts, logger: opts.Logger}
	if app.logger == nil {
		app.logger = GetLogger()
	}

	if err := app.bootstrap(); err != nil {
		app.release()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.LoadAndValidate(app.opts.ConfigPath, config.EnvPrefix)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg
	app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	// 2. Engine
	var regOpts []dispatch.Option
	regOpts = append(regOpts, dispatch.WithLogger(app.logger.WithComponent("dispatch")))
	if cfg.Dispatch.Isolate {
		regOpts = append(regOpts, dispatch.WithIsolation())
	}
	app.engine = engine.New(
		engine.WithRegistry(dispatch.NewRegistry(regOpts...)),
		engine.WithPointer(pointer.New(pointer.WithRecenter(cfg.Pointer.Recenter))),
		engine.WithLogger(app.logger.WithComponent("engine")),
	)

	// 3. Configured bindings
	if err := app.bindConfigKeys(cfg.Bindings); err != nil {
		return &InitError{Component: "bindings", Err: err}
	}

	// 4. Script
	if cfg.Script.Path != "" {
		s := script.New(app.engine.Registry(), app.engine.Pointer(),
			script.WithLogger(app.logger.WithComponent("script")))
		if err := s.DoFile(cfg.Script.Path); err != nil {
			_ = s.Close()
			return &InitError{Component: "script", Err: err}
		}
		app.script = s
		app.logger.Info("loaded script %s with %d bindings", cfg.Script.Path, s.Len())
	}

	// 5. Watcher
	if app.opts.Watch && app.opts.ConfigPath != "" {
		w, err := config.NewWatcher(app.opts.ConfigPath)
		if err != nil {
			return &InitError{Component: "watcher", Err: err}
		}
		w.OnChange(app.reloadConfig)
		w.OnError(func(err error) {
			app.logger.WithComponent("config").Warn("%v", err)
		})
		app.watcher = w
	}

	return nil
}

// applyOverrides applies command-line options on top of file and env
// settings.
func (app *Application) applyOverrides(cfg *config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.Debug {
		cfg.Logging.Level = "debug"
	}
	if app.opts.Recenter {
		cfg.Pointer.Recenter = true
	}
	if app.opts.ScriptPath != "" {
		cfg.Script.Path = app.opts.ScriptPath
	}
}

// bindConfigKeys registers a log-on-press subscriber per binding. Callers
// hold mu or are still bootstrapping.
func (app *Application) bindConfigKeys(bindings []config.Binding) error {
	reg := app.engine.Registry()
	log := app.logger.WithComponent("bindings")

	for _, b := range bindings {
		code, mods, err := key.ParseChord(b.Key)
		if err != nil {
			return err
		}
		msg := b.Log
		if msg == "" {
			msg = b.Key
		}

		h, err := reg.Register(code, dispatch.OnPress(func(ev key.Event) error {
			if ev.Modifiers&mods != mods {
				return nil
			}
			log.Info("%s", msg)
			return nil
		}))
		if err != nil {
			return err
		}
		app.bindings = append(app.bindings, h)
	}
	return nil
}

// unbindConfigKeys removes the subscribers added by bindConfigKeys.
func (app *Application) unbindConfigKeys() {
	reg := app.engine.Registry()
	for _, h := range app.bindings {
		_ = reg.Unregister(h)
	}
	app.bindings = nil
}

// reloadConfig applies a reloaded configuration. Recenter mode, dispatch
// isolation, stop-on-error, the log level and bindings change in place.
// Script and tick rate changes need a restart.
func (app *Application) reloadConfig(cfg *config.Config) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return
	}
	app.applyOverrides(cfg)

	app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	app.engine.Pointer().SetRecenter(cfg.Pointer.Recenter)
	app.engine.Registry().SetIsolation(cfg.Dispatch.Isolate)
	if app.loop != nil {
		app.loop.SetStopOnError(cfg.Dispatch.StopOnError)
	}

	app.unbindConfigKeys()
	if err := app.bindConfigKeys(cfg.Bindings); err != nil {
		app.logger.WithComponent("config").Warn("rebinding keys: %v", err)
	}

	if cfg.Loop.TickRate != app.cfg.Loop.TickRate || cfg.Script.Path != app.cfg.Script.Path {
		app.logger.WithComponent("config").Warn("tick rate and script changes apply on restart")
	}
	app.cfg = cfg
	app.logger.WithComponent("config").Info("configuration reloaded")
}

// SetSource attaches the platform source that Run polls.
// Must be called before Run.
func (app *Application) SetSource(src platform.Source) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	if app.closed {
		return ErrShutdown
	}

	app.source = src
	app.loop = engine.NewLoop(app.engine, src,
		engine.WithTickRate(app.cfg.Loop.TickRate),
		engine.WithStopOnError(app.cfg.Dispatch.StopOnError),
	)
	return nil
}

// Run drives the frame loop until ctx is done, fn returns engine.ErrStop,
// Shutdown is called, or the source fails. fn may be nil.
func (app *Application) Run(ctx context.Context, fn engine.FrameFunc) error {
	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return ErrShutdown
	}
	if app.loop == nil {
		app.mu.Unlock()
		return ErrNoSource
	}
	if !app.running.CompareAndSwap(false, true) {
		app.mu.Unlock()
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	app.cancel = cancel
	loop := app.loop
	app.mu.Unlock()

	defer func() {
		cancel()
		app.running.Store(false)
	}()

	app.logger.Debug("frame loop started at %v per frame", loop.Interval())
	err := loop.Run(ctx, func(f engine.Frame) error {
		app.lastFrame.Store(&f)
		if fn != nil {
			return fn(f)
		}
		return nil
	})
	if err != nil && !errors.Is(err, platform.ErrClosed) {
		app.logger.Error("frame loop stopped: %v", err)
		return err
	}
	return nil
}

// Shutdown stops Run and releases the script, watcher and bindings.
// The source is left for its owner to close.
func (app *Application) Shutdown() error {
	app.mu.Lock()
	if app.cancel != nil {
		app.cancel()
	}
	app.mu.Unlock()

	return app.release()
}

// release closes components in reverse initialization order.
func (app *Application) release() error {
	app.mu.Lock()
	if app.closed {
		app.mu.Unlock()
		return nil
	}
	app.closed = true
	watcher, s := app.watcher, app.script
	app.mu.Unlock()

	var errs []error
	if watcher != nil {
		if err := watcher.Close(); err != nil {
			errs = append(errs, &ComponentError{Component: "watcher", Action: "close", Err: err})
		}
	}
	if s != nil {
		if err := s.Close(); err != nil {
			errs = append(errs, &ComponentError{Component: "script", Action: "close", Err: err})
		}
	}
	if app.engine != nil {
		app.mu.Lock()
		app.unbindConfigKeys()
		app.mu.Unlock()
	}
	return errors.Join(errs...)
}

// IsRunning returns true if the frame loop is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns a copy of the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg.Clone()
}

// Engine returns the engine context.
func (app *Application) Engine() *engine.Context {
	return app.engine
}

// Script returns the loaded script, or nil.
func (app *Application) Script() *script.Script {
	return app.script
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// LastFrame returns the most recent frame handed to the frame function.
func (app *Application) LastFrame() (engine.Frame, bool) {
	f := app.lastFrame.Load()
	if f == nil {
		return engine.Frame{}, false
	}
	return *f, true
}
