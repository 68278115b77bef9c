package app

import (
	"errors"
	"io/fs"
	"sync"
	"time"

	"github.com/dshills/kiln/internal/config"
	"github.com/dshills/kiln/internal/engine/buffer"
	"github.com/dshills/kiln/internal/engine/search"
	"github.com/dshills/kiln/internal/renderer/backend"
	"github.com/dshills/kiln/internal/renderer/layout"
	"github.com/dshills/kiln/internal/renderer/viewport"
	"github.com/dshills/kiln/internal/watcher"
)

// Version is the editor version shown in the welcome banner.
const Version = "0.1.0"

// chromeRows is the screen space reserved below the text area: one row for
// the status bar and one for the message bar.
const chromeRows = 2

// Options configures a new Application.
type Options struct {
	// ConfigPath is the configuration file to load. Empty means the
	// conventional location.
	ConfigPath string

	// Files are the files to open. Only the first is loaded.
	Files []string

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// Logger overrides the default stderr logger. Tests pass NullLogger.
	Logger *Logger
}

// Application owns the editor state and the event loop.
type Application struct {
	cfg    config.Config
	logger *Logger

	buf    *buffer.Buffer
	view   *viewport.Viewport
	finder *search.Engine

	term  *backend.Terminal
	watch *watcher.Watcher

	message  *StatusMessage
	quitLeft int
	lastSave time.Time

	running      bool
	started      bool
	shutdownOnce sync.Once
}

// New creates an application from options. The terminal backend is attached
// separately with SetBackend so the application itself stays testable.
func New(opts Options) (*Application, error) {
	logger := opts.Logger
	if logger == nil {
		cfg := DefaultLoggerConfig()
		cfg.Level = ParseLogLevel(opts.LogLevel)
		logger = NewLogger(cfg)
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, NewOperationError("load config", path, err)
	}

	tabs := layout.NewTabExpander(cfg.TabWidth)
	buf, err := openBuffer(opts.Files, tabs)
	if err != nil {
		return nil, err
	}

	app := &Application{
		cfg:      cfg,
		logger:   logger,
		buf:      buf,
		view:     viewport.New(80, 24),
		finder:   search.New(buf),
		message:  NewStatusMessage(time.Duration(cfg.MessageTimeout) * time.Second),
		quitLeft: cfg.QuitTimes,
	}

	app.watch, err = watcher.New()
	if err != nil {
		logger.Warn("file watcher unavailable: %v", err)
		app.watch = nil
	} else if buf.Path() != "" {
		if err := app.watch.Watch(buf.Path()); err != nil {
			logger.Debug("not watching %s: %v", buf.Path(), err)
		}
	}

	app.message.Set("HELP: Ctrl-S = save | Ctrl-F = find | Ctrl-Q = quit")
	return app, nil
}

// openBuffer loads the first named file, or starts empty. Naming a file
// that does not exist yet opens an empty buffer bound to that path.
func openBuffer(files []string, tabs *layout.TabExpander) (*buffer.Buffer, error) {
	if len(files) == 0 {
		return buffer.New(buffer.WithTabExpander(tabs)), nil
	}

	path := files[0]
	buf, err := buffer.Load(path, buffer.WithTabExpander(tabs))
	if err != nil {
		// Load wraps the underlying error, so unwrap-aware matching only.
		if errors.Is(err, fs.ErrNotExist) {
			return buffer.New(buffer.WithTabExpander(tabs), buffer.WithPath(path)), nil
		}
		return nil, NewOperationError("open", path, err)
	}
	return buf, nil
}

// SetBackend attaches the terminal backend.
func (app *Application) SetBackend(term *backend.Terminal) error {
	if app.running {
		return ErrAlreadyRunning
	}
	app.term = term
	return nil
}

// Run initializes the terminal and processes events until quit. A normal
// Ctrl-Q exit returns an error satisfying errors.Is(err, ErrQuit).
func (app *Application) Run() error {
	if app.term == nil {
		return ErrNoBackend
	}
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true

	if err := app.term.Init(); err != nil {
		return NewOperationError("init terminal", "", err)
	}
	app.started = true

	cols, rows := app.term.Size()
	app.resize(cols, rows)

	if app.watch != nil {
		go app.forwardFileEvents()
	}

	app.logger.Info("editor started, file=%q", app.buf.Path())
	return app.eventLoop()
}

// Shutdown releases the terminal and the file watcher. Safe to call on
// every exit path, including after a failed Run, and from the signal
// handler while the event loop is still polling.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.watch != nil {
			_ = app.watch.Close()
		}
		if app.term != nil && app.started {
			app.term.Shutdown()
		}
		app.running = false
	})
}

// resize fits the viewport into the screen, leaving room for the chrome.
func (app *Application) resize(cols, rows int) {
	textRows := rows - chromeRows
	if textRows < 1 {
		textRows = 1
	}
	app.view.Resize(cols, textRows)
}
