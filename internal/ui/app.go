// Package ui implements the interactive schematic editor window.
package ui

import (
	"image/color"
	"log/slog"
	"strings"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/theme"

	"github.com/OpenTraceLab/OpenTraceSchematic/internal/config"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

const title = "OpenTraceSchematic"

// Options configures a new editor window.
type Options struct {
	// Diagram to edit; nil starts with an empty one.
	Diagram *schematic.Diagram
	// Path the diagram was loaded from, used by Save.
	Path string

	Config     *config.Config
	ConfigPath string
}

// App is the editor window.
type App struct {
	window   *app.Window
	gvTheme  *theme.Theme
	explorer *explorer.Explorer
	ops      op.Ops
	log      *slog.Logger

	cfg     *config.Config
	cfgPath string

	diagram    *schematic.Diagram
	editor     *editor.Editor
	colorTheme render.Theme
	colors     *render.Colors
	filepath   string
	dirty      bool
	status     string

	canvas  canvasState
	toolbar toolbar
	props   propertyPanel

	// closures posted by background goroutines, run on the UI goroutine
	pending chan func()
}

// New creates the editor app.
func New(w *app.Window, opts Options) *App {
	if w == nil {
		w = new(app.Window)
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	w.Option(app.Title(title), app.Size(unit.Dp(cfg.Width), unit.Dp(cfg.Height)))

	a := &App{
		window:     w,
		gvTheme:    theme.NewTheme("", nil, true),
		explorer:   explorer.NewExplorer(w),
		log:        slog.Default().With("component", "ui"),
		cfg:        cfg,
		cfgPath:    opts.ConfigPath,
		colorTheme: cfg.ColorTheme(),
		pending:    make(chan func(), 8),
	}
	a.applyPalette()
	a.toolbar.init(a)

	d := opts.Diagram
	if d == nil {
		d = schematic.New()
		d.View.Scale = cfg.Scale
	}
	a.setDiagram(d, opts.Path)
	return a
}

// Run processes window events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		a.explorer.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.runPending()
			a.handleKeys(gtx)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// post queues fn to run on the UI goroutine at the next frame.
func (a *App) post(fn func()) {
	a.pending <- fn
	a.window.Invalidate()
}

func (a *App) runPending() {
	for {
		select {
		case fn := <-a.pending:
			fn()
		default:
			return
		}
	}
}

func (a *App) setDiagram(d *schematic.Diagram, path string) {
	d.Grid = a.cfg.Grid
	a.diagram = d
	a.editor = editor.New(d)
	a.filepath = path
	a.dirty = false
	a.props.edit(nil)
	if _, ok := d.Bounds(); ok && path != "" {
		a.canvas.fitPending = true
	}
	a.updateTitle()
	a.log.Info("loaded schematic", "path", path, "components", d.Len())
}

func (a *App) markDirty() {
	if !a.dirty {
		a.dirty = true
		a.updateTitle()
	}
}

func (a *App) updateTitle() {
	t := title
	if a.filepath != "" {
		t += " - " + a.filepath
	}
	if a.dirty {
		t += " *"
	}
	a.window.Option(app.Title(t))
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.log.Debug("status", "msg", msg)
}

func (a *App) applyPalette() {
	a.colors = render.GetColors(a.colorTheme)
	if a.colorTheme == render.ThemeDark {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
			Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
			ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
			Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
		})
	} else {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
	}
}

func (a *App) toggleTheme() {
	if a.colorTheme == render.ThemeLight {
		a.colorTheme = render.ThemeDark
	} else {
		a.colorTheme = render.ThemeLight
	}
	a.applyPalette()
	a.setStatus("Theme: " + a.colorTheme.String())

	if a.cfgPath == "" {
		return
	}
	a.cfg.Theme = strings.ToLower(a.colorTheme.String())
	if err := config.Save(a.cfgPath, a.cfg); err != nil {
		a.log.Warn("save config", "path", a.cfgPath, "err", err)
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.toolbar.layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Flexed(1, a.layoutCanvas),
				layout.Rigid(a.layoutProperties),
			)
		}),
	)
}
