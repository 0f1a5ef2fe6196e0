// Package view is the interactive terminal viewer for a compiled document.
package view

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/kk-code-lab/mdview/internal/doctree"
	"github.com/kk-code-lab/mdview/internal/links"
	"github.com/kk-code-lab/mdview/internal/logger"
	"github.com/kk-code-lab/mdview/internal/paint"
	"github.com/kk-code-lab/mdview/internal/textutil"
)

const wheelStep = 3

// Viewer scrolls a laid out document on a tcell screen and resolves mouse
// clicks to links.
type Viewer struct {
	screen   tcell.Screen
	doc      *doctree.Document
	canvas   *paint.Canvas
	layout   paint.Options
	theme    ColorTheme
	registry *links.Registry
	onLink   func(target string)
	log      *logger.Logger
	title    string
	maxWidth int
	offset   int
	status   string
}

// Option configures a Viewer.
type Option func(*Viewer)

func WithTheme(t ColorTheme) Option { return func(v *Viewer) { v.theme = t } }

func WithLayout(o paint.Options) Option { return func(v *Viewer) { v.layout = o } }

// WithMaxWidth caps the layout width; zero follows the screen.
func WithMaxWidth(w int) Option { return func(v *Viewer) { v.maxWidth = w } }

func WithRegistry(r *links.Registry) Option { return func(v *Viewer) { v.registry = r } }

// WithLinkHandler is called with the target of every clicked link.
func WithLinkHandler(fn func(target string)) Option { return func(v *Viewer) { v.onLink = fn } }

func WithLogger(l *logger.Logger) Option {
	return func(v *Viewer) {
		if l != nil {
			v.log = l
		}
	}
}

func WithTitle(title string) Option { return func(v *Viewer) { v.title = title } }

// OpenScreen creates and initializes the terminal screen.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	return screen, nil
}

// New creates a viewer for doc on an initialized screen.
func New(screen tcell.Screen, doc *doctree.Document, opts ...Option) *Viewer {
	v := &Viewer{
		screen: screen,
		doc:    doc,
		layout: paint.DefaultOptions(),
		theme:  DefaultTheme(),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.Relayout()
	return v
}

// Relayout paints the document for the current screen size.
func (v *Viewer) Relayout() {
	w, _ := v.screen.Size()
	width := w
	if v.maxWidth > 0 && v.maxWidth < width {
		width = v.maxWidth
	}
	v.canvas = paint.Layout(v.doc, max(width, 1), v.layout)
	v.scrollTo(v.offset)
}

func (v *Viewer) Offset() int { return v.offset }

func (v *Viewer) Status() string { return v.status }

func (v *Viewer) viewHeight() int {
	_, h := v.screen.Size()
	return max(h-1, 1)
}

func (v *Viewer) maxOffset() int {
	return max(v.canvas.Height()-v.viewHeight(), 0)
}

func (v *Viewer) scrollTo(offset int) {
	v.offset = min(max(offset, 0), v.maxOffset())
}

// HandleEvent applies ev and reports whether the viewer should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
		v.Relayout()
	case *tcell.EventMouse:
		v.handleMouse(ev)
	}
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	page := v.viewHeight()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlZ:
		v.suspendToShell()
		v.resume()
	case tcell.KeyUp:
		v.scrollTo(v.offset - 1)
	case tcell.KeyDown, tcell.KeyEnter:
		v.scrollTo(v.offset + 1)
	case tcell.KeyPgUp:
		v.scrollTo(v.offset - page)
	case tcell.KeyPgDn:
		v.scrollTo(v.offset + page)
	case tcell.KeyHome:
		v.scrollTo(0)
	case tcell.KeyEnd:
		v.scrollTo(v.maxOffset())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			v.scrollTo(v.offset - 1)
		case 'j':
			v.scrollTo(v.offset + 1)
		case 'b':
			v.scrollTo(v.offset - page)
		case ' ', 'f':
			v.scrollTo(v.offset + page)
		case 'g':
			v.scrollTo(0)
		case 'G':
			v.scrollTo(v.maxOffset())
		}
	}
	return false
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		v.scrollTo(v.offset - wheelStep)
	case buttons&tcell.WheelDown != 0:
		v.scrollTo(v.offset + wheelStep)
	case buttons&tcell.Button1 != 0:
		x, y := ev.Position()
		if y >= v.viewHeight() {
			return
		}
		if link := v.canvas.LinkAt(x, v.offset+y); link != nil {
			v.activate(link)
		}
	}
}

func (v *Viewer) activate(link *doctree.Link) {
	target := link.Target
	if v.registry != nil {
		if registered, ok := v.registry.Target(link); ok {
			target = registered
		}
	}
	v.status = "→ " + target
	if link.Tooltip != "" {
		v.status += " (" + link.Tooltip + ")"
	}
	v.log.LinkActivated(target)
	if v.onLink != nil {
		v.onLink(target)
	}
}

// resume retakes the terminal after a stop.
func (v *Viewer) resume() {
	if err := v.screen.Resume(); err != nil {
		return
	}
	v.screen.EnableMouse()
	v.screen.Sync()
	v.Relayout()
}

// Draw paints the visible part of the canvas and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	for y := 0; y < v.viewHeight(); y++ {
		for x, cell := range v.canvas.Row(v.offset + y) {
			if cell.Cont || cell.Text == "" {
				continue
			}
			runes := []rune(cell.Text)
			v.screen.SetContent(x, y, runes[0], runes[1:], v.theme.Style(cell.Style))
		}
	}
	v.drawStatus()
	v.screen.Show()
}

func (v *Viewer) statusText() string {
	if v.status != "" {
		return v.status
	}
	total := v.canvas.Height()
	last := min(v.offset+v.viewHeight(), total)
	text := fmt.Sprintf("%d-%d/%d  q quit", min(v.offset+1, total), last, total)
	if v.title != "" {
		text = v.title + "  " + text
	}
	return text
}

func (v *Viewer) drawStatus() {
	w, h := v.screen.Size()
	y := h - 1
	style := v.theme.statusStyle()
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
	text := textutil.TruncateToWidth(textutil.SanitizeTerminalText(v.statusText()), w)
	x := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		v.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += max(textutil.ClusterWidth(g.Str()), 1)
	}
}

// Run draws and processes events until the user quits. It finalizes the
// screen on return.
func (v *Viewer) Run() error {
	defer v.screen.Fini()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigCont chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigCont = make(chan os.Signal, 1)
		signal.Notify(sigCont, sigs...)
		defer signal.Stop(sigCont)
	}

	v.Draw()
	for {
		select {
		case ev := <-events:
			if v.HandleEvent(ev) {
				return nil
			}
		case <-sigCont:
			v.resume()
		}
		v.Draw()
	}
}
