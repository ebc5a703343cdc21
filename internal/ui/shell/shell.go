// Package shell is the interactive view of a booting editor: the layout of
// every area, live engine events, and the toolbar buttons bound to keys and
// mouse clicks.
package shell

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/pagekit/internal/bootstrap"
	"github.com/zjrosen/pagekit/internal/engine"
	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/keys"
	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/presentation"
	"github.com/zjrosen/pagekit/internal/pubsub"
	"github.com/zjrosen/pagekit/internal/ui/styles"
)

const maxEvents = 8

// widgetZone is the bubblezone id of a top-area widget line.
func widgetZone(name string) string {
	return "widget:" + name
}

// BootFunc runs the bootstrap sequence.
type BootFunc func(ctx context.Context) error

// Config holds the shell's collaborators.
type Config struct {
	Engine *engine.Engine
	Boot   BootFunc
	// ReadyAfter is how long after boot the preview renderer reports ready.
	// Zero waits for the r key.
	ReadyAfter time.Duration
}

// BootDoneMsg reports the result of the bootstrap run.
type BootDoneMsg struct{ Err error }

// RendererReadyMsg is sent once the preview renderer is ready.
type RendererReadyMsg struct{}

// markReadyMsg asks the model to mark the renderer ready.
type markReadyMsg struct{}

// ButtonDoneMsg reports the result of a toolbar button.
type ButtonDoneMsg struct {
	Widget string
	Err    error
}

// Model is the Bubble Tea model for the shell.
type Model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	engine   *engine.Engine
	boot     BootFunc
	after    time.Duration
	listener *pubsub.ContinuousListener[engine.Event]
	help     help.Model

	booting bool
	bootErr error
	ready   bool
	status  string
	events  []string
	width   int
	height  int
}

// New creates the shell model. The engine event subscription lives until the
// model quits.
func New(cfg Config) Model {
	if zone.DefaultManager == nil {
		zone.NewGlobal()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		ctx:      ctx,
		cancel:   cancel,
		engine:   cfg.Engine,
		boot:     cfg.Boot,
		after:    cfg.ReadyAfter,
		listener: pubsub.NewContinuousListener(ctx, cfg.Engine.Events()),
		help:     help.New(),
		booting:  true,
		width:    100,
		height:   30,
	}
}

// Init starts the boot, the event listener and the renderer-ready watch.
func (m Model) Init() tea.Cmd {
	boot := m.boot
	ctx := m.ctx
	return tea.Batch(
		m.listener.Listen(),
		pubsub.OneShotCmd(ctx, m.engine.Project().Ready(), RendererReadyMsg{}),
		func() tea.Msg {
			return BootDoneMsg{Err: boot(ctx)}
		},
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case pubsub.Event[engine.Event]:
		m.events = append(m.events, describeEvent(msg.Payload))
		if len(m.events) > maxEvents {
			m.events = m.events[len(m.events)-maxEvents:]
		}
		return m, m.listener.Listen()

	case BootDoneMsg:
		m.booting = false
		m.bootErr = msg.Err
		if msg.Err != nil {
			m.status = "boot failed: " + msg.Err.Error()
			return m, nil
		}
		m.status = "booted"
		if m.after > 0 {
			return m, tea.Tick(m.after, func(time.Time) tea.Msg { return markReadyMsg{} })
		}
		return m, nil

	case markReadyMsg:
		m.engine.Project().MarkRendererReady()
		return m, nil

	case RendererReadyMsg:
		m.ready = true
		m.status = "renderer ready"
		return m, nil

	case ButtonDoneMsg:
		if msg.Err != nil {
			m.status = msg.Widget + " failed: " + msg.Err.Error()
		} else {
			m.status = msg.Widget + " done"
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Shell.Quit):
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, keys.Shell.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Shell.Ready):
		return m, func() tea.Msg { return markReadyMsg{} }
	case key.Matches(msg, keys.Shell.Save):
		return m.press(bootstrap.WidgetSave)
	case key.Matches(msg, keys.Shell.Preview):
		return m.press(bootstrap.WidgetPreview)
	}
	return m, nil
}

// handleMouse presses the top-area button under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for _, v := range m.engine.Skeleton().Area(host.AreaTop) {
		if z := zone.Get(widgetZone(v.Name)); z != nil && z.InBounds(msg) {
			return m.press(v.Name)
		}
	}
	return m, nil
}

// press runs the OnClick of the button widget with the given name.
func (m Model) press(name string) (tea.Model, tea.Cmd) {
	w, ok := m.engine.Skeleton().Widget(name)
	if !ok {
		m.status = name + " is not available yet"
		return m, nil
	}
	var button host.Button
	for _, v := range m.engine.Skeleton().Area(host.AreaTop) {
		if v.Name == w.Name() {
			button, ok = v.Content.(host.Button)
		}
	}
	if !ok || button.OnClick == nil {
		m.status = name + " has no action"
		return m, nil
	}
	if !w.Enabled() {
		m.status = name + " is disabled"
		return m, nil
	}
	m.status = button.Label + "..."
	ctx := m.ctx
	log.Debug(log.CatUI, "Button pressed", "widget", name)
	return m, func() tea.Msg {
		return ButtonDoneMsg{Widget: name, Err: button.OnClick(ctx)}
	}
}

func describeEvent(ev engine.Event) string {
	if ev.Area != "" {
		return fmt.Sprintf("%s %s (%s)", ev.Kind, ev.Name, ev.Area)
	}
	return fmt.Sprintf("%s %s", ev.Kind, ev.Name)
}

// View renders the layout.
func (m Model) View() string {
	layout := presentation.FromSnapshot(m.engine.Snapshot())
	areas := make(map[string]presentation.AreaDTO, len(layout.Areas))
	for _, a := range layout.Areas {
		areas[a.Name] = a
	}

	full := max(m.width, 40)
	side := full / 4
	center := full - 2*side

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("pagekit"))
	if layout.Document != nil {
		b.WriteString(styles.MutedStyle.Render("  page " + layout.Document.PageID))
	}
	b.WriteString("\n")
	b.WriteString(m.panel(areas, host.AreaTop, full))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.panel(areas, host.AreaLeft, side),
		m.panel(areas, host.AreaCenter, center),
		m.panel(areas, host.AreaRight, side),
	))
	b.WriteString("\n")
	b.WriteString(styles.Panel("events", m.events, full, false))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return zone.Scan(b.String())
}

func (m Model) panel(areas map[string]presentation.AreaDTO, area host.Area, width int) string {
	a := areas[string(area)]
	lines := make([]string, 0, len(a.Widgets))
	for _, w := range a.Widgets {
		name := w.Name
		if !w.Enabled {
			name = styles.DisabledStyle.Render(name + " (disabled)")
		}
		if area == host.AreaTop {
			name = zone.Mark(widgetZone(w.Name), name)
		}
		lines = append(lines, name)
	}
	return styles.Panel(string(area), lines, width, false)
}

func (m Model) footer() string {
	var state string
	switch {
	case m.booting:
		state = styles.DisabledStyle.Render("booting")
	case m.bootErr != nil:
		state = styles.ErrorStyle.Render("failed")
	case m.ready:
		state = styles.EnabledStyle.Render("ready")
	default:
		state = styles.DisabledStyle.Render("waiting for renderer")
	}
	status := styles.Wrap(m.status, max(m.width, 40)-lipgloss.Width(state)-2)
	return state + "  " + strings.Join(status, "\n") + "\n" + m.help.View(keys.Shell)
}

// Err returns the boot error, if any.
func (m Model) Err() error {
	return m.bootErr
}
