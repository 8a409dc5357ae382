// ABOUTME: Root AppModel hosting trigger buttons on a scrollable page with dropdown overlays
// ABOUTME: Maps terminal mouse, key, resize and scroll input onto dropdown handlers and window events

package btea

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/tui-dropdown/internal/config"
	"github.com/mauromedda/tui-dropdown/internal/log"
	"github.com/mauromedda/tui-dropdown/pkg/dropdown"
	"github.com/mauromedda/tui-dropdown/pkg/tui/theme"
	"github.com/mauromedda/tui-dropdown/pkg/tui/width"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	wheelStep     = 3
	keyHint       = "tab focus · space/enter toggle · o open controlled · j/k scroll · q quit"
)

// AppDeps holds the inputs the AppModel is built from.
type AppDeps struct {
	Settings      *config.Settings
	Overrides     Overrides
	Version       string
	MarkdownStyle string // glamour standard style; "" = auto
	Width, Height int    // initial terminal size; 0 = defaults
}

// Bubble Tea copies the model on each Update; pointer fields are shared
// across copies. Update is single-threaded so no mutex is needed.
type shared struct {
	layout *layout
	window *dropdown.Window
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sh       *shared // survives value copies
	deps     AppDeps
	settings *config.Settings

	viewport      viewport.Model
	width, height int

	focus     int // index into layout triggers; -1 = none
	status    string
	statusErr bool
}

// NewAppModel builds and mounts one dropdown per configured trigger. When
// the settings define no triggers the demo layout is used.
func NewAppModel(deps AppDeps) AppModel {
	settings := deps.Settings
	if settings == nil {
		settings = &config.Settings{}
	}
	w, h := deps.Width, deps.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}

	md := NewMarkdownRenderer(deps.MarkdownStyle)
	m := AppModel{
		sh: &shared{
			layout: newLayout(md),
			window: dropdown.NewWindow(),
		},
		deps:     deps,
		settings: settings,
		viewport: viewport.New(w, max(h-1, 1)),
		width:    w,
		height:   h,
		focus:    -1,
	}
	m.sh.layout.width = w
	m.sh.layout.vpHeight = m.viewport.Height
	m = m.buildTriggers()
	m.refreshPage()
	return m
}

// Init returns nil; no commands needed at startup.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes terminal input to the dropdowns.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case ConfigReloadedMsg:
		m = m.applyReload(msg)
	}
	m.reconcile()
	m.refreshPage()
	return m, cmd
}

// View draws the page and status bar, then composites shown overlays.
func (m AppModel) View() string {
	screen := m.viewport.View() + "\n" + m.statusLine()
	return compositeOverlays(screen, m.sh.layout, m.height)
}

func (m AppModel) triggers() []*trigger {
	return m.sh.layout.triggers
}

func (m AppModel) focused() *trigger {
	ts := m.triggers()
	if m.focus < 0 || m.focus >= len(ts) {
		return nil
	}
	return ts[m.focus]
}

// buildTriggers creates and mounts a dropdown per trigger setting.
func (m AppModel) buildTriggers() AppModel {
	cfgs := m.settings.Triggers
	if len(cfgs) == 0 {
		cfgs = DemoTriggers()
	}
	ts := make([]*trigger, len(cfgs))
	for i, c := range cfgs {
		ts[i] = newTrigger(i, c, m.settings.Defaults, m.deps.Overrides, m.sh.layout, m.sh.window)
	}
	m.sh.layout.setTriggers(ts)
	for _, t := range ts {
		m = m.report(t.dd.Mount())
	}
	return m
}

func (m AppModel) resize(w, h int) AppModel {
	m.width, m.height = w, h
	m.viewport.Width = w
	m.viewport.Height = max(h-1, 1)
	m.sh.layout.width = w
	m.sh.layout.vpHeight = m.viewport.Height
	m.refreshPage()
	m.sh.window.DispatchResize(dropdown.ResizeEvent{Width: float64(w), Height: float64(h)})
	return m
}

func (m AppModel) handleMouse(msg tea.MouseMsg) AppModel {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m.scroll(-wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		return m.scroll(wheelStep)
	case msg.Action == tea.MouseActionMotion:
		return m.pointerMove(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.pointerDown(msg.X, msg.Y)
	}
	return m
}

// pointerMove emits enter/leave transitions. Leaves are processed before
// enters so moving between triggers never shows two hover overlays.
func (m AppModel) pointerMove(x, y int) AppModel {
	l := m.sh.layout
	target := l.elementAt(x, y)

	for _, t := range l.triggers {
		if t.hovered && !l.Contains(t.wrapperID, target) {
			t.hovered = false
			m = m.report(t.dd.PointerLeave())
		}
	}
	for _, t := range l.triggers {
		if !t.hovered && l.Contains(t.wrapperID, target) {
			t.hovered = true
			m = m.report(t.dd.PointerEnter())
		}
	}
	return m
}

// pointerDown notifies window listeners first, then the trigger whose
// subtree contains the target.
func (m AppModel) pointerDown(x, y int) AppModel {
	l := m.sh.layout
	target := l.elementAt(x, y)
	m.sh.window.DispatchPointer(dropdown.PointerEvent{Target: target, X: float64(x), Y: float64(y)})

	owner := l.ownerOf(target)
	if owner == nil {
		return m
	}
	for i, t := range l.triggers {
		if t == owner && t.dd.Frame().Focusable {
			m.focus = i
		}
	}
	if idx, ok := owner.itemIndex(target); ok {
		m = m.setStatus(fmt.Sprintf("%s: %s", owner.label(), owner.cfg.Items[idx]))
	}
	return m.report(owner.dd.Click(target))
}

func (m AppModel) scroll(delta int) AppModel {
	before := m.viewport.YOffset
	if delta > 0 {
		m.viewport.LineDown(delta)
	} else {
		m.viewport.LineUp(-delta)
	}
	if m.viewport.YOffset == before {
		return m
	}
	m.sh.layout.yOffset = m.viewport.YOffset
	m.sh.window.DispatchScroll(dropdown.ScrollEvent{OffsetY: float64(m.viewport.YOffset)})
	return m
}

func (m AppModel) handleKey(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if t := m.focused(); t != nil && t.isMenu() && t.dd.Frame().Visible {
		switch msg.Type {
		case tea.KeyUp, tea.KeyDown, tea.KeyBackspace, tea.KeyEsc, tea.KeyRunes:
			updated, _ := t.menu.Update(msg)
			t.menu = updated.(MenuModel)
			t.menuDirty = true
			return m, nil
		case tea.KeyEnter:
			if item, ok := t.menu.Selected(); ok {
				m = m.setStatus(fmt.Sprintf("%s: %s", t.label(), item))
			}
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.moveFocus(1)
	case "shift+tab":
		m.moveFocus(-1)
	case " ", "space", "enter":
		if t := m.focused(); t != nil {
			m = m.report(t.dd.KeyDown(msg.String()))
		}
	case "j", "down":
		m = m.scroll(1)
	case "k", "up":
		m = m.scroll(-1)
	case "pgdown":
		m = m.scroll(max(m.viewport.Height/2, 1))
	case "pgup":
		m = m.scroll(-max(m.viewport.Height/2, 1))
	case "o":
		m = m.toggleControlled()
	}
	return m, nil
}

// moveFocus cycles focus among triggers that act as buttons.
func (m *AppModel) moveFocus(dir int) {
	ts := m.triggers()
	n := len(ts)
	if n == 0 {
		return
	}
	i := m.focus
	if i < 0 && dir < 0 {
		i = 0
	}
	for range n {
		i = ((i+dir)%n + n) % n
		if ts[i].dd.Frame().Focusable {
			m.focus = i
			return
		}
	}
}

// toggleControlled flips the app-owned open flag of controlled triggers.
func (m AppModel) toggleControlled() AppModel {
	for _, t := range m.triggers() {
		if !t.cfg.Controlled {
			continue
		}
		t.open = !t.open
		m = m.report(t.dd.Update(dropdown.WithOpen(&t.open)))
	}
	return m
}

// applyReload re-resolves the theme and pushes new options to each
// dropdown. A changed trigger set is rebuilt from scratch.
func (m AppModel) applyReload(msg ConfigReloadedMsg) AppModel {
	if msg.Err != nil {
		return m.report(fmt.Errorf("config reload: %w", msg.Err))
	}
	s := msg.Settings
	if s == nil {
		s = &config.Settings{}
	}

	if th, err := theme.Resolve(s.Theme, s.Palette); err != nil {
		m = m.report(err)
	} else {
		theme.Set(th)
	}

	prev := m.settings
	m.settings = s
	if !sameTriggerIDs(prev, s) {
		for _, t := range m.triggers() {
			t.dd.Unmount()
		}
		m.focus = -1
		m = m.buildTriggers()
		return m.setStatus("config reloaded")
	}

	cfgs := s.Triggers
	if len(cfgs) == 0 {
		cfgs = DemoTriggers()
	}
	for i, t := range m.triggers() {
		next := cfgs[i]
		if !next.Controlled || !t.cfg.Controlled {
			t.open = next.Open
		}
		t.cfg = next
		t.loadContent()
		m = m.report(t.dd.Update(t.options(s.Defaults, m.deps.Overrides)...))
	}
	if !m.statusErr {
		m = m.setStatus("config reloaded")
	}
	return m
}

func sameTriggerIDs(a, b *config.Settings) bool {
	ids := func(s *config.Settings) []string {
		cfgs := s.Triggers
		if len(cfgs) == 0 {
			cfgs = DemoTriggers()
		}
		out := make([]string, len(cfgs))
		for i, c := range cfgs {
			out[i] = c.ID
		}
		return out
	}
	ai, bi := ids(a), ids(b)
	if len(ai) != len(bi) {
		return false
	}
	for i := range ai {
		if ai[i] != bi[i] {
			return false
		}
	}
	return true
}

// reconcile resets lazily mounted menu state for hidden overlays.
func (m AppModel) reconcile() {
	for _, t := range m.triggers() {
		t.reconcileContent()
	}
}

func (m *AppModel) refreshPage() {
	m.viewport.SetContent(m.sh.layout.renderPage(m.focused()))
	m.sh.layout.yOffset = m.viewport.YOffset
}

// report surfaces a dropdown error in the status line and the log.
func (m AppModel) report(err error) AppModel {
	if err == nil {
		return m
	}
	log.Error("%v", err)
	m.status = err.Error()
	m.statusErr = true
	return m
}

func (m AppModel) setStatus(s string) AppModel {
	m.status = s
	m.statusErr = false
	return m
}

func (m AppModel) statusLine() string {
	s := Styles()
	text := m.status
	style := s.StatusBar
	if text == "" {
		text = keyHint
		if m.deps.Version != "" {
			text = "dropdown-demo " + m.deps.Version + " · " + text
		}
	} else if m.statusErr {
		style = s.StatusBarErr
	}
	return style.Render(width.PadRight(width.TruncateToWidth(" "+text, m.width), m.width))
}
