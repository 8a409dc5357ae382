// ABOUTME: Trigger pairs a configured button with its dropdown and overlay content
// ABOUTME: Builds dropdown options from trigger settings, CLI overrides and config defaults

package btea

import (
	"fmt"
	"strings"

	"github.com/mauromedda/tui-dropdown/internal/config"
	"github.com/mauromedda/tui-dropdown/internal/log"
	"github.com/mauromedda/tui-dropdown/pkg/dropdown"
	"github.com/mauromedda/tui-dropdown/pkg/tui/width"
)

// Overrides are command-line values that take precedence over config
// defaults but not over per-trigger settings.
type Overrides struct {
	Mode         string
	Positioning  string
	ClickOutside *bool
}

type trigger struct {
	cfg       config.Trigger
	wrapperID dropdown.ElementID
	overlayID dropdown.ElementID
	dd        *dropdown.Dropdown

	// open is the app-owned state for controlled triggers.
	open bool

	menu       MenuModel
	menuDirty  bool
	markdown   string
	panelTitle string
	panelWidth int

	hovered bool
	order   int
}

func newTrigger(order int, cfg config.Trigger, defaults config.Defaults, ov Overrides, host dropdown.Host, win *dropdown.Window) *trigger {
	id := cfg.ID
	if id == "" {
		id = fmt.Sprintf("%d", order)
	}
	t := &trigger{
		cfg:       cfg,
		wrapperID: dropdown.ElementID("trigger-" + id),
		overlayID: dropdown.ElementID("trigger-" + id + "-overlay"),
		open:      cfg.Open,
		order:     order,
	}
	t.loadContent()
	t.dd = dropdown.New(host, win, t.options(defaults, ov)...)
	return t
}

// loadContent resolves the overlay body: a menu when items are set,
// otherwise inline markdown or a markdown file.
func (t *trigger) loadContent() {
	t.menu = NewMenuModel(t.cfg.Items)
	t.markdown = t.cfg.Markdown
	t.panelTitle = ""
	t.panelWidth = 0
	if t.cfg.MarkdownFile != "" {
		p, err := config.LoadPanel(t.cfg.MarkdownFile)
		if err != nil {
			log.Warn("trigger %s: %v", t.wrapperID, err)
			t.markdown = fmt.Sprintf("*%v*", err)
			return
		}
		t.markdown = p.Body
		t.panelTitle = p.Title
		t.panelWidth = p.Width
	}
}

func (t *trigger) isMenu() bool {
	return len(t.cfg.Items) > 0
}

// options resolves per-trigger values, then CLI overrides, then defaults.
func (t *trigger) options(d config.Defaults, ov Overrides) []dropdown.Option {
	opts := []dropdown.Option{
		dropdown.WithWrapperID(t.wrapperID),
		dropdown.WithDropdownWrapperID(t.overlayID),
	}

	if m := firstNonEmpty(t.cfg.Mode, ov.Mode, d.Mode); m != "" {
		opts = append(opts, dropdown.WithMode(dropdown.Mode(m)))
	}
	if p := firstNonEmpty(t.cfg.Positioning, ov.Positioning, d.Positioning); p != "" {
		opts = append(opts, dropdown.WithPositioning(dropdown.Alignment(p)))
	}

	switch {
	case t.cfg.ClickOutside != nil:
		opts = append(opts, dropdown.WithClickOutside(*t.cfg.ClickOutside))
	case ov.ClickOutside != nil:
		opts = append(opts, dropdown.WithClickOutside(*ov.ClickOutside))
	case d.ClickOutside != nil:
		opts = append(opts, dropdown.WithClickOutside(*d.ClickOutside))
	}

	z := t.cfg.ZIndex
	if z == 0 {
		z = d.ZIndex
	}
	opts = append(opts, dropdown.WithZIndex(z))

	if s := firstNonEmpty(t.cfg.Mount, d.Mount); s != "" {
		opts = append(opts, dropdown.WithMountStrategy(dropdown.MountStrategy(s)))
	}

	if t.cfg.Controlled {
		opts = append(opts, dropdown.WithOpen(&t.open))
	} else {
		opts = append(opts, dropdown.WithOpen(nil))
	}
	return opts
}

// reconcileContent discards menu state once lazily mounted content has
// been unmounted, so the next show starts fresh.
func (t *trigger) reconcileContent() {
	if t.dd.Frame().ContentMounted {
		return
	}
	if t.menuDirty {
		t.menu = NewMenuModel(t.cfg.Items)
		t.menuDirty = false
	}
}

// label is the button text, marked when the overlay is controlled.
func (t *trigger) label() string {
	l := t.cfg.Label
	if l == "" {
		l = string(t.wrapperID)
	}
	if t.cfg.Controlled {
		l += " *"
	}
	return l
}

// renderButton draws the trigger as a bordered button.
func (t *trigger) renderButton(focused bool) string {
	s := Styles()
	style := s.Trigger
	switch {
	case t.dd.Frame().Visible:
		style = s.TriggerActive
	case focused:
		style = s.TriggerFocus
	}
	return style.Render(t.label())
}

// buttonSize returns the cell size of the rendered button.
func (t *trigger) buttonSize() (w, h int) {
	return width.BlockSize(t.renderButton(false))
}

// renderOverlay draws the overlay panel. It returns "" while content is
// not mounted.
func (t *trigger) renderOverlay(md *MarkdownRenderer) string {
	if !t.dd.Frame().ContentMounted {
		return ""
	}
	s := Styles()
	var body string
	if t.isMenu() {
		body = t.menu.View()
	} else {
		w := t.panelWidth
		if w <= 0 {
			w = defaultPanelWidth
		}
		body = md.Render(t.markdown, w)
		if t.panelTitle != "" {
			body = s.OverlayHeader.Render(t.panelTitle) + "\n" + body
		}
		if body == "" {
			body = s.Muted.Render("(empty)")
		}
	}
	return s.Overlay.Render(body)
}

// overlayRowItem maps a row inside the rendered overlay to a menu item id.
func (t *trigger) overlayRowItem(row int) (dropdown.ElementID, bool) {
	if !t.isMenu() {
		return "", false
	}
	// row 0 is the top border
	idx, ok := t.menu.ItemAtRow(row - 1)
	if !ok {
		return "", false
	}
	return t.itemID(idx), true
}

func (t *trigger) itemID(idx int) dropdown.ElementID {
	return dropdown.ElementID(fmt.Sprintf("%s/item/%d", t.overlayID, idx))
}

// itemIndex parses an item id produced by itemID.
func (t *trigger) itemIndex(id dropdown.ElementID) (int, bool) {
	rest, ok := strings.CutPrefix(string(id), string(t.overlayID)+"/item/")
	if !ok {
		return 0, false
	}
	var idx int
	if _, err := fmt.Sscanf(rest, "%d", &idx); err != nil || idx < 0 || idx >= len(t.cfg.Items) {
		return 0, false
	}
	return idx, true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

