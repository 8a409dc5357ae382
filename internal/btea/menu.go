// ABOUTME: MenuModel is a fuzzy-filterable, scrollable item list shown inside an overlay
// ABOUTME: Value semantics; a fresh model is created whenever lazily mounted content remounts

package btea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/tui-dropdown/pkg/tui/fuzzy"
	"github.com/mauromedda/tui-dropdown/pkg/tui/width"
)

const (
	defaultMenuHeight = 8
	filterPlaceholder = "type to filter"
)

// MenuModel lists items with a filter line on top.
type MenuModel struct {
	items     []string
	visible   []int // indexes into items
	selected  int
	scrollOff int
	maxHeight int
	filter    string
	width     int
}

// NewMenuModel creates a MenuModel over items. The rendered width is fixed
// by the longest item so filtering never changes the overlay width.
func NewMenuModel(items []string) MenuModel {
	w := width.VisibleWidth(filterPlaceholder) + 2
	for _, it := range items {
		w = max(w, width.VisibleWidth(it)+2)
	}
	m := MenuModel{
		items:     items,
		maxHeight: defaultMenuHeight,
		width:     w,
	}
	m.applyFilter()
	return m
}

// Init returns nil; no commands needed at startup.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and filter editing keys.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.Type {
	case tea.KeyUp:
		m.moveUp()
	case tea.KeyDown:
		m.moveDown()
	case tea.KeyBackspace:
		if r := []rune(m.filter); len(r) > 0 {
			m = m.SetFilter(string(r[:len(r)-1]))
		}
	case tea.KeyEsc:
		m = m.SetFilter("")
	case tea.KeyRunes:
		m = m.SetFilter(m.filter + string(km.Runes))
	}
	return m, nil
}

// View renders the filter line followed by the visible window of items.
func (m MenuModel) View() string {
	s := Styles()
	var b strings.Builder

	if m.filter == "" {
		b.WriteString(s.Muted.Render(width.PadRight("/ "+filterPlaceholder, m.width)))
	} else {
		b.WriteString(s.FilterPrompt.Render(width.PadRight(width.TruncateToWidth("/ "+m.filter, m.width), m.width)))
	}

	end := min(m.scrollOff+m.maxHeight, len(m.visible))
	for i := m.scrollOff; i < end; i++ {
		b.WriteByte('\n')
		line := width.PadRight(" "+m.items[m.visible[i]], m.width)
		if i == m.selected {
			line = s.Selection.Render(line)
		}
		b.WriteString(line)
	}
	if len(m.visible) == 0 {
		b.WriteByte('\n')
		b.WriteString(s.Muted.Render(width.PadRight(" no matches", m.width)))
	}
	return b.String()
}

// SetFilter sets the fuzzy filter string and refilters. Returns a new model.
func (m MenuModel) SetFilter(f string) MenuModel {
	m.filter = f
	m.selected = 0
	m.scrollOff = 0
	m.applyFilter()
	return m
}

// SetMaxHeight limits the number of item rows. Returns a new model.
func (m MenuModel) SetMaxHeight(h int) MenuModel {
	m.maxHeight = max(1, h)
	m.adjustScroll()
	return m
}

// Filter returns the current filter text.
func (m MenuModel) Filter() string {
	return m.filter
}

// Selected returns the selected item and whether there is one.
func (m MenuModel) Selected() (string, bool) {
	if len(m.visible) == 0 {
		return "", false
	}
	return m.items[m.visible[m.selected]], true
}

// VisibleItems returns the filtered items in display order.
func (m MenuModel) VisibleItems() []string {
	out := make([]string, len(m.visible))
	for i, idx := range m.visible {
		out[i] = m.items[idx]
	}
	return out
}

// ItemAtRow maps a content row (0 is the filter line) to the index of the
// original item drawn there.
func (m MenuModel) ItemAtRow(row int) (int, bool) {
	if row < 1 {
		return 0, false
	}
	i := m.scrollOff + row - 1
	if i >= min(m.scrollOff+m.maxHeight, len(m.visible)) {
		return 0, false
	}
	return m.visible[i], true
}

func (m *MenuModel) moveUp() {
	if m.selected > 0 {
		m.selected--
		m.adjustScroll()
	}
}

func (m *MenuModel) moveDown() {
	if m.selected < len(m.visible)-1 {
		m.selected++
		m.adjustScroll()
	}
}

func (m *MenuModel) adjustScroll() {
	if m.selected < m.scrollOff {
		m.scrollOff = m.selected
	}
	if m.selected >= m.scrollOff+m.maxHeight {
		m.scrollOff = m.selected - m.maxHeight + 1
	}
}

func (m *MenuModel) applyFilter() {
	m.visible = fuzzy.Filter(m.filter, m.items)
}
