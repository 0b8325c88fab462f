package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/sahilm/fuzzy"

	"github.com/polykit/polykit"
	"github.com/polykit/polykit/book"
	"github.com/polykit/polykit/breakpoint"
	"github.com/polykit/polykit/export"
	"github.com/polykit/polykit/theme"
)

const (
	listPaneWidth = 34
	viewportStep  = 16 // units nudged per +/- press
	minViewport   = 64
)

// themeReloadedMsg carries a freshly loaded theme from the watcher.
type themeReloadedMsg struct {
	th *theme.Theme
}

// themeClosedMsg signals that the theme watcher shut down.
type themeClosedMsg struct{}

// browserModel is the bubbletea model for the story browser: a story
// list on the left, a live preview at a simulated viewport width on the
// right, with notes and help overlays.
type browserModel struct {
	logger  *log.Logger
	stories []book.Story
	th      *theme.Theme
	themes  <-chan *theme.Theme

	list      list.Model
	filter    textinput.Model
	filtering bool
	notes     viewport.Model
	notesOpen bool
	help      help.Model
	keys      keyMap

	vpIndex int     // position in the preset cycle
	vpWidth float64 // simulated viewport width in layout units
	scale   float64 // layout units per terminal cell

	width    int
	height   int
	contentH int
	listW    int
	status   string
	quitting bool
}

func newBrowser(cfg Config, logger *log.Logger, th *theme.Theme, themes <-chan *theme.Theme) browserModel {
	stories := book.Builtin().All()

	l := list.New(storyItems(stories), newStoryDelegate(th), 0, 0)
	l.Title = "stories"
	l.Styles.Title = th.Title()
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	filter := textinput.New()
	filter.Placeholder = "filter stories..."
	filter.CharLimit = 64
	filter.Width = listPaneWidth - 6

	return browserModel{
		logger:  logger,
		stories: stories,
		th:      th,
		themes:  themes,
		list:    l,
		filter:  filter,
		notes:   viewport.New(0, 0),
		help:    help.New(),
		keys:    defaultKeyMap(),
		vpIndex: presetIndex(cfg.Viewport),
		vpWidth: cfg.Viewport,
		scale:   cfg.UnitScale,
	}
}

func storyItems(stories []book.Story) []list.Item {
	items := make([]list.Item, len(stories))
	for i, s := range stories {
		items[i] = storyItem{story: s}
	}
	return items
}

// presetIndex returns the position of the narrowest preset at least as
// wide as w, so cycling continues upward from the starting width.
func presetIndex(w float64) int {
	for i, p := range export.Viewports {
		if p >= w {
			return i
		}
	}
	return len(export.Viewports) - 1
}

// waitForTheme blocks on the watcher channel and converts the next
// emission into a message. Returns nil when hot reload is disabled.
func waitForTheme(ch <-chan *theme.Theme) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		th, ok := <-ch
		if !ok {
			return themeClosedMsg{}
		}
		return themeReloadedMsg{th: th}
	}
}

func (m browserModel) Init() tea.Cmd {
	return waitForTheme(m.themes)
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		(&m).resizePanes()
		if m.notesOpen {
			(&m).renderNotes()
		}
		return m, nil

	case themeReloadedMsg:
		m.th = msg.th
		m.list.SetDelegate(newStoryDelegate(m.th))
		m.list.Styles.Title = m.th.Title()
		m.status = fmt.Sprintf("theme %q reloaded", msg.th.Name)
		if m.notesOpen {
			(&m).renderNotes()
		}
		return m, waitForTheme(m.themes)

	case themeClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.Reset()
			cmd := (&m).applyFilter()
			(&m).resizePanes()
			return m, cmd
		case "enter":
			m.filtering = false
			m.filter.Blur()
			(&m).resizePanes()
			return m, nil
		case "up", "down":
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, tea.Batch(cmd, (&m).applyFilter())
	}

	if m.notesOpen {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Notes):
			m.notesOpen = false
			return m, nil
		case key.Matches(msg, m.keys.Copy):
			(&m).copySnippet()
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		(&m).resizePanes()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.help.ShowAll = false
		(&m).resizePanes()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		(&m).resizePanes()
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Viewport):
		m.vpIndex = (m.vpIndex + 1) % len(export.Viewports)
		m.vpWidth = export.Viewports[m.vpIndex]
		return m, nil

	case key.Matches(msg, m.keys.Wider):
		m.vpWidth += viewportStep
		return m, nil

	case key.Matches(msg, m.keys.Narrower):
		if m.vpWidth-viewportStep >= minViewport {
			m.vpWidth -= viewportStep
		}
		return m, nil

	case key.Matches(msg, m.keys.Notes):
		(&m).renderNotes()
		m.notesOpen = true
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		(&m).copySnippet()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// applyFilter narrows the list to fuzzy matches against the current
// query, in match order. An empty query restores every story.
func (m *browserModel) applyFilter() tea.Cmd {
	query := m.filter.Value()
	if query == "" {
		return m.list.SetItems(storyItems(m.stories))
	}

	targets := make([]string, len(m.stories))
	for i, s := range m.stories {
		targets[i] = s.Name + " " + s.Group
	}
	matches := fuzzy.Find(query, targets)

	items := make([]list.Item, 0, len(matches))
	for _, match := range matches {
		items = append(items, storyItem{story: m.stories[match.Index]})
	}
	cmd := m.list.SetItems(items)
	m.list.Select(0)
	return cmd
}

// renderNotes fills the notes viewport with the selected story's notes
// rendered as markdown. Falls back to the raw text when the renderer is
// unavailable.
func (m *browserModel) renderNotes() {
	item, ok := m.list.SelectedItem().(storyItem)
	if !ok {
		m.notes.SetContent("no story selected")
		return
	}

	md := "# " + item.story.Name + "\n\n" + item.story.Notes
	width := m.notes.Width
	if width <= 0 {
		width = 60
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", "err", err)
		m.notes.SetContent(md)
		m.notes.GotoTop()
		return
	}
	out, err := r.Render(md)
	if err != nil {
		m.logger.Warn("rendering notes failed", "story", item.story.Name, "err", err)
		out = md
	}
	m.notes.SetContent(out)
	m.notes.GotoTop()
}

// copySnippet puts the selected story's notes on the system clipboard.
func (m *browserModel) copySnippet() {
	item, ok := m.list.SelectedItem().(storyItem)
	if !ok {
		return
	}
	if err := clipboard.WriteAll(item.story.Notes); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = fmt.Sprintf("copied %q notes", item.story.Name)
}

// resizePanes recomputes pane geometry from the terminal size and the
// current chrome (filter line, expanded help).
func (m *browserModel) resizePanes() {
	if m.width == 0 {
		return
	}
	m.help.Width = m.width

	helpH := lipgloss.Height(m.help.View(m.keys))
	m.contentH = m.height - 1 - helpH
	if m.contentH < 5 {
		m.contentH = 5
	}

	m.listW = listPaneWidth
	if half := m.width / 2; m.listW > half {
		m.listW = half
	}

	innerH := m.contentH - 2
	listH := innerH
	if m.filtering {
		listH--
	}
	m.list.SetSize(m.listW-2, listH)

	m.notes.Width = m.width - m.listW - 2
	m.notes.Height = innerH
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading stories..."
	}

	helpView := m.help.View(m.keys)
	statusView := m.statusView()

	innerH := m.contentH - 2
	listInner := m.listW - 2
	previewInner := m.width - m.listW - 2

	leftContent := m.list.View()
	if m.filtering {
		leftContent = m.filter.View() + "\n" + leftContent
	}
	left := m.th.Panel(m.filtering).Width(listInner).Height(innerH).Render(leftContent)

	var rightContent string
	if m.notesOpen {
		rightContent = m.notes.View()
	} else {
		rightContent = m.previewView(previewInner, innerH)
	}
	right := m.th.Panel(m.notesOpen).Width(previewInner).Height(innerH).Render(rightContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, content, statusView, helpView)
}

// previewView builds the selected story fresh, lays it out at the
// simulated viewport width, and composites it clipped to the pane.
func (m browserModel) previewView(innerW, innerH int) string {
	item, ok := m.list.SelectedItem().(storyItem)
	if !ok {
		return m.th.Subtle().Render("no stories match")
	}

	f := item.story.Build(m.th, m.vpWidth)
	f.OnResize(m.vpWidth, float64(innerH)*m.scale)
	out := polykit.Render(f, polykit.WithCellScale(m.scale))
	return lipgloss.NewStyle().MaxWidth(innerW).MaxHeight(innerH).Render(out)
}

func (m browserModel) statusView() string {
	name := "none"
	if item, ok := m.list.SelectedItem().(storyItem); ok {
		name = item.story.Group + "/" + item.story.Name
	}
	bp := breakpoint.ForWidth(m.vpWidth)
	line := fmt.Sprintf(" %s  %.0fu %s  theme %s", name, m.vpWidth, bp, m.th.Name)
	if m.status != "" {
		line += "  " + m.status
	}
	return lipgloss.NewStyle().
		Width(m.width).
		MaxWidth(m.width).
		Foreground(lipgloss.Color(m.th.Colors.Text)).
		Background(lipgloss.Color(m.th.Colors.Surface)).
		Render(line)
}
