package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/polykit/polykit/book"
	"github.com/polykit/polykit/theme"
)

// storyItem adapts a book.Story for the bubbles list.
type storyItem struct {
	story book.Story
}

func (i storyItem) FilterValue() string {
	return i.story.Name + " " + i.story.Group
}

// storyDelegate renders one story per row: a muted group column, then
// the story name. Styles derive from the active theme; the browser
// swaps the delegate when the theme reloads.
type storyDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	group    lipgloss.Style
}

func newStoryDelegate(th *theme.Theme) storyDelegate {
	return storyDelegate{
		normal:   lipgloss.NewStyle().Foreground(lipgloss.Color(th.Colors.Text)),
		selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.Colors.Primary)),
		group:    lipgloss.NewStyle().Foreground(lipgloss.Color(th.Colors.Muted)),
	}
}

func (d storyDelegate) Height() int {
	return 1
}

func (d storyDelegate) Spacing() int {
	return 0
}

func (d storyDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d storyDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	it, ok := listItem.(storyItem)
	if !ok {
		return
	}

	prefix := "  "
	style := d.normal
	if index == m.Index() {
		prefix = "> "
		style = d.selected
	}
	row := prefix + d.group.Render(fmt.Sprintf("%-11s", it.story.Group)) + it.story.Name
	fmt.Fprint(w, style.Render(row))
}
