// Package tui provides the interactive terminal view of the leaderboard.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/llmboard/internal/accordion"
	"github.com/mwiater/llmboard/internal/board"
	"github.com/mwiater/llmboard/internal/logging"
	"github.com/mwiater/llmboard/internal/render"
	"github.com/mwiater/llmboard/internal/util"
)

// Links opens the page's external links.
type Links interface {
	OpenSubmission(b *board.Board)
	OpenDataset(g board.DatasetGroup)
}

// Options configures the view.
type Options struct {
	NoColor bool
}

// targetKind identifies what a focusable line activates.
type targetKind int

const (
	// targetSubmit is the submission control.
	targetSubmit targetKind = iota
	// targetDataset is a dataset's reference link.
	targetDataset
	// targetFAQ is an FAQ header.
	targetFAQ
)

// target is one focusable element; index points into Datasets or FAQs.
type target struct {
	kind  targetKind
	index int
}

const (
	headerHeight = 2
	footerHeight = 2
)

// linkOpenedMsg reports that a link was handed to the host.
type linkOpenedMsg struct{ url string }

// model is the Bubble Tea model for the leaderboard view.
type model struct {
	board    *board.Board
	links    Links
	faq      accordion.Accordion
	targets  []target
	focus    int
	lineOf   []int
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	styles   render.Styles
	plain    bool
	status   string
	width    int
	height   int
	ready    bool
}

// newModel builds the view with nothing expanded and the submission
// control focused.
func newModel(b *board.Board, links Links, opts Options) *model {
	targets := make([]target, 0, 1+len(b.Datasets)+len(b.FAQs))
	targets = append(targets, target{kind: targetSubmit})
	for i := range b.Datasets {
		targets = append(targets, target{kind: targetDataset, index: i})
	}
	for i := range b.FAQs {
		targets = append(targets, target{kind: targetFAQ, index: i})
	}

	styles := render.DefaultStyles()
	if opts.NoColor {
		styles = render.PlainStyles()
	}

	return &model{
		board:    b,
		links:    links,
		targets:  targets,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     defaultKeyMap(),
		styles:   styles,
		plain:    opts.NoColor,
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case linkOpenedMsg:
		m.status = "Opened " + msg.url
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Next):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Prev):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
			return m, nil
		case key.Matches(msg, m.keys.Activate):
			return m, m.activate()
		}
	}
	return m, nil
}

// moveFocus shifts focus by delta, wrapping at both ends.
func (m *model) moveFocus(delta int) {
	if len(m.targets) == 0 {
		return
	}
	m.focus = (m.focus + delta + len(m.targets)) % len(m.targets)
	m.status = ""
	m.refresh()
}

// activate runs the focused element. FAQ headers toggle synchronously;
// links are opened from a command so the host call never blocks a frame.
func (m *model) activate() tea.Cmd {
	if len(m.targets) == 0 {
		return nil
	}
	t := m.targets[m.focus]
	switch t.kind {
	case targetFAQ:
		m.faq.Toggle(t.index)
		logging.LogAction("toggle-faq", m.board.FAQs[t.index].Question, nil)
		m.refresh()
		return nil
	case targetSubmit:
		b, links := m.board, m.links
		return func() tea.Msg {
			links.OpenSubmission(b)
			return linkOpenedMsg{url: b.SubmitURL()}
		}
	case targetDataset:
		g, links := m.board.Datasets[t.index], m.links
		return func() tea.Msg {
			links.OpenDataset(g)
			return linkOpenedMsg{url: g.URL}
		}
	}
	return nil
}

// refresh re-renders the content and keeps the focused line visible.
func (m *model) refresh() {
	if !m.ready {
		return
	}
	content, lineOf := m.content()
	m.lineOf = lineOf
	m.viewport.SetContent(content)

	if m.focus >= len(lineOf) {
		return
	}
	line := lineOf[m.focus]
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// content renders the page and records the first line of every target.
func (m *model) content() (string, []int) {
	page := render.BuildPage(m.board, m.faq)
	lineOf := make([]int, len(m.targets))

	var lines []string
	add := func(s string) {
		lines = append(lines, strings.Split(s, "\n")...)
	}
	ti := 0
	addTarget := func(s string) {
		lineOf[ti] = len(lines)
		add(m.focusable(ti, s))
		ti++
	}

	addTarget(m.styles.Button.Render(page.SubmitLabel))
	add("")
	for _, t := range page.Tables {
		addTarget(render.DatasetHeading(t, m.styles))
		add(render.TableString(t, m.styles))
		add("")
	}
	add(m.styles.FAQTitle.Render("FAQs"))
	add("")
	for _, item := range page.FAQs {
		addTarget(render.FAQString(item, m.styles, m.width-4))
	}
	return strings.Join(lines, "\n"), lineOf
}

// focusable prefixes s with a cursor when target i has focus.
func (m *model) focusable(i int, s string) string {
	if i != m.focus {
		return "  " + s
	}
	if m.plain {
		return "› " + s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("›") + " " + s
}

// focusedURL returns the link behind the focused element, if any.
func (m *model) focusedURL() string {
	if len(m.targets) == 0 {
		return ""
	}
	t := m.targets[m.focus]
	switch t.kind {
	case targetSubmit:
		return m.board.SubmitURL()
	case targetDataset:
		return m.board.Datasets[t.index].URL
	}
	return ""
}

// View implements tea.Model.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		renderTitleBadge(m.board.Title, m.plain),
		renderCountBadge(len(m.board.Datasets), m.board.RowCount(), m.plain),
		renderFAQBadge(m.faq, len(m.board.FAQs), m.plain),
	)

	status := m.status
	if status == "" {
		if url := m.focusedURL(); url != "" {
			status = "enter opens " + url
		} else {
			status = "enter expands or collapses"
		}
	}
	status = util.TruncateRunes(status, max(m.width-1, 0))

	return fmt.Sprintf("%s\n\n%s\n%s\n%s", header, m.viewport.View(), status, m.help.View(m.keys))
}

// Run starts the interactive view and blocks until the user quits or ctx
// is cancelled. The accordion state is discarded on return.
func Run(ctx context.Context, b *board.Board, links Links, opts Options) error {
	p := tea.NewProgram(newModel(b, links, opts), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run leaderboard view: %w", err)
	}
	return nil
}
