package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mwiater/llmboard/internal/accordion"
	"github.com/mwiater/llmboard/internal/board"
)

const defaultTextWidth = 80

// Styles holds the lipgloss styles for terminal output.
type Styles struct {
	Title    lipgloss.Style
	Button   lipgloss.Style
	Dataset  lipgloss.Style
	Link     lipgloss.Style
	Header   lipgloss.Style
	EvenRow  lipgloss.Style
	OddRow   lipgloss.Style
	Border   lipgloss.Style
	FAQTitle lipgloss.Style
	Question lipgloss.Style
	Answer   lipgloss.Style
}

// DefaultStyles mirrors the dark page: gray table rows alternating between
// two shades, blue links, yellow FAQ heading.
func DefaultStyles() Styles {
	cell := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Button:   lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("0")).Foreground(lipgloss.Color("255")).Padding(0, 2),
		Dataset:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Link:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("75")),
		Header:   cell.Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("234")),
		EvenRow:  cell.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
		OddRow:   cell.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		FAQTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Question: lipgloss.NewStyle().Foreground(lipgloss.Color("80")),
		Answer:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")).PaddingLeft(2),
	}
}

// PlainStyles keeps layout but drops every color attribute.
func PlainStyles() Styles {
	cell := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Button:   plain,
		Dataset:  plain,
		Link:     plain,
		Header:   cell,
		EvenRow:  cell,
		OddRow:   cell,
		Border:   plain,
		FAQTitle: plain,
		Question: plain,
		Answer:   plain.PaddingLeft(2),
	}
}

// TableString renders one dataset table. The header row comes first and
// data rows alternate between EvenRow and OddRow.
func TableString(t Table, s Styles) string {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, r.Cells())
	}
	odd := make([]bool, len(t.Rows))
	for i, r := range t.Rows {
		odd[i] = r.Odd
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		Headers(TableHeader...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.Header
			case row >= 0 && row < len(odd) && odd[row]:
				return s.OddRow
			default:
				return s.EvenRow
			}
		})
	return tbl.String()
}

// DatasetHeading renders a dataset name next to its reference link.
func DatasetHeading(t Table, s Styles) string {
	return fmt.Sprintf("%s  %s %s", s.Dataset.Render(t.Name), s.Link.Render(DatasetLinkLabel+":"), t.URL)
}

// FAQMarker returns the disclosure marker for an FAQ header.
func FAQMarker(expanded bool) string {
	if expanded {
		return "▾"
	}
	return "▸"
}

// FAQString renders an FAQ entry; the answer appears only when expanded.
func FAQString(item FAQItem, s Styles, width int) string {
	var b strings.Builder
	b.WriteString(s.Question.Render(FAQMarker(item.Expanded) + " " + item.Question))
	if item.Expanded {
		b.WriteString("\n")
		b.WriteString(s.Answer.Width(max(width, 20)).Render(item.Answer))
	}
	return b.String()
}

// Text writes the board as styled terminal text.
func Text(w io.Writer, b *board.Board, acc accordion.Accordion, opts Options) error {
	page := BuildPage(b, acc)
	s := DefaultStyles()
	if opts.NoColor {
		s = PlainStyles()
	}
	width := opts.Width
	if width <= 0 {
		width = defaultTextWidth
	}

	var out strings.Builder
	out.WriteString(s.Title.Render(page.Title) + "\n\n")
	out.WriteString(s.Button.Render(page.SubmitLabel) + " " + page.SubmitURL + "\n\n")
	for _, t := range page.Tables {
		out.WriteString(DatasetHeading(t, s) + "\n")
		out.WriteString(TableString(t, s) + "\n\n")
	}
	out.WriteString(s.FAQTitle.Render("FAQs") + "\n\n")
	for _, item := range page.FAQs {
		out.WriteString(FAQString(item, s, width) + "\n")
	}

	_, err := io.WriteString(w, out.String())
	return err
}
