// Package render turns a board and the accordion state into static output:
// styled terminal text, Markdown, a standalone HTML page, or JSON.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mwiater/llmboard/internal/accordion"
	"github.com/mwiater/llmboard/internal/board"
)

// Format selects an output writer.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// DatasetLinkLabel is the text of every dataset's reference link.
const DatasetLinkLabel = "View Dataset"

// TableHeader is the column header shared by every dataset table.
var TableHeader = []string{"Rank", "Model", "Score", "Last Updated"}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Options tunes the text writer.
type Options struct {
	NoColor bool
	Width   int
}

// Page is the display model shared by every writer.
type Page struct {
	Title       string
	SubmitLabel string
	SubmitURL   string
	Tables      []Table
	FAQs        []FAQItem
}

// Table is one dataset group ready for display.
type Table struct {
	Name string
	URL  string
	Rows []Row
}

// Row is one model result in display order. Odd marks every second row for
// alternating backgrounds, counting from zero.
type Row struct {
	Rank    string
	Model   string
	Score   string
	Updated string
	Odd     bool
}

// Cells returns the row in TableHeader column order.
func (r Row) Cells() []string {
	return []string{r.Rank, r.Model, r.Score, r.Updated}
}

// FAQItem is one FAQ entry with its expanded flag resolved.
type FAQItem struct {
	Index    int
	Question string
	Answer   string
	Expanded bool
}

// BuildPage resolves b and acc into a Page. Rows keep the order and rank
// values of the input.
func BuildPage(b *board.Board, acc accordion.Accordion) Page {
	page := Page{
		Title:       b.Title,
		SubmitLabel: b.Submit.Label,
		SubmitURL:   b.SubmitURL(),
		Tables:      make([]Table, 0, len(b.Datasets)),
		FAQs:        make([]FAQItem, 0, len(b.FAQs)),
	}
	for _, g := range b.Datasets {
		t := Table{Name: g.Name, URL: g.URL, Rows: make([]Row, 0, len(g.Models))}
		for i, m := range g.Models {
			t.Rows = append(t.Rows, Row{
				Rank:    strconv.Itoa(m.Rank),
				Model:   m.Model,
				Score:   board.FormatScore(m.Score),
				Updated: m.Updated,
				Odd:     i%2 == 1,
			})
		}
		page.Tables = append(page.Tables, t)
	}
	for i, f := range b.FAQs {
		page.FAQs = append(page.FAQs, FAQItem{
			Index:    i,
			Question: f.Question,
			Answer:   f.Answer,
			Expanded: acc.IsExpanded(i),
		})
	}
	return page
}

// Write renders b in format f.
func Write(w io.Writer, f Format, b *board.Board, acc accordion.Accordion, opts Options) error {
	switch f {
	case FormatText:
		return Text(w, b, acc, opts)
	case FormatMarkdown:
		return Markdown(w, b, acc)
	case FormatHTML:
		return HTML(w, b, acc)
	case FormatJSON:
		return JSON(w, b, acc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
