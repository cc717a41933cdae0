package render

import (
	"io"

	"github.com/mwiater/llmboard/internal/accordion"
	"github.com/mwiater/llmboard/internal/board"
	"github.com/nao1215/markdown"
)

// Markdown writes the board as a Markdown document. Only the expanded FAQ
// entry carries its answer.
func Markdown(w io.Writer, b *board.Board, acc accordion.Accordion) error {
	page := BuildPage(b, acc)
	md := markdown.NewMarkdown(w)

	md.H1(page.Title)
	md.PlainText("")
	md.PlainText(markdown.Link(page.SubmitLabel, page.SubmitURL))
	md.PlainText("")

	for _, t := range page.Tables {
		md.H2(t.Name)
		md.PlainText("")
		md.PlainText(markdown.Link(DatasetLinkLabel, t.URL))
		md.PlainText("")

		rows := make([][]string, 0, len(t.Rows))
		for _, r := range t.Rows {
			rows = append(rows, r.Cells())
		}
		md.Table(markdown.TableSet{
			Header: TableHeader,
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.H2("FAQs")
	md.PlainText("")
	for _, item := range page.FAQs {
		md.H3(item.Question)
		md.PlainText("")
		if item.Expanded {
			md.PlainText(item.Answer)
			md.PlainText("")
		}
	}

	return md.Build()
}
