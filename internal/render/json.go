package render

import (
	"encoding/json"
	"io"

	"github.com/mwiater/llmboard/internal/accordion"
	"github.com/mwiater/llmboard/internal/board"
)

// jsonDocument is the board plus the accordion state. ExpandedFAQ is null
// when nothing is expanded.
type jsonDocument struct {
	Title       string               `json:"title"`
	Submit      board.Submission     `json:"submit"`
	Datasets    []board.DatasetGroup `json:"datasets"`
	FAQs        []board.FAQEntry     `json:"faqs"`
	ExpandedFAQ *int                 `json:"expandedFaq"`
}

// JSON writes the board as indented JSON.
func JSON(w io.Writer, b *board.Board, acc accordion.Accordion) error {
	doc := jsonDocument{
		Title:    b.Title,
		Submit:   board.Submission{Label: b.Submit.Label, URL: b.SubmitURL()},
		Datasets: b.Datasets,
		FAQs:     b.FAQs,
	}
	if idx, ok := acc.Expanded(); ok {
		doc.ExpandedFAQ = &idx
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
