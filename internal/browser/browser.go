// Package browser hands external links to the host so they open in a new
// browser tab or window.
package browser

import (
	"io"

	"github.com/mwiater/llmboard/internal/board"
	"github.com/mwiater/llmboard/internal/logging"
	pkgbrowser "github.com/pkg/browser"
)

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(url string) error
}

// SystemOpener opens URLs with the host's default browser.
type SystemOpener struct{}

// NewSystemOpener returns a SystemOpener. The helper process output that
// pkg/browser would otherwise copy to the terminal is discarded so it
// cannot corrupt an interactive screen.
func NewSystemOpener() SystemOpener {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return SystemOpener{}
}

// Open implements Opener.
func (SystemOpener) Open(url string) error {
	return pkgbrowser.OpenURL(url)
}

// Dispatcher supplies the right URL for each link on the page.
type Dispatcher struct {
	opener Opener
}

// NewDispatcher returns a Dispatcher backed by opener.
func NewDispatcher(opener Opener) *Dispatcher {
	return &Dispatcher{opener: opener}
}

// OpenSubmission opens the submission form.
func (d *Dispatcher) OpenSubmission(b *board.Board) {
	d.open("open-submission", b.SubmitURL())
}

// OpenDataset opens the reference page of g exactly as written.
func (d *Dispatcher) OpenDataset(g board.DatasetGroup) {
	d.open("open-dataset", g.URL)
}

// open does not report failures: whether the host actually shows the page
// (popup blockers, no browser installed) is outside the viewer's control.
func (d *Dispatcher) open(action, url string) {
	err := d.opener.Open(url)
	logging.LogAction(action, url, err)
}

