package render

import (
	"html/template"
	"io"

	"github.com/mwiater/llmboard/internal/accordion"
	"github.com/mwiater/llmboard/internal/board"
)

// htmlData is the template view model.
type htmlData struct {
	Page
	Header    []string
	LinkLabel string
}

// HTML writes a standalone page. Every external link opens in a new tab.
func HTML(w io.Writer, b *board.Board, acc accordion.Accordion) error {
	return leaderboardTemplate.Execute(w, htmlData{
		Page:      BuildPage(b, acc),
		Header:    TableHeader,
		LinkLabel: DatasetLinkLabel,
	})
}

var leaderboardTemplate = template.Must(template.New("leaderboard").Parse(leaderboardTemplateHTML))

const leaderboardTemplateHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      --page: #111827;
      --card: #030712;
      --header: #111827;
      --row-even: #374151;
      --row-odd: #1F2937;
      --text: #FFFFFF;
      --link: #60A5FA;
      --faq-title: #EAB308;
    }
    body { background: var(--page); color: var(--text); font-family: sans-serif; margin: 0 0.75rem 5rem; }
    h1 { text-align: center; margin-top: 2rem; }
    .submit { display: block; width: max-content; margin: 0 auto 2rem; padding: 0.5rem 1.5rem; background: #000; color: var(--text); border-radius: 0.375rem; font-weight: 600; text-decoration: none; }
    .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(28rem, 1fr)); gap: 2rem; }
    .card { background: var(--card); border-radius: 0.5rem; padding: 1rem; }
    .card-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 1rem; }
    .card-header a { color: var(--link); font-size: 0.875rem; }
    table { width: 100%; border-collapse: collapse; text-align: center; }
    thead th { background: var(--header); padding: 1rem; }
    td { padding: 1rem; }
    tr.row-even td { background: var(--row-even); }
    tr.row-odd td { background: var(--row-odd); }
    .faqs { max-width: 75%; margin: 5rem auto 0; padding: 2.5rem; border-radius: 0.75rem; }
    .faqs-title { color: var(--faq-title); font-size: 1.875rem; font-weight: 600; margin-bottom: 2rem; }
    .faq { background: #1F2937; padding: 1rem 1.25rem; margin: 1rem 0; border-radius: 0.75rem; }
    .faq h2 { font-size: 1.25rem; font-weight: 500; margin: 0; color: #2DD4BF; }
    .faq-answer { margin-top: 0.5rem; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <a class="submit" href="{{ .SubmitURL }}" target="_blank" rel="noopener noreferrer">{{ .SubmitLabel }}</a>

  <div class="grid">
  {{- range .Tables }}
    <div class="card">
      <div class="card-header">
        <h2>{{ .Name }}</h2>
        <a href="{{ .URL }}" target="_blank" rel="noopener noreferrer">{{ $.LinkLabel }}</a>
      </div>
      <table>
        <thead>
          <tr>{{ range $.Header }}<th>{{ . }}</th>{{ end }}</tr>
        </thead>
        <tbody>
        {{- range .Rows }}
          <tr class="{{ if .Odd }}row-odd{{ else }}row-even{{ end }}"><td>{{ .Rank }}</td><td>{{ .Model }}</td><td>{{ .Score }}</td><td>{{ .Updated }}</td></tr>
        {{- end }}
        </tbody>
      </table>
    </div>
  {{- end }}
  </div>

  <div class="faqs">
    <div class="faqs-title">FAQs</div>
  {{- range .FAQs }}
    <div class="faq" data-index="{{ .Index }}">
      <div class="faq-header"><h2>{{ .Question }}</h2></div>
      {{- if .Expanded }}
      <div class="faq-answer"><p>{{ .Answer }}</p></div>
      {{- end }}
    </div>
  {{- end }}
  </div>
</body>
</html>
`
