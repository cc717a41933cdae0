package board

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const expectedSubmitURL = "https://docs.google.com/forms/d/e/1FAIpQLSdydF_8sfJQP0ub6VLs9uced32kfHxrvlQzyFRf0IhR1MlMRg/viewform?usp=dialog"

func TestDefaultBoardContent(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if b.Title != "LLM Leaderboards" {
		t.Fatalf("unexpected title %q", b.Title)
	}
	if len(b.Datasets) != 10 {
		t.Fatalf("expected 10 dataset groups, got %d", len(b.Datasets))
	}
	if len(b.FAQs) != 5 {
		t.Fatalf("expected 5 FAQ entries, got %d", len(b.FAQs))
	}
	if got := b.SubmitURL(); got != expectedSubmitURL {
		t.Fatalf("submit URL = %q, want %q", got, expectedSubmitURL)
	}
	if b.Submit.URL != expectedSubmitURL {
		t.Fatalf("expected submit URL to be trimmed on decode, got %q", b.Submit.URL)
	}
	if b.RowCount() != 63 {
		t.Fatalf("expected 63 rows, got %d", b.RowCount())
	}
}

// TestFinanceBenchLiteralOrder checks that rows keep the order they were
// written in, including the score values as written.
func TestFinanceBenchLiteralOrder(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	g, ok := b.Dataset("FinanceBench - Retrieval Accuracy")
	if !ok {
		t.Fatal("FinanceBench group missing")
	}

	type row struct {
		Rank  int
		Model string
		Score string
	}
	var got []row
	for _, m := range g.Models {
		got = append(got, row{m.Rank, m.Model, FormatScore(m.Score)})
	}
	want := []row{
		{1, "GPT-4o Fine Tuned", "0.632"},
		{2, "Mistral Fine Tuned", "0.612"},
		{3, "LLaMA 3 Fine Tuned", "0.593"},
		{4, "Re-ranking", "0.573"},
		{5, "Query Expansiong", "0.256"},
		{6, "Base Case RAG", "0.24"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FinanceBench rows mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeKeepsInsertionOrder(t *testing.T) {
	doc := `
datasets:
  - name: Unsorted
    url: https://example.com/unsorted
    models:
      - {rank: 3, model: c, score: 0.1, updated: Jan}
      - {rank: 1, model: a, score: 0.9, updated: Jan}
      - {rank: 2, model: b, score: 0.5, updated: Jan}
faqs: []
`
	b, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	var names []string
	for _, m := range b.Datasets[0].Models {
		names = append(names, m.Model)
	}
	if diff := cmp.Diff([]string{"c", "a", "b"}, names); diff != "" {
		t.Fatalf("order changed (-want +got):\n%s", diff)
	}
	if b.Title != defaultTitle || b.Submit.Label != defaultSubmitLabel {
		t.Fatalf("expected defaults applied, got title=%q label=%q", b.Title, b.Submit.Label)
	}
}

func TestLoadJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "board.json")
	jsonDoc := `{"title":"T","submit":{"url":"  https://example.com/form "},"datasets":[{"name":"D","url":"https://example.com/d","models":[{"rank":1,"model":"m","score":182.73,"updated":"Feb 2025"}]}],"faqs":[{"question":"q","answer":"a"}]}`
	if err := os.WriteFile(jsonPath, []byte(jsonDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Load(json) error: %v", err)
	}
	if b.SubmitURL() != "https://example.com/form" {
		t.Fatalf("unexpected submit URL %q", b.SubmitURL())
	}
	if got := FormatScore(b.Datasets[0].Models[0].Score); got != "182.73" {
		t.Fatalf("unexpected score %q", got)
	}

	yamlPath := filepath.Join(dir, "board.yaml")
	if err := os.WriteFile(yamlPath, defaultData, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(yamlPath); err != nil {
		t.Fatalf("Load(yaml) error: %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDecodeSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "empty", doc: "", want: ""},
		{name: "missing faqs", doc: "datasets: []", want: "faqs"},
		{name: "rank not integer", doc: `
datasets:
  - name: D
    url: u
    models:
      - {rank: first, model: m, score: 1, updated: x}
faqs: []
`, want: "rank"},
		{name: "missing answer", doc: `
datasets: []
faqs:
  - question: q
`, want: "answer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			if !errors.Is(err, ErrSchema) {
				t.Fatalf("expected ErrSchema, got %v", err)
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error to mention %q, got %v", tt.want, err)
			}
		})
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	if _, err := Decode([]byte("datasets: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDatasetLookup(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	g, ok := b.Dataset("ARC-SMART")
	if !ok {
		t.Fatal("ARC-SMART missing")
	}
	if g.URL != "https://huggingface.co/datasets/vipulgupta/arc-smart" {
		t.Fatalf("unexpected URL %q", g.URL)
	}
	if len(g.Models) != 7 {
		t.Fatalf("expected 7 ARC-SMART rows, got %d", len(g.Models))
	}
	if _, ok := b.Dataset("arc-smart"); ok {
		t.Fatal("lookup should be exact")
	}
}

func TestFormatScore(t *testing.T) {
	tests := map[float64]string{
		0.24:   "0.24",
		0.9:    "0.9",
		0.8:    "0.8",
		182.73: "182.73",
		1:      "1",
	}
	for in, want := range tests {
		if got := FormatScore(in); got != want {
			t.Errorf("FormatScore(%v) = %q, want %q", in, got, want)
		}
	}
}
