package llmboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/llmboard/internal/board"
	"github.com/mwiater/llmboard/internal/browser"
	"github.com/mwiater/llmboard/internal/render"
	"github.com/mwiater/llmboard/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const submitURL = "https://docs.google.com/forms/d/e/1FAIpQLSdydF_8sfJQP0ub6VLs9uced32kfHxrvlQzyFRf0IhR1MlMRg/viewform?usp=dialog"

type recordingOpener struct {
	urls []string
}

func (r *recordingOpener) Open(url string) error {
	r.urls = append(r.urls, url)
	return nil
}

// resetFlags restores every flag to its default so runs do not leak into
// each other through the shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with a fresh config file and log file in a
// temp dir. configJSON may be empty.
func execute(t *testing.T, configJSON string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	if configJSON == "" {
		configJSON = "{}"
	}
	cfgPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(cfgPath, []byte(configJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	resetFlags(rootCmd)
	currentConfig = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgPath, "--logFile", filepath.Join(dir, "llmboard.log"), "--noColor"}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func withOpener(t *testing.T) *recordingOpener {
	t.Helper()
	rec := &recordingOpener{}
	orig := newOpener
	newOpener = func() browser.Opener { return rec }
	t.Cleanup(func() { newOpener = orig })
	return rec
}

func TestRenderJSONWithExpandedFAQ(t *testing.T) {
	out, err := execute(t, "", "render", "--format", "json", "--expand", "2")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	var doc struct {
		ExpandedFAQ *int `json:"expandedFaq"`
		Submit      struct {
			URL string `json:"url"`
		} `json:"submit"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if doc.ExpandedFAQ == nil || *doc.ExpandedFAQ != 2 {
		t.Fatalf("expected expandedFaq 2, got %v", doc.ExpandedFAQ)
	}
	if doc.Submit.URL != submitURL {
		t.Fatalf("unexpected submit URL %q", doc.Submit.URL)
	}
}

func TestRenderHTMLToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "site", "index.html")
	out, err := execute(t, "", "render", "-f", "html", "-o", target)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "Wrote html leaderboard to "+target) {
		t.Fatalf("unexpected output: %s", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `href="`+submitURL+`"`) {
		t.Fatalf("HTML missing submit link")
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := execute(t, "", "render", "--expand", "9"); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Fatalf("expected out of range error, got %v", err)
	}
	if _, err := execute(t, "", "render", "--format", "pdf"); !errors.Is(err, render.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestConfigFileAndEnvPrecedence(t *testing.T) {
	out, err := execute(t, `{"format": "markdown", "expandFaq": 0}`, "render")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, "# LLM Leaderboards") {
		t.Fatalf("expected markdown from config file, got:\n%s", out)
	}
	if !strings.Contains(out, "nvidra@anote.ai") {
		t.Fatalf("expected FAQ 0 expanded from config file")
	}

	t.Setenv("LLMBOARD_FORMAT", "json")
	out, err = execute(t, `{"format": "markdown"}`, "render")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected env to override config file, got:\n%s", out)
	}

	out, err = execute(t, `{"format": "markdown"}`, "render", "--format", "html")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("expected flag to override env and config, got:\n%s", out[:min(len(out), 80)])
	}
}

func TestOpenSubmit(t *testing.T) {
	rec := withOpener(t)
	out, err := execute(t, "", "open", "submit")
	if err != nil {
		t.Fatalf("open submit error: %v", err)
	}
	if len(rec.urls) != 1 || rec.urls[0] != submitURL {
		t.Fatalf("opened %v", rec.urls)
	}
	if !strings.Contains(out, submitURL) {
		t.Fatalf("expected URL in output, got %s", out)
	}
}

func TestOpenDataset(t *testing.T) {
	rec := withOpener(t)
	if _, err := execute(t, "", "open", "dataset", "TREC - Hierarchical Classification Accuracy"); err != nil {
		t.Fatalf("open dataset error: %v", err)
	}
	if len(rec.urls) != 1 || rec.urls[0] != "https://huggingface.co/datasets/CogComp/trec" {
		t.Fatalf("opened %v", rec.urls)
	}

	if _, err := execute(t, "", "open", "dataset", "Nope"); !errors.Is(err, board.ErrDatasetNotFound) {
		t.Fatalf("expected ErrDatasetNotFound, got %v", err)
	}
	if len(rec.urls) != 1 {
		t.Fatalf("unknown dataset should not open anything, got %v", rec.urls)
	}
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "", "validate")
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if !strings.Contains(out, "(built-in): 10 datasets, 63 results, 5 FAQ entries") {
		t.Fatalf("unexpected output: %s", out)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("datasets: {}\nfaqs: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "", "validate", bad); !errors.Is(err, board.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

func TestDataFlagSwitchesBoard(t *testing.T) {
	data := filepath.Join(t.TempDir(), "board.yaml")
	doc := `
title: Internal Evals
submit: {url: "https://example.com/submit"}
datasets:
  - name: Smoke
    url: https://example.com/smoke
    models:
      - {rank: 1, model: tiny, score: 0.5, updated: "Jan 2026"}
faqs: []
`
	if err := os.WriteFile(data, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "--data", data, "list", "datasets")
	if err != nil {
		t.Fatalf("list datasets error: %v", err)
	}
	if !strings.Contains(out, "Smoke https://example.com/smoke") || strings.Contains(out, "FinanceBench") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestViewWiring(t *testing.T) {
	orig := runView
	t.Cleanup(func() { runView = orig })
	withOpener(t)

	var (
		called bool
		gotOpt tui.Options
		gotB   *board.Board
	)
	runView = func(ctx context.Context, b *board.Board, links tui.Links, opts tui.Options) error {
		called = true
		gotB = b
		gotOpt = opts
		if links == nil {
			t.Fatal("expected links dispatcher")
		}
		return nil
	}

	if _, err := execute(t, "", "view"); err != nil {
		t.Fatalf("view error: %v", err)
	}
	if !called || gotB == nil || len(gotB.Datasets) != 10 {
		t.Fatalf("view not wired: called=%v board=%v", called, gotB)
	}
	if !gotOpt.NoColor {
		t.Fatalf("expected --noColor to reach the view")
	}
}

func TestShowConfigAndListCommands(t *testing.T) {
	out, err := execute(t, `{"dataFile": "boards/x.yaml"}`, "show", "config")
	if err != nil {
		t.Fatalf("show config error: %v", err)
	}
	if !strings.Contains(out, "Config file: ") || !strings.Contains(out, "boards/x.yaml") {
		t.Fatalf("unexpected output: %s", out)
	}

	out, err = execute(t, "", "list", "commands")
	if err != nil {
		t.Fatalf("list commands error: %v", err)
	}
	for _, want := range []string{"llmboard render", "llmboard open dataset", "llmboard view", "llmboard show config"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}
