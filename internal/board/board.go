// Package board holds the leaderboard content: dataset groups with their
// model results, the FAQ entries, and the submission link.
package board

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed leaderboard.yaml
var defaultData []byte

var (
	// ErrDatasetNotFound is returned when a dataset lookup by name fails.
	ErrDatasetNotFound = errors.New("dataset not found")
)

// ModelResult is one model's row within a dataset group.
type ModelResult struct {
	Rank    int     `yaml:"rank" json:"rank"`
	Model   string  `yaml:"model" json:"model"`
	Score   float64 `yaml:"score" json:"score"`
	CI      string  `yaml:"ci,omitempty" json:"ci,omitempty"`
	Updated string  `yaml:"updated" json:"updated"`
}

// DatasetGroup is a named benchmark with a reference link and its rows in
// display order.
type DatasetGroup struct {
	Name   string        `yaml:"name" json:"name"`
	URL    string        `yaml:"url" json:"url"`
	Models []ModelResult `yaml:"models" json:"models"`
}

// FAQEntry is a single question and its answer.
type FAQEntry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Submission describes the control that sends users to the submission form.
type Submission struct {
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	URL   string `yaml:"url" json:"url"`
}

// Board is the complete leaderboard page content.
type Board struct {
	Title    string         `yaml:"title,omitempty" json:"title,omitempty"`
	Submit   Submission     `yaml:"submit" json:"submit"`
	Datasets []DatasetGroup `yaml:"datasets" json:"datasets"`
	FAQs     []FAQEntry     `yaml:"faqs" json:"faqs"`
}

const (
	defaultTitle       = "LLM Leaderboards"
	defaultSubmitLabel = "Submit Model to Leaderboard"
)

// Default returns the built-in leaderboard.
func Default() (*Board, error) {
	b, err := Decode(defaultData)
	if err != nil {
		return nil, fmt.Errorf("decode built-in leaderboard: %w", err)
	}
	return b, nil
}

// Load reads a board from a YAML or JSON file.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read board file %q: %w", path, err)
	}
	b, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("board file %q: %w", path, err)
	}
	return b, nil
}

// Decode parses board content. JSON is accepted as well since it is valid
// YAML. The document shape is checked before it is decoded into a Board.
func Decode(data []byte) (*Board, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	if err := validateShape(doc); err != nil {
		return nil, err
	}

	var b Board
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	b.normalize()
	return &b, nil
}

func (b *Board) normalize() {
	if strings.TrimSpace(b.Title) == "" {
		b.Title = defaultTitle
	}
	if strings.TrimSpace(b.Submit.Label) == "" {
		b.Submit.Label = defaultSubmitLabel
	}
	b.Submit.URL = strings.TrimSpace(b.Submit.URL)
}

// SubmitURL returns the submission form URL without surrounding whitespace.
func (b *Board) SubmitURL() string {
	return strings.TrimSpace(b.Submit.URL)
}

// Dataset looks up a dataset group by its exact name.
func (b *Board) Dataset(name string) (DatasetGroup, bool) {
	for _, g := range b.Datasets {
		if g.Name == name {
			return g, true
		}
	}
	return DatasetGroup{}, false
}

// RowCount returns the total number of model rows across all groups.
func (b *Board) RowCount() int {
	n := 0
	for _, g := range b.Datasets {
		n += len(g.Models)
	}
	return n
}

// FormatScore renders a score with the fewest digits that round-trip,
// so 0.9 stays "0.9" and 182.73 stays "182.73".
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
