package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/avosk/discern/internal/model"
)

func sampleReport() *model.Report {
	return &model.Report{
		ID:         "11111111-2222-3333-4444-555555555555",
		Source:     "notes/message.txt",
		Language:   "en",
		AnalyzedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TextChars:  120,
		Result: model.ThreatResult{
			OverallThreatScore:    61.25,
			TechContribution:      42.5,
			HeuristicContribution: 89.38,
			DetectedEntities:      []string{"Saint Germain"},
			AuthorityHits:         []string{"the ascended masters say"},
			UrgencyHits:           []string{"act now"},
			EmotionHits:           []string{},
			ContradictionHits:     []string{},
			SourceAttributionHits: []string{},
			EscalationHits:        []string{},
			Message:               model.Disclaimer,
		},
		Band: model.BandMedium,
		Dimensions: []model.DimensionOutcome{
			{Dimension: model.DimVagueness, Score: 0.3},
			{Dimension: model.DimAuthority, Score: 0.15, Evidence: []string{"the ascended masters say"}},
		},
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer("json", false).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Result.OverallThreatScore != 61.25 {
		t.Errorf("round-tripped score = %v", decoded.Result.OverallThreatScore)
	}

	// Wire field names follow the reference schema.
	for _, field := range []string{
		"overall_threat_score", "tech_contribution", "heuristic_contribution",
		"detected_entities", "authority_hits", "message",
	} {
		if !strings.Contains(buf.String(), field) {
			t.Errorf("JSON output missing field %q", field)
		}
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer("table", false).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"61.25", "42.50", "89.38",
		"notes/message.txt",
		"vagueness", "authority",
		"Saint Germain",
		model.Disclaimer,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestRenderTableVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer("table", true).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if !strings.Contains(buf.String(), "11111111-2222-3333-4444-555555555555") {
		t.Error("verbose output should include the report ID")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer("xml", false).Render(&buf, sampleReport()); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSummarizeEvidence(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, "-"},
		{[]string{"a"}, "a"},
		{[]string{"a", "b", "c"}, "a, b, c"},
		{[]string{"a", "b", "c", "d", "e"}, "a, b, c, +2 more"},
	}
	for _, tt := range tests {
		if got := summarizeEvidence(tt.in, 3); got != tt.want {
			t.Errorf("summarizeEvidence(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
