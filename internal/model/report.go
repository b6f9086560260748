package model

import "time"

// Report wraps a ThreatResult with provenance for rendered output.
// The result itself never references the analysed text.
type Report struct {
	ID         string    `json:"id"`          // Unique report identifier
	Source     string    `json:"source"`      // File path or URL that was analysed
	Language   string    `json:"language"`    // Language code used for analysis
	AnalyzedAt time.Time `json:"analyzed_at"` // When the analysis ran
	TextChars  int       `json:"text_chars"`  // Length of the analysed text in runes

	Result ThreatResult `json:"result"`
	Band   ThreatBand   `json:"band"`

	Dimensions []DimensionOutcome `json:"dimensions,omitempty"` // Per-dimension breakdown

	LLM *LLMExplanation `json:"llm,omitempty"` // Optional LLM explanation (never affects score)
}

// LLMExplanation contains an optional model-generated reading of the report.
// CRITICAL: this is produced after scoring and never feeds back into it.
type LLMExplanation struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"` // openai, ollama
	Model    string `json:"model,omitempty"`
	Text     string `json:"text,omitempty"` // Markdown explanation
}
