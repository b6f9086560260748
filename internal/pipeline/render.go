package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/avosk/discern/internal/model"
)

// Renderer writes reports in the configured output format.
type Renderer struct {
	format  string
	verbose bool
}

// NewRenderer creates a renderer for "table" or "json" output.
func NewRenderer(format string, verbose bool) *Renderer {
	return &Renderer{format: format, verbose: verbose}
}

// Render writes the report to w.
func (r *Renderer) Render(w io.Writer, report *model.Report) error {
	switch r.format {
	case "json":
		return r.renderJSON(w, report)
	case "table", "":
		return r.renderTable(w, report)
	default:
		return fmt.Errorf("unknown output format: %s", r.format)
	}
}

func (r *Renderer) renderJSON(w io.Writer, report *model.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func (r *Renderer) renderTable(w io.Writer, report *model.Report) error {
	res := report.Result

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Threat analysis: %s\n", report.Source)
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintf(w, "Overall score:  %s  (%s)\n", bandColor(report.Band)(fmt.Sprintf("%.2f", res.OverallThreatScore)), report.Band)
	fmt.Fprintf(w, "  tech:        %.2f\n", res.TechContribution)
	fmt.Fprintf(w, "  heuristic:   %.2f\n", res.HeuristicContribution)

	if r.verbose {
		fmt.Fprintf(w, "Language:      %s\n", report.Language)
		fmt.Fprintf(w, "Text length:   %d chars\n", report.TextChars)
		fmt.Fprintf(w, "Report ID:     %s\n", report.ID)
	}
	fmt.Fprintln(w)

	if len(report.Dimensions) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Dimension", "Score", "Evidence"})
		table.SetBorder(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
		for _, dim := range report.Dimensions {
			table.Append([]string{
				string(dim.Dimension),
				fmt.Sprintf("%.2f", dim.Score),
				summarizeEvidence(dim.Evidence, 3),
			})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(res.DetectedEntities) > 0 {
		fmt.Fprintf(w, "Entities: %s\n", strings.Join(res.DetectedEntities, ", "))
		fmt.Fprintln(w)
	}

	if report.LLM != nil && report.LLM.Enabled {
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "LLM reading (%s/%s):\n%s\n", report.LLM.Provider, report.LLM.Model, report.LLM.Text)
		fmt.Fprintln(w, strings.Repeat("-", 60))
	}

	fmt.Fprintln(w, res.Message)
	return nil
}

// bandColor maps a threat band to its terminal color.
func bandColor(band model.ThreatBand) func(a ...interface{}) string {
	switch band {
	case model.BandLow:
		return color.New(color.FgGreen).SprintFunc()
	case model.BandMedium:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// summarizeEvidence shows at most n samples per dimension row.
func summarizeEvidence(evidence []string, n int) string {
	if len(evidence) == 0 {
		return "-"
	}
	if len(evidence) <= n {
		return strings.Join(evidence, ", ")
	}
	return fmt.Sprintf("%s, +%d more", strings.Join(evidence[:n], ", "), len(evidence)-n)
}
