package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/meera/courseforge/internal/validate"
)

// validatorOrder fixes the presentation order of the suite.
var validatorOrder = []string{
	"structural",
	"outcome_coverage",
	"bloom_diversity",
	"distractor_quality",
}

// validatorLabels maps validator names to report headings.
var validatorLabels = map[string]string{
	"structural":         "Structure",
	"outcome_coverage":   "Outcome Coverage",
	"bloom_diversity":    "Bloom's Diversity",
	"distractor_quality": "Distractor Quality",
}

// Render formats a full validation report for the terminal.
func Render(courseTitle string, results map[string]*validate.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Validation Report: " + courseTitle))
	b.WriteString("\n\n")

	publishable := true
	for _, name := range validatorOrder {
		r, ok := results[name]
		if !ok {
			continue
		}
		if !r.IsValid {
			publishable = false
		}
		b.WriteString(renderSection(name, r))
	}

	if publishable {
		b.WriteString(passStyle.Render("✓ Course is publishable"))
	} else {
		b.WriteString(failStyle.Render("✗ Course is not publishable — fix the errors above"))
	}
	b.WriteString("\n")

	return b.String()
}

func renderSection(name string, r *validate.Result) string {
	var b strings.Builder

	label := validatorLabels[name]
	if label == "" {
		label = name
	}

	mark := passStyle.Render("✓")
	if !r.IsValid {
		mark = failStyle.Render("✗")
	}
	fmt.Fprintf(&b, "%s %s\n", mark, validatorStyle.Render(label))

	for _, e := range r.Errors {
		b.WriteString("  " + errorStyle.Render("error: "+e) + "\n")
	}
	for _, w := range r.Warnings {
		b.WriteString("  " + warnStyle.Render("warning: "+w) + "\n")
	}
	for _, s := range r.Suggestions {
		b.WriteString("  " + suggestStyle.Render("suggestion: "+s) + "\n")
	}

	if line := metricsLine(r.Metrics); line != "" {
		b.WriteString("  " + metricStyle.Render(line) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

// metricsLine flattens scalar metrics into one sorted key=value line.
// Nested metrics (the Bloom's distribution map) are skipped; the counts
// beside them tell the same story at report granularity.
func metricsLine(metrics map[string]any) string {
	if len(metrics) == 0 {
		return ""
	}

	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		switch v := metrics[k].(type) {
		case int:
			parts = append(parts, fmt.Sprintf("%s=%d", k, v))
		case float64:
			parts = append(parts, fmt.Sprintf("%s=%.2f", k, v))
		case string:
			parts = append(parts, fmt.Sprintf("%s=%s", k, v))
		}
	}
	return strings.Join(parts, "  ")
}
