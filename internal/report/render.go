package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/psantana5/runnertest/pkg/models"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Render
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

const (
	heavyRule = "======================================================================"
	lightRule = "----------------------------------------------------------------------"
)

// Render writes s to w in the requested format.
// verbosity only affects the text format.
func Render(w io.Writer, s *Summary, format string, verbosity int) error {
	switch format {
	case OutputText, "":
		return WriteText(w, s, verbosity)
	case OutputTable:
		return WriteTable(w, s)
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(s)
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(s); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteText renders a classic text test-runner report.
// verbosity 0 prints only the footer, 1 one character per case,
// 2 one line per case.
func WriteText(w io.Writer, s *Summary, verbosity int) error {
	var b strings.Builder

	switch {
	case verbosity >= 2:
		for _, r := range s.Results {
			fmt.Fprintf(&b, "%s ... %s\n", caseLabel(r), longStatus(r))
		}
	case verbosity == 1:
		for _, r := range s.Results {
			b.WriteString(shortStatus(r))
		}
		b.WriteString("\n")
	}

	for _, r := range s.Results {
		if r.Outcome != models.OutcomeFailed {
			continue
		}
		fmt.Fprintf(&b, "\n%s\nFAIL: %s\n%s\n", heavyRule, caseLabel(r), lightRule)
		for _, msg := range r.Failures {
			b.WriteString(strings.TrimSpace(msg))
			b.WriteString("\n")
		}
	}

	ran := len(s.Results) - s.Count(models.OutcomeNotRun)
	noun := "tests"
	if ran == 1 {
		noun = "test"
	}
	fmt.Fprintf(&b, "\n%s\nRan %d %s in %.3fs\n\n", lightRule, ran, noun, s.Duration.Seconds())
	b.WriteString(footer(s))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func caseLabel(r *Result) string {
	return fmt.Sprintf("%s (%s)", r.Case, r.Suite)
}

func longStatus(r *Result) string {
	switch r.Outcome {
	case models.OutcomePassed:
		return "ok"
	case models.OutcomeSkipped:
		return fmt.Sprintf("skipped '%s'", r.SkipReason)
	case models.OutcomeFailed:
		return "FAIL"
	default:
		return "not run"
	}
}

func shortStatus(r *Result) string {
	switch r.Outcome {
	case models.OutcomePassed:
		return "."
	case models.OutcomeSkipped:
		return "s"
	case models.OutcomeFailed:
		return "F"
	default:
		return "-"
	}
}

func footer(s *Summary) string {
	var details []string
	if n := s.Count(models.OutcomeFailed); n > 0 {
		details = append(details, fmt.Sprintf("failures=%d", n))
	}
	if n := s.Count(models.OutcomeSkipped); n > 0 {
		details = append(details, fmt.Sprintf("skipped=%d", n))
	}

	status := "OK"
	if !s.OK() {
		status = "FAILED"
	}
	if len(details) == 0 {
		return status
	}
	return fmt.Sprintf("%s (%s)", status, strings.Join(details, ", "))
}

// WriteTable renders one row per case
func WriteTable(w io.Writer, s *Summary) error {
	table := tablewriter.NewWriter(w)
	table.Header("Case", "Suite", "Outcome", "Duration", "Detail")

	for _, r := range s.Results {
		detail := r.SkipReason
		if r.Outcome == models.OutcomeFailed && len(r.Failures) > 0 {
			detail = firstLine(r.Failures[0])
		}
		table.Append(
			r.Case,
			r.Suite,
			string(r.Outcome),
			r.Duration.String(),
			detail,
		)
	}

	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "run %s: %s\n", s.RunID, footer(s))
	return err
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
