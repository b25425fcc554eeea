package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/bestfirst/queens"
)

// writeOutput encodes v as JSON or YAML, or calls text for the text format.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return text(w)
	}
}

func writeReportsText(w io.Writer, reports []Report) error {
	for _, report := range reports {
		status := "no solution"
		switch {
		case report.Found:
			status = "solved"
		case report.Truncated:
			status = "gave up"
		}
		if _, err := fmt.Fprintf(w, "n=%d strategy=%s %s expanded=%d generated=%d cost=%g\n",
			report.N, report.Strategy, status, report.Expanded, report.Generated, report.Cost); err != nil {
			return err
		}
		if !report.Found {
			continue
		}
		squares := lo.Map(report.Path, func(s queens.Square, _ int) string { return s.String() })
		if _, err := fmt.Fprintf(w, "  path: %s\n  fingerprint: %s\n", strings.Join(squares, " "), report.Fingerprint); err != nil {
			return err
		}
	}
	return nil
}
