package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xkazm04/refract/pkg/models"
)

// SuggestionReport renders an engine result as a ranked table plus summary.
type SuggestionReport struct {
	Result  *models.Result
	Verbose bool
}

var _ Renderable = (*SuggestionReport)(nil)

func (r *SuggestionReport) RenderData() any {
	return r.Result
}

func (r *SuggestionReport) RenderText(w io.Writer, colored bool) error {
	res := r.Result

	if len(res.Suggestions) == 0 {
		fmt.Fprintln(w, "No refactor suggestions.")
	} else {
		table := suggestionTable(res, colored)
		if err := table.RenderText(w, colored); err != nil {
			return err
		}
	}

	writeSummaryText(w, res)

	for _, f := range res.Metadata.Failures {
		fmt.Fprintf(w, "warning: %s analysis failed: %s\n", f.Category, f.Message)
	}

	if r.Verbose {
		for _, s := range res.Suggestions {
			fmt.Fprintln(w)
			sec := Section{Title: s.Title, Content: s.RequirementTemplate}
			if err := sec.RenderText(w, colored); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *SuggestionReport) RenderMarkdown(w io.Writer) error {
	res := r.Result

	fmt.Fprintf(w, "# Refactor Suggestions\n\n")

	if len(res.Suggestions) == 0 {
		fmt.Fprintln(w, "No refactor suggestions.")
		fmt.Fprintln(w)
	} else {
		if err := suggestionTable(res, false).RenderMarkdown(w); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "- Total issues: %d\n", res.Summary.TotalIssues)
	fmt.Fprintf(w, "- Top priority: %d\n", res.Summary.TopPriorityCount)
	for _, cat := range sortedCategories(res.Summary.ByCategory) {
		fmt.Fprintf(w, "- %s: %d\n", cat, res.Summary.ByCategory[cat])
	}
	fmt.Fprintf(w, "\nAnalyzed %d files (%d lines) in %dms.\n",
		res.Metadata.FilesAnalyzed, res.Metadata.TotalLines, res.Metadata.ScanDurationMS)

	for _, f := range res.Metadata.Failures {
		fmt.Fprintf(w, "\n> warning: %s analysis failed: %s\n", f.Category, f.Message)
	}

	return nil
}

func suggestionTable(res *models.Result, colored bool) *Table {
	rows := make([][]string, 0, len(res.Suggestions))
	for _, s := range res.Suggestions {
		sev := string(s.Severity)
		if colored {
			sev = SeverityColor(s.Severity, sev)
		}
		rows = append(rows, []string{
			sev,
			string(s.Category),
			s.Title,
			strings.Join(s.Files, ", "),
			string(s.Effort),
			string(s.Impact),
		})
	}
	return NewTable(
		"Refactor Suggestions",
		[]string{"Severity", "Category", "Suggestion", "Files", "Effort", "Impact"},
		rows,
		nil,
		res,
	)
}

func writeSummaryText(w io.Writer, res *models.Result) {
	fmt.Fprintf(w, "%d issues", res.Summary.TotalIssues)
	if res.Summary.TopPriorityCount > 0 {
		fmt.Fprintf(w, " (%d top priority)", res.Summary.TopPriorityCount)
	}
	fmt.Fprintf(w, " across %d files, %d lines, %dms\n",
		res.Metadata.FilesAnalyzed, res.Metadata.TotalLines, res.Metadata.ScanDurationMS)
}

func sortedCategories(counts map[models.Category]int) []models.Category {
	cats := make([]models.Category, 0, len(counts))
	for c := range counts {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// OpportunityReport renders the consumer-facing opportunity list.
type OpportunityReport struct {
	Opportunities []models.Opportunity
}

var _ Renderable = (*OpportunityReport)(nil)

func (r *OpportunityReport) RenderData() any {
	return r.Opportunities
}

func (r *OpportunityReport) RenderText(w io.Writer, colored bool) error {
	if len(r.Opportunities) == 0 {
		fmt.Fprintln(w, "No refactor opportunities.")
		return nil
	}

	rows := make([][]string, 0, len(r.Opportunities))
	for _, o := range r.Opportunities {
		sev := string(o.Severity)
		if colored {
			sev = SeverityColor(o.Severity, sev)
		}
		rows = append(rows, []string{
			sev,
			string(o.Category),
			o.Title,
			o.Impact,
			o.EstimatedTime,
		})
	}

	table := NewTable(
		"Refactor Opportunities",
		[]string{"Severity", "Category", "Opportunity", "Impact", "Est. Time"},
		rows,
		nil,
		r.Opportunities,
	)
	return table.RenderText(w, colored)
}

func (r *OpportunityReport) RenderMarkdown(w io.Writer) error {
	fmt.Fprintf(w, "# Refactor Opportunities\n\n")

	if len(r.Opportunities) == 0 {
		fmt.Fprintln(w, "No refactor opportunities.")
		return nil
	}

	for _, o := range r.Opportunities {
		sec := Section{Title: o.Title, Content: opportunityDetails(o)}
		if err := sec.RenderMarkdown(w); err != nil {
			return err
		}
	}

	return nil
}

func opportunityDetails(o models.Opportunity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", o.Description)
	fmt.Fprintf(&b, "- Category: %s\n", o.Category)
	fmt.Fprintf(&b, "- Severity: %s\n", o.Severity)
	fmt.Fprintf(&b, "- Impact: %s\n", o.Impact)
	fmt.Fprintf(&b, "- Estimated time: %s", o.EstimatedTime)
	if len(o.Files) > 0 {
		fmt.Fprintf(&b, "\n- Files: %s", strings.Join(o.Files, ", "))
	}
	return b.String()
}
