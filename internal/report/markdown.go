package report

import (
	"fmt"
	"strings"
)

// Markdown renders the report as a readable document. Sections come in
// a fixed order: header, progression summary, standards evidence map,
// misconception report, overall narrative, recommended next steps.
func (r *Report) Markdown() string {
	name := r.PersonaName
	if name == "" {
		name = "Anonymous"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Evidence of Learning Report\n\n")
	fmt.Fprintf(&b, "**Learner**: %s\n", name)
	fmt.Fprintf(&b, "**Date**: %s\n", r.StartedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Domain**: Fractions (CCSS-M Grades 2-5)\n")
	fmt.Fprintf(&b, "**Assessment Duration**: %d turns\n\n", r.TurnCount)
	b.WriteString("---\n\n## Progression Summary\n\n")
	b.WriteString(orNotAvailable(r.ProgressionSummary))
	b.WriteString("\n\n---\n\n## Standards Evidence Map\n\n")

	for _, std := range r.StandardsEvidenceMap {
		fmt.Fprintf(&b, "### %s: %s\n", std.StandardCode, std.StandardDescription)
		fmt.Fprintf(&b, "- **Status**: %s\n", std.Status)
		fmt.Fprintf(&b, "- **Confidence**: %s\n", std.Confidence)
		if len(std.Evidence) > 0 {
			b.WriteString("- **Evidence**:\n")
			for _, e := range std.Evidence {
				fmt.Fprintf(&b, "  - %s\n", e)
			}
		}
		if len(std.LearningComponents) > 0 {
			b.WriteString("- **Learning Components**:\n")
			for _, lc := range std.LearningComponents {
				fmt.Fprintf(&b, "  - %s: %s — %s\n", lc.Code, lc.Description, lc.Status)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n## Misconception Report\n\n")
	for _, m := range r.MisconceptionReport {
		fmt.Fprintf(&b, "### %s\n", m.Description)
		fmt.Fprintf(&b, "- **Status**: %s\n", m.Status)
		fmt.Fprintf(&b, "- **Evidence**: %s\n\n", m.Evidence)
	}

	b.WriteString("---\n\n## Overall Narrative\n\n")
	b.WriteString(orNotAvailable(r.OverallNarrative))
	b.WriteString("\n\n---\n\n## Recommended Next Steps\n\n")
	for _, step := range r.RecommendedNextSteps {
		fmt.Fprintf(&b, "- %s\n", step)
	}

	return b.String()
}

func orNotAvailable(s string) string {
	if s == "" {
		return "Not available."
	}
	return s
}
