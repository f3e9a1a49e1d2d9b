package domain

import (
	"fmt"
	"strings"
)

// StandardsSummary renders all standards and learning components as a
// markdown block for inclusion in the agent system prompt.
func StandardsSummary() string {
	var b strings.Builder
	currentGrade := 0
	for _, std := range AllStandards() {
		if std.Grade != currentGrade {
			currentGrade = std.Grade
			fmt.Fprintf(&b, "\n**Grade %d**\n", currentGrade)
		}
		fmt.Fprintf(&b, "- `%s`: %s\n", std.Code, std.Description)
		for _, lc := range std.LearningComponents {
			fmt.Fprintf(&b, "  - LC `%s`: %s\n", lc.Code, lc.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// MisconceptionsSummary renders the misconception taxonomy grouped by
// category for the system prompt.
func MisconceptionsSummary() string {
	var b strings.Builder
	var currentCategory MisconceptionCategory
	for _, m := range AllMisconceptions() {
		if m.Category != currentCategory {
			currentCategory = m.Category
			fmt.Fprintf(&b, "\n**%s%s**\n", strings.ToUpper(string(currentCategory[0])), currentCategory[1:])
		}
		fmt.Fprintf(&b, "- %s: %s (%s) [standards: %s]\n",
			m.ID, m.Description, m.Example, strings.Join(m.RelatedStandards, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ProgressionSummary renders the learning progression for the system prompt.
func ProgressionSummary() string {
	var b strings.Builder
	for _, level := range Progression() {
		fmt.Fprintf(&b, "Grade %d: %s\n", level.Grade, level.Label)
		fmt.Fprintf(&b, "  Standards: %s\n", strings.Join(level.Standards, ", "))
		if len(level.Prerequisites) > 0 {
			fmt.Fprintf(&b, "  Prerequisites: %s\n", strings.Join(level.Prerequisites, ", "))
		}
		if len(level.NextLevels) > 0 {
			fmt.Fprintf(&b, "  Leads to: %s\n", strings.Join(level.NextLevels, ", "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// TaskLibrarySummary renders the pre-built mini-tasks for the system prompt
// so the agent can reuse proven tasks instead of always composing new ones.
func TaskLibrarySummary() string {
	var b strings.Builder
	currentType := ""
	for _, t := range TaskLibrary() {
		if t.TaskType != currentType {
			currentType = t.TaskType
			fmt.Fprintf(&b, "\n**%s**\n", currentType)
		}
		fmt.Fprintf(&b, "- [%s, %s] %s (expected: %s)\n",
			t.TargetStandard, t.Difficulty, t.Content, t.ExpectedAnswer)
	}
	return strings.TrimRight(b.String(), "\n")
}
