package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/fracmap/internal/agent"
	"github.com/abhisek/fracmap/internal/llm"
	"github.com/abhisek/fracmap/internal/persona"
	"github.com/abhisek/fracmap/internal/report"
	"github.com/abhisek/fracmap/internal/session"
	"github.com/abhisek/fracmap/internal/store"
)

var (
	agentPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8B5CF6")).
			Padding(0, 1)

	learnerPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#14B8A6")).
				Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Italic(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E")).
			Bold(true)
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run an assessment session",
	Long: "Run a conversational fractions assessment. In real mode you answer " +
		"the agent's questions yourself; in synthetic mode a persona answers in character.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		modeFlag, _ := cmd.Flags().GetString("mode")
		personaFlag, _ := cmd.Flags().GetString("persona")
		reportPath, _ := cmd.Flags().GetString("report")

		mode, ok := session.ParseMode(modeFlag)
		if !ok {
			return fmt.Errorf("invalid mode %q (use real or synthetic)", modeFlag)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		personaName := ""
		var responder *persona.Responder
		if mode == session.ModeSynthetic {
			responder, err = persona.NewResponder(personaFlag, provider)
			if err != nil {
				return err
			}
			personaName = personaFlag
			fmt.Printf("Synthetic learner: %s (grade %d)\n\n",
				responder.Persona().Name, responder.Persona().GradeLevel)
		}

		orc := agent.New(provider, mode, personaName, agent.ConfigFromEnv())

		events, err := orc.Start(ctx)
		renderEvents(events)
		if err != nil {
			return fmt.Errorf("start assessment: %w", err)
		}

		if mode == session.ModeSynthetic {
			err = runSyntheticAssessment(ctx, orc, responder)
		} else {
			err = runInteractiveAssessment(ctx, orc)
		}
		if err != nil {
			return err
		}

		if saveErr := saveAssessment(ctx, st, orc); saveErr != nil {
			fmt.Fprintln(os.Stderr, "warning: could not save assessment:", saveErr)
		}

		return printReport(orc, reportPath)
	},
}

func runInteractiveAssessment(ctx context.Context, orc *agent.Orchestrator) error {
	scanner := bufio.NewScanner(os.Stdin)
	for !orc.IsComplete() {
		// The question itself was already rendered from the event stream.
		if _, ok := orc.PendingQuestion(); !ok {
			fmt.Println(dimStyle.Render("The agent stopped without asking a question."))
			return nil
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			continue
		}

		events, err := orc.SubmitResponse(ctx, answer)
		renderEvents(events)
		if err != nil {
			return fmt.Errorf("assessment turn: %w", err)
		}
	}
	return nil
}

func runSyntheticAssessment(ctx context.Context, orc *agent.Orchestrator, responder *persona.Responder) error {
	for !orc.IsComplete() {
		question, ok := orc.PendingQuestion()
		if !ok {
			fmt.Println(dimStyle.Render("The agent stopped without asking a question."))
			return nil
		}

		reply, err := responder.Respond(ctx, question)
		if err != nil {
			return fmt.Errorf("persona response: %w", err)
		}
		fmt.Println(learnerPanelStyle.Render(fmt.Sprintf("%s: %s", responder.Persona().Name, reply)))

		events, err := orc.SubmitResponse(ctx, reply)
		renderEvents(events)
		if err != nil {
			return fmt.Errorf("assessment turn: %w", err)
		}
	}
	return nil
}

func renderEvents(events []agent.Event) {
	for _, e := range events {
		switch e.Name {
		case agent.EventSessionStarted:
			fmt.Println(dimStyle.Render("session " + stringField(e.Data, "session_id")))
		case agent.EventAgentThinking:
			fmt.Println(dimStyle.Render(stringField(e.Data, "text")))
		case agent.EventAgentQuestion:
			fmt.Println(agentPanelStyle.Render(stringField(e.Data, "question")))
		case agent.EventAgentTask:
			fmt.Println(agentPanelStyle.Render(stringField(e.Data, "task_content")))
		case agent.EventObservation:
			fmt.Println(dimStyle.Render("· response assessed"))
		case agent.EventModelUpdate:
			fmt.Println(dimStyle.Render("· " + stringField(e.Data, "summary")))
		case agent.EventStrategyShift:
			fmt.Println(dimStyle.Render("· strategy adjusted"))
		case agent.EventAssessmentComplete:
			fmt.Println(doneStyle.Render("Assessment complete."))
		}
	}
}

// stringField digs a string out of an event payload regardless of
// whether it is a map or a struct.
func stringField(data any, key string) string {
	if m, ok := data.(map[string]any); ok {
		if s, ok := m[key].(string); ok {
			return s
		}
		return ""
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func saveAssessment(ctx context.Context, st *store.Store, orc *agent.Orchestrator) error {
	sess := orc.Session()

	conversation, err := json.Marshal(sess.Conversation)
	if err != nil {
		return fmt.Errorf("marshal conversation: %w", err)
	}
	modelSnapshot := sess.LearnerModel
	if len(modelSnapshot) == 0 {
		if snap, err := orc.Model().Snapshot(); err == nil {
			modelSnapshot = snap
		}
	}

	return st.AssessmentRepo().Save(ctx, &store.AssessmentRecord{
		SessionID:    sess.ID,
		Mode:         string(sess.Mode),
		PersonaName:  sess.PersonaName,
		StartedAt:    sess.StartedAt,
		EndedAt:      sess.EndedAt,
		TurnCount:    sess.TurnCount,
		Conversation: conversation,
		LearnerModel: modelSnapshot,
		Report:       sess.Report,
	})
}

func printReport(orc *agent.Orchestrator, reportPath string) error {
	rep, err := report.Build(orc.Session())
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	md := rep.Markdown()

	if reportPath != "" {
		if err := os.WriteFile(reportPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Println("Report written to", reportPath)
		return nil
	}

	fmt.Println()
	fmt.Println(md)
	return nil
}

func init() {
	assessCmd.Flags().StringP("mode", "m", "real", "Assessment mode: real or synthetic")
	assessCmd.Flags().StringP("persona", "p", "mia", "Synthetic learner persona (mia, derek, priya)")
	assessCmd.Flags().StringP("report", "o", "", "Write the final report to a markdown file instead of stdout")
}
