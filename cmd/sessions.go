package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fracmap/internal/llm"
	"github.com/abhisek/fracmap/internal/report"
	"github.com/abhisek/fracmap/internal/session"
	"github.com/abhisek/fracmap/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect stored assessment sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored assessments, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := st.AssessmentRepo().List(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list assessments: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No assessments stored yet. Run: fracmap assess")
			return nil
		}

		fmt.Printf("%-38s %-10s %-10s %-7s %-18s %s\n",
			"SESSION", "MODE", "PERSONA", "TURNS", "STARTED", "STATUS")
		fmt.Println(strings.Repeat("─", 96))
		for _, rec := range records {
			status := "in progress"
			if rec.EndedAt != nil {
				status = "concluded"
			}
			persona := rec.PersonaName
			if persona == "" {
				persona = "-"
			}
			fmt.Printf("%-38s %-10s %-10s %-7d %-18s %s\n",
				rec.SessionID, rec.Mode, persona, rec.TurnCount,
				rec.StartedAt.Local().Format("2006-01-02 15:04"), status)
		}
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one assessment and its evidence report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := st.AssessmentRepo().Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("load assessment: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no assessment with session id %s", args[0])
		}

		fmt.Println("Session: ", rec.SessionID)
		fmt.Println("Mode:    ", rec.Mode)
		if rec.PersonaName != "" {
			fmt.Println("Persona: ", rec.PersonaName)
		}
		fmt.Println("Started: ", rec.StartedAt.Local().Format("2006-01-02 15:04:05"))
		if rec.EndedAt != nil {
			fmt.Println("Ended:   ", rec.EndedAt.Local().Format("2006-01-02 15:04:05"))
		}
		fmt.Println("Turns:   ", rec.TurnCount)

		transcript, _ := cmd.Flags().GetBool("transcript")
		sess := sessionFromRecord(rec)
		if transcript {
			fmt.Println()
			for _, turn := range sess.Conversation {
				fmt.Printf("[%d] %s: %s\n", turn.TurnNumber, turn.Role, turn.Content)
			}
		}

		if rec.EndedAt == nil {
			fmt.Println("\nAssessment has not concluded; no report available.")
			return nil
		}

		rep, err := report.Build(sess)
		if err != nil {
			return fmt.Errorf("build report: %w", err)
		}
		fmt.Println()
		fmt.Println(rep.Markdown())
		return nil
	},
}

var sessionsUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show LLM token usage and cost across all sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		usage, err := st.EventRepo().LLMUsage(cmd.Context())
		if err != nil {
			return fmt.Errorf("aggregate usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("No LLM requests logged yet.")
			return nil
		}

		models := make([]string, 0, len(usage))
		for m := range usage {
			models = append(models, m)
		}
		sort.Strings(models)

		fmt.Printf("%-34s %8s %12s %12s %10s\n",
			"MODEL", "REQS", "IN TOKENS", "OUT TOKENS", "COST")
		fmt.Println(strings.Repeat("─", 80))

		var totalCost float64
		priced := true
		for _, m := range models {
			u := usage[m]
			cost := "?"
			if c := llm.LookupCost(m); c != nil {
				v := c.Cost(u.InputTokens, u.OutputTokens)
				totalCost += v
				cost = formatCost(v)
			} else {
				priced = false
			}
			fmt.Printf("%-34s %8d %12d %12d %10s\n",
				truncate(m, 34), u.Requests, u.InputTokens, u.OutputTokens, cost)
		}

		label := "TOTAL"
		if !priced {
			label = "TOTAL (partial)"
		}
		fmt.Println(strings.Repeat("─", 80))
		fmt.Printf("%-68s %10s\n", label, formatCost(totalCost))
		return nil
	},
}

// sessionFromRecord rebuilds an in-memory session from its persisted
// form so the report builder can run against stored assessments.
func sessionFromRecord(rec *store.AssessmentRecord) *session.Session {
	sess := &session.Session{
		ID:           rec.SessionID,
		Mode:         session.Mode(rec.Mode),
		PersonaName:  rec.PersonaName,
		StartedAt:    rec.StartedAt,
		EndedAt:      rec.EndedAt,
		TurnCount:    rec.TurnCount,
		Report:       rec.Report,
		LearnerModel: rec.LearnerModel,
	}
	if len(rec.Conversation) > 0 {
		_ = json.Unmarshal(rec.Conversation, &sess.Conversation)
	}
	return sess
}

func openStoreFromFlags(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func formatCost(v float64) string {
	if v < 0.01 {
		return fmt.Sprintf("$%.4f", v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func init() {
	sessionsListCmd.Flags().Int("limit", 50, "Maximum number of sessions to list")
	sessionsShowCmd.Flags().Bool("transcript", false, "Print the full conversation transcript")
	sessionsCmd.AddCommand(sessionsListCmd, sessionsShowCmd, sessionsUsageCmd)
}
