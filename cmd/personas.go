package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fracmap/internal/persona"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the synthetic learner personas",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-10s %-7s %s\n", "NAME", "GRADE", "PROFILE")
		fmt.Println(strings.Repeat("─", 72))
		for _, p := range persona.All() {
			fmt.Printf("%-10s %-7d %s\n", p.Name, p.GradeLevel, personaProfileLine(p))
		}
	},
}

// personaProfileLine pulls the first sentence of the persona's system
// prompt as a one-line description.
func personaProfileLine(p *persona.Persona) string {
	prompt := strings.TrimSpace(p.SystemPrompt)
	if i := strings.IndexByte(prompt, '.'); i > 0 {
		prompt = prompt[:i+1]
	}
	prompt = strings.ReplaceAll(prompt, "\n", " ")
	return truncate(prompt, 55)
}
