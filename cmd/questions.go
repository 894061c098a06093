package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/agequiz/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions with their bounds",
	RunE: func(cmd *cobra.Command, args []string) error {
		printQuestions(cmd.OutOrStdout(), catalog.New(time.Now()))
		return nil
	},
}

// pad right-pads s to width display cells.
func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func printQuestions(w io.Writer, c catalog.Catalog) {
	// Header.
	fmt.Fprintf(w, "%-4s  %s  %s  %s\n",
		"#", pad("Question", 24), pad("Bounds", 12), "Hint")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for i, q := range c.All() {
		fmt.Fprintf(w, "Q.%02d  %s  %s  %s\n",
			i+1, pad(q.Prompt, 24), pad(q.BoundsString(), 12), q.Hint)
	}

	fmt.Fprintf(w, "\n%d questions\n", c.Len())
}
