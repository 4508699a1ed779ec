package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize recorded answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}
		printStats(cmd.OutOrStdout(), stats)
		return nil
	},
}

func printStats(w io.Writer, s *store.Stats) {
	if s.Attempts == 0 && s.Resets == 0 {
		fmt.Fprintln(w, "No answers recorded yet.")
		return
	}

	fmt.Fprintf(w, "Sessions:  %d\n", s.Sessions)
	fmt.Fprintf(w, "Attempts:  %d\n", s.Attempts)
	fmt.Fprintf(w, "Correct:   %d (%.0f%%)\n", s.Correct, s.Accuracy())
	fmt.Fprintf(w, "Resets:    %d\n", s.Resets)

	if len(s.Categories) > 0 {
		fmt.Fprintln(w, "\nBy category")
		fmt.Fprintln(w, strings.Repeat("─", 32))
		for _, c := range s.Categories {
			fmt.Fprintf(w, "%-24s %7d\n", c.Category, c.Count)
		}
	}

	if len(s.Exercises) > 0 {
		fmt.Fprintln(w, "\nBy exercise")
		fmt.Fprintln(w, strings.Repeat("─", 42))
		for _, e := range s.Exercises {
			fmt.Fprintf(w, "%-24s %7d %9d\n", e.Exercise, e.Attempts, e.Correct)
		}
	}
}
