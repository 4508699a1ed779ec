package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/exercise"
	"github.com/abhisek/fractiz/internal/ontology"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List exercises in practice order (optionally filtered by level)",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		if level != "" {
			if _, ok := exercise.ParseLevel(level); !ok {
				return fmt.Errorf("unknown level %q (want Beginner, Intermediate or Advanced)", level)
			}
		}

		path := knowledgeBasePath()
		catalog, _, err := exercise.Load(path)
		if err != nil {
			return errors.New(ontology.Message(path, err))
		}
		printExercises(cmd.OutOrStdout(), catalog, level)
		return nil
	},
}

func init() {
	exercisesCmd.Flags().String("level", "", "Only list exercises at this level")
}

func printExercises(w io.Writer, catalog *exercise.Catalog, level string) {
	list, _ := catalog.Filter(level)

	fmt.Fprintf(w, "%3s  %-20s  %-12s  %-9s  %-8s  %s\n",
		"#", "Name", "Level", "Fraction", "Answer", "Prompt")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for i, ex := range list {
		lvl := string(ex.Level)
		if lvl == "" {
			lvl = "-"
		}
		fmt.Fprintf(w, "%3d  %-20s  %-12s  %-9s  %-8s  %s\n",
			i+1, ex.Name, lvl, ex.Original, ex.Expected, ex.Prompt)
	}

	fmt.Fprintf(w, "\n%d exercises\n", len(list))
}
