package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/exercise"
	"github.com/abhisek/fractiz/internal/ontology"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the knowledge base",
}

var kbCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Load the knowledge base and report which exercises are usable",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := knowledgeBasePath()
		if len(args) == 1 {
			path = args[0]
		}
		return checkKnowledgeBase(cmd.OutOrStdout(), path)
	},
}

func init() {
	kbCmd.AddCommand(kbCheckCmd)
}

// errNoExercises makes kb check fail when nothing is practicable.
var errNoExercises = errors.New("no usable exercises")

func checkKnowledgeBase(w io.Writer, path string) error {
	g, err := ontology.Load(path)
	if err != nil {
		return errors.New(ontology.Message(path, err))
	}
	kept, skipped := exercise.ExtractAll(g)
	catalog := exercise.NewCatalog(kept)

	fmt.Fprintf(w, "Knowledge base: %s\n", path)
	fmt.Fprintf(w, "Individuals:    %d\n\n", g.Len())

	for _, ex := range catalog.All() {
		fmt.Fprintf(w, "  ok    %-20s %s -> %s\n", ex.Name, ex.Original, ex.Expected)
	}
	for _, s := range skipped {
		fmt.Fprintf(w, "  skip  %-20s %v\n", s.Name, s.Reason)
	}

	counts := catalog.Counts()
	fmt.Fprintf(w, "\n%d usable, %d skipped", catalog.Len(), len(skipped))
	for _, l := range exercise.Levels() {
		fmt.Fprintf(w, ", %s %d", l, counts[l])
	}
	fmt.Fprintln(w)

	if catalog.Empty() {
		return errNoExercises
	}
	return nil
}
