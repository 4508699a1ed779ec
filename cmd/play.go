package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/fractiz/internal/app"
)

var playCmd = &cobra.Command{
	Use:         "play",
	Short:       "Practice in the terminal",
	Annotations: map[string]string{quietLogs: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		events, closeEvents := openEvents()
		defer closeEvents()

		return app.Run(loadTutor(), events)
	},
}
