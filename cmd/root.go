package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/config"
	"github.com/abhisek/fractiz/internal/logger"
)

// quietLogs marks commands that own the terminal; their console log output
// is discarded so it can't corrupt the screen.
const quietLogs = "quiet-logs"

var (
	v      = config.New()
	cfg    *config.Config
	appLog = zap.NewNop()

	flushLogs = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "fractiz",
	Short: "Fraction simplification tutor",
	Long: "Fractiz is a practice tutor for simplifying fractions. Exercises come from an OWL\n" +
		"knowledge base; answers are checked for common misconceptions.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flushLogs()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default fractiz.yaml in . or $XDG_CONFIG_HOME/fractiz)")
	flags.String("kb", "", "Path to the knowledge base (overrides FRACTIZ_KNOWLEDGE_BASE_PATH)")
	flags.String("db", "", "Path to SQLite database file (overrides FRACTIZ_STORE_PATH)")

	bindFlag(v, "knowledge_base.path", flags.Lookup("kb"))
	bindFlag(v, "store.path", flags.Lookup("db"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(kbCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// setup loads configuration and installs the global logger.
func setup(cmd *cobra.Command) error {
	file, _ := cmd.Flags().GetString("config")
	c, err := config.Load(v, file)
	if err != nil {
		return err
	}
	warnings, err := c.Validate()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	opts := logger.Options{Level: c.Log.Level, Format: c.Log.Format, File: c.Log.File}
	if cmd.Annotations[quietLogs] != "" {
		opts.Output = io.Discard
	}
	l, restore, err := logger.Init(opts)
	if err != nil {
		return err
	}

	cfg, appLog, flushLogs = c, l, restore
	for _, w := range warnings {
		appLog.Warn(w)
	}
	return nil
}
