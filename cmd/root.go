package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/educreate/gamecore/internal/config"
	"github.com/educreate/gamecore/internal/logging"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "educreate",
	Short: "Validate learning content and configure game templates",
	Long: "educreate checks vocabulary content before publishing, matches it to game templates " +
		"and builds template and game option configurations.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("output", "", "Output format: text or json (overrides EDUCREATE_OUTPUT)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (overrides EDUCREATE_LOG_LEVEL)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(compatibleCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the environment configuration, applies flag overrides and
// builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		c.Output, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := logging.New(logging.Config{Level: c.LogLevel, Encoding: c.LogEncoding})
	if err != nil {
		return err
	}
	cfg, logger = c, l
	logger.Debug("configuration loaded",
		zap.String("command", cmd.CommandPath()),
		zap.String("output", c.Output),
		zap.Int("max_recommendations", c.MaxRecommendations))
	return nil
}

func jsonOutput() bool {
	return cfg != nil && cfg.Output == config.OutputJSON
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
