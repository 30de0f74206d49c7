package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/educreate/gamecore/internal/fileformat"
	"github.com/educreate/gamecore/internal/report"
	"github.com/educreate/gamecore/internal/templates"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Build and check template configurations",
}

var configNewCmd = &cobra.Command{
	Use:   "new <template>",
	Short: "Print a template configuration with defaults and overrides as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}
		style, _ := cmd.Flags().GetString("style")
		if style == "" {
			style = cfg.DefaultStyle
		}
		sets, _ := cmd.Flags().GetStringArray("set")
		values, err := parseAssignments(sets)
		if err != nil {
			return err
		}

		c, err := templates.NewConfiguration(t.ID, style, values)
		if err != nil {
			return err
		}
		for _, e := range templates.ConfigurationErrors(c) {
			logger.Warn("configuration problem", zap.String("template", string(t.ID)), zap.Error(e))
		}
		return printJSON(cmd.OutOrStdout(), c)
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a template configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := templates.LoadConfiguration(args[0])
		if err != nil {
			return err
		}
		errs := templates.ConfigurationErrors(c)

		if jsonOutput() {
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			err = printJSON(cmd.OutOrStdout(), map[string]any{
				"isValid": len(errs) == 0,
				"errors":  msgs,
			})
		} else {
			err = report.NewPrinter(cmd.OutOrStdout()).Configuration(c, errs)
		}
		if err != nil {
			return err
		}
		if len(errs) > 0 {
			return fmt.Errorf("configuration has %d problem(s)", len(errs))
		}
		return nil
	},
}

func init() {
	configNewCmd.Flags().String("style", "", "Visual style id (defaults to EDUCREATE_DEFAULT_STYLE)")
	configNewCmd.Flags().StringArray("set", nil, "Override an option, as id=value (repeatable)")

	configCmd.AddCommand(configNewCmd)
	configCmd.AddCommand(configCheckCmd)
}

// parseAssignments turns id=value pairs into typed option values.
func parseAssignments(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q, want id=value", p)
		}
		values[k] = fileformat.ParseScalar(v)
	}
	return values, nil
}
