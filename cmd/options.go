package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/educreate/gamecore/internal/gameoptions"
	"github.com/educreate/gamecore/internal/report"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Inspect and check detailed game options",
}

var optionsListCmd = &cobra.Command{
	Use:   "list <game>",
	Short: "List the option definitions of a game type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gt, err := catalog.ParseGameType(args[0])
		if err != nil {
			return err
		}
		defs := gameoptions.Definitions(gt)
		if s, _ := cmd.Flags().GetString("category"); s != "" {
			cat := gameoptions.Category(s)
			if !slices.Contains(gameoptions.Categories(), cat) {
				return fmt.Errorf("unknown option category %q (want one of %v)", s, gameoptions.Categories())
			}
			defs = gameoptions.ByCategory(gt, cat)
		}

		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), defs)
		}
		return report.NewPrinter(cmd.OutOrStdout()).Definitions(defs)
	},
}

var optionsDefaultsCmd = &cobra.Command{
	Use:   "defaults <game>",
	Short: "Print the default options of a game type as JSON",
	Long: "Print the default options of a game type as JSON. With --with, the options in the " +
		"given file are merged over the defaults first.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gt, err := catalog.ParseGameType(args[0])
		if err != nil {
			return err
		}
		opts := gameoptions.Defaults(gt)
		if path, _ := cmd.Flags().GetString("with"); path != "" {
			user, err := gameoptions.Load(path)
			if err != nil {
				return err
			}
			opts = gameoptions.Merge(opts, user)
			logger.Debug("merged user options", zap.String("file", path))
		}
		return printJSON(cmd.OutOrStdout(), opts)
	},
}

var optionsCheckCmd = &cobra.Command{
	Use:   "check <game> <file>",
	Short: "Validate a game options file against a game type",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gt, err := catalog.ParseGameType(args[0])
		if err != nil {
			return err
		}
		opts, err := gameoptions.Load(args[1])
		if err != nil {
			return err
		}

		res := gameoptions.Validate(gt, opts)
		logger.Info("options checked",
			zap.String("game", string(gt)),
			zap.String("file", args[1]),
			zap.Int("errors", len(res.Errors)))

		if jsonOutput() {
			err = printJSON(cmd.OutOrStdout(), res)
		} else {
			err = report.NewPrinter(cmd.OutOrStdout()).OptionsResult(res)
		}
		if err != nil {
			return err
		}
		if !res.IsValid {
			return fmt.Errorf("options have %d problem(s)", len(res.Errors))
		}
		return nil
	},
}

func init() {
	optionsListCmd.Flags().String("category", "", "Filter by option category (e.g. timer, audio, specific)")
	optionsDefaultsCmd.Flags().String("with", "", "Options file (JSON or YAML) to merge over the defaults")

	optionsCmd.AddCommand(optionsListCmd)
	optionsCmd.AddCommand(optionsDefaultsCmd)
	optionsCmd.AddCommand(optionsCheckCmd)
}
