package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/educreate/gamecore/internal/report"
	"github.com/educreate/gamecore/internal/templates"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List game templates (optionally filtered by category)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := templates.All()
		if s, _ := cmd.Flags().GetString("category"); s != "" {
			cat := catalog.Category(s)
			if !slices.Contains(catalog.AllCategories(), cat) {
				return fmt.Errorf("unknown category %q (want one of %v)", s, catalog.AllCategories())
			}
			list = templates.ByCategory(cat)
		}
		return printTemplates(cmd, list)
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <item-count>",
	Short: "Recommend templates for a number of items, easiest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseCount(args[0])
		if err != nil {
			return err
		}
		list := templates.Recommended(n)
		if len(list) > cfg.MaxRecommendations {
			list = list[:cfg.MaxRecommendations]
		}
		logger.Debug("recommended templates", zap.Int("items", n), zap.Int("count", len(list)))
		return printTemplates(cmd, list)
	},
}

var stylesCmd = &cobra.Command{
	Use:   "styles <template>",
	Short: "List the visual styles of a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}
		styles := templates.Styles(t.ID)
		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), styles)
		}
		return report.NewPrinter(cmd.OutOrStdout()).Styles(styles)
	},
}

var compatibleCmd = &cobra.Command{
	Use:   "compatible <template> <item-count>",
	Short: "Check whether a template can play a number of items",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := lookupTemplate(args[0])
		if err != nil {
			return err
		}
		n, err := parseCount(args[1])
		if err != nil {
			return err
		}

		ok := templates.IsContentCompatible(t.ID, n)
		if jsonOutput() {
			err = printJSON(cmd.OutOrStdout(), map[string]any{
				"templateId": t.ID,
				"itemCount":  n,
				"compatible": ok,
			})
		} else {
			err = report.NewPrinter(cmd.OutOrStdout()).Compatibility(t, n, ok)
		}
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s cannot play %d items", t.ID, n)
		}
		return nil
	},
}

func init() {
	templatesCmd.Flags().String("category", "", "Filter by category (e.g. quiz, matching, memory)")
}

func printTemplates(cmd *cobra.Command, list []catalog.Template) error {
	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), list)
	}
	if len(list) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates found.")
		return nil
	}
	return report.NewPrinter(cmd.OutOrStdout()).Templates(list)
}

func lookupTemplate(s string) (catalog.Template, error) {
	gt, err := catalog.ParseGameType(s)
	if err != nil {
		return catalog.Template{}, err
	}
	t, ok := templates.Get(gt)
	if !ok {
		return catalog.Template{}, fmt.Errorf("%w: %s", templates.ErrTemplateNotFound, gt)
	}
	return t, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("item count must be a non-negative integer, got %q", s)
	}
	return n, nil
}
