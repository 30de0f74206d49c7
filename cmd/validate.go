package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/educreate/gamecore/internal/content"
	"github.com/educreate/gamecore/internal/report"
	"github.com/educreate/gamecore/internal/validator"
)

var errNotPublishable = errors.New("content cannot be published")

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a content file before publishing",
	Long: "Validate a JSON or YAML content file, look for duplicate terms and, with --game, " +
		"check that the item count suits the game. Exits non-zero when the content cannot be published.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var game catalog.GameType
		if s, _ := cmd.Flags().GetString("game"); s != "" {
			gt, err := catalog.ParseGameType(s)
			if err != nil {
				return err
			}
			game = gt
		}

		c, err := content.Load(args[0])
		if err != nil {
			return err
		}

		r := validator.Review(c, game)
		logger.Info("content reviewed",
			zap.String("file", args[0]),
			zap.Int("items", c.ItemCount()),
			zap.String("game", string(game)),
			zap.Bool("publishable", r.Publishable()),
			zap.Int("warnings", r.WarningCount()))

		if jsonOutput() {
			err = printJSON(cmd.OutOrStdout(), r)
		} else {
			err = report.NewPrinter(cmd.OutOrStdout()).Report(r)
		}
		if err != nil {
			return err
		}

		if !r.Publishable() {
			if msg := validator.FormatErrorMessage(slices.Concat(r.Result.Errors, r.Compatibility)); msg != "" {
				return fmt.Errorf("%w: %s", errNotPublishable, msg)
			}
			return errNotPublishable
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().String("game", "", "Also check compatibility with a game type (e.g. memory-cards)")
}
