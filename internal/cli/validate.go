package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/pipeline"
	"github.com/adproof/adproof/pkg/rules"
)

// validateOpts holds the command-line flags for the validate command.
type validateOpts struct {
	canvas        string // canvas size as "WxH"
	channel       string // distribution channel: stories, facebook, display, ...
	retailer      string // retailer rule set: tesco, sainsburys, asda
	alcohol       bool   // product is alcoholic (Drinkaware rules apply)
	singleDensity bool   // relaxed CTA gap for single-density screens
	brandColors   string // comma-separated brand palette for identity checks
	comprehensive bool   // include brand guardian checks and compliance score
	retailerFile  string // TOML overlay with additional retailer rule sets
	noCache       bool   // bypass the local result cache
}

// validateCommand creates the validate command.
//
// The plain mode runs the rule engine only. With --comprehensive the brand
// guardian is added: identity (when --brand-colors is set), visual quality
// and retailer compliance, with a 0-100 compliance score.
func (c *CLI) validateCommand() *cobra.Command {
	var opts validateOpts

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a creative layout against compliance rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runValidate(ctx, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.canvas, "canvas", "", `canvas size as "WxH" (default "1080x1920")`)
	cmd.Flags().StringVar(&opts.channel, "channel", "", "distribution channel: stories, facebook, display")
	cmd.Flags().StringVar(&opts.retailer, "retailer", "", "retailer rule set: tesco (default), sainsburys, asda")
	cmd.Flags().BoolVar(&opts.alcohol, "alcohol", false, "product is alcoholic (Drinkaware rules apply)")
	cmd.Flags().BoolVar(&opts.singleDensity, "single-density", false, "relaxed CTA gap for single-density screens")
	cmd.Flags().StringVar(&opts.brandColors, "brand-colors", "", "comma-separated brand palette (enables identity checks)")
	cmd.Flags().BoolVar(&opts.comprehensive, "comprehensive", false, "include brand guardian checks and compliance score")
	cmd.Flags().StringVar(&opts.retailerFile, "retailer-file", "", "TOML file with additional retailer rule sets")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the local result cache")

	return cmd
}

func (c *CLI) runValidate(ctx context.Context, path string, opts *validateOpts) error {
	logger := loggerFromContext(ctx)

	layout, err := creative.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded layout %s: %d elements", layout.ID, len(layout.Elements))

	if opts.comprehensive {
		return c.runComprehensive(ctx, layout, opts)
	}

	p := newProgress(logger)
	result, err := rules.Validate(layout, rules.Options{
		Canvas:        opts.canvas,
		Channel:       opts.channel,
		Alcohol:       opts.alcohol,
		SingleDensity: opts.singleDensity,
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Checked %d rules", len(result.CheckedRules)))

	printIssues(result.Issues)
	printSummary(result.HardCount(), result.WarnCount())

	if !result.OK {
		return fmt.Errorf("layout failed %d hard rule(s)", result.HardCount())
	}
	return nil
}

func (c *CLI) runComprehensive(ctx context.Context, layout *creative.Layout, opts *validateOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	if opts.retailerFile != "" {
		if err := runner.Guardian.LoadFile(opts.retailerFile); err != nil {
			return err
		}
	}

	p := newProgress(logger)
	result, hit, err := runner.ValidateWithCacheInfo(ctx, layout, pipeline.Options{
		Source:        opts.canvas,
		Channel:       opts.channel,
		Retailer:      opts.retailer,
		Alcohol:       opts.alcohol,
		SingleDensity: opts.singleDensity,
		BrandColors:   parseList(opts.brandColors),
		Refresh:       opts.noCache,
	})
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Checked %d rules", len(result.CheckedRules))
	if hit {
		msg += " (cached)"
	}
	p.done(msg)

	printIssues(result.Issues)
	printSummary(result.Summary.HardFailures, result.Summary.Warnings)
	printScore(result.Summary.ComplianceScore)

	if !result.OK {
		return fmt.Errorf("layout failed %d hard rule(s)", result.Summary.HardFailures)
	}
	return nil
}
