package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/format"
	"github.com/adproof/adproof/pkg/pipeline"
)

// adaptOpts holds the command-line flags for the adapt command.
type adaptOpts struct {
	source      string // source format key as "WxH"
	targets     string // comma-separated target format keys
	strategy    string // resize strategy override (empty selects automatically)
	output      string // output file (single target) or directory (multiple)
	revalidate  bool   // re-check each adapted layout against its target
	interactive bool   // pick target formats interactively
	noCache     bool   // bypass the local result cache
}

// adaptCommand creates the adapt command for resizing layouts.
//
// Default settings:
//   - source: 1080x1920 (story)
//   - targets: the standard feed and display sizes
//   - strategy: chosen per target from the aspect-ratio delta
func (c *CLI) adaptCommand() *cobra.Command {
	var opts adaptOpts

	cmd := &cobra.Command{
		Use:   "adapt [file]",
		Short: "Resize a creative layout into other canvas formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runAdapt(ctx, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", "", `source format as "WxH" (default "1080x1920")`)
	cmd.Flags().StringVarP(&opts.targets, "targets", "t", "", "target format(s) as \"WxH\" (comma-separated)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "resize strategy: scale_fit, reflow, crop_center, stack, side_by_side")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single target) or directory (multiple)")
	cmd.Flags().BoolVar(&opts.revalidate, "revalidate", false, "re-check each adapted layout against its target format")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick target formats interactively")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the local result cache")

	return cmd
}

func (c *CLI) runAdapt(ctx context.Context, input string, opts *adaptOpts) error {
	logger := loggerFromContext(ctx)

	layout, err := creative.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded layout %s: %d elements", layout.ID, len(layout.Elements))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	targets := parseList(opts.targets)
	if opts.interactive {
		targets, err = pickFormats(runner.Resizer.Formats(), opts.source)
		if err != nil {
			return err
		}
		if len(targets) == 0 {
			printInfo("No formats selected")
			return nil
		}
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Adapting %s", filepath.Base(input)))
	spinner.Start()

	result, err := runner.Execute(ctx, layout, pipeline.Options{
		Source:     opts.source,
		Targets:    targets,
		Strategy:   opts.strategy,
		Revalidate: opts.revalidate,
		Refresh:    opts.noCache,
	})
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Adaptation failed: %v", err))
		return err
	}
	spinner.StopWithSuccess(fmt.Sprintf("Adapted into %d format(s)", len(result.Adapted)))

	for _, warning := range result.Warnings {
		printWarning("%s", warning)
	}

	for target, adapted := range result.Adapted {
		path := outputPath(opts.output, input, target, len(result.Adapted) > 1)
		if err := creative.WriteFile(adapted, path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)

		if reval, ok := result.Revalidations[target]; ok {
			printDetail("%s: score %d, %d hard, %d warn", target,
				reval.Summary.ComplianceScore, reval.Summary.HardFailures, reval.Summary.Warnings)
		}
	}

	return nil
}

// outputPath derives the file path for one adapted layout. A single target
// honors --output as a file; multiple targets treat it as a directory and
// suffix the target key onto the input name.
func outputPath(output, input, target string, multiple bool) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := fmt.Sprintf("%s_%s.json", base, target)

	if output == "" {
		return filepath.Join(filepath.Dir(input), name)
	}
	if multiple {
		return filepath.Join(output, name)
	}
	return output
}

// pickFormats runs the interactive format picker and returns the chosen keys.
func pickFormats(registry *format.Registry, source string) ([]string, error) {
	model := NewFormatListModel(registry.All(), source)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("format picker: %w", err)
	}
	if m, ok := final.(FormatListModel); ok {
		return m.SelectedKeys(), nil
	}
	return nil, nil
}
