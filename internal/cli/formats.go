package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adproof/adproof/pkg/format"
	"github.com/adproof/adproof/pkg/rules"
)

// formatsCommand creates the formats command listing the canvas catalog.
func (c *CLI) formatsCommand() *cobra.Command {
	var extra string

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the canvas format catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := format.Builtin()
			if extra != "" {
				if err := registry.LoadFile(extra); err != nil {
					return err
				}
			}

			fmt.Println(StyleTitle.Render("Canvas Formats"))
			printNewline()
			for _, f := range registry.All() {
				label := f.Name
				if f.HasSafeZones() {
					label += StyleDim.Render(fmt.Sprintf("  (safe zones %.1f%% / %.1f%%)",
						f.SafeZoneTopPct, f.SafeZoneBottomPct))
				}
				printKeyValue(f.Key(), label)
				printDetail("platform: %s, aspect ratio: %.3f", f.Platform, f.AspectRatio)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&extra, "formats-file", "", "TOML file with additional formats")

	return cmd
}

// rulesCommand creates the rules command listing the compliance catalog.
func (c *CLI) rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the compliance rule catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(StyleTitle.Render("Compliance Rules"))
			printNewline()
			for _, entry := range rules.Catalog() {
				sev := StyleError.Render("hard")
				if entry.Severity == rules.SeverityWarn {
					sev = StyleWarning.Render("warn")
				}
				fmt.Printf("%s %s\n", sev, StyleValue.Render(entry.Code))
				printDetail("%s", entry.Description)
			}
			return nil
		},
	}
}
