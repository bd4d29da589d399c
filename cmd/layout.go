// =============================================================================
// EDI Document Renderer - Layout Commands
// =============================================================================
//
// COMMAND USAGE:
//   edirender layout validate <file>              Check a layout file
//   edirender layout show <type> [--user u]       Print the active layout
//   edirender layout convert <in> <out>           Convert between layout formats
//   edirender layout scaffold <x12-file> <out>    Start a layout from a sample
//
// Layout files may be YAML, JSON, TOML or an Excel workbook. The convert
// command lets a layout authored in one format be edited in another, for
// example a YAML layout exported to a workbook for a spreadsheet user.
//
// =============================================================================

package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/edi-document-renderer/internal/decoder"
	"github.com/ginjaninja78/edi-document-renderer/internal/layout"
	"github.com/ginjaninja78/edi-document-renderer/internal/render"
	"github.com/ginjaninja78/edi-document-renderer/internal/x12"
)

var (
	showUserID string
	showFormat string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect and check layouts",
}

var layoutValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a layout file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := layout.Load(args[0])
		if err != nil {
			return err
		}

		result := layout.Check(cfg)
		out := cmd.OutOrStdout()
		if len(result.Errors) == 0 {
			fmt.Fprintf(out, "%s: OK\n", args[0])
			return nil
		}

		fmt.Fprint(out, layout.FormatErrors(result.Errors))
		return result.Err()
	},
}

var layoutShowCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Print the layout that would be used for a transaction type",
	Long: `Show resolves the layout for a transaction type the same way convert
does: the user's own active version first, then the system-wide active
version. When neither exists, the legacy layout built from a document's own
fields is used, and show says so.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := decoder.Lookup(args[0]); err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		resolved, ok, err := layout.NewDirResolver(cfg.LayoutsDir).Resolve(cmd.Context(), args[0], showUserID)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "No active layout for %s; the legacy presentation is used.\n", args[0])
			return nil
		}

		data, err := layout.Marshal(resolved, showFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var layoutConvertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a layout file to another format",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := layout.Load(args[0])
		if err != nil {
			return err
		}
		return writeLayout(args[1], cfg)
	},
}

var layoutScaffoldCmd = &cobra.Command{
	Use:   "scaffold <x12-file> <out>",
	Short: "Write a starting layout for the first document of a sample file",
	Long: `Scaffold decodes a sample X12 file and writes the legacy layout of its
first document, listing every header field and line item column, as a
layout file to edit. The output format follows the extension of <out>.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		raw, err := x12.ReadAll(f)
		if err != nil {
			return err
		}
		docs, err := decoder.DecodeAll(x12.Parse(raw))
		if err != nil {
			return err
		}

		cfg := render.LegacyLayout(docs[0])
		cfg.ThemeColor = render.DefaultThemeColor
		if err := writeLayout(args[1], cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s layout with %d section(s) to %s\n",
			docs[0].TransactionType, len(cfg.Sections), args[1])
		return nil
	},
}

func init() {
	layoutShowCmd.Flags().StringVar(&showUserID, "user", "", "User whose layouts take priority")
	layoutShowCmd.Flags().StringVar(&showFormat, "output", layout.FormatYAML, "Output format: yaml, json, toml")

	layoutCmd.AddCommand(layoutValidateCmd, layoutShowCmd, layoutConvertCmd, layoutScaffoldCmd)
	rootCmd.AddCommand(layoutCmd)
}

// writeLayout writes cfg to path in the format implied by its extension.
func writeLayout(path string, cfg *layout.Config) error {
	format := layout.FormatOf(path)

	var buf bytes.Buffer
	switch format {
	case "":
		return fmt.Errorf("unsupported layout file extension: %s", path)
	case layout.FormatXLSX:
		if err := layout.WriteXLSX(&buf, cfg); err != nil {
			return err
		}
	default:
		data, err := layout.Marshal(cfg, format)
		if err != nil {
			return err
		}
		buf.Write(data)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	return nil
}
