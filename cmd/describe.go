package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/edi-document-renderer/internal/catalog"
	"github.com/ginjaninja78/edi-document-renderer/internal/decoder"
)

// typesCmd lists the supported transaction types.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported transaction types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME")
		for _, t := range decoder.Supported() {
			fmt.Fprintf(w, "%s\t%s\n", t.Code, t.Name)
		}
		return w.Flush()
	},
}

// describeCmd explains which document keys come from which elements.
var describeCmd = &cobra.Command{
	Use:   "describe <type> [locator]",
	Short: "Describe the segment elements a transaction type reads",
	Long: `Describe lists the element locators (such as BEG03) a transaction type
reads, with the document key each one fills. With a locator, only that
element is shown.

Example Usage:
  edirender describe 850
  edirender describe 850 beg03`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		txType := args[0]
		if _, err := decoder.Lookup(txType); err != nil {
			return err
		}

		var entries []catalog.Entry
		if len(args) == 2 {
			e, ok := catalog.Describe(txType, args[1])
			if !ok {
				return fmt.Errorf("no description for %s in %s", args[1], txType)
			}
			entries = []catalog.Entry{e}
		} else {
			entries = catalog.Entries(txType)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "%s %s\n\n", txType, decoder.Name(txType))
		fmt.Fprintln(w, "LOCATOR\tKEY\tDESCRIPTION")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Locator, e.Key, e.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(describeCmd)
}
