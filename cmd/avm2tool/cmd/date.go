package cmd

import (
	"fmt"

	"github.com/avm2rt/avm2core/pkg/avm2"
	"github.com/spf13/cobra"
)

var dateCmd = &cobra.Command{
	Use:   "date [text]",
	Short: "Parse a permissive English-language date string",
	Long: `Attempt to parse text using the same permissive tokenizer the
runtime uses for Date.parse, and print the resulting biased timestamp.

Examples:
  avm2tool date "2024-03-15T10:00:00+05:00"
  avm2tool date "March 15, 2024 2:30 PM"`,
	Args: cobra.ExactArgs(1),
	RunE: parseDate,
}

func init() {
	rootCmd.AddCommand(dateCmd)
}

func parseDate(_ *cobra.Command, args []string) error {
	ok, ts, err := avm2.TryParseDate(args[0])
	if err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}
	if !ok {
		exitWithError("could not parse %q as a date", args[0])
		return nil
	}
	fmt.Println(ts)
	return nil
}
