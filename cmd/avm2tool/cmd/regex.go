package cmd

import (
	"fmt"

	"github.com/avm2rt/avm2core/pkg/avm2"
	"github.com/spf13/cobra"
)

var (
	regexMultiline bool
	regexDotAll    bool
	regexExtended  bool
)

var regexCmd = &cobra.Command{
	Use:   "regex [pattern]",
	Short: "Transpile an ActionScript-flavored regex to Go regexp syntax",
	Long: `Transpile a RegExp pattern written in the AS3/AVM2 dialect into a
Go regexp pattern, and print the translated pattern along with its group
count and named-group map. Backreferences and look-around assertions are
kept in the output, and the Go regexp package does not accept them.

Examples:
  avm2tool regex '(a)(b)\2\1'
  avm2tool regex --multiline --dotall '^abc.$'`,
	Args: cobra.ExactArgs(1),
	RunE: transpileRegex,
}

func init() {
	rootCmd.AddCommand(regexCmd)

	regexCmd.Flags().BoolVar(&regexMultiline, "multiline", false, "^ and $ match at line boundaries")
	regexCmd.Flags().BoolVar(&regexDotAll, "dotall", false, ". matches newlines")
	regexCmd.Flags().BoolVar(&regexExtended, "extended", false, "ignore unescaped whitespace and # comments")
}

func transpileRegex(cmd *cobra.Command, args []string) error {
	profile, err := applyProfile()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	multiline, dotAll, extended := regexMultiline, regexDotAll, regexExtended
	if profile != nil {
		if !cmd.Flags().Changed("multiline") {
			multiline = profile.Regex.Multiline
		}
		if !cmd.Flags().Changed("dotall") {
			dotAll = profile.Regex.DotAll
		}
		if !cmd.Flags().Changed("extended") {
			extended = profile.Regex.Extended
		}
	}

	result, err := avm2.TranspileRegex(args[0], multiline, dotAll, extended)
	if err != nil {
		return fmt.Errorf("transpiling %q: %w", args[0], err)
	}

	fmt.Printf("pattern:  %s\n", result.Pattern)
	fmt.Printf("groups:   %d\n", result.GroupCount)
	if len(result.GroupNames) > 0 {
		fmt.Println("named:")
		for name, idx := range result.GroupNames {
			fmt.Printf("  %s -> %d\n", name, idx)
		}
	}
	return nil
}
