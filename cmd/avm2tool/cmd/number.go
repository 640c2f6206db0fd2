package cmd

import (
	"fmt"
	"strconv"

	"github.com/avm2rt/avm2core/pkg/avm2"
	"github.com/spf13/cobra"
)

var (
	numberRadix       int
	numberFixed       int
	numberExponential int
	numberPrecision   int
)

var numberCmd = &cobra.Command{
	Use:   "number [value]",
	Short: "Format a floating-point value the way the runtime's Number does",
	Long: `Format value using the runtime's Number.toString/toFixed/toExponential/
toPrecision conventions (§4.9). Only one of --radix, --fixed, --exponential
or --precision may be given; with none of them, it prints the default
shortest round-trip representation.

Examples:
  avm2tool number 1.5
  avm2tool number --radix 16 255
  avm2tool number --fixed 2 3.14159`,
	Args: cobra.ExactArgs(1),
	RunE: formatNumber,
}

func init() {
	rootCmd.AddCommand(numberCmd)

	numberCmd.Flags().IntVar(&numberRadix, "radix", 0, "format in the given radix (2-36), fraction digits included")
	numberCmd.Flags().IntVar(&numberFixed, "fixed", -1, "format with exactly this many fraction digits")
	numberCmd.Flags().IntVar(&numberExponential, "exponential", -1, "format in exponential notation with this many fraction digits")
	numberCmd.Flags().IntVar(&numberPrecision, "precision", -1, "format to this many significant digits")
	numberCmd.MarkFlagsMutuallyExclusive("radix", "fixed", "exponential", "precision")
}

func formatNumber(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", args[0], err)
	}

	profile, err := applyProfile()
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	radix := numberRadix
	if radix == 0 && profile != nil && profile.Number.Radix != 0 {
		radix = profile.Number.Radix
	}

	switch {
	case radix != 0:
		fmt.Println(avm2.FormatFloatRadix(x, radix))
	case numberFixed >= 0:
		fmt.Println(avm2.ToFixed(x, numberFixed))
	case numberExponential >= 0:
		fmt.Println(avm2.ToExponential(x, numberExponential))
	case numberPrecision >= 0:
		fmt.Println(avm2.ToPrecision(x, numberPrecision))
	default:
		fmt.Println(avm2.FormatFloat(x))
	}
	return nil
}
